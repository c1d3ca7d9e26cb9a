package dto

import "github.com/shopspring/decimal"

// ProductProfitDTO desglose de utilidad por producto.
// La utilidad por producto excluye retiros (son globales del negocio):
// profit = total_revenue + stock_value - total_cost.
type ProductProfitDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	StockValue   decimal.Decimal `json:"stock_value"`
	Profit       decimal.Decimal `json:"profit"`
}

// StatsReportDTO respuesta de GET /api/stats.
//
// total_profit = total_sales + total_stock_value - total_purchases -
// total_withdrawals. La fórmula cuenta el stock sin vender como utilidad
// realizable y resta los retiros de forma simétrica a las compras: es la
// regla de negocio acordada, no contabilidad de causación.
type StatsReportDTO struct {
	TotalSalesAmount    decimal.Decimal    `json:"total_sales_amount"`
	TotalPurchaseAmount decimal.Decimal    `json:"total_purchase_amount"`
	TotalStockValue     decimal.Decimal    `json:"total_stock_value"`
	TotalWithdrawals    decimal.Decimal    `json:"total_withdrawals"`
	TotalProfit         decimal.Decimal    `json:"total_profit"`
	ProfitPerProduct    []ProductProfitDTO `json:"profit_per_product"`
}

// MonthlyVolumeDTO volumen de un mes calendario (unidades, no dinero).
// Month usa el formato "Jan 2006".
type MonthlyVolumeDTO struct {
	Month     string `json:"month"`
	Sales     int    `json:"sales"`
	Purchases int    `json:"purchases"`
}
