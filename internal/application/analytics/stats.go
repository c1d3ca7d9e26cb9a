package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/ledger"
)

// Funciones puras de agregación sobre snapshots de las colecciones.
// Ninguna muta estado; la ventana de fechas es opcional (ver ledger.DateRange)
// y su ausencia significa "todo el tiempo".

// sumAmountByType suma quantity * pricePerUnit de las transacciones del tipo
// dado, filtradas por producto (ID opcional) y ventana.
func sumAmountByType(products []*entity.Product, txType, productID string, window ledger.DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		if productID != "" && p.ID != productID {
			continue
		}
		for _, t := range p.Transactions {
			if t.Type != txType || !window.Contains(t.Date) {
				continue
			}
			total = total.Add(decimal.NewFromInt(int64(t.Quantity)).Mul(t.PricePerUnit))
		}
	}
	return total
}

// TotalSalesAmount ingresos por ventas dentro de la ventana.
func TotalSalesAmount(products []*entity.Product, productID string, window ledger.DateRange) decimal.Decimal {
	return sumAmountByType(products, entity.TransactionTypeSale, productID, window)
}

// TotalPurchaseAmount costo de compras dentro de la ventana.
func TotalPurchaseAmount(products []*entity.Product, productID string, window ledger.DateRange) decimal.Decimal {
	return sumAmountByType(products, entity.TransactionTypePurchase, productID, window)
}

// TotalStockValue valoración del inventario actual: stock * última compra de
// cada producto. No se filtra por ventana: la última compra es de todo el
// historial.
func TotalStockValue(products []*entity.Product, productID string) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		if productID != "" && p.ID != productID {
			continue
		}
		total = total.Add(ledger.StockValue(p))
	}
	return total
}

// TotalWithdrawals suma de retiros dentro de la ventana.
func TotalWithdrawals(withdrawals []*entity.Withdrawal, window ledger.DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, w := range withdrawals {
		if window.Contains(w.Date) {
			total = total.Add(w.Amount)
		}
	}
	return total
}

// TotalProfit utilidad global: ventas + valor del stock - compras - retiros.
// El stock sin vender cuenta como utilidad realizable y los retiros restan
// igual que las compras; es la regla de negocio acordada (no contabilidad de
// causación) y no debe "corregirse" aquí.
func TotalProfit(products []*entity.Product, withdrawals []*entity.Withdrawal, window ledger.DateRange) decimal.Decimal {
	return TotalSalesAmount(products, "", window).
		Add(TotalStockValue(products, "")).
		Sub(TotalPurchaseAmount(products, "", window)).
		Sub(TotalWithdrawals(withdrawals, window))
}

// ProfitPerProduct desglose por producto: ingresos, costo, valor de stock y
// utilidad (ingresos + valor de stock - costo). Los retiros no participan:
// son globales del negocio.
func ProfitPerProduct(products []*entity.Product, window ledger.DateRange) []dto.ProductProfitDTO {
	out := make([]dto.ProductProfitDTO, 0, len(products))
	for _, p := range products {
		revenue := TotalSalesAmount(products, p.ID, window)
		cost := TotalPurchaseAmount(products, p.ID, window)
		stockValue := ledger.StockValue(p)
		out = append(out, dto.ProductProfitDTO{
			ProductID:    p.ID,
			ProductName:  p.Name,
			TotalRevenue: revenue,
			TotalCost:    cost,
			StockValue:   stockValue,
			Profit:       revenue.Add(stockValue).Sub(cost),
		})
	}
	return out
}

// MonthlyVolume agrupa las transacciones filtradas por mes calendario
// (etiqueta "Jan 2006"), sumando unidades vendidas y compradas. El orden de
// los buckets es el de primera aparición; quien necesite orden cronológico
// debe ordenar por la etiqueta parseada.
func MonthlyVolume(products []*entity.Product, productID string, window ledger.DateRange) []dto.MonthlyVolumeDTO {
	var out []dto.MonthlyVolumeDTO
	index := make(map[string]int)
	for _, p := range products {
		if productID != "" && p.ID != productID {
			continue
		}
		for _, t := range p.Transactions {
			if !window.Contains(t.Date) {
				continue
			}
			label := t.Date.Format("Jan 2006")
			i, ok := index[label]
			if !ok {
				i = len(out)
				index[label] = i
				out = append(out, dto.MonthlyVolumeDTO{Month: label})
			}
			if t.Type == entity.TransactionTypeSale {
				out[i].Sales += t.Quantity
			} else {
				out[i].Purchases += t.Quantity
			}
		}
	}
	return out
}
