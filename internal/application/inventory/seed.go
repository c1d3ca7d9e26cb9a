package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// seedProducts devuelve el dataset de demostración que se usa cuando no hay
// snapshot persistido. Las fechas son relativas a hoy para que los reportes
// mensuales muestren datos recientes.
func seedProducts() []*entity.Product {
	daysAgo := func(n int) time.Time { return time.Now().AddDate(0, 0, -n) }
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return []*entity.Product{
		{
			ID: "prod-1", Name: "Organic Green Tea", Stock: 85, LowStockThreshold: 20,
			Transactions: []entity.Transaction{
				{ID: "txn-1", Type: entity.TransactionTypePurchase, Quantity: 100, PricePerUnit: price("5.50"), Date: daysAgo(20)},
				{ID: "txn-2", Type: entity.TransactionTypeSale, Quantity: 10, PricePerUnit: price("12.00"), Date: daysAgo(15)},
				{ID: "txn-3", Type: entity.TransactionTypeSale, Quantity: 5, PricePerUnit: price("12.50"), Date: daysAgo(5)},
			},
		},
		{
			ID: "prod-2", Name: "Artisanal Coffee Beans", Stock: 40, LowStockThreshold: 15,
			Transactions: []entity.Transaction{
				{ID: "txn-4", Type: entity.TransactionTypePurchase, Quantity: 50, PricePerUnit: price("15.00"), Date: daysAgo(30)},
				{ID: "txn-5", Type: entity.TransactionTypeSale, Quantity: 5, PricePerUnit: price("25.00"), Date: daysAgo(20)},
				{ID: "txn-6", Type: entity.TransactionTypeSale, Quantity: 5, PricePerUnit: price("25.00"), Date: daysAgo(10)},
			},
		},
		{
			ID: "prod-3", Name: "Premium Chocolate Bar", Stock: 120, LowStockThreshold: 30,
			Transactions: []entity.Transaction{
				{ID: "txn-7", Type: entity.TransactionTypePurchase, Quantity: 150, PricePerUnit: price("2.50"), Date: daysAgo(25)},
				{ID: "txn-8", Type: entity.TransactionTypeSale, Quantity: 20, PricePerUnit: price("5.00"), Date: daysAgo(12)},
				{ID: "txn-9", Type: entity.TransactionTypeSale, Quantity: 10, PricePerUnit: price("5.25"), Date: daysAgo(3)},
			},
		},
		{
			ID: "prod-4", Name: "Stainless Steel Water Bottle", Stock: 8, LowStockThreshold: 10,
			Transactions: []entity.Transaction{
				{ID: "txn-10", Type: entity.TransactionTypePurchase, Quantity: 50, PricePerUnit: price("8.00"), Date: daysAgo(40)},
				{ID: "txn-11", Type: entity.TransactionTypeSale, Quantity: 42, PricePerUnit: price("18.00"), Date: daysAgo(7)},
			},
		},
	}
}
