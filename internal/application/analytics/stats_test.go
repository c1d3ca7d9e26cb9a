package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/analytics"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/ledger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func txn(txType string, qty int, price string, date time.Time) entity.Transaction {
	return entity.Transaction{Type: txType, Quantity: qty, PricePerUnit: dec(price), Date: date}
}

// Una sola compra de 10 unidades a $2, sin ventas ni retiros: el valor del
// stock compensa exactamente el costo y la utilidad total es cero.
func TestTotalProfit_CompraSolaDaCero(t *testing.T) {
	products := []*entity.Product{{
		ID: "p-1", Name: "Widget", Stock: 10,
		Transactions: []entity.Transaction{
			txn(entity.TransactionTypePurchase, 10, "2.00", time.Now()),
		},
	}}

	profit := analytics.TotalProfit(products, nil, ledger.DateRange{})
	assert.True(t, profit.IsZero(),
		"ventas 0 + valor de stock 20 - compras 20 - retiros 0 = 0")
}

func TestTotalProfit_FormulaCompleta(t *testing.T) {
	day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	products := []*entity.Product{{
		ID: "p-1", Name: "Widget", Stock: 6,
		Transactions: []entity.Transaction{
			txn(entity.TransactionTypePurchase, 10, "2.00", day),
			txn(entity.TransactionTypeSale, 4, "5.00", day.AddDate(0, 0, 5)),
		},
	}}
	withdrawals := []*entity.Withdrawal{
		{ID: "w-1", Amount: dec("3.00"), Date: day.AddDate(0, 0, 10)},
	}

	// ventas 20 + stock 6×2=12 - compras 20 - retiros 3 = 9
	profit := analytics.TotalProfit(products, withdrawals, ledger.DateRange{})
	assert.True(t, profit.Equal(dec("9")), "utilidad esperada 9, obtenida %s", profit)
}

func TestVentanaFiltraVentasYComprasPeroNoStockValue(t *testing.T) {
	enero := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	marzo := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	products := []*entity.Product{{
		ID: "p-1", Name: "Widget", Stock: 5,
		Transactions: []entity.Transaction{
			txn(entity.TransactionTypePurchase, 10, "2.00", enero),
			txn(entity.TransactionTypeSale, 5, "6.00", marzo),
		},
	}}

	window, err := ledger.ParseDateRange("2024-03-01", "2024-03-31")
	require.NoError(t, err)

	assert.True(t, analytics.TotalSalesAmount(products, "", window).Equal(dec("30")),
		"solo la venta de marzo entra en la ventana")
	assert.True(t, analytics.TotalPurchaseAmount(products, "", window).IsZero(),
		"la compra de enero queda fuera de la ventana")
	assert.True(t, analytics.TotalStockValue(products, "").Equal(dec("10")),
		"la valoración usa la última compra de todo el historial, sin ventana")
}

func TestProfitPerProduct_ExcluyeRetiros(t *testing.T) {
	day := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	products := []*entity.Product{
		{
			ID: "p-1", Name: "Alpha", Stock: 2,
			Transactions: []entity.Transaction{
				txn(entity.TransactionTypePurchase, 5, "4.00", day),
				txn(entity.TransactionTypeSale, 3, "10.00", day.AddDate(0, 0, 1)),
			},
		},
		{
			ID: "p-2", Name: "Beta", Stock: 1,
			Transactions: []entity.Transaction{
				txn(entity.TransactionTypePurchase, 1, "7.00", day),
			},
		},
	}

	rows := analytics.ProfitPerProduct(products, ledger.DateRange{})
	require.Len(t, rows, 2)

	alpha := rows[0]
	assert.Equal(t, "p-1", alpha.ProductID)
	assert.True(t, alpha.TotalRevenue.Equal(dec("30")))
	assert.True(t, alpha.TotalCost.Equal(dec("20")))
	assert.True(t, alpha.StockValue.Equal(dec("8")), "2 unidades × última compra 4.00")
	assert.True(t, alpha.Profit.Equal(dec("18")), "30 + 8 - 20; los retiros no participan")

	beta := rows[1]
	assert.True(t, beta.Profit.IsZero(), "compra sola: el valor del stock compensa el costo")
}

func TestMonthlyVolume_AgrupaPorMesEnOrdenDeAparicion(t *testing.T) {
	products := []*entity.Product{{
		ID: "p-1", Name: "Widget", Stock: 0,
		Transactions: []entity.Transaction{
			txn(entity.TransactionTypePurchase, 10, "2.00", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
			txn(entity.TransactionTypeSale, 3, "5.00", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
			txn(entity.TransactionTypeSale, 2, "5.00", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
			txn(entity.TransactionTypePurchase, 5, "2.10", time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)),
		},
	}}

	buckets := analytics.MonthlyVolume(products, "", ledger.DateRange{})
	require.Len(t, buckets, 2)

	assert.Equal(t, "Jan 2024", buckets[0].Month, "el orden es el de primera aparición")
	assert.Equal(t, 2, buckets[0].Sales)
	assert.Equal(t, 10, buckets[0].Purchases)

	assert.Equal(t, "Feb 2024", buckets[1].Month)
	assert.Equal(t, 3, buckets[1].Sales)
	assert.Equal(t, 5, buckets[1].Purchases)
}

func TestMonthlyVolume_FiltroPorProductoYVentana(t *testing.T) {
	enero := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	products := []*entity.Product{
		{ID: "p-1", Name: "Alpha", Transactions: []entity.Transaction{
			txn(entity.TransactionTypeSale, 4, "5.00", enero),
		}},
		{ID: "p-2", Name: "Beta", Transactions: []entity.Transaction{
			txn(entity.TransactionTypeSale, 9, "5.00", enero),
		}},
	}

	buckets := analytics.MonthlyVolume(products, "p-1", ledger.DateRange{})
	require.Len(t, buckets, 1)
	assert.Equal(t, 4, buckets[0].Sales, "solo cuentan las transacciones del producto filtrado")

	window, err := ledger.ParseDateRange("2025-01-01", "")
	require.NoError(t, err)
	assert.Empty(t, analytics.MonthlyVolume(products, "", window),
		"fuera de la ventana no hay buckets")
}

func TestTotalWithdrawals_ConVentana(t *testing.T) {
	withdrawals := []*entity.Withdrawal{
		{ID: "w-1", Amount: dec("10.00"), Date: time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)},
		{ID: "w-2", Amount: dec("25.50"), Date: time.Date(2024, 2, 10, 12, 0, 0, 0, time.Local)},
	}

	assert.True(t, analytics.TotalWithdrawals(withdrawals, ledger.DateRange{}).Equal(dec("35.50")))

	window, err := ledger.ParseDateRange("2024-02-01", "2024-02-29")
	require.NoError(t, err)
	assert.True(t, analytics.TotalWithdrawals(withdrawals, window).Equal(dec("25.50")))
}
