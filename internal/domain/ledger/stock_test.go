package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/ledger"
)

func txn(txType string, qty int, price string, date time.Time) entity.Transaction {
	return entity.Transaction{
		Type:         txType,
		Quantity:     qty,
		PricePerUnit: decimal.RequireFromString(price),
		Date:         date,
	}
}

func TestRecomputeStock(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	txns := []entity.Transaction{
		txn(entity.TransactionTypePurchase, 100, "5.00", day),
		txn(entity.TransactionTypeSale, 30, "9.00", day.AddDate(0, 0, 1)),
		txn(entity.TransactionTypePurchase, 10, "5.20", day.AddDate(0, 0, 2)),
		txn(entity.TransactionTypeSale, 25, "9.50", day.AddDate(0, 0, 3)),
	}

	assert.Equal(t, 55, ledger.RecomputeStock(0, txns))
	assert.Equal(t, 60, ledger.RecomputeStock(5, txns),
		"el offset inicial cubre stock creado sin transacción semilla")
	assert.Equal(t, 0, ledger.RecomputeStock(0, nil), "sin historial el stock es el offset")
}

func TestLastPurchasePrice_UsaLaCompraMasReciente(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &entity.Product{
		Stock: 10,
		Transactions: []entity.Transaction{
			txn(entity.TransactionTypePurchase, 10, "5.00", day),
			txn(entity.TransactionTypeSale, 2, "9.00", day.AddDate(0, 0, 5)),
			// Compra más reciente aunque no sea la última insertada.
			txn(entity.TransactionTypePurchase, 5, "6.50", day.AddDate(0, 0, 3)),
			txn(entity.TransactionTypePurchase, 5, "6.00", day.AddDate(0, 0, 1)),
		},
	}

	price := ledger.LastPurchasePrice(p)
	assert.True(t, price.Equal(decimal.RequireFromString("6.50")),
		"debe ganar la compra con la fecha más reciente, no la última insertada")
}

func TestLastPurchasePrice_SinComprasEsCero(t *testing.T) {
	p := &entity.Product{
		Stock: 0,
		Transactions: []entity.Transaction{
			txn(entity.TransactionTypeSale, 1, "9.00", time.Now()),
		},
	}
	assert.True(t, ledger.LastPurchasePrice(p).IsZero())
	assert.True(t, ledger.StockValue(p).IsZero(), "sin compras el stock no tiene valoración")
}

func TestStockValue(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &entity.Product{
		Stock: 12,
		Transactions: []entity.Transaction{
			txn(entity.TransactionTypePurchase, 20, "2.50", day),
		},
	}
	assert.True(t, ledger.StockValue(p).Equal(decimal.RequireFromString("30")),
		"12 unidades × última compra 2.50 = 30")
}

func TestFoldName(t *testing.T) {
	assert.Equal(t, ledger.FoldName("Green Tea"), ledger.FoldName("GREEN tea"))
	assert.Equal(t, ledger.FoldName("Café"), ledger.FoldName("CAFÉ"),
		"el folding debe cubrir letras fuera de ASCII")
	assert.NotEqual(t, ledger.FoldName("Tea"), ledger.FoldName("Teas"))
}

// ──────────────────────────────────────────────────────────────────────────────
// DateRange
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDateRange_ExpandeAlDiaCompleto(t *testing.T) {
	r, err := ledger.ParseDateRange("2024-01-10", "2024-01-20")
	require.NoError(t, err)
	require.NotNil(t, r.From)
	require.NotNil(t, r.To)

	// Inclusiva en ambos extremos, con granularidad de día.
	assert.True(t, r.Contains(time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)),
		"la medianoche del día From está dentro")
	assert.True(t, r.Contains(time.Date(2024, 1, 20, 23, 59, 59, 0, time.Local)),
		"el final del día To está dentro")
	assert.False(t, r.Contains(time.Date(2024, 1, 9, 23, 59, 59, 0, time.Local)),
		"el día anterior a From está fuera")
	assert.False(t, r.Contains(time.Date(2024, 1, 21, 0, 0, 0, 0, time.Local)),
		"el día siguiente a To está fuera")
}

func TestParseDateRange_ExtremosOpcionales(t *testing.T) {
	soloDesde, err := ledger.ParseDateRange("2024-06-01", "")
	require.NoError(t, err)
	assert.Nil(t, soloDesde.To)
	assert.True(t, soloDesde.Contains(time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)))

	todo, err := ledger.ParseDateRange("", "")
	require.NoError(t, err)
	assert.True(t, todo.IsZero(), "sin extremos la ventana es 'todo el tiempo'")
	assert.True(t, todo.Contains(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseDateRange_FechaInvalida(t *testing.T) {
	_, err := ledger.ParseDateRange("2024/01/01", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ledger.ParseDateRange("", "ayer")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
