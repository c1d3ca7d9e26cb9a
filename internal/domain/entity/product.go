package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro de movimientos.
const (
	TransactionTypeSale     = "sale"
	TransactionTypePurchase = "purchase"
)

// ValidTransactionType indica si el tipo pertenece al conjunto {sale, purchase}.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeSale || t == TransactionTypePurchase
}

// Transaction representa una compra o venta de un producto.
// Es inmutable una vez creada y pertenece exclusivamente a su producto;
// nunca se edita ni se borra individualmente.
type Transaction struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"` // sale | purchase
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Date         time.Time       `json:"date"`
}

// Product representa un producto del inventario con su historial de
// transacciones. Stock es un valor derivado que se mantiene de forma
// incremental en cada mutación; debe coincidir siempre con la suma de
// los deltas del historial (ver ledger.RecomputeStock).
//
// Las etiquetas JSON son camelCase: es el formato del blob persistido,
// compatible con los snapshots del cliente original.
type Product struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Stock             int           `json:"stock"`
	LowStockThreshold int           `json:"lowStockThreshold"`
	Transactions      []Transaction `json:"transactions"`
}

// Clone devuelve una copia profunda del producto. El historial se copia
// para que los lectores de un snapshot no observen appends posteriores.
func (p *Product) Clone() *Product {
	cp := *p
	cp.Transactions = make([]Transaction, len(p.Transactions))
	copy(cp.Transactions, p.Transactions)
	return &cp
}

// LowStock indica si el producto está en o por debajo de su umbral.
func (p *Product) LowStock() bool {
	return p.Stock <= p.LowStockThreshold
}
