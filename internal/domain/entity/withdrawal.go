package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdrawal representa un retiro de efectivo del negocio. No está ligado
// a ningún producto; solo participa en el cálculo de utilidad global.
// La colección es append-only.
type Withdrawal struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes,omitempty"`
	Date   time.Time       `json:"date"`
}
