package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWithdrawalRequest body para POST /api/withdrawals.
type CreateWithdrawalRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
	Notes  string          `json:"notes"`
}

// WithdrawalResponse un retiro registrado.
type WithdrawalResponse struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes,omitempty"`
	Date   time.Time       `json:"date"`
}

// WithdrawalListResponse listado de retiros.
type WithdrawalListResponse struct {
	Items []WithdrawalResponse `json:"items"`
	Total int                  `json:"total"`
}
