package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// PurchasePrice es opcional: si viene y InitialStock > 0 se registra una
// compra semilla por el stock inicial.
type CreateProductRequest struct {
	Name              string           `json:"name" validate:"required,min=3"`
	InitialStock      int              `json:"initial_stock" validate:"gte=0"`
	LowStockThreshold int              `json:"low_stock_threshold" validate:"gte=0"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// Solo nombre y umbral; el stock y el historial no se tocan por esta vía.
type UpdateProductRequest struct {
	Name              string `json:"name" validate:"required,min=3"`
	LowStockThreshold int    `json:"low_stock_threshold" validate:"gte=0"`
}

// RecordTransactionRequest body para POST /api/products/:id/transactions.
type RecordTransactionRequest struct {
	Type         string          `json:"type" validate:"required,oneof=sale purchase"`
	Quantity     int             `json:"quantity" validate:"gt=0"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// TransactionResponse una transacción del historial.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Date         time.Time       `json:"date"`
}

// ProductResponse producto con su historial.
type ProductResponse struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Stock             int                   `json:"stock"`
	LowStockThreshold int                   `json:"low_stock_threshold"`
	LowStock          bool                  `json:"low_stock"`
	Transactions      []TransactionResponse `json:"transactions"`
}

// ProductListResponse listado completo de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
