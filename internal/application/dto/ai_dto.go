package dto

// ReorderSuggestionRequest body para POST /api/ai/reorder-suggestion.
type ReorderSuggestionRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// ReorderSuggestionInput entrada textual para el modelo: resúmenes legibles
// del historial ("Sold 5 at $12.00 on 2024-01-15, ...") o los literales
// "No sales data" / "No purchase data" cuando no hay historial.
type ReorderSuggestionInput struct {
	ProductName       string `json:"product_name"`
	PastSalesData     string `json:"past_sales_data"`
	PastPurchaseData  string `json:"past_purchase_data"`
	CurrentStockLevel int    `json:"current_stock_level"`
}

// ReorderSuggestionDTO respuesta del modelo.
type ReorderSuggestionDTO struct {
	ReorderQuantity int    `json:"reorder_quantity"`
	Reasoning       string `json:"reasoning"`
}
