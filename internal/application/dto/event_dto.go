package dto

// ChangeEventDTO notificación de mutación exitosa, difundida por WebSocket.
// Cada operación del Store publica exactamente un evento; las fallas no
// publican nada (la respuesta HTTP de error es la notificación de falla).
type ChangeEventDTO struct {
	Kind      string `json:"kind"` // product.created, product.updated, product.deleted, transaction.recorded, withdrawal.recorded, import.applied
	ProductID string `json:"product_id,omitempty"`
	Message   string `json:"message"`
}

// ImportResultDTO respuesta de POST /api/transactions/import.
type ImportResultDTO struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// ExportResultDTO metadatos del export (el CSV viaja en el cuerpo).
type ExportResultDTO struct {
	Rows int `json:"rows"`
}
