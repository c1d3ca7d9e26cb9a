package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes con detalle (fila del CSV, producto afectado, etc.) se
// envuelven con %w sobre estos centinelas para que los handlers puedan
// clasificar con errors.Is.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrFormat            = errors.New("formato CSV inválido")
)
