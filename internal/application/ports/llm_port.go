package ports

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/application/dto"
)

// LLMService puerto de salida hacia el servicio de IA generativa.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato. El contexto debe llevar
// timeout para no bloquear goroutines en llamadas externas.
type LLMService interface {
	// SuggestReorderQuantity recibe el resumen textual del historial de un
	// producto y su stock actual, y devuelve la cantidad de reorden sugerida
	// con el razonamiento del modelo.
	SuggestReorderQuantity(ctx context.Context, in dto.ReorderSuggestionInput) (*dto.ReorderSuggestionDTO, error)
}
