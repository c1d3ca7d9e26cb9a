package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/pkg/validator"
)

// AIHandler maneja la sugerencia de reorden asistida por IA.
type AIHandler struct {
	uc *usecase.ReorderUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.ReorderUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// SuggestReorder godoc
// @Summary      Sugerir cantidad de reorden con IA
// @Description  Resume el historial de ventas y compras del producto, consulta
//               al modelo y devuelve la cantidad sugerida con el razonamiento.
//               Solo lectura: una falla del modelo nunca altera el inventario.
//               Timeout interno de 10 s.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReorderSuggestionRequest  true  "product_id"
// @Success      200   {object}  dto.ReorderSuggestionDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/reorder-suggestion [post]
func (h *AIHandler) SuggestReorder(c *fiber.Ctx) error {
	var req dto.ReorderSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if msgs := validator.ValidateStruct(req); msgs != nil {
		return validationFailed(c, msgs)
	}

	result, err := h.uc.Suggest(c.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondDomainError(c, err)
		}
		// Timeout del contexto → 408 Request Timeout
		if isTimeout(err) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
				Code: "TIMEOUT", Message: "el servicio de IA tardó demasiado; intenta de nuevo",
			})
		}
		// API key no configurada
		if strings.Contains(err.Error(), "GEMINI_API_KEY") {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "AI_UNAVAILABLE", Message: "el servicio de sugerencias IA no está configurado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(result)
}

// isTimeout detecta errores de timeout/cancelación de contexto en el mensaje de error.
func isTimeout(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "cancelación")
}
