package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/pkg/validator"
)

// InventoryHandler maneja transacciones y retiros.
type InventoryHandler struct {
	store *inventory.Store
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(store *inventory.Store) *InventoryHandler {
	return &InventoryHandler{store: store}
}

// RecordTransaction godoc
// @Summary  Registrar una compra o venta
// @Description  Una venta con cantidad mayor al stock disponible falla con 409
//               sin modificar el estado.
// @Tags     transactions
// @Accept   json
// @Produce  json
// @Param    id    path  string                        true  "ID del producto"
// @Param    body  body  dto.RecordTransactionRequest  true  "type (sale|purchase), quantity (> 0), price_per_unit (>= 0)"
// @Success  201  {object}  dto.ProductResponse
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Failure  409  {object}  dto.ErrorResponse
// @Router   /api/products/{id}/transactions [post]
func (h *InventoryHandler) RecordTransaction(c *fiber.Ctx) error {
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if msgs := validator.ValidateStruct(in); msgs != nil {
		return validationFailed(c, msgs)
	}
	product, err := h.store.RecordTransaction(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// CreateWithdrawal godoc
// @Summary  Registrar un retiro de efectivo
// @Tags     withdrawals
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateWithdrawalRequest  true  "amount (> 0) y notes (opcional)"
// @Success  201  {object}  dto.WithdrawalResponse
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /api/withdrawals [post]
func (h *InventoryHandler) CreateWithdrawal(c *fiber.Ctx) error {
	var in dto.CreateWithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if msgs := validator.ValidateStruct(in); msgs != nil {
		return validationFailed(c, msgs)
	}
	w, err := h.store.RecordWithdrawal(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(w)
}

// ListWithdrawals godoc
// @Summary  Listar retiros
// @Tags     withdrawals
// @Produce  json
// @Success  200  {object}  dto.WithdrawalListResponse
// @Router   /api/withdrawals [get]
func (h *InventoryHandler) ListWithdrawals(c *fiber.Ctx) error {
	withdrawals := h.store.Withdrawals()
	items := make([]dto.WithdrawalResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		items = append(items, *inventory.ToWithdrawalResponse(w))
	}
	return c.JSON(dto.WithdrawalListResponse{Items: items, Total: len(items)})
}
