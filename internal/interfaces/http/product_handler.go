package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/pkg/validator"
)

// ProductHandler maneja el CRUD de productos.
type ProductHandler struct {
	store *inventory.Store
}

// NewProductHandler construye el handler.
func NewProductHandler(store *inventory.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List godoc
// @Summary  Listar productos con su historial
// @Tags     products
// @Produce  json
// @Success  200  {object}  dto.ProductListResponse
// @Router   /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products := h.store.Products()
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *inventory.ToProductResponse(p))
	}
	return c.JSON(dto.ProductListResponse{Items: items, Total: len(items)})
}

// GetByID godoc
// @Summary  Obtener un producto por ID
// @Tags     products
// @Produce  json
// @Param    id  path  string  true  "ID del producto"
// @Success  200  {object}  dto.ProductResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.store.GetProduct(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(inventory.ToProductResponse(product))
}

// Create godoc
// @Summary  Crear un producto
// @Description  Si initial_stock > 0 y purchase_price viene (>= 0) se registra
//               una compra semilla por el stock inicial.
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateProductRequest  true  "name (min 3), initial_stock, low_stock_threshold, purchase_price (opcional)"
// @Success  201  {object}  dto.ProductResponse
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if msgs := validator.ValidateStruct(in); msgs != nil {
		return validationFailed(c, msgs)
	}
	product, err := h.store.CreateProduct(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// Update godoc
// @Summary  Editar nombre y umbral de stock bajo
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    id    path  string                    true  "ID del producto"
// @Param    body  body  dto.UpdateProductRequest  true  "name (min 3) y low_stock_threshold"
// @Success  200  {object}  dto.ProductResponse
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if msgs := validator.ValidateStruct(in); msgs != nil {
		return validationFailed(c, msgs)
	}
	product, err := h.store.EditProduct(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(product)
}

// Delete godoc
// @Summary  Eliminar un producto y todo su historial
// @Tags     products
// @Produce  json
// @Param    id  path  string  true  "ID del producto"
// @Success  200  {object}  dto.MessageResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteProduct(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}
