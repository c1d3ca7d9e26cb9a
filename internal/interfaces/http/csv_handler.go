package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/domain/ledger"
)

// CSVHandler maneja la importación y exportación del log de transacciones.
type CSVHandler struct {
	store *inventory.Store
}

// NewCSVHandler construye el handler.
func NewCSVHandler(store *inventory.Store) *CSVHandler {
	return &CSVHandler{store: store}
}

// Import godoc
// @Summary  Importar transacciones desde CSV
// @Description  El cuerpo es el archivo CSV crudo con el encabezado exacto
//               ProductName,Type,Quantity,PricePerUnit,Date. La importación es
//               atómica: la primera fila inválida rechaza el archivo completo.
// @Tags     csv
// @Accept   plain
// @Produce  json
// @Success  200  {object}  dto.ImportResultDTO
// @Failure  409  {object}  dto.ErrorResponse
// @Failure  422  {object}  dto.ErrorResponse
// @Router   /api/transactions/import [post]
func (h *CSVHandler) Import(c *fiber.Ctx) error {
	imported, err := h.store.ImportTransactionsCSV(string(c.Body()))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ImportResultDTO{
		Imported: imported,
		Message:  fmt.Sprintf("%d transacciones importadas", imported),
	})
}

// Export godoc
// @Summary  Exportar transacciones a CSV
// @Description  Filtros opcionales: product_id y ventana start_date/end_date
//               (YYYY-MM-DD, inclusiva con granularidad de día). Cero
//               coincidencias responde 404 NO_DATA, no es una falla.
// @Tags     csv
// @Produce  plain
// @Param    product_id  query  string  false  "Filtrar por producto"
// @Param    start_date  query  string  false  "YYYY-MM-DD"
// @Param    end_date    query  string  false  "YYYY-MM-DD"
// @Success  200  {string}  string  "CSV"
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/transactions/export [get]
func (h *CSVHandler) Export(c *fiber.Ctx) error {
	window, err := ledger.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return respondDomainError(c, err)
	}
	productID := c.Query("product_id")
	if productID != "" {
		if _, err := h.store.GetProduct(productID); err != nil {
			return respondDomainError(c, err)
		}
	}

	csv, rows := inventory.ExportTransactionsCSV(h.store.Products(), productID, window)
	if rows == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NO_DATA", Message: "no hay transacciones que coincidan con los criterios seleccionados",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stockflow_export.csv"`)
	return c.SendString(csv)
}
