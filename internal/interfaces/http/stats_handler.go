package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/analytics"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/domain/ledger"
)

// StatsHandler maneja los reportes y estadísticas.
type StatsHandler struct {
	stats *analytics.StatsUseCase
	store *inventory.Store
}

// NewStatsHandler construye el handler.
func NewStatsHandler(stats *analytics.StatsUseCase, store *inventory.Store) *StatsHandler {
	return &StatsHandler{stats: stats, store: store}
}

// Report godoc
// @Summary  Métricas del negocio
// @Description  Ventas, compras, valor del stock, retiros, utilidad global y
//               desglose por producto. Ventana opcional start_date/end_date.
// @Tags     stats
// @Produce  json
// @Param    start_date  query  string  false  "YYYY-MM-DD"
// @Param    end_date    query  string  false  "YYYY-MM-DD"
// @Success  200  {object}  dto.StatsReportDTO
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /api/stats [get]
func (h *StatsHandler) Report(c *fiber.Ctx) error {
	window, err := ledger.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(h.stats.Report(window))
}

// MonthlyVolume godoc
// @Summary  Volumen mensual de transacciones
// @Description  Unidades vendidas y compradas por mes calendario, filtrables
//               por producto y ventana de fechas.
// @Tags     stats
// @Produce  json
// @Param    product_id  query  string  false  "Filtrar por producto"
// @Param    start_date  query  string  false  "YYYY-MM-DD"
// @Param    end_date    query  string  false  "YYYY-MM-DD"
// @Success  200  {array}   dto.MonthlyVolumeDTO
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/reports/monthly-volume [get]
func (h *StatsHandler) MonthlyVolume(c *fiber.Ctx) error {
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
	volume := h.stats.Volume(productID, window)
	if volume == nil {
		volume = []dto.MonthlyVolumeDTO{}
	}
	return c.JSON(volume)
}
