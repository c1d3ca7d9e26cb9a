package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/analytics"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
	"github.com/stockflow/stockflow-api/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store     *inventory.Store
	StatsUC   *analytics.StatsUseCase
	ReorderUC *usecase.ReorderUseCase
	Hub       *ws.Hub
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Store)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Transactions y withdrawals
	inventoryHandler := NewInventoryHandler(deps.Store)
	products.Post("/:id/transactions", inventoryHandler.RecordTransaction)
	withdrawals := api.Group("/withdrawals")
	withdrawals.Post("/", inventoryHandler.CreateWithdrawal)
	withdrawals.Get("/", inventoryHandler.ListWithdrawals)

	// CSV import/export
	csvHandler := NewCSVHandler(deps.Store)
	transactions := api.Group("/transactions")
	transactions.Post("/import", csvHandler.Import)
	transactions.Get("/export", csvHandler.Export)

	// Stats y reportes
	statsHandler := NewStatsHandler(deps.StatsUC, deps.Store)
	api.Get("/stats", statsHandler.Report)
	api.Get("/reports/monthly-volume", statsHandler.MonthlyVolume)

	// IA
	aiHandler := NewAIHandler(deps.ReorderUC)
	api.Post("/ai/reorder-suggestion", aiHandler.SuggestReorder)

	// Notificaciones en vivo
	if deps.Hub != nil {
		app.Use("/ws", WSUpgrade)
		app.Get("/ws", WSHandler(deps.Hub))
	}
}
