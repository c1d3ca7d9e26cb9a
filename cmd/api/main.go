package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/stockflow/stockflow-api/internal/application/analytics"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
	infraai "github.com/stockflow/stockflow-api/internal/infrastructure/ai"
	"github.com/stockflow/stockflow-api/internal/infrastructure/sqlite"
	httpRouter "github.com/stockflow/stockflow-api/internal/interfaces/http"
	"github.com/stockflow/stockflow-api/internal/interfaces/ws"
	"github.com/stockflow/stockflow-api/pkg/config"
	"github.com/stockflow/stockflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	snapshots, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir blob store")
	}
	defer snapshots.Close()

	hub := ws.NewHub(log)
	go hub.Run()

	store := inventory.NewStore(snapshots, hub, log)
	store.Load()

	statsUC := analytics.NewStatsUseCase(store)
	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	reorderUC := usecase.NewReorderUseCase(store, geminiSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:     store,
		StatsUC:   statsUC,
		ReorderUC: reorderUC,
		Hub:       hub,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
