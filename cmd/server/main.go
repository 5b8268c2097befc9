// main.go
//
// ARMAZÉM API server: HTTP surface over the warehouse ERP database for the
// offline-first mobile client.

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/ar-erp/armazem-api/internal/config"
	"github.com/ar-erp/armazem-api/internal/database"
	"github.com/ar-erp/armazem-api/internal/handlers"
	"github.com/ar-erp/armazem-api/internal/middleware"
	"github.com/ar-erp/armazem-api/internal/utils"

	_ "github.com/ar-erp/armazem-api/docs/api" // Swagger docs
)

// @title ARMAZÉM API
// @version 0.1.0
// @description Warehouse/inventory backend for the AR-ERP offline-first mobile client

// @host localhost:8000
// @BasePath /
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// The production ERP schema pre-exists; migrations are opt-in
	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(middleware.VersionMiddleware())

	// Prometheus metrics
	prometheus := fiberprometheus.New("armazem-api")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded images served directly
	app.Static("/images", cfg.ImagesDir)

	// Create handlers
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}
	authHandler := &handlers.AuthHandler{DB: db}
	artigoHandler := &handlers.ArtigoHandler{DB: db}
	imageHandler := &handlers.ImageHandler{DB: db, ImagesDir: cfg.ImagesDir}
	syncHandler := &handlers.SyncHandler{DB: db}

	// Probes
	app.Get("/health", healthHandler.Health)
	app.Get("/db/ping", healthHandler.DBPing)

	// Auth
	app.Post("/auth/login", authHandler.Login)

	// Article catalog; literal segments registered before :id
	app.Get("/artigos", artigoHandler.List)
	app.Get("/artigos/imagens/stats", imageHandler.Stats)
	app.Get("/artigos/codigo/:codigo", artigoHandler.GetByCodigo)
	app.Get("/artigos/:id", artigoHandler.GetByID)

	// Article images
	app.Post("/artigos/:id/imagem", imageHandler.Upload)
	app.Get("/artigos/:id/imagem", imageHandler.Get)
	app.Get("/artigos/:id/imagem/base64", imageHandler.GetBase64)
	app.Delete("/artigos/:id/imagem", imageHandler.Delete)

	// Sync snapshots
	app.Get("/sync", syncHandler.Full)
	app.Get("/sync/light", syncHandler.Light)
	app.Get("/sync/stats", syncHandler.Stats)
	app.Get("/sync/tipos", syncHandler.Tipos)
	app.Get("/sync/familias", syncHandler.Familias)
	app.Get("/sync/estados", syncHandler.Estados)
	app.Get("/sync/armazens", syncHandler.Armazens)
	app.Get("/sync/artigos", syncHandler.Artigos)
	app.Get("/sync/equipamentos", syncHandler.Equipamentos)
	app.Get("/sync/movimentos", syncHandler.Movimentos)
	app.Get("/sync/utilizadores", syncHandler.Utilizadores)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigs
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.AppHost, cfg.AppPort)
	log.Printf("Starting server on %s (env=%s)", addr, cfg.AppEnv)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
