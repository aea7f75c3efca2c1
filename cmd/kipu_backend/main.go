package main

import (
	"log/slog"
	"os"

	_ "github.com/kipubooks/kipu-backend/cmd/docs"
	"github.com/kipubooks/kipu-backend/internal/adapters/extraction"
	"github.com/kipubooks/kipu-backend/internal/core/services"
	"github.com/kipubooks/kipu-backend/internal/handlers"
	"github.com/kipubooks/kipu-backend/internal/middleware"
	"github.com/kipubooks/kipu-backend/internal/platform/config"
	"github.com/kipubooks/kipu-backend/internal/platform/schema"
	"github.com/kipubooks/kipu-backend/internal/platform/storage"
	"github.com/kipubooks/kipu-backend/internal/repositories/database/sqlite"
	"github.com/kipubooks/kipu-backend/internal/utils"
	"github.com/kipubooks/kipu-backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Kipu Backend API
// @version 1.0
// @description Receipt scanning and bookkeeping backend for small Peruvian businesses.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseDB(db)

	if err := schema.Ensure(db.DB); err != nil {
		logger.Error("Failed to apply database migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database ready", slog.String("path", cfg.SQLitePath))

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize upload storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	extractor := extraction.NewGeminiExtractor(cfg.GeminiAPIKey, cfg.GeminiModel)

	repos := sqlite.NewRepositoryProvider(db)
	serviceContainer := services.NewServiceContainer(cfg, repos, extractor, store)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Stored images (receipts, avatars, logos) are served straight from disk.
	r.Static("/uploads", store.Root())

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
