package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/core/services"
	"github.com/kasa-app/kasa_backend/internal/handlers"
	"github.com/kasa-app/kasa_backend/internal/middleware"
	"github.com/kasa-app/kasa_backend/internal/platform/config"
	"github.com/kasa-app/kasa_backend/internal/repositories/database/pgsql"
	"github.com/kasa-app/kasa_backend/internal/utils"
	"github.com/kasa-app/kasa_backend/pkg/database"
)

// @title           Kasa Backend API
// @version         1.0
// @description     Bookkeeping API for a single restaurant: revenues, expenses, suppliers and daily cash ledgers.

// @contact.name   Kasa Support

// @license.name  MIT

// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", "error", err)
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	go sweepExpiredAPITokens(context.Background(), serviceContainer.APIToken, logger)

	logger.Info("Starting server", "port", cfg.Port, "production", cfg.IsProduction)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// sweepExpiredAPITokens periodically revokes API tokens past their expiry.
func sweepExpiredAPITokens(ctx context.Context, tokenSvc portssvc.APITokenSvc, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := tokenSvc.CleanupExpired(ctx)
			if err != nil {
				logger.Warn("Expired API token sweep failed", "error", err)
				continue
			}
			if count > 0 {
				logger.Info("Revoked expired API tokens", "count", count)
			}
		}
	}
}

// runMigrations applies any pending SQL migrations from the migrations
// directory. A database that is already up to date is not an error.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("Migration source close failed", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("Migration database close failed", "error", dbErr)
	}

	logger.Info("Database migrations applied")
	return nil
}
