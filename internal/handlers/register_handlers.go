package handlers

import (
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/middleware"
	"github.com/kasa-app/kasa_backend/internal/platform/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kasa-app/kasa_backend/cmd/docs"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)
	registerGoogleOAuthRoutes(r, cfg, services)

	// Setup API v1 routes behind auth, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (only outside production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// API token auth runs first; requests it authenticates skip JWT auth.
	v1 := r.Group("/api/v1",
		middleware.APITokenAuth(services.APIToken),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	registerSettingsRoutes(v1, services.Settings)
	registerRevenueRoutes(v1, services.Revenue)
	registerExpenseRoutes(v1, services.Expense)
	registerSupplierRoutes(v1, services.Supplier)
	registerLedgerRoutes(v1, services.Ledger, services.Settings)
	registerExportRoutes(v1, services.Export)
	RegisterAPITokenRoutes(v1, services.APIToken)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
