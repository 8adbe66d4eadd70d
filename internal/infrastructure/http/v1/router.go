// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"skuforge/internal/core/types"
	"skuforge/internal/domain/auth"
	"skuforge/internal/domain/catalog"
	"skuforge/internal/domain/product"
	"skuforge/internal/infrastructure/http/v1/handlers"
	"skuforge/internal/infrastructure/http/v1/middleware"
	"skuforge/internal/infrastructure/storage/postgres"
	"skuforge/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for the login endpoint
	AuthService *auth.Service

	// CatalogService for the color/size pools
	CatalogService *catalog.Service

	// ProductService for submissions
	ProductService *product.Service

	// MarkupRate and TaxRate drive the pricing preview endpoint
	MarkupRate types.Money
	TaxRate    types.Money
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		// Public auth endpoint
		authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)
		apiV1.POST("/auth/login", authHandler.Login)

		// Everything else needs a valid token
		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		catalogHandler := handlers.NewCatalogHandler(baseHandler, cfg.CatalogService)
		catalogGroup := protected.Group("/catalog")
		{
			catalogGroup.GET("/colors", catalogHandler.ListColors)
			catalogGroup.POST("/colors", catalogHandler.CreateColor)
			catalogGroup.GET("/sizes", catalogHandler.ListSizes)
			catalogGroup.POST("/sizes", catalogHandler.CreateSize)
		}

		variantHandler := handlers.NewVariantHandler(baseHandler)
		protected.POST("/variants/generate", variantHandler.Generate)

		pricingHandler := handlers.NewPricingHandler(baseHandler, cfg.MarkupRate, cfg.TaxRate)
		protected.POST("/pricing/breakdown", pricingHandler.Breakdown)

		productHandler := handlers.NewProductHandler(baseHandler, cfg.ProductService)
		protected.POST("/products", productHandler.Submit)
		protected.GET("/products/:id", productHandler.Get)
	}

	return router
}
