// Package main is the entry point for the skuforge API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skuforge/internal/config"
	"skuforge/internal/domain/auth"
	"skuforge/internal/domain/catalog"
	"skuforge/internal/domain/product"
	v1 "skuforge/internal/infrastructure/http/v1"
	"skuforge/internal/infrastructure/storage/postgres"
	"skuforge/internal/infrastructure/storage/postgres/catalog_repo"
	"skuforge/internal/infrastructure/storage/postgres/product_repo"
	"skuforge/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting skuforge server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(cfg.Database.DSN)
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Pricing rates ---
	markupRate, taxRate, err := cfg.Pricing.Rates()
	if err != nil {
		log.Fatalw("invalid pricing rates", "error", err)
	}

	// --- Auth ---
	jwtConfig := auth.DefaultJWTConfig(cfg.Auth.JWTSecret)
	if cfg.Auth.TokenTTLMinutes > 0 {
		jwtConfig.AccessTokenTTL = time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	}
	jwtService := auth.NewJWTService(jwtConfig)
	authService := auth.NewService(jwtService, cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash)

	// --- Domain services ---
	catalogService := catalog.NewService(catalog_repo.NewPoolRepo(txManager))

	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	productService := product.NewService(
		product_repo.NewProductRepo(txManager),
		auditService,
		markupRate,
		taxRate,
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:           pool,
		Logger:         log,
		JWTValidator:   jwtService,
		AuthService:    authService,
		CatalogService: catalogService,
		ProductService: productService,
		MarkupRate:     markupRate,
		TaxRate:        taxRate,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", cfg.Server.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
