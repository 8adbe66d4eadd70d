// Package main provides a CLI tool for seeding the database with the
// default color and size pools and generating the admin password hash.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"skuforge/internal/core/apperror"
	"skuforge/internal/domain/catalog"
	"skuforge/internal/infrastructure/storage/postgres"
	"skuforge/internal/infrastructure/storage/postgres/catalog_repo"
	"skuforge/pkg/logger"
)

var defaultColors = []struct {
	code, name, hex string
}{
	{"black", "Black", "#000000"},
	{"white", "White", "#ffffff"},
	{"red", "Red", "#e53935"},
	{"blue", "Blue", "#1e88e5"},
	{"green", "Green", "#43a047"},
	{"yellow", "Yellow", "#fdd835"},
	{"grey", "Grey", "#9e9e9e"},
}

var defaultSizes = []struct {
	code, name string
	sortOrder  int
}{
	{"xs", "XS", 10},
	{"s", "S", 20},
	{"m", "M", 30},
	{"l", "L", 40},
	{"xl", "XL", 50},
	{"xxl", "XXL", 60},
}

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("SKUFORGE_DATABASE_DSN")
	if dbURL == "" {
		log.Fatal("SKUFORGE_DATABASE_DSN environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)
	service := catalog.NewService(catalog_repo.NewPoolRepo(txManager))

	if err := seedPools(ctx, service, log); err != nil {
		log.Fatalw("failed to seed catalog pools", "error", err)
	}

	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalw("failed to hash admin password", "error", err)
		}
		// The hash goes into auth.admin_password_hash (or the matching env var)
		fmt.Printf("SKUFORGE_AUTH_ADMIN_PASSWORD_HASH=%s\n", string(hash))
	}

	log.Info("seeding completed successfully")
}

func seedPools(ctx context.Context, service *catalog.Service, log *logger.Logger) error {
	for _, c := range defaultColors {
		err := service.CreateColor(ctx, catalog.NewColor(c.code, c.name, c.hex))
		if err != nil {
			if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeDuplicate {
				log.Infow("color already exists", "name", c.name)
				continue
			}
			return fmt.Errorf("seed color %s: %w", c.name, err)
		}
		log.Infow("seeded color", "name", c.name)
	}

	for _, s := range defaultSizes {
		err := service.CreateSize(ctx, catalog.NewSize(s.code, s.name, s.sortOrder))
		if err != nil {
			if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeDuplicate {
				log.Infow("size already exists", "name", s.name)
				continue
			}
			return fmt.Errorf("seed size %s: %w", s.name, err)
		}
		log.Infow("seeded size", "name", s.name)
	}

	return nil
}
