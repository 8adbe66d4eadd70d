package catalog_repo

import (
	"context"

	"skuforge/internal/domain/catalog"
	"skuforge/internal/infrastructure/storage/postgres"
)

const (
	colorTable = "cat_colors"
	sizeTable  = "cat_sizes"
)

// PoolRepo implements catalog.Repository over the two pool tables.
type PoolRepo struct {
	colors basePoolRepo[catalog.Color]
	sizes  basePoolRepo[catalog.Size]
}

// Compile-time check that PoolRepo implements catalog.Repository.
var _ catalog.Repository = (*PoolRepo)(nil)

// NewPoolRepo creates the pool repository.
func NewPoolRepo(txManager *postgres.TxManager) *PoolRepo {
	return &PoolRepo{
		colors: newBasePoolRepo[catalog.Color](txManager, colorTable, postgres.ExtractDBColumns[catalog.Color]()),
		sizes:  newBasePoolRepo[catalog.Size](txManager, sizeTable, postgres.ExtractDBColumns[catalog.Size]()),
	}
}

// ListColors returns all colors ordered by name.
func (r *PoolRepo) ListColors(ctx context.Context) ([]catalog.Color, error) {
	return r.colors.list(ctx, "name ASC")
}

// CreateColor inserts a new color.
func (r *PoolRepo) CreateColor(ctx context.Context, color *catalog.Color) error {
	return r.colors.create(ctx, *color)
}

// ColorNameExists checks for a color with the given name.
func (r *PoolRepo) ColorNameExists(ctx context.Context, name string) (bool, error) {
	return r.colors.nameExists(ctx, name)
}

// ListSizes returns all sizes ordered by sort_order.
func (r *PoolRepo) ListSizes(ctx context.Context) ([]catalog.Size, error) {
	return r.sizes.list(ctx, "sort_order ASC")
}

// CreateSize inserts a new size.
func (r *PoolRepo) CreateSize(ctx context.Context, size *catalog.Size) error {
	return r.sizes.create(ctx, *size)
}

// SizeNameExists checks for a size with the given name.
func (r *PoolRepo) SizeNameExists(ctx context.Context, name string) (bool, error) {
	return r.sizes.nameExists(ctx, name)
}
