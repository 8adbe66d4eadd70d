package catalog

import (
	"context"
)

// Repository defines persistence for the color and size pools.
type Repository interface {
	// ListColors returns all colors, catalog sort order, soft-deleted excluded
	ListColors(ctx context.Context) ([]Color, error)

	// CreateColor inserts a new color
	CreateColor(ctx context.Context, color *Color) error

	// ColorNameExists checks for a color with the given name
	ColorNameExists(ctx context.Context, name string) (bool, error)

	// ListSizes returns all sizes ordered by sort_order
	ListSizes(ctx context.Context) ([]Size, error)

	// CreateSize inserts a new size
	CreateSize(ctx context.Context, size *Size) error

	// SizeNameExists checks for a size with the given name
	SizeNameExists(ctx context.Context, name string) (bool, error)
}
