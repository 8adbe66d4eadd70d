package catalog

import (
	"context"
	"fmt"
	"strings"

	"skuforge/internal/core/apperror"
)

// Service provides business logic for the option pools.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Snapshot returns a fresh copy of both pools. This is the refresh
// contract: after a write, callers ask for a new snapshot rather than
// patching a previously returned one.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	colors, err := s.repo.ListColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	sizes, err := s.repo.ListSizes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	return &Snapshot{Colors: colors, Sizes: sizes}, nil
}

// ListColors returns the color pool.
func (s *Service) ListColors(ctx context.Context) ([]Color, error) {
	return s.repo.ListColors(ctx)
}

// CreateColor validates and inserts a new color.
func (s *Service) CreateColor(ctx context.Context, color *Color) error {
	color.Name = strings.TrimSpace(color.Name)
	if err := color.Validate(ctx); err != nil {
		return err
	}
	exists, err := s.repo.ColorNameExists(ctx, color.Name)
	if err != nil {
		return fmt.Errorf("check color name: %w", err)
	}
	if exists {
		return apperror.NewDuplicate("color", "name", color.Name)
	}
	return s.repo.CreateColor(ctx, color)
}

// ListSizes returns the size pool.
func (s *Service) ListSizes(ctx context.Context) ([]Size, error) {
	return s.repo.ListSizes(ctx)
}

// CreateSize validates and inserts a new size.
func (s *Service) CreateSize(ctx context.Context, size *Size) error {
	size.Name = strings.TrimSpace(size.Name)
	if err := size.Validate(ctx); err != nil {
		return err
	}
	exists, err := s.repo.SizeNameExists(ctx, size.Name)
	if err != nil {
		return fmt.Errorf("check size name: %w", err)
	}
	if exists {
		return apperror.NewDuplicate("size", "name", size.Name)
	}
	return s.repo.CreateSize(ctx, size)
}
