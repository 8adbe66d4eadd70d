// Package catalog provides the global attribute option pools (colors and
// sizes). The variant engine consumes catalog snapshots read-only; it never
// mutates the pools in place.
package catalog

import (
	"context"
	"regexp"

	"skuforge/internal/core/apperror"
	"skuforge/internal/core/entity"
	"skuforge/internal/core/id"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Color is one entry of the global color pool.
type Color struct {
	entity.Catalog

	// Hex is the swatch color in #RRGGBB form
	Hex string `db:"hex" json:"hex"`
}

// NewColor creates a new Color with required fields.
func NewColor(code, name, hex string) *Color {
	return &Color{
		Catalog: entity.NewCatalog(code, name),
		Hex:     hex,
	}
}

// Validate implements entity.Validatable interface.
func (c *Color) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}
	if !hexColorRe.MatchString(c.Hex) {
		return apperror.NewValidation("hex must be a #RRGGBB color").
			WithDetail("field", "hex").
			WithDetail("value", c.Hex)
	}
	return nil
}

// Size is one entry of the global size pool.
type Size struct {
	entity.Catalog

	// SortOrder positions the size within the pool (S before M before L).
	// Options inherit it as a display tie-break.
	SortOrder int `db:"sort_order" json:"sortOrder"`
}

// NewSize creates a new Size with required fields.
func NewSize(code, name string, sortOrder int) *Size {
	return &Size{
		Catalog:   entity.NewCatalog(code, name),
		SortOrder: sortOrder,
	}
}

// Validate implements entity.Validatable interface.
func (s *Size) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}
	if s.SortOrder < 0 {
		return apperror.NewValidation("sortOrder cannot be negative").
			WithDetail("field", "sortOrder")
	}
	return nil
}

// Snapshot is a point-in-time copy of both pools. Callers re-request a
// snapshot after catalog writes instead of sharing a mutable list.
type Snapshot struct {
	Colors []Color `json:"colors"`
	Sizes  []Size  `json:"sizes"`
}

// ColorByRef finds a color by its ref, or nil.
func (s *Snapshot) ColorByRef(ref id.ID) *Color {
	for i := range s.Colors {
		if s.Colors[i].ID == ref {
			return &s.Colors[i]
		}
	}
	return nil
}

// SizeByRef finds a size by its ref, or nil.
func (s *Snapshot) SizeByRef(ref id.ID) *Size {
	for i := range s.Sizes {
		if s.Sizes[i].ID == ref {
			return &s.Sizes[i]
		}
	}
	return nil
}
