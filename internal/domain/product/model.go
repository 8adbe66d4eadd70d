// Package product owns the submission boundary: it finalizes the working
// set produced by the attribute editor and variant engine into a durable
// product payload and hands it to storage in one atomic write.
package product

import (
	"skuforge/internal/core/apperror"
	"skuforge/internal/core/id"
	"skuforge/internal/domain/attribute"
	"skuforge/internal/domain/variant"
)

// Mode distinguishes a single-SKU product from one expanded over
// attribute combinations.
type Mode string

const (
	ModeSimple   Mode = "simple"
	ModeVariable Mode = "variable"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeSimple || m == ModeVariable
}

// Payload is the unit of persistence: the product identity plus the
// attribute groups and the finalized variant set, saved together or not
// at all.
type Payload struct {
	ProductID id.ID              `json:"productId"`
	Name      string             `json:"name"`
	Mode      Mode               `json:"productMode"`
	Groups    []*attribute.Group `json:"attributeGroups"`
	Variants  []variant.Variant  `json:"variants"`
}

// Validate checks the structural invariants of a payload before it is
// handed to storage.
func (p *Payload) Validate() error {
	if p.Name == "" {
		return apperror.NewValidation("product name is required")
	}
	if !p.Mode.Valid() {
		return apperror.NewValidation("product mode must be 'simple' or 'variable'")
	}
	if len(p.Variants) == 0 {
		return apperror.NewValidation("product must have at least one variant")
	}
	if p.Mode == ModeSimple {
		if len(p.Variants) != 1 {
			return apperror.NewValidation("simple product must have exactly one variant")
		}
		if len(p.Variants[0].Attributes) != 0 {
			return apperror.NewValidation("simple product variant must not carry attributes")
		}
	}
	for i, v := range p.Variants {
		if v.SKU == "" {
			return apperror.NewValidation("variant SKU is required").WithDetail("index", i)
		}
		if v.InStock < 0 {
			return apperror.NewValidation("variant stock must be non-negative").WithDetail("index", i)
		}
	}
	return nil
}
