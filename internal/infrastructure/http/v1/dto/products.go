package dto

import (
	"skuforge/internal/core/apperror"
	"skuforge/internal/core/id"
	"skuforge/internal/domain/attribute"
	"skuforge/internal/domain/product"
	"skuforge/internal/domain/variant"
)

// SubmitProductRequest carries the full working set for persistence.
type SubmitProductRequest struct {
	ProductID   string             `json:"productId,omitempty"`
	Name        string             `json:"name" binding:"required"`
	Mode        string             `json:"productMode" binding:"required"`
	VATIncluded bool               `json:"vatIncluded"`
	Groups      []*attribute.Group `json:"attributeGroups,omitempty"`
	Variants    []VariantRequest   `json:"variants" binding:"required"`
}

// ToSubmitInput converts to the domain submission input.
func (r *SubmitProductRequest) ToSubmitInput() (product.SubmitInput, error) {
	in := product.SubmitInput{
		Name:        r.Name,
		Mode:        product.Mode(r.Mode),
		VATIncluded: r.VATIncluded,
		Groups:      r.Groups,
	}

	if r.ProductID != "" {
		pid, err := id.Parse(r.ProductID)
		if err != nil {
			return product.SubmitInput{}, apperror.NewValidation("invalid productId").
				WithDetail("productId", r.ProductID)
		}
		in.ProductID = pid
	}

	in.Variants = make([]variant.Variant, 0, len(r.Variants))
	for i := range r.Variants {
		v, err := r.Variants[i].ToVariant()
		if err != nil {
			return product.SubmitInput{}, err
		}
		in.Variants = append(in.Variants, v)
	}

	return in, nil
}

// ProductResponse is the stored payload as returned to the client.
type ProductResponse struct {
	ProductID string             `json:"productId"`
	Name      string             `json:"name"`
	Mode      string             `json:"productMode"`
	Groups    []*attribute.Group `json:"attributeGroups,omitempty"`
	Variants  []VariantResponse  `json:"variants"`
}

// FromPayload creates response from a stored payload.
func FromPayload(p *product.Payload) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID.String(),
		Name:      p.Name,
		Mode:      string(p.Mode),
		Groups:    p.Groups,
		Variants:  FromVariants(p.Variants),
	}
}
