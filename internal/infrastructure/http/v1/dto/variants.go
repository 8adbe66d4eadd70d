package dto

import (
	"skuforge/internal/core/types"
	"skuforge/internal/domain/attribute"
	"skuforge/internal/domain/pricing"
	"skuforge/internal/domain/variant"
)

// GenerateVariantsRequest carries the working set for regeneration.
// Previous variants (if any) are sent back so the response can report
// which combinations survived.
type GenerateVariantsRequest struct {
	Groups    []*attribute.Group `json:"groups" binding:"required"`
	SKUSeed   string             `json:"skuSeed" binding:"required"`
	BasePrice string             `json:"basePrice" binding:"required"`
	Previous  []variant.Variant  `json:"previous,omitempty"`
}

// GenerateVariantsResponse returns the fresh draft set and the diff
// against the previous one.
type GenerateVariantsResponse struct {
	Variants []VariantResponse `json:"variants"`
	Diff     variant.Diff      `json:"diff"`
}

// VariantResponse is one variant row with display-formatted prices.
type VariantResponse struct {
	SKU           string              `json:"sku"`
	Price         string              `json:"price"`
	SalePrice     *string             `json:"salePrice,omitempty"`
	InStock       int                 `json:"inStock"`
	Backorderable bool                `json:"backorderable"`
	CombinationID string              `json:"combinationId,omitempty"`
	DisplayName   string              `json:"displayName,omitempty"`
	Attributes    []variant.Attribute `json:"attributes,omitempty"`
}

// FromVariant creates response from a domain variant.
func FromVariant(v *variant.Variant) VariantResponse {
	resp := VariantResponse{
		SKU:           v.SKU,
		Price:         types.FormatPrice(v.Price),
		InStock:       v.InStock,
		Backorderable: v.Backorderable,
		CombinationID: v.CombinationID,
		DisplayName:   v.DisplayName,
		Attributes:    v.Attributes,
	}
	if v.SalePrice != nil {
		sp := types.FormatPrice(*v.SalePrice)
		resp.SalePrice = &sp
	}
	return resp
}

// FromVariants maps a variant list.
func FromVariants(variants []variant.Variant) []VariantResponse {
	out := make([]VariantResponse, 0, len(variants))
	for i := range variants {
		out = append(out, FromVariant(&variants[i]))
	}
	return out
}

// VariantRequest is one variant row of a submission, prices as strings.
type VariantRequest struct {
	SKU           string              `json:"sku" binding:"required"`
	Price         string              `json:"price" binding:"required"`
	SalePrice     *string             `json:"salePrice,omitempty"`
	InStock       int                 `json:"inStock"`
	Backorderable bool                `json:"backorderable"`
	CombinationID string              `json:"combinationId,omitempty"`
	DisplayName   string              `json:"displayName,omitempty"`
	Attributes    []variant.Attribute `json:"attributes,omitempty"`
}

// ToVariant converts to a domain variant, rejecting malformed prices.
func (r *VariantRequest) ToVariant() (variant.Variant, error) {
	price, err := pricing.ParseAmount(r.Price)
	if err != nil {
		return variant.Variant{}, err
	}
	v := variant.Variant{
		SKU:           r.SKU,
		Price:         price,
		InStock:       r.InStock,
		Backorderable: r.Backorderable,
		CombinationID: r.CombinationID,
		DisplayName:   r.DisplayName,
		Attributes:    r.Attributes,
	}
	if r.SalePrice != nil {
		sale, err := pricing.ParseAmount(*r.SalePrice)
		if err != nil {
			return variant.Variant{}, err
		}
		v.SalePrice = &sale
	}
	return v, nil
}
