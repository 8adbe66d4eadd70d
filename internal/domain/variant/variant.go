package variant

import (
	"skuforge/internal/core/types"
)

// Variant is one sellable, priced, stocked SKU row of the working set.
// For a simple (non-variable) product the combination fields are empty.
type Variant struct {
	// SKU must be non-empty at submission. Uniqueness across the product
	// is the persistence layer's concern, not enforced here.
	SKU string `json:"sku"`

	// Price is the working amount; until submission it is the raw base
	// price, after submission it is the finalized stored price.
	Price types.Money `json:"price"`

	// SalePrice is optional and finalized through the same pipeline as
	// Price, independently of it.
	SalePrice *types.Money `json:"salePrice,omitempty"`

	// InStock is a non-negative unit count.
	InStock int `json:"inStock"`

	// Backorderable allows selling past zero stock.
	Backorderable bool `json:"backorderable"`

	CombinationID string      `json:"combinationId,omitempty"`
	DisplayName   string      `json:"displayName,omitempty"`
	Attributes    []Attribute `json:"attributes,omitempty"`
}

// Clone returns a deep copy (attributes slice and sale price included).
func (v Variant) Clone() Variant {
	out := v
	if v.SalePrice != nil {
		sp := *v.SalePrice
		out.SalePrice = &sp
	}
	if v.Attributes != nil {
		out.Attributes = make([]Attribute, len(v.Attributes))
		copy(out.Attributes, v.Attributes)
	}
	return out
}
