package variant

import (
	"skuforge/internal/core/apperror"
	"skuforge/internal/core/sequence"
	"skuforge/internal/core/types"
)

// Bulk operations rewrite the caller-owned variant working set before
// submission. The uniform setters are total: they no-op on an empty list
// and never touch any field but their own.

// BulkSetPrice sets every variant's price. All other fields untouched.
func BulkSetPrice(variants []Variant, price types.Money) {
	for i := range variants {
		variants[i].Price = price
	}
}

// BulkSetStock sets every variant's stock count. All other fields untouched.
func BulkSetStock(variants []Variant, stock int) {
	for i := range variants {
		variants[i].InStock = stock
	}
}

// Patch carries per-field overrides for UpdateOne. Nil fields are left
// unchanged.
type Patch struct {
	SKU           *string
	Price         *types.Money
	SalePrice     *types.Money
	InStock       *int
	Backorderable *bool
}

// UpdateOne shallow-merges patch into the variant at index.
// An out-of-range index is a caller error.
func UpdateOne(variants []Variant, index int, patch Patch) error {
	if index < 0 || index >= len(variants) {
		return apperror.NewIndexOutOfRange(index, len(variants))
	}
	v := &variants[index]
	if patch.SKU != nil {
		v.SKU = *patch.SKU
	}
	if patch.Price != nil {
		v.Price = *patch.Price
	}
	if patch.SalePrice != nil {
		sp := *patch.SalePrice
		v.SalePrice = &sp
	}
	if patch.InStock != nil {
		v.InStock = *patch.InStock
	}
	if patch.Backorderable != nil {
		v.Backorderable = *patch.Backorderable
	}
	return nil
}

// Duplicate appends a copy of the variant at index. The copy's SKU and
// combination id get a counter-derived suffix so it cannot silently
// collide with the original; seq must outlive the working set.
func Duplicate(variants []Variant, index int, seq *sequence.Counter) ([]Variant, error) {
	if index < 0 || index >= len(variants) {
		return variants, apperror.NewIndexOutOfRange(index, len(variants))
	}
	dup := variants[index].Clone()
	suffix := seq.NextSuffix("copy")
	dup.SKU = dup.SKU + "-" + suffix
	if dup.CombinationID != "" {
		dup.CombinationID = dup.CombinationID + "#" + suffix
	}
	return append(variants, dup), nil
}

// DeleteAt removes the variant at index, preserving the relative order of
// the rest.
func DeleteAt(variants []Variant, index int) ([]Variant, error) {
	if index < 0 || index >= len(variants) {
		return variants, apperror.NewIndexOutOfRange(index, len(variants))
	}
	return append(variants[:index], variants[index+1:]...), nil
}
