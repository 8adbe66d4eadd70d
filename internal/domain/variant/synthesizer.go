package variant

import (
	"strings"

	"skuforge/internal/core/types"
)

// Synthesize turns combinations into draft variants. The SKU derives
// deterministically from the seed and the attribute tuple; the base price
// is copied through unconverted (the markup/VAT pipeline runs at
// submission, not here). Calling it again replaces the previous draft set
// wholesale; it is not merge-aware.
func Synthesize(combinations []Combination, skuSeed string, basePrice types.Money) []Variant {
	variants := make([]Variant, 0, len(combinations))
	for _, c := range combinations {
		variants = append(variants, Variant{
			SKU:           deriveSKU(skuSeed, c),
			Price:         basePrice,
			InStock:       0,
			Backorderable: false,
			CombinationID: c.ID,
			DisplayName:   c.DisplayName,
			Attributes:    append([]Attribute(nil), c.Attributes...),
		})
	}
	return variants
}

// SynthesizeSimple builds the single draft variant of a simple product:
// empty attributes and display name, no combination id. This is the
// degenerate one-element set, not an error.
func SynthesizeSimple(skuSeed string, basePrice types.Money) Variant {
	return Variant{
		SKU:           skuSlug(skuSeed),
		Price:         basePrice,
		InStock:       0,
		Backorderable: false,
	}
}

// deriveSKU builds SEED-VALUE1-VALUE2... from the combination's tuple.
func deriveSKU(seed string, c Combination) string {
	parts := make([]string, 0, len(c.Attributes)+1)
	parts = append(parts, skuSlug(seed))
	for _, a := range c.Attributes {
		parts = append(parts, skuSlug(a.Value))
	}
	return strings.Join(parts, "-")
}

// skuSlug uppercases and strips everything but letters and digits.
func skuSlug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
