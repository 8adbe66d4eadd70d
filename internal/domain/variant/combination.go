// Package variant implements the combination and variant engine: the
// Cartesian expansion of attribute groups into sellable SKU rows, draft
// synthesis, and bulk working-set mutation. Everything here is a pure,
// synchronous computation over caller-owned slices.
package variant

import (
	"sort"
	"strings"

	"skuforge/internal/core/apperror"
	"skuforge/internal/core/id"
	"skuforge/internal/domain/attribute"
)

const (
	// idPairSep joins kind and value inside one combination id segment
	idPairSep = ":"
	// idSep joins segments of a combination id
	idSep = "|"
	// nameSep joins option values into the display name
	nameSep = " / "
)

// idEscaper percent-encodes the characters that carry structure inside a
// combination id: the pair and segment separators, the "#" that marks
// duplicate suffixes, and "%" itself. Option values are free-form, so
// without this two distinct tuples could concatenate to the same id.
var idEscaper = strings.NewReplacer(
	"%", "%25",
	idPairSep, "%3A",
	idSep, "%7C",
	"#", "%23",
)

// Attribute is one resolved (group kind, option value) pair of a
// combination. Catalog refs are carried only for catalog-backed kinds.
type Attribute struct {
	Kind     attribute.Kind `json:"kind"`
	Value    string         `json:"value"`
	ColorRef *id.ID         `json:"colorRef,omitempty"`
	SizeRef  *id.ID         `json:"sizeRef,omitempty"`
}

// Combination is one Cartesian-product tuple: exactly one option from
// every valid group. It is derived data, never persisted on its own.
type Combination struct {
	// ID is deterministic for a given attribute tuple and distinct for
	// distinct tuples. Re-running generation over unchanged groups yields
	// identical IDs in identical order.
	ID string `json:"id"`

	// DisplayName joins the option values in group order, e.g. "Red / L".
	DisplayName string `json:"displayName"`

	// Attributes hold one entry per group, in group order.
	Attributes []Attribute `json:"attributes"`
}

// Generate computes the full Cartesian product over the valid groups
// (non-empty name, at least one option). Group DisplayOrder fixes the
// iteration order, the last group varying fastest. Returns
// NO_VALID_ATTRIBUTE_GROUPS when nothing can be generated.
func Generate(groups []*attribute.Group) ([]Combination, error) {
	valid := make([]*attribute.Group, 0, len(groups))
	for _, g := range groups {
		if g.IsValid() {
			valid = append(valid, g)
		}
	}
	if len(valid) == 0 {
		return nil, apperror.NewNoValidGroups()
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].DisplayOrder < valid[j].DisplayOrder
	})

	total := 1
	for _, g := range valid {
		total *= len(g.Options)
	}

	combos := make([]Combination, 0, total)
	indices := make([]int, len(valid))
	for {
		combos = append(combos, buildCombination(valid, indices))

		// odometer step: last group is the innermost loop
		pos := len(indices) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(valid[pos].Options) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return combos, nil
}

func buildCombination(groups []*attribute.Group, indices []int) Combination {
	attrs := make([]Attribute, len(groups))
	idParts := make([]string, len(groups))
	nameParts := make([]string, len(groups))

	for i, g := range groups {
		opt := g.Options[indices[i]]
		attr := Attribute{Kind: g.Kind, Value: opt.Value()}
		switch o := opt.(type) {
		case attribute.ColorOption:
			ref := o.Ref
			attr.ColorRef = &ref
		case attribute.SizeOption:
			ref := o.Ref
			attr.SizeRef = &ref
		}
		attrs[i] = attr
		idParts[i] = string(g.Kind) + idPairSep + idEscaper.Replace(opt.Value())
		nameParts[i] = opt.Value()
	}

	return Combination{
		ID:          strings.Join(idParts, idSep),
		DisplayName: strings.Join(nameParts, nameSep),
		Attributes:  attrs,
	}
}

// Diff reports how a freshly generated combination set relates to the
// previous one, by combination ID. The engine always replaces the working
// set wholesale; the diff lets a caller carry manual edits over to
// unchanged rows if its product rules want that.
type Diff struct {
	Added     []string `json:"added"`
	Removed   []string `json:"removed"`
	Unchanged []string `json:"unchanged"`
}

// DiffCombinations compares two generations. Order within each bucket
// follows the new set for Added/Unchanged and the old set for Removed.
func DiffCombinations(old, fresh []Combination) Diff {
	oldSet := make(map[string]struct{}, len(old))
	for _, c := range old {
		oldSet[c.ID] = struct{}{}
	}
	freshSet := make(map[string]struct{}, len(fresh))
	for _, c := range fresh {
		freshSet[c.ID] = struct{}{}
	}

	d := Diff{Added: []string{}, Removed: []string{}, Unchanged: []string{}}
	for _, c := range fresh {
		if _, ok := oldSet[c.ID]; ok {
			d.Unchanged = append(d.Unchanged, c.ID)
		} else {
			d.Added = append(d.Added, c.ID)
		}
	}
	for _, c := range old {
		if _, ok := freshSet[c.ID]; !ok {
			d.Removed = append(d.Removed, c.ID)
		}
	}
	return d
}
