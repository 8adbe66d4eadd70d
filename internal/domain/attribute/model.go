// Package attribute models the attribute dimensions configured for one
// product: named groups of options that the variant generator combines.
package attribute

import (
	"encoding/json"
	"fmt"

	"skuforge/internal/core/id"
)

// Kind determines where a group's options come from and whether its name
// is editable (fixed to "Color"/"Size" for the catalog-backed kinds).
type Kind string

const (
	KindColor  Kind = "color"
	KindSize   Kind = "size"
	KindCustom Kind = "custom"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindColor, KindSize, KindCustom:
		return true
	}
	return false
}

// CanonicalName returns the fixed group name for catalog-backed kinds,
// or "" for custom groups (whose name is free-form).
func (k Kind) CanonicalName() string {
	switch k {
	case KindColor:
		return "Color"
	case KindSize:
		return "Size"
	default:
		return ""
	}
}

// Option is one concrete value within a group. It is a closed sum:
// ColorOption, SizeOption or CustomOption. Catalog refs only exist on the
// catalog-backed variants, so a custom option carrying a color ref is
// unrepresentable.
type Option interface {
	// Value returns the human-readable label.
	Value() string

	// Kind returns the owning group kind this option is valid for.
	Kind() Kind
}

// ColorOption references an entry of the global color pool.
type ColorOption struct {
	Ref  id.ID
	Name string
	Hex  string
}

func (o ColorOption) Value() string { return o.Name }
func (o ColorOption) Kind() Kind    { return KindColor }

// SizeOption references an entry of the global size pool.
type SizeOption struct {
	Ref       id.ID
	Name      string
	SortOrder int
}

func (o SizeOption) Value() string { return o.Name }
func (o SizeOption) Kind() Kind    { return KindSize }

// CustomOption is a free-form value. Duplicates by value are permitted
// (no identity beyond position) but discouraged by callers.
type CustomOption struct {
	Text string
}

func (o CustomOption) Value() string { return o.Text }
func (o CustomOption) Kind() Kind    { return KindCustom }

// Group is one attribute dimension: a named, ordered set of options.
type Group struct {
	// ID is unique within a product's working set
	ID id.ID

	// Name may be empty transiently while editing; groups without a name
	// are skipped at generation time
	Name string

	// Kind fixes the option source
	Kind Kind

	// Options preserve insertion order; no duplicate catalog ref within
	// a group
	Options []Option

	// DisplayOrder positions the group among its siblings and fixes the
	// generation order
	DisplayOrder int
}

// IsValid reports whether the group participates in generation:
// it needs a non-empty name and at least one option.
func (g *Group) IsValid() bool {
	return g.Name != "" && len(g.Options) > 0
}

// --- JSON wire form ---
//
// Option is an interface, so Group carries custom JSON conversion through a
// flat record with kind-specific optional fields. The same form is used by
// the HTTP DTOs and the persisted payload.

type optionWire struct {
	Kind      Kind   `json:"kind"`
	Value     string `json:"value"`
	ColorRef  *id.ID `json:"colorRef,omitempty"`
	Hex       string `json:"hex,omitempty"`
	SizeRef   *id.ID `json:"sizeRef,omitempty"`
	SortOrder int    `json:"sortOrder,omitempty"`
}

type groupWire struct {
	ID           id.ID        `json:"id"`
	Name         string       `json:"name"`
	Kind         Kind         `json:"kind"`
	Options      []optionWire `json:"options"`
	DisplayOrder int          `json:"displayOrder"`
}

// MarshalJSON implements json.Marshaler.
func (g Group) MarshalJSON() ([]byte, error) {
	wire := groupWire{
		ID:           g.ID,
		Name:         g.Name,
		Kind:         g.Kind,
		Options:      make([]optionWire, 0, len(g.Options)),
		DisplayOrder: g.DisplayOrder,
	}
	for _, opt := range g.Options {
		switch o := opt.(type) {
		case ColorOption:
			ref := o.Ref
			wire.Options = append(wire.Options, optionWire{
				Kind: KindColor, Value: o.Name, ColorRef: &ref, Hex: o.Hex,
			})
		case SizeOption:
			ref := o.Ref
			wire.Options = append(wire.Options, optionWire{
				Kind: KindSize, Value: o.Name, SizeRef: &ref, SortOrder: o.SortOrder,
			})
		case CustomOption:
			wire.Options = append(wire.Options, optionWire{
				Kind: KindCustom, Value: o.Text,
			})
		default:
			return nil, fmt.Errorf("unknown option type %T", opt)
		}
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *Group) UnmarshalJSON(data []byte) error {
	var wire groupWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	group := Group{
		ID:           wire.ID,
		Name:         wire.Name,
		Kind:         wire.Kind,
		DisplayOrder: wire.DisplayOrder,
	}
	for _, ow := range wire.Options {
		switch ow.Kind {
		case KindColor:
			if ow.ColorRef == nil {
				return fmt.Errorf("color option %q missing colorRef", ow.Value)
			}
			group.Options = append(group.Options, ColorOption{Ref: *ow.ColorRef, Name: ow.Value, Hex: ow.Hex})
		case KindSize:
			if ow.SizeRef == nil {
				return fmt.Errorf("size option %q missing sizeRef", ow.Value)
			}
			group.Options = append(group.Options, SizeOption{Ref: *ow.SizeRef, Name: ow.Value, SortOrder: ow.SortOrder})
		case KindCustom:
			group.Options = append(group.Options, CustomOption{Text: ow.Value})
		default:
			return fmt.Errorf("unknown option kind %q", ow.Kind)
		}
	}
	*g = group
	return nil
}
