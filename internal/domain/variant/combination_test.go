package variant

import (
	"reflect"
	"strings"
	"testing"

	"skuforge/internal/core/apperror"
	"skuforge/internal/core/id"
	"skuforge/internal/domain/attribute"
)

func customGroup(name string, order int, values ...string) *attribute.Group {
	opts := make([]attribute.Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, attribute.CustomOption{Text: v})
	}
	return &attribute.Group{
		ID:           id.New(),
		Name:         name,
		Kind:         attribute.KindCustom,
		Options:      opts,
		DisplayOrder: order,
	}
}

func displayNames(combos []Combination) []string {
	out := make([]string, len(combos))
	for i, c := range combos {
		out[i] = c.DisplayName
	}
	return out
}

func TestGenerateCartesianCompleteness(t *testing.T) {
	groups := []*attribute.Group{
		customGroup("Color", 0, "Red", "Black"),
		customGroup("Size", 1, "S", "M", "L"),
	}

	combos, err := Generate(groups)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(combos) != 6 {
		t.Fatalf("Generate() = %d combinations, want 6", len(combos))
	}

	// last group varies fastest
	want := []string{
		"Red / S", "Red / M", "Red / L",
		"Black / S", "Black / M", "Black / L",
	}
	if got := displayNames(combos); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	groups := []*attribute.Group{
		customGroup("Color", 0, "Red", "Black"),
		customGroup("Size", 1, "S", "M"),
	}

	first, err := Generate(groups)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate(groups)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("position %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestGenerateIDsAreInjective(t *testing.T) {
	groups := []*attribute.Group{
		customGroup("Color", 0, "Red", "Black", "White"),
		customGroup("Size", 1, "S", "M", "L"),
		customGroup("Material", 2, "Cotton", "Linen"),
	}

	combos, err := Generate(groups)
	if err != nil {
		t.Fatal(err)
	}
	if len(combos) != 18 {
		t.Fatalf("got %d combinations, want 18", len(combos))
	}

	seen := make(map[string]string, len(combos))
	for _, c := range combos {
		if prev, dup := seen[c.ID]; dup {
			t.Fatalf("id %q produced by both %q and %q", c.ID, prev, c.DisplayName)
		}
		seen[c.ID] = c.DisplayName
	}
}

func TestGenerateIDsAreInjectiveWithSeparatorValues(t *testing.T) {
	// values containing the id separators must not let distinct tuples
	// concatenate to the same id
	first, err := Generate([]*attribute.Group{
		customGroup("A", 0, "a|custom:b"),
		customGroup("B", 1, "c"),
	})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate([]*attribute.Group{
		customGroup("A", 0, "a"),
		customGroup("B", 1, "b|custom:c"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if first[0].ID == second[0].ID {
		t.Fatalf("distinct tuples %q and %q share id %q",
			first[0].DisplayName, second[0].DisplayName, first[0].ID)
	}
}

func TestGenerateIDsDistinguishReservedCharacters(t *testing.T) {
	// pairwise distinct values stay distinct after encoding, including
	// values that already look encoded
	values := []string{"a|b", "a%7Cb", "a:b", "a%3Ab", "a#b", "a%23b", "a%b"}

	seen := make(map[string]string, len(values))
	for _, v := range values {
		combos, err := Generate([]*attribute.Group{customGroup("X", 0, v)})
		if err != nil {
			t.Fatal(err)
		}
		id := combos[0].ID
		if prev, dup := seen[id]; dup {
			t.Fatalf("values %q and %q share id %q", prev, v, id)
		}
		seen[id] = v
	}
}

func TestGenerateIDsCannotForgeDuplicateSuffix(t *testing.T) {
	// "#" marks counter suffixes on duplicated variants; a generated id
	// must never contain one
	combos, err := Generate([]*attribute.Group{customGroup("X", 0, "x#copy1")})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(combos[0].ID, "#") {
		t.Errorf("id %q contains an unescaped duplicate-suffix marker", combos[0].ID)
	}
}

func TestGenerateRespectsDisplayOrder(t *testing.T) {
	// insertion order reversed relative to display order
	groups := []*attribute.Group{
		customGroup("Size", 1, "S", "M"),
		customGroup("Color", 0, "Red"),
	}

	combos, err := Generate(groups)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Red / S", "Red / M"}
	if got := displayNames(combos); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestGenerateSkipsInvalidGroups(t *testing.T) {
	unnamed := customGroup("", 0, "Loose")
	empty := customGroup("Fit", 1)
	good := customGroup("Size", 2, "S", "M")

	combos, err := Generate([]*attribute.Group{unnamed, empty, good})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(combos) != 2 {
		t.Fatalf("got %d combinations, want 2 (invalid groups skipped)", len(combos))
	}
}

func TestGenerateSingleGroupDegenerate(t *testing.T) {
	combos, err := Generate([]*attribute.Group{customGroup("Size", 0, "M")})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(combos) != 1 {
		t.Fatalf("got %d combinations, want 1", len(combos))
	}
	if combos[0].DisplayName != "M" {
		t.Errorf("DisplayName = %q, want M", combos[0].DisplayName)
	}
	if len(combos[0].Attributes) != 1 {
		t.Errorf("attributes = %d, want 1", len(combos[0].Attributes))
	}
}

func TestGenerateNoValidGroups(t *testing.T) {
	tests := []struct {
		name   string
		groups []*attribute.Group
	}{
		{"nil groups", nil},
		{"only invalid groups", []*attribute.Group{
			customGroup("", 0, "Loose"),
			customGroup("Fit", 1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.groups)
			if !apperror.IsNoValidGroups(err) {
				t.Errorf("Generate() error = %v, want NO_VALID_ATTRIBUTE_GROUPS", err)
			}
		})
	}
}

func TestGenerateCarriesCatalogRefs(t *testing.T) {
	colorRef := id.New()
	groups := []*attribute.Group{
		{
			ID:   id.New(),
			Name: "Color",
			Kind: attribute.KindColor,
			Options: []attribute.Option{
				attribute.ColorOption{Ref: colorRef, Name: "Red", Hex: "#e53935"},
			},
		},
	}

	combos, err := Generate(groups)
	if err != nil {
		t.Fatal(err)
	}
	attr := combos[0].Attributes[0]
	if attr.Kind != attribute.KindColor || attr.Value != "Red" {
		t.Errorf("attribute = %+v", attr)
	}
	if attr.ColorRef == nil || *attr.ColorRef != colorRef {
		t.Error("color ref not carried into combination attribute")
	}
}

func TestDiffCombinations(t *testing.T) {
	old := []Combination{{ID: "custom:Red"}, {ID: "custom:Black"}}
	fresh := []Combination{{ID: "custom:Black"}, {ID: "custom:White"}}

	d := DiffCombinations(old, fresh)

	if !reflect.DeepEqual(d.Added, []string{"custom:White"}) {
		t.Errorf("Added = %v", d.Added)
	}
	if !reflect.DeepEqual(d.Removed, []string{"custom:Red"}) {
		t.Errorf("Removed = %v", d.Removed)
	}
	if !reflect.DeepEqual(d.Unchanged, []string{"custom:Black"}) {
		t.Errorf("Unchanged = %v", d.Unchanged)
	}
}

func TestDiffCombinationsEmptyOld(t *testing.T) {
	fresh := []Combination{{ID: "a"}, {ID: "b"}}
	d := DiffCombinations(nil, fresh)

	if len(d.Added) != 2 || len(d.Removed) != 0 || len(d.Unchanged) != 0 {
		t.Errorf("diff = %+v, want everything added", d)
	}
}
