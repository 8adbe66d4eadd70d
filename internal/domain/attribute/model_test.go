package attribute

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"skuforge/internal/core/id"
)

func TestGroupJSONRoundTrip(t *testing.T) {
	colorRef := id.New()
	sizeRef := id.New()

	groups := []*Group{
		{
			ID:   id.New(),
			Name: "Color",
			Kind: KindColor,
			Options: []Option{
				ColorOption{Ref: colorRef, Name: "Red", Hex: "#e53935"},
			},
			DisplayOrder: 0,
		},
		{
			ID:   id.New(),
			Name: "Size",
			Kind: KindSize,
			Options: []Option{
				SizeOption{Ref: sizeRef, Name: "M", SortOrder: 30},
			},
			DisplayOrder: 1,
		},
		{
			ID:   id.New(),
			Name: "Material",
			Kind: KindCustom,
			Options: []Option{
				CustomOption{Text: "Cotton"},
			},
			DisplayOrder: 2,
		},
	}

	data, err := json.Marshal(groups)
	require.NoError(t, err)

	var decoded []*Group
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)

	co, ok := decoded[0].Options[0].(ColorOption)
	require.True(t, ok, "color option lost its concrete type")
	require.Equal(t, colorRef, co.Ref)
	require.Equal(t, "#e53935", co.Hex)

	so, ok := decoded[1].Options[0].(SizeOption)
	require.True(t, ok, "size option lost its concrete type")
	require.Equal(t, sizeRef, so.Ref)
	require.Equal(t, 30, so.SortOrder)

	cu, ok := decoded[2].Options[0].(CustomOption)
	require.True(t, ok, "custom option lost its concrete type")
	require.Equal(t, "Cotton", cu.Text)
}

func TestGroupUnmarshalRejectsMalformedOptions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"color without ref", `{"id":"018f0000-0000-7000-8000-000000000001","name":"Color","kind":"color","options":[{"kind":"color","value":"Red"}]}`},
		{"size without ref", `{"id":"018f0000-0000-7000-8000-000000000001","name":"Size","kind":"size","options":[{"kind":"size","value":"M"}]}`},
		{"unknown option kind", `{"id":"018f0000-0000-7000-8000-000000000001","name":"X","kind":"custom","options":[{"kind":"material","value":"Wool"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Group
			if err := json.Unmarshal([]byte(tt.raw), &g); err == nil {
				t.Error("malformed group accepted")
			}
		})
	}
}

func TestKindCanonicalName(t *testing.T) {
	if got := KindColor.CanonicalName(); got != "Color" {
		t.Errorf("KindColor.CanonicalName() = %q", got)
	}
	if got := KindSize.CanonicalName(); got != "Size" {
		t.Errorf("KindSize.CanonicalName() = %q", got)
	}
	if got := KindCustom.CanonicalName(); got != "" {
		t.Errorf("KindCustom.CanonicalName() = %q, want empty", got)
	}
}
