package catalog

import (
	"context"
	"testing"

	"skuforge/internal/core/apperror"
)

type memRepo struct {
	colors []Color
	sizes  []Size
}

func (m *memRepo) ListColors(ctx context.Context) ([]Color, error) {
	return append([]Color(nil), m.colors...), nil
}

func (m *memRepo) CreateColor(ctx context.Context, c *Color) error {
	m.colors = append(m.colors, *c)
	return nil
}

func (m *memRepo) ColorNameExists(ctx context.Context, name string) (bool, error) {
	for _, c := range m.colors {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) ListSizes(ctx context.Context) ([]Size, error) {
	return append([]Size(nil), m.sizes...), nil
}

func (m *memRepo) CreateSize(ctx context.Context, s *Size) error {
	m.sizes = append(m.sizes, *s)
	return nil
}

func (m *memRepo) SizeNameExists(ctx context.Context, name string) (bool, error) {
	for _, s := range m.sizes {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateColorRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{})

	if err := svc.CreateColor(ctx, NewColor("red", "Red", "#e53935")); err != nil {
		t.Fatalf("CreateColor() error = %v", err)
	}

	err := svc.CreateColor(ctx, NewColor("red2", "Red", "#ff0000"))
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeDuplicate {
		t.Errorf("duplicate name: error = %v, want DUPLICATE_ENTRY", err)
	}
}

func TestCreateColorValidatesHex(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{})

	tests := []struct {
		name string
		hex  string
	}{
		{"missing hash", "e53935"},
		{"too short", "#e53"},
		{"not hex", "#zzzzzz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateColor(ctx, NewColor("x", "X", tt.hex))
			appErr, ok := apperror.AsAppError(err)
			if !ok || appErr.Code != apperror.CodeValidation {
				t.Errorf("CreateColor(%q) error = %v, want VALIDATION_ERROR", tt.hex, err)
			}
		})
	}
}

func TestCreateSizeTrimsNameBeforeDuplicateCheck(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{})

	if err := svc.CreateSize(ctx, NewSize("m", "M", 30)); err != nil {
		t.Fatalf("CreateSize() error = %v", err)
	}

	err := svc.CreateSize(ctx, NewSize("m2", "  M  ", 31))
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeDuplicate {
		t.Errorf("whitespace-padded duplicate: error = %v, want DUPLICATE_ENTRY", err)
	}
}

func TestSnapshotReflectsWrites(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{})

	before, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(before.Colors) != 0 || len(before.Sizes) != 0 {
		t.Fatalf("fresh snapshot not empty: %+v", before)
	}

	red := NewColor("red", "Red", "#e53935")
	if err := svc.CreateColor(ctx, red); err != nil {
		t.Fatal(err)
	}

	// the earlier snapshot stays stale; a new one sees the write
	if len(before.Colors) != 0 {
		t.Error("old snapshot mutated by a later write")
	}

	after, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Colors) != 1 {
		t.Fatalf("snapshot colors = %d, want 1", len(after.Colors))
	}
	if got := after.ColorByRef(red.ID); got == nil || got.Hex != "#e53935" {
		t.Errorf("ColorByRef = %+v", got)
	}
	if after.ColorByRef(NewColor("x", "X", "#000000").ID) != nil {
		t.Error("ColorByRef found an unknown ref")
	}
}
