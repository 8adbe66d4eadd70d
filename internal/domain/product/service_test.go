package product

import (
	"context"
	"testing"

	"skuforge/internal/core/apperror"
	"skuforge/internal/core/id"
	"skuforge/internal/core/types"
	"skuforge/internal/domain/attribute"
	"skuforge/internal/domain/variant"
)

type memRepo struct {
	saved *Payload
	byID  map[id.ID]*Payload
}

func newMemRepo() *memRepo {
	return &memRepo{byID: make(map[id.ID]*Payload)}
}

func (r *memRepo) Save(_ context.Context, payload *Payload) error {
	r.saved = payload
	r.byID[payload.ProductID] = payload
	return nil
}

func (r *memRepo) GetByID(_ context.Context, productID id.ID) (*Payload, error) {
	p, ok := r.byID[productID]
	if !ok {
		return nil, apperror.NewNotFound("product", productID)
	}
	return p, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, nil, types.MustMoney("0.30"), types.MustMoney("0.15"))
}

func TestSubmitSimpleProduct(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	v := variant.SynthesizeSimple("plain-tee", types.MustMoney("100"))
	payload, err := svc.Submit(context.Background(), SubmitInput{
		Name:     "Plain Tee",
		Mode:     ModeSimple,
		Variants: []variant.Variant{v},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if repo.saved != payload {
		t.Fatal("payload was not handed to the repository")
	}
	if id.IsNil(payload.ProductID) {
		t.Error("new submission must be assigned a product id")
	}
	if got := types.FormatPrice(payload.Variants[0].Price); got != "149.50" {
		t.Errorf("finalized price = %s, want 149.50", got)
	}
	if payload.Variants[0].SKU != "PLAINTEE" {
		t.Errorf("SKU = %q, want PLAINTEE", payload.Variants[0].SKU)
	}
}

func TestSubmitVATIncludedSkipsMarkup(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	v := variant.SynthesizeSimple("tee", types.MustMoney("149.99"))
	payload, err := svc.Submit(context.Background(), SubmitInput{
		Name:        "Tee",
		Mode:        ModeSimple,
		VATIncluded: true,
		Variants:    []variant.Variant{v},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if got := types.FormatPrice(payload.Variants[0].Price); got != "149.99" {
		t.Errorf("vat-included price = %s, want 149.99", got)
	}
}

func TestSubmitFinalizesSalePriceIndependently(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	v := variant.SynthesizeSimple("tee", types.MustMoney("100"))
	sale := types.MustMoney("80")
	v.SalePrice = &sale

	payload, err := svc.Submit(context.Background(), SubmitInput{
		Name:     "Tee",
		Mode:     ModeSimple,
		Variants: []variant.Variant{v},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if payload.Variants[0].SalePrice == nil {
		t.Fatal("sale price lost during submission")
	}
	if got := types.FormatPrice(*payload.Variants[0].SalePrice); got != "119.60" {
		t.Errorf("finalized sale price = %s, want 119.60", got)
	}
}

func TestSubmitRejectsNegativePrice(t *testing.T) {
	svc := newTestService(newMemRepo())

	v := variant.SynthesizeSimple("tee", types.MustMoney("-1"))
	_, err := svc.Submit(context.Background(), SubmitInput{
		Name:     "Tee",
		Mode:     ModeSimple,
		Variants: []variant.Variant{v},
	})
	if !apperror.IsInvalidPriceInput(err) {
		t.Fatalf("Submit() error = %v, want INVALID_PRICE_INPUT", err)
	}
	appErr, _ := apperror.AsAppError(err)
	if appErr.Details["variantIndex"] != 0 {
		t.Errorf("error must name the failing variant, got details %v", appErr.Details)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()
	simple := variant.SynthesizeSimple("tee", types.MustMoney("10"))

	tests := []struct {
		name string
		in   SubmitInput
	}{
		{"unknown mode", SubmitInput{Name: "X", Mode: Mode("bundle"), Variants: []variant.Variant{simple}}},
		{"missing name", SubmitInput{Mode: ModeSimple, Variants: []variant.Variant{simple}}},
		{"no variants", SubmitInput{Name: "X", Mode: ModeVariable}},
		{"simple with two variants", SubmitInput{Name: "X", Mode: ModeSimple, Variants: []variant.Variant{simple, simple}}},
		{"empty sku", SubmitInput{Name: "X", Mode: ModeSimple, Variants: []variant.Variant{{Price: types.MustMoney("10")}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Submit(ctx, tt.in); err == nil {
				t.Error("Submit() accepted invalid input")
			}
		})
	}
}

func TestSubmitVariableProduct(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	groups := []*attribute.Group{
		{ID: id.New(), Name: "Color", Kind: attribute.KindCustom, DisplayOrder: 0,
			Options: []attribute.Option{attribute.CustomOption{Text: "Red"}, attribute.CustomOption{Text: "Black"}}},
		{ID: id.New(), Name: "Size", Kind: attribute.KindCustom, DisplayOrder: 1,
			Options: []attribute.Option{attribute.CustomOption{Text: "S"}, attribute.CustomOption{Text: "M"}}},
	}
	variants, diff, err := Regenerate(groups, "tee", types.MustMoney("100"), nil)
	if err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}
	if len(variants) != 4 {
		t.Fatalf("Regenerate() produced %d variants, want 4", len(variants))
	}
	if len(diff.Added) != 4 || len(diff.Removed) != 0 {
		t.Fatalf("first generation diff = %+v, want 4 added", diff)
	}

	payload, err := svc.Submit(context.Background(), SubmitInput{
		Name:     "Tee",
		Mode:     ModeVariable,
		Groups:   groups,
		Variants: variants,
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(payload.Variants) != 4 {
		t.Fatalf("saved %d variants, want 4", len(payload.Variants))
	}

	got, err := svc.Get(context.Background(), payload.ProductID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ProductID != payload.ProductID {
		t.Errorf("Get() returned product %s, want %s", got.ProductID, payload.ProductID)
	}
}

func TestRegenerateDiffAgainstPrevious(t *testing.T) {
	groups := []*attribute.Group{
		{ID: id.New(), Name: "Size", Kind: attribute.KindCustom, DisplayOrder: 0,
			Options: []attribute.Option{attribute.CustomOption{Text: "S"}, attribute.CustomOption{Text: "M"}}},
	}
	prev, _, err := Regenerate(groups, "tee", types.MustMoney("10"), nil)
	if err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	groups[0].Options = append(groups[0].Options, attribute.CustomOption{Text: "L"})
	fresh, diff, err := Regenerate(groups, "tee", types.MustMoney("10"), prev)
	if err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	if len(fresh) != 3 {
		t.Fatalf("regenerated %d variants, want 3", len(fresh))
	}
	if len(diff.Unchanged) != 2 || len(diff.Added) != 1 || len(diff.Removed) != 0 {
		t.Errorf("diff = %+v, want 2 unchanged / 1 added / 0 removed", diff)
	}
}

func TestRegenerateNoValidGroups(t *testing.T) {
	groups := []*attribute.Group{
		{ID: id.New(), Name: "", Kind: attribute.KindCustom,
			Options: []attribute.Option{attribute.CustomOption{Text: "Red"}}},
	}
	_, _, err := Regenerate(groups, "tee", types.MustMoney("10"), nil)
	if !apperror.IsNoValidGroups(err) {
		t.Fatalf("Regenerate() error = %v, want NO_VALID_ATTRIBUTE_GROUPS", err)
	}
}
