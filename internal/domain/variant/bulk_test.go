package variant

import (
	"testing"

	"skuforge/internal/core/apperror"
	"skuforge/internal/core/sequence"
	"skuforge/internal/core/types"
)

func workingSet() []Variant {
	return []Variant{
		{SKU: "TEE-RED-S", Price: types.MustMoney("10.00"), InStock: 3, CombinationID: "custom:Red|custom:S"},
		{SKU: "TEE-RED-M", Price: types.MustMoney("10.00"), InStock: 5, CombinationID: "custom:Red|custom:M"},
		{SKU: "TEE-BLACK-S", Price: types.MustMoney("12.00"), InStock: 0, CombinationID: "custom:Black|custom:S"},
	}
}

func TestBulkSetPriceIsTotalAndExclusive(t *testing.T) {
	vs := workingSet()
	BulkSetPrice(vs, types.MustMoney("15.50"))

	for i, v := range vs {
		if !v.Price.Equal(types.MustMoney("15.50")) {
			t.Errorf("variant %d price = %s, want 15.50", i, v.Price)
		}
	}
	// only the price changes
	if vs[1].InStock != 5 || vs[0].SKU != "TEE-RED-S" {
		t.Error("bulk price set touched fields other than price")
	}
}

func TestBulkSetStockIsTotalAndExclusive(t *testing.T) {
	vs := workingSet()
	BulkSetStock(vs, 20)

	for i, v := range vs {
		if v.InStock != 20 {
			t.Errorf("variant %d stock = %d, want 20", i, v.InStock)
		}
	}
	if !vs[2].Price.Equal(types.MustMoney("12.00")) {
		t.Error("bulk stock set touched price")
	}
}

func TestBulkSettersNoOpOnEmptySet(t *testing.T) {
	BulkSetPrice(nil, types.MustMoney("1.00"))
	BulkSetStock([]Variant{}, 5)
}

func TestUpdateOne(t *testing.T) {
	vs := workingSet()
	sku := "TEE-CUSTOM"
	sale := types.MustMoney("8.00")
	back := true

	err := UpdateOne(vs, 1, Patch{SKU: &sku, SalePrice: &sale, Backorderable: &back})
	if err != nil {
		t.Fatalf("UpdateOne() error = %v", err)
	}

	if vs[1].SKU != "TEE-CUSTOM" || !vs[1].Backorderable {
		t.Errorf("patched variant = %+v", vs[1])
	}
	if vs[1].SalePrice == nil || !vs[1].SalePrice.Equal(sale) {
		t.Errorf("sale price = %v, want 8.00", vs[1].SalePrice)
	}
	// nil patch fields are left alone
	if !vs[1].Price.Equal(types.MustMoney("10.00")) || vs[1].InStock != 5 {
		t.Errorf("unpatched fields changed: %+v", vs[1])
	}
	// neighbours untouched
	if vs[0].SKU != "TEE-RED-S" || vs[2].SKU != "TEE-BLACK-S" {
		t.Error("UpdateOne touched other variants")
	}
}

func TestUpdateOneIndexOutOfRange(t *testing.T) {
	vs := workingSet()
	for _, idx := range []int{-1, 3, 99} {
		if err := UpdateOne(vs, idx, Patch{}); !apperror.IsIndexOutOfRange(err) {
			t.Errorf("UpdateOne(%d) error = %v, want INDEX_OUT_OF_RANGE", idx, err)
		}
	}
}

func TestDuplicateSuffixesAreUnique(t *testing.T) {
	vs := workingSet()
	seq := &sequence.Counter{}

	vs, err := Duplicate(vs, 0, seq)
	if err != nil {
		t.Fatal(err)
	}
	vs, err = Duplicate(vs, 0, seq)
	if err != nil {
		t.Fatal(err)
	}

	if len(vs) != 5 {
		t.Fatalf("got %d variants, want 5", len(vs))
	}
	if vs[3].SKU != "TEE-RED-S-copy1" || vs[4].SKU != "TEE-RED-S-copy2" {
		t.Errorf("duplicate SKUs = %q, %q", vs[3].SKU, vs[4].SKU)
	}
	if vs[3].CombinationID != "custom:Red|custom:S#copy1" {
		t.Errorf("duplicate combination id = %q", vs[3].CombinationID)
	}

	skus := make(map[string]bool)
	for _, v := range vs {
		if skus[v.SKU] {
			t.Fatalf("duplicate SKU %q in working set", v.SKU)
		}
		skus[v.SKU] = true
	}
}

func TestDuplicateIsDeepCopy(t *testing.T) {
	sale := types.MustMoney("8.00")
	vs := []Variant{{
		SKU:       "TEE",
		Price:     types.MustMoney("10.00"),
		SalePrice: &sale,
		Attributes: []Attribute{
			{Kind: "custom", Value: "Red"},
		},
	}}

	vs, err := Duplicate(vs, 0, &sequence.Counter{})
	if err != nil {
		t.Fatal(err)
	}

	vs[1].Attributes[0].Value = "mutated"
	*vs[1].SalePrice = types.MustMoney("1.00")

	if vs[0].Attributes[0].Value != "Red" {
		t.Error("duplicate shares attributes with the original")
	}
	if !vs[0].SalePrice.Equal(sale) {
		t.Error("duplicate shares sale price pointer with the original")
	}
}

func TestDuplicateSimpleVariantHasNoCombinationSuffix(t *testing.T) {
	vs := []Variant{{SKU: "PLAIN", Price: types.Zero()}}

	vs, err := Duplicate(vs, 0, &sequence.Counter{})
	if err != nil {
		t.Fatal(err)
	}
	if vs[1].SKU != "PLAIN-copy1" {
		t.Errorf("SKU = %q", vs[1].SKU)
	}
	if vs[1].CombinationID != "" {
		t.Errorf("simple duplicate gained combination id %q", vs[1].CombinationID)
	}
}

func TestDeleteAtPreservesOrder(t *testing.T) {
	vs := workingSet()

	vs, err := DeleteAt(vs, 1)
	if err != nil {
		t.Fatalf("DeleteAt() error = %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("got %d variants, want 2", len(vs))
	}
	if vs[0].SKU != "TEE-RED-S" || vs[1].SKU != "TEE-BLACK-S" {
		t.Errorf("order after delete = [%s, %s]", vs[0].SKU, vs[1].SKU)
	}

	if _, err := DeleteAt(vs, 2); !apperror.IsIndexOutOfRange(err) {
		t.Errorf("DeleteAt(2) error = %v, want INDEX_OUT_OF_RANGE", err)
	}
}
