package product

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewDefaults(t *testing.T) {
	p := New()
	if p.Status != "active" {
		t.Errorf("default status = %q, want active", p.Status)
	}
	if p.Stock != 0 {
		t.Errorf("default stock = %d, want 0", p.Stock)
	}
	if p.CategoryID != nil {
		t.Error("new products should carry no category reference")
	}
}

func TestValidate(t *testing.T) {
	catID := 3
	valid := New()
	valid.Name = "Espresso Machine"
	valid.Price = decimal.RequireFromString("249.90")
	valid.CategoryID = &catID

	if errs := Validate(valid, true); errs.Any() {
		t.Fatalf("expected valid product, got %v", errs)
	}

	cases := []struct {
		name    string
		mutate  func(*Product)
		isNew   bool
		wantKey string
	}{
		{"missing name", func(p *Product) { p.Name = "" }, true, "name"},
		{"negative price", func(p *Product) { p.Price = decimal.NewFromInt(-1) }, true, "price"},
		{"negative stock", func(p *Product) { p.Stock = -4 }, true, "stock"},
		{"status outside enum", func(p *Product) { p.Status = "archived" }, true, "status"},
		{"new without category", func(p *Product) { p.CategoryID = nil }, true, "category_id"},
	}
	for _, tc := range cases {
		p := valid
		tc.mutate(&p)
		errs := Validate(p, tc.isNew)
		if _, ok := errs[tc.wantKey]; !ok {
			t.Errorf("%s: expected error on %q, got %v", tc.name, tc.wantKey, errs)
		}
	}
}

func TestValidateAllowsNullCategoryOnUpdate(t *testing.T) {
	p := New()
	p.Name = "Legacy Item"
	if errs := Validate(p, false); errs.Any() {
		t.Errorf("existing records may carry a null category, got %v", errs)
	}
}
