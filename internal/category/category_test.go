package category

import "testing"

func TestNewDefaults(t *testing.T) {
	c := New()
	if !c.Active {
		t.Error("new categories should default to active")
	}
	if c.Color != DefaultColor {
		t.Errorf("default color = %q, want %q", c.Color, DefaultColor)
	}
	if c.IndustryType != "retail" {
		t.Errorf("default industry = %q, want retail", c.IndustryType)
	}
	if c.Priority != 0 {
		t.Errorf("default priority = %d, want 0", c.Priority)
	}
}

func TestValidate(t *testing.T) {
	valid := New()
	valid.Name = "Food Trucks"

	if errs := Validate(valid); errs.Any() {
		t.Fatalf("expected valid category, got %v", errs)
	}

	cases := []struct {
		name    string
		mutate  func(*Category)
		wantKey string
	}{
		{"missing name", func(c *Category) { c.Name = "   " }, "name"},
		{"industry outside enum", func(c *Category) { c.IndustryType = "aerospace" }, "industry_type"},
		{"bad color", func(c *Category) { c.Color = "teal" }, "color"},
		{"bad slug", func(c *Category) { c.Slug = "Not A Slug" }, "slug"},
	}
	for _, tc := range cases {
		c := valid
		tc.mutate(&c)
		errs := Validate(c)
		if _, ok := errs[tc.wantKey]; !ok {
			t.Errorf("%s: expected error on %q, got %v", tc.name, tc.wantKey, errs)
		}
	}
}

func TestValidateAllowsEmptySlugAndColor(t *testing.T) {
	c := New()
	c.Name = "Retail"
	c.Slug = ""
	c.Color = ""
	if errs := Validate(c); errs.Any() {
		t.Errorf("empty slug and color should pass (server fills them), got %v", errs)
	}
}
