package category

import (
	"github.com/cifpfbmoll/catalog-manager/internal/slugify"
	"github.com/cifpfbmoll/catalog-manager/internal/validate"
)

// Category is an industry-tagged grouping of products. JSON tags follow the
// snake_case convention used across the API.
type Category struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Slug         string            `json:"slug"`
	Description  *string           `json:"description,omitempty"`
	IndustryType string            `json:"industry_type"`
	Color        string            `json:"color"`
	Icon         *string           `json:"icon,omitempty"`
	Active       bool              `json:"active"`
	Priority     int               `json:"priority"`
	Attributes   map[string]string `json:"attributes,omitempty"`
	CreatedAt    *string           `json:"created_at,omitempty"`
	UpdatedAt    *string           `json:"updated_at,omitempty"`
}

// IndustryTypes contains the supported industry tags. Values outside this
// set are rejected on write.
var IndustryTypes = []string{
	"manufacturing",
	"retail",
	"food",
	"health",
	"education",
	"services",
}

// DefaultColor is the teal used when a category specifies no color.
const DefaultColor = "#4ECDC4"

// New returns a category carrying the create-mode defaults. Decoding a
// request body into it leaves omitted fields at these values.
func New() Category {
	return Category{
		IndustryType: "retail",
		Color:        DefaultColor,
		Active:       true,
	}
}

// Validate applies the authoritative rule set. The console runs the same
// checks before submit, so client and server coverage cannot drift.
func Validate(c Category) validate.Errors {
	errs := validate.Errors{}
	if !validate.Required(c.Name) {
		errs["name"] = "name is required"
	}
	if c.Slug != "" && !slugify.IsValid(c.Slug) {
		errs["slug"] = "slug may only contain lowercase letters, digits, hyphens and underscores"
	}
	if !validate.OneOf(c.IndustryType, IndustryTypes) {
		errs["industry_type"] = "industry_type must be one of: manufacturing, retail, food, health, education, services"
	}
	if c.Color != "" && !validate.HexColor(c.Color) {
		errs["color"] = "color must be a hex value like #4ECDC4"
	}
	return errs
}
