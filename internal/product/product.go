package product

import (
	"github.com/shopspring/decimal"

	"github.com/cifpfbmoll/catalog-manager/internal/validate"
)

// Product is a priced, stocked catalog item optionally attached to a
// category.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Status      string          `json:"status"`
	CategoryID  *int            `json:"category_id"`
	CreatedAt   *string         `json:"created_at,omitempty"`
	UpdatedAt   *string         `json:"updated_at,omitempty"`
}

// Statuses contains the supported product states.
var Statuses = []string{"active", "inactive", "discontinued"}

// New returns a product carrying the create-mode defaults.
func New() Product {
	return Product{Status: "active"}
}

// Validate applies the authoritative rule set. The category reference is
// required for new submissions only; existing records may carry a null one.
func Validate(p Product, isNew bool) validate.Errors {
	errs := validate.Errors{}
	if !validate.Required(p.Name) {
		errs["name"] = "name is required"
	}
	if p.Price.IsNegative() {
		errs["price"] = "price must be zero or greater"
	}
	if p.Stock < 0 {
		errs["stock"] = "stock must be zero or greater"
	}
	if !validate.OneOf(p.Status, Statuses) {
		errs["status"] = "status must be one of: active, inactive, discontinued"
	}
	if isNew && p.CategoryID == nil {
		errs["category_id"] = "category is required"
	}
	return errs
}
