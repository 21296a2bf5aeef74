package console

import (
	"github.com/google/uuid"

	"github.com/cifpfbmoll/catalog-manager/internal/category"
	"github.com/cifpfbmoll/catalog-manager/internal/client"
)

// categoriesLoadedMsg delivers a /categories page load or scoped reload.
type categoriesLoadedMsg struct {
	categories []category.Category
	err        error
}

// productsLoadedMsg delivers a /products page load. scoped reloads carry
// only the product list; the category set already held is kept.
type productsLoadedMsg struct {
	page   *client.ProductsPage
	scoped bool
	err    error
}

// categorySavedMsg delivers the outcome of an in-flight category create or
// update. token identifies the form session that issued the request so a
// response landing after the modal was closed (or reopened) is dropped.
type categorySavedMsg struct {
	token uuid.UUID
	err   error
}

type productSavedMsg struct {
	token uuid.UUID
	err   error
}

type categoryDeletedMsg struct {
	err error
}

type productDeletedMsg struct {
	err error
}
