package console

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cifpfbmoll/catalog-manager/internal/category"
	"github.com/cifpfbmoll/catalog-manager/internal/client"
	"github.com/cifpfbmoll/catalog-manager/internal/product"
)

func typeProduct(f productForm, s string) productForm {
	for _, r := range s {
		f, _ = f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func testProductForm() productForm {
	f := newProductForm(client.New("http://127.0.0.1:0"), DefaultStyles())
	return f.withCategories([]category.Category{
		{ID: 1, Name: "Tools"},
		{ID: 2, Name: "Food"},
	})
}

func TestProductFormNegativePriceBlockedLocally(t *testing.T) {
	f := testProductForm().openWith(nil)
	f = typeProduct(f, "Hammer")
	f.inputs[prodFieldPrice].SetValue("-1")
	f.catIdx = 1

	f, cmd := f.submit()
	assert.Nil(t, cmd)
	assert.False(t, f.processing)
	assert.Equal(t, "price must be zero or greater", f.errors["price"])
}

func TestProductFormNewRequiresCategory(t *testing.T) {
	f := testProductForm().openWith(nil)
	f = typeProduct(f, "Hammer")
	f.inputs[prodFieldPrice].SetValue("9.99")

	f, cmd := f.submit()
	assert.Nil(t, cmd)
	assert.Equal(t, "category is required", f.errors["category_id"])
}

func TestProductFormEditKeepsNullCategory(t *testing.T) {
	rec := product.Product{ID: 3, Name: "Hammer", Price: decimal.RequireFromString("9.99"), Status: "active"}
	f := testProductForm().openWith(&rec)

	built, errs := f.buildRecord()
	assert.False(t, errs.Any())
	assert.Nil(t, built.CategoryID)
}

func TestProductFormUnparsablePriceBlocked(t *testing.T) {
	f := testProductForm().openWith(nil)
	f = typeProduct(f, "Hammer")
	f.inputs[prodFieldPrice].SetValue("cheap")
	f.catIdx = 1

	f, cmd := f.submit()
	assert.Nil(t, cmd)
	assert.Equal(t, "price must be a number", f.errors["price"])
}

func TestProductFormOpenWithRecordPrefills(t *testing.T) {
	cat := 2
	rec := product.Product{
		ID: 5, Name: "Bread", Price: decimal.RequireFromString("2.50"),
		Stock: 12, Status: "discontinued", CategoryID: &cat,
	}

	f := testProductForm().openWith(&rec)
	assert.Equal(t, "Bread", f.inputs[prodFieldName].Value())
	assert.Equal(t, "2.5", f.inputs[prodFieldPrice].Value())
	assert.Equal(t, "12", f.inputs[prodFieldStock].Value())
	assert.Equal(t, "discontinued", product.Statuses[f.status])
	assert.Equal(t, 2, f.catIdx)
}

func TestProductFormCategorySelectionSurvivesRefresh(t *testing.T) {
	f := testProductForm()
	f.catIdx = 2 // Food

	f = f.withCategories([]category.Category{
		{ID: 2, Name: "Food"},
		{ID: 9, Name: "Health"},
	})
	assert.Equal(t, 1, f.catIdx)

	f = f.withCategories([]category.Category{{ID: 9, Name: "Health"}})
	assert.Equal(t, 0, f.catIdx)
}

func TestProductFormDropsStaleResponse(t *testing.T) {
	f := testProductForm().openWith(nil)
	f.processing = true

	f, _ = f.update(productSavedMsg{
		token: uuid.New(),
		err:   &client.ValidationError{Fields: map[string]string{"name": "taken"}},
	})
	assert.True(t, f.processing)
	assert.False(t, f.errors.Any())
}

func TestProductFormValidPayloadSubmits(t *testing.T) {
	f := testProductForm().openWith(nil)
	f = typeProduct(f, "Hammer")
	f.inputs[prodFieldPrice].SetValue("12.50")
	f.inputs[prodFieldStock].SetValue("4")
	f.catIdx = 1

	f, cmd := f.submit()
	require.NotNil(t, cmd)
	assert.True(t, f.processing)
	assert.False(t, f.errors.Any())
}
