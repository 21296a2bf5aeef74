package console

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cifpfbmoll/catalog-manager/internal/category"
	"github.com/cifpfbmoll/catalog-manager/internal/client"
	"github.com/cifpfbmoll/catalog-manager/internal/validate"
)

func typeInto(f categoryForm, s string) categoryForm {
	for _, r := range s {
		f, _ = f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func testCategoryForm() categoryForm {
	return newCategoryForm(client.New("http://127.0.0.1:0"), DefaultStyles())
}

func TestCategoryFormSlugFollowsName(t *testing.T) {
	f := testCategoryForm().openWith(nil)

	f = typeInto(f, "Power Tools")
	assert.Equal(t, "power-tools", f.inputs[catFieldSlug].Value())
}

func TestCategoryFormManualSlugStopsDerivation(t *testing.T) {
	f := testCategoryForm().openWith(nil)
	f = typeInto(f, "Power Tools")

	f = f.setFocus(catFieldSlug)
	f = typeInto(f, "x")
	require.True(t, f.slugTouched)

	f = f.setFocus(catFieldName)
	f = typeInto(f, " Pro")
	assert.Equal(t, "power-toolsx", f.inputs[catFieldSlug].Value())
	assert.Equal(t, "Power Tools Pro", f.inputs[catFieldName].Value())
}

func TestCategoryFormOpenResetsPreviousSession(t *testing.T) {
	f := testCategoryForm().openWith(nil)
	f = typeInto(f, "Leftovers")
	f.errors = validate.Errors{"name": "whatever"}
	prev := f.token

	f = f.openWith(nil)
	assert.Empty(t, f.inputs[catFieldName].Value())
	assert.Empty(t, f.inputs[catFieldSlug].Value())
	assert.Equal(t, category.DefaultColor, f.inputs[catFieldColor].Value())
	assert.True(t, f.active)
	assert.False(t, f.errors.Any())
	assert.False(t, f.slugTouched)
	assert.NotEqual(t, prev, f.token)
}

func TestCategoryFormOpenWithRecordPrefills(t *testing.T) {
	desc := "hand tools"
	rec := category.Category{
		ID: 7, Name: "Tools", Slug: "tools", Description: &desc,
		IndustryType: "manufacturing", Color: "#112233", Active: false,
		Priority: 5,
	}

	f := testCategoryForm().openWith(&rec)
	assert.Equal(t, "Tools", f.inputs[catFieldName].Value())
	assert.Equal(t, "tools", f.inputs[catFieldSlug].Value())
	assert.Equal(t, "hand tools", f.inputs[catFieldDescription].Value())
	assert.Equal(t, "#112233", f.inputs[catFieldColor].Value())
	assert.Equal(t, "5", f.inputs[catFieldPriority].Value())
	assert.Equal(t, "manufacturing", category.IndustryTypes[f.industry])
	assert.False(t, f.active)
}

func TestCategoryFormTypingClearsFieldError(t *testing.T) {
	f := testCategoryForm().openWith(nil)
	f.errors = validate.Errors{"name": "name is required", "color": "bad color"}

	f = typeInto(f, "T")
	_, hasName := f.errors["name"]
	assert.False(t, hasName)
	assert.Equal(t, "bad color", f.errors["color"])
}

func TestCategoryFormInvalidPayloadNeverSubmits(t *testing.T) {
	f := testCategoryForm().openWith(nil)
	f.inputs[catFieldColor].SetValue("teal")

	f, cmd := f.submit()
	assert.Nil(t, cmd)
	assert.False(t, f.processing)
	assert.Equal(t, "name is required", f.errors["name"])
	assert.NotEmpty(t, f.errors["color"])
}

func TestCategoryFormBadPriorityBlocked(t *testing.T) {
	f := testCategoryForm().openWith(nil)
	f = typeInto(f, "Tools")
	f.inputs[catFieldPriority].SetValue("high")

	f, cmd := f.submit()
	assert.Nil(t, cmd)
	assert.Equal(t, "priority must be a whole number", f.errors["priority"])
}

func TestCategoryFormSecondSubmitWhileProcessingIsNoop(t *testing.T) {
	f := testCategoryForm().openWith(nil)
	f = typeInto(f, "Tools")

	f, cmd := f.submit()
	require.NotNil(t, cmd)
	require.True(t, f.processing)

	_, cmd = f.submit()
	assert.Nil(t, cmd)
}

func TestCategoryFormDropsStaleResponse(t *testing.T) {
	f := testCategoryForm().openWith(nil)
	f.processing = true

	f, _ = f.update(categorySavedMsg{
		token: uuid.New(),
		err:   &client.ValidationError{Fields: map[string]string{"name": "taken"}},
	})
	assert.True(t, f.processing)
	assert.False(t, f.errors.Any())
}

func TestCategoryFormShowsServerFieldErrors(t *testing.T) {
	f := testCategoryForm().openWith(nil)
	f.processing = true

	f, _ = f.update(categorySavedMsg{
		token: f.token,
		err:   &client.ValidationError{Fields: map[string]string{"slug": "slug is already in use"}},
	})
	assert.False(t, f.processing)
	assert.Equal(t, "slug is already in use", f.errors["slug"])
	assert.True(t, f.isOpen)
}
