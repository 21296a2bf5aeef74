package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cifpfbmoll/catalog-manager/internal/category"
	"github.com/cifpfbmoll/catalog-manager/internal/client"
	"github.com/cifpfbmoll/catalog-manager/internal/product"
	"github.com/cifpfbmoll/catalog-manager/internal/validate"
)

const (
	prodFieldName = iota
	prodFieldDescription
	prodFieldPrice
	prodFieldStock
	prodFieldStatus
	prodFieldCategory
	prodFieldCount
)

var prodFieldKeys = [prodFieldCount]string{
	"name", "description", "price", "stock", "status", "category_id",
}

type productForm struct {
	api    *client.Client
	styles Styles

	isOpen  bool
	editing *product.Product
	token   uuid.UUID

	inputs [4]textinput.Model
	focus  int
	status int
	// catIdx indexes the category selector: 0 is "none", i>0 picks
	// categories[i-1].
	catIdx     int
	categories []category.Category

	errors     validate.Errors
	generalErr string
	processing bool
}

func newProductForm(api *client.Client, styles Styles) productForm {
	f := productForm{api: api, styles: styles, errors: validate.Errors{}}
	f.inputs[prodFieldName] = newInput("product name")
	f.inputs[prodFieldDescription] = newInput("description (optional)")
	f.inputs[prodFieldPrice] = newInput("0.00")
	f.inputs[prodFieldStock] = newInput("0")
	return f
}

// withCategories refreshes the selector options, keeping the current
// selection if the referenced category still exists.
func (f productForm) withCategories(cats []category.Category) productForm {
	var selected *int
	if f.catIdx > 0 && f.catIdx <= len(f.categories) {
		id := f.categories[f.catIdx-1].ID
		selected = &id
	}
	f.categories = cats
	f.catIdx = 0
	if selected != nil {
		for i, c := range cats {
			if c.ID == *selected {
				f.catIdx = i + 1
				break
			}
		}
	}
	return f
}

func (f productForm) openWith(existing *product.Product) productForm {
	src := product.New()
	if existing != nil {
		src = *existing
	}

	f.isOpen = true
	f.editing = existing
	f.token = uuid.New()
	f.errors = validate.Errors{}
	f.generalErr = ""
	f.processing = false

	f.inputs[prodFieldName].SetValue(src.Name)
	f.inputs[prodFieldDescription].SetValue(strOrEmpty(src.Description))
	if existing != nil {
		f.inputs[prodFieldPrice].SetValue(src.Price.String())
	} else {
		f.inputs[prodFieldPrice].SetValue("")
	}
	f.inputs[prodFieldStock].SetValue(strconv.Itoa(src.Stock))
	f.status = indexOf(src.Status, product.Statuses)
	if f.status < 0 {
		f.status = 0
	}
	f.catIdx = 0
	if src.CategoryID != nil {
		for i, c := range f.categories {
			if c.ID == *src.CategoryID {
				f.catIdx = i + 1
				break
			}
		}
	}

	return f.setFocus(prodFieldName)
}

func (f productForm) closeForm() productForm {
	f.isOpen = false
	f.editing = nil
	f.processing = false
	return f
}

func (f productForm) setFocus(i int) productForm {
	f.focus = i
	for idx := range f.inputs {
		f.inputs[idx].Blur()
	}
	if i < len(f.inputs) {
		f.inputs[i].Focus()
	}
	return f
}

func (f productForm) update(msg tea.Msg) (productForm, tea.Cmd) {
	switch msg := msg.(type) {
	case productSavedMsg:
		if !f.isOpen || msg.token != f.token {
			return f, nil
		}
		f.processing = false
		if msg.err == nil {
			return f, nil
		}
		var verr *client.ValidationError
		if errors.As(msg.err, &verr) {
			f.errors.Merge(verr.Fields)
		} else {
			f.generalErr = "could not save the product"
		}
		return f, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f.closeForm(), nil
		case "enter":
			return f.submit()
		case "tab", "down":
			return f.setFocus((f.focus + 1) % prodFieldCount), nil
		case "shift+tab", "up":
			return f.setFocus((f.focus - 1 + prodFieldCount) % prodFieldCount), nil
		}

		switch f.focus {
		case prodFieldStatus:
			n := len(product.Statuses)
			switch msg.String() {
			case "left":
				f.status = (f.status - 1 + n) % n
			case "right", " ":
				f.status = (f.status + 1) % n
			default:
				return f, nil
			}
			delete(f.errors, "status")
			return f, nil
		case prodFieldCategory:
			n := len(f.categories) + 1
			switch msg.String() {
			case "left":
				f.catIdx = (f.catIdx - 1 + n) % n
			case "right", " ":
				f.catIdx = (f.catIdx + 1) % n
			default:
				return f, nil
			}
			delete(f.errors, "category_id")
			return f, nil
		}

		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		delete(f.errors, prodFieldKeys[f.focus])
		return f, cmd
	}
	return f, nil
}

func (f productForm) submit() (productForm, tea.Cmd) {
	if f.processing {
		return f, nil
	}
	rec, errs := f.buildRecord()
	if errs.Any() {
		f.errors = errs
		return f, nil
	}

	f.processing = true
	f.generalErr = ""
	api, token, editing := f.api, f.token, f.editing
	return f, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var err error
		if editing != nil {
			_, err = api.UpdateProduct(ctx, editing.ID, rec)
		} else {
			_, err = api.CreateProduct(ctx, rec)
		}
		return productSavedMsg{token: token, err: err}
	}
}

func (f productForm) buildRecord() (product.Product, validate.Errors) {
	rec := product.New()
	rec.Name = f.inputs[prodFieldName].Value()
	rec.Description = ptrOrNil(f.inputs[prodFieldDescription].Value())
	rec.Status = product.Statuses[f.status]
	if f.catIdx > 0 && f.catIdx <= len(f.categories) {
		id := f.categories[f.catIdx-1].ID
		rec.CategoryID = &id
	}

	parseErrs := validate.Errors{}
	pv := strings.TrimSpace(f.inputs[prodFieldPrice].Value())
	if pv == "" {
		parseErrs["price"] = "price is required"
	} else if d, err := decimal.NewFromString(pv); err != nil {
		parseErrs["price"] = "price must be a number"
	} else {
		rec.Price = d
	}
	sv := strings.TrimSpace(f.inputs[prodFieldStock].Value())
	if sv == "" {
		parseErrs["stock"] = "stock is required"
	} else if n, err := strconv.Atoi(sv); err != nil {
		parseErrs["stock"] = "stock must be a whole number"
	} else {
		rec.Stock = n
	}

	errs := product.Validate(rec, f.editing == nil)
	errs.Merge(parseErrs)
	return rec, errs
}

func (f productForm) view() string {
	if !f.isOpen {
		return ""
	}

	title := "New Product"
	if f.editing != nil {
		title = "Edit Product"
	}

	var sb strings.Builder
	sb.WriteString(f.styles.Title.Render(title) + "\n\n")
	if f.generalErr != "" {
		sb.WriteString(f.styles.Error.Render(f.generalErr) + "\n\n")
	}

	labels := [prodFieldCount]string{
		"Name", "Description", "Price", "Stock", "Status", "Category",
	}
	for i := 0; i < len(f.inputs); i++ {
		sb.WriteString(f.styles.Label.Render(labels[i]) + "\n")
		sb.WriteString(f.inputs[i].View() + "\n")
		if msg, ok := f.errors[prodFieldKeys[i]]; ok {
			sb.WriteString(f.styles.Error.Render(msg) + "\n")
		}
	}

	sb.WriteString(f.styles.Label.Render(labels[prodFieldStatus]) + "\n")
	sb.WriteString(f.selectorView(prodFieldStatus, statusLabel(product.Statuses[f.status])) + "\n")
	if msg, ok := f.errors["status"]; ok {
		sb.WriteString(f.styles.Error.Render(msg) + "\n")
	}

	sb.WriteString(f.styles.Label.Render(labels[prodFieldCategory]) + "\n")
	catName := "none"
	if f.catIdx > 0 && f.catIdx <= len(f.categories) {
		catName = f.categories[f.catIdx-1].Name
	}
	sb.WriteString(f.selectorView(prodFieldCategory, catName) + "\n")
	if msg, ok := f.errors["category_id"]; ok {
		sb.WriteString(f.styles.Error.Render(msg) + "\n")
	}

	if f.processing {
		sb.WriteString("\n" + f.styles.Muted.Render("saving...") + "\n")
	}
	sb.WriteString("\n" + f.styles.Help.Render("enter save · esc cancel · tab next field"))
	return f.styles.Modal.Render(sb.String())
}

func (f productForm) selectorView(field int, value string) string {
	marker := "  "
	if f.focus == field {
		marker = "> "
	}
	return marker + "< " + value + " >"
}
