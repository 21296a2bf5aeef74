package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/google/uuid"

	"github.com/cifpfbmoll/catalog-manager/internal/category"
	"github.com/cifpfbmoll/catalog-manager/internal/client"
	"github.com/cifpfbmoll/catalog-manager/internal/slugify"
	"github.com/cifpfbmoll/catalog-manager/internal/validate"
)

const (
	catFieldName = iota
	catFieldSlug
	catFieldDescription
	catFieldColor
	catFieldIcon
	catFieldPriority
	catFieldIndustry
	catFieldActive
	catFieldCount
)

// catFieldKeys maps field positions to the wire names used in server error
// maps, so inline errors clear per field.
var catFieldKeys = [catFieldCount]string{
	"name", "slug", "description", "color", "icon", "priority",
	"industry_type", "active",
}

// categoryForm is the create/edit modal for categories. It is a disposable
// staging buffer: every openWith call re-initializes all fields and errors.
type categoryForm struct {
	api    *client.Client
	styles Styles

	isOpen  bool
	editing *category.Category
	token   uuid.UUID

	inputs      [6]textinput.Model
	focus       int
	industry    int
	active      bool
	slugTouched bool

	errors     validate.Errors
	generalErr string
	processing bool
}

func newCategoryForm(api *client.Client, styles Styles) categoryForm {
	f := categoryForm{api: api, styles: styles, errors: validate.Errors{}}
	f.inputs[catFieldName] = newInput("category name")
	f.inputs[catFieldSlug] = newInput("url-friendly slug")
	f.inputs[catFieldDescription] = newInput("description (optional)")
	f.inputs[catFieldColor] = newInput(category.DefaultColor)
	f.inputs[catFieldIcon] = newInput("e.g. mdi-factory (optional)")
	f.inputs[catFieldPriority] = newInput("0")
	return f
}

// openWith enters create mode (nil) or edit mode (a record). All state from
// any previous session is discarded and a fresh session token is minted so
// late responses for the old session are ignored.
func (f categoryForm) openWith(existing *category.Category) categoryForm {
	src := category.New()
	if existing != nil {
		src = *existing
	}

	f.isOpen = true
	f.editing = existing
	f.token = uuid.New()
	f.errors = validate.Errors{}
	f.generalErr = ""
	f.processing = false
	f.slugTouched = false

	f.inputs[catFieldName].SetValue(src.Name)
	f.inputs[catFieldSlug].SetValue(src.Slug)
	f.inputs[catFieldDescription].SetValue(strOrEmpty(src.Description))
	f.inputs[catFieldColor].SetValue(src.Color)
	f.inputs[catFieldIcon].SetValue(strOrEmpty(src.Icon))
	f.inputs[catFieldPriority].SetValue(strconv.Itoa(src.Priority))
	f.industry = indexOf(src.IndustryType, category.IndustryTypes)
	if f.industry < 0 {
		f.industry = indexOf("retail", category.IndustryTypes)
	}
	f.active = src.Active

	return f.setFocus(catFieldName)
}

func (f categoryForm) closeForm() categoryForm {
	f.isOpen = false
	f.editing = nil
	f.processing = false
	return f
}

func (f categoryForm) setFocus(i int) categoryForm {
	f.focus = i
	for idx := range f.inputs {
		f.inputs[idx].Blur()
	}
	if i < len(f.inputs) {
		f.inputs[i].Focus()
	}
	return f
}

func (f categoryForm) update(msg tea.Msg) (categoryForm, tea.Cmd) {
	switch msg := msg.(type) {
	case categorySavedMsg:
		if !f.isOpen || msg.token != f.token {
			return f, nil // stale response for a closed or reopened session
		}
		f.processing = false
		if msg.err == nil {
			return f, nil
		}
		var verr *client.ValidationError
		if errors.As(msg.err, &verr) {
			f.errors.Merge(verr.Fields)
		} else {
			f.generalErr = "could not save the category"
		}
		return f, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f.closeForm(), nil
		case "enter":
			return f.submit()
		case "tab", "down":
			return f.setFocus((f.focus + 1) % catFieldCount), nil
		case "shift+tab", "up":
			return f.setFocus((f.focus - 1 + catFieldCount) % catFieldCount), nil
		}

		switch f.focus {
		case catFieldIndustry:
			n := len(category.IndustryTypes)
			switch msg.String() {
			case "left":
				f.industry = (f.industry - 1 + n) % n
			case "right", " ":
				f.industry = (f.industry + 1) % n
			default:
				return f, nil
			}
			delete(f.errors, "industry_type")
			return f, nil
		case catFieldActive:
			switch msg.String() {
			case " ", "left", "right":
				f.active = !f.active
				delete(f.errors, "active")
			}
			return f, nil
		}

		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		delete(f.errors, catFieldKeys[f.focus])
		if f.focus == catFieldSlug {
			f.slugTouched = true
		}
		// Auto-derive the slug from the name only while the user has not
		// taken over the slug field manually.
		if f.focus == catFieldName && !f.slugTouched {
			f.inputs[catFieldSlug].SetValue(slugify.Make(f.inputs[catFieldName].Value()))
		}
		return f, cmd
	}
	return f, nil
}

// submit validates locally first; an invalid payload never reaches the
// network. The processing flag makes a second enter a no-op while a request
// is in flight.
func (f categoryForm) submit() (categoryForm, tea.Cmd) {
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
			_, err = api.UpdateCategory(ctx, editing.ID, rec)
		} else {
			_, err = api.CreateCategory(ctx, rec)
		}
		return categorySavedMsg{token: token, err: err}
	}
}

func (f categoryForm) buildRecord() (category.Category, validate.Errors) {
	rec := category.New()
	rec.Name = f.inputs[catFieldName].Value()
	rec.Slug = f.inputs[catFieldSlug].Value()
	rec.Description = ptrOrNil(f.inputs[catFieldDescription].Value())
	rec.Color = f.inputs[catFieldColor].Value()
	rec.Icon = ptrOrNil(f.inputs[catFieldIcon].Value())
	rec.IndustryType = category.IndustryTypes[f.industry]
	rec.Active = f.active
	if f.editing != nil {
		// full-record replace: keep the attributes the record already has
		rec.Attributes = f.editing.Attributes
	}

	parseErrs := validate.Errors{}
	if pv := strings.TrimSpace(f.inputs[catFieldPriority].Value()); pv != "" {
		n, err := strconv.Atoi(pv)
		if err != nil {
			parseErrs["priority"] = "priority must be a whole number"
		} else {
			rec.Priority = n
		}
	}

	errs := category.Validate(rec)
	errs.Merge(parseErrs)
	return rec, errs
}

func (f categoryForm) view() string {
	if !f.isOpen {
		return ""
	}

	title := "New Category"
	if f.editing != nil {
		title = "Edit Category"
	}

	var sb strings.Builder
	sb.WriteString(f.styles.Title.Render(title) + "\n\n")
	if f.generalErr != "" {
		sb.WriteString(f.styles.Error.Render(f.generalErr) + "\n\n")
	}

	labels := [catFieldCount]string{
		"Name", "Slug", "Description", "Color", "Icon", "Priority",
		"Industry", "Active",
	}
	for i := 0; i < len(f.inputs); i++ {
		sb.WriteString(f.styles.Label.Render(labels[i]) + "\n")
		sb.WriteString(f.inputs[i].View() + "\n")
		if msg, ok := f.errors[catFieldKeys[i]]; ok {
			sb.WriteString(f.styles.Error.Render(msg) + "\n")
		}
	}

	sb.WriteString(f.styles.Label.Render(labels[catFieldIndustry]) + "\n")
	sb.WriteString(f.selectorView(catFieldIndustry, industryLabel(category.IndustryTypes[f.industry])) + "\n")
	if msg, ok := f.errors["industry_type"]; ok {
		sb.WriteString(f.styles.Error.Render(msg) + "\n")
	}

	sb.WriteString(f.styles.Label.Render(labels[catFieldActive]) + "\n")
	state := "yes"
	if !f.active {
		state = "no"
	}
	sb.WriteString(f.selectorView(catFieldActive, state) + "\n")

	if f.processing {
		sb.WriteString("\n" + f.styles.Muted.Render("saving...") + "\n")
	}
	sb.WriteString("\n" + f.styles.Help.Render("enter save · esc cancel · tab next field"))
	return f.styles.Modal.Render(sb.String())
}

func (f categoryForm) selectorView(field int, value string) string {
	marker := "  "
	if f.focus == field {
		marker = "> "
	}
	return marker + "< " + value + " >"
}
