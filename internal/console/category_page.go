package console

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cifpfbmoll/catalog-manager/internal/category"
	"github.com/cifpfbmoll/catalog-manager/internal/client"
)

// CategoryPage owns the category list and its modal form. After a
// successful save or delete it issues exactly one scoped reload of the
// category data set.
type CategoryPage struct {
	api    *client.Client
	styles Styles

	table      rowTable
	form       categoryForm
	categories []category.Category

	loading   bool
	status    string
	statusErr bool
}

func NewCategoryPage(api *client.Client, styles Styles) CategoryPage {
	return CategoryPage{
		api:    api,
		styles: styles,
		table:  newRowTable([]string{"ID", "Name", "Slug", "Industry", "Active", "Priority"}, "no categories yet"),
		form:   newCategoryForm(api, styles),
	}
}

func (p CategoryPage) Init() tea.Cmd {
	return p.loadCmd()
}

func (p CategoryPage) loadCmd() tea.Cmd {
	api := p.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		page, err := api.FetchCategoriesPage(ctx, "categories")
		if err != nil {
			return categoriesLoadedMsg{err: err}
		}
		return categoriesLoadedMsg{categories: page.Categories}
	}
}

func (p CategoryPage) deleteCmd(id int) tea.Cmd {
	api := p.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return categoryDeletedMsg{err: api.DeleteCategory(ctx, id)}
	}
}

func (p CategoryPage) Update(msg tea.Msg) (CategoryPage, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.status = "could not load categories"
			p.statusErr = true
			return p, nil
		}
		p.categories = msg.categories
		p.table = p.table.withRows(categoryRows(msg.categories))
		return p, nil

	case categorySavedMsg:
		live := p.form.isOpen && msg.token == p.form.token
		var cmd tea.Cmd
		p.form, cmd = p.form.update(msg)
		if live && msg.err == nil {
			p.form = p.form.closeForm()
			p.status = "category saved"
			p.statusErr = false
			p.loading = true
			return p, p.loadCmd()
		}
		return p, cmd

	case categoryDeletedMsg:
		if msg.err != nil {
			p.status = "could not delete the category"
			p.statusErr = true
			return p, nil
		}
		p.status = "category deleted"
		p.statusErr = false
		p.loading = true
		return p, p.loadCmd()

	case tea.KeyMsg:
		if p.form.isOpen {
			var cmd tea.Cmd
			p.form, cmd = p.form.update(msg)
			return p, cmd
		}

		switch msg.String() {
		case "n":
			p.status = ""
			p.form = p.form.openWith(nil)
			return p, nil
		case "r":
			p.loading = true
			return p, p.loadCmd()
		}

		var action rowAction
		p.table, action = p.table.update(msg)
		switch action {
		case rowActionEdit:
			if p.table.cursor < len(p.categories) {
				rec := p.categories[p.table.cursor]
				p.status = ""
				p.form = p.form.openWith(&rec)
			}
		case rowActionDelete:
			if p.table.cursor < len(p.categories) {
				return p, p.deleteCmd(p.categories[p.table.cursor].ID)
			}
		}
		return p, nil
	}
	return p, nil
}

func (p CategoryPage) View() string {
	if p.form.isOpen {
		return p.form.view()
	}

	out := p.table.view(p.styles)
	if p.loading {
		out += p.styles.Muted.Render("loading...") + "\n"
	}
	if p.status != "" {
		style := p.styles.Success
		if p.statusErr {
			style = p.styles.Error
		}
		out += style.Render(p.status) + "\n"
	}
	out += p.styles.Help.Render("n new · enter edit · d delete · r reload")
	return out
}

func categoryRows(cats []category.Category) [][]string {
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		active := "yes"
		if !c.Active {
			active = "no"
		}
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Name,
			c.Slug,
			industryLabel(c.IndustryType),
			active,
			strconv.Itoa(c.Priority),
		})
	}
	return rows
}
