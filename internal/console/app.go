package console

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cifpfbmoll/catalog-manager/internal/client"
)

type tab int

const (
	tabCategories tab = iota
	tabProducts
)

// App is the root model: two pages behind a tab bar. Entity messages are
// routed to the page that owns the entity regardless of the active tab, so
// a slow response still lands on the right page.
type App struct {
	styles     Styles
	active     tab
	categories CategoryPage
	products   ProductPage
}

func NewApp(api *client.Client) App {
	styles := DefaultStyles()
	return App{
		styles:     styles,
		categories: NewCategoryPage(api, styles),
		products:   NewProductPage(api, styles),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.categories.Init(), a.products.Init())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg, categorySavedMsg, categoryDeletedMsg:
		var cmd tea.Cmd
		a.categories, cmd = a.categories.Update(msg)
		return a, cmd

	case productsLoadedMsg, productSavedMsg, productDeletedMsg:
		var cmd tea.Cmd
		a.products, cmd = a.products.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if !a.formOpen() {
				return a, tea.Quit
			}
		case "1":
			if !a.formOpen() {
				a.active = tabCategories
				return a, nil
			}
		case "2":
			if !a.formOpen() {
				a.active = tabProducts
				return a, nil
			}
		}

		var cmd tea.Cmd
		if a.active == tabCategories {
			a.categories, cmd = a.categories.Update(msg)
		} else {
			a.products, cmd = a.products.Update(msg)
		}
		return a, cmd
	}
	return a, nil
}

func (a App) formOpen() bool {
	return a.categories.form.isOpen || a.products.form.isOpen
}

func (a App) View() string {
	catTab := a.styles.TabIdle.Render("1 Categories")
	prodTab := a.styles.TabIdle.Render("2 Products")
	if a.active == tabCategories {
		catTab = a.styles.TabActive.Render("1 Categories")
	} else {
		prodTab = a.styles.TabActive.Render("2 Products")
	}

	body := a.categories.View()
	if a.active == tabProducts {
		body = a.products.View()
	}

	return a.styles.Title.Render("Catalog Manager") + "\n" +
		catTab + prodTab + "\n\n" +
		body + "\n" +
		a.styles.Help.Render("q quit") + "\n"
}
