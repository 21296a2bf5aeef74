package console

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cifpfbmoll/catalog-manager/internal/category"
	"github.com/cifpfbmoll/catalog-manager/internal/client"
	"github.com/cifpfbmoll/catalog-manager/internal/product"
)

// ProductPage owns the product list and its modal form. The full page load
// also brings the category set that backs the form's category selector and
// the table's category column; scoped reloads refresh products only.
type ProductPage struct {
	api    *client.Client
	styles Styles

	table      rowTable
	form       productForm
	products   []product.Product
	categories []category.Category

	loading   bool
	status    string
	statusErr bool
}

func NewProductPage(api *client.Client, styles Styles) ProductPage {
	return ProductPage{
		api:    api,
		styles: styles,
		table:  newRowTable([]string{"ID", "Name", "Price", "Stock", "Status", "Category"}, "no products yet"),
		form:   newProductForm(api, styles),
	}
}

func (p ProductPage) Init() tea.Cmd {
	return p.loadCmd(false)
}

// loadCmd fetches the page data. scoped asks the server for the product
// set only, leaving the categories already held untouched.
func (p ProductPage) loadCmd(scoped bool) tea.Cmd {
	api := p.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var (
			page *client.ProductsPage
			err  error
		)
		if scoped {
			page, err = api.FetchProductsPage(ctx, "products")
		} else {
			page, err = api.FetchProductsPage(ctx)
		}
		return productsLoadedMsg{page: page, scoped: scoped, err: err}
	}
}

func (p ProductPage) deleteCmd(id int) tea.Cmd {
	api := p.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return productDeletedMsg{err: api.DeleteProduct(ctx, id)}
	}
}

func (p ProductPage) Update(msg tea.Msg) (ProductPage, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.status = "could not load products"
			p.statusErr = true
			return p, nil
		}
		p.products = msg.page.Products
		if !msg.scoped {
			p.categories = msg.page.Categories
			p.form = p.form.withCategories(msg.page.Categories)
		}
		p.table = p.table.withRows(productRows(p.products, p.categories))
		return p, nil

	case productSavedMsg:
		live := p.form.isOpen && msg.token == p.form.token
		var cmd tea.Cmd
		p.form, cmd = p.form.update(msg)
		if live && msg.err == nil {
			p.form = p.form.closeForm()
			p.status = "product saved"
			p.statusErr = false
			p.loading = true
			return p, p.loadCmd(true)
		}
		return p, cmd

	case productDeletedMsg:
		if msg.err != nil {
			p.status = "could not delete the product"
			p.statusErr = true
			return p, nil
		}
		p.status = "product deleted"
		p.statusErr = false
		p.loading = true
		return p, p.loadCmd(true)

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
			return p, p.loadCmd(false)
		}

		var action rowAction
		p.table, action = p.table.update(msg)
		switch action {
		case rowActionEdit:
			if p.table.cursor < len(p.products) {
				rec := p.products[p.table.cursor]
				p.status = ""
				p.form = p.form.openWith(&rec)
			}
		case rowActionDelete:
			if p.table.cursor < len(p.products) {
				return p, p.deleteCmd(p.products[p.table.cursor].ID)
			}
		}
		return p, nil
	}
	return p, nil
}

func (p ProductPage) View() string {
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

func productRows(products []product.Product, cats []category.Category) [][]string {
	names := make(map[int]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}

	rows := make([][]string, 0, len(products))
	for _, pr := range products {
		catName := "-"
		if pr.CategoryID != nil {
			if n, ok := names[*pr.CategoryID]; ok {
				catName = n
			} else {
				catName = "#" + strconv.Itoa(*pr.CategoryID)
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(pr.ID),
			pr.Name,
			pr.Price.StringFixed(2),
			strconv.Itoa(pr.Stock),
			statusLabel(pr.Status),
			catName,
		})
	}
	return rows
}
