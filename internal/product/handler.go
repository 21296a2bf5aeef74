package product

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cifpfbmoll/catalog-manager/internal/category"
	"github.com/cifpfbmoll/catalog-manager/internal/pagedata"
)

// CategorySource supplies the category data the products page needs: the
// list for the form's select control and existence checks for the foreign
// reference. *category.Service satisfies it.
type CategorySource interface {
	List() ([]category.Category, error)
	Exists(id int) (bool, error)
}

type Handler struct {
	service    *Service
	categories CategorySource
	page       *pagedata.Page
}

func NewHandler(service *Service, categories CategorySource) *Handler {
	page := pagedata.NewPage().
		Register("products", func() (any, error) { return service.List() }).
		Register("categories", func() (any, error) { return categories.List() })
	return &Handler{service: service, categories: categories, page: page}
}

// RegisterPublicRoutes exposes the page load. The page carries the product
// list plus the category list for the select control; `only=products` scopes
// a reload to just the list key.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/products", h.page.Handler())
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/products", h.create)
	app.Put("/products/:id", h.update)
	app.Delete("/products/:id", h.delete)
}

func (h *Handler) create(c *fiber.Ctx) error {
	p := New()
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ves := Validate(p, true)
	if err := h.checkCategoryRef(&p, ves); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if ves.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "product created",
		"product": created,
	})
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	p := New()
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ves := Validate(p, false)
	if err := h.checkCategoryRef(&p, ves); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if ves.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(id, p)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{
		"message": "product updated",
		"product": updated,
	})
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}

// checkCategoryRef adds a category_id error when the referenced category
// does not exist. Lookup failures are returned as-is so the caller can
// answer 500 instead of blaming the payload.
func (h *Handler) checkCategoryRef(p *Product, ves map[string]string) error {
	if p.CategoryID == nil {
		return nil
	}
	ok, err := h.categories.Exists(*p.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		ves["category_id"] = "selected category does not exist"
	}
	return nil
}
