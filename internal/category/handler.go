package category

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cifpfbmoll/catalog-manager/internal/pagedata"
)

type Handler struct {
	service *Service
	page    *pagedata.Page
}

func NewHandler(service *Service) *Handler {
	page := pagedata.NewPage().
		Register("categories", func() (any, error) { return service.List() })
	return &Handler{service: service, page: page}
}

// RegisterPublicRoutes exposes the page load. The `only` query parameter
// scopes the response to named keys (partial reload).
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/categories", h.page.Handler())
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/categories", h.create)
	app.Put("/categories/:id", h.update)
	app.Delete("/categories/:id", h.delete)
}

func (h *Handler) create(c *fiber.Ctx) error {
	cat := New()
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := Validate(cat); ves.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(cat)
	if errors.Is(err, ErrSlugTaken) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": fiber.Map{"slug": "slug already in use"},
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "category created",
		"category": created,
	})
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	cat := New()
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := Validate(cat); ves.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(id, cat)
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "category not found"})
	case errors.Is(err, ErrSlugTaken):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": fiber.Map{"slug": "slug already in use"},
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{
		"message":  "category updated",
		"category": updated,
	})
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "category deleted"})
}
