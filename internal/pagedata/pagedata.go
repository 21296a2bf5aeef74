// Package pagedata serves page-load data as a set of named keys and lets a
// client ask for a recompute of only some of them. A request carrying
// `?only=products` (or the X-Partial-Only header) gets back just that key;
// the rest of the page's state is left untouched on the client.
package pagedata

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Provider recomputes the value for one page-data key.
type Provider func() (any, error)

// Page is an ordered registry of key providers backing one GET endpoint.
type Page struct {
	keys      []string
	providers map[string]Provider
}

func NewPage() *Page {
	return &Page{providers: map[string]Provider{}}
}

// Register binds key to fn. Keys are returned in registration order on full
// loads. Registering the same key twice replaces the provider.
func (p *Page) Register(key string, fn Provider) *Page {
	if _, ok := p.providers[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.providers[key] = fn
	return p
}

// Keys returns the registered key names in order.
func (p *Page) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Handler serves the page. Without a scope it resolves every key; with
// `only=` (comma separated) or the X-Partial-Only header it resolves just
// the named keys. Unknown keys are ignored rather than rejected so clients
// and servers can evolve independently.
func (p *Page) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		keys := p.requestedKeys(c)

		data := fiber.Map{}
		for _, key := range keys {
			v, err := p.providers[key]()
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
			}
			data[key] = v
		}
		return c.JSON(data)
	}
}

func (p *Page) requestedKeys(c *fiber.Ctx) []string {
	scope := c.Query("only")
	if scope == "" {
		scope = c.Get("X-Partial-Only")
	}
	if scope == "" {
		return p.keys
	}

	var keys []string
	for _, k := range strings.Split(scope, ",") {
		k = strings.TrimSpace(k)
		if _, ok := p.providers[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
