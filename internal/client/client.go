// Package client is the typed HTTP client the admin console talks to the
// catalog API with.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cifpfbmoll/catalog-manager/internal/category"
	"github.com/cifpfbmoll/catalog-manager/internal/product"
)

// ValidationError carries the server's field-keyed 422 error map. The
// console merges Fields into a form's inline errors verbatim.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithToken attaches a bearer token to every request (the mutating routes
// sit behind JWT).
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CategoriesPage is the /categories page-data set.
type CategoriesPage struct {
	Categories []category.Category `json:"categories"`
}

// ProductsPage is the /products page-data set. Categories back the form's
// select control.
type ProductsPage struct {
	Products   []product.Product   `json:"products"`
	Categories []category.Category `json:"categories"`
}

// FetchCategoriesPage loads the categories page. Passing `only` keys asks
// the server for a scoped recompute of just those keys.
func (c *Client) FetchCategoriesPage(ctx context.Context, only ...string) (*CategoriesPage, error) {
	var page CategoriesPage
	if err := c.call(ctx, http.MethodGet, pagePath("/categories", only), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) FetchProductsPage(ctx context.Context, only ...string) (*ProductsPage, error) {
	var page ProductsPage
	if err := c.call(ctx, http.MethodGet, pagePath("/products", only), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreateCategory(ctx context.Context, cat category.Category) (*category.Category, error) {
	var env struct {
		Category category.Category `json:"category"`
	}
	if err := c.call(ctx, http.MethodPost, "/categories", cat, &env); err != nil {
		return nil, err
	}
	return &env.Category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, cat category.Category) (*category.Category, error) {
	var env struct {
		Category category.Category `json:"category"`
	}
	if err := c.call(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), cat, &env); err != nil {
		return nil, err
	}
	return &env.Category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}

func (c *Client) CreateProduct(ctx context.Context, p product.Product) (*product.Product, error) {
	var env struct {
		Product product.Product `json:"product"`
	}
	if err := c.call(ctx, http.MethodPost, "/products", p, &env); err != nil {
		return nil, err
	}
	return &env.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, p product.Product) (*product.Product, error) {
	var env struct {
		Product product.Product `json:"product"`
	}
	if err := c.call(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), p, &env); err != nil {
		return nil, err
	}
	return &env.Product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

func pagePath(path string, only []string) string {
	if len(only) == 0 {
		return path
	}
	return path + "?only=" + url.QueryEscape(strings.Join(only, ","))
}

func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	switch {
	case res.StatusCode == http.StatusUnprocessableEntity:
		var env struct {
			Errors map[string]string `json:"errors"`
		}
		if err := json.Unmarshal(raw, &env); err != nil || len(env.Errors) == 0 {
			return fmt.Errorf("unexpected 422 response: %s", raw)
		}
		return &ValidationError{Fields: env.Errors}
	case res.StatusCode < 200 || res.StatusCode > 299:
		var env struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
			return fmt.Errorf("%s %s: %s", method, path, env.Message)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, res.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
