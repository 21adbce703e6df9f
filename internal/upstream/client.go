// Package upstream is the HTTP client for the remote Dambody API, the
// system of record for products, categories, users and orders. Every call is
// a single attempt: failures are returned to the caller, never retried.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kydtrai11/dambody-storefront/internal/catalog"
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Status int
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned %d", e.Path, e.Status)
}

// User is the upstream account shape returned by login.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	// some deployments answer with _id instead of id
	var raw struct {
		ID    string `json:"id"`
		AltID string `json:"_id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	u.ID = raw.ID
	if u.ID == "" {
		u.ID = raw.AltID
	}
	u.Email = raw.Email
	u.Role = raw.Role
	return nil
}

type Client struct {
	base string
	http *http.Client
}

func New(base string) *Client {
	return &Client{base: strings.TrimRight(base, "/"), http: &http.Client{}}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{Status: res.StatusCode, Path: path}
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) send(ctx context.Context, method, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{Status: res.StatusCode, Path: path}
	}
	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// Products lists products, optionally filtered by a search term or a
// category id.
func (c *Client) Products(ctx context.Context, search, category string) ([]catalog.Product, error) {
	path := "/api/products"
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if category != "" {
		q.Set("category", category)
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []catalog.Product
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id string) (catalog.Product, error) {
	var out catalog.Product
	err := c.get(ctx, "/api/products/"+url.PathEscape(id), &out)
	return out, err
}

func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	var out []catalog.Category
	if err := c.get(ctx, "/api/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Category(ctx context.Context, id string) (catalog.Category, error) {
	var out catalog.Category
	err := c.get(ctx, "/api/categories/"+url.PathEscape(id), &out)
	return out, err
}

// Login forwards credentials to the upstream auth endpoint and returns the
// authenticated user on success.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var out User
	err := c.send(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

// CreateOrder submits one order document.
func (c *Client) CreateOrder(ctx context.Context, payload interface{}) error {
	return c.send(ctx, http.MethodPost, "/api/orders", payload, nil)
}

// UpdateProduct pushes an admin product edit upstream and returns the stored
// product.
func (c *Client) UpdateProduct(ctx context.Context, id string, payload interface{}) (catalog.Product, error) {
	var out catalog.Product
	err := c.send(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), payload, &out)
	return out, err
}
