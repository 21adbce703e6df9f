package category

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/kydtrai11/dambody-storefront/internal/catalog"
)

type fakeSource struct {
	categories []catalog.Category
	fail       bool
}

func (f *fakeSource) Categories(ctx context.Context) ([]catalog.Category, error) {
	if f.fail {
		return nil, errors.New("upstream down")
	}
	return f.categories, nil
}

func (f *fakeSource) Category(ctx context.Context, id string) (catalog.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return catalog.Category{}, errors.New("not found")
}

func sptr(s string) *string { return &s }

func newCategoryApp(src *fakeSource) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(src)).RegisterPublicRoutes(app)
	return app
}

func TestTree_PathsAndNesting(t *testing.T) {
	app := newCategoryApp(&fakeSource{categories: []catalog.Category{
		{ID: "1", Name: "Quần áo"},
		{ID: "2", Name: "Áo", ParentID: sptr("1")},
		{ID: "3", Name: "Áo khoác", ParentID: sptr("2")},
	}})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/categories/tree", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("tree returned %d", res.StatusCode)
	}
	// catalog.Category carries a custom unmarshaler, so decode the wire
	// shape into a plain mirror struct.
	type node struct {
		ID       string  `json:"_id"`
		Path     string  `json:"path"`
		Children []*node `json:"children"`
	}
	var roots []*node
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &roots); err != nil {
		t.Fatalf("bad tree body: %v", err)
	}
	if len(roots) != 1 || roots[0].ID != "1" {
		t.Fatalf("expected single root, got %+v", roots)
	}
	leaf := roots[0].Children[0].Children[0]
	if leaf.Path != "Quần áo > Áo > Áo khoác" {
		t.Fatalf("leaf path = %q", leaf.Path)
	}
}

func TestGet(t *testing.T) {
	app := newCategoryApp(&fakeSource{categories: []catalog.Category{
		{ID: "1", Name: "Đầm"},
	}})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/categories/1", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("get returned %d", res.StatusCode)
	}
	var cat catalog.Category
	b, _ := io.ReadAll(res.Body)
	json.Unmarshal(b, &cat)
	if cat.Name != "Đầm" {
		t.Fatalf("category name = %q", cat.Name)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/categories/missing", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestList_UpstreamFailure(t *testing.T) {
	app := newCategoryApp(&fakeSource{fail: true})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/categories", nil))
	if res.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", res.StatusCode)
	}
}
