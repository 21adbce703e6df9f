package cart

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newCartApp() *fiber.App {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository())).RegisterPublicRoutes(app)
	return app
}

func decodeCart(t *testing.T, res *http.Response) cartResponse {
	t.Helper()
	b, _ := io.ReadAll(res.Body)
	var out cartResponse
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("bad cart response %s: %v", string(b), err)
	}
	return out
}

func TestCartRoutes_Flow(t *testing.T) {
	app := newCartApp()

	// first touch issues the cart cookie
	res, _ := app.Test(httptest.NewRequest("GET", "/api/cart", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var cartID string
	for _, c := range res.Cookies() {
		if c.Name == CookieName {
			cartID = c.Value
		}
	}
	if cartID == "" {
		t.Fatalf("cart cookie not issued")
	}
	withCookie := func(req *http.Request) *http.Request {
		req.Header.Set("Cookie", CookieName+"="+cartID)
		return req
	}

	// add a line; raw image reference gets normalized on the way in
	body := `{"productId":"p1","name":"Đầm body","image":"uploads/a.jpg","price":150000,"variant":{"color":"Đen","size":"M"}}`
	req := withCookie(httptest.NewRequest("POST", "/api/cart", strings.NewReader(body)))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("add returned %d", res.StatusCode)
	}
	got := decodeCart(t, res)
	if got.Count != 1 || got.Lines[0].Quantity != 1 {
		t.Fatalf("unexpected cart after add: %+v", got)
	}
	if got.Lines[0].Image != "/uploads/a.jpg" {
		t.Fatalf("image not normalized: %q", got.Lines[0].Image)
	}

	// bump quantity
	req = withCookie(httptest.NewRequest("PATCH", "/api/cart/0", strings.NewReader(`{"delta":2}`)))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	got = decodeCart(t, res)
	if got.Lines[0].Quantity != 3 {
		t.Fatalf("quantity after +2 = %d", got.Lines[0].Quantity)
	}

	// drive it toward zero: floors, never removes
	req = withCookie(httptest.NewRequest("PATCH", "/api/cart/0", strings.NewReader(`{"delta":-5}`)))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	got = decodeCart(t, res)
	if got.Count != 1 || got.Lines[0].Quantity != 3 {
		t.Fatalf("underflow must be a no-op: %+v", got)
	}

	// remove the line
	res, _ = app.Test(withCookie(httptest.NewRequest("DELETE", "/api/cart/0", nil)))
	got = decodeCart(t, res)
	if got.Count != 0 {
		t.Fatalf("cart not empty after remove: %+v", got)
	}

	// removing again is a 404, not a crash
	res, _ = app.Test(withCookie(httptest.NewRequest("DELETE", "/api/cart/0", nil)))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for stale index, got %d", res.StatusCode)
	}
}

func TestCartRoutes_BadPayloads(t *testing.T) {
	app := newCartApp()

	req := httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("missing productId must 400, got %d", res.StatusCode)
	}

	res, _ = app.Test(httptest.NewRequest("DELETE", "/api/cart/abc", nil))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("non-numeric index must 400, got %d", res.StatusCode)
	}
}
