package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProducts_QueryAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("search") != "đầm" {
			t.Fatalf("search param missing: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"p1","name":"Đầm body","price":150000,"category":"c1"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	products, err := c.Products(context.Background(), "đầm", "")
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" || products[0].Price == nil {
		t.Fatalf("decoded products wrong: %+v", products)
	}
}

func TestCategories_ParentNormalizedOnIngest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"_id":"c1","name":"Quần áo","parent":null},
			{"_id":"c2","name":"Đầm","parent":"c1"},
			{"_id":"c3","name":"Áo","parent":{"_id":"c1","name":"Quần áo"}}
		]`))
	}))
	defer srv.Close()

	cats, err := New(srv.URL).Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if cats[0].ParentID != nil {
		t.Fatalf("root parent must be nil")
	}
	for _, i := range []int{1, 2} {
		if cats[i].ParentID == nil || *cats[i].ParentID != "c1" {
			t.Fatalf("category %d parent not normalized: %+v", i, cats[i])
		}
	}
}

func TestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Product(context.Background(), "missing")
	se, ok := err.(*StatusError)
	if !ok || se.Status != http.StatusNotFound {
		t.Fatalf("expected 404 StatusError, got %v", err)
	}
}

func TestLogin_AcceptsAltIDField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.vn" {
			t.Fatalf("credentials not forwarded: %v", body)
		}
		w.Write([]byte(`{"_id":"u1","email":"a@b.vn","role":"admin"}`))
	}))
	defer srv.Close()

	u, err := New(srv.URL).Login(context.Background(), "a@b.vn", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.ID != "u1" || u.Role != "admin" {
		t.Fatalf("user decoded wrong: %+v", u)
	}
}

func TestCreateOrder_PostsJSON(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := New(srv.URL).CreateOrder(context.Background(), map[string]interface{}{
		"productId": "p1", "quantity": 2,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if got["productId"] != "p1" {
		t.Fatalf("payload not delivered: %v", got)
	}
}
