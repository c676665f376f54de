package product

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp() *fiber.App {
	handler := NewHandler(NewService(NewInMemoryRepository(SeedCatalog())))
	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	handler.RegisterProtectedRoutes(app)
	return app
}

func TestProductRoutes_List(t *testing.T) {
	app := makeApp()

	req := httptest.NewRequest("GET", "/api/products", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var products []Product
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != len(SeedCatalog()) {
		t.Fatalf("expected full catalog, got %d products", len(products))
	}
}

func TestProductRoutes_FilterByCategory(t *testing.T) {
	app := makeApp()

	req := httptest.NewRequest("GET", "/api/products?category=seeds", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var products []Product
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected seed products")
	}
	for _, p := range products {
		if p.Category != "seeds" {
			t.Fatalf("unexpected category in filtered list: %+v", p)
		}
	}

	// unknown category is rejected rather than silently empty
	req = httptest.NewRequest("GET", "/api/products?category=furniture", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid category, got %d", res.StatusCode)
	}
}

func TestProductRoutes_GetByID(t *testing.T) {
	app := makeApp()

	req := httptest.NewRequest("GET", "/api/products/1", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var p Product
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != 1 || p.Name == "" {
		t.Fatalf("unexpected product %+v", p)
	}

	req = httptest.NewRequest("GET", "/api/products/9999", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res.StatusCode)
	}
}

func TestProductRoutes_CreateValidation(t *testing.T) {
	app := makeApp()

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"price":100,"category":"plants"}`},
		{"negative price", `{"name":"Fern","price":-5}`},
		{"bad category", `{"name":"Fern","price":100,"category":"animals"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/products", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			res, _ := app.Test(req)
			if res.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("expected 400, got %d", res.StatusCode)
			}
		})
	}

	// valid create
	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(`{"name":"Boston Fern","price":329,"category":"plants","inStock":true}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	var created Product
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 || created.CreatedAt == "" {
		t.Fatalf("expected assigned id and timestamp, got %+v", created)
	}
}

func TestProductRoutes_UpdateDelete(t *testing.T) {
	app := makeApp()

	req := httptest.NewRequest("PUT", "/api/products/1", strings.NewReader(`{"name":"Monstera Deliciosa XL","price":899,"category":"plants","inStock":true}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for update, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("DELETE", "/api/products/1", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for delete, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("GET", "/api/products/1", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("DELETE", "/api/products/1", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for double delete, got %d", res.StatusCode)
	}
}
