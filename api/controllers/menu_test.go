package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/gatera900/bite-backend/internal/catalog"
	"github.com/gatera900/bite-backend/pkg/models"
)

func newMenuRouter(repo catalog.Repository) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/menu", MenuList(repo, nil))
	r.Post("/api/menu", MenuCreate(repo, nil))
	r.Get("/api/menu/{id}", MenuGet(repo, nil))
	r.Put("/api/menu/{id}", MenuUpdate(repo, nil))
	r.Delete("/api/menu/{id}", MenuDelete(repo, nil))
	return r
}

func TestMenuListReturnsSeededItems(t *testing.T) {
	router := newMenuRouter(catalog.NewMemoryRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []models.MenuItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 6 {
		t.Fatalf("expected 6 seeded items got %d", len(envelope.Data))
	}
}

func TestMenuListFiltersByCategory(t *testing.T) {
	router := newMenuRouter(catalog.NewMemoryRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/menu?category=desserts", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var envelope struct {
		Data []models.MenuItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Name != "Farm Apple Pie" {
		t.Fatalf("unexpected dessert listing: %+v", envelope.Data)
	}
}

func TestMenuGetNotFound(t *testing.T) {
	router := newMenuRouter(catalog.NewMemoryRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/menu/999", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestMenuCreateAssignsID(t *testing.T) {
	router := newMenuRouter(catalog.NewMemoryRepository())

	body := `{"name":"Roasted Beet Tartine","description":"Golden beets on sourdough","price":11,"category":"starters"}`
	req := httptest.NewRequest(http.MethodPost, "/api/menu", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data models.MenuItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != 7 {
		t.Fatalf("expected id 7 got %d", envelope.Data.ID)
	}
	if !envelope.Data.Available {
		t.Fatal("expected new item to default to available")
	}
}

func TestMenuCreateRejectsMissingFields(t *testing.T) {
	router := newMenuRouter(catalog.NewMemoryRepository())

	req := httptest.NewRequest(http.MethodPost, "/api/menu", strings.NewReader(`{"name":"No Price"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestMenuUpdateMergesPatch(t *testing.T) {
	router := newMenuRouter(catalog.NewMemoryRepository())

	req := httptest.NewRequest(http.MethodPut, "/api/menu/1", strings.NewReader(`{"available":false}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data models.MenuItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Available {
		t.Fatal("expected item to be unavailable after patch")
	}
	if envelope.Data.Name != "Garden Fresh Salad" {
		t.Fatalf("patch overwrote unrelated field: %s", envelope.Data.Name)
	}
}

func TestMenuDeleteTwice(t *testing.T) {
	router := newMenuRouter(catalog.NewMemoryRepository())

	req := httptest.NewRequest(http.MethodDelete, "/api/menu/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/menu/1", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete got %d", resp.Code)
	}
}
