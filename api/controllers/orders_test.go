package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/gatera900/bite-backend/internal/orders"
	"github.com/gatera900/bite-backend/pkg/models"
)

func newOrdersRouter(repo orders.Repository) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/orders", OrdersList(repo, nil))
	r.Post("/api/orders", OrderCreate(repo, nil))
	r.Get("/api/orders/{id}", OrderGet(repo, nil))
	r.Put("/api/orders/{id}/status", OrderUpdateStatus(repo, nil))
	return r
}

func TestOrderCreateDefaultsToPending(t *testing.T) {
	router := newOrdersRouter(orders.NewMemoryRepository())

	body := `{"total":32,"items":[{"menuItemId":2,"name":"Herb Crusted Salmon","price":24,"quantity":1},{"menuItemId":4,"name":"Farm Apple Pie","price":8,"quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data models.Order `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != models.OrderStatusPending {
		t.Fatalf("expected pending status got %q", envelope.Data.Status)
	}
	if envelope.Data.CompletedAt != nil {
		t.Fatal("new order must not carry a completion timestamp")
	}
}

func TestOrderCreateRejectsEmptyItems(t *testing.T) {
	router := newOrdersRouter(orders.NewMemoryRepository())

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"total":10,"items":[]}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestOrderUpdateStatusCompletes(t *testing.T) {
	repo := orders.NewMemoryRepository()
	router := newOrdersRouter(repo)

	create := httptest.NewRequest(http.MethodPost, "/api/orders",
		strings.NewReader(`{"total":18,"items":[{"menuItemId":6,"name":"Farm Burger","price":18,"quantity":1}]}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, create)
	if resp.Code != http.StatusCreated {
		t.Fatalf("seed order failed: %d", resp.Code)
	}

	update := httptest.NewRequest(http.MethodPut, "/api/orders/1/status", strings.NewReader(`{"status":"completed"}`))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, update)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data models.Order `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.CompletedAt == nil {
		t.Fatal("expected completion timestamp")
	}
}

func TestOrderUpdateStatusMissingOrder(t *testing.T) {
	router := newOrdersRouter(orders.NewMemoryRepository())

	req := httptest.NewRequest(http.MethodPut, "/api/orders/42/status", strings.NewReader(`{"status":"ready"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestOrdersListFiltersByUser(t *testing.T) {
	repo := orders.NewMemoryRepository()
	router := newOrdersRouter(repo)

	for _, body := range []string{
		`{"userId":7,"total":14,"items":[{"menuItemId":1,"name":"Garden Fresh Salad","price":14,"quantity":1}]}`,
		`{"total":9,"items":[{"menuItemId":3,"name":"Seasonal Vegetable Soup","price":9,"quantity":1}]}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusCreated {
			t.Fatalf("seed order failed: %d", resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders?userId=7", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var envelope struct {
		Data []models.Order `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("expected 1 order for user got %d", len(envelope.Data))
	}
}
