package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gatera900/bite-backend/api/controllers"
	"github.com/gatera900/bite-backend/internal/ai"
	"github.com/gatera900/bite-backend/internal/analytics"
	cartsvc "github.com/gatera900/bite-backend/internal/cart"
	"github.com/gatera900/bite-backend/internal/catalog"
	"github.com/gatera900/bite-backend/internal/chat"
	"github.com/gatera900/bite-backend/internal/farmstats"
	"github.com/gatera900/bite-backend/internal/orders"
	"github.com/gatera900/bite-backend/internal/recs"
	"github.com/gatera900/bite-backend/internal/reviews"
	"github.com/gatera900/bite-backend/pkg/config"
	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/metrics"
	"github.com/gatera900/bite-backend/pkg/models"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

type downWeather struct{}

func (downWeather) Current(context.Context) (models.WeatherData, error) {
	return models.WeatherData{}, fmt.Errorf("provider down")
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
	}
}

func newTestRouter(readiness map[string]controllers.Pinger) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Output: io.Discard})

	ordersRepo := orders.NewMemoryRepository()
	aiService := ai.NewService(nil, logg)

	return NewRouter(testConfig(), logg, Deps{
		Menu:        catalog.NewMemoryRepository(),
		Orders:      ordersRepo,
		Farms:       farmstats.NewService(farmstats.NewMemoryRepository(), downWeather{}, logg),
		Reviews:     reviews.NewService(reviews.NewMemoryRepository(), aiService, logg),
		Chat:        chat.NewService(chat.NewMemoryRepository(), aiService, logg),
		AI:          aiService,
		Recs:        recs.NewMemoryRepository(),
		Analytics:   analytics.NewService(ordersRepo),
		Cart:        cartsvc.NewManager(),
		HTTPMetrics: metrics.NewHTTPMetrics(),
		Readiness:   readiness,
	})
}

func TestHealthLiveReportsEnvironment(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if env := resp.Header().Get("X-Bite-Env"); env != "test" {
		t.Fatalf("expected env header got %q", env)
	}
}

func TestHealthReadyFailsOnBrokenDependency(t *testing.T) {
	router := newTestRouter(map[string]controllers.Pinger{
		"database": stubPinger{err: fmt.Errorf("connection refused")},
	})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestChatSendFallsBackWithoutModel(t *testing.T) {
	router := newTestRouter(nil)

	body := `{"sessionId":"table-9","message":"what are your hours?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data struct {
			Response string `json:"response"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Response != chat.FallbackReply {
		t.Fatalf("expected fallback reply got %q", envelope.Data.Response)
	}

	history := httptest.NewRequest(http.MethodGet, "/api/chat/table-9", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, history)

	var transcript struct {
		Data []models.ChatMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&transcript); err != nil {
		t.Fatalf("decode transcript: %v", err)
	}
	if len(transcript.Data) != 2 {
		t.Fatalf("expected user and bot rows got %d", len(transcript.Data))
	}
}

func TestAIRecommendationsDegradeWithoutModel(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/recommendations", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data ai.RecommendationResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Recommendations == nil || len(envelope.Data.Recommendations) != 0 {
		t.Fatalf("expected empty recommendation list got %+v", envelope.Data.Recommendations)
	}
}

func TestWeatherFallsBackWhenProviderDown(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/farm-stats/weather", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data models.WeatherData `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Temperature != 75 || envelope.Data.Condition != "Clear" {
		t.Fatalf("expected default snapshot got %+v", envelope.Data)
	}
}

func TestReviewCreateAndFilterByOrder(t *testing.T) {
	router := newTestRouter(nil)

	body := `{"orderId":1,"rating":5,"comment":"Best salad in the valley"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	list := httptest.NewRequest(http.MethodGet, "/api/reviews?orderId=1", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, list)

	var envelope struct {
		Data []models.Review `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Rating != 5 {
		t.Fatalf("unexpected review listing: %+v", envelope.Data)
	}
}

func TestAnalyticsRevenueEmptyStore(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/revenue", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data analytics.RevenueReport `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.TotalOrders != 0 || envelope.Data.TotalRevenue != 0 {
		t.Fatalf("expected zeroed report got %+v", envelope.Data)
	}
}
