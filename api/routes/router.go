package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gatera900/bite-backend/api/controllers"
	"github.com/gatera900/bite-backend/api/middleware"
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
	"github.com/gatera900/bite-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers. Optional
// entries (Redis, metrics, readiness probes) may be nil.
type Deps struct {
	Menu      catalog.Repository
	Orders    orders.Repository
	Farms     *farmstats.Service
	Reviews   *reviews.Service
	Chat      *chat.Service
	AI        *ai.Service
	Recs      recs.Repository
	Analytics *analytics.Service
	Cart      *cartsvc.Manager

	Redis       *redis.Client
	HTTPMetrics *metrics.HTTPMetrics
	Readiness   map[string]controllers.Pinger
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Metrics(deps.HTTPMetrics),
	)

	aiLimiter := func(next http.Handler) http.Handler { return next }
	if deps.Redis != nil {
		aiLimiter = middleware.AIRateLimit(middleware.AIRateLimitPolicy{
			Window: cfg.AIRateLimit.Window,
			Limit:  cfg.AIRateLimit.Limit,
		}, deps.Redis, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Readiness))
	})

	if deps.HTTPMetrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.HTTPMetrics.Handler())
	}

	r.Route("/api/menu", func(r chi.Router) {
		r.Get("/", controllers.MenuList(deps.Menu, logg))
		r.Post("/", controllers.MenuCreate(deps.Menu, logg))
		r.Get("/{id}", controllers.MenuGet(deps.Menu, logg))
		r.Put("/{id}", controllers.MenuUpdate(deps.Menu, logg))
		r.Delete("/{id}", controllers.MenuDelete(deps.Menu, logg))
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", controllers.OrdersList(deps.Orders, logg))
		r.Post("/", controllers.OrderCreate(deps.Orders, logg))
		r.Get("/{id}", controllers.OrderGet(deps.Orders, logg))
		r.Put("/{id}/status", controllers.OrderUpdateStatus(deps.Orders, logg))
	})

	r.Route("/api/farm-stats", func(r chi.Router) {
		r.Get("/", controllers.FarmStatsList(deps.Farms, logg))
		r.Get("/weather", controllers.FarmStatsWeather(deps.Farms))
		r.Get("/conditions", controllers.FarmStatsConditions(deps.Farms))
	})

	r.Route("/api/ai", func(r chi.Router) {
		r.Use(aiLimiter)
		r.Post("/recommendations", controllers.AIRecommendations(deps.AI, deps.Recs, logg))
		r.Post("/crop-insights", controllers.AICropInsights(deps.AI, deps.Farms, logg))
		r.Post("/predict-demand", controllers.AIPredictDemand(deps.AI, deps.Orders, deps.Farms, logg))
	})

	r.Route("/api/reviews", func(r chi.Router) {
		r.Get("/", controllers.ReviewsList(deps.Reviews, logg))
		r.Post("/", controllers.ReviewCreate(deps.Reviews, logg))
	})

	r.Route("/api/chat", func(r chi.Router) {
		r.Get("/{sessionId}", controllers.ChatHistory(deps.Chat, logg))
		r.Post("/", controllers.ChatSend(deps.Chat, logg))
	})

	r.Route("/api/analytics", func(r chi.Router) {
		r.Get("/popular-items", controllers.AnalyticsPopularItems(deps.Analytics, logg))
		r.Get("/revenue", controllers.AnalyticsRevenue(deps.Analytics, logg))
	})

	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", controllers.CartGet(deps.Cart, logg))
		r.Delete("/", controllers.CartClear(deps.Cart, logg))
		r.Post("/items", controllers.CartAddItem(deps.Cart, deps.Menu, logg))
		r.Put("/items/{menuItemId}", controllers.CartUpdateItem(deps.Cart, logg))
		r.Delete("/items/{menuItemId}", controllers.CartRemoveItem(deps.Cart, logg))
	})

	return r
}
