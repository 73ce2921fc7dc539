package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gatera900/bite-backend/api/responses"
	"github.com/gatera900/bite-backend/api/validators"
	"github.com/gatera900/bite-backend/internal/ai"
	"github.com/gatera900/bite-backend/internal/farmstats"
	"github.com/gatera900/bite-backend/internal/orders"
	"github.com/gatera900/bite-backend/internal/recs"
	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/models"
)

// AIRecommendations generates a personalized menu selection and
// records it for later analysis.
func AIRecommendations(svc *ai.Service, store recs.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload recommendationsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := svc.RecommendMenu(r.Context(), payload.Preferences, payload.OrderHistory)

		if _, err := store.Create(r.Context(), models.AIRecommendation{
			UserID:          payload.UserID,
			Type:            "menu",
			Recommendations: result.Recommendations,
			Confidence:      result.Confidence,
		}); err != nil && logg != nil {
			// The caller still gets their recommendations.
			logg.Error(r.Context(), "storing recommendation set failed", err)
		}

		responses.WriteSuccess(w, result)
	}
}

// AICropInsights analyzes the partner farms under current weather.
func AICropInsights(svc *ai.Service, farms *farmstats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		farmData, err := farms.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		weather := farms.CurrentWeather(r.Context())
		responses.WriteSuccess(w, svc.CropInsights(r.Context(), farmData, weather))
	}
}

// AIPredictDemand forecasts category demand from order history and
// current weather.
func AIPredictDemand(svc *ai.Service, repo orders.Repository, farms *farmstats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderHistory, err := repo.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		weather := farms.CurrentWeather(r.Context())
		responses.WriteSuccess(w, svc.PredictDemand(r.Context(), orderHistory, weather))
	}
}

type recommendationsRequest struct {
	UserID       *int            `json:"userId"`
	Preferences  json.RawMessage `json:"preferences"`
	OrderHistory []models.Order  `json:"orderHistory"`
}
