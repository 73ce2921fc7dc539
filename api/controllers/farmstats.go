package controllers

import (
	"net/http"

	"github.com/gatera900/bite-backend/api/responses"
	"github.com/gatera900/bite-backend/internal/farmstats"
	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/models"
)

// FarmStatsList returns partner farms, optionally filtered by
// ?cropType=.
func FarmStatsList(svc *farmstats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			out []models.FarmStats
			err error
		)
		if cropType := r.URL.Query().Get("cropType"); cropType != "" {
			out, err = svc.ListByCropType(r.Context(), cropType)
		} else {
			out, err = svc.List(r.Context())
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// FarmStatsWeather serves live weather; provider failures degrade to
// the static snapshot, never an error.
func FarmStatsWeather(svc *farmstats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.CurrentWeather(r.Context()))
	}
}

func FarmStatsConditions(svc *farmstats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.GrowingConditions(r.Context()))
	}
}
