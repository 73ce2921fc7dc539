package controllers

import (
	"net/http"

	"github.com/gatera900/bite-backend/api/responses"
	"github.com/gatera900/bite-backend/internal/analytics"
	"github.com/gatera900/bite-backend/pkg/logger"
)

func AnalyticsPopularItems(svc *analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranked, err := svc.PopularItems(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ranked)
	}
}

func AnalyticsRevenue(svc *analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.Revenue(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}
