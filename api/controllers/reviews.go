package controllers

import (
	"net/http"
	"strconv"

	"github.com/gatera900/bite-backend/api/responses"
	"github.com/gatera900/bite-backend/api/validators"
	"github.com/gatera900/bite-backend/internal/reviews"
	pkgerrors "github.com/gatera900/bite-backend/pkg/errors"
	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/models"
)

// ReviewsList returns reviews, optionally scoped by ?orderId=.
func ReviewsList(svc *reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			out []models.Review
			err error
		)
		if raw := r.URL.Query().Get("orderId"); raw != "" {
			orderID, convErr := strconv.Atoi(raw)
			if convErr != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "orderId must be numeric"))
				return
			}
			out, err = svc.ListByOrder(r.Context(), orderID)
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

func ReviewCreate(svc *reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createReviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		review, err := svc.Create(r.Context(), models.Review{
			UserID:  payload.UserID,
			OrderID: payload.OrderID,
			Rating:  payload.Rating,
			Comment: payload.Comment,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, review)
	}
}

type createReviewRequest struct {
	UserID  *int    `json:"userId"`
	OrderID *int    `json:"orderId"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}
