package controllers

import (
	"net/http"
	"strconv"

	"github.com/gatera900/bite-backend/api/responses"
	"github.com/gatera900/bite-backend/api/validators"
	"github.com/gatera900/bite-backend/internal/orders"
	pkgerrors "github.com/gatera900/bite-backend/pkg/errors"
	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/models"
)

// OrdersList returns all orders, optionally filtered by ?userId=.
func OrdersList(repo orders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			out []models.Order
			err error
		)
		if raw := r.URL.Query().Get("userId"); raw != "" {
			userID, convErr := strconv.Atoi(raw)
			if convErr != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "userId must be numeric"))
				return
			}
			out, err = repo.ListByUser(r.Context(), userID)
		} else {
			out, err = repo.List(r.Context())
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

func OrderGet(repo orders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := repo.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func OrderCreate(repo orders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := repo.Create(r.Context(), payload.toModel())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// OrderUpdateStatus overwrites the status as submitted. The kitchen
// dashboard drives transitions; the API does not police them.
func OrderUpdateStatus(repo orders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := repo.UpdateStatus(r.Context(), id, payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

type orderItemRequest struct {
	MenuItemID     int     `json:"menuItemId" validate:"required,min=1"`
	Name           string  `json:"name" validate:"required"`
	Price          float64 `json:"price" validate:"gte=0"`
	Quantity       int     `json:"quantity" validate:"required,min=1"`
	Customizations string  `json:"customizations"`
}

type createOrderRequest struct {
	UserID              *int               `json:"userId"`
	Total               float64            `json:"total" validate:"gte=0"`
	Items               []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	SpecialInstructions *string            `json:"specialInstructions"`
	EstimatedTime       *int               `json:"estimatedTime" validate:"omitempty,min=0"`
}

func (p createOrderRequest) toModel() models.Order {
	items := make([]models.OrderItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, models.OrderItem{
			MenuItemID:     item.MenuItemID,
			Name:           item.Name,
			Price:          item.Price,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		})
	}
	return models.Order{
		UserID:              p.UserID,
		Total:               p.Total,
		Items:               items,
		SpecialInstructions: p.SpecialInstructions,
		EstimatedTime:       p.EstimatedTime,
	}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
