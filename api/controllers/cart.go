package controllers

import (
	"net/http"
	"strings"

	"github.com/gatera900/bite-backend/api/responses"
	"github.com/gatera900/bite-backend/api/validators"
	cartsvc "github.com/gatera900/bite-backend/internal/cart"
	"github.com/gatera900/bite-backend/internal/catalog"
	pkgerrors "github.com/gatera900/bite-backend/pkg/errors"
	"github.com/gatera900/bite-backend/pkg/logger"
)

const cartSessionHeader = "X-Cart-Session"

func cartSession(r *http.Request) (string, error) {
	session := strings.TrimSpace(r.Header.Get(cartSessionHeader))
	if session == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "cart session header is required").
			WithDetails(map[string]any{"header": cartSessionHeader})
	}
	return session, nil
}

func CartGet(mgr *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, mgr.Get(session))
	}
}

// CartAddItem resolves the line against the catalog so carts carry
// current names and prices, then merges it into the session cart.
func CartAddItem(mgr *cartsvc.Manager, menu catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := menu.Get(r.Context(), payload.MenuItemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart := mgr.Add(session, cartsvc.Item{
			MenuItemID:     item.ID,
			Name:           item.Name,
			Price:          item.Price,
			Quantity:       payload.Quantity,
			Customizations: payload.Customizations,
		})
		responses.WriteSuccess(w, cart)
	}
}

func CartUpdateItem(mgr *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		menuItemID, err := parseIDParam(r, "menuItemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, mgr.UpdateQuantity(session, menuItemID, payload.Quantity))
	}
}

func CartRemoveItem(mgr *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		menuItemID, err := parseIDParam(r, "menuItemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, mgr.Remove(session, menuItemID))
	}
}

func CartClear(mgr *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, mgr.Clear(session))
	}
}

type addCartItemRequest struct {
	MenuItemID     int    `json:"menuItemId" validate:"required,min=1"`
	Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
	Customizations string `json:"customizations"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}
