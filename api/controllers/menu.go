package controllers

import (
	"net/http"

	"github.com/gatera900/bite-backend/api/responses"
	"github.com/gatera900/bite-backend/api/validators"
	"github.com/gatera900/bite-backend/internal/catalog"
	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/models"
)

// MenuList returns the catalog, optionally filtered by ?category=.
func MenuList(repo catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []models.MenuItem
			err   error
		)
		if category := r.URL.Query().Get("category"); category != "" {
			items, err = repo.ListByCategory(r.Context(), category)
		} else {
			items, err = repo.List(r.Context())
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func MenuGet(repo catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := repo.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func MenuCreate(repo catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createMenuItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := repo.Create(r.Context(), payload.toModel())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

func MenuUpdate(repo catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var patch models.MenuItemPatch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := repo.Update(r.Context(), id, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func MenuDelete(repo catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		deleted, err := repo.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !deleted {
			responses.WriteError(r.Context(), logg, w, catalog.ErrNotFound)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "menu item deleted"})
	}
}

type createMenuItemRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	Category        string   `json:"category" validate:"required"`
	Ingredients     []string `json:"ingredients"`
	Allergens       []string `json:"allergens"`
	Dietary         []string `json:"dietary"`
	ImageURL        string   `json:"imageUrl"`
	Available       *bool    `json:"available"`
	SeasonalScore   float64  `json:"seasonalScore" validate:"omitempty,gte=0,lte=1"`
	PopularityScore float64  `json:"popularityScore" validate:"omitempty,gte=0,lte=1"`
}

func (p createMenuItemRequest) toModel() models.MenuItem {
	available := true
	if p.Available != nil {
		available = *p.Available
	}
	return models.MenuItem{
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Category:        p.Category,
		Ingredients:     p.Ingredients,
		Allergens:       p.Allergens,
		Dietary:         p.Dietary,
		ImageURL:        p.ImageURL,
		Available:       available,
		SeasonalScore:   p.SeasonalScore,
		PopularityScore: p.PopularityScore,
	}
}
