package handlers

import (
	"log/slog"
	"net/http"

	"github.com/electricpro/storefront/internal/api/middleware"
	"github.com/electricpro/storefront/internal/models"
	service "github.com/electricpro/storefront/internal/services"
	"github.com/electricpro/storefront/internal/utils"
	"github.com/electricpro/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type FavoritesHandler struct {
	favoritesService *service.FavoritesService
	validator        *validator.Validate
}

func NewFavoritesHandler(favoritesService *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favoritesService: favoritesService, validator: validator.New()}
}

// GetFavorites godoc
//	@Summary		List favorite products
//	@Description	Returns all liked products in the order they were added.
//	@Tags			Favorites
//	@Produce		json
//	@Success		200	{object}	models.FavoritesSnapshot	"Current favorites"
//	@Router			/favorites [get]
func (h *FavoritesHandler) GetFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.favoritesService.Snapshot())
	}
}

// AddFavorite godoc
//	@Summary		Mark a product as favorite
//	@Description	Adds the product to the favorites set. Adding an id already present changes nothing.
//	@Tags			Favorites
//	@Accept			json
//	@Produce		json
//	@Param			favorite	body		models.AddFavoriteRequest	true	"Product to mark"
//	@Success		200			{object}	models.FavoritesSnapshot	"Favorites after the add"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Router			/favorites [post]
func (h *FavoritesHandler) AddFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddFavoriteRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add favorite input")

			return
		}

		snapshot := h.favoritesService.Add(&req)

		logger.Info("Product marked as favorite",
			slog.String("productId", req.ID),
			slog.Int("count", snapshot.Count))
		response.Success(w, http.StatusOK, snapshot)
	}
}

// GetFavorite godoc
//	@Summary		Check favorite membership
//	@Description	Reports whether the product is currently marked as favorite.
//	@Tags			Favorites
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	map[string]any			"Membership flag"
//	@Router			/favorites/{id} [get]
func (h *FavoritesHandler) GetFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		response.Success(w, http.StatusOK, map[string]any{
			"id":          id,
			"is_favorite": h.favoritesService.IsFavorite(id),
		})
	}
}

// RemoveFavorite godoc
//	@Summary		Unmark a favorite product
//	@Description	Removes the product from the favorites set. Removing an absent id is a no-op.
//	@Tags			Favorites
//	@Produce		json
//	@Param			id	path		string						true	"Product ID"
//	@Success		200	{object}	models.FavoritesSnapshot	"Favorites after the removal"
//	@Router			/favorites/{id} [delete]
func (h *FavoritesHandler) RemoveFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		snapshot := h.favoritesService.Remove(id)

		logger.Info("Product removed from favorites", slog.String("productId", id))
		response.Success(w, http.StatusOK, snapshot)
	}
}
