// Package handlers exposes the storefront commerce engine over HTTP. Each
// handler decodes, validates, delegates to a service and writes the shared
// response envelope.
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

type CartHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary		Get the current cart
//	@Description	Returns the cart contents with derived item and price totals.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSnapshot	"Current cart state"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.cartService.Snapshot())
	}
}

// AddItem godoc
//	@Summary		Add an item to the cart
//	@Description	Merges the item into the cart. Adding an id already present increments its quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Item to add"
//	@Success		200		{object}	models.CartSnapshot		"Cart state after the add"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")

			return
		}

		snapshot := h.cartService.AddItem(&req)

		logger.Info("Item added to cart",
			slog.String("itemId", req.ID),
			slog.Int("totalItems", snapshot.TotalItems))
		response.Success(w, http.StatusOK, snapshot)
	}
}

// UpdateQuantity godoc
//	@Summary		Update an item's quantity
//	@Description	Sets the quantity for an item already in the cart. Zero or negative removes the item; unknown ids are ignored.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			update	body		models.UpdateQuantityRequest	true	"Quantity update"
//	@Success		200		{object}	models.CartSnapshot				"Cart state after the update"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Router			/cart/items [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity update input")

			return
		}

		snapshot := h.cartService.UpdateQuantity(&req)

		logger.Info("Cart quantity updated",
			slog.String("itemId", req.ID),
			slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, snapshot)
	}
}

// RemoveItem godoc
//	@Summary		Remove an item from the cart
//	@Description	Deletes the item with the given id. Removing an absent id is a no-op.
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string				true	"Item ID"
//	@Success		200	{object}	models.CartSnapshot	"Cart state after the removal"
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		snapshot := h.cartService.RemoveItem(id)

		logger.Info("Item removed from cart", slog.String("itemId", id))
		response.Success(w, http.StatusOK, snapshot)
	}
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Description	Removes every item and resets the totals.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSnapshot	"Empty cart state"
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		snapshot := h.cartService.Clear()

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, snapshot)
	}
}
