package handlers

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/electricpro/storefront/internal/api/middleware"
	"github.com/electricpro/storefront/internal/models"
	service "github.com/electricpro/storefront/internal/services"
	"github.com/electricpro/storefront/internal/utils"
	"github.com/electricpro/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// SubmitOrder godoc
//	@Summary		Place an order
//	@Description	Assembles an order from the current cart and the submitted customer details. The cart is cleared only after the order is accepted.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			details	body		models.CustomerDetails	true	"Customer and delivery details"
//	@Success		201		{object}	models.OrderRecord		"Placed order"
//	@Failure		400		{object}	response.ErrorResponse	"Empty cart, missing contact info or missing address"
//	@Failure		429		{object}	response.ErrorResponse	"Too many submissions"
//	@Failure		500		{object}	response.ErrorResponse	"Order could not be dispatched"
//	@Router			/checkout [post]
func (h *CheckoutHandler) SubmitOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CustomerDetails
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")

			return
		}

		order, err := h.checkoutService.Submit(r.Context(), clientKey(r), &req)
		if err != nil {
			logger.Warn("Order submission rejected", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order placed",
			slog.String("orderId", order.OrderID),
			slog.Int("items", len(order.Items)),
			slog.Float64("total", order.Total))
		response.Success(w, http.StatusCreated, order)
	}
}

// clientKey identifies the submitting client for rate limiting. The remote
// address is enough here; the service sits behind no proxy by default.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
