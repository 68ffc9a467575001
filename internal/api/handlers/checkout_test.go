package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/electricpro/storefront/internal/api/handlers"
	appErrors "github.com/electricpro/storefront/internal/errors"
	"github.com/electricpro/storefront/internal/models"
	service "github.com/electricpro/storefront/internal/services"
	"github.com/electricpro/storefront/internal/store"
	"github.com/electricpro/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	orders []*models.OrderRecord
	err    error
}

func (s *recordingSink) Dispatch(_ context.Context, order *models.OrderRecord) error {
	if s.err != nil {
		return s.err
	}

	s.orders = append(s.orders, order)

	return nil
}

type deniedLimiter struct{}

func (deniedLimiter) Allow(context.Context, string) (bool, int64, time.Duration, error) {
	return false, 0, time.Minute, nil
}

func checkoutForm() models.CustomerDetails {
	return models.CustomerDetails{
		Name:         "Jane Wanjiku",
		Email:        "jane@example.com",
		Phone:        "+254700000000",
		DeliveryType: models.DeliveryTypeDelivery,
		Address:      "12 Moi Avenue",
		City:         "Nairobi",
	}
}

func TestSubmitOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		cartStore := store.NewCartStore()
		cartStore.AddItem(models.CartItem{ID: "led-1", Name: "Smart LED Bulb Set", Price: "KSh 8,999"}, 2)
		sink := &recordingSink{}
		handler := handlers.NewCheckoutHandler(service.NewCheckoutService(cartStore, nil, sink))

		body, _ := json.Marshal(checkoutForm())
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.SubmitOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		envelope := decodeEnvelope(t, rr)
		require.True(t, envelope.Success)

		raw, err := json.Marshal(envelope.Data)
		require.NoError(t, err)

		var order models.OrderRecord
		require.NoError(t, json.Unmarshal(raw, &order))
		assert.Regexp(t, `^ORD-`, order.OrderID)
		assert.InDelta(t, 17998.0, order.Total, 0.001)

		require.Len(t, sink.orders, 1)
		assert.Empty(t, cartStore.Snapshot().Items)
	})

	t.Run("Empty Cart", func(t *testing.T) {
		handler := handlers.NewCheckoutHandler(service.NewCheckoutService(store.NewCartStore(), nil, &recordingSink{}))

		body, _ := json.Marshal(checkoutForm())
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		handler.SubmitOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, appErrors.ErrCodeEmptyCart, envelope.Error.Code)
	})

	t.Run("Missing Address", func(t *testing.T) {
		cartStore := store.NewCartStore()
		cartStore.AddItem(models.CartItem{ID: "led-1", Name: "Smart LED Bulb Set", Price: "KSh 8,999"}, 1)
		handler := handlers.NewCheckoutHandler(service.NewCheckoutService(cartStore, nil, &recordingSink{}))

		form := checkoutForm()
		form.Address = ""
		form.City = ""
		body, _ := json.Marshal(form)
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		handler.SubmitOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, appErrors.ErrCodeMissingAddress, envelope.Error.Code)
		assert.Equal(t, 1, cartStore.Snapshot().TotalItems)
	})

	t.Run("Rate Limited", func(t *testing.T) {
		cartStore := store.NewCartStore()
		cartStore.AddItem(models.CartItem{ID: "led-1", Name: "Smart LED Bulb Set", Price: "KSh 8,999"}, 1)
		handler := handlers.NewCheckoutHandler(service.NewCheckoutService(cartStore, deniedLimiter{}, &recordingSink{}))

		body, _ := json.Marshal(checkoutForm())
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		handler.SubmitOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, appErrors.ErrCodeTooManyRequests, envelope.Error.Code)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		handler := handlers.NewCheckoutHandler(service.NewCheckoutService(store.NewCartStore(), nil, &recordingSink{}))

		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader([]byte("{oops")), nil)
		rr := httptest.NewRecorder()

		handler.SubmitOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, appErrors.ErrCodeBadRequest, envelope.Error.Code)
	})
}
