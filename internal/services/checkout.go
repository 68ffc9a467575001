package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	appErrors "github.com/electricpro/storefront/internal/errors"
	"github.com/electricpro/storefront/internal/metrics"
	"github.com/electricpro/storefront/internal/models"
	"github.com/electricpro/storefront/internal/store"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// SubmissionLimiter caps how often a single client may submit an order.
type SubmissionLimiter interface {
	Allow(ctx context.Context, key string) (bool, int64, time.Duration, error)
}

// AssembleOrder validates the submitted form against the cart snapshot and
// produces an immutable order record. The checks run in a fixed order: an
// empty cart wins over any form defect, missing contact fields win over
// missing address fields. AssembleOrder never mutates the cart.
func AssembleOrder(snapshot models.CartSnapshot, form *models.CustomerDetails) (*models.OrderRecord, error) {
	if len(snapshot.Items) == 0 {
		return nil, appErrors.EmptyCartError("Cannot place an order with an empty cart")
	}

	if strings.TrimSpace(form.Name) == "" ||
		strings.TrimSpace(form.Email) == "" ||
		strings.TrimSpace(form.Phone) == "" {
		return nil, appErrors.MissingContactInfoError("Name, email and phone number are required")
	}

	customer := *form
	if customer.DeliveryType == "" {
		// the storefront form defaults to home delivery
		customer.DeliveryType = models.DeliveryTypeDelivery
	}

	if customer.DeliveryType == models.DeliveryTypeDelivery &&
		(strings.TrimSpace(customer.Address) == "" || strings.TrimSpace(customer.City) == "") {
		return nil, appErrors.MissingAddressError("Delivery address and city are required")
	}

	items := make([]models.CartItem, len(snapshot.Items))
	copy(items, snapshot.Items)

	return &models.OrderRecord{
		OrderID:   "ORD-" + uuid.NewString(),
		Customer:  customer,
		Items:     items,
		Total:     snapshot.TotalPrice,
		OrderDate: time.Now().UTC(),
	}, nil
}

// CheckoutService runs the submission handshake: rate limit, assemble,
// dispatch to the order sink, and clear the cart only once the sink
// confirms. A failed dispatch leaves the cart intact.
type CheckoutService struct {
	cart      *store.CartStore
	limiter   SubmissionLimiter
	sink      OrderSink
	sanitizer *bluemonday.Policy
}

// NewCheckoutService wires the submission flow. A nil limiter disables
// rate limiting.
func NewCheckoutService(cart *store.CartStore, limiter SubmissionLimiter, sink OrderSink) *CheckoutService {
	return &CheckoutService{
		cart:      cart,
		limiter:   limiter,
		sink:      sink,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *CheckoutService) Submit(ctx context.Context, clientKey string, form *models.CustomerDetails) (*models.OrderRecord, error) {
	if s.limiter != nil {
		allowed, _, wait, err := s.limiter.Allow(ctx, clientKey)
		if err != nil {
			return nil, appErrors.InternalError("Failed to check submission rate").WithError(err)
		}

		if !allowed {
			return nil, appErrors.TooManyRequestsError(fmt.Sprintf("Too many order submissions, retry in %s", wait))
		}
	}

	// customer-supplied free text ends up in emails; strip any markup
	sanitized := *form
	sanitized.Notes = s.sanitizer.Sanitize(form.Notes)

	order, err := AssembleOrder(s.cart.Snapshot(), &sanitized)
	if err != nil {
		return nil, err
	}

	if err := s.sink.Dispatch(ctx, order); err != nil {
		return nil, err
	}

	s.cart.Clear()
	metrics.OrderSubmitted()

	return order, nil
}
