package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	appErrors "github.com/electricpro/storefront/internal/errors"
	"github.com/electricpro/storefront/internal/models"
	"github.com/electricpro/storefront/pkg/sendgrid"
)

// OrderSink receives a fully assembled order record. A nil error is taken
// as confirmation, after which the checkout flow clears the cart.
type OrderSink interface {
	Dispatch(ctx context.Context, order *models.OrderRecord) error
}

// LogSink records orders to the structured log only. It backs deployments
// without an email transport configured.
type LogSink struct{}

func (LogSink) Dispatch(ctx context.Context, order *models.OrderRecord) error {
	slog.InfoContext(ctx, "Order received",
		slog.String("orderId", order.OrderID),
		slog.String("customer", order.Customer.Email),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.Total),
	)

	return nil
}

// NotificationService dispatches orders as confirmation emails.
type NotificationService struct {
	email sendgrid.EmailService
}

func NewNotificationService(email sendgrid.EmailService) *NotificationService {
	return &NotificationService{email: email}
}

// Dispatch implements OrderSink.
func (n *NotificationService) Dispatch(ctx context.Context, order *models.OrderRecord) error {
	req := &sendgrid.EmailRequest{
		To:          order.Customer.Email,
		Subject:     fmt.Sprintf("Your ElectricPro order %s is confirmed", order.OrderID),
		Content:     orderSummaryText(order),
		HTMLContent: orderSummaryHTML(order),
	}

	if err := n.email.Send(ctx, req); err != nil {
		return appErrors.ThirdPartyError("Failed to send order confirmation").WithError(err)
	}

	return nil
}

func orderSummaryText(order *models.OrderRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s,\n\n", order.Customer.Name)
	fmt.Fprintf(&b, "Thank you for your order %s placed on %s.\n\n", order.OrderID, order.OrderDate.Format("2 Jan 2006"))

	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %d x %s - %s\n", item.Quantity, item.Name, item.Price)
	}

	fmt.Fprintf(&b, "\nTotal: KSh %.2f\n", order.Total)

	if order.Customer.DeliveryType == models.DeliveryTypePickup {
		b.WriteString("Your order will be ready for store pickup.\n")
	} else {
		fmt.Fprintf(&b, "Delivery to: %s, %s\n", order.Customer.Address, order.Customer.City)
	}

	return b.String()
}

func orderSummaryHTML(order *models.OrderRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<p>Hello %s,</p>", html.EscapeString(order.Customer.Name))
	fmt.Fprintf(&b, "<p>Thank you for your order <strong>%s</strong>.</p><ul>", order.OrderID)

	for _, item := range order.Items {
		fmt.Fprintf(&b, "<li>%d &times; %s &mdash; %s</li>",
			item.Quantity, html.EscapeString(item.Name), html.EscapeString(item.Price))
	}

	fmt.Fprintf(&b, "</ul><p>Total: <strong>KSh %.2f</strong></p>", order.Total)

	return b.String()
}
