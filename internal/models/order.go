package models

import "time"

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// CustomerDetails is the checkout form as submitted. Required-field and
// address rules are enforced by the order assembler, not by validator
// tags: an empty cart must win over any form defect, which is an ordering
// contract struct validation cannot express.
type CustomerDetails struct {
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	DeliveryType  DeliveryType `json:"delivery_type"`
	Address       string       `json:"address,omitempty"`
	City          string       `json:"city,omitempty"`
	PostalCode    string       `json:"postal_code,omitempty"`
	PreferredDate string       `json:"preferred_date,omitempty"`
	Notes         string       `json:"notes,omitempty"`
}

// OrderRecord is immutable once assembled. Items are copied out of the
// cart snapshot so later cart mutations cannot alter a placed order.
type OrderRecord struct {
	OrderID   string          `json:"order_id"`
	Customer  CustomerDetails `json:"customer"`
	Items     []CartItem      `json:"items"`
	Total     float64         `json:"total"`
	OrderDate time.Time       `json:"order_date"`
}
