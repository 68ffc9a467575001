package models

// CartItem is a purchase selection. Price keeps the display-formatted
// string the storefront showed at the time of add ("KSh 8,999"); the
// numeric value used for totals is derived from it, never stored.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
	Quantity int    `json:"quantity"`
}

// CartSnapshot is a read-only copy of the cart state. Items preserve
// insertion order.
type CartSnapshot struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

type AddItemRequest struct {
	ID       string `json:"id"       validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Price    string `json:"price"    validate:"required"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
	Quantity int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

// UpdateQuantityRequest carries no quantity bound on purpose: negative
// values are clamped to zero and zero removes the item.
type UpdateQuantityRequest struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity"`
}
