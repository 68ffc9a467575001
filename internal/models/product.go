package models

// Product is a catalog listing entry. Prices are display-formatted
// strings; the commerce engine derives numbers from them only when items
// enter the cart.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         string  `json:"price"`
	OriginalPrice string  `json:"original_price,omitempty"`
	Image         string  `json:"image,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty"`
	Badge         string  `json:"badge,omitempty"`
	Category      string  `json:"category"`
}
