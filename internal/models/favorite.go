package models

// FavoriteEntry is a liked product reference. The display metadata is
// stored so the storefront can render the favorites drawer without
// re-fetching the catalog.
type FavoriteEntry struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Image  string  `json:"image,omitempty"`
	Rating float64 `json:"rating,omitempty"`
}

type FavoritesSnapshot struct {
	Entries []FavoriteEntry `json:"entries"`
	Count   int             `json:"count"`
}

type AddFavoriteRequest struct {
	ID     string  `json:"id"    validate:"required"`
	Name   string  `json:"name"  validate:"required"`
	Price  float64 `json:"price" validate:"omitempty,gte=0"`
	Image  string  `json:"image,omitempty"`
	Rating float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}
