// Package service holds the request-level commerce operations layered on
// top of the state stores.
package service

import (
	"github.com/electricpro/storefront/internal/models"
	"github.com/electricpro/storefront/internal/store"
)

type CartService struct {
	store *store.CartStore
}

func NewCartService(cartStore *store.CartStore) *CartService {
	return &CartService{store: cartStore}
}

func (s *CartService) Snapshot() models.CartSnapshot {
	return s.store.Snapshot()
}

// AddItem merges the candidate into the cart. A missing quantity defaults
// to a single unit.
func (s *CartService) AddItem(req *models.AddItemRequest) models.CartSnapshot {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	return s.store.AddItem(models.CartItem{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Category: req.Category,
	}, quantity)
}

func (s *CartService) UpdateQuantity(req *models.UpdateQuantityRequest) models.CartSnapshot {
	return s.store.UpdateQuantity(req.ID, req.Quantity)
}

func (s *CartService) RemoveItem(id string) models.CartSnapshot {
	return s.store.RemoveItem(id)
}

func (s *CartService) Clear() models.CartSnapshot {
	return s.store.Clear()
}
