package service

import (
	"github.com/electricpro/storefront/internal/models"
	"github.com/electricpro/storefront/internal/store"
)

type FavoritesService struct {
	store *store.FavoritesStore
}

func NewFavoritesService(favoritesStore *store.FavoritesStore) *FavoritesService {
	return &FavoritesService{store: favoritesStore}
}

func (s *FavoritesService) Snapshot() models.FavoritesSnapshot {
	return s.store.Snapshot()
}

func (s *FavoritesService) Add(req *models.AddFavoriteRequest) models.FavoritesSnapshot {
	return s.store.Add(models.FavoriteEntry{
		ID:     req.ID,
		Name:   req.Name,
		Price:  req.Price,
		Image:  req.Image,
		Rating: req.Rating,
	})
}

func (s *FavoritesService) Remove(id string) models.FavoritesSnapshot {
	return s.store.Remove(id)
}

func (s *FavoritesService) IsFavorite(id string) bool {
	return s.store.IsFavorite(id)
}
