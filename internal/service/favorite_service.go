package service

import (
	"context"

	"github.com/dom/snowseeker/internal/catalog"
	"github.com/dom/snowseeker/internal/domain"
)

// FavoriteService marks and unmarks favorites. Ids are not checked against
// the catalog: whatever the client sends is stored.
type FavoriteService struct {
	catalog   *catalog.Provider
	favorites FavoriteStore
}

func NewFavoriteService(catalog *catalog.Provider, favorites FavoriteStore) *FavoriteService {
	return &FavoriteService{
		catalog:   catalog,
		favorites: favorites,
	}
}

type FavoriteList struct {
	IDs     []string
	Resorts []domain.Resort // catalog entries among IDs, in catalog order
}

func (s *FavoriteService) Add(ctx context.Context, resortID string) {
	s.favorites.Add(ctx, resortID)
}

func (s *FavoriteService) Remove(ctx context.Context, resortID string) {
	s.favorites.Remove(ctx, resortID)
}

func (s *FavoriteService) IsFavorite(resortID string) bool {
	return s.favorites.IsFavorite(resortID)
}

func (s *FavoriteService) List(ctx context.Context) *FavoriteList {
	list := &FavoriteList{
		IDs:     s.favorites.IDs(),
		Resorts: []domain.Resort{},
	}

	for _, r := range s.catalog.All() {
		if s.favorites.IsFavorite(r.ID) {
			list.Resorts = append(list.Resorts, r)
		}
	}
	return list
}
