package service

import (
	"github.com/dom/snowseeker/internal/catalog"
)

type Services struct {
	Resort   *ResortService
	Favorite *FavoriteService
}

func NewServices(catalog *catalog.Provider, favorites FavoriteStore) *Services {
	return &Services{
		Resort:   NewResortService(catalog, favorites),
		Favorite: NewFavoriteService(catalog, favorites),
	}
}
