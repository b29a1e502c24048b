package service

import (
	"context"

	"github.com/dom/snowseeker/internal/catalog"
	"github.com/dom/snowseeker/internal/domain"
)

// FavoriteStore is the part of the favorites store the services depend on.
type FavoriteStore interface {
	IsFavorite(resortID string) bool
	Add(ctx context.Context, resortID string)
	Remove(ctx context.Context, resortID string)
	IDs() []string
}

type ResortService struct {
	catalog   *catalog.Provider
	favorites FavoriteStore
}

func NewResortService(catalog *catalog.Provider, favorites FavoriteStore) *ResortService {
	return &ResortService{
		catalog:   catalog,
		favorites: favorites,
	}
}

type ListResortsInput struct {
	Query string
	Sort  catalog.SortOrder
}

type ResortSummary struct {
	domain.Resort
	IsFavorite bool
}

type ResortDetail struct {
	domain.Resort
	SizeLabel     string
	PriceLabel    string
	FacilityTypes []domain.Facility
	IsFavorite    bool
}

// List filters and sorts the catalog and flags each favorite.
func (s *ResortService) List(ctx context.Context, input ListResortsInput) ([]ResortSummary, error) {
	order := input.Sort
	if order == "" {
		order = catalog.SortDefault
	}

	resorts := catalog.Derive(s.catalog.All(), input.Query, order)

	summaries := make([]ResortSummary, len(resorts))
	for i, r := range resorts {
		summaries[i] = ResortSummary{
			Resort:     r,
			IsFavorite: s.favorites.IsFavorite(r.ID),
		}
	}
	return summaries, nil
}

func (s *ResortService) Get(ctx context.Context, id string) (*ResortDetail, error) {
	resort, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	return &ResortDetail{
		Resort:        *resort,
		SizeLabel:     resort.SizeLabel(),
		PriceLabel:    resort.PriceLabel(),
		FacilityTypes: resort.FacilityTypes(),
		IsFavorite:    s.favorites.IsFavorite(resort.ID),
	}, nil
}

func (s *ResortService) Facilities() []domain.Facility {
	return domain.AllFacilities()
}

func (s *ResortService) Count() int {
	return s.catalog.Len()
}
