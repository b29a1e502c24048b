package service_test

import (
	"context"
	"testing"

	"github.com/dom/snowseeker/internal/catalog"
	"github.com/dom/snowseeker/internal/domain"
	"github.com/dom/snowseeker/internal/favorites"
	"github.com/dom/snowseeker/internal/service"
	"github.com/dom/snowseeker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T, resorts ...domain.Resort) (*service.Services, *favorites.Store) {
	t.Helper()

	provider := testutil.NewTestCatalog(t, resorts...)
	store := favorites.Load(context.Background(), testutil.NewMemoryPreferences())
	return service.NewServices(provider, store), store
}

func TestResortService_List(t *testing.T) {
	svcs, store := newServices(t,
		testutil.NewResortBuilder().WithName("Aspen").WithCountry("USA").Build(),
		testutil.NewResortBuilder().WithName("Alpe d'Huez").WithCountry("France").Build(),
		testutil.NewResortBuilder().WithName("Bansko").WithCountry("Bulgaria").Build(),
	)
	ctx := context.Background()
	store.Add(ctx, "bansko")

	tests := []struct {
		name      string
		input     service.ListResortsInput
		wantNames []string
	}{
		{
			name:      "default order",
			input:     service.ListResortsInput{},
			wantNames: []string{"Aspen", "Alpe d'Huez", "Bansko"},
		},
		{
			name:      "filter by query",
			input:     service.ListResortsInput{Query: "al"},
			wantNames: []string{"Alpe d'Huez"},
		},
		{
			name:      "sort by name",
			input:     service.ListResortsInput{Sort: catalog.SortName},
			wantNames: []string{"Alpe d'Huez", "Aspen", "Bansko"},
		},
		{
			name:      "sort by country",
			input:     service.ListResortsInput{Sort: catalog.SortCountry},
			wantNames: []string{"Bansko", "Alpe d'Huez", "Aspen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svcs.Resort.List(ctx, tt.input)
			require.NoError(t, err)

			names := make([]string, len(got))
			for i, r := range got {
				names[i] = r.Name
				assert.Equal(t, r.ID == "bansko", r.IsFavorite, "favorite flag for %s", r.ID)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestResortService_Get(t *testing.T) {
	svcs, store := newServices(t,
		testutil.NewResortBuilder().
			WithName("Niseko").
			WithCountry("Japan").
			WithSize(2).
			WithPrice(2).
			WithFacilities(domain.FacilityFamily, domain.FacilityBeginners).
			Build(),
	)
	ctx := context.Background()

	detail, err := svcs.Resort.Get(ctx, "niseko")
	require.NoError(t, err)
	assert.Equal(t, "Niseko", detail.Name)
	assert.Equal(t, "Average", detail.SizeLabel)
	assert.Equal(t, "$$", detail.PriceLabel)
	require.Len(t, detail.FacilityTypes, 2)
	assert.Equal(t, domain.FacilityFamily, detail.FacilityTypes[0].Name)
	assert.False(t, detail.IsFavorite)

	store.Add(ctx, "niseko")
	detail, err = svcs.Resort.Get(ctx, "niseko")
	require.NoError(t, err)
	assert.True(t, detail.IsFavorite)

	_, err = svcs.Resort.Get(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrResortNotFound)
}

func TestResortService_Facilities(t *testing.T) {
	svcs, _ := newServices(t)
	assert.Len(t, svcs.Resort.Facilities(), 5)
	assert.Equal(t, 0, svcs.Resort.Count())
}
