package testutil

import (
	"testing"

	"github.com/dom/snowseeker/internal/catalog"
	"github.com/dom/snowseeker/internal/domain"
)

// ResortBuilder creates test resorts with a builder pattern
type ResortBuilder struct {
	resort domain.Resort
}

// NewResortBuilder creates a new ResortBuilder with valid default values.
// The id is left empty so the catalog derives it from the name.
func NewResortBuilder() *ResortBuilder {
	return &ResortBuilder{
		resort: domain.Resort{
			Name:        "Test Resort",
			Country:     "Nowhere",
			Description: "A resort used in tests.",
			ImageCredit: "Test",
			Price:       1,
			Size:        1,
			SnowDepth:   100,
			Elevation:   1000,
			Runs:        10,
			Facilities:  []string{},
		},
	}
}

func (b *ResortBuilder) WithID(id string) *ResortBuilder {
	b.resort.ID = id
	return b
}

func (b *ResortBuilder) WithName(name string) *ResortBuilder {
	b.resort.Name = name
	return b
}

func (b *ResortBuilder) WithCountry(country string) *ResortBuilder {
	b.resort.Country = country
	return b
}

func (b *ResortBuilder) WithPrice(price int) *ResortBuilder {
	b.resort.Price = price
	return b
}

func (b *ResortBuilder) WithSize(size int) *ResortBuilder {
	b.resort.Size = size
	return b
}

func (b *ResortBuilder) WithFacilities(facilities ...string) *ResortBuilder {
	b.resort.Facilities = facilities
	return b
}

// Build returns a copy of the configured resort
func (b *ResortBuilder) Build() domain.Resort {
	r := b.resort
	r.Facilities = append([]string{}, b.resort.Facilities...)
	return r
}

// NewTestCatalog builds a catalog provider from resorts, failing the test if
// they do not validate.
func NewTestCatalog(t *testing.T, resorts ...domain.Resort) *catalog.Provider {
	t.Helper()

	provider, err := catalog.New(resorts)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return provider
}
