package domain

import "strings"

type Resort struct {
	ID          string   `json:"id" validate:"required"`              // e.g., "aspen"
	Name        string   `json:"name" validate:"required"`            // Display name
	Country     string   `json:"country" validate:"required"`         // Also the flag image name
	Description string   `json:"description"`
	ImageCredit string   `json:"imageCredit"`
	Price       int      `json:"price" validate:"min=1,max=3"`        // 1 = cheap, 3 = expensive
	Size        int      `json:"size" validate:"min=1,max=3"`         // 1 = small, 3 = large
	SnowDepth   int      `json:"snowDepth" validate:"gte=0"`          // cm
	Elevation   int      `json:"elevation" validate:"gte=0"`          // m
	Runs        int      `json:"runs" validate:"gte=0"`
	Facilities  []string `json:"facilities" validate:"dive,required"` // ["Accommodation", "Family"]
}

type ResortSize int

const (
	SizeSmall   ResortSize = 1
	SizeAverage ResortSize = 2
	SizeLarge   ResortSize = 3
)

// SizeLabel maps the size ordinal to its display text. Anything that is not
// small or average is shown as large.
func (r *Resort) SizeLabel() string {
	switch ResortSize(r.Size) {
	case SizeSmall:
		return "Small"
	case SizeAverage:
		return "Average"
	default:
		return "Large"
	}
}

// PriceLabel renders the price ordinal as a run of dollar signs.
func (r *Resort) PriceLabel() string {
	if r.Price <= 0 {
		return ""
	}
	return strings.Repeat("$", r.Price)
}

// FacilityTypes resolves the resort's facility names to their descriptions.
func (r *Resort) FacilityTypes() []Facility {
	facilities := make([]Facility, len(r.Facilities))
	for i, name := range r.Facilities {
		facilities[i] = LookupFacility(name)
	}
	return facilities
}
