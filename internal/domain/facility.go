package domain

type Facility struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

const (
	FacilityAccommodation = "Accommodation"
	FacilityBeginners     = "Beginners"
	FacilityCrossCountry  = "Cross-country"
	FacilityEcoFriendly   = "Eco-friendly"
	FacilityFamily        = "Family"
)

var knownFacilities = []Facility{
	{Name: FacilityAccommodation, Icon: "house", Description: "This resort has popular on-site accommodation."},
	{Name: FacilityBeginners, Icon: "1.circle", Description: "This resort has lots of ski schools."},
	{Name: FacilityCrossCountry, Icon: "map", Description: "This resort has many cross-country ski routes."},
	{Name: FacilityEcoFriendly, Icon: "leaf.arrow.circlepath", Description: "This resort has won an award for environmental friendliness."},
	{Name: FacilityFamily, Icon: "person.3", Description: "This resort is popular with families."},
}

// AllFacilities returns a copy of the known facilities in display order.
func AllFacilities() []Facility {
	out := make([]Facility, len(knownFacilities))
	copy(out, knownFacilities)
	return out
}

// LookupFacility returns the facility with the given name. Unknown names come
// back with only the name set.
func LookupFacility(name string) Facility {
	for _, f := range knownFacilities {
		if f.Name == name {
			return f
		}
	}
	return Facility{Name: name}
}
