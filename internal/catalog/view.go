package catalog

import (
	"slices"
	"strings"
	"unicode"

	"github.com/dom/snowseeker/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type SortOrder string

const (
	SortDefault SortOrder = "default"
	SortName    SortOrder = "name"
	SortCountry SortOrder = "country"
)

// ParseSortOrder accepts the query-string spelling of a sort order. An empty
// string means catalog order.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortDefault:
		return SortDefault, nil
	case SortName:
		return SortName, nil
	case SortCountry:
		return SortCountry, nil
	default:
		return "", domain.ErrInvalidSortOrder
	}
}

// Filter keeps resorts whose name contains query, ignoring case and accents.
// Only the empty query keeps everything; whitespace is matched literally.
func Filter(resorts []domain.Resort, query string) []domain.Resort {
	if query == "" {
		return slices.Clone(resorts)
	}

	needle := foldKey(query)
	out := make([]domain.Resort, 0, len(resorts))
	for _, r := range resorts {
		if strings.Contains(foldKey(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Sort returns a sorted copy. The sort is stable so equal keys keep catalog order.
func Sort(resorts []domain.Resort, order SortOrder) []domain.Resort {
	out := slices.Clone(resorts)

	switch order {
	case SortName:
		slices.SortStableFunc(out, func(a, b domain.Resort) int {
			return strings.Compare(a.Name, b.Name)
		})
	case SortCountry:
		slices.SortStableFunc(out, func(a, b domain.Resort) int {
			return strings.Compare(a.Country, b.Country)
		})
	}

	return out
}

func Derive(resorts []domain.Resort, query string, order SortOrder) []domain.Resort {
	return Sort(Filter(resorts, query), order)
}

// foldKey strips combining marks after canonical decomposition and folds case,
// so "Alpé" and "ALPE" compare equal.
func foldKey(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
