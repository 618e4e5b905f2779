package listing

import (
	"math"
	"sort"
	"strings"
)

// Sort orders accepted by PropertyFilter.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortBeds      = "beds"
)

// PropertyFilter holds the browsing grid's filter state. Zero values mean
// "any" for every field except PriceMax, whose unbounded sentinel is +Inf;
// use NewPropertyFilter to get that default.
type PropertyFilter struct {
	Search   string
	Status   string
	PriceMin float64
	PriceMax float64
	MinBeds  int
	MinBaths float64
	Sort     string
}

// NewPropertyFilter returns the identity filter: every record passes.
func NewPropertyFilter() PropertyFilter {
	return PropertyFilter{
		Status:   "all",
		PriceMax: math.Inf(1),
		Sort:     SortNewest,
	}
}

func matchesSearch(p Property, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{p.Title, p.City, p.Neighborhood} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesFilter(p Property, f PropertyFilter) bool {
	if !matchesSearch(p, f.Search) {
		return false
	}
	if f.Status != "" && f.Status != "all" && p.Status != f.Status {
		return false
	}
	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}
	if p.Beds < f.MinBeds {
		return false
	}
	if p.Baths < f.MinBaths {
		return false
	}
	return true
}

// FilterProperties applies the filter and sort to a listings slice without
// mutating the input. The "newest" sort keeps input order: the fetch is
// already ordered newest-first upstream, so there is no date re-sort here.
func FilterProperties(listings []Property, f PropertyFilter) []Property {
	out := make([]Property, 0, len(listings))
	for _, p := range listings {
		if matchesFilter(p, f) {
			out = append(out, p)
		}
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortBeds:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Beds > out[j].Beds })
	}

	return out
}
