package listing

import (
	"math"
	"strings"
)

// CommunityFilter holds the community explorer's filter state. Zero values
// mean "any" except MaxCommuteMins and PriceMax, whose unbounded sentinel
// is +Inf; use NewCommunityFilter for the identity defaults.
type CommunityFilter struct {
	Search string
	// District matches against the community's school district with the
	// literal " ISD" suffix stripped, case-insensitive substring.
	District       string
	MaxCommuteMins float64
	// PriceMax compares against the lower bound parsed out of the
	// community's authored price-range string.
	PriceMax float64
}

// NewCommunityFilter returns the identity filter: every record passes.
func NewCommunityFilter() CommunityFilter {
	return CommunityFilter{
		MaxCommuteMins: math.Inf(1),
		PriceMax:       math.Inf(1),
	}
}

func normalizeDistrict(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), " ISD")))
}

func matchesCommunity(c Community, f CommunityFilter) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.City), term) {
			return false
		}
	}
	if f.District != "" {
		if !strings.Contains(normalizeDistrict(c.SchoolDistrict), normalizeDistrict(f.District)) {
			return false
		}
	}
	if ParseCommuteMinutes(c.CommuteDowntown) > f.MaxCommuteMins {
		return false
	}
	if ParsePriceBound(c.PriceRange) > f.PriceMax {
		return false
	}
	return true
}

// FilterCommunities applies the explorer filters without mutating the
// input; order is preserved.
func FilterCommunities(communities []Community, f CommunityFilter) []Community {
	out := make([]Community, 0, len(communities))
	for _, c := range communities {
		if matchesCommunity(c, f) {
			out = append(out, c)
		}
	}
	return out
}
