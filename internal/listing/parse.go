package listing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	priceTokenRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([kKmM])?`)
	leadingDigitRe = regexp.MustCompile(`\d+`)
)

// ParsePriceBound extracts a dollar figure from an authored price-range
// string like "$500K - $700K" or "From $1.2M". It takes the first numeric
// token, so a range buckets by its lower bound. That is the intended
// policy; changing it would silently alter filter results. Strings with no
// numeric token parse to 0.
func ParsePriceBound(s string) float64 {
	m := priceTokenRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	switch strings.ToLower(m[2]) {
	case "k":
		value *= 1_000
	case "m":
		value *= 1_000_000
	}
	return value
}

// ParseCommuteMinutes extracts the leading minute count from a free-text
// commute string like "20-30 mins". Strings with no leading number, such
// as "nearby", parse to +Inf: an unknown commute is excluded by every
// bounded bucket rather than slipping into the shortest one.
func ParseCommuteMinutes(s string) float64 {
	m := leadingDigitRe.FindString(s)
	if m == "" {
		return math.Inf(1)
	}
	mins, err := strconv.Atoi(m)
	if err != nil {
		return math.Inf(1)
	}
	return float64(mins)
}
