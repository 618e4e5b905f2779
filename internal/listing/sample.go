package listing

import "time"

func created(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Bundled fallback datasets, newest first, served when the CMS is
// unconfigured or a fetch fails so the public pages always render.
var sampleProperties = []Property{
	{
		ID:           "prop-sample-1",
		Title:        "Modern Farmhouse on Oak Bend",
		Slug:         "modern-farmhouse-oak-bend",
		Status:       "active",
		Price:        612000,
		Beds:         4,
		Baths:        3,
		SquareFeet:   2850,
		City:         "Leander",
		Neighborhood: "Oak Bend",
		Description:  "Light-filled four bedroom with a dedicated office and oversized backyard.",
		CreatedAt:    created(2026, time.August, 3),
	},
	{
		ID:           "prop-sample-2",
		Title:        "Hill Country Cottage",
		Slug:         "hill-country-cottage",
		Status:       "pending",
		Price:        485000,
		Beds:         3,
		Baths:        2,
		SquareFeet:   1980,
		City:         "Georgetown",
		Neighborhood: "Wolf Ranch",
		Description:  "Single-story charmer backing to a greenbelt, minutes from the square.",
		CreatedAt:    created(2026, time.July, 19),
	},
	{
		ID:           "prop-sample-3",
		Title:        "Downtown View Condo",
		Slug:         "downtown-view-condo",
		Status:       "active",
		Price:        399000,
		Beds:         2,
		Baths:        2,
		SquareFeet:   1240,
		City:         "Austin",
		Neighborhood: "Rainey Street",
		Description:  "Corner unit with skyline views, walkable to everything.",
		CreatedAt:    created(2026, time.June, 27),
	},
	{
		ID:           "prop-sample-4",
		Title:        "Cul-de-sac Classic",
		Slug:         "cul-de-sac-classic",
		Status:       "sold",
		Price:        545000,
		Beds:         4,
		Baths:        2.5,
		SquareFeet:   2400,
		City:         "Round Rock",
		Neighborhood: "Teravista",
		Description:  "Well-kept two-story on a quiet cul-de-sac in a golf course community.",
		CreatedAt:    created(2026, time.May, 8),
	},
}

var sampleCommunities = []Community{
	{
		ID:              "comm-sample-1",
		Name:            "Wolf Ranch",
		Slug:            "wolf-ranch",
		City:            "Georgetown",
		Description:     "Hill country living with resort amenities along the San Gabriel River.",
		PriceRange:      "$400K - $900K",
		SchoolDistrict:  "Georgetown ISD",
		CommuteDowntown: "35-45 mins",
		CommuteAirport:  "45-55 mins",
		HomesCount:      1400,
		Amenities:       []string{"Pool", "Trails", "Fitness Center"},
	},
	{
		ID:              "comm-sample-2",
		Name:            "Easton Park",
		Slug:            "easton-park",
		City:            "Austin",
		Description:     "Southeast Austin community built around parkland and music.",
		PriceRange:      "$350K - $700K",
		SchoolDistrict:  "Del Valle ISD",
		CommuteDowntown: "20-30 mins",
		CommuteAirport:  "10-15 mins",
		HomesCount:      2300,
		Amenities:       []string{"Pool", "Amphitheater", "Dog Park"},
	},
	{
		ID:              "comm-sample-3",
		Name:            "Travisso",
		Slug:            "travisso",
		City:            "Leander",
		Description:     "Dramatic hill country views with Tuscan-inspired amenities.",
		PriceRange:      "$500K - $1.2M",
		SchoolDistrict:  "Leander ISD",
		CommuteDowntown: "40-50 mins",
		CommuteAirport:  "50-60 mins",
		HomesCount:      1900,
		Amenities:       []string{"Pool", "Tennis", "Trails"},
	},
}

// SampleProperties returns a copy of the bundled fallback properties.
func SampleProperties() []Property {
	out := make([]Property, len(sampleProperties))
	copy(out, sampleProperties)
	return out
}

// SampleCommunities returns a copy of the bundled fallback communities.
func SampleCommunities() []Community {
	out := make([]Community, len(sampleCommunities))
	copy(out, sampleCommunities)
	return out
}
