package listing

import "time"

// Property is a flat listing record as the browsing grid consumes it.
type Property struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	Beds         int       `json:"beds"`
	Baths        float64   `json:"baths"`
	SquareFeet   int       `json:"square_feet"`
	City         string    `json:"city"`
	Neighborhood string    `json:"neighborhood"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Community is a master-planned community record for the explorer page.
// Price range and commute times are free text authored in the CMS; the
// filters parse them best-effort.
type Community struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	City            string   `json:"city"`
	Description     string   `json:"description"`
	PriceRange      string   `json:"price_range"`
	SchoolDistrict  string   `json:"school_district"`
	CommuteDowntown string   `json:"commute_downtown"`
	CommuteAirport  string   `json:"commute_airport"`
	HomesCount      int      `json:"homes_count"`
	Amenities       []string `json:"amenities"`
	ImageURL        string   `json:"image_url"`
}
