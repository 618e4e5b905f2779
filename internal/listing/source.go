package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/ark-dvd/realtor-os-sub000/internal/cms"
)

const propertyQuery = `*[_type == "property"] | order(_createdAt desc){
  _id, title, "slug": slug.current, status, price, beds, baths,
  squareFeet, city, neighborhood, description,
  "imageUrl": image.asset->url, _createdAt
}`

const communityQuery = `*[_type == "community"] | order(name asc){
  _id, name, "slug": slug.current, city, description, priceRange,
  schoolDistrict, commuteDowntown, commuteAirport, homesCount,
  amenities, "imageUrl": image.asset->url
}`

type propertyDoc struct {
	ID           string  `json:"_id"`
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Status       string  `json:"status"`
	Price        float64 `json:"price"`
	Beds         int     `json:"beds"`
	Baths        float64 `json:"baths"`
	SquareFeet   int     `json:"squareFeet"`
	City         string  `json:"city"`
	Neighborhood string  `json:"neighborhood"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"imageUrl"`
	CreatedAt    string  `json:"_createdAt"`
}

type communityDoc struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	City            string   `json:"city"`
	Description     string   `json:"description"`
	PriceRange      string   `json:"priceRange"`
	SchoolDistrict  string   `json:"schoolDistrict"`
	CommuteDowntown string   `json:"commuteDowntown"`
	CommuteAirport  string   `json:"commuteAirport"`
	HomesCount      int      `json:"homesCount"`
	Amenities       []string `json:"amenities"`
	ImageURL        string   `json:"imageUrl"`
}

func (d propertyDoc) toProperty() Property {
	createdAt, _ := time.Parse(time.RFC3339, d.CreatedAt)
	return Property{
		ID:           d.ID,
		Title:        d.Title,
		Slug:         d.Slug,
		Status:       d.Status,
		Price:        d.Price,
		Beds:         d.Beds,
		Baths:        d.Baths,
		SquareFeet:   d.SquareFeet,
		City:         d.City,
		Neighborhood: d.Neighborhood,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		CreatedAt:    createdAt,
	}
}

func (d communityDoc) toCommunity() Community {
	return Community{
		ID:              d.ID,
		Name:            d.Name,
		Slug:            d.Slug,
		City:            d.City,
		Description:     d.Description,
		PriceRange:      d.PriceRange,
		SchoolDistrict:  d.SchoolDistrict,
		CommuteDowntown: d.CommuteDowntown,
		CommuteAirport:  d.CommuteAirport,
		HomesCount:      d.HomesCount,
		Amenities:       d.Amenities,
		ImageURL:        d.ImageURL,
	}
}

func propertyToDoc(p Property) map[string]any {
	return map[string]any{
		"_id":          p.ID,
		"_type":        "property",
		"title":        p.Title,
		"slug":         map[string]any{"_type": "slug", "current": p.Slug},
		"status":       p.Status,
		"price":        p.Price,
		"beds":         p.Beds,
		"baths":        p.Baths,
		"squareFeet":   p.SquareFeet,
		"city":         p.City,
		"neighborhood": p.Neighborhood,
		"description":  p.Description,
	}
}

func communityToDoc(c Community) map[string]any {
	return map[string]any{
		"_id":             c.ID,
		"_type":           "community",
		"name":            c.Name,
		"slug":            map[string]any{"_type": "slug", "current": c.Slug},
		"city":            c.City,
		"description":     c.Description,
		"priceRange":      c.PriceRange,
		"schoolDistrict":  c.SchoolDistrict,
		"commuteDowntown": c.CommuteDowntown,
		"commuteAirport":  c.CommuteAirport,
		"homesCount":      c.HomesCount,
		"amenities":       c.Amenities,
	}
}

// CMSSource fetches listings from the CMS.
type CMSSource struct {
	client *cms.Client
}

// NewCMSSource wraps a cms client as a listing Source.
func NewCMSSource(client *cms.Client) *CMSSource {
	return &CMSSource{client: client}
}

// Properties returns every property document, newest first.
func (s *CMSSource) Properties(ctx context.Context) ([]Property, error) {
	var docs []propertyDoc
	if err := s.client.Query(ctx, propertyQuery, &docs); err != nil {
		return nil, fmt.Errorf("fetch properties: %w", err)
	}
	props := make([]Property, 0, len(docs))
	for _, doc := range docs {
		props = append(props, doc.toProperty())
	}
	return props, nil
}

// Communities returns every community document, alphabetical.
func (s *CMSSource) Communities(ctx context.Context) ([]Community, error) {
	var docs []communityDoc
	if err := s.client.Query(ctx, communityQuery, &docs); err != nil {
		return nil, fmt.Errorf("fetch communities: %w", err)
	}
	comms := make([]Community, 0, len(docs))
	for _, doc := range docs {
		comms = append(comms, doc.toCommunity())
	}
	return comms, nil
}
