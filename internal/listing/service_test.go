package listing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ark-dvd/realtor-os-sub000/internal/cms"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type stubSource struct {
	properties  []Property
	communities []Community
	err         error
}

func (s *stubSource) Properties(ctx context.Context) ([]Property, error) {
	return s.properties, s.err
}

func (s *stubSource) Communities(ctx context.Context) ([]Community, error) {
	return s.communities, s.err
}

func TestProperties_NilSourceFallsBack(t *testing.T) {
	svc := NewService(nil, nil, zaptest.NewLogger(t))
	assert.Equal(t, SampleProperties(), svc.Properties(context.Background()))
	assert.Equal(t, SampleCommunities(), svc.Communities(context.Background()))
}

// TestProperties_FetchErrorFallsBack: public pages always render something,
// so a failed fetch serves the bundled dataset.
func TestProperties_FetchErrorFallsBack(t *testing.T) {
	src := &stubSource{err: errors.New("cms down")}
	svc := NewService(src, nil, zaptest.NewLogger(t))
	assert.Equal(t, SampleProperties(), svc.Properties(context.Background()))
	assert.Equal(t, SampleCommunities(), svc.Communities(context.Background()))
}

func TestPropertyBySlug(t *testing.T) {
	src := &stubSource{properties: []Property{
		{ID: "1", Slug: "oak-bend-farmhouse"},
		{ID: "2", Slug: "wolf-ranch-cottage"},
	}}
	svc := NewService(src, nil, zaptest.NewLogger(t))

	p, err := svc.PropertyBySlug(context.Background(), "Wolf-Ranch-Cottage")
	assert.NoError(t, err)
	assert.Equal(t, "2", p.ID)

	_, err = svc.PropertyBySlug(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCommunityBySlug(t *testing.T) {
	src := &stubSource{communities: []Community{{ID: "c1", Slug: "easton-park"}}}
	svc := NewService(src, nil, zaptest.NewLogger(t))

	comm, err := svc.CommunityBySlug(context.Background(), "easton-park")
	assert.NoError(t, err)
	assert.Equal(t, "c1", comm.ID)

	_, err = svc.CommunityBySlug(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMutations_ReadOnlyWithoutCMS(t *testing.T) {
	svc := NewService(nil, nil, zaptest.NewLogger(t))
	ctx := context.Background()
	assert.True(t, errors.Is(svc.CreateProperty(ctx, Property{ID: "x"}), ErrReadOnly))
	assert.True(t, errors.Is(svc.ReplaceProperty(ctx, Property{ID: "x"}), ErrReadOnly))
	assert.True(t, errors.Is(svc.DeleteProperty(ctx, "x"), ErrReadOnly))
	assert.True(t, errors.Is(svc.CreateCommunity(ctx, Community{ID: "x"}), ErrReadOnly))
	assert.True(t, errors.Is(svc.DeleteCommunity(ctx, "x"), ErrReadOnly))
}

// TestCMSSource_DecodesListingDocuments drives the real source against a
// mock CMS server, exercising both collection queries.
func TestCMSSource_DecodesListingDocuments(t *testing.T) {
	mockCMS := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		query := r.URL.Query().Get("query")
		switch {
		case query == "":
			w.WriteHeader(http.StatusBadRequest)
		case strings.Contains(query, `_type == "property"`):
			w.Write([]byte(`{"result": [
				{"_id": "p1", "title": "Modern Farmhouse", "slug": "modern-farmhouse",
				 "status": "active", "price": 612000, "beds": 4, "baths": 3,
				 "squareFeet": 2850, "city": "Leander", "neighborhood": "Oak Bend",
				 "_createdAt": "2026-08-03T00:00:00Z"}
			]}`))
		default:
			w.Write([]byte(`{"result": [
				{"_id": "c1", "name": "Wolf Ranch", "slug": "wolf-ranch", "city": "Georgetown",
				 "priceRange": "$400K - $900K", "schoolDistrict": "Georgetown ISD",
				 "commuteDowntown": "35-45 mins", "homesCount": 1400,
				 "amenities": ["Pool", "Trails"]}
			]}`))
		}
	}))
	defer mockCMS.Close()

	client := cms.New(cms.Config{ProjectID: "test", BaseURL: mockCMS.URL})
	src := NewCMSSource(client)

	props, err := src.Properties(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, props, 1) {
		assert.Equal(t, "p1", props[0].ID)
		assert.Equal(t, "modern-farmhouse", props[0].Slug)
		assert.Equal(t, 612000.0, props[0].Price)
		assert.Equal(t, 2026, props[0].CreatedAt.Year())
	}

	comms, err := src.Communities(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, comms, 1) {
		assert.Equal(t, "c1", comms[0].ID)
		assert.Equal(t, "Georgetown ISD", comms[0].SchoolDistrict)
		assert.Equal(t, []string{"Pool", "Trails"}, comms[0].Amenities)
	}
}
