package settings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ark-dvd/realtor-os-sub000/internal/cms"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestGet_NilClientServesDefaults(t *testing.T) {
	svc := NewService(nil, zaptest.NewLogger(t))
	got := svc.Get(context.Background())
	assert.Equal(t, defaults, got)
	assert.NotEmpty(t, got.AgentName)
}

func TestGet_FetchErrorServesDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewService(cms.New(cms.Config{ProjectID: "test", BaseURL: server.URL}), zaptest.NewLogger(t))
	assert.Equal(t, defaults, svc.Get(context.Background()))
}

func TestGet_DecodesDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": {
			"agentName": "Riley Park",
			"agentPhone": "(512) 555-0199",
			"agentEmail": "riley@example.com",
			"brokerageName": "Park Realty",
			"heroHeadline": "Welcome home",
			"heroSubheadline": "Homes across the hill country"
		}}`))
	}))
	defer server.Close()

	svc := NewService(cms.New(cms.Config{ProjectID: "test", BaseURL: server.URL}), zaptest.NewLogger(t))
	got := svc.Get(context.Background())
	assert.Equal(t, "Riley Park", got.AgentName)
	assert.Equal(t, "Park Realty", got.BrokerageName)
}

// TestGet_EmptyDocumentServesDefaults: a missing settings document in a
// configured CMS still falls back rather than serving blanks.
func TestGet_EmptyDocumentServesDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": null}`))
	}))
	defer server.Close()

	svc := NewService(cms.New(cms.Config{ProjectID: "test", BaseURL: server.URL}), zaptest.NewLogger(t))
	assert.Equal(t, defaults, svc.Get(context.Background()))
}

func TestUpdate_ReadOnlyWithoutCMS(t *testing.T) {
	svc := NewService(nil, zaptest.NewLogger(t))
	err := svc.Update(context.Background(), SiteSettings{AgentName: "X"})
	assert.True(t, errors.Is(err, ErrReadOnly))
}
