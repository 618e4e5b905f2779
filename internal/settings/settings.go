// Package settings serves the site's singleton settings document.
package settings

import (
	"context"
	"errors"

	"github.com/ark-dvd/realtor-os-sub000/internal/cms"
	"go.uber.org/zap"
)

// ErrReadOnly is returned for updates when no CMS is configured.
var ErrReadOnly = errors.New("cms not configured, content is read-only")

// SiteSettings is the singleton document driving the site chrome.
type SiteSettings struct {
	AgentName       string `json:"agent_name"`
	AgentPhone      string `json:"agent_phone"`
	AgentEmail      string `json:"agent_email"`
	BrokerageName   string `json:"brokerage_name"`
	HeroHeadline    string `json:"hero_headline"`
	HeroSubheadline string `json:"hero_subheadline"`
}

// Defaults are served when the CMS is unconfigured or the fetch fails.
var defaults = SiteSettings{
	AgentName:       "Dana Voss",
	AgentPhone:      "(512) 555-0147",
	AgentEmail:      "dana@vossrealty.example.com",
	BrokerageName:   "Voss Realty Group",
	HeroHeadline:    "Find your place in Central Texas",
	HeroSubheadline: "Homes and communities across Austin and the hill country.",
}

const settingsQuery = `*[_type == "siteSettings"][0]{
  agentName, agentPhone, agentEmail, brokerageName,
  heroHeadline, heroSubheadline
}`

const settingsDocID = "siteSettings"

type settingsDoc struct {
	AgentName       string `json:"agentName"`
	AgentPhone      string `json:"agentPhone"`
	AgentEmail      string `json:"agentEmail"`
	BrokerageName   string `json:"brokerageName"`
	HeroHeadline    string `json:"heroHeadline"`
	HeroSubheadline string `json:"heroSubheadline"`
}

// Service fetches and updates site settings.
type Service struct {
	client *cms.Client
	logger *zap.Logger
}

// NewService creates a settings Service. client may be nil when no CMS is
// configured; Get then always serves the defaults.
func NewService(client *cms.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{client: client, logger: logger}
}

// Get returns the site settings, falling back to the bundled defaults.
func (s *Service) Get(ctx context.Context) SiteSettings {
	if s.client == nil {
		return defaults
	}
	var doc settingsDoc
	if err := s.client.Query(ctx, settingsQuery, &doc); err != nil {
		s.logger.Warn("settings fetch failed, serving defaults", zap.Error(err))
		return defaults
	}
	if doc == (settingsDoc{}) {
		return defaults
	}
	return SiteSettings{
		AgentName:       doc.AgentName,
		AgentPhone:      doc.AgentPhone,
		AgentEmail:      doc.AgentEmail,
		BrokerageName:   doc.BrokerageName,
		HeroHeadline:    doc.HeroHeadline,
		HeroSubheadline: doc.HeroSubheadline,
	}
}

// Update replaces the settings document wholesale.
func (s *Service) Update(ctx context.Context, in SiteSettings) error {
	if s.client == nil {
		return ErrReadOnly
	}
	doc := map[string]any{
		"_id":             settingsDocID,
		"_type":           "siteSettings",
		"agentName":       in.AgentName,
		"agentPhone":      in.AgentPhone,
		"agentEmail":      in.AgentEmail,
		"brokerageName":   in.BrokerageName,
		"heroHeadline":    in.HeroHeadline,
		"heroSubheadline": in.HeroSubheadline,
	}
	if err := s.client.Replace(ctx, doc); err != nil {
		s.logger.Error("failed to update settings", zap.Error(err))
		return err
	}
	return nil
}
