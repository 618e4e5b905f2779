package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrNotFound is returned when no listing exists for the given slug.
var ErrNotFound = errors.New("listing not found")

// ErrReadOnly is returned for mutations when no CMS is configured.
var ErrReadOnly = errors.New("cms not configured, content is read-only")

// Source fetches listing collections from the content store.
type Source interface {
	Properties(ctx context.Context) ([]Property, error)
	Communities(ctx context.Context) ([]Community, error)
}

// Mutator applies document mutations to the content store.
type Mutator interface {
	Create(ctx context.Context, doc any) error
	Replace(ctx context.Context, doc any) error
	Delete(ctx context.Context, id string) error
}

// Service provides listing reads for the public pages and write
// passthroughs for the back office. Reads fall back to the bundled sample
// datasets when the CMS is unconfigured (nil source) or a fetch fails; the
// public pages must always render something.
type Service struct {
	source  Source
	mutator Mutator
	logger  *zap.Logger
}

// NewService creates a listing Service. source and mutator may be nil when
// no CMS is configured.
func NewService(source Source, mutator Mutator, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		source:  source,
		mutator: mutator,
		logger:  logger,
	}
}

// Properties returns all properties, newest first, with fallback.
func (s *Service) Properties(ctx context.Context) []Property {
	if s.source == nil {
		return SampleProperties()
	}
	props, err := s.source.Properties(ctx)
	if err != nil {
		s.logger.Warn("property fetch failed, serving fallback data", zap.Error(err))
		return SampleProperties()
	}
	return props
}

// Communities returns all communities with fallback.
func (s *Service) Communities(ctx context.Context) []Community {
	if s.source == nil {
		return SampleCommunities()
	}
	comms, err := s.source.Communities(ctx)
	if err != nil {
		s.logger.Warn("community fetch failed, serving fallback data", zap.Error(err))
		return SampleCommunities()
	}
	return comms
}

// PropertyBySlug finds one property for its detail page.
func (s *Service) PropertyBySlug(ctx context.Context, slug string) (Property, error) {
	needle := strings.ToLower(slug)
	for _, p := range s.Properties(ctx) {
		if strings.ToLower(p.Slug) == needle {
			return p, nil
		}
	}
	return Property{}, fmt.Errorf("%w: property %s", ErrNotFound, slug)
}

// CommunityBySlug finds one community for its detail page.
func (s *Service) CommunityBySlug(ctx context.Context, slug string) (Community, error) {
	needle := strings.ToLower(slug)
	for _, c := range s.Communities(ctx) {
		if strings.ToLower(c.Slug) == needle {
			return c, nil
		}
	}
	return Community{}, fmt.Errorf("%w: community %s", ErrNotFound, slug)
}

// CreateProperty writes a new property document to the CMS.
func (s *Service) CreateProperty(ctx context.Context, p Property) error {
	if s.mutator == nil {
		return ErrReadOnly
	}
	if err := s.mutator.Create(ctx, propertyToDoc(p)); err != nil {
		s.logger.Error("failed to create property", zap.String("property_id", p.ID), zap.Error(err))
		return err
	}
	s.logger.Info("property created", zap.String("property_id", p.ID), zap.String("title", p.Title))
	return nil
}

// ReplaceProperty overwrites a property document wholesale.
func (s *Service) ReplaceProperty(ctx context.Context, p Property) error {
	if s.mutator == nil {
		return ErrReadOnly
	}
	if err := s.mutator.Replace(ctx, propertyToDoc(p)); err != nil {
		s.logger.Error("failed to replace property", zap.String("property_id", p.ID), zap.Error(err))
		return err
	}
	return nil
}

// DeleteProperty removes a property document.
func (s *Service) DeleteProperty(ctx context.Context, id string) error {
	if s.mutator == nil {
		return ErrReadOnly
	}
	if err := s.mutator.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete property", zap.String("property_id", id), zap.Error(err))
		return err
	}
	return nil
}

// CreateCommunity writes a new community document to the CMS.
func (s *Service) CreateCommunity(ctx context.Context, c Community) error {
	if s.mutator == nil {
		return ErrReadOnly
	}
	if err := s.mutator.Create(ctx, communityToDoc(c)); err != nil {
		s.logger.Error("failed to create community", zap.String("community_id", c.ID), zap.Error(err))
		return err
	}
	s.logger.Info("community created", zap.String("community_id", c.ID), zap.String("name", c.Name))
	return nil
}

// ReplaceCommunity overwrites a community document wholesale.
func (s *Service) ReplaceCommunity(ctx context.Context, c Community) error {
	if s.mutator == nil {
		return ErrReadOnly
	}
	if err := s.mutator.Replace(ctx, communityToDoc(c)); err != nil {
		s.logger.Error("failed to replace community", zap.String("community_id", c.ID), zap.Error(err))
		return err
	}
	return nil
}

// DeleteCommunity removes a community document.
func (s *Service) DeleteCommunity(ctx context.Context, id string) error {
	if s.mutator == nil {
		return ErrReadOnly
	}
	if err := s.mutator.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete community", zap.String("community_id", id), zap.Error(err))
		return err
	}
	return nil
}
