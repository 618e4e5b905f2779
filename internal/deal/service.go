package deal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrNotFound is returned when no deal exists for the given client.
var ErrNotFound = errors.New("deal not found")

// ErrReadOnly is returned for mutations when no CMS is configured.
var ErrReadOnly = errors.New("cms not configured, content is read-only")

// Source fetches deals from the content store.
type Source interface {
	Deals(ctx context.Context) ([]Deal, error)
}

// Mutator applies document mutations to the content store.
type Mutator interface {
	Create(ctx context.Context, doc any) error
	Replace(ctx context.Context, doc any) error
	Delete(ctx context.Context, id string) error
}

// Service provides deal reads for the client dashboard and write
// passthroughs for the back office. Reads fall back to the bundled sample
// dataset when the CMS is unconfigured (nil source) or a fetch fails.
type Service struct {
	source  Source
	mutator Mutator
	logger  *zap.Logger
}

// NewService creates a deal Service. source and mutator may be nil when no
// CMS is configured.
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

// Deals returns all deals, newest first, falling back to sample data so the
// caller always has something to render.
func (s *Service) Deals(ctx context.Context) []Deal {
	if s.source == nil {
		return SampleDeals()
	}
	deals, err := s.source.Deals(ctx)
	if err != nil {
		s.logger.Warn("deal fetch failed, serving fallback data", zap.Error(err))
		return SampleDeals()
	}
	return deals
}

// Dashboard bundles a client's deal with its rendered progress tracker.
type Dashboard struct {
	Deal     Deal     `json:"deal"`
	Progress Progress `json:"progress"`
}

// DashboardForClient finds the deal for a client email (case-insensitive)
// and renders its full progress view. A stage out of range propagates as
// ErrInvalidStage: that is upstream data corruption, not something to mask.
func (s *Service) DashboardForClient(ctx context.Context, email string) (Dashboard, error) {
	d, err := s.findByEmail(ctx, email)
	if err != nil {
		return Dashboard{}, err
	}

	progress, err := RenderProgress(d.TransactionStage, d.KeyDates)
	if err != nil {
		s.logger.Error("deal has invalid transaction stage",
			zap.String("deal_id", d.ID),
			zap.Int("stage", d.TransactionStage),
			zap.Error(err),
		)
		return Dashboard{}, err
	}

	return Dashboard{Deal: d, Progress: progress}, nil
}

// CompactForClient renders the compact tracker for a client's deal.
func (s *Service) CompactForClient(ctx context.Context, email string) (CompactProgress, error) {
	d, err := s.findByEmail(ctx, email)
	if err != nil {
		return CompactProgress{}, err
	}
	compact, err := RenderCompact(d.TransactionStage)
	if err != nil {
		s.logger.Error("deal has invalid transaction stage",
			zap.String("deal_id", d.ID),
			zap.Int("stage", d.TransactionStage),
			zap.Error(err),
		)
		return CompactProgress{}, err
	}
	return compact, nil
}

func (s *Service) findByEmail(ctx context.Context, email string) (Deal, error) {
	needle := strings.ToLower(strings.TrimSpace(email))
	if needle == "" {
		return Deal{}, ErrNotFound
	}
	for _, d := range s.Deals(ctx) {
		if strings.ToLower(d.ClientEmail) == needle {
			return d, nil
		}
	}
	return Deal{}, fmt.Errorf("%w: client %s", ErrNotFound, email)
}

// Create writes a new deal document to the CMS.
func (s *Service) Create(ctx context.Context, d Deal) error {
	if s.mutator == nil {
		return ErrReadOnly
	}
	if err := s.mutator.Create(ctx, toDoc(d)); err != nil {
		s.logger.Error("failed to create deal", zap.String("deal_id", d.ID), zap.Error(err))
		return err
	}
	s.logger.Info("deal created", zap.String("deal_id", d.ID), zap.String("client", d.ClientEmail))
	return nil
}

// Replace overwrites a deal document wholesale.
func (s *Service) Replace(ctx context.Context, d Deal) error {
	if s.mutator == nil {
		return ErrReadOnly
	}
	if err := s.mutator.Replace(ctx, toDoc(d)); err != nil {
		s.logger.Error("failed to replace deal", zap.String("deal_id", d.ID), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes a deal document.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.mutator == nil {
		return ErrReadOnly
	}
	if err := s.mutator.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete deal", zap.String("deal_id", id), zap.Error(err))
		return err
	}
	return nil
}
