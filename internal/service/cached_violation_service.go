package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/authz"
	"github.com/Icer178/traffic-val/internal/domain"
)

// CachedViolationService decorates ViolationUseCases with a redis read cache
// for single-record gets. The policy core stays cache-free: a cache hit still
// goes through the visibility check, and every mutation invalidates the
// entry. Cache failures degrade to the inner service.
type CachedViolationService struct {
	inner  ViolationUseCases
	cache  ViolationCache
	logger *slog.Logger
}

func NewCachedViolationService(inner ViolationUseCases, cache ViolationCache, logger *slog.Logger) *CachedViolationService {
	return &CachedViolationService{inner: inner, cache: cache, logger: logger}
}

func (s *CachedViolationService) List(ctx context.Context, actor domain.Actor, filters domain.ViolationFilters) ([]*domain.Violation, error) {
	return s.inner.List(ctx, actor, filters)
}

func (s *CachedViolationService) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Violation, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warn("cache get failed", slog.String("id", id.String()), slog.Any("error", err))
	}
	if cached != nil {
		if err := authz.CanGet(actor, cached); err != nil {
			return nil, err
		}
		return cached, nil
	}

	v, err := s.inner.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, v); err != nil {
		s.logger.Warn("cache set failed", slog.String("id", id.String()), slog.Any("error", err))
	}
	return v, nil
}

func (s *CachedViolationService) Create(ctx context.Context, actor domain.Actor, req domain.CreateViolationRequest) (*domain.Violation, error) {
	v, err := s.inner.Create(ctx, actor, req)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, v); err != nil {
		s.logger.Warn("cache set failed", slog.String("id", v.ID.String()), slog.Any("error", err))
	}
	return v, nil
}

func (s *CachedViolationService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch domain.UpdateViolationRequest) (*domain.Violation, error) {
	v, err := s.inner.Update(ctx, actor, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return v, nil
}

func (s *CachedViolationService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := s.inner.Delete(ctx, actor, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *CachedViolationService) AttachEvidence(ctx context.Context, actor domain.Actor, id uuid.UUID, files []EvidenceFile) (*domain.Violation, error) {
	v, err := s.inner.AttachEvidence(ctx, actor, id, files)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return v, nil
}

func (s *CachedViolationService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("cache invalidate failed", slog.String("id", id.String()), slog.Any("error", err))
	}
}
