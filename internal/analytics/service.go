package analytics

import (
	"context"
	"time"

	"github.com/HariharanVicky/user-management-service/internal/user/domain"
)

type Service struct {
	repo  domain.UserRepository
	cache *Cache
	ttl   time.Duration
}

// NewService builds the aggregator. cache may be nil, in which case every
// call recomputes the snapshot from the store.
func NewService(repo domain.UserRepository, cache *Cache, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	if s.cache != nil {
		if d, ok := s.cache.Get(ctx); ok {
			return d, nil
		}
	}

	d, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, d, s.ttl)
	}

	return d, nil
}

// Refresh recomputes the snapshot and replaces the cached copy. Wired to
// the periodic scheduler; a no-op without a cache.
func (s *Service) Refresh(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	d, err := s.compute(ctx)
	if err != nil {
		return err
	}

	s.cache.Set(ctx, d, s.ttl)

	return nil
}

func (s *Service) ExportData(ctx context.Context, format string) (*Export, error) {
	d, err := s.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	return &Export{
		Format:     format,
		Data:       d,
		ExportedAt: time.Now(),
	}, nil
}

func (s *Service) compute(ctx context.Context) (*Dashboard, error) {
	start := time.Now()
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	queryMs := time.Since(start).Milliseconds()

	return buildDashboard(users, time.Now(), queryMs), nil
}
