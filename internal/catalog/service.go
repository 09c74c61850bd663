package catalog

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"gemshub/internal/domain"
	"gemshub/internal/eventbus"
)

// Fetcher loads a complete catalog snapshot
type Fetcher interface {
	FetchCatalog(ctx context.Context) ([]domain.GemRecord, error)
}

// Source is what search needs from the catalog
type Source interface {
	Ensure(ctx context.Context) []domain.GemRecord
}

const flightKey = "catalog"

// Service memoizes the catalog for the lifetime of the process.
// Concurrent callers share one in-flight fetch. The cache is either
// absent or a complete snapshot; failures leave it absent.
type Service struct {
	fetcher Fetcher
	bus     eventbus.EventBus

	mu       sync.RWMutex
	snapshot []domain.GemRecord
	loaded   bool

	group singleflight.Group
}

// NewService creates a memoizing catalog service. bus may be nil.
func NewService(fetcher Fetcher, bus eventbus.EventBus) *Service {
	return &Service{fetcher: fetcher, bus: bus}
}

// Ensure returns the cached snapshot, fetching it once if needed.
// Errors are logged and reported as an empty catalog.
func (s *Service) Ensure(ctx context.Context) []domain.GemRecord {
	if records, ok := s.Cached(); ok {
		return records
	}
	if s.fetcher == nil {
		return nil
	}

	// The shared fetch must not die with the first caller's context
	ch := s.group.DoChan(flightKey, func() (interface{}, error) {
		if records, ok := s.Cached(); ok {
			return records, nil
		}
		records, err := s.fetcher.FetchCatalog(context.WithoutCancel(ctx))
		if err != nil {
			log.Printf("Catalog fetch failed: %v", err)
			s.publish(eventbus.CatalogFailedEvent{Err: err})
			return nil, err
		}
		s.store(records)
		log.Printf("Catalog loaded: %d records", len(records))
		s.publish(eventbus.CatalogLoadedEvent{Count: len(records)})
		return records, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil
		}
		return res.Val.([]domain.GemRecord)
	case <-ctx.Done():
		return nil
	}
}

// Cached returns the snapshot without fetching
func (s *Service) Cached() ([]domain.GemRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.loaded
}

// Reset drops the snapshot so the next Ensure fetches again
func (s *Service) Reset() {
	s.mu.Lock()
	s.snapshot = nil
	s.loaded = false
	s.mu.Unlock()
	s.group.Forget(flightKey)
}

// store keeps the first complete snapshot; a later identical one is harmless
func (s *Service) store(records []domain.GemRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	if records == nil {
		records = []domain.GemRecord{}
	}
	s.snapshot = records
	s.loaded = true
}

func (s *Service) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
