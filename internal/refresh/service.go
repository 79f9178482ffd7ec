// Package refresh rebuilds the unified carpark set from source data:
// once at startup and then on a fixed interval while the live feed is
// enabled.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"carpark-status-backend/config"
	"carpark-status-backend/internal/dataset"
	"carpark-status-backend/internal/feed"
	"carpark-status-backend/internal/reconcile"
	"carpark-status-backend/internal/store"
)

// ErrLoadInFlight is returned when a load is requested while a
// previous one is still running. Loads are one-shot: the trigger is
// rejected rather than queued or retried.
var ErrLoadInFlight = errors.New("refresh: load already in flight")

// Service orchestrates dataset loading, feed fetching, and
// reconciliation, publishing each result to the store.
type Service struct {
	cfg     *config.Config
	store   store.Store
	feed    *feed.Client
	loading atomic.Bool
}

// NewService creates a refresh service.
func NewService(cfg *config.Config, s store.Store) *Service {
	return &Service{
		cfg:   cfg,
		store: s,
		feed:  feed.NewClient(&cfg.Feed),
	}
}

// Run performs the initial load and then refreshes on the configured
// interval until ctx is cancelled. With the feed disabled there is
// nothing to refresh, so a single load suffices.
func (s *Service) Run(ctx context.Context) {
	if err := s.LoadOnce(ctx); err != nil {
		log.Printf("Initial data load failed: %v", err)
	}

	if !s.cfg.Feed.Enabled {
		log.Println("Live feed is disabled. Serving static data only.")
		return
	}

	timer := time.NewTimer(s.cfg.Feed.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Refresh service shutting down.")
			return
		case <-timer.C:
			if err := s.LoadOnce(ctx); err != nil {
				log.Printf("Refresh cycle failed: %v", err)
			}
			timer.Reset(s.cfg.Feed.Interval)
		}
	}
}

// LoadOnce performs a single load: read the static dataset, fetch the
// live feed, reconcile, and swap the result into the store. A feed
// failure degrades to zero availability; a dataset failure aborts the
// load and leaves the previous snapshot in place.
func (s *Service) LoadOnce(ctx context.Context) error {
	if !s.loading.CompareAndSwap(false, true) {
		return ErrLoadInFlight
	}
	defer s.loading.Store(false)

	static, err := dataset.Load(s.cfg.Dataset.CSVPath)
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	var live []feed.Record
	degraded := false
	if s.cfg.Feed.Enabled {
		live, err = s.feed.Fetch(ctx)
		if err != nil {
			log.Printf("Failed to fetch live availability data. Using 0 for all: %v", err)
			live = nil
			degraded = true
		}
	}

	carparks := reconcile.Reconcile(static, live)

	status := store.LoadStatus{
		LoadedAt:    time.Now().UTC(),
		StaticCount: len(carparks),
		LiveRecords: len(live),
		Degraded:    degraded,
	}
	switch {
	case degraded:
		status.Message = "Live availability is currently unreachable. Showing all carparks with 0 available lots."
	case !s.cfg.Feed.Enabled:
		status.Message = fmt.Sprintf("Loaded %d carparks. Live availability is disabled.", len(carparks))
	default:
		status.Message = fmt.Sprintf("Loaded %d carparks with %d live availability records.", len(carparks), len(live))
	}

	s.store.Replace(carparks, status)
	log.Printf("Load complete: %d carparks, %d live records, degraded=%v", len(carparks), len(live), degraded)
	return nil
}
