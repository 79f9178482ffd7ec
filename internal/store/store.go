// Package store holds the current unified carpark set in memory. There
// is no persistence: the set is rebuilt from source data on every load
// and swapped in wholesale.
package store

import (
	"sync"

	"carpark-status-backend/internal/model"
)

// Store is the read/replace surface over the current carpark snapshot.
type Store interface {
	// Replace installs a freshly reconciled set and its load status.
	Replace(carparks []model.Carpark, status LoadStatus)
	// Carparks returns the current set. Callers own the returned slice.
	Carparks() []model.Carpark
	// Get looks up one carpark by identifier (case-insensitive).
	Get(id string) (model.Carpark, bool)
	// Status reports the most recent load.
	Status() LoadStatus
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() Store {
	return &memStore{}
}

type memStore struct {
	mu       sync.RWMutex
	carparks []model.Carpark
	byID     map[string]int
	status   LoadStatus
}

func (s *memStore) Replace(carparks []model.Carpark, status LoadStatus) {
	byID := make(map[string]int, len(carparks))
	for i, cp := range carparks {
		byID[model.NormalizeID(cp.ID)] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carparks = carparks
	s.byID = byID
	s.status = status
}

func (s *memStore) Carparks() []model.Carpark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Carpark, len(s.carparks))
	copy(out, s.carparks)
	return out
}

func (s *memStore) Get(id string) (model.Carpark, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[model.NormalizeID(id)]
	if !ok {
		return model.Carpark{}, false
	}
	return s.carparks[i], true
}

func (s *memStore) Status() LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
