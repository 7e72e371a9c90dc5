package store

import (
	"errors"
	"sync"
	"time"

	"github.com/Sylviettee/fjordgard/internal/weather"
)

// ErrNotFound is returned when no data is available for a given location key.
var ErrNotFound = errors.New("no weather data for location")

// MemoryStore is a concurrency-safe in-memory implementation of a snapshot
// store with retention by count and age.
type MemoryStore struct {
	mu sync.RWMutex

	// key: location key, value: snapshots ordered by insertion
	data map[string][]weather.Snapshot

	maxHistory int           // max snapshots per location, <= 0 means unlimited
	maxAge     time.Duration // max snapshot age, 0 means unlimited
}

// NewMemoryStore creates a MemoryStore with the given retention limits.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string][]weather.Snapshot),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// Save appends a snapshot for a location key and enforces retention.
func (s *MemoryStore) Save(key string, snapshot weather.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.data[key], snapshot)

	if s.maxHistory > 0 && len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}

	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for i < len(history) && history[i].Timestamp.Before(cutoff) {
			i++
		}
		if i > 0 && i < len(history) {
			history = history[i:]
		}
	}

	s.data[key] = history
}

// Latest returns the most recent snapshot for a location key.
func (s *MemoryStore) Latest(key string) (weather.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.data[key]
	if len(history) == 0 {
		return weather.Snapshot{}, ErrNotFound
	}
	return history[len(history)-1], nil
}

// Range returns all snapshots for a location key between from and to,
// inclusive.
func (s *MemoryStore) Range(key string, from, to time.Time) ([]weather.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.data[key]
	if len(history) == 0 {
		return nil, ErrNotFound
	}

	var result []weather.Snapshot
	for _, snap := range history {
		if !snap.Timestamp.Before(from) && !snap.Timestamp.After(to) {
			result = append(result, snap)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}
