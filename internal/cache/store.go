// Path: internal/cache/store.go
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"hf-datasets/internal/domain"
)

// Key namespaces. Each namespace carries its own TTL class: list batches
// go stale after an hour, single-record detail entries after a day.
const (
	NamespaceList   = "list"
	NamespaceDetail = "detail"
)

// ListKey builds the cache key for a raw list fetch of the given size.
// The key deliberately encodes only the fetch-affecting parameter: window,
// sort and limit are applied fresh on every call against the cached batch.
func ListKey(count int) string {
	return fmt.Sprintf("%s:%d", NamespaceList, count)
}

// DetailKey builds the cache key for a single dataset id.
func DetailKey(id string) string {
	return NamespaceDetail + ":" + id
}

// Entry is one cached fetch result.
type Entry struct {
	FetchedAt time.Time
	Records   []domain.DatasetRecord
}

// Store is an in-process TTL cache for normalized dataset records. State
// lives for the process only; there is no persistence and no eviction
// beyond overwriting. Stale entries are ignored by Get rather than
// deleted eagerly, which is what lets the serve-stale-on-error path
// recover them through GetStale.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttls    map[string]time.Duration
	now     func() time.Time
}

// NewStore creates a store with one TTL per key namespace.
func NewStore(listTTL, detailTTL time.Duration) *Store {
	if listTTL <= 0 {
		listTTL = time.Hour
	}
	if detailTTL <= 0 {
		detailTTL = 24 * time.Hour
	}
	return &Store{
		entries: make(map[string]Entry),
		ttls: map[string]time.Duration{
			NamespaceList:   listTTL,
			NamespaceDetail: detailTTL,
		},
		now: time.Now,
	}
}

// WithClock overrides the store's time source. Tests use it to step
// across TTL boundaries.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Get returns the entry for key if one exists and is still within its
// namespace TTL.
func (s *Store) Get(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	if s.now().Sub(entry.FetchedAt) > s.ttl(key) {
		return Entry{}, false
	}
	return entry, true
}

// GetStale returns the entry for key regardless of its age. Only the
// serve-stale-on-error path should use it.
func (s *Store) GetStale(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	return entry, ok
}

// Put inserts or replaces the entry for key, stamping it with the current
// time.
func (s *Store) Put(key string, records []domain.DatasetRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = Entry{
		FetchedAt: s.now(),
		Records:   records,
	}
}

// Invalidate removes the entry for key, if any.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// InvalidateAll drops every entry in every namespace.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry)
}

// ttl resolves the TTL class for a key from its namespace prefix.
func (s *Store) ttl(key string) time.Duration {
	namespace, _, _ := strings.Cut(key, ":")
	if d, ok := s.ttls[namespace]; ok {
		return d
	}
	return s.ttls[NamespaceList]
}
