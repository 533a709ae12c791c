// Path: internal/service/service.go
package service

import (
	"context"
	"errors"
	"time"

	"hf-datasets/internal/cache"
	"hf-datasets/internal/config"
	"hf-datasets/internal/domain"
	"hf-datasets/internal/events"
	"hf-datasets/internal/hub"
	"hf-datasets/internal/rank"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	defaultLimit            = 50
	defaultOversampleFactor = 3
	minOversampleFactor     = 2
	defaultFetchFloor       = 500
)

// Query holds the parameters of one popularity lookup.
type Query struct {
	Window       domain.Window
	Limit        int
	SortKey      domain.SortKey
	ForceRefresh bool
}

// Manager orchestrates fetch, normalization, caching and ranking. It owns
// the cache store and the upstream fetch client; the delivery layer calls
// nothing else.
type Manager struct {
	cfg     config.QueryConfig
	fetcher Fetcher
	store   *cache.Store
	broker  *events.Broker
	group   singleflight.Group
	log     zerolog.Logger
	now     func() time.Time
}

// NewManager creates the central query service.
func NewManager(
	cfg config.QueryConfig,
	fetcher Fetcher,
	store *cache.Store,
	broker *events.Broker,
	log zerolog.Logger,
) *Manager {
	return &Manager{
		cfg:     cfg,
		fetcher: fetcher,
		store:   store,
		broker:  broker,
		log:     log,
		now:     time.Now,
	}
}

// WithClock overrides the manager's time source. Tests use it together
// with the store's clock.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// GetPopularDatasets returns at most q.Limit records inside q.Window,
// ordered descending by q.SortKey.
//
// The cache is keyed by the raw fetch size only; filtering and sorting run
// fresh on every call, so a cached batch serves any window/sort
// combination without going stale mid-window. A fetch failure on a cold
// cache surfaces as *domain.FetchError; with an expired entry present the
// stale batch is served instead (availability over freshness).
func (m *Manager) GetPopularDatasets(ctx context.Context, q Query) ([]domain.DatasetRecord, error) {
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Window == "" {
		q.Window = domain.WindowAllTime
	}
	if q.SortKey == "" {
		q.SortKey = domain.SortDownloads
	}

	count := m.fetchCount(q.Limit)
	key := cache.ListKey(count)

	// A forced refresh skips the consult rather than invalidating, so the
	// previous batch is still there to serve if the new fetch fails.
	var batch []domain.DatasetRecord
	hit := false
	if !q.ForceRefresh {
		if entry, ok := m.store.Get(key); ok {
			batch, hit = entry.Records, true
		}
	}
	if !hit {
		fresh, err := m.refreshList(ctx, key, count)
		if err != nil {
			stale, ok := m.store.GetStale(key)
			if !ok {
				return nil, err
			}
			m.log.Warn().Err(err).Str("key", key).
				Time("fetchedAt", stale.FetchedAt).
				Msg("hub fetch failed, serving stale batch")
			batch = stale.Records
		} else {
			batch = fresh
		}
	}

	ranked := rank.Apply(batch, q.Window, q.SortKey, m.now())
	if len(ranked) > q.Limit {
		ranked = ranked[:q.Limit]
	}
	return ranked, nil
}

// GetDatasetDetail returns one record by id, consulting the detail cache
// namespace independently of list queries. Unknown ids yield
// domain.ErrNotFound.
func (m *Manager) GetDatasetDetail(ctx context.Context, id string) (*domain.DatasetRecord, error) {
	key := cache.DetailKey(id)

	if entry, ok := m.store.Get(key); ok && len(entry.Records) == 1 {
		rec := entry.Records[0]
		return &rec, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		raw, err := m.fetcher.GetDataset(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, &domain.FetchError{Op: "detail", Err: err}
		}

		rec, err := hub.Normalize(raw, m.now())
		if err != nil {
			// For a single-record lookup a malformed entry is a batch-level
			// failure, not a skip.
			return nil, &domain.FetchError{Op: "detail", Err: err}
		}

		m.store.Put(key, []domain.DatasetRecord{rec})
		return rec, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if stale, ok := m.store.GetStale(key); ok && len(stale.Records) == 1 {
			m.log.Warn().Err(err).Str("id", id).Msg("hub detail fetch failed, serving stale record")
			rec := stale.Records[0]
			return &rec, nil
		}
		return nil, err
	}

	rec := v.(domain.DatasetRecord)
	return &rec, nil
}

// InvalidateAll drops every cached batch and detail record. The next query
// of any kind goes back to the hub.
func (m *Manager) InvalidateAll() {
	m.store.InvalidateAll()
}

// refreshList fetches, normalizes and caches one raw batch. Concurrent
// misses for the same key collapse into a single upstream request.
func (m *Manager) refreshList(ctx context.Context, key string, count int) ([]domain.DatasetRecord, error) {
	v, err, _ := m.group.Do(key, func() (any, error) {
		raws, err := m.fetcher.ListDatasets(ctx, count)
		if err != nil {
			return nil, &domain.FetchError{Op: "list", Err: err}
		}

		fetchedAt := m.now()
		records := make([]domain.DatasetRecord, 0, len(raws))
		skipped := 0
		for _, raw := range raws {
			rec, err := hub.Normalize(raw, fetchedAt)
			if err != nil {
				skipped++
				m.log.Debug().Err(err).Msg("skipping dataset entry")
				continue
			}
			records = append(records, rec)
		}

		m.store.Put(key, records)
		m.log.Info().Str("key", key).
			Int("fetched", len(records)).
			Int("skipped", skipped).
			Msg("refreshed dataset batch")

		if m.broker != nil {
			m.broker.Publish(events.TopicRefreshed, events.RefreshInfo{
				Key:     key,
				Fetched: len(records),
				Skipped: skipped,
			})
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.DatasetRecord), nil
}

// fetchCount sizes the raw fetch: oversampled beyond the limit so the
// window filter has records to discard, and never below the floor so
// nearby limits share one cache entry.
func (m *Manager) fetchCount(limit int) int {
	factor := m.cfg.OversampleFactor
	if factor == 0 {
		factor = defaultOversampleFactor
	}
	if factor < minOversampleFactor {
		factor = minOversampleFactor
	}
	floor := m.cfg.FetchFloor
	if floor <= 0 {
		floor = defaultFetchFloor
	}
	if n := limit * factor; n > floor {
		return n
	}
	return floor
}
