// Path: internal/cache/store_test.go
package cache

import (
	"testing"
	"time"

	"hf-datasets/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords(ids ...string) []domain.DatasetRecord {
	records := make([]domain.DatasetRecord, len(ids))
	for i, id := range ids {
		records[i] = domain.DatasetRecord{ID: id}
	}
	return records
}

func newTestStore() (*Store, *time.Time) {
	current := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Hour, 24*time.Hour).WithClock(func() time.Time { return current })
	return store, &current
}

func TestPutGetRoundtrip(t *testing.T) {
	store, now := newTestStore()

	store.Put(ListKey(500), testRecords("a/one", "b/two"))

	entry, ok := store.Get(ListKey(500))
	require.True(t, ok)
	assert.Equal(t, *now, entry.FetchedAt)
	assert.Len(t, entry.Records, 2)

	_, ok = store.Get(ListKey(900))
	assert.False(t, ok)
}

func TestListEntryExpiresAfterOneHour(t *testing.T) {
	store, now := newTestStore()
	store.Put(ListKey(500), testRecords("a/one"))

	*now = now.Add(59 * time.Minute)
	_, ok := store.Get(ListKey(500))
	assert.True(t, ok, "entry inside TTL must be served")

	*now = now.Add(2 * time.Minute)
	_, ok = store.Get(ListKey(500))
	assert.False(t, ok, "entry past TTL must not be served")
}

func TestDetailEntryLivesLonger(t *testing.T) {
	store, now := newTestStore()
	store.Put(DetailKey("acme/corpus"), testRecords("acme/corpus"))

	// Well past the list TTL, still inside the detail TTL.
	*now = now.Add(23 * time.Hour)
	_, ok := store.Get(DetailKey("acme/corpus"))
	assert.True(t, ok)

	*now = now.Add(2 * time.Hour)
	_, ok = store.Get(DetailKey("acme/corpus"))
	assert.False(t, ok)
}

func TestGetStaleIgnoresTTL(t *testing.T) {
	store, now := newTestStore()
	store.Put(ListKey(500), testRecords("a/one"))

	*now = now.Add(48 * time.Hour)
	_, ok := store.Get(ListKey(500))
	require.False(t, ok)

	entry, ok := store.GetStale(ListKey(500))
	require.True(t, ok)
	assert.Len(t, entry.Records, 1)
}

func TestPutReplacesStaleEntry(t *testing.T) {
	store, now := newTestStore()
	store.Put(ListKey(500), testRecords("old/batch"))

	*now = now.Add(2 * time.Hour)
	store.Put(ListKey(500), testRecords("new/batch"))

	entry, ok := store.Get(ListKey(500))
	require.True(t, ok)
	assert.Equal(t, "new/batch", entry.Records[0].ID)
	assert.Equal(t, *now, entry.FetchedAt)
}

func TestInvalidate(t *testing.T) {
	store, _ := newTestStore()
	store.Put(ListKey(500), testRecords("a/one"))
	store.Put(DetailKey("a/one"), testRecords("a/one"))

	store.Invalidate(ListKey(500))
	_, ok := store.Get(ListKey(500))
	assert.False(t, ok)
	_, ok = store.GetStale(ListKey(500))
	assert.False(t, ok, "invalidation removes the entry outright")

	_, ok = store.Get(DetailKey("a/one"))
	assert.True(t, ok, "other namespaces are untouched")

	store.InvalidateAll()
	_, ok = store.Get(DetailKey("a/one"))
	assert.False(t, ok)
}
