// Path: internal/service/fetcher.go
package service

import (
	"context"
	"encoding/json"
)

// Fetcher defines the upstream collaborator that retrieves raw dataset
// metadata from the hub. *hub.Client satisfies it; tests substitute fakes.
// Entries come back undecoded because the hub's wire shape is loosely
// typed; Normalize is the single place that absorbs it.
type Fetcher interface {
	// ListDatasets fetches one batch of up to count entries, ordered by
	// downloads. The hub has no server-side recency filter, so callers
	// over-fetch and filter afterwards.
	ListDatasets(ctx context.Context, count int) ([]json.RawMessage, error)

	// GetDataset fetches a single entry by id, returning
	// domain.ErrNotFound for unknown ids.
	GetDataset(ctx context.Context, id string) (json.RawMessage, error)
}
