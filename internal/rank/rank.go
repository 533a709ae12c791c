// Path: internal/rank/rank.go

// Package rank applies the time-window filter and popularity sort to
// normalized dataset records. It is pure: no clock access, no mutation of
// its input.
package rank

import (
	"sort"
	"time"

	"hf-datasets/internal/domain"
)

// Apply returns a new slice holding the records inside the window, ordered
// descending by the sort key. Ties keep their relative input order. An
// empty result after filtering is a valid outcome, not an error.
func Apply(records []domain.DatasetRecord, window domain.Window, key domain.SortKey, now time.Time) []domain.DatasetRecord {
	out := make([]domain.DatasetRecord, 0, len(records))

	if d := window.Duration(); d > 0 {
		// UpdatedAt stands in for recent activity; the hub exposes no
		// download time series.
		cutoff := now.Add(-d)
		for _, r := range records {
			if !r.UpdatedAt.Before(cutoff) {
				out = append(out, r)
			}
		}
	} else {
		out = append(out, records...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch key {
		case domain.SortLikes:
			return a.Likes > b.Likes
		case domain.SortUpdated:
			return a.UpdatedAt.After(b.UpdatedAt)
		case domain.SortCreated:
			return a.CreatedAt.After(b.CreatedAt)
		default:
			return a.Downloads > b.Downloads
		}
	})

	return out
}
