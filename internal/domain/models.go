// Path: internal/domain/models.go
package domain

import (
	"fmt"
	"strings"
	"time"
)

// --- Query enums ---

// Window is a recency cutoff applied against a record's UpdatedAt
// timestamp. The hub API cannot filter by recency server-side, so the
// window is always applied client-side after fetching.
type Window string

const (
	Window7Days   Window = "7d"
	Window30Days  Window = "30d"
	Window90Days  Window = "90d"
	WindowAllTime Window = "all"
)

// Duration returns the span of the window. The all-time window has no
// cutoff and returns zero.
func (w Window) Duration() time.Duration {
	switch w {
	case Window7Days:
		return 7 * 24 * time.Hour
	case Window30Days:
		return 30 * 24 * time.Hour
	case Window90Days:
		return 90 * 24 * time.Hour
	}
	return 0
}

// ParseWindow validates a window value coming from an external caller.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case Window7Days, Window30Days, Window90Days, WindowAllTime:
		return Window(s), nil
	}
	return "", fmt.Errorf("unknown time window %q", s)
}

// SortKey selects the field that orders a result list.
// Every sort is descending: most downloads/likes first, most recent first.
type SortKey string

const (
	SortDownloads SortKey = "downloads"
	SortLikes     SortKey = "likes"
	SortUpdated   SortKey = "updated"
	SortCreated   SortKey = "created"
)

// ParseSortKey validates a sort key coming from an external caller.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortDownloads, SortLikes, SortUpdated, SortCreated:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// --- Records ---

// DatasetRecord is an immutable snapshot of one dataset repository's
// public metadata at fetch time. Records are value objects: once built
// they are never mutated, only replaced wholesale on re-fetch.
//
// UpdatedAt >= CreatedAt is not guaranteed by the hub and must not be
// assumed anywhere.
type DatasetRecord struct {
	ID           string    `json:"id"`
	Namespace    string    `json:"namespace"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Downloads    int       `json:"downloads"`
	Likes        int       `json:"likes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Tags         []string  `json:"tags"`
	SizeBytes    *int64    `json:"sizeBytes,omitempty"`
	FileCount    *int      `json:"fileCount,omitempty"`
	CanonicalURL string    `json:"url"`
}

// SplitID derives the namespace and name parts of a dataset id.
// Ids look like "<namespace>/<name>" or just "<name>"; bare names get
// the "unknown" namespace.
func SplitID(id string) (namespace, name string) {
	if i := strings.Index(id, "/"); i >= 0 {
		return id[:i], id[strings.LastIndex(id, "/")+1:]
	}
	return "unknown", id
}

// DatasetURL returns the canonical hub page for a dataset id.
func DatasetURL(id string) string {
	return "https://huggingface.co/datasets/" + id
}
