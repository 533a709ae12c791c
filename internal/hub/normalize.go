// Path: internal/hub/normalize.go
package hub

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hf-datasets/internal/domain"
)

// Normalize converts one raw hub API entry into a DatasetRecord,
// substituting documented defaults for every missing or malformed optional
// field: empty description, zero counts, fetch-time timestamps, empty tag
// list, nil size and file count. It only fails when the entry is not a
// JSON object or carries no id; callers drop such entries and continue
// with the rest of the batch.
func Normalize(data json.RawMessage, fetchedAt time.Time) (domain.DatasetRecord, error) {
	var raw RawDataset
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.DatasetRecord{}, fmt.Errorf("decode dataset entry: %w", err)
	}
	if raw.ID == "" {
		return domain.DatasetRecord{}, errors.New("dataset entry has no id")
	}

	namespace, name := domain.SplitID(raw.ID)

	rec := domain.DatasetRecord{
		ID:           raw.ID,
		Namespace:    namespace,
		Name:         name,
		Description:  raw.Description,
		Downloads:    clampCount(int(raw.Downloads)),
		Likes:        clampCount(int(raw.Likes)),
		CreatedAt:    raw.CreatedAt.Time,
		UpdatedAt:    raw.LastModified.Time,
		Tags:         []string(raw.Tags),
		SizeBytes:    raw.SizeInBytes.ptr(),
		CanonicalURL: domain.DatasetURL(raw.ID),
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = fetchedAt
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = fetchedAt
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if raw.Siblings.valid {
		n := len(raw.Siblings.items)
		rec.FileCount = &n
	}

	return rec, nil
}

// clampCount keeps download/like counts non-negative regardless of what
// the hub sent.
func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
