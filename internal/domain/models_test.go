// Path: internal/domain/models_test.go
package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitID(t *testing.T) {
	tests := []struct {
		id        string
		namespace string
		name      string
	}{
		{"acme/corpus", "acme", "corpus"},
		{"corpus", "unknown", "corpus"},
		{"a/b/c", "a", "c"},
	}
	for _, tt := range tests {
		namespace, name := SplitID(tt.id)
		assert.Equal(t, tt.namespace, namespace, tt.id)
		assert.Equal(t, tt.name, name, tt.id)
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("30d")
	assert.NoError(t, err)
	assert.Equal(t, Window30Days, w)
	assert.Equal(t, 30*24*time.Hour, w.Duration())

	assert.Zero(t, WindowAllTime.Duration())

	_, err = ParseWindow("2w")
	assert.Error(t, err)
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("likes")
	assert.NoError(t, err)
	assert.Equal(t, SortLikes, k)

	_, err = ParseSortKey("stars")
	assert.Error(t, err)
}
