// Path: internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a detail lookup targeted an unknown dataset id.
var ErrNotFound = errors.New("dataset not found")

// FetchError reports that the upstream hub API could not produce a usable
// batch: unreachable, rate-limited, or a malformed response. The fetch
// client has already exhausted its own retry budget by the time one of
// these surfaces, so callers should render an "unavailable" state rather
// than retry in a loop.
type FetchError struct {
	Op  string // "list" or "detail"
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("hub fetch (%s): %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
