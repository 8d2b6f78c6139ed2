package trend

import (
	"context"
	"errors"
)

// ErrNoValidRows is returned when every input row was rejected during
// normalization. It is a distinct terminal state, not a crash: callers
// report it and write no output.
var ErrNoValidRows = errors.New("no valid rows after normalization")

// Normalizer validates raw column-keyed rows into Records. Row-level
// failures are counted, never fatal.
type Normalizer interface {
	// Normalize returns the validated record, or an error when the row
	// is rejected.
	Normalize(row map[string]string) (Record, error)

	// Report returns the diagnostic counters accumulated so far.
	Report() IngestReport
}

// ResultStore persists a computed result set.
type ResultStore interface {
	SaveResult(ctx context.Context, res Result) error
}

// Publisher emits an event describing a computed result.
type Publisher interface {
	PublishComputed(res Result) error
}
