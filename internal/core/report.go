package core

import "errors"

var (
	ErrUnsupportedValue = errors.New("unsupported value")
)

// SyncReport is the outcome of one author's sync. The counts are always valid;
// Err records an author-scoped failure for sweep accounting and is never
// propagated as a call failure by the engine itself.
type SyncReport struct {
	Handle  string
	Added   int
	Deleted int
	Err     error
}
