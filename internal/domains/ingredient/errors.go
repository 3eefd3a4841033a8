package ingredient

import "errors"

// Error codes
const (
	ErrCodeResolveConflict = "ING001"
)

var (
	// ErrResolveConflict means an insert hit the unique constraint but the
	// follow-up lookup still found no row. That should not happen under
	// read-committed isolation; the enclosing transaction must abort.
	ErrResolveConflict = errors.New("ingredient resolve conflict: row vanished after unique violation")
)
