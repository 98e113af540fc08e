package interfaces

import "errors"

// Store errors. Repositories wrap the underlying cause, so callers match
// with errors.Is.
var (
	// ErrNotFound is returned when the requested id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write violates a constraint, such as a
	// missing required column or a show pointing at an unknown venue.
	ErrConflict = errors.New("conflict")

	// ErrStorage covers connection failures and anything else the store
	// could not classify.
	ErrStorage = errors.New("storage failure")
)

// IsPersistenceError reports whether err is a failed write that was rolled
// back (constraint violation or storage failure).
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrStorage)
}
