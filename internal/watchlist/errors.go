package watchlist

import "errors"

var (
	// ErrNotFound indicates the requested entry doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates the item is already on the list.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrConstraint indicates a check constraint violation, such as a score
	// outside 0-10.
	ErrConstraint = errors.New("constraint violation")
)
