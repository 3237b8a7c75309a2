package store

import "errors"

// Errors returned by store operations. Callers distinguish them with
// errors.Is and map them onto API responses.
var (
	// ErrNotFound means the complaint or staff id is unknown.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus means the requested status is not a recognized
	// status value. Transitions between recognized states are never
	// rejected; only unknown target values are.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidState means the operation is not legal in the complaint's
	// current status, e.g. feedback on an unresolved complaint.
	ErrInvalidState = errors.New("invalid state")
)
