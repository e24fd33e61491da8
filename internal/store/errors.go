package store

import "errors"

// Sentinel errors returned by the store.  Handlers branch on these with
// errors.Is instead of inspecting driver error strings.
var (
	// ErrConnection means the backend was unreachable or the operation
	// timed out before completing.
	ErrConnection = errors.New("counter backend unreachable")

	// ErrOperation means the backend was reachable but the command itself
	// failed.
	ErrOperation = errors.New("counter backend operation failed")
)
