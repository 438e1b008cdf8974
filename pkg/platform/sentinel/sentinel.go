package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) and services translate them into domain errors.
//
//   - ErrNotFound: no entry with the requested identifier
//   - ErrInvalidState: a submission attempt tried an illegal state transition
//   - ErrUnavailable: a backing resource cannot serve the call right now
//
// Rejected form input is not an infrastructure fact and never uses these.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
