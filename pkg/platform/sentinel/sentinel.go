package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Registries, adapters and loaders
// return these (optionally wrapped) so services can translate them into domain
// errors with the right code.
//
//   - ErrNotFound: the requested entry is not configured or does not exist
//   - ErrConflict: the resource already exists upstream
//   - ErrUnavailable: an upstream capability could not be reached
//
// For bad input, use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
