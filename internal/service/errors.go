package service

import "errors"

var (
	// ErrImportFailed is returned when a snapshot cannot be applied.
	// Multi-collection import is not atomic: collections already restored
	// before the failure stay applied, and the caller should surface a
	// single user-facing failure notice rather than inspect internals.
	ErrImportFailed = errors.New("snapshot import failed")

	// ErrMalformedSnapshot is returned when a snapshot file cannot be
	// decoded at all. Individual malformed collection fields inside an
	// otherwise valid snapshot are skipped, not rejected.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)
