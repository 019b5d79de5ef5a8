package store

import "errors"

// Sentinel errors returned by the record store and the repositories built on
// top of it. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateKey is returned by Add when a record with the same id
	// already exists in the target collection. Update never returns it:
	// updates are upserts by contract.
	ErrDuplicateKey = errors.New("record id already exists in collection")

	// ErrRecordNotFound is returned by Get when no record with the requested
	// id exists in the collection. Repositories translate it into
	// domain-appropriate defaults where absence is a valid state
	// (e.g. an unconfigured profile on first run).
	ErrRecordNotFound = errors.New("record was not found")

	// ErrStorageUnavailable wraps any driver-level failure (locked file,
	// exhausted disk, closed connection). Previously committed records are
	// never affected by an operation that fails with it.
	ErrStorageUnavailable = errors.New("storage is unavailable")

	// ErrInvalidRecord is returned by repository add methods when the input
	// violates a schema invariant (rating out of range, negative distance,
	// half-present coordinate pair).
	ErrInvalidRecord = errors.New("invalid record provided")
)

// Low-level codec errors. These are returned (or wrapped) when a record
// cannot be converted to or from its stored JSON payload.
var (
	// ErrEncodingRecord is returned when marshaling a record for storage fails.
	ErrEncodingRecord = errors.New("error encoding record payload")

	// ErrDecodingRecord is returned when a stored payload cannot be
	// unmarshaled into the requested record type.
	ErrDecodingRecord = errors.New("error decoding record payload")
)
