package ptfmine

import "github.com/pkg/errors"

// Sentinel causes for the error kinds Mine can return. Errors returned by
// this package are wrapped around one of these via errors.Wrap/Wrapf, so a
// caller can recover the kind with errors.Cause().
var (
	// ErrInvalidConfig is the cause of errors returned by Config.Validate.
	ErrInvalidConfig = errors.New("ptfmine: invalid config")
	// ErrMalformedInput is the cause of errors returned when scanning a
	// transaction source fails.
	ErrMalformedInput = errors.New("ptfmine: malformed input")
	// ErrResourceExhausted is the cause of errors surfaced when a worker
	// fails catastrophically (e.g. panics) while mining a partition.
	ErrResourceExhausted = errors.New("ptfmine: resource exhausted")
)
