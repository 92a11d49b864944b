package domain

import "go.trai.ch/zerr"

var (
	// ErrNotInteger is returned when an input is not integer-valued,
	// e.g. a float with a fractional part or an unparseable string.
	ErrNotInteger = zerr.New("input must be an integer")

	// ErrOutOfRange is returned when an integer input is not strictly greater than 1.
	ErrOutOfRange = zerr.New("input must be strictly greater than 1")

	// ErrDuplicatePrime is returned when a prime already present in the cache
	// is appended again. This is an internal invariant violation, not a user error.
	ErrDuplicatePrime = zerr.New("prime already cached")

	// ErrCapacityMisconfigured is returned at startup when the initial sieve
	// population does not fit strictly below the configured cache capacity.
	ErrCapacityMisconfigured = zerr.New("cache capacity must exceed initial population")
)
