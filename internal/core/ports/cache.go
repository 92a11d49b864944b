package ports

import "context"

// PrimeCache defines the interface for the shared, monotonically growing
// set of known primes.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type PrimeCache interface {
	// Contains reports whether n is a known prime. It answers false for any
	// n above the current cached maximum, even if n is actually prime;
	// callers must use other means beyond the ceiling.
	Contains(n uint64) bool

	// Max returns the largest cached prime.
	Max() uint64

	// Len returns the number of cached primes.
	Len() int

	// Snapshot returns the cached primes in ascending order. The returned
	// slice is an immutable prefix of the cache and must not be modified.
	Snapshot() []uint64

	// ExtendTo returns every prime <= bound in ascending order, growing the
	// cache as a side effect when bound exceeds the current ceiling. Primes
	// discovered past the cache capacity are returned but not retained.
	ExtendTo(ctx context.Context, bound uint64) ([]uint64, error)
}
