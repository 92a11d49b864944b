// Package cache implements the shared prime cache adapter.
package cache

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/primes/internal/core/domain"
	"go.trai.ch/primes/internal/core/ports"
	"go.trai.ch/primes/internal/engine/sieve"
	"go.trai.ch/zerr"
)

var _ ports.PrimeCache = (*Cache)(nil)

// Cache implements ports.PrimeCache as a strictly increasing, append-only
// slice of primes with a fixed capacity. It is populated once at startup by
// sieving up to the initial bound and grows as later queries discover new
// primes. It never shrinks and lives for the whole process.
type Cache struct {
	mu        sync.RWMutex
	primes    []uint64
	capacity  int
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a Cache populated with every prime up to initialBound.
// The capacity must strictly exceed the initial population; a violation is
// a startup misconfiguration, not a recoverable condition.
func New(initialBound uint64, capacity int, logger ports.Logger, telemetry ports.Telemetry) (*Cache, error) {
	s, err := sieve.New(initialBound)
	if err != nil {
		return nil, zerr.Wrap(err, "invalid initial bound")
	}

	primes := slices.Collect(s.All(context.Background()))
	if len(primes) >= capacity {
		err := zerr.With(zerr.Wrap(domain.ErrCapacityMisconfigured, "initial sieve filled the cache"), "capacity", capacity)
		return nil, zerr.With(err, "initial_population", len(primes))
	}

	logger.Info(fmt.Sprintf("prime cache initialized with %d primes up to %d", len(primes), initialBound))
	return &Cache{
		primes:    primes,
		capacity:  capacity,
		logger:    logger,
		telemetry: telemetry,
	}, nil
}

// Contains reports whether n is a cached prime. Any n above the cached
// ceiling answers false even if n is actually prime.
func (c *Cache) Contains(n uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, found := slices.BinarySearch(c.primes, n)
	return found
}

// Max returns the largest cached prime.
func (c *Cache) Max() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ceiling()
}

// Len returns the number of cached primes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.primes)
}

// Snapshot returns the cached primes in ascending order. The slice is
// capped at its current length, so later appends never alias into it.
func (c *Cache) Snapshot() []uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.primes[:len(c.primes):len(c.primes)]
}

// ExtendTo returns every prime <= bound in ascending order. When the bound
// is at or below the cached ceiling the cache is sliced without any
// recomputation; otherwise a fresh sieve runs and each newly discovered
// prime is appended, subject to capacity. Primes past the capacity are
// returned to the caller but not retained.
func (c *Cache) ExtendTo(ctx context.Context, bound uint64) ([]uint64, error) {
	if bound < 2 {
		return nil, nil
	}

	c.mu.RLock()
	if bound <= c.ceiling() {
		out := c.sliceTo(bound)
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	// The whole check-sieve-append sequence holds the write lock so that
	// concurrent extensions never duplicate or reorder entries.
	c.mu.Lock()
	defer c.mu.Unlock()

	if bound <= c.ceiling() {
		return c.sliceTo(bound), nil
	}

	_, vtx := c.telemetry.Record(ctx, fmt.Sprintf("sieve to %d", bound))

	s, err := sieve.New(bound)
	if err != nil {
		vtx.Complete(err)
		return nil, err
	}

	prevCeiling := c.ceiling()
	out := make([]uint64, 0, len(c.primes))
	for p := range s.All(ctx) {
		out = append(out, p)
		if p <= prevCeiling {
			continue
		}
		if err := c.append(p); err != nil {
			vtx.Complete(err)
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		wrapped := zerr.Wrap(err, "sieve interrupted")
		vtx.Complete(wrapped)
		return nil, wrapped
	}

	vtx.Complete(nil)
	return out, nil
}

// append adds one prime above the current ceiling. Appending a value at or
// below the ceiling violates the strictly-increasing invariant and is
// fatal. Once at capacity, append is a no-op.
func (c *Cache) append(p uint64) error {
	if p <= c.ceiling() {
		return zerr.With(zerr.Wrap(domain.ErrDuplicatePrime, "cache ordering violated"), "prime", p)
	}
	if len(c.primes) >= c.capacity {
		return nil
	}
	c.primes = append(c.primes, p)
	return nil
}

// ceiling returns the largest cached prime. Callers must hold c.mu.
func (c *Cache) ceiling() uint64 {
	if len(c.primes) == 0 {
		return 0
	}
	return c.primes[len(c.primes)-1]
}

// sliceTo returns the cached prefix of primes <= bound. Callers must hold
// c.mu. The prefix is immutable because the cache is append-only.
func (c *Cache) sliceTo(bound uint64) []uint64 {
	i, found := slices.BinarySearch(c.primes, bound)
	if found {
		i++
	}
	return c.primes[:i:i]
}
