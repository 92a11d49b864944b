package cache_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/primes/internal/adapters/cache"
	"go.trai.ch/primes/internal/adapters/telemetry"
	"go.trai.ch/primes/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Error(error) {}

func newCache(t *testing.T, initialBound uint64, capacity int) *cache.Cache {
	t.Helper()
	c, err := cache.New(initialBound, capacity, nopLogger{}, telemetry.NewNoOp())
	require.NoError(t, err)
	return c
}

func TestNew_InitialPopulation(t *testing.T) {
	c := newCache(t, 100, 1000)

	// pi(100) = 25
	assert.Equal(t, 25, c.Len())
	assert.Equal(t, uint64(97), c.Max())
}

func TestNew_CapacityMisconfigured(t *testing.T) {
	// pi(100) = 25, so a capacity of 25 leaves no headroom.
	_, err := cache.New(100, 25, nopLogger{}, telemetry.NewNoOp())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCapacityMisconfigured))
}

func TestNew_InvalidBound(t *testing.T) {
	_, err := cache.New(1, 1000, nopLogger{}, telemetry.NewNoOp())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutOfRange))
}

func TestContains(t *testing.T) {
	c := newCache(t, 100, 1000)

	for _, p := range []uint64{2, 3, 5, 7, 89, 97} {
		assert.True(t, c.Contains(p), "expected %d to be cached", p)
	}
	for _, n := range []uint64{0, 1, 4, 49, 100} {
		assert.False(t, c.Contains(n), "expected %d not to be cached", n)
	}

	// 101 is prime but above the ceiling; membership must answer false.
	assert.False(t, c.Contains(101))
}

func TestExtendTo_ReplayBelowCeiling(t *testing.T) {
	c := newCache(t, 100, 1000)
	before := c.Len()

	primes, err := c.ExtendTo(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3, 5, 7}, primes)
	assert.Equal(t, before, c.Len(), "replay must not grow the cache")

	// The bound itself is included when prime.
	primes, err = c.ExtendTo(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3, 5, 7}, primes)
}

func TestExtendTo_GrowsAboveCeiling(t *testing.T) {
	c := newCache(t, 100, 1000)

	primes, err := c.ExtendTo(context.Background(), 200)
	require.NoError(t, err)

	// pi(200) = 46
	assert.Len(t, primes, 46)
	assert.Equal(t, 46, c.Len())
	assert.Equal(t, uint64(199), c.Max())
	assert.True(t, c.Contains(101))
}

func TestExtendTo_TrivialBound(t *testing.T) {
	c := newCache(t, 100, 1000)

	primes, err := c.ExtendTo(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, primes)
}

func TestExtendTo_OverflowReturnedNotRetained(t *testing.T) {
	// pi(100) = 25; capacity 30 fills after five more primes.
	c := newCache(t, 100, 30)

	primes, err := c.ExtendTo(context.Background(), 300)
	require.NoError(t, err)

	// The caller still sees every prime <= 300...
	assert.Len(t, primes, 62) // pi(300) = 62
	assert.Equal(t, uint64(293), primes[len(primes)-1])

	// ...but the cache stops retaining at capacity.
	assert.Equal(t, 30, c.Len())
	assert.Equal(t, uint64(113), c.Max()) // 30th prime
	assert.False(t, c.Contains(127))
}

func TestExtendTo_CancelledContext(t *testing.T) {
	c := newCache(t, 100, 100000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ExtendTo(ctx, 1_000_000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCache_InvariantsAfterQueries(t *testing.T) {
	c := newCache(t, 100, 200)

	bounds := []uint64{50, 500, 120, 1000, 3, 900, 2000}
	for _, b := range bounds {
		_, err := c.ExtendTo(context.Background(), b)
		require.NoError(t, err)
	}

	snapshot := c.Snapshot()
	assert.True(t, slices.IsSorted(snapshot), "cache must stay strictly increasing")
	assert.Equal(t, snapshot, slices.Compact(slices.Clone(snapshot)), "cache must stay duplicate-free")
	assert.LessOrEqual(t, len(snapshot), 200, "cache must never exceed its capacity")
}

func TestCache_ConcurrentExtend(t *testing.T) {
	c := newCache(t, 100, 100000)

	var wg sync.WaitGroup
	for _, bound := range []uint64{500, 1000, 1500, 2000, 2500, 3000} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			primes, err := c.ExtendTo(context.Background(), bound)
			assert.NoError(t, err)
			assert.True(t, slices.IsSorted(primes))
		}()
	}
	wg.Wait()

	snapshot := c.Snapshot()
	assert.True(t, slices.IsSorted(snapshot))
	assert.Equal(t, snapshot, slices.Compact(slices.Clone(snapshot)))
	assert.Equal(t, uint64(2999), c.Max())
}
