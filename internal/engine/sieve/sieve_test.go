package sieve_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/primes/internal/core/domain"
	"go.trai.ch/primes/internal/engine/sieve"
)

func collect(t *testing.T, bound uint64) []uint64 {
	t.Helper()
	s, err := sieve.New(bound)
	require.NoError(t, err)
	return slices.Collect(s.All(context.Background()))
}

func TestSieve_SmallBounds(t *testing.T) {
	tests := []struct {
		bound uint64
		want  []uint64
	}{
		{2, []uint64{2}},
		{3, []uint64{2, 3}},
		{10, []uint64{2, 3, 5, 7}},
		{11, []uint64{2, 3, 5, 7, 11}},
		{30, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, collect(t, tt.bound), "bound %d", tt.bound)
	}
}

func TestSieve_InvalidBound(t *testing.T) {
	for _, bound := range []uint64{0, 1} {
		_, err := sieve.New(bound)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrOutOfRange))
	}
}

func TestSieve_BoundIsInclusive(t *testing.T) {
	// Regression guard for the classic off-by-one at the bound itself.
	primes := collect(t, 97)
	assert.Equal(t, uint64(97), primes[len(primes)-1])
}

func TestSieve_CountToTenThousand(t *testing.T) {
	// pi(10000) = 1229
	assert.Len(t, collect(t, 10000), 1229)
}

func TestSieve_Ascending(t *testing.T) {
	primes := collect(t, 5000)
	assert.True(t, slices.IsSorted(primes))
	assert.Equal(t, primes, slices.Compact(primes), "sequence must be duplicate-free")
}

func TestSieve_ConsumableOnce(t *testing.T) {
	s, err := sieve.New(100)
	require.NoError(t, err)

	first := slices.Collect(s.All(context.Background()))
	assert.Len(t, first, 25)

	second := slices.Collect(s.All(context.Background()))
	assert.Empty(t, second, "a consumed sieve must not restart")
}

func TestSieve_Cancellation(t *testing.T) {
	s, err := sieve.New(1000000)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var got []uint64
	for p := range s.All(ctx) {
		got = append(got, p)
		if len(got) == 10 {
			cancel()
		}
	}

	require.GreaterOrEqual(t, len(got), 10)
	assert.Less(t, len(got), 78498, "cancelled sieve must stop early")
	assert.True(t, slices.IsSorted(got))
}
