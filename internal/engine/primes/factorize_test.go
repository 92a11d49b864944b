package primes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/primes/internal/core/domain"
	"go.trai.ch/primes/internal/engine/primes"
)

func TestFactorizer_ConcreteCases(t *testing.T) {
	factorizer := primes.NewFactorizer(newCache(t, 1000))

	tests := []struct {
		n    uint64
		want domain.Decomposition
	}{
		{42, domain.Decomposition{2: 1, 3: 1, 7: 1}},
		{99, domain.Decomposition{3: 2, 11: 1}},
		{1337, domain.Decomposition{7: 1, 191: 1}},
		{12456, domain.Decomposition{2: 3, 3: 2, 173: 1}},
		{2, domain.Decomposition{2: 1}},
		{8, domain.Decomposition{2: 3}},
		{9, domain.Decomposition{3: 2}},
	}

	for _, tt := range tests {
		got, err := factorizer.Decompose(context.Background(), tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Decompose(%d)", tt.n)
	}
}

func TestFactorizer_RejectsOutOfRange(t *testing.T) {
	factorizer := primes.NewFactorizer(newCache(t, 1000))

	for _, n := range []uint64{0, 1} {
		_, err := factorizer.Decompose(context.Background(), n)
		assert.True(t, errors.Is(err, domain.ErrOutOfRange), "Decompose(%d) error = %v", n, err)
	}
}

func TestFactorizer_PrimeInput(t *testing.T) {
	factorizer := primes.NewFactorizer(newCache(t, 1000))

	for _, p := range []uint64{2, 191, 999983} {
		got, err := factorizer.Decompose(context.Background(), p)
		require.NoError(t, err)
		assert.True(t, got.IsSinglePrime(p), "Decompose(%d) = %v", p, got)
	}
}

func TestFactorizer_ReconstructsInput(t *testing.T) {
	factorizer := primes.NewFactorizer(newCache(t, 1000))

	for n := uint64(2); n <= 3000; n++ {
		d, err := factorizer.Decompose(context.Background(), n)
		require.NoError(t, err)
		assert.Equal(t, n, d.Product(), "Decompose(%d) = %v does not reconstruct", n, d)
	}
}

func TestFactorizer_AgreesWithOracle(t *testing.T) {
	c := newCache(t, 1000)
	factorizer := primes.NewFactorizer(c)
	oracle := primes.NewOracle(c)

	for n := uint64(2); n <= 2000; n++ {
		d, err := factorizer.Decompose(context.Background(), n)
		require.NoError(t, err)
		isPrime, err := oracle.IsPrime(n)
		require.NoError(t, err)
		assert.Equal(t, isPrime, d.IsSinglePrime(n), "n = %d", n)
	}
}

func TestFactorizer_GrowsCache(t *testing.T) {
	c := newCache(t, 1000)
	factorizer := primes.NewFactorizer(c)

	before := c.Max()

	// 1009 is prime, so sqrt(1009^2) forces the cache past its ceiling.
	d, err := factorizer.Decompose(context.Background(), 1009*1009)
	require.NoError(t, err)
	assert.Equal(t, domain.Decomposition{1009: 2}, d)
	assert.Greater(t, c.Max(), before, "decomposing past the ceiling must grow the cache")
}

func TestFactorizer_LargeSemiprime(t *testing.T) {
	factorizer := primes.NewFactorizer(newCache(t, 1000))

	// 999983 * 1000003, both prime
	d, err := factorizer.Decompose(context.Background(), 999985999949)
	require.NoError(t, err)
	assert.Equal(t, domain.Decomposition{999983: 1, 1000003: 1}, d)
}
