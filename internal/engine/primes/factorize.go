package primes

import (
	"context"

	"go.trai.ch/primes/internal/core/domain"
	"go.trai.ch/primes/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factorizer computes prime decompositions. Unlike the Oracle it may grow
// the cache: candidates are obtained by extending it up to the square root
// of the input.
type Factorizer struct {
	cache ports.PrimeCache
}

// NewFactorizer creates a Factorizer backed by the given cache.
func NewFactorizer(cache ports.PrimeCache) *Factorizer {
	return &Factorizer{cache: cache}
}

// Decompose returns the prime factor to exponent mapping of n. Each
// candidate prime divides the shrinking remainder as often as possible;
// once a candidate squared exceeds the remainder, whatever is left greater
// than 1 is itself prime and recorded with exponent 1.
func (f *Factorizer) Decompose(ctx context.Context, n uint64) (domain.Decomposition, error) {
	if err := domain.Validate(n); err != nil {
		return nil, err
	}

	candidates, err := f.cache.ExtendTo(ctx, isqrt(n))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to collect candidate primes")
	}

	decomposition := domain.Decomposition{}
	remainder := n
	for _, p := range candidates {
		if p*p > remainder {
			break
		}
		for remainder%p == 0 {
			decomposition.Add(p)
			remainder /= p
		}
	}
	if remainder > 1 {
		decomposition.Add(remainder)
	}

	return decomposition, nil
}
