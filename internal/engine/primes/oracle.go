// Package primes implements the primality oracle and the factorization
// engine on top of the shared prime cache.
package primes

import (
	"go.trai.ch/primes/internal/core/domain"
	"go.trai.ch/primes/internal/core/ports"
)

// Oracle decides primality of single integers. It reads the cache but
// never mutates it.
type Oracle struct {
	cache ports.PrimeCache
}

// NewOracle creates an Oracle backed by the given cache.
func NewOracle(cache ports.PrimeCache) *Oracle {
	return &Oracle{cache: cache}
}

// IsPrime reports whether n is prime. A cache hit answers immediately;
// otherwise n is trial-divided by the cached primes in ascending order, and
// when the cache is exhausted before reaching the square root, by the
// remaining 6k±1 candidates above the cached ceiling.
func (o *Oracle) IsPrime(n uint64) (bool, error) {
	if err := domain.Validate(n); err != nil {
		return false, err
	}

	if o.cache.Contains(n) {
		return true, nil
	}

	limit := isqrt(n)
	var last uint64
	for _, p := range o.cache.Snapshot() {
		if p > limit {
			return true, nil
		}
		if n%p == 0 {
			return false, nil
		}
		last = p
	}

	return wheelDivide(n, last, limit), nil
}

// wheelDivide trial-divides n by every candidate of the form 6k±1 strictly
// greater than last, up to and including limit. It requires that 2 and 3
// have already been ruled out as divisors: candidates congruent to 0, 2, 3
// or 4 mod 6 are multiples of 2 or 3 and need no testing, which is what
// makes skipping them sound regardless of where last falls in the wheel.
func wheelDivide(n, last, limit uint64) bool {
	if last < 3 {
		// Degenerate cache; restore the precondition by hand.
		for _, p := range []uint64{2, 3} {
			if p > limit {
				return true
			}
			if n%p == 0 {
				return false
			}
		}
		last = 3
	}

	f := last + 1
	for f%6 != 1 && f%6 != 5 {
		f++
	}
	for f <= limit {
		if n%f == 0 {
			return false
		}
		if f%6 == 5 {
			f += 2
		} else {
			f += 4
		}
	}
	return true
}
