package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Decomposition maps each prime factor of a number to its exponent.
// It excludes 1 and, implicitly, the input itself unless the input is prime.
type Decomposition map[uint64]int

// Add records one more occurrence of the prime factor p.
func (d Decomposition) Add(p uint64) {
	d[p]++
}

// Product reconstructs the original number by multiplying every factor
// raised to its exponent.
func (d Decomposition) Product() uint64 {
	n := uint64(1)
	for p, e := range d {
		for range e {
			n *= p
		}
	}
	return n
}

// IsSinglePrime reports whether the decomposition consists of exactly the
// prime n with exponent 1, i.e. whether it describes a prime number.
func (d Decomposition) IsSinglePrime(n uint64) bool {
	return len(d) == 1 && d[n] == 1
}

// String renders factors in ascending order, "2^3 * 3^2 * 173" style,
// omitting the exponent when it is 1.
func (d Decomposition) String() string {
	factors := slices.Sorted(maps.Keys(d))
	parts := make([]string, 0, len(factors))
	for _, p := range factors {
		if e := d[p]; e > 1 {
			parts = append(parts, fmt.Sprintf("%d^%d", p, e))
		} else {
			parts = append(parts, fmt.Sprintf("%d", p))
		}
	}
	return strings.Join(parts, " * ")
}
