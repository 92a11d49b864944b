package primes

import "math"

// isqrt returns the integer square root of n, the largest r with r*r <= n.
// The float approximation is corrected in both directions because
// math.Sqrt can be off by one ULP at 64-bit magnitudes.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && (r > math.MaxUint32 || r*r > n) {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
