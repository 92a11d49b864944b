// Package sieve implements the bitset Sieve of Eratosthenes engine.
package sieve

import (
	"context"
	"iter"

	"go.trai.ch/primes/internal/core/domain"
	"go.trai.ch/zerr"
)

// Sieve computes every prime up to a fixed bound. Only odd candidates are
// represented in the bit vector; even numbers other than 2 are excluded
// a priori. The produced sequence is consumable once.
type Sieve struct {
	bound    uint64
	words    []uint64 // set bit = composite; bit i stands for the odd number 2i+1
	consumed bool
}

// New creates a Sieve for the given inclusive bound.
// It returns an error for bounds that are not strictly greater than 1.
func New(bound uint64) (*Sieve, error) {
	if err := domain.Validate(bound); err != nil {
		return nil, zerr.Wrap(err, "invalid sieve bound")
	}
	odds := (bound + 1) / 2
	return &Sieve{
		bound: bound,
		words: make([]uint64, (odds+63)/64),
	}, nil
}

// Bound returns the inclusive upper bound of the sieve.
func (s *Sieve) Bound() uint64 {
	return s.bound
}

// All returns the ascending sequence of every prime <= bound, yielding 2
// first. Marking is interleaved with discovery: when an unmarked candidate
// i with i*i <= bound is found, all odd multiples of i from i*i onward are
// marked composite before the next candidate is considered. The sequence
// can be consumed only once; a second call yields nothing. Cancelling ctx
// stops the sequence early at a candidate boundary, so every prime yielded
// up to that point is still correct and no prime below the last yielded
// value has been skipped.
func (s *Sieve) All(ctx context.Context) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if s.consumed {
			return
		}
		s.consumed = true

		if !yield(2) {
			return
		}

		var i uint64
		for i = 3; i*i <= s.bound; i += 2 {
			if ctx.Err() != nil {
				return
			}
			if s.marked(i) {
				continue
			}
			if !yield(i) {
				return
			}
			for m := i * i; m <= s.bound; m += 2 * i {
				s.mark(m)
			}
		}

		// Everything still unmarked above the marking limit is prime.
		for ; i <= s.bound; i += 2 {
			if ctx.Err() != nil {
				return
			}
			if !s.marked(i) && !yield(i) {
				return
			}
		}
	}
}

func (s *Sieve) mark(odd uint64) {
	idx := odd / 2
	s.words[idx/64] |= 1 << (idx % 64)
}

func (s *Sieve) marked(odd uint64) bool {
	idx := odd / 2
	return s.words[idx/64]&(1<<(idx%64)) != 0
}
