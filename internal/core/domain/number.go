// Package domain contains the core domain models for prime queries.
package domain

import (
	"math"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Validate checks the factorizable-number concept: the value must be
// strictly greater than 1. Every public operation calls this before
// doing any algorithmic work.
func Validate(n uint64) error {
	if n <= 1 {
		return zerr.With(zerr.Wrap(ErrOutOfRange, "invalid number"), "number", n)
	}
	return nil
}

// ParseNumber converts a raw input token into a factorizable number.
// Inputs that are not integer-valued (unparseable strings, floats with a
// fractional part) fail with ErrNotInteger; integers that are not strictly
// greater than 1 fail with ErrOutOfRange.
func ParseNumber(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, zerr.With(zerr.Wrap(ErrNotInteger, "failed to parse input"), "input", s)
	}

	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, Validate(n)
	}

	// A negative integer is integer-valued but out of range.
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return 0, zerr.With(zerr.Wrap(ErrOutOfRange, "failed to parse input"), "input", s)
	}

	// A float is accepted only when it converts losslessly, mirroring the
	// int(number) == number check at the entry points.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberFromFloat(f)
	}

	return 0, zerr.With(zerr.Wrap(ErrNotInteger, "failed to parse input"), "input", s)
}

// NumberFromFloat converts a float input into a factorizable number.
// Non-integral values fail with ErrNotInteger.
func NumberFromFloat(f float64) (uint64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, zerr.With(zerr.Wrap(ErrNotInteger, "failed to convert float input"), "input", f)
	}
	if f < 2 {
		return 0, zerr.With(zerr.Wrap(ErrOutOfRange, "failed to convert float input"), "input", f)
	}
	if f >= math.MaxUint64 {
		return 0, zerr.With(zerr.Wrap(ErrNotInteger, "failed to convert float input"), "input", f)
	}
	return uint64(f), nil
}
