package domain_test

import (
	"testing"

	"go.trai.ch/primes/internal/core/domain"
)

func TestDecomposition_Product(t *testing.T) {
	d := domain.Decomposition{2: 3, 3: 2, 173: 1}
	if got := d.Product(); got != 12456 {
		t.Errorf("Product() = %d, want 12456", got)
	}
}

func TestDecomposition_Add(t *testing.T) {
	d := domain.Decomposition{}
	d.Add(2)
	d.Add(2)
	d.Add(7)
	if d[2] != 2 || d[7] != 1 {
		t.Errorf("unexpected decomposition after adds: %v", d)
	}
}

func TestDecomposition_IsSinglePrime(t *testing.T) {
	if !(domain.Decomposition{191: 1}).IsSinglePrime(191) {
		t.Error("expected {191:1} to be a single prime")
	}
	if (domain.Decomposition{7: 1, 191: 1}).IsSinglePrime(191) {
		t.Error("expected {7:1, 191:1} not to be a single prime")
	}
	if (domain.Decomposition{2: 2}).IsSinglePrime(2) {
		t.Error("expected {2:2} not to be a single prime")
	}
}

func TestDecomposition_String(t *testing.T) {
	tests := []struct {
		d    domain.Decomposition
		want string
	}{
		{domain.Decomposition{2: 1, 3: 1, 7: 1}, "2 * 3 * 7"},
		{domain.Decomposition{3: 2, 11: 1}, "3^2 * 11"},
		{domain.Decomposition{2: 3, 3: 2, 173: 1}, "2^3 * 3^2 * 173"},
		{domain.Decomposition{191: 1}, "191"},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
