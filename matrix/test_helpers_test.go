// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for Dense and kernels.
//   • Compare rationals exactly via their canonical RatString form.

package matrix_test

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linspan/matrix"
)

// MustDense ALLOCATES an r×c zero *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustInts BUILDS a *Dense from an integer grid or fails the test.
// Implementation:
//   - Stage 1: matrix.FromInts(grid).
//   - Stage 2: t.Fatalf on error.
//
// Notes:
//   - Prefer for small exact-equality tests.
func MustInts(t testing.TB, grid [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(grid)
	if err != nil {
		t.Fatalf("FromInts(%v): %v", grid, err)
	}

	return m
}

// RandIntDense BUILDS an r×c matrix with deterministic integer entries in
// [-lim, lim] for a fixed seed.
func RandIntDense(t testing.TB, r, c int, lim int64, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]int64, r)
	for i := range grid {
		grid[i] = make([]int64, c)
		for j := range grid[i] {
			grid[i][j] = rng.Int63n(2*lim+1) - lim
		}
	}

	return MustInts(t, grid)
}

// MustSet WRITES v at (i,j) or fails the test.
func MustSet(t testing.TB, m *matrix.Dense, i, j int, v *big.Rat) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt READS (i,j) as its canonical string ("3", "-1/2") or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) string {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v.RatString()
}

// CompareExact ASSERTS that m has the shape of want and that every entry's
// RatString equals the expected string.
func CompareExact(t testing.TB, want [][]string, m *matrix.Dense) {
	t.Helper()
	if m.Rows() != len(want) || (len(want) > 0 && m.Cols() != len(want[0])) {
		t.Fatalf("shape: got %dx%d, want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	var i, j int
	for i = range want {
		for j = range want[i] {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("(%d,%d): got %s, want %s\n%s", i, j, got, want[i][j], m)
			}
		}
	}
}

// CompareInts is CompareExact for integer-valued expectations.
func CompareInts(t testing.TB, want [][]int64, m *matrix.Dense) {
	t.Helper()
	if !matrix.Equal(MustInts(t, want), m) {
		t.Fatalf("matrix mismatch:\nwant\n%s\ngot\n%s", MustInts(t, want), m)
	}
}

// AssertErrorIs CHECKS errors.Is(err, target) with a readable failure.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected errors.Is(%v, %v)", err, target)
	}
}
