// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing constructors on top of NewDense/FromRows.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

import (
	"fmt"
	"math/big"
)

// NewZeros returns a new zero-initialized rows×cols matrix.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i].SetInt64(1)
	}

	return I, nil
}

// FromInts builds a matrix from an integer grid, converting every entry to
// an exact rational. Validation matches FromRows.
func FromInts(grid [][]int64) (*Dense, error) {
	rows := make([]Vector, len(grid))
	for i, row := range grid {
		rows[i] = VectorOf(row...)
	}
	m, err := FromRows(rows)
	if err != nil {
		return nil, matrixErrorf("FromInts", err)
	}

	return m, nil
}

// MustFromInts is like FromInts but panics on error. Intended for literals
// in tests and examples only.
func MustFromInts(grid [][]int64) *Dense {
	m, err := FromInts(grid)
	if err != nil {
		panic(fmt.Sprintf("matrix: MustFromInts: %v", err))
	}

	return m
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.r, m.c)
}

// Rat is a small convenience for building the rational a/b.
// It panics on b == 0, as big.NewRat does.
func Rat(a, b int64) *big.Rat { return big.NewRat(a, b) }
