// SPDX-License-Identifier: MIT
// Package matrix provides exact linear-algebra kernels on Dense: transpose,
// product, matrix-vector product and equality. All kernels perform strict
// fail-fast validation, never mutate their operands and return freshly
// allocated results.
//
// Notes:
//   - Arithmetic is exact (big.Rat); no tolerances are involved anywhere.
//   - Loop orders are fixed (i→j→k) so results and allocation patterns are reproducible.

package matrix

import "math/big"

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opMul       = "Mul"
	opMatVec    = "MatVec"
)

// Transpose returns a new matrix mᵀ. The original is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := &Dense{r: m.c, c: m.r, data: make([]*big.Rat, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = new(big.Rat).Set(m.data[i*m.c+j])
		}
	}

	return res, nil
}

// Mul performs the matrix product C = A × B.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	res := newDenseUnchecked(a.r, b.c)
	var (
		i, j, k int
		tmp     big.Rat
		acc     *big.Rat
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc = res.data[i*b.c+j]
			for k = 0; k < a.c; k++ {
				tmp.Mul(a.data[i*a.c+k], b.data[k*b.c+j])
				acc.Add(acc, &tmp)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols(); x has no nil entries.
// Complexity: Time O(r*c), Space O(r).
func MatVec(m *Dense, x Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := NewVector(m.r)
	var (
		i, j int
		tmp  big.Rat
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if x[j].Sign() == 0 {
				continue
			}
			tmp.Mul(m.data[i*m.c+j], x[j])
			y[i].Add(y[i], &tmp)
		}
	}

	return y, nil
}

// Equal reports whether a and b have the same shape and identical entries.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k].Cmp(b.data[k]) != 0 {
			return false
		}
	}

	return true
}
