// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense, the kernels and callers.
// This file contains ONLY the Vector type and its value helpers. Every
// helper that returns a Vector returns a freshly allocated one; no *big.Rat
// is ever shared between the input and the output.
package matrix

import (
	"math/big"
	"strings"
)

// Vector is an ordered sequence of exact rationals (dimension = len).
// Vectors have value semantics throughout the package: constructors and
// accessors deep-copy, so mutating a returned Vector never affects its source.
type Vector []*big.Rat

// Formatting literals for Vector.String.
const (
	_vecOpen  = "("
	_vecClose = ")"
	_vecSep   = ", "
)

// NewVector returns a zero vector of length n (n ≤ 0 yields an empty vector).
// Complexity: O(n).
func NewVector(n int) Vector {
	if n <= 0 {
		return Vector{}
	}
	v := make(Vector, n)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v
}

// VectorOf builds a Vector from integer literals. Handy for tests and examples.
func VectorOf(xs ...int64) Vector {
	v := make(Vector, len(xs))
	for i, x := range xs {
		v[i] = big.NewRat(x, 1)
	}

	return v
}

// Clone returns a deep copy of v. A nil element is copied as zero.
// Complexity: O(n).
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = ratCopy(x)
	}

	return out
}

// Equal reports whether v and w have the same length and equal entries.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if ratOrZero(v[i]).Cmp(ratOrZero(w[i])) != 0 {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry of v is zero (true for an empty vector).
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != nil && x.Sign() != 0 {
			return false
		}
	}

	return true
}

// AddScaled performs v += k*w in place. Lengths must match.
//
// Errors: ErrDimensionMismatch when len(v) != len(w); ErrNilValue when k is nil.
// Complexity: O(n).
func (v Vector) AddScaled(k *big.Rat, w Vector) error {
	if k == nil {
		return matrixErrorf("Vector.AddScaled", ErrNilValue)
	}
	if len(v) != len(w) {
		return matrixErrorf("Vector.AddScaled", ErrDimensionMismatch)
	}
	if k.Sign() == 0 {
		return nil
	}
	var tmp big.Rat
	for i := range v {
		if v[i] == nil {
			v[i] = new(big.Rat)
		}
		tmp.Mul(k, ratOrZero(w[i]))
		v[i].Add(v[i], &tmp)
	}

	return nil
}

// String renders v as "(a, b, c)" using the shortest exact form of each
// entry ("3", "-1/2").
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString(_vecOpen)
	for i, x := range v {
		if i > 0 {
			b.WriteString(_vecSep)
		}
		b.WriteString(ratOrZero(x).RatString())
	}
	b.WriteString(_vecClose)

	return b.String()
}

// zeroRat is a read-only zero used where a nil entry must be treated as 0.
var zeroRat = new(big.Rat)

// ratOrZero returns x, or a shared read-only zero when x is nil.
// Callers MUST NOT mutate the result.
func ratOrZero(x *big.Rat) *big.Rat {
	if x == nil {
		return zeroRat
	}

	return x
}

// ratCopy returns a fresh copy of x (zero for nil).
func ratCopy(x *big.Rat) *big.Rat {
	return new(big.Rat).Set(ratOrZero(x))
}
