// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is. No method panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & KINDS
// ----------------------
// Every message is prefixed with "matrix: ..." for consistency. Specific
// sentinels wrap one of three kind sentinels (ErrDimension, ErrIndex,
// ErrInvalidOperation) so callers may match either the precise condition or
// the broad category:
//
//	errors.Is(err, ErrBadShape)   // precise
//	errors.Is(err, ErrDimension)  // any shape problem
//
// Call sites add context with fmt.Errorf("Dense.<Method>(...): %w", ErrX).

// Kind sentinels.
var (
	// ErrDimension groups all shape violations: empty or ragged grids,
	// non-positive requested shapes, row-count mismatches.
	ErrDimension = errors.New("matrix: dimension error")

	// ErrIndex groups row/column indices outside [0, rows) / [0, cols).
	ErrIndex = errors.New("matrix: index error")

	// ErrInvalidOperation groups operations that are well-typed but not allowed.
	ErrInvalidOperation = errors.New("matrix: invalid operation")
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrDimension)

	// ErrBadShape is returned for an empty grid, a ragged grid, or a structural
	// operation whose result would have no rows or no columns.
	ErrBadShape = fmt.Errorf("%w: invalid shape", ErrDimension)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Augment with a different row count, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrDimension)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrIndex)

	// ErrSameRow is returned by AddRowMultiple when source and destination coincide.
	ErrSameRow = fmt.Errorf("%w: source and destination rows coincide", ErrInvalidOperation)

	// ErrUnsupportedOperand is returned by Augment for an Operand that carries
	// no value (zero Operand, nil matrix).
	ErrUnsupportedOperand = fmt.Errorf("%w: unsupported augment operand", ErrInvalidOperation)
)

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilValue indicates a nil *big.Rat was supplied where a value is required.
	ErrNilValue = errors.New("matrix: nil value")
)

// denseErrorf wraps an error with a uniform Dense context and call-site indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
