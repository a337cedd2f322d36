// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors and kernels minimal by delegating grid/index/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing (except the error on failure).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator documents what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateGrid ensures rows form a non-empty rectangular grid of non-nil values.
//
// Checks, in order:
//   - at least one row                → ErrBadShape
//   - the first row is non-empty      → ErrBadShape
//   - every row has the same length   → ErrBadShape
//   - every entry is non-nil          → ErrNilValue
//
// Complexity: O(r*c).
func ValidateGrid(rows []Vector) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateGrid: no rows", ErrBadShape)
	}
	cols := len(rows[0])
	if cols == 0 {
		return validatorErrorf("ValidateGrid: empty row", ErrBadShape)
	}
	var i, j int
	for i = range rows {
		if len(rows[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateGrid: row %d has %d values, want %d", i, len(rows[i]), cols), ErrBadShape)
		}
		for j = range rows[i] {
			if rows[i][j] == nil {
				return validatorErrorf(fmt.Sprintf("ValidateGrid: (%d,%d)", i, j), ErrNilValue)
			}
		}
	}

	return nil
}

// ValidateRowIndex ensures 0 ≤ i < m.Rows(). Assumes m is non-nil.
// Complexity: O(1).
func ValidateRowIndex(m *Dense, i int) error {
	if i < 0 || i >= m.r {
		return validatorErrorf(fmt.Sprintf("ValidateRowIndex: row %d of %d", i, m.r), ErrOutOfRange)
	}

	return nil
}

// ValidateColIndex ensures 0 ≤ j < m.Cols(). Assumes m is non-nil.
// Complexity: O(1).
func ValidateColIndex(m *Dense, j int) error {
	if j < 0 || j >= m.c {
		return validatorErrorf(fmt.Sprintf("ValidateColIndex: col %d of %d", j, m.c), ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Errors: ErrNilMatrix if either is nil, ErrDimensionMismatch otherwise.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n and that x carries no nil entries.
// Complexity: O(n).
func ValidateVecLen(x Vector, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len %d, want %d", len(x), n), ErrDimensionMismatch)
	}
	for i := range x {
		if x[i] == nil {
			return validatorErrorf(fmt.Sprintf("ValidateVecLen: x[%d]", i), ErrNilValue)
		}
	}

	return nil
}
