// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// OperandKind discriminates the three shapes Augment accepts.
type OperandKind int

const (
	// OperandNone is the zero kind; Augment rejects it with ErrUnsupportedOperand.
	OperandNone OperandKind = iota

	// OperandMatrix appends every column of another Dense.
	OperandMatrix

	// OperandRows appends a grid given as row vectors (one per receiver row).
	OperandRows

	// OperandColumn appends a single vector as exactly one new column.
	OperandColumn
)

// String returns the kind name used in error messages.
func (k OperandKind) String() string {
	switch k {
	case OperandMatrix:
		return "FullMatrix"
	case OperandRows:
		return "RowVectors"
	case OperandColumn:
		return "SingleColumn"
	default:
		return "None"
	}
}

// Operand is the right-hand side of Augment. The caller picks the variant
// explicitly with FullMatrix, RowVectors or SingleColumn; the zero Operand
// is invalid.
type Operand struct {
	kind OperandKind
	mat  *Dense
	rows []Vector
	col  Vector
}

// FullMatrix wraps another matrix; its columns are appended.
func FullMatrix(m *Dense) Operand { return Operand{kind: OperandMatrix, mat: m} }

// RowVectors wraps a rectangular grid of row vectors; row i is appended to row i.
func RowVectors(rows []Vector) Operand { return Operand{kind: OperandRows, rows: rows} }

// SingleColumn wraps one vector that becomes one new column.
func SingleColumn(v Vector) Operand { return Operand{kind: OperandColumn, col: v} }

// Kind reports the operand variant.
func (o Operand) Kind() OperandKind { return o.kind }

// Augment returns a NEW matrix [m | other]. Neither m nor the operand is
// modified or aliased.
//
// Errors:
//   - ErrUnsupportedOperand for the zero Operand or FullMatrix(nil).
//   - ErrBadShape / ErrNilValue for an empty, ragged or nil-holding grid or column.
//   - ErrDimensionMismatch when the operand's row count differs from m.Rows().
//
// Complexity: O(r*(c + c')).
func (m *Dense) Augment(other Operand) (*Dense, error) {
	const tag = "Dense.Augment"

	var (
		right *Dense
		err   error
	)
	switch other.kind {
	case OperandMatrix:
		if other.mat == nil {
			return nil, matrixErrorf(tag, fmt.Errorf("%s(nil): %w", other.kind, ErrUnsupportedOperand))
		}
		right = other.mat
	case OperandRows:
		if right, err = FromRows(other.rows); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	case OperandColumn:
		if len(other.col) == 0 {
			return nil, matrixErrorf(tag, fmt.Errorf("%s: empty column: %w", other.kind, ErrBadShape))
		}
		if right, err = FromColumns([]Vector{other.col}); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	default:
		return nil, matrixErrorf(tag, fmt.Errorf("%s: %w", other.kind, ErrUnsupportedOperand))
	}

	if right.r != m.r {
		return nil, matrixErrorf(tag, fmt.Errorf("%s: rows %d, want %d: %w", other.kind, right.r, m.r, ErrDimensionMismatch))
	}

	cols := m.c + right.c
	res := &Dense{r: m.r, c: cols, data: make([]*big.Rat, m.r*cols)}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[i*cols+j] = new(big.Rat).Set(m.data[i*m.c+j])
		}
		for j = 0; j < right.c; j++ {
			res.data[i*cols+m.c+j] = new(big.Rat).Set(right.data[i*right.c+j])
		}
	}

	return res, nil
}
