// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) of exact rationals & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of *big.Rat with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: every method returns errors instead of panicking.
//   - Keep value semantics: no *big.Rat is ever shared with a caller (copy in, copy out).
//
// Ownership contract (part of the API, not an implementation detail):
//   - IN PLACE  : Set, SwapRows, SwapCols, MultiplyRow, AddRowMultiple mutate the receiver.
//   - NEW VALUE : FromRows, FromColumns, NewDense, Clone, CrossRow, CrossCol, Augment,
//     Row, Col, Data, At allocate; neither receiver nor arguments are modified or aliased.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Row/Col: O(c)/O(r); Clone/Data: O(r*c);
//     SwapRows: O(c); SwapCols: O(r); MultiplyRow/AddRowMultiple: O(c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxCol       = "Col"
	ctxCrossRow  = "CrossRow"
	ctxCrossCol  = "CrossCol"
	ctxSwapRows  = "SwapRows"
	ctxSwapCols  = "SwapCols"
	ctxMulRow    = "MultiplyRow"
	ctxAddRowMul = "AddRowMultiple"
)

// ---------- Formatting literals ----------
const (
	_fmtColSep = "  "
	_fmtRowSep = "\n"
)

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (both > 0 for every Dense reachable through the API).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//     Each cell holds its own *big.Rat; cells never alias each other or caller values.
type Dense struct {
	r, c int        // row and column counts
	data []*big.Rat // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public "empty" constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the buffer and fill every cell with a fresh zero.
//
// Errors:
//   - ErrInvalidDimensions (matches ErrDimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newDenseUnchecked(rows, cols), nil
}

// newDenseUnchecked allocates a zero-filled r×c Dense; callers guarantee r,c > 0.
func newDenseUnchecked(rows, cols int) *Dense {
	buf := make([]*big.Rat, rows*cols)
	for k := range buf {
		buf[k] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: buf}
}

// FromRows builds a matrix whose i-th row is rows[i]. Input is deep-copied.
// MAIN DESCRIPTION:
//   - Primary constructor from a grid of row vectors.
//
// Implementation:
//   - Stage 1: ValidateGrid (non-empty, rectangular, no nil entries).
//   - Stage 2: copy every value into a fresh buffer.
//
// Errors:
//   - ErrBadShape for an empty or ragged grid; ErrNilValue for nil entries.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows []Vector) (*Dense, error) {
	if err := ValidateGrid(rows); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]*big.Rat, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[i*c+j] = new(big.Rat).Set(rows[i][j])
		}
	}

	return m, nil
}

// FromColumns builds a matrix whose j-th column is cols[j].
// Equivalent to FromRows(transpose(cols)) with identical validation.
// Complexity: O(r*c).
func FromColumns(cols []Vector) (*Dense, error) {
	if err := ValidateGrid(cols); err != nil {
		return nil, matrixErrorf("FromColumns", err)
	}
	nc, nr := len(cols), len(cols[0])
	m := &Dense{r: nr, c: nc, data: make([]*big.Rat, nr*nc)}
	var i, j int
	for j = 0; j < nc; j++ {
		for i = 0; i < nr; i++ {
			m.data[i*nc+j] = new(big.Rat).Set(cols[j][i])
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns a copy of the value at (row, col) or ErrOutOfRange.
// Mutating the returned value never affects the matrix.
// Complexity: O(1) plus the copy of one rational.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return new(big.Rat).Set(m.data[off]), nil
}

// Set stores a copy of v at (row, col). IN PLACE.
//
// Errors: ErrOutOfRange for bounds; ErrNilValue for v == nil.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilValue)
	}
	m.data[off].Set(v)

	return nil
}

// Row returns a defensive copy of row i.
func (m *Dense) Row(i int) (Vector, error) {
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}

	return m.rowCopy(i), nil
}

// Col returns a defensive copy of column j.
func (m *Dense) Col(j int) (Vector, error) {
	if err := ValidateColIndex(m, j); err != nil {
		return nil, denseErrorf(ctxCol, 0, j, err)
	}
	out := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = new(big.Rat).Set(m.data[i*m.c+j])
	}

	return out, nil
}

// Data returns a full defensive copy of the grid, row by row. Never an alias.
// Complexity: O(r*c).
func (m *Dense) Data() []Vector {
	out := make([]Vector, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.rowCopy(i)
	}

	return out
}

// rowCopy copies row i; i must be valid.
func (m *Dense) rowCopy(i int) Vector {
	base := i * m.c
	out := make(Vector, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = new(big.Rat).Set(m.data[base+j])
	}

	return out
}

// Clone returns an independent deep copy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]*big.Rat, len(m.data))
	for k, x := range m.data {
		cp[k] = new(big.Rat).Set(x)
	}

	return &Dense{r: m.r, c: m.c, data: cp}
}

// CrossRow returns a NEW matrix with row i removed; the receiver is untouched.
// MAIN DESCRIPTION:
//   - Structural "strike out a row" used for minors and reduced systems.
//
// Errors:
//   - ErrOutOfRange when i is not a valid row.
//   - ErrBadShape when the receiver has a single row (result would be empty).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*c).
func (m *Dense) CrossRow(i int) (*Dense, error) {
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, denseErrorf(ctxCrossRow, i, 0, err)
	}
	if m.r == 1 {
		return nil, denseErrorf(ctxCrossRow, i, 0, ErrBadShape)
	}
	res := &Dense{r: m.r - 1, c: m.c, data: make([]*big.Rat, 0, (m.r-1)*m.c)}
	var r, j int
	for r = 0; r < m.r; r++ {
		if r == i {
			continue
		}
		for j = 0; j < m.c; j++ {
			res.data = append(res.data, new(big.Rat).Set(m.data[r*m.c+j]))
		}
	}

	return res, nil
}

// CrossCol returns a NEW matrix with column j removed; the receiver is untouched.
//
// Errors: ErrOutOfRange for an invalid column; ErrBadShape for a single-column receiver.
// Complexity: O(r*c).
func (m *Dense) CrossCol(j int) (*Dense, error) {
	if err := ValidateColIndex(m, j); err != nil {
		return nil, denseErrorf(ctxCrossCol, 0, j, err)
	}
	if m.c == 1 {
		return nil, denseErrorf(ctxCrossCol, 0, j, ErrBadShape)
	}
	res := &Dense{r: m.r, c: m.c - 1, data: make([]*big.Rat, 0, m.r*(m.c-1))}
	var i, c int
	for i = 0; i < m.r; i++ {
		for c = 0; c < m.c; c++ {
			if c == j {
				continue
			}
			res.data = append(res.data, new(big.Rat).Set(m.data[i*m.c+c]))
		}
	}

	return res, nil
}

// SwapRows exchanges rows a and b. IN PLACE. a == b is a no-op.
// Complexity: O(c); only pointers move, no rational is copied.
func (m *Dense) SwapRows(a, b int) error {
	if err := ValidateRowIndex(m, a); err != nil {
		return denseErrorf(ctxSwapRows, a, b, err)
	}
	if err := ValidateRowIndex(m, b); err != nil {
		return denseErrorf(ctxSwapRows, a, b, err)
	}
	if a == b {
		return nil
	}
	ba, bb := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[ba+j], m.data[bb+j] = m.data[bb+j], m.data[ba+j]
	}

	return nil
}

// SwapCols exchanges columns a and b. IN PLACE.
// Complexity: O(r).
func (m *Dense) SwapCols(a, b int) error {
	if err := ValidateColIndex(m, a); err != nil {
		return denseErrorf(ctxSwapCols, a, b, err)
	}
	if err := ValidateColIndex(m, b); err != nil {
		return denseErrorf(ctxSwapCols, a, b, err)
	}
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		m.data[base+a], m.data[base+b] = m.data[base+b], m.data[base+a]
	}

	return nil
}

// MultiplyRow scales row i by k. IN PLACE.
// k may be any rational, zero included; scaling by zero erases the row and
// is allowed.
//
// Errors: ErrOutOfRange; ErrNilValue for k == nil.
// Complexity: O(c).
func (m *Dense) MultiplyRow(i int, k *big.Rat) error {
	if err := ValidateRowIndex(m, i); err != nil {
		return denseErrorf(ctxMulRow, i, 0, err)
	}
	if k == nil {
		return denseErrorf(ctxMulRow, i, 0, ErrNilValue)
	}
	kk := new(big.Rat).Set(k)
	base := i * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j].Mul(m.data[base+j], kk)
	}

	return nil
}

// AddRowMultiple performs row[dest] += k * row[src]. IN PLACE.
//
// Errors:
//   - ErrOutOfRange for an invalid dest or src.
//   - ErrSameRow when dest == src (matches ErrInvalidOperation).
//   - ErrNilValue for k == nil.
//
// Complexity: O(c).
func (m *Dense) AddRowMultiple(dest, src int, k *big.Rat) error {
	if err := ValidateRowIndex(m, dest); err != nil {
		return denseErrorf(ctxAddRowMul, dest, src, err)
	}
	if err := ValidateRowIndex(m, src); err != nil {
		return denseErrorf(ctxAddRowMul, dest, src, err)
	}
	if dest == src {
		return denseErrorf(ctxAddRowMul, dest, src, ErrSameRow)
	}
	if k == nil {
		return denseErrorf(ctxAddRowMul, dest, src, ErrNilValue)
	}
	if k.Sign() == 0 {
		return nil
	}
	kk := new(big.Rat).Set(k)
	bd, bs := dest*m.c, src*m.c
	var tmp big.Rat
	for j := 0; j < m.c; j++ {
		tmp.Mul(m.data[bs+j], kk)
		m.data[bd+j].Add(m.data[bd+j], &tmp)
	}

	return nil
}

// String renders the matrix with each column right-aligned to its widest
// entry, columns separated by two spaces and rows by newlines:
//
//	1  -1/2  3
//	0     1  4
func (m *Dense) String() string {
	cells := make([]string, len(m.data))
	widths := make([]int, m.c)
	var i, j, k int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			k = i*m.c + j
			cells[k] = m.data[k].RatString()
			if len(cells[k]) > widths[j] {
				widths[j] = len(cells[k])
			}
		}
	}

	var b strings.Builder
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtColSep)
			}
			k = i*m.c + j
			b.WriteString(strings.Repeat(" ", widths[j]-len(cells[k])))
			b.WriteString(cells[k])
		}
	}

	return b.String()
}
