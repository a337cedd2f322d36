// SPDX-License-Identifier: MIT
// Package solver - Gauss-Jordan reduction and the general solution of [A | b].
//
// Purpose:
//   - ReduceToRREF: reduce an augmented matrix IN PLACE to reduced row-echelon form.
//   - Solve: build the full solution set (particular + null-space basis) from a private copy.
//
// Determinism:
//   - Columns are scanned left to right; the pivot is the topmost non-zero entry
//     at or below the current work row. There is no magnitude-based pivoting:
//     arithmetic is exact, so the choice only fixes which rows end up where.

package solver

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/linspan/matrix"
)

// Operation tags for error wrapping.
const (
	opReduce = "ReduceToRREF"
	opSolve  = "Solve"
	opRank   = "Rank"
)

// Reduction summarizes a Gauss-Jordan pass over [A | b].
type Reduction struct {
	// RankA is the rank of the coefficient block A (all columns but the last).
	RankA int

	// RankAug is the rank of the whole augmented matrix. It equals the number
	// of pivot rows, a pivot in the last column included.
	RankAug int

	// PivotCols lists the coefficient columns holding a leading 1, ascending.
	// PivotCols[k] is the pivot column of reduced row k.
	PivotCols []int
}

// Consistent reports whether the reduced system has at least one solution.
func (r Reduction) Consistent() bool { return r.RankA == r.RankAug }

// ReduceToRREF performs Gauss-Jordan elimination on m IN PLACE.
// MAIN DESCRIPTION:
//   - The last column is treated as the right-hand side; all others are coefficients.
//   - After the call every pivot is 1 and is the only non-zero entry of its column.
//
// Implementation:
//   - Stage 1: for each column c (left to right) find the first row ≥ workRow with m[row,c] ≠ 0.
//   - Stage 2: no such row → column c has no pivot, workRow stays.
//   - Stage 3: otherwise record the pivot (coefficient columns only), swap it into
//     workRow, divide the row by the pivot, clear column c in every other row, advance workRow.
//
// Errors:
//   - ErrNilMatrix (from matrix validation). Well-formed input never fails otherwise.
//
// Notes:
//   - The mutation is irreversible; callers that need the original must Clone first
//     (Solve does). Not safe for concurrent use of the same matrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)) rational operations, Space O(c) besides the matrix.
func ReduceToRREF(m *matrix.Dense) (Reduction, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Reduction{}, fmt.Errorf("%s: %w", opReduce, err)
	}
	rows, cols := m.Shape()
	red := Reduction{PivotCols: make([]int, 0, cols)}

	var (
		workRow, c, p int
		found         bool
		pivot         *big.Rat
		err           error
	)
	for c = 0; c < cols && workRow < rows; c++ {
		p, found, err = findPivot(m, workRow, c)
		if err != nil {
			return Reduction{}, fmt.Errorf("%s: %w", opReduce, err)
		}
		if !found {
			continue
		}
		if c < cols-1 {
			red.RankA++
			red.PivotCols = append(red.PivotCols, c)
		}

		if pivot, err = m.At(p, c); err != nil {
			return Reduction{}, fmt.Errorf("%s: %w", opReduce, err)
		}
		if err = m.SwapRows(p, workRow); err != nil {
			return Reduction{}, fmt.Errorf("%s: %w", opReduce, err)
		}
		if err = m.MultiplyRow(workRow, pivot.Inv(pivot)); err != nil {
			return Reduction{}, fmt.Errorf("%s: %w", opReduce, err)
		}
		if err = eliminateColumn(m, workRow, c); err != nil {
			return Reduction{}, fmt.Errorf("%s: %w", opReduce, err)
		}
		workRow++
	}
	red.RankAug = workRow

	return red, nil
}

// findPivot returns the first row in [start, rows) with a non-zero entry in col.
func findPivot(m *matrix.Dense, start, col int) (int, bool, error) {
	var (
		v   *big.Rat
		err error
	)
	for row := start; row < m.Rows(); row++ {
		if v, err = m.At(row, col); err != nil {
			return 0, false, err
		}
		if v.Sign() != 0 {
			return row, true, nil
		}
	}

	return 0, false, nil
}

// eliminateColumn clears col in every row except pivotRow, whose entry in col is 1.
func eliminateColumn(m *matrix.Dense, pivotRow, col int) error {
	var (
		f   *big.Rat
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		if i == pivotRow {
			continue
		}
		if f, err = m.At(i, col); err != nil {
			return err
		}
		if f.Sign() == 0 {
			continue
		}
		if err = m.AddRowMultiple(i, pivotRow, f.Neg(f)); err != nil {
			return err
		}
	}

	return nil
}

// Solve returns the full solution set of the augmented system [A | b].
// MAIN DESCRIPTION:
//   - Works on a private copy; the caller's matrix is never mutated.
//   - Inconsistent systems are a normal outcome: an absent Solution, nil error.
//
// Implementation:
//   - Stage 1: Clone, ReduceToRREF; numVars = cols-1.
//   - Stage 2: RankA != RankAug → absent Solution.
//   - Stage 3: particular[pivotCol_k] = R[k, numVars]; free variables stay 0.
//   - Stage 4: RankA == numVars → unique solution, empty basis.
//   - Stage 5: per free column f (ascending): v[f]=1, v[pivotCol_k] = -R[k, f].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Reduction cost plus O(numVars²) to assemble the basis.
func Solve(m *matrix.Dense) (*Solution, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	work := m.Clone()
	red, err := ReduceToRREF(work)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	numVars := work.Cols() - 1

	if !red.Consistent() {
		return &Solution{}, nil
	}

	particular := matrix.NewVector(numVars)
	for row, pc := range red.PivotCols {
		if particular[pc], err = work.At(row, numVars); err != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, err)
		}
	}

	if red.RankA == numVars {
		return newSolution(particular, nil), nil
	}

	isPivot := make([]bool, numVars)
	for _, pc := range red.PivotCols {
		isPivot[pc] = true
	}
	basis := make([]matrix.Vector, 0, numVars-red.RankA)
	var v matrix.Vector
	for f := 0; f < numVars; f++ {
		if isPivot[f] {
			continue
		}
		v = matrix.NewVector(numVars)
		v[f].SetInt64(1)
		for row, pc := range red.PivotCols {
			if v[pc], err = work.At(row, f); err != nil {
				return nil, fmt.Errorf("%s: %w", opSolve, err)
			}
			v[pc].Neg(v[pc])
		}
		basis = append(basis, v)
	}

	return newSolution(particular, basis), nil
}

// Rank returns the rank of m (all columns, none treated as a right-hand side).
// m is not mutated.
func Rank(m *matrix.Dense) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opRank, err)
	}
	red, err := ReduceToRREF(m.Clone())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opRank, err)
	}

	return red.RankAug, nil
}
