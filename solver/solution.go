// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/linspan/matrix"
)

// Rendering literals for Solution.String.
const (
	_emptySet        = "∅"
	_particularLabel = "particular solution X_p: "
	_basisLabel      = "fundamental system:"
	_generalLabel    = "general solution: X_p"
)

// Solution is the full solution set of a linear system: either absent
// (inconsistent system) or a particular solution plus zero or more
// null-space basis vectors. A Solution is immutable; every accessor returns copies.
type Solution struct {
	exists     bool
	particular matrix.Vector
	basis      []matrix.Vector
}

// newSolution takes ownership of particular and basis.
func newSolution(particular matrix.Vector, basis []matrix.Vector) *Solution {
	if particular == nil {
		particular = matrix.Vector{}
	}

	return &Solution{exists: true, particular: particular, basis: basis}
}

// Exists reports whether the system has at least one solution.
func (s *Solution) Exists() bool { return s.exists }

// Particular returns a copy of the particular solution (free variables set
// to 0) and true, or (nil, false) when no solution exists.
func (s *Solution) Particular() (matrix.Vector, bool) {
	if !s.exists {
		return nil, false
	}

	return s.particular.Clone(), true
}

// Basis returns copies of the null-space basis vectors, ordered by
// ascending free-column index. Empty for unique or absent solutions.
func (s *Solution) Basis() []matrix.Vector {
	out := make([]matrix.Vector, len(s.basis))
	for i, v := range s.basis {
		out[i] = v.Clone()
	}

	return out
}

// NumVars returns the number of unknowns (0 when no solution exists).
func (s *Solution) NumVars() int { return len(s.particular) }

// Dim returns the number of free parameters, i.e. the basis size.
func (s *Solution) Dim() int { return len(s.basis) }

// FullSolution materializes one concrete solution.
//
// With no coefficients it returns a copy of the particular solution. An
// explicitly passed empty slice (FullSolution(cs...) with len(cs) == 0) is
// indistinguishable from omitted coefficients and behaves the same way,
// even when Dim() > 0.
// Otherwise exactly Dim() coefficients are required and the result is
// particular + Σ coeffs[i]·basis[i], computed exactly.
//
// Errors:
//   - ErrNoSolution when the system is inconsistent.
//   - ErrCoefficientCount when len(coeffs) != Dim().
//   - matrix.ErrNilValue for a nil coefficient.
func (s *Solution) FullSolution(coeffs ...*big.Rat) (matrix.Vector, error) {
	if !s.exists {
		return nil, ErrNoSolution
	}
	if len(coeffs) == 0 {
		return s.particular.Clone(), nil
	}
	if len(coeffs) != len(s.basis) {
		return nil, fmt.Errorf("FullSolution: got %d, want %d: %w", len(coeffs), len(s.basis), ErrCoefficientCount)
	}

	res := s.particular.Clone()
	for i, c := range coeffs {
		if err := res.AddScaled(c, s.basis[i]); err != nil {
			return nil, fmt.Errorf("FullSolution: coefficient %d: %w", i, err)
		}
	}

	return res, nil
}

// String renders the solution for humans:
//
//	particular solution X_p: (3, 0, 0)
//	fundamental system:
//	  φ[1] = (-1, 1, 0)
//	  φ[2] = (-1, 0, 1)
//	general solution: X_p + C1*φ[1] + C2*φ[2]
//
// An absent solution renders as "∅".
func (s *Solution) String() string {
	if !s.exists {
		return _emptySet
	}
	var b strings.Builder
	b.WriteString(_particularLabel)
	b.WriteString(s.particular.String())
	if len(s.basis) == 0 {
		return b.String()
	}

	b.WriteString("\n" + _basisLabel + "\n")
	for i, v := range s.basis {
		fmt.Fprintf(&b, "  φ[%d] = %s\n", i+1, v)
	}
	b.WriteString(_generalLabel)
	for i := range s.basis {
		fmt.Fprintf(&b, " + C%d*φ[%d]", i+1, i+1)
	}

	return b.String()
}
