// SPDX-License-Identifier: MIT
// Package span - linear-span membership of a target vector.
//
// Check answers "is f a linear combination of g_1..g_k?" by solving
// G·c = f, where the generators are the columns of G:
//
//	[ g_1 | g_2 | ... | g_k | f ]
//
// Vectors of different length (polynomials of different degree) are
// right-padded with zeros first.

package span

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/linspan/matrix"
	"github.com/katalvlaran/linspan/poly"
	"github.com/katalvlaran/linspan/solver"
)

var (
	// ErrNoGenerators is returned when Check receives no generator vectors.
	ErrNoGenerators = errors.New("span: no generator vectors")

	// ErrEmptyVector is returned when the target and every generator are empty.
	ErrEmptyVector = errors.New("span: all vectors are empty")
)

const opCheck = "span.Check"

// Result is the outcome of Check: the augmented system that was solved and
// its Solution, plus the rendering configuration.
type Result struct {
	system   *matrix.Dense
	solution *solver.Solution
	opts     Options
}

// Check decides whether target lies in the span of generators and describes
// every combination that produces it.
//
// Errors:
//   - ErrNoGenerators, ErrEmptyVector.
//   - matrix.ErrNilValue when an input vector holds a nil entry.
//
// A target outside the span is not an error: Result.InSpan reports false.
func Check(target matrix.Vector, generators []matrix.Vector, opts ...Option) (*Result, error) {
	if len(generators) == 0 {
		return nil, fmt.Errorf("%s: %w", opCheck, ErrNoGenerators)
	}

	if err := rejectNil(target, generators); err != nil {
		return nil, fmt.Errorf("%s: %w", opCheck, err)
	}
	aligned := poly.Align(append([]matrix.Vector{target}, generators...))
	if len(aligned[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", opCheck, ErrEmptyVector)
	}

	g, err := matrix.FromColumns(aligned[1:])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCheck, err)
	}
	system, err := g.Augment(matrix.SingleColumn(aligned[0]))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCheck, err)
	}
	sol, err := solver.Solve(system)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCheck, err)
	}

	return &Result{system: system, solution: sol, opts: gatherOptions(opts...)}, nil
}

// rejectNil reports nil entries; Align would otherwise silently read them as zero.
func rejectNil(target matrix.Vector, generators []matrix.Vector) error {
	for j, x := range target {
		if x == nil {
			return fmt.Errorf("target[%d]: %w", j, matrix.ErrNilValue)
		}
	}
	for i, g := range generators {
		for j, x := range g {
			if x == nil {
				return fmt.Errorf("generator %d [%d]: %w", i+1, j, matrix.ErrNilValue)
			}
		}
	}

	return nil
}

// System returns a copy of the augmented matrix [G | f] that was solved.
func (r *Result) System() *matrix.Dense { return r.system.Clone() }

// Solution returns the solution of G·c = f (immutable).
func (r *Result) Solution() *solver.Solution { return r.solution }

// InSpan reports whether the target is a linear combination of the generators.
func (r *Result) InSpan() bool { return r.solution.Exists() }

// Combination renders the final answer, e.g.
//
//	f(x) = 2*g_1(x) - (1/2)*g_3(x) + C1*(-g_1(x) + g_2(x))
//
// or a sentence stating that the target is outside the span.
func (r *Result) Combination() string {
	o := r.opts
	particular, ok := r.solution.Particular()
	if !ok {
		return fmt.Sprintf("Vector %s is not in the linear span of the vectors %s_i.", o.target, o.generator)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s(%s) = %s", o.target, o.variable, formatCombination(particular, o))
	for i, v := range r.solution.Basis() {
		fmt.Fprintf(&b, " + %s%d*(%s)", o.constant, i+1, formatCombination(v, o))
	}

	return b.String()
}
