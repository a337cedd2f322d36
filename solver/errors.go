// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

// ErrSolutionUnavailable is the kind sentinel for every failure to
// materialize a concrete solution from a Solution.
var ErrSolutionUnavailable = errors.New("solver: solution unavailable")

var (
	// ErrNoSolution is returned by FullSolution on an absent (inconsistent) solution.
	ErrNoSolution = fmt.Errorf("%w: system has no solution", ErrSolutionUnavailable)

	// ErrCoefficientCount is returned by FullSolution when the number of free
	// coefficients differs from the number of basis vectors.
	ErrCoefficientCount = fmt.Errorf("%w: coefficient count does not match basis size", ErrSolutionUnavailable)
)
