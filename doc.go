// Package linspan decides whether a vector lies in the linear span of a set
// of generator vectors, over exact rational numbers, and describes every
// linear combination that produces it.
//
// 🚀 What is linspan?
//
//	The question "is f in span(g_1..g_k)?" is the linear system G·c = f with
//	the generators as the columns of G. linspan solves it by Gauss-Jordan
//	reduction on math/big rationals and returns the whole solution set:
//	  • a particular combination c_p, and
//	  • a basis φ_1..φ_m of the null space of G,
//	so that every combination is c_p + C1·φ_1 + … + Cm·φ_m.
//
// Under the hood, everything is organized in small subpackages:
//
//	matrix/      - Dense matrix of *big.Rat, elementary & structural operations
//	solver/      - ReduceToRREF, Solve, Solution (particular + fundamental system)
//	poly/        - coefficient-string parsing, alignment, polynomial printing
//	span/        - span-membership facade and linear-combination rendering
//	cmd/linspan/ - interactive terminal front-end
//
// Quick example (x + y + z = 3):
//
//	m, _ := matrix.FromInts([][]int64{{1, 1, 1, 3}})
//	sol, _ := solver.Solve(m)
//	fmt.Println(sol)
//	// particular solution X_p: (3, 0, 0)
//	// fundamental system:
//	//   φ[1] = (-1, 1, 0)
//	//   φ[2] = (-1, 0, 1)
//	// general solution: X_p + C1*φ[1] + C2*φ[2]
//
//	go get github.com/katalvlaran/linspan
package linspan
