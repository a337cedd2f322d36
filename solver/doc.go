// Package solver solves linear systems [A | b] over exact rationals and
// describes the entire solution set.
//
// 🚀 What does it compute?
//
//	ReduceToRREF brings an augmented matrix to reduced row-echelon form in
//	place and reports rank(A), rank([A|b]) and the pivot columns.
//	Solve wraps it on a private copy and returns a Solution:
//	  • absent            - rank(A) < rank([A|b]), the system is inconsistent
//	  • unique            - a particular solution, empty basis
//	  • underdetermined   - a particular solution plus a null-space basis
//	                        ("fundamental system"), one vector per free column
//
// ⚙️ Usage:
//
//	m, _ := matrix.FromInts([][]int64{{1, 1, 1, 3}})
//	sol, _ := solver.Solve(m)
//	x, _ := sol.FullSolution(big.NewRat(2, 1), big.NewRat(-1, 1))
//
// Every solution is X_p + Σ Cᵢ·φᵢ. Arithmetic is exact, so A·X_p == b and
// A·φᵢ == 0 hold with rational equality, never approximately.
//
// Performance:
//
//   - Time:   O(r·c·min(r,c)) rational operations
//   - Memory: one copy of the input matrix
package solver
