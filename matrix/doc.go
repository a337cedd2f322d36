// Package matrix offers a dense matrix of exact rationals (math/big.Rat)
// with validated elementary operations.
//
// The matrix package provides:
//
//   - Dense: a row-major r×c grid built with FromRows, FromColumns, NewDense
//     or FromInts, with bounds-checked At/Set and defensive Row/Col/Data copies.
//   - Elementary row/column operations (SwapRows, SwapCols, MultiplyRow,
//     AddRowMultiple) that mutate the receiver IN PLACE, as needed by
//     elimination loops.
//   - Structural operations (CrossRow, CrossCol, Augment, Clone) that always
//     return a NEW matrix and never alias their receiver or arguments.
//   - Exact kernels: Transpose, Mul, MatVec, Equal.
//
// Augment takes an explicit Operand variant instead of inspecting types:
//
//	sys, err := matrix.FromColumns(gens)
//	aug, err := sys.Augment(matrix.SingleColumn(target))
//
// Errors are package sentinels grouped by kind (ErrDimension, ErrIndex,
// ErrInvalidOperation); match them with errors.Is.
package matrix
