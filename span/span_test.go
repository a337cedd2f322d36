// SPDX-License-Identifier: MIT
// Package span_test contains unit tests for span membership and rendering.
package span_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/linspan/matrix"
	"github.com/katalvlaran/linspan/span"
	"github.com/stretchr/testify/require"
)

// TestCheckCombinations covers members, non-members and free parameters.
func TestCheckCombinations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target matrix.Vector
		gens   []matrix.Vector
		inSpan bool
		want   string
	}{
		{
			name:   "unique combination",
			target: matrix.VectorOf(1, 2, 1),
			gens:   []matrix.Vector{matrix.VectorOf(1, 1), matrix.VectorOf(0, 1, 1)},
			inSpan: true,
			want:   "f(x) = g_1(x) + g_2(x)",
		},
		{
			name:   "outside the span",
			target: matrix.VectorOf(0, 0, 1),
			gens:   []matrix.Vector{matrix.VectorOf(1)},
			inSpan: false,
			want:   "Vector f is not in the linear span of the vectors g_i.",
		},
		{
			name:   "dependent generators",
			target: matrix.VectorOf(2),
			gens:   []matrix.Vector{matrix.VectorOf(1), matrix.VectorOf(2)},
			inSpan: true,
			want:   "f(x) = 2*g_1(x) + C1*(-2*g_1(x) + g_2(x))",
		},
		{
			name:   "fractional coefficient",
			target: matrix.VectorOf(1),
			gens:   []matrix.Vector{matrix.VectorOf(2)},
			inSpan: true,
			want:   "f(x) = (1/2)*g_1(x)",
		},
		{
			name:   "zero target",
			target: matrix.VectorOf(0, 0),
			gens:   []matrix.Vector{matrix.VectorOf(1, 1)},
			inSpan: true,
			want:   "f(x) = 0",
		},
		{
			name:   "negative leading coefficient",
			target: matrix.VectorOf(-1, 3),
			gens:   []matrix.Vector{matrix.VectorOf(1), matrix.VectorOf(0, 1)},
			inSpan: true,
			want:   "f(x) = -g_1(x) + 3*g_2(x)",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res, err := span.Check(tc.target, tc.gens)
			require.NoError(t, err)
			require.Equal(t, tc.inSpan, res.InSpan())
			require.Equal(t, tc.inSpan, res.Solution().Exists())
			require.Equal(t, tc.want, res.Combination())
		})
	}
}

// TestCheckSystem verifies the layout [g_1 | ... | g_k | f] after padding.
func TestCheckSystem(t *testing.T) {
	t.Parallel()

	target := matrix.VectorOf(1, 2, 1)
	gens := []matrix.Vector{matrix.VectorOf(1, 1), matrix.VectorOf(0, 1, 1)}
	res, err := span.Check(target, gens)
	require.NoError(t, err)

	want := matrix.MustFromInts([][]int64{{1, 0, 1}, {1, 1, 2}, {0, 1, 1}})
	sys := res.System()
	require.True(t, matrix.Equal(want, sys), "got\n%s", sys)

	// System returns a copy
	require.NoError(t, sys.Set(0, 0, big.NewRat(7, 1)))
	require.True(t, matrix.Equal(want, res.System()))

	// inputs are not padded in place
	require.Len(t, gens[0], 2)
}

// TestCheckErrors covers every rejected input.
func TestCheckErrors(t *testing.T) {
	t.Parallel()

	_, err := span.Check(matrix.VectorOf(1), nil)
	require.ErrorIs(t, err, span.ErrNoGenerators)

	_, err = span.Check(matrix.Vector{}, []matrix.Vector{{}, {}})
	require.ErrorIs(t, err, span.ErrEmptyVector)

	_, err = span.Check(matrix.Vector{nil}, []matrix.Vector{matrix.VectorOf(1)})
	require.ErrorIs(t, err, matrix.ErrNilValue)

	_, err = span.Check(matrix.VectorOf(1), []matrix.Vector{matrix.VectorOf(1), {big.NewRat(1, 1), nil}})
	require.ErrorIs(t, err, matrix.ErrNilValue)
}

// TestCheckEmptyTarget pads an empty target to the zero vector.
func TestCheckEmptyTarget(t *testing.T) {
	t.Parallel()

	res, err := span.Check(matrix.Vector{}, []matrix.Vector{matrix.VectorOf(0, 1)})
	require.NoError(t, err)
	require.True(t, res.InSpan())
	require.Equal(t, "f(x) = 0", res.Combination())
}

// TestCheckOptions renames every symbol of the rendered answer.
func TestCheckOptions(t *testing.T) {
	t.Parallel()

	res, err := span.Check(matrix.VectorOf(2), []matrix.Vector{matrix.VectorOf(1), matrix.VectorOf(2)},
		span.WithTargetSymbol("p"),
		span.WithGeneratorSymbol("h"),
		span.WithConstantSymbol("K"),
		span.WithVariable("t"),
	)
	require.NoError(t, err)
	require.Equal(t, "p(t) = 2*h_1(t) + K1*(-2*h_1(t) + h_2(t))", res.Combination())

	res, err = span.Check(matrix.VectorOf(0, 1), []matrix.Vector{matrix.VectorOf(1)},
		span.WithTargetSymbol("p"), span.WithGeneratorSymbol("h"))
	require.NoError(t, err)
	require.Equal(t, "Vector p is not in the linear span of the vectors h_i.", res.Combination())
}
