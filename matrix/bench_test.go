// Package matrix_test provides benchmarks for the Dense row operations,
// using deterministic random integer fill.
package matrix_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/katalvlaran/linspan/matrix"
)

// benchSizes are the matrix sizes to benchmark. Rational arithmetic is far
// slower than float64, so sizes stay small.
var benchSizes = []int{8, 32, 64}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV matrix.Vector
)

func BenchmarkAddRowMultiple(b *testing.B) {
	b.ReportAllocs()
	k := big.NewRat(-3, 7)
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := RandIntDense(b, 2, n, 100, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := m.AddRowMultiple(1, 0, k); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = m
		})
	}
}

func BenchmarkAugment(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := RandIntDense(b, n, n, 100, 11)
			col := RandIntDense(b, n, 1, 100, 22)
			c, err := col.Col(0)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := m.Augment(matrix.SingleColumn(c))
				if err != nil {
					b.Fatal(err)
				}
				sinkM = res
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := RandIntDense(b, n, n, 100, 42)
			x := matrix.VectorOf(make([]int64, n)...)
			for i := range x {
				x[i].SetFrac64(int64(i+1), int64(n))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(m, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}
