package solver_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linspan/solver"
)

var sinkS *solver.Solution

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 16, 32} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randomInts(rand.New(rand.NewSource(int64(n))), n, n+1, 50)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sol, err := solver.Solve(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = sol
			}
		})
	}
}

// BenchmarkSolveUnderdetermined stresses basis assembly: half the columns are free.
func BenchmarkSolveUnderdetermined(b *testing.B) {
	b.ReportAllocs()
	m := randomInts(rand.New(rand.NewSource(3)), 8, 17, 50)
	var err error
	for i := 0; i < b.N; i++ {
		if sinkS, err = solver.Solve(m); err != nil {
			b.Fatal(err)
		}
	}
}
