package span_test

import (
	"fmt"

	"github.com/katalvlaran/linspan/matrix"
	"github.com/katalvlaran/linspan/poly"
	"github.com/katalvlaran/linspan/span"
)

// ExampleCheck asks whether x² + 2x + 1 is a combination of 1 + x and x + x².
func ExampleCheck() {
	f, _ := poly.ParseCoeffs("1 2 1")
	g1, _ := poly.ParseCoeffs("1 1")
	g2, _ := poly.ParseCoeffs("0 1 1")

	res, err := span.Check(f, []matrix.Vector{g1, g2})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.InSpan())
	fmt.Println(res.Combination())

	// Output:
	// true
	// f(x) = g_1(x) + g_2(x)
}

// ExampleCheck_freeParameters shows a target reachable in infinitely many ways.
func ExampleCheck_freeParameters() {
	res, _ := span.Check(matrix.VectorOf(2), []matrix.Vector{matrix.VectorOf(1), matrix.VectorOf(2)})
	fmt.Println(res.Combination())

	// Output:
	// f(x) = 2*g_1(x) + C1*(-2*g_1(x) + g_2(x))
}
