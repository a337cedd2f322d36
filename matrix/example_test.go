package matrix_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/linspan/matrix"
)

// ExampleDense_Augment builds the augmented system of
// x + y = 3, x - y = 1 from its coefficient matrix and right-hand side.
func ExampleDense_Augment() {
	a := matrix.MustFromInts([][]int64{{1, 1}, {1, -1}})
	ab, err := a.Augment(matrix.SingleColumn(matrix.VectorOf(3, 1)))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ab)

	// Output:
	// 1   1  3
	// 1  -1  1
}

// ExampleDense_AddRowMultiple eliminates below a pivot with an exact fraction.
func ExampleDense_AddRowMultiple() {
	m := matrix.MustFromInts([][]int64{{2, 1}, {3, 5}})
	_ = m.AddRowMultiple(1, 0, big.NewRat(-3, 2))
	fmt.Println(m)

	// Output:
	// 2    1
	// 0  7/2
}

// ExampleFromColumns places generator vectors side by side.
func ExampleFromColumns() {
	m, _ := matrix.FromColumns([]matrix.Vector{
		matrix.VectorOf(1, 1, 0),
		matrix.VectorOf(0, 1, 1),
	})
	fmt.Println(m.Shape())
	row, _ := m.Row(1)
	fmt.Println(row)

	// Output:
	// 3 2
	// (1, 1)
}
