package matrix_test

import (
	"fmt"

	"github.com/karmanyte/matlens/matrix"
)

// ExampleDense_Mul multiplies the two 2×2 matrices every matlens tutorial
// opens with and prints the product.
func ExampleDense_Mul() {
	a, _ := matrix.NewFrom(2, 2, []float32{1, 2, 3, 4})
	b, _ := matrix.NewFrom(2, 2, []float32{5, 6, 7, 8})

	c, _ := a.Mul(b)
	fmt.Print(c)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleDense_Transpose shows that transposition swaps axes: the value at
// (1,2) of a 3×4 matrix reappears at (2,1) of its 4×3 transpose.
func ExampleDense_Transpose() {
	m, _ := matrix.NewFrom(3, 4, []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})

	tr := m.Transpose()
	orig, _ := m.At(1, 2)
	moved, _ := tr.At(2, 1)
	fmt.Println(tr.Shape(), orig, moved)

	// Output:
	// 4x3 7 7
}

// ExampleDense_Dot computes the scalar product of a row vector and a column
// vector, the quantity a multiplication diagram expands term by term.
func ExampleDense_Dot() {
	row, _ := matrix.NewFrom(1, 3, []float32{1, 2, 3})
	col, _ := matrix.NewFrom(3, 1, []float32{4, 5, 6})

	v, _ := row.Dot(col)
	fmt.Println(v)

	// Output:
	// 32
}
