// Package matrix provides the dense numeric core of matlens: fixed-shape,
// row-major matrices with the small set of linear-algebra operations the
// interactive diagrams explain.
//
// What:
//
//   - Dense wraps a flat []float32 buffer with explicit Rows/Cols; element
//     (r,c) lives at offset r*Cols()+c.
//   - Shape is immutable after construction; Transpose, Mul, Row and Column
//     allocate fresh matrices instead of resizing.
//   - Dot, CanMultiply and Mul implement the vector/matrix arithmetic the
//     diagrams visualize, with left-to-right single-precision accumulation.
//
// Why float32: the diagrams teach arithmetic on small didactic matrices;
// single-precision matches the numeric semantics the explanations render,
// and nothing here targets large-scale numerical work.
//
// Errors:
//
//   - ErrBadShape: non-positive dimensions or a literal shorter than rows*cols.
//   - ErrOutOfRange: row or column index outside declared bounds.
//   - ErrDimensionMismatch: operand shapes incompatible (Dot, Mul, SetRow/SetColumn).
//   - ErrNonSquare: identity requested on a non-square matrix.
//
// All methods return these sentinels; check them via errors.Is.
package matrix
