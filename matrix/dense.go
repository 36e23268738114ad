// Dense is the concrete, row-major matrix backing every matlens diagram.
// Elements live in a flat slice for cache friendliness and so the display
// layer can rely on the same offset law (r*cols + c) the buffer uses.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Dense is a row-major matrix of float32 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The shape never changes after construction; operations that would change
// it allocate a new Dense.
type Dense struct {
	r, c int       // number of rows and columns
	data []float32 // flat backing storage, length == r*c
}

// New creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape unless rows > 0 and cols > 0.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float32, rows*cols)}, nil
}

// NewFrom creates an r×c Dense matrix from a row-major literal.
// The literal must hold at least rows*cols values (ErrBadShape otherwise);
// exactly rows*cols are copied so the caller keeps ownership of values.
// Complexity: O(r*c).
func NewFrom(rows, cols int, values []float32) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) < rows*cols {
		return nil, fmt.Errorf("NewFrom(%d,%d): literal has %d of %d values: %w",
			rows, cols, len(values), rows*cols, ErrBadShape)
	}
	copy(m.data, values[:rows*cols])

	return m, nil
}

// Identity creates the n×n identity matrix.
// Returns ErrBadShape unless n > 0.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape renders the matrix shape as "RxC", the form used by error-state
// diagrams and explanations.
func (m *Dense) Shape() string {
	return fmt.Sprintf("%dx%d", m.r, m.c)
}

// offset computes the flat index for (row, col) or returns ErrOutOfRange.
// This is the single bounds gate for the package: every accessor routes
// through it so an overlong column can never alias into the next row.
// Complexity: O(1).
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("row %d of %d: %w", row, m.r, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("col %d of %d: %w", col, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange when either index is outside the declared shape.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	idx, err := m.offset(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col), preserving shape.
// Returns ErrOutOfRange when either index is outside the declared shape.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float32) error {
	idx, err := m.offset(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// MakeIdentity overwrites the receiver with the identity pattern in place:
// 1 on the diagonal, 0 elsewhere. Returns ErrNonSquare unless rows == cols.
// Complexity: O(r*c).
func (m *Dense) MakeIdentity() error {
	if m.r != m.c {
		return fmt.Errorf("MakeIdentity on %s: %w", m.Shape(), ErrNonSquare)
	}
	for i := range m.data {
		m.data[i] = 0
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// FormatValue renders a single element the way cell contents and
// explanations display it: shortest decimal form, single precision.
func FormatValue(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// String implements fmt.Stringer for easy debugging, one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(FormatValue(m.data[i*m.c+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
