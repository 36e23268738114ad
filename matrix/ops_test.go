package matrix_test

import (
	"testing"

	"github.com/karmanyte/matlens/matrix"
	"github.com/stretchr/testify/require"
)

// mustFrom builds a matrix from a literal or fails the test.
func mustFrom(t *testing.T, rows, cols int, vals []float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFrom(rows, cols, vals)
	require.NoError(t, err)
	return m
}

func TestRowColumn_Copies(t *testing.T) {
	m := mustFrom(t, 2, 3, []float32{1, 2, 3, 4, 5, 6})

	r, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, 1, r.Rows())
	require.Equal(t, 3, r.Cols())
	require.Equal(t, "[4, 5, 6]\n", r.String())

	c, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 1, c.Cols())
	require.Equal(t, "[3]\n[6]\n", c.String())

	// Copies, not views: mutating the extraction leaves the source intact.
	require.NoError(t, r.Set(0, 0, 99))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, float32(4), v)
}

func TestRowColumn_OutOfRange(t *testing.T) {
	m := mustFrom(t, 2, 3, []float32{1, 2, 3, 4, 5, 6})
	_, err := m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Column(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSetRowSetColumn(t *testing.T) {
	m := mustFrom(t, 2, 2, []float32{1, 2, 3, 4})

	require.NoError(t, m.SetRow(0, []float32{7, 8}))
	require.Equal(t, "[7, 8]\n[3, 4]\n", m.String())

	require.NoError(t, m.SetColumn(1, []float32{5, 6}))
	require.Equal(t, "[7, 5]\n[3, 6]\n", m.String())

	require.ErrorIs(t, m.SetRow(2, []float32{0, 0}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetRow(0, []float32{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetColumn(-1, []float32{0, 0}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetColumn(0, []float32{1}), matrix.ErrDimensionMismatch)
}

func TestTranspose_SwapsAxes(t *testing.T) {
	// 3×4 with values 1..12 row-major.
	m := mustFrom(t, 3, 4, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	tr := m.Transpose()
	require.Equal(t, 4, tr.Rows())
	require.Equal(t, 3, tr.Cols())
	for i := 0; i < tr.Rows(); i++ {
		for j := 0; j < tr.Cols(); j++ {
			a, err := tr.At(i, j)
			require.NoError(t, err)
			b, err := m.At(j, i)
			require.NoError(t, err)
			require.Equal(t, b, a, "(%d,%d)", i, j)
		}
	}
	// (1,2) holds 7; it must land at (2,1).
	v, err := tr.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, float32(7), v)
}

func TestTranspose_Involution(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 4}, {3, 1}, {2, 3}, {4, 4}} {
		vals := make([]float32, shape[0]*shape[1])
		for i := range vals {
			vals[i] = float32(i) * 1.5
		}
		m := mustFrom(t, shape[0], shape[1], vals)
		back := m.Transpose().Transpose()
		require.Equal(t, m.Rows(), back.Rows())
		require.Equal(t, m.Cols(), back.Cols())
		require.Equal(t, m.String(), back.String(), "shape %v", shape)
	}
}

func TestDot(t *testing.T) {
	row := mustFrom(t, 1, 3, []float32{1, 2, 3})
	col := mustFrom(t, 3, 1, []float32{4, 5, 6})

	// Orientation-independent: 1×3 against 3×1.
	v, err := row.Dot(col)
	require.NoError(t, err)
	require.Equal(t, float32(32), v)

	short := mustFrom(t, 1, 2, []float32{1, 2})
	_, err = row.Dot(short)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = row.Dot(nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCanMultiply(t *testing.T) {
	cases := []struct {
		ar, ac, br, bc int
		want           bool
	}{
		{1, 1, 1, 1, true},
		{2, 2, 2, 2, true},
		{2, 3, 3, 5, true},
		{4, 2, 3, 4, false},
		{3, 4, 3, 4, false},
	}
	for _, tc := range cases {
		a, err := matrix.New(tc.ar, tc.ac)
		require.NoError(t, err)
		b, err := matrix.New(tc.br, tc.bc)
		require.NoError(t, err)
		require.Equal(t, tc.want, a.CanMultiply(b), "%dx%d * %dx%d", tc.ar, tc.ac, tc.br, tc.bc)
	}
}

func TestMul_KnownProduct(t *testing.T) {
	a := mustFrom(t, 2, 2, []float32{1, 2, 3, 4})
	b := mustFrom(t, 2, 2, []float32{5, 6, 7, 8})
	c, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, "[19, 22]\n[43, 50]\n", c.String())
}

func TestMul_AgreesWithRowColumnDot(t *testing.T) {
	a := mustFrom(t, 2, 3, []float32{1, 2, 3, 4, 5, 6})
	b := mustFrom(t, 3, 4, []float32{7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18})
	c, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 4, c.Cols())

	for i := 0; i < c.Rows(); i++ {
		for j := 0; j < c.Cols(); j++ {
			row, err := a.Row(i)
			require.NoError(t, err)
			col, err := b.Column(j)
			require.NoError(t, err)
			want, err := row.Dot(col)
			require.NoError(t, err)
			got, err := c.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want, got, "(%d,%d)", i, j)
		}
	}
}

func TestMul_DimensionMismatch(t *testing.T) {
	a, err := matrix.New(4, 2)
	require.NoError(t, err)
	b, err := matrix.New(3, 4)
	require.NoError(t, err)
	_, err = a.Mul(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Mul(nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_Identity(t *testing.T) {
	a := mustFrom(t, 2, 2, []float32{1, 2, 3, 4})
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	left, err := id.Mul(a)
	require.NoError(t, err)
	right, err := a.Mul(id)
	require.NoError(t, err)
	require.Equal(t, a.String(), left.String())
	require.Equal(t, a.String(), right.String())
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "1", matrix.FormatValue(1))
	require.Equal(t, "-2.5", matrix.FormatValue(-2.5))
	require.Equal(t, "0", matrix.FormatValue(0))
}
