package diagram_test

import (
	"testing"

	"github.com/karmanyte/matlens/diagram"
	"github.com/stretchr/testify/require"
)

func newPacking(t *testing.T, order diagram.PackingOrder) *diagram.PackingDiagram {
	t.Helper()
	a := mustDense(t, 2, 3, []float32{1, 2, 3, 4, 5, 6})
	d, err := diagram.NewPacking(a, order)
	require.NoError(t, err)
	return d
}

func TestNewPacking_NilOperand(t *testing.T) {
	_, err := diagram.NewPacking(nil, diagram.RowMajor)
	require.ErrorIs(t, err, diagram.ErrNilOperand)
}

func TestPacking_LiteralLayout(t *testing.T) {
	// Row-major: one literal run per matrix row, contents in source order.
	d := newPacking(t, diagram.RowMajor)
	require.Equal(t, diagram.KindPackingRowMajor, d.Kind())
	vl := d.Views()[1]
	require.Equal(t, 2, vl.Rows())
	require.Equal(t, 3, vl.Cols())
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", vl.Matrix().String())

	// Column-major: one run per matrix column.
	d = newPacking(t, diagram.ColumnMajor)
	require.Equal(t, diagram.KindPackingColumnMajor, d.Kind())
	vl = d.Views()[1]
	require.Equal(t, 3, vl.Rows())
	require.Equal(t, 2, vl.Cols())
	require.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", vl.Matrix().String())
}

func TestPacking_RowMajorHover(t *testing.T) {
	d := newPacking(t, diagram.RowMajor)
	va, vl := d.Views()[0], d.Views()[1]

	// The column of the hovered cell is irrelevant: run index == row index.
	va.Hover(1, 2)

	idx, _, active := va.RowHighlight()
	require.True(t, active)
	require.Equal(t, 1, idx)
	idx, _, active = vl.RowHighlight()
	require.True(t, active)
	require.Equal(t, 1, idx)
	require.Equal(t, "row 1 → data[3..5]", d.Explanation())

	row, col, ok := d.Focused()
	require.True(t, ok)
	require.Equal(t, 1, row)
	require.Zero(t, col)
}

func TestPacking_ColumnMajorHover(t *testing.T) {
	d := newPacking(t, diagram.ColumnMajor)
	va, vl := d.Views()[0], d.Views()[1]

	va.Hover(0, 2)

	idx, _, active := va.ColumnHighlight()
	require.True(t, active)
	require.Equal(t, 2, idx)
	idx, _, active = vl.RowHighlight()
	require.True(t, active)
	require.Equal(t, 2, idx)
	require.Equal(t, "column 2 → data[4..5]", d.Explanation())
}

func TestPacking_LiteralHoverMapsBack(t *testing.T) {
	d := newPacking(t, diagram.RowMajor)
	va, vl := d.Views()[0], d.Views()[1]

	vl.Hover(0, 1)
	idx, _, active := va.RowHighlight()
	require.True(t, active)
	require.Zero(t, idx)

	d = newPacking(t, diagram.ColumnMajor)
	va, vl = d.Views()[0], d.Views()[1]
	vl.Hover(2, 0)
	idx, _, active = va.ColumnHighlight()
	require.True(t, active)
	require.Equal(t, 2, idx)
}

func TestPacking_Leave(t *testing.T) {
	d := newPacking(t, diagram.RowMajor)
	va := d.Views()[0]

	va.Hover(0, 0)
	va.Hover(-1, -1)

	_, _, ok := d.Focused()
	require.False(t, ok)
	require.Empty(t, d.Explanation())
	requireNoHighlights(t, d.Views()...)
}

func TestPackingOrder_String(t *testing.T) {
	require.Equal(t, "row-major", diagram.RowMajor.String())
	require.Equal(t, "column-major", diagram.ColumnMajor.String())
}
