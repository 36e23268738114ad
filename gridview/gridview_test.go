package gridview_test

import (
	"testing"

	"github.com/karmanyte/matlens/gridview"
	"github.com/karmanyte/matlens/matrix"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T, rows, cols int, vals []float32) *gridview.GridView {
	t.Helper()
	m, err := matrix.NewFrom(rows, cols, vals)
	require.NoError(t, err)
	g, err := gridview.New(m)
	require.NoError(t, err)
	return g
}

func TestNew_NilMatrix(t *testing.T) {
	_, err := gridview.New(nil)
	require.ErrorIs(t, err, gridview.ErrNilMatrix)
}

func TestIndex_MatchesMatrixOffsetLaw(t *testing.T) {
	g := newView(t, 3, 4, []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	cells := g.Cells()
	require.Len(t, cells, 12)

	// Display index r*cols+c must point at the handle showing element (r,c).
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			idx := g.Index(r, c)
			require.Equal(t, r*4+c, idx)
			v, err := g.Matrix().At(r, c)
			require.NoError(t, err)
			require.Equal(t, matrix.FormatValue(v), cells[idx].Content, "(%d,%d)", r, c)
		}
	}
}

func TestRefresh_TracksMatrixMutation(t *testing.T) {
	g := newView(t, 2, 2, []float32{1, 2, 3, 4})
	require.NoError(t, g.Matrix().Set(0, 1, 42))

	cell, err := g.Cell(0, 1)
	require.NoError(t, err)
	require.Equal(t, "2", cell.Content) // stale until refreshed

	g.Refresh()
	cell, err = g.Cell(0, 1)
	require.NoError(t, err)
	require.Equal(t, "42", cell.Content)

	// Idempotent.
	g.Refresh()
	cell, err = g.Cell(0, 1)
	require.NoError(t, err)
	require.Equal(t, "42", cell.Content)
}

func TestSetRowHighlight_SingleState(t *testing.T) {
	g := newView(t, 3, 2, []float32{1, 2, 3, 4, 5, 6})

	require.NoError(t, g.SetRowHighlight(1, gridview.StyleRow))
	idx, style, active := g.RowHighlight()
	require.True(t, active)
	require.Equal(t, 1, idx)
	require.Equal(t, gridview.StyleRow, style)
	requireSelectedRows(t, g, map[int]bool{1: true})

	// Second activation replaces the first; row 1 selection is gone.
	require.NoError(t, g.SetRowHighlight(2, gridview.StyleRow))
	requireSelectedRows(t, g, map[int]bool{2: true})

	// Negative clears the channel.
	require.NoError(t, g.SetRowHighlight(-1, gridview.StyleRow))
	_, _, active = g.RowHighlight()
	require.False(t, active)
	requireSelectedRows(t, g, nil)

	require.ErrorIs(t, g.SetRowHighlight(3, gridview.StyleRow), gridview.ErrOutOfRange)
}

// requireSelectedRows asserts that exactly the cells of the given rows carry
// the Selected flag.
func requireSelectedRows(t *testing.T, g *gridview.GridView, rows map[int]bool) {
	t.Helper()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell, err := g.Cell(r, c)
			require.NoError(t, err)
			require.Equal(t, rows[r], cell.Selected, "(%d,%d)", r, c)
		}
	}
}

func TestChannelsAreIndependent(t *testing.T) {
	g := newView(t, 2, 3, []float32{1, 2, 3, 4, 5, 6})

	require.NoError(t, g.SetRowHighlight(0, gridview.StyleRow))
	require.NoError(t, g.SetColumnHighlight(2, gridview.StyleColumn))
	require.NoError(t, g.SetCellHighlight(1, 0, gridview.StyleCell))

	// Clearing the column leaves the row band and cell mark untouched.
	require.NoError(t, g.SetColumnHighlight(-1, gridview.StyleColumn))
	_, _, rowActive := g.RowHighlight()
	require.True(t, rowActive)
	_, _, colActive := g.ColumnHighlight()
	require.False(t, colActive)
	mr, mc, _, cellActive := g.CellHighlight()
	require.True(t, cellActive)
	require.Equal(t, 1, mr)
	require.Equal(t, 0, mc)

	// Selection is the union of live channels: row 0 plus cell (1,0).
	cell, err := g.Cell(1, 0)
	require.NoError(t, err)
	require.True(t, cell.Selected)
	cell, err = g.Cell(1, 2)
	require.NoError(t, err)
	require.False(t, cell.Selected)
}

func TestClearHighlights(t *testing.T) {
	g := newView(t, 2, 2, []float32{1, 2, 3, 4})
	require.NoError(t, g.SetRowHighlight(0, gridview.StyleRow))
	require.NoError(t, g.SetColumnHighlight(1, gridview.StyleColumn))
	require.NoError(t, g.SetCellHighlight(1, 1, gridview.StyleCell))

	g.ClearHighlights()
	_, _, a := g.RowHighlight()
	require.False(t, a)
	_, _, a = g.ColumnHighlight()
	require.False(t, a)
	_, _, _, a = g.CellHighlight()
	require.False(t, a)
	for _, cell := range g.Cells() {
		require.False(t, cell.Selected)
	}
}

func TestHover_Propagation(t *testing.T) {
	g := newView(t, 2, 2, []float32{1, 2, 3, 4})

	var got [][2]int
	g.RegisterHoverCallback(func(r, c int) {
		got = append(got, [2]int{r, c})
	})

	g.Hover(1, 0)           // in range: forwarded as-is
	g.Hover(-1, 0)          // any negative axis normalizes to leave
	g.Hover(0, -7)          // likewise
	g.Hover(5, 0)           // beyond shape: dropped, surface owns resolution
	g.Hover(gridview.Leave, gridview.Leave)

	require.Equal(t, [][2]int{{1, 0}, {-1, -1}, {-1, -1}, {-1, -1}}, got)
}

func TestHover_NoCallbackIsNoop(t *testing.T) {
	g := newView(t, 2, 2, []float32{1, 2, 3, 4})
	g.Hover(0, 0) // must not panic
}

func TestTeardown_DetachesEverything(t *testing.T) {
	g := newView(t, 2, 2, []float32{1, 2, 3, 4})
	fired := false
	g.RegisterHoverCallback(func(r, c int) { fired = true })

	g.Teardown()
	g.Hover(0, 0)
	require.False(t, fired)
	require.Nil(t, g.Cells())
	require.Nil(t, g.Matrix())
}

func TestNewPlaceholder(t *testing.T) {
	g, err := gridview.NewPlaceholder(2, 3, "?")
	require.NoError(t, err)
	require.Nil(t, g.Matrix())
	require.Len(t, g.Cells(), 6)
	for _, cell := range g.Cells() {
		require.Equal(t, "?", cell.Content)
	}
	g.Refresh() // no-op, must not panic

	_, err = gridview.NewPlaceholder(0, 3, "?")
	require.ErrorIs(t, err, gridview.ErrOutOfRange)
}
