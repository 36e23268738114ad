// GridView keeps the display handles of one matrix in the same row-major
// order as the matrix buffer, so diagrams can treat display index and matrix
// offset as interchangeable.

package gridview

import (
	"fmt"

	"github.com/karmanyte/matlens/matrix"
)

// GridView is the display surface of exactly one matrix.
// It never mutates the matrix; Refresh re-reads it on demand.
type GridView struct {
	mat   *matrix.Dense
	rows  int
	cols  int
	cells []Cell

	rowBand  band
	colBand  band
	cellMark mark

	hover HoverFunc
}

// New constructs a GridView over m with one handle per element, all channels
// inactive, and contents already refreshed.
// Returns ErrNilMatrix when m is nil.
// Complexity: O(r*c).
func New(m *matrix.Dense) (*GridView, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	g := &GridView{
		mat:      m,
		rows:     m.Rows(),
		cols:     m.Cols(),
		cells:    make([]Cell, m.Rows()*m.Cols()),
		rowBand:  band{index: Leave},
		colBand:  band{index: Leave},
		cellMark: mark{row: Leave, col: Leave},
	}
	g.Refresh()

	return g, nil
}

// NewPlaceholder constructs a matrix-less view whose every handle shows the
// given content. Error-state multiplication diagrams use it for the result
// area that has no product to display.
// Returns ErrOutOfRange on non-positive dimensions.
func NewPlaceholder(rows, cols int, content string) (*GridView, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("placeholder %dx%d: %w", rows, cols, ErrOutOfRange)
	}
	g := &GridView{
		rows:     rows,
		cols:     cols,
		cells:    make([]Cell, rows*cols),
		rowBand:  band{index: Leave},
		colBand:  band{index: Leave},
		cellMark: mark{row: Leave, col: Leave},
	}
	for i := range g.cells {
		g.cells[i].Content = content
	}

	return g, nil
}

// Rows returns the number of grid rows. Complexity: O(1).
func (g *GridView) Rows() int { return g.rows }

// Cols returns the number of grid columns. Complexity: O(1).
func (g *GridView) Cols() int { return g.cols }

// Matrix returns the observed matrix, nil for placeholder views.
func (g *GridView) Matrix() *matrix.Dense { return g.mat }

// Index maps (row, col) to the display-handle position: row*cols + col.
// This is the same law the matrix buffer uses; diagrams rely on the two
// being interchangeable.
// Complexity: O(1).
func (g *GridView) Index(row, col int) int {
	return row*g.cols + col
}

// Refresh re-reads every element from the matrix into the cell handles.
// Idempotent; a no-op for placeholder views.
// Complexity: O(r*c).
func (g *GridView) Refresh() {
	if g.mat == nil || g.cells == nil {
		return
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			v, err := g.mat.At(r, c)
			if err != nil {
				// Shape is fixed at construction; a miss here is a
				// programmer error, not a runtime condition.
				panic(fmt.Sprintf("gridview: refresh (%d,%d): %v", r, c, err))
			}
			g.cells[g.Index(r, c)].Content = matrix.FormatValue(v)
		}
	}
}

// Cell returns the handle at (row, col).
// Returns ErrOutOfRange outside the grid shape.
// Complexity: O(1).
func (g *GridView) Cell(row, col int) (Cell, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{}, fmt.Errorf("cell (%d,%d) of %dx%d: %w", row, col, g.rows, g.cols, ErrOutOfRange)
	}

	return g.cells[g.Index(row, col)], nil
}

// Cells exposes the handle slice in row-major order for shell rendering.
// Callers must treat it as read-only.
func (g *GridView) Cells() []Cell { return g.cells }

// SetRowHighlight activates the row-band channel over row and marks the
// row's cells Selected. A negative row clears the channel. The channel holds
// exactly one state: a second call replaces the first.
// Returns ErrOutOfRange when row >= Rows().
// Complexity: O(r*c) for the selection sweep.
func (g *GridView) SetRowHighlight(row int, style Style) error {
	if row < 0 {
		g.rowBand = band{index: Leave}
		g.recomputeSelection()
		return nil
	}
	if row >= g.rows {
		return fmt.Errorf("row %d of %d: %w", row, g.rows, ErrOutOfRange)
	}
	g.rowBand = band{index: row, style: style}
	g.recomputeSelection()

	return nil
}

// SetColumnHighlight is SetRowHighlight over the column-band channel.
func (g *GridView) SetColumnHighlight(col int, style Style) error {
	if col < 0 {
		g.colBand = band{index: Leave}
		g.recomputeSelection()
		return nil
	}
	if col >= g.cols {
		return fmt.Errorf("col %d of %d: %w", col, g.cols, ErrOutOfRange)
	}
	g.colBand = band{index: col, style: style}
	g.recomputeSelection()

	return nil
}

// SetCellHighlight activates the single-cell channel at (row, col); any
// negative coordinate clears it.
// Returns ErrOutOfRange when the pair lies outside the grid.
func (g *GridView) SetCellHighlight(row, col int, style Style) error {
	if row < 0 || col < 0 {
		g.cellMark = mark{row: Leave, col: Leave}
		g.recomputeSelection()
		return nil
	}
	if row >= g.rows || col >= g.cols {
		return fmt.Errorf("cell (%d,%d) of %dx%d: %w", row, col, g.rows, g.cols, ErrOutOfRange)
	}
	g.cellMark = mark{row: row, col: col, style: style}
	g.recomputeSelection()

	return nil
}

// ClearHighlights resets all three channels and every Selected flag.
// Complexity: O(r*c).
func (g *GridView) ClearHighlights() {
	g.rowBand = band{index: Leave}
	g.colBand = band{index: Leave}
	g.cellMark = mark{row: Leave, col: Leave}
	g.recomputeSelection()
}

// RowHighlight reports the row-band channel: active index, its style token,
// and whether the channel is active.
func (g *GridView) RowHighlight() (int, Style, bool) {
	return g.rowBand.index, g.rowBand.style, g.rowBand.index >= 0
}

// ColumnHighlight reports the column-band channel.
func (g *GridView) ColumnHighlight() (int, Style, bool) {
	return g.colBand.index, g.colBand.style, g.colBand.index >= 0
}

// CellHighlight reports the single-cell channel.
func (g *GridView) CellHighlight() (row, col int, style Style, active bool) {
	return g.cellMark.row, g.cellMark.col, g.cellMark.style, g.cellMark.row >= 0
}

// recomputeSelection derives every cell's Selected flag from the three
// channel states. Channels are independent, so Selected is their union.
func (g *GridView) recomputeSelection() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sel := (g.rowBand.index == r) ||
				(g.colBand.index == c) ||
				(g.cellMark.row == r && g.cellMark.col == c)
			g.cells[g.Index(r, c)].Selected = sel
		}
	}
}

// RegisterHoverCallback installs the diagram-side hover listener. At most one
// callback is live; registering replaces the previous one.
func (g *GridView) RegisterHoverCallback(fn HoverFunc) {
	g.hover = fn
}

// Hover is the notification path invoked by the interaction surface with an
// already-resolved cell pair. Any negative coordinate means the pointer left
// the grid and is propagated as (Leave, Leave).
// Coordinates at or beyond the shape are dropped: the interaction surface
// owns raw-pointer resolution and never reports such pairs for a live grid.
func (g *GridView) Hover(row, col int) {
	if g.hover == nil {
		return
	}
	if row < 0 || col < 0 {
		g.hover(Leave, Leave)
		return
	}
	if row >= g.rows || col >= g.cols {
		return
	}
	g.hover(row, col)
}

// Teardown detaches the hover callback and releases the handle slice.
// The shell contract requires that no handle references survive a teardown;
// a torn-down view accepts no further hover traffic.
func (g *GridView) Teardown() {
	g.hover = nil
	g.cells = nil
	g.mat = nil
	g.rows, g.cols = 0, 0
}
