// PackingDiagram illustrates how a matrix packs into a flat source literal.
// The literal view shows one row per packing group — a matrix row under
// row-major order, a matrix column under column-major order — so the group
// index equals the driving matrix index and the run highlight is a plain
// row band on the literal side.

package diagram

import (
	"fmt"

	"github.com/karmanyte/matlens/gridview"
	"github.com/karmanyte/matlens/matrix"
)

// PackingOrder selects which axis forms the contiguous runs of the literal.
type PackingOrder int

const (
	// RowMajor packs consecutive columns of a row before the next row.
	RowMajor PackingOrder = iota
	// ColumnMajor packs consecutive rows of a column before the next column.
	ColumnMajor
)

// String returns "row-major" or "column-major".
func (o PackingOrder) String() string {
	if o == ColumnMajor {
		return "column-major"
	}

	return "row-major"
}

// PackingDiagram is the matrix ↔ flat-literal archetype.
type PackingDiagram struct {
	a       *matrix.Dense
	order   PackingOrder
	va, vl  *gridview.GridView
	opt     options
	groups  int // rows for RowMajor, cols for ColumnMajor
	grpLen  int
	focused bool
	group   int
	live    string
}

// NewPacking builds the packing illustration for a under the given order.
// The literal view holds groups×grpLen handles whose row-major layout equals
// the packed buffer, so literal row g is exactly the g-th contiguous run.
// Returns ErrNilOperand when a is nil.
// Complexity: O(r*c).
func NewPacking(a *matrix.Dense, order PackingOrder, opts ...Option) (*PackingDiagram, error) {
	if a == nil {
		return nil, fmt.Errorf("NewPacking: %w", ErrNilOperand)
	}
	d := &PackingDiagram{a: a, order: order, opt: gatherOptions(opts)}

	var err error
	if d.va, err = gridview.New(a); err != nil {
		return nil, err
	}

	// The packed buffer, reshaped one group per row. Under column-major
	// order that is precisely the transpose's row-major data.
	packed := a
	if order == ColumnMajor {
		packed = a.Transpose()
	}
	d.groups, d.grpLen = packed.Rows(), packed.Cols()
	if d.vl, err = gridview.New(packed); err != nil {
		return nil, err
	}

	d.va.RegisterHoverCallback(d.onHoverMatrix)
	d.vl.RegisterHoverCallback(d.onHoverLiteral)

	return d, nil
}

// Kind reports the order-specific packing kind.
func (d *PackingDiagram) Kind() Kind {
	if d.order == ColumnMajor {
		return KindPackingColumnMajor
	}

	return KindPackingRowMajor
}

// Order returns the packing order under illustration.
func (d *PackingDiagram) Order() PackingOrder { return d.order }

// Views returns the matrix view then the literal view.
func (d *PackingDiagram) Views() []*gridview.GridView {
	return []*gridview.GridView{d.va, d.vl}
}

// Explanation returns the offset-run text for the focused group, "" while idle.
func (d *PackingDiagram) Explanation() string { return d.live }

// Focused reports the focused matrix coordinate. The non-driving axis is
// reported as 0, matching the column-independent hover contract.
func (d *PackingDiagram) Focused() (int, int, bool) {
	if d.order == ColumnMajor {
		return 0, d.group, d.focused
	}

	return d.group, 0, d.focused
}

// onHoverMatrix maps the hovered matrix cell to its packing group: the row
// index under row-major order, the column index under column-major order —
// independent of the other axis.
func (d *PackingDiagram) onHoverMatrix(i, j int) {
	if i < 0 {
		d.leave()
		return
	}
	if d.order == ColumnMajor {
		d.focus(j)
		return
	}
	d.focus(i)
}

// onHoverLiteral maps a literal run straight back: group g is row g of the
// literal view whichever order is active.
func (d *PackingDiagram) onHoverLiteral(i, _ int) {
	if i < 0 {
		d.leave()
		return
	}
	d.focus(i)
}

// focus highlights matrix group g and literal run g, and renders the flat
// offset range the group occupies.
func (d *PackingDiagram) focus(g int) {
	d.focused = true
	d.group = g
	if d.order == ColumnMajor {
		_ = d.va.SetColumnHighlight(g, d.opt.colStyle)
		d.live = fmt.Sprintf("column %d → data[%d..%d]", g, g*d.grpLen, g*d.grpLen+d.grpLen-1)
	} else {
		_ = d.va.SetRowHighlight(g, d.opt.rowStyle)
		d.live = fmt.Sprintf("row %d → data[%d..%d]", g, g*d.grpLen, g*d.grpLen+d.grpLen-1)
	}
	_ = d.vl.SetRowHighlight(g, d.opt.rowStyle)
}

func (d *PackingDiagram) leave() {
	d.focused = false
	d.va.ClearHighlights()
	d.vl.ClearHighlights()
	d.live = ""
}

// Teardown detaches both views. Safe to call more than once.
func (d *PackingDiagram) Teardown() {
	d.va.Teardown()
	d.vl.Teardown()
	d.focused = false
	d.live = ""
}
