// TransposeDiagram pairs a matrix with its transpose. Because transposition
// swaps axes, the row/column roles invert between the two views: the hovered
// row on one side is the highlighted column on the other.

package diagram

import (
	"fmt"

	"github.com/karmanyte/matlens/gridview"
	"github.com/karmanyte/matlens/matrix"
)

// TransposeDiagram is the A / Aᵗ archetype.
type TransposeDiagram struct {
	a, t   *matrix.Dense
	va, vt *gridview.GridView
	opt    options

	focused    bool
	frow, fcol int // focused pair in A's coordinates
	live       string
}

// NewTranspose builds the diagram for a and its transpose, computed once.
// Returns ErrNilOperand when a is nil.
// Complexity: O(r*c).
func NewTranspose(a *matrix.Dense, opts ...Option) (*TransposeDiagram, error) {
	if a == nil {
		return nil, fmt.Errorf("NewTranspose: %w", ErrNilOperand)
	}
	d := &TransposeDiagram{a: a, t: a.Transpose(), opt: gatherOptions(opts)}

	var err error
	if d.va, err = gridview.New(a); err != nil {
		return nil, err
	}
	if d.vt, err = gridview.New(d.t); err != nil {
		return nil, err
	}

	d.va.RegisterHoverCallback(d.onHoverA)
	d.vt.RegisterHoverCallback(d.onHoverT)

	return d, nil
}

// Kind reports KindTranspose.
func (d *TransposeDiagram) Kind() Kind { return KindTranspose }

// Views returns A then Aᵗ.
func (d *TransposeDiagram) Views() []*gridview.GridView {
	return []*gridview.GridView{d.va, d.vt}
}

// Result returns the derived transpose matrix.
func (d *TransposeDiagram) Result() *matrix.Dense { return d.t }

// Explanation returns the duality text for the focused cell, "" while idle.
func (d *TransposeDiagram) Explanation() string { return d.live }

// Focused reports the focused pair in A's coordinates.
func (d *TransposeDiagram) Focused() (int, int, bool) {
	return d.frow, d.fcol, d.focused
}

// onHoverA: cell (i,j) on A selects row i and column j on A, and — axes
// swapped — column i and row j on the transpose.
func (d *TransposeDiagram) onHoverA(i, j int) {
	if i < 0 {
		d.leave()
		return
	}
	d.focus(i, j)
}

// onHoverT applies the mirror-image mapping back onto A: cell (i,j) on the
// transpose corresponds to (j,i) on A.
func (d *TransposeDiagram) onHoverT(i, j int) {
	if i < 0 {
		d.leave()
		return
	}
	d.focus(j, i)
}

func (d *TransposeDiagram) focus(i, j int) {
	d.focused = true
	d.frow, d.fcol = i, j
	_ = d.va.SetRowHighlight(i, d.opt.rowStyle)
	_ = d.va.SetColumnHighlight(j, d.opt.colStyle)
	_ = d.vt.SetRowHighlight(j, d.opt.rowStyle)
	_ = d.vt.SetColumnHighlight(i, d.opt.colStyle)

	v, err := d.a.At(i, j)
	if err != nil {
		d.live = ""
		return
	}
	d.live = fmt.Sprintf("A(%d,%d) = Aᵗ(%d,%d) = %s", i, j, j, i, matrix.FormatValue(v))
}

func (d *TransposeDiagram) leave() {
	d.focused = false
	d.va.ClearHighlights()
	d.vt.ClearHighlights()
	d.live = ""
}

// Teardown detaches both views. Safe to call more than once.
func (d *TransposeDiagram) Teardown() {
	d.va.Teardown()
	d.vt.Teardown()
	d.focused = false
	d.live = ""
}
