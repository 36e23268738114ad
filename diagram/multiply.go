// MultiplyDiagram links operand grids A and B with their product C and keeps
// the three views synchronized under hover: the focused result cell selects
// the A row and B column whose dot product produced it, and the explanation
// expands that dot product term by term.

package diagram

import (
	"fmt"
	"strings"

	"github.com/karmanyte/matlens/gridview"
	"github.com/karmanyte/matlens/matrix"
)

// MultiplyDiagram is the A×B=C archetype. When the operand shapes are
// incompatible it degrades into a designed error state: no product matrix,
// placeholder result cells, a static message naming both shapes, and
// per-operand-only highlighting.
type MultiplyDiagram struct {
	a, b, c *matrix.Dense // c is nil in the error state
	va, vb  *gridview.GridView
	vc      *gridview.GridView
	opt     options

	focused    bool
	frow, fcol int
	live       string // live worked-example text; empty means hidden
	errText    string // static error text, set once in the error state
}

// NewMultiply builds the multiplication diagram for a and b.
// Compatibility is checked up front (never by catching a Mul failure): the
// product is computed exactly once at construction, and an incompatible pair
// branches into the error state instead of failing.
// Returns ErrNilOperand when either matrix is nil.
// Complexity: O(r*k*c) for the product, O(cells) for the views.
func NewMultiply(a, b *matrix.Dense, opts ...Option) (*MultiplyDiagram, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("NewMultiply: %w", ErrNilOperand)
	}
	d := &MultiplyDiagram{a: a, b: b, opt: gatherOptions(opts)}

	var err error
	if d.va, err = gridview.New(a); err != nil {
		return nil, err
	}
	if d.vb, err = gridview.New(b); err != nil {
		return nil, err
	}

	if !a.CanMultiply(b) {
		d.errText = fmt.Sprintf("Error: Cannot multiply %s matrix with %s matrix", a.Shape(), b.Shape())
		if d.vc, err = gridview.NewPlaceholder(a.Rows(), b.Cols(), d.opt.placeholder); err != nil {
			return nil, err
		}
		// No cross-highlighting in the error state: each operand view only
		// emphasizes its own band.
		d.va.RegisterHoverCallback(d.onOperandOnlyRow)
		d.vb.RegisterHoverCallback(d.onOperandOnlyColumn)
		return d, nil
	}

	if d.c, err = a.Mul(b); err != nil {
		return nil, err // unreachable after CanMultiply; kept for symmetry
	}
	if d.vc, err = gridview.New(d.c); err != nil {
		return nil, err
	}

	d.va.RegisterHoverCallback(d.onHoverA)
	d.vb.RegisterHoverCallback(d.onHoverB)
	d.vc.RegisterHoverCallback(d.onHoverC)

	// Idle opens with the (0,0) term worked out while the live bands stay
	// hidden, so the diagram is never a blank slate.
	d.live = d.workedExample(0, 0)

	return d, nil
}

// Kind reports KindMultiply.
func (d *MultiplyDiagram) Kind() Kind { return KindMultiply }

// Views returns A, B, C in display order.
func (d *MultiplyDiagram) Views() []*gridview.GridView {
	return []*gridview.GridView{d.va, d.vb, d.vc}
}

// Result returns the derived product matrix, nil in the error state.
func (d *MultiplyDiagram) Result() *matrix.Dense { return d.c }

// Invalid reports whether the diagram is the shape-incompatible error state.
func (d *MultiplyDiagram) Invalid() bool { return d.errText != "" }

// Explanation returns the static error text in the error state, otherwise
// the current worked-example text ("" after a pointer-leave).
func (d *MultiplyDiagram) Explanation() string {
	if d.errText != "" {
		return d.errText
	}

	return d.live
}

// Focused reports the focused result cell; ok is false while idle.
func (d *MultiplyDiagram) Focused() (int, int, bool) {
	return d.frow, d.fcol, d.focused
}

// onHoverC drives the canonical mapping: result cell (i,j) selects A row i,
// B column j and C cell (i,j).
func (d *MultiplyDiagram) onHoverC(i, j int) {
	if i < 0 {
		d.leave()
		return
	}
	d.focus(i, j)
}

// onHoverA treats the hover as column-independent: row i pairs with B's
// column 0, focusing result cell (i,0).
func (d *MultiplyDiagram) onHoverA(i, _ int) {
	if i < 0 {
		d.leave()
		return
	}
	d.focus(i, 0)
}

// onHoverB is the mirror of onHoverA: column j pairs with A's row 0.
func (d *MultiplyDiagram) onHoverB(_, j int) {
	if j < 0 {
		d.leave()
		return
	}
	d.focus(0, j)
}

// focus applies the cross-view fan-out for result cell (i,j) and recomputes
// the expanded dot-product text. A refocus needs no idle round-trip.
func (d *MultiplyDiagram) focus(i, j int) {
	d.focused = true
	d.frow, d.fcol = i, j
	_ = d.va.SetRowHighlight(i, d.opt.rowStyle)
	_ = d.vb.SetColumnHighlight(j, d.opt.colStyle)
	_ = d.vc.SetCellHighlight(i, j, d.opt.cellStyle)
	d.live = d.workedExample(i, j)
}

// leave returns to idle: every channel on every view cleared, explanation
// hidden.
func (d *MultiplyDiagram) leave() {
	d.focused = false
	d.va.ClearHighlights()
	d.vb.ClearHighlights()
	d.vc.ClearHighlights()
	d.live = ""
}

// onOperandOnlyRow is the error-state handler for A: row band only, no
// cross-highlighting, no dot-product text.
func (d *MultiplyDiagram) onOperandOnlyRow(i, _ int) {
	if i < 0 {
		d.va.ClearHighlights()
		return
	}
	_ = d.va.SetRowHighlight(i, d.opt.rowStyle)
}

// onOperandOnlyColumn is the error-state handler for B.
func (d *MultiplyDiagram) onOperandOnlyColumn(_, j int) {
	if j < 0 {
		d.vb.ClearHighlights()
		return
	}
	_ = d.vb.SetColumnHighlight(j, d.opt.colStyle)
}

// workedExample renders the fully expanded dot product behind C(i,j):
// each term a[k] × b[k] joined by +, then = C(i,j).
// The term order matches Dot's left-to-right accumulation exactly.
func (d *MultiplyDiagram) workedExample(i, j int) string {
	var sb strings.Builder
	for k := 0; k < d.a.Cols(); k++ {
		if k > 0 {
			sb.WriteString(" + ")
		}
		av, err := d.a.At(i, k)
		if err != nil {
			return ""
		}
		bv, err := d.b.At(k, j)
		if err != nil {
			return ""
		}
		fmt.Fprintf(&sb, "(%s × %s)", matrix.FormatValue(av), matrix.FormatValue(bv))
	}
	cv, err := d.c.At(i, j)
	if err != nil {
		return ""
	}
	fmt.Fprintf(&sb, " = %s", matrix.FormatValue(cv))

	return sb.String()
}

// Teardown detaches every view. Safe to call more than once.
func (d *MultiplyDiagram) Teardown() {
	d.va.Teardown()
	d.vb.Teardown()
	d.vc.Teardown()
	d.focused = false
	d.live = ""
}
