// Package gridview owns the display side of a single matrix: one cell handle
// per element in row-major order, three independent highlight channels, and
// the hover notification path diagrams wire together.
//
// What:
//
//   - GridView holds read-only access to one matrix.Dense and a []Cell slice
//     whose index law (r*cols + c) matches the matrix offset law exactly.
//   - Three channels — row band, column band, single cell — each hold at most
//     one state; setting a channel marks the covered cells Selected, the
//     derived per-cell emphasis the shell renders.
//   - Hover(row, col) forwards a resolved cell pair to the registered
//     callback; any negative coordinate is normalized to the (-1,-1) leave
//     signal.
//
// Why channels instead of a free-form mark set: every diagram archetype
// highlights at most one row, one column and one cell per view, and the
// single-state rule is what keeps cross-view fan-out idempotent.
//
// Presentation is out of scope: Style is an opaque token the shell maps to
// actual colors.
//
// Errors:
//
//   - ErrNilMatrix: GridView constructed over a nil matrix.
//   - ErrOutOfRange: highlight or cell index outside the grid shape.
package gridview
