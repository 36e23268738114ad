// SPDX-License-Identifier: MIT

// Package gridview: domain types and sentinel errors.
package gridview

import "errors"

// Sentinel errors for gridview operations.
var (
	// ErrNilMatrix indicates that a nil matrix was passed to New.
	ErrNilMatrix = errors.New("gridview: nil matrix")
	// ErrOutOfRange indicates a row/column index outside the grid shape.
	ErrOutOfRange = errors.New("gridview: index out of range")
)

// Leave is the coordinate reported on both axes when the pointer exits the
// grid. Hover callbacks receive (Leave, Leave) exactly once per exit.
const Leave = -1

// Style is an opaque presentation token. The core never interprets it; the
// shell maps tokens to concrete terminal or DOM styling.
type Style string

// Default tokens used by the built-in diagrams. Shells may define their own.
const (
	StyleRow    Style = "row"
	StyleColumn Style = "column"
	StyleCell   Style = "cell"
)

// HoverFunc receives resolved cell coordinates from a view, or
// (Leave, Leave) when the pointer exits the grid.
type HoverFunc func(row, col int)

// Cell is one display handle: the rendered content of a matrix element plus
// the derived Selected emphasis driven by the highlight channels.
type Cell struct {
	Content  string
	Selected bool
}

// band is a one-state highlight channel over a full row or column.
// index < 0 means inactive.
type band struct {
	index int
	style Style
}

// mark is the single-cell highlight channel. row < 0 means inactive.
type mark struct {
	row, col int
	style    Style
}
