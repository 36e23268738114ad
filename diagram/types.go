// SPDX-License-Identifier: MIT

// Package diagram: kinds, the Diagram capability interface, sentinel errors
// and functional options shared by all archetypes.
package diagram

import (
	"errors"
	"fmt"

	"github.com/karmanyte/matlens/gridview"
)

// Sentinel errors for diagram construction and catalog handling.
var (
	// ErrNilOperand indicates that a nil matrix was passed to a constructor.
	ErrNilOperand = errors.New("diagram: nil operand")
	// ErrUnknownKind indicates an unrecognized diagram kind name.
	ErrUnknownKind = errors.New("diagram: unknown kind")
	// ErrBadDefinition indicates a catalog definition that cannot build.
	ErrBadDefinition = errors.New("diagram: bad definition")
	// ErrNoDefinitions indicates an attempt to build a catalog from nothing.
	ErrNoDefinitions = errors.New("diagram: empty definition set")
)

// Kind tags the diagram archetypes. The set is closed: hover-mapping rules
// are the variant payload, so a new kind means a new concrete type.
type Kind int

const (
	// KindMultiply links operand grids A and B with the derived product C.
	KindMultiply Kind = iota
	// KindTranspose links a matrix with its transpose, axes mirrored.
	KindTranspose
	// KindPackingRowMajor illustrates how rows pack into a flat literal.
	KindPackingRowMajor
	// KindPackingColumnMajor illustrates column-major packing.
	KindPackingColumnMajor
)

// kindNames doubles as the wire form used by YAML definitions and the CLI.
var kindNames = map[Kind]string{
	KindMultiply:           "multiply",
	KindTranspose:          "transpose",
	KindPackingRowMajor:    "packing-row-major",
	KindPackingColumnMajor: "packing-column-major",
}

// String returns the canonical kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind resolves a canonical kind name, returning ErrUnknownKind for
// anything else.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Diagram is the capability surface every archetype implements. A diagram is
// immutable after construction: hover traffic changes highlight and
// explanation presentation, never the underlying matrices.
type Diagram interface {
	// Kind reports the archetype tag.
	Kind() Kind

	// Views returns the participating grid views in display order
	// (operands before derived results).
	Views() []*gridview.GridView

	// Explanation returns the current worked-example or error text.
	// Empty string means the explanation surface is hidden.
	Explanation() string

	// Focused reports the focused cell pair in the primary view's
	// coordinates; ok is false in the idle state.
	Focused() (row, col int, ok bool)

	// Teardown detaches all hover callbacks and releases every view.
	// The diagram accepts no further hover traffic afterwards.
	Teardown()
}

// Option adjusts presentation tokens shared by all archetypes.
type Option func(*options)

type options struct {
	rowStyle    gridview.Style
	colStyle    gridview.Style
	cellStyle   gridview.Style
	placeholder string
}

func defaultOptions() options {
	return options{
		rowStyle:    gridview.StyleRow,
		colStyle:    gridview.StyleColumn,
		cellStyle:   gridview.StyleCell,
		placeholder: "·",
	}
}

// WithRowStyle sets the token applied through row-band highlights.
func WithRowStyle(s gridview.Style) Option {
	return func(o *options) { o.rowStyle = s }
}

// WithColumnStyle sets the token applied through column-band highlights.
func WithColumnStyle(s gridview.Style) Option {
	return func(o *options) { o.colStyle = s }
}

// WithCellStyle sets the token applied through single-cell highlights.
func WithCellStyle(s gridview.Style) Option {
	return func(o *options) { o.cellStyle = s }
}

// WithPlaceholder sets the content shown by error-state result cells.
func WithPlaceholder(content string) Option {
	return func(o *options) { o.placeholder = content }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
