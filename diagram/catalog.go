// Catalog holds the ordered diagram definitions a shell can switch between.
// Ownership of the live diagram is explicit: Mount tears the previous one
// down before the next is constructed, so at most one diagram ever receives
// hover traffic.

package diagram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/karmanyte/matlens/matrix"
)

// Operand is a matrix literal: explicit shape plus a flat row-major value
// list, the only wire format diagram definitions use.
type Operand struct {
	Rows   int       `yaml:"rows"`
	Cols   int       `yaml:"cols"`
	Values []float32 `yaml:"values"`
}

// build materializes the literal as a Dense matrix.
func (op Operand) build() (*matrix.Dense, error) {
	m, err := matrix.NewFrom(op.Rows, op.Cols, op.Values)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadDefinition)
	}

	return m, nil
}

// Definition names one catalog entry: a kind plus its operand literal(s).
// B is only consulted by multiplication diagrams.
type Definition struct {
	Name string   `yaml:"name"`
	Kind Kind     `yaml:"-"`
	A    Operand  `yaml:"a"`
	B    *Operand `yaml:"b,omitempty"`
}

// Build constructs the diagram this definition describes.
// Returns ErrBadDefinition (possibly wrapping a matrix sentinel) when the
// literals cannot produce the requested archetype.
func (d Definition) Build(opts ...Option) (Diagram, error) {
	a, err := d.A.build()
	if err != nil {
		return nil, err
	}
	switch d.Kind {
	case KindMultiply:
		if d.B == nil {
			return nil, fmt.Errorf("%q: multiply needs operand b: %w", d.Name, ErrBadDefinition)
		}
		b, err := d.B.build()
		if err != nil {
			return nil, err
		}
		return NewMultiply(a, b, opts...)
	case KindTranspose:
		return NewTranspose(a, opts...)
	case KindPackingRowMajor:
		return NewPacking(a, RowMajor, opts...)
	case KindPackingColumnMajor:
		return NewPacking(a, ColumnMajor, opts...)
	default:
		return nil, fmt.Errorf("%q: %w", d.Name, ErrUnknownKind)
	}
}

// Catalog is the ordered definition set with at most one mounted diagram.
type Catalog struct {
	defs    []Definition
	opts    []Option
	current Diagram
}

// NewCatalog builds a catalog over defs; the presentation options are applied
// to every diagram it mounts.
// Returns ErrNoDefinitions for an empty set.
func NewCatalog(defs []Definition, opts ...Option) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, ErrNoDefinitions
	}
	cp := make([]Definition, len(defs))
	copy(cp, defs)

	return &Catalog{defs: cp, opts: opts}, nil
}

// Size returns the number of catalog entries.
func (c *Catalog) Size() int { return len(c.defs) }

// Names returns the entry names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.defs))
	for i, d := range c.defs {
		names[i] = d.Name
	}

	return names
}

// Definitions returns a copy of the definition set.
func (c *Catalog) Definitions() []Definition {
	cp := make([]Definition, len(c.defs))
	copy(cp, c.defs)

	return cp
}

// Mount makes entry n (1-based) the live diagram. Out-of-range indices fall
// back to entry 1. The previously mounted diagram is torn down before the
// next is constructed, so its views never outlive the switch.
func (c *Catalog) Mount(n int) (Diagram, error) {
	if n < 1 || n > len(c.defs) {
		n = 1
	}
	if c.current != nil {
		c.current.Teardown()
		c.current = nil
	}
	d, err := c.defs[n-1].Build(c.opts...)
	if err != nil {
		return nil, err
	}
	c.current = d

	return d, nil
}

// Select routes an external selection token (URL-fragment style, e.g. "#3"
// or "2") to Mount. Unparsable or out-of-range tokens fall back to entry 1.
func (c *Catalog) Select(token string) (Diagram, error) {
	token = strings.TrimPrefix(strings.TrimSpace(token), "#")
	n, err := strconv.Atoi(token)
	if err != nil {
		n = 1
	}

	return c.Mount(n)
}

// Current returns the mounted diagram, nil before the first Mount.
func (c *Catalog) Current() Diagram { return c.current }

// Teardown releases the mounted diagram, if any.
func (c *Catalog) Teardown() {
	if c.current != nil {
		c.current.Teardown()
		c.current = nil
	}
}
