// SPDX-License-Identifier: MIT

// Package diagram: YAML catalog definitions. A definition file is the shell's
// way to supply its own didactic set; the built-in defaults cover the four
// archetypes.

package diagram

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDefinition is the YAML form of Definition (kind as its wire name).
type fileDefinition struct {
	Name string   `yaml:"name"`
	Kind string   `yaml:"kind"`
	A    Operand  `yaml:"a"`
	B    *Operand `yaml:"b,omitempty"`
}

// definitionFile is the document root of a catalog file.
type definitionFile struct {
	Diagrams []fileDefinition `yaml:"diagrams"`
}

// LoadDefinitions parses catalog definitions from YAML. Every entry is
// validated eagerly — kind name, operand literals, multiply's second
// operand — so a malformed file fails at load time, not at mount time.
// Returns ErrNoDefinitions for an empty document and ErrBadDefinition or
// ErrUnknownKind (wrapped with the entry name) for invalid entries.
func LoadDefinitions(r io.Reader) ([]Definition, error) {
	var doc definitionFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("diagram: decode catalog: %w", err)
	}
	if len(doc.Diagrams) == 0 {
		return nil, ErrNoDefinitions
	}

	defs := make([]Definition, 0, len(doc.Diagrams))
	for i, fd := range doc.Diagrams {
		kind, err := ParseKind(fd.Kind)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i+1, fd.Name, err)
		}
		def := Definition{Name: fd.Name, Kind: kind, A: fd.A, B: fd.B}
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		defs = append(defs, def)
	}

	return defs, nil
}

// LoadDefinitionsFile is LoadDefinitions over a file path.
func LoadDefinitionsFile(path string) ([]Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("diagram: open catalog: %w", err)
	}
	defer f.Close()

	return LoadDefinitions(f)
}

// validate checks the literals without constructing any view.
func (d Definition) validate() error {
	if _, err := d.A.build(); err != nil {
		return fmt.Errorf("%q operand a: %w", d.Name, err)
	}
	if d.Kind == KindMultiply {
		if d.B == nil {
			return fmt.Errorf("%q: multiply needs operand b: %w", d.Name, ErrBadDefinition)
		}
		if _, err := d.B.build(); err != nil {
			return fmt.Errorf("%q operand b: %w", d.Name, err)
		}
	}

	return nil
}

// DefaultDefinitions returns the built-in didactic set: a worked 2×2
// product, a shape-mismatch error diagram, a 3×4 transpose, and both
// packing-order illustrations of the same matrix.
func DefaultDefinitions() []Definition {
	seq12 := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	return []Definition{
		{
			Name: "2x2 multiplication",
			Kind: KindMultiply,
			A:    Operand{Rows: 2, Cols: 2, Values: []float32{1, 2, 3, 4}},
			B:    &Operand{Rows: 2, Cols: 2, Values: []float32{5, 6, 7, 8}},
		},
		{
			Name: "incompatible shapes",
			Kind: KindMultiply,
			A:    Operand{Rows: 4, Cols: 2, Values: []float32{1, 2, 3, 4, 5, 6, 7, 8}},
			B:    &Operand{Rows: 3, Cols: 4, Values: seq12},
		},
		{
			Name: "3x4 transpose",
			Kind: KindTranspose,
			A:    Operand{Rows: 3, Cols: 4, Values: seq12},
		},
		{
			Name: "row-major packing",
			Kind: KindPackingRowMajor,
			A:    Operand{Rows: 3, Cols: 4, Values: seq12},
		},
		{
			Name: "column-major packing",
			Kind: KindPackingColumnMajor,
			A:    Operand{Rows: 3, Cols: 4, Values: seq12},
		},
	}
}
