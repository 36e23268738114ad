// SPDX-License-Identifier: MIT

// Package matrix: shape-aware operations over Dense.
// Row/Column/Transpose/Mul allocate fresh matrices; SetRow/SetColumn are the
// only in-place mutators beyond Set and are never exercised by live diagrams
// after construction.

package matrix

import "fmt"

// Row returns row n as a new 1×Cols matrix copy.
// Returns ErrOutOfRange if n is outside [0, Rows).
// Complexity: O(c).
func (m *Dense) Row(n int) (*Dense, error) {
	if n < 0 || n >= m.r {
		return nil, fmt.Errorf("Row(%d) of %d: %w", n, m.r, ErrOutOfRange)
	}
	out := &Dense{r: 1, c: m.c, data: make([]float32, m.c)}
	copy(out.data, m.data[n*m.c:(n+1)*m.c])

	return out, nil
}

// Column returns column n as a new Rows×1 matrix copy.
// Returns ErrOutOfRange if n is outside [0, Cols).
// Complexity: O(r).
func (m *Dense) Column(n int) (*Dense, error) {
	if n < 0 || n >= m.c {
		return nil, fmt.Errorf("Column(%d) of %d: %w", n, m.c, ErrOutOfRange)
	}
	out := &Dense{r: m.r, c: 1, data: make([]float32, m.r)}
	for i := 0; i < m.r; i++ {
		out.data[i] = m.data[i*m.c+n]
	}

	return out, nil
}

// SetRow overwrites row n in place with the leading Cols values of vals.
// Returns ErrOutOfRange on a bad index, ErrDimensionMismatch when vals is
// shorter than the row. Extra values are ignored.
// Complexity: O(c).
func (m *Dense) SetRow(n int, vals []float32) error {
	if n < 0 || n >= m.r {
		return fmt.Errorf("SetRow(%d) of %d: %w", n, m.r, ErrOutOfRange)
	}
	if len(vals) < m.c {
		return fmt.Errorf("SetRow(%d): %d of %d values: %w", n, len(vals), m.c, ErrDimensionMismatch)
	}
	copy(m.data[n*m.c:(n+1)*m.c], vals[:m.c])

	return nil
}

// SetColumn overwrites column n in place with the leading Rows values of vals.
// Returns ErrOutOfRange on a bad index, ErrDimensionMismatch when vals is
// shorter than the column.
// Complexity: O(r).
func (m *Dense) SetColumn(n int, vals []float32) error {
	if n < 0 || n >= m.c {
		return fmt.Errorf("SetColumn(%d) of %d: %w", n, m.c, ErrOutOfRange)
	}
	if len(vals) < m.r {
		return fmt.Errorf("SetColumn(%d): %d of %d values: %w", n, len(vals), m.r, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+n] = vals[i]
	}

	return nil
}

// Transpose returns a new Cols×Rows matrix with out.At(i,j) == m.At(j,i).
// Pure; the receiver is never mutated.
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]float32, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Dot computes the scalar product of two vectors of equal element count,
// regardless of orientation (1×N against N×1 is fine).
// Returns ErrDimensionMismatch when the counts differ.
// Accumulation is float32, strictly left to right; the diagrams render each
// term of exactly this sum, so the order is part of the contract.
// Complexity: O(n).
func (m *Dense) Dot(other *Dense) (float32, error) {
	if other == nil || len(m.data) != len(other.data) {
		n := 0
		if other != nil {
			n = len(other.data)
		}
		return 0, fmt.Errorf("Dot: %d vs %d elements: %w", len(m.data), n, ErrDimensionMismatch)
	}
	var sum float32
	for i := range m.data {
		sum += m.data[i] * other.data[i]
	}

	return sum, nil
}

// CanMultiply reports whether m×other is defined: m.Cols == other.Rows.
// Complexity: O(1).
func (m *Dense) CanMultiply(other *Dense) bool {
	return other != nil && m.c == other.r
}

// Mul computes the matrix product m×other as a new Rows×other.Cols matrix,
// where out.At(i,j) equals the dot product of m's row i and other's column j.
// Returns ErrDimensionMismatch unless CanMultiply(other).
// Complexity: O(r*c*other.c).
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if !m.CanMultiply(other) {
		shape := "nil"
		if other != nil {
			shape = other.Shape()
		}
		return nil, fmt.Errorf("Mul: %s by %s: %w", m.Shape(), shape, ErrDimensionMismatch)
	}
	out := &Dense{r: m.r, c: other.c, data: make([]float32, m.r*other.c)}
	for i := 0; i < m.r; i++ {
		for j := 0; j < other.c; j++ {
			var sum float32
			for k := 0; k < m.c; k++ {
				sum += m.data[i*m.c+k] * other.data[k*other.c+j]
			}
			out.data[i*out.c+j] = sum
		}
	}

	return out, nil
}
