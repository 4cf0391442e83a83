// Package qmath is the numeric facade for the operator family.
//
// It provides exactly the matrix operations the gate definitions need:
// diagonal construction, sparse off-diagonal scatter-adds, Kronecker
// products, conjugate transposition and a matrix exponential for property
// checks. Matrices are small (at most 16x16 in this module), dense,
// square and immutable; every operation returns a fresh matrix.
package qmath

import (
	"fmt"
	"math/cmplx"
)

// Matrix is a dense square complex matrix tagged with the data type it
// was built against.
type Matrix struct {
	n     int
	dtype DataType
	data  []complex128 // row-major, n*n entries
}

// Zeros creates an n x n zero matrix.
func Zeros(n int) *Matrix {
	if n <= 0 {
		panic(fmt.Sprintf("qmath: invalid matrix dimension %d", n))
	}
	return &Matrix{n: n, dtype: Float64, data: make([]complex128, n*n)}
}

// Identity creates the n x n identity matrix.
func Identity(n int) *Matrix {
	m := Zeros(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Diag creates a diagonal matrix from the given values. The data type is
// inferred: any value with a nonzero imaginary part makes the matrix
// complex.
func Diag(values ...complex128) *Matrix {
	m := Zeros(len(values))
	for i, v := range values {
		m.data[i*m.n+i] = v
		if imag(v) != 0 {
			m.dtype = Complex128
		}
	}
	return m
}

// FromRows creates a matrix from explicit rows. All rows must have the
// same length as the number of rows.
func FromRows(rows [][]complex128) *Matrix {
	m := Zeros(len(rows))
	for i, row := range rows {
		if len(row) != m.n {
			panic(fmt.Sprintf("qmath: row %d has %d entries, want %d", i, len(row), m.n))
		}
		for j, v := range row {
			m.data[i*m.n+j] = v
			if imag(v) != 0 {
				m.dtype = Complex128
			}
		}
	}
	return m
}

// Dim returns the matrix dimension n.
func (m *Matrix) Dim() int {
	return m.n
}

// DType returns the matrix data type tag.
func (m *Matrix) DType() DataType {
	return m.dtype
}

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) complex128 {
	m.check(i, j)
	return m.data[i*m.n+j]
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{n: m.n, dtype: m.dtype, data: make([]complex128, len(m.data))}
	copy(c.data, m.data)
	return c
}

// AsComplex returns the matrix tagged Complex128. The entries are
// unchanged; only the declared numeric interface widens. Matrix builders
// call this before mixing a real-valued block with an imaginary phase.
func (m *Matrix) AsComplex() *Matrix {
	if m.dtype.IsComplex() {
		return m
	}
	c := m.Clone()
	c.dtype = Complex128
	return c
}

// ScatterAdd returns a copy of the matrix with v added at (i, j). The
// result is promoted to Complex128 when v has an imaginary part.
func (m *Matrix) ScatterAdd(i, j int, v complex128) *Matrix {
	m.check(i, j)
	c := m.Clone()
	c.data[i*c.n+j] += v
	if imag(v) != 0 {
		c.dtype = Complex128
	}
	return c
}

// Add returns m + other.
func (m *Matrix) Add(other *Matrix) *Matrix {
	m.sameDim(other)
	c := m.Clone()
	c.dtype = Promote(m.dtype, other.dtype)
	for i := range c.data {
		c.data[i] += other.data[i]
	}
	return c
}

// Scale returns v * m.
func (m *Matrix) Scale(v complex128) *Matrix {
	c := m.Clone()
	if imag(v) != 0 {
		c.dtype = Complex128
	}
	for i := range c.data {
		c.data[i] *= v
	}
	return c
}

// MatMul returns the matrix product m * other.
func (m *Matrix) MatMul(other *Matrix) *Matrix {
	m.sameDim(other)
	n := m.n
	c := Zeros(n)
	c.dtype = Promote(m.dtype, other.dtype)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			a := m.data[i*n+k]
			if a == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				c.data[i*n+j] += a * other.data[k*n+j]
			}
		}
	}
	return c
}

// Kron returns the Kronecker product m (x) other. The left factor is the
// most significant block, matching the wire-order convention used by the
// operator family.
func (m *Matrix) Kron(other *Matrix) *Matrix {
	n := m.n * other.n
	c := Zeros(n)
	c.dtype = Promote(m.dtype, other.dtype)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			a := m.data[i*m.n+j]
			if a == 0 {
				continue
			}
			for k := 0; k < other.n; k++ {
				for l := 0; l < other.n; l++ {
					c.data[(i*other.n+k)*n+(j*other.n+l)] = a * other.data[k*other.n+l]
				}
			}
		}
	}
	return c
}

// ConjTranspose returns the conjugate transpose of m.
func (m *Matrix) ConjTranspose() *Matrix {
	c := Zeros(m.n)
	c.dtype = m.dtype
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			c.data[j*m.n+i] = cmplx.Conj(m.data[i*m.n+j])
		}
	}
	return c
}

func (m *Matrix) check(i, j int) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("qmath: index (%d, %d) out of range for %dx%d matrix", i, j, m.n, m.n))
	}
}

func (m *Matrix) sameDim(other *Matrix) {
	if m.n != other.n {
		panic(fmt.Sprintf("qmath: dimension mismatch: %dx%d vs %dx%d", m.n, m.n, other.n, other.n))
	}
}
