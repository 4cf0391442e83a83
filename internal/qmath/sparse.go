package qmath

import "fmt"

// Entry is a single nonzero value of a sparse matrix in coordinate form.
type Entry struct {
	Row, Col int
	V        complex128
}

// Sparse is a square complex matrix in coordinate (COO) form. It is the
// representation for generators supported on only a few basis states,
// where a dense matrix would be almost entirely zeros.
type Sparse struct {
	n       int
	entries []Entry
}

// NewSparse creates an n x n sparse matrix from the given entries.
func NewSparse(n int, entries []Entry) *Sparse {
	if n <= 0 {
		panic(fmt.Sprintf("qmath: invalid matrix dimension %d", n))
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= n || e.Col < 0 || e.Col >= n {
			panic(fmt.Sprintf("qmath: sparse entry (%d, %d) out of range for %dx%d matrix", e.Row, e.Col, n, n))
		}
	}
	es := make([]Entry, len(entries))
	copy(es, entries)
	return &Sparse{n: n, entries: es}
}

// Dim returns the matrix dimension n.
func (s *Sparse) Dim() int {
	return s.n
}

// Entries returns the nonzero entries in insertion order.
func (s *Sparse) Entries() []Entry {
	es := make([]Entry, len(s.entries))
	copy(es, s.entries)
	return es
}

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int {
	return len(s.entries)
}

// Scale returns v * s.
func (s *Sparse) Scale(v complex128) *Sparse {
	es := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		es[i] = Entry{Row: e.Row, Col: e.Col, V: v * e.V}
	}
	return &Sparse{n: s.n, entries: es}
}

// ToDense materializes the sparse matrix as a dense one. Duplicate
// coordinates accumulate.
func (s *Sparse) ToDense() *Matrix {
	m := Zeros(s.n).AsComplex()
	for _, e := range s.entries {
		m.data[e.Row*s.n+e.Col] += e.V
	}
	return m
}
