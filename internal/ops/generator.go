package ops

import (
	"fmt"

	"github.com/amitjansc/pennylane/internal/qmath"
)

// Pauli is a single-wire Pauli letter appearing in a generator term.
type Pauli byte

// Pauli letters. Identity is implicit on wires a term does not mention.
const (
	I Pauli = 'I'
	X Pauli = 'X'
	Y Pauli = 'Y'
	Z Pauli = 'Z'
)

func (p Pauli) matrix() *qmath.Matrix {
	switch p {
	case I:
		return qmath.Identity(2)
	case X:
		return qmath.FromRows([][]complex128{{0, 1}, {1, 0}})
	case Y:
		return qmath.FromRows([][]complex128{{0, -1i}, {1i, 0}})
	case Z:
		return qmath.Diag(1, -1)
	default:
		panic(fmt.Sprintf("ops: unknown Pauli letter %q", byte(p)))
	}
}

// Generator is a Hermitian observable G with Matrix() over its own wire
// order. The owning operator satisfies Matrix() == exp(-i*theta*G/2) up
// to global phase.
//
// Two representations exist: PauliSum for observables that decompose
// into weighted Pauli-tensor terms, and SparseHamiltonian for the ones
// supported on only a few basis states.
type Generator interface {
	Wires() Wires
	Matrix() *qmath.Matrix
	Neg() Generator
}

// PauliTerm is one weighted Pauli word of a PauliSum. Word maps wire
// identifiers to letters; unmapped wires act as identity.
type PauliTerm struct {
	Coeff float64
	Word  map[int]Pauli
}

// PauliSum is a Hermitian observable expressed as a weighted sum of
// Pauli-tensor terms.
type PauliSum struct {
	wires Wires
	terms []PauliTerm
}

// NewPauliSum builds a Pauli-sum generator over the given wire order.
// Every wire a term mentions must be part of the order.
func NewPauliSum(wires Wires, terms ...PauliTerm) *PauliSum {
	for _, t := range terms {
		for w := range t.Word {
			if !wires.Contains(w) {
				panic(fmt.Sprintf("ops: generator term references wire %d outside %v", w, wires))
			}
		}
	}
	return &PauliSum{wires: wires.Clone(), terms: terms}
}

// Wires returns the wire order of the observable.
func (p *PauliSum) Wires() Wires {
	return p.wires
}

// Terms returns the weighted Pauli words.
func (p *PauliSum) Terms() []PauliTerm {
	return p.terms
}

// Matrix materializes the observable as a dense matrix over its wire
// order, first wire most significant.
func (p *PauliSum) Matrix() *qmath.Matrix {
	dim := 1 << len(p.wires)
	total := qmath.Zeros(dim)
	for _, t := range p.terms {
		term := qmath.Identity(1)
		for _, w := range p.wires {
			letter, ok := t.Word[w]
			if !ok {
				letter = I
			}
			term = term.Kron(letter.matrix())
		}
		total = total.Add(term.Scale(complex(t.Coeff, 0)))
	}
	return total
}

// Neg returns the observable with every coefficient negated.
func (p *PauliSum) Neg() Generator {
	terms := make([]PauliTerm, len(p.terms))
	for i, t := range p.terms {
		terms[i] = PauliTerm{Coeff: -t.Coeff, Word: t.Word}
	}
	return &PauliSum{wires: p.wires, terms: terms}
}

// SparseHamiltonian is a Hermitian observable kept in coordinate form,
// tagged with the wires it acts on.
type SparseHamiltonian struct {
	wires Wires
	mat   *qmath.Sparse
}

// NewSparseHamiltonian builds a sparse generator over the given wires.
// The matrix dimension must be 2^len(wires).
func NewSparseHamiltonian(wires Wires, mat *qmath.Sparse) *SparseHamiltonian {
	if mat.Dim() != 1<<len(wires) {
		panic(fmt.Sprintf("ops: sparse generator dimension %d does not match %d wires", mat.Dim(), len(wires)))
	}
	return &SparseHamiltonian{wires: wires.Clone(), mat: mat}
}

// Wires returns the wire order of the observable.
func (s *SparseHamiltonian) Wires() Wires {
	return s.wires
}

// Sparse returns the underlying coordinate-form matrix.
func (s *SparseHamiltonian) Sparse() *qmath.Sparse {
	return s.mat
}

// Matrix materializes the observable as a dense matrix.
func (s *SparseHamiltonian) Matrix() *qmath.Matrix {
	return s.mat.ToDense()
}

// Neg returns the observable with every entry negated.
func (s *SparseHamiltonian) Neg() Generator {
	return &SparseHamiltonian{wires: s.wires, mat: s.mat.Scale(-1)}
}
