package ops

import (
	"math"
	"math/cmplx"

	"github.com/amitjansc/pennylane/internal/qmath"
)

// Excitation rotations from quantum chemistry. Matrix entries, generator
// terms and decomposition sequences follow the published circuit
// conventions literally (the sequences are the contract; see the
// decomposition tests).

// SingleExcitation rotates by phi in the {|01>, |10>} subspace of two
// wires.
func SingleExcitation(q Queue, phi float64, wires ...int) *Gate {
	return newGate(q, KindSingleExcitation, []float64{phi}, wires...)
}

// SingleExcitationMinus is the single excitation rotation with a
// e^{-i phi/2} phase on the states outside the rotation subspace.
func SingleExcitationMinus(q Queue, phi float64, wires ...int) *Gate {
	return newGate(q, KindSingleExcitationMinus, []float64{phi}, wires...)
}

// SingleExcitationPlus is the single excitation rotation with a
// e^{+i phi/2} phase on the states outside the rotation subspace.
func SingleExcitationPlus(q Queue, phi float64, wires ...int) *Gate {
	return newGate(q, KindSingleExcitationPlus, []float64{phi}, wires...)
}

// DoubleExcitation rotates by phi in the {|0011>, |1100>} subspace of
// four wires.
func DoubleExcitation(q Queue, phi float64, wires ...int) *Gate {
	return newGate(q, KindDoubleExcitation, []float64{phi}, wires...)
}

// DoubleExcitationMinus is the double excitation rotation with a
// e^{-i phi/2} phase on the states outside the rotation subspace.
func DoubleExcitationMinus(q Queue, phi float64, wires ...int) *Gate {
	return newGate(q, KindDoubleExcitationMinus, []float64{phi}, wires...)
}

// DoubleExcitationPlus is the double excitation rotation with a
// e^{+i phi/2} phase on the states outside the rotation subspace.
func DoubleExcitationPlus(q Queue, phi float64, wires ...int) *Gate {
	return newGate(q, KindDoubleExcitationPlus, []float64{phi}, wires...)
}

// OrbitalRotation is the spin-adapted spatial orbital rotation on four
// wires: a single-excitation rotation applied to the alpha and beta spin
// orbitals simultaneously.
func OrbitalRotation(q Queue, phi float64, wires ...int) *Gate {
	return newGate(q, KindOrbitalRotation, []float64{phi}, wires...)
}

// Matrices. Built as a diagonal base plus sparse off-diagonal
// scatter-adds so the representation stays exact. The phase-shifted
// variants upcast to complex before mixing the real rotation block with
// the imaginary phase diagonal.

func singleExcitationMatrix(params []float64) *qmath.Matrix {
	c := complex(math.Cos(params[0]/2), 0)
	s := complex(math.Sin(params[0]/2), 0)
	return qmath.Diag(1, c, c, 1).
		ScatterAdd(1, 2, -s).
		ScatterAdd(2, 1, s)
}

func singleExcitationPhasedMatrix(phi, sign float64) *qmath.Matrix {
	c := complex(math.Cos(phi/2), 0)
	s := complex(math.Sin(phi/2), 0)
	e := cmplx.Exp(complex(0, sign*phi/2))
	rot := qmath.Diag(0, c, c, 0).AsComplex()
	return qmath.Diag(e, 0, 0, e).Add(rot).
		ScatterAdd(1, 2, -s).
		ScatterAdd(2, 1, s)
}

func singleExcitationMinusMatrix(params []float64) *qmath.Matrix {
	return singleExcitationPhasedMatrix(params[0], -1)
}

func singleExcitationPlusMatrix(params []float64) *qmath.Matrix {
	return singleExcitationPhasedMatrix(params[0], +1)
}

func doubleExcitationMatrix(params []float64) *qmath.Matrix {
	c := complex(math.Cos(params[0]/2), 0)
	s := complex(math.Sin(params[0]/2), 0)
	return qmath.Diag(1, 1, 1, c, 1, 1, 1, 1, 1, 1, 1, 1, c, 1, 1, 1).
		ScatterAdd(3, 12, -s).
		ScatterAdd(12, 3, s)
}

// |0011> = 3 and |1100> = 12 span the rotation subspace; every other
// basis state picks up the phase.
func doubleExcitationPhasedMatrix(phi, sign float64) *qmath.Matrix {
	c := complex(math.Cos(phi/2), 0)
	s := complex(math.Sin(phi/2), 0)
	e := cmplx.Exp(complex(0, sign*phi/2))
	return qmath.Diag(e, e, e, 0, e, e, e, e, e, e, e, e, 0, e, e, e).
		ScatterAdd(3, 3, c).
		ScatterAdd(3, 12, -s).
		ScatterAdd(12, 3, s).
		ScatterAdd(12, 12, c)
}

func doubleExcitationMinusMatrix(params []float64) *qmath.Matrix {
	return doubleExcitationPhasedMatrix(params[0], -1)
}

func doubleExcitationPlusMatrix(params []float64) *qmath.Matrix {
	return doubleExcitationPhasedMatrix(params[0], +1)
}

func orbitalRotationMatrix(params []float64) *qmath.Matrix {
	c := complex(math.Cos(params[0]/2), 0)
	s := complex(math.Sin(params[0]/2), 0)
	cc := c * c
	cs := c * s
	ss := s * s

	m := qmath.Diag(1, c, c, cc, c, 1, cc, c, c, cc, 1, c, cc, c, c, 1)
	for _, e := range []struct {
		i, j int
		v    complex128
	}{
		{1, 4, -s}, {4, 1, s},
		{2, 8, -s}, {8, 2, s},
		{7, 13, -s}, {13, 7, s},
		{11, 14, -s}, {14, 11, s},
		{3, 6, -cs}, {3, 9, -cs}, {3, 12, ss},
		{6, 3, cs}, {6, 9, -ss}, {6, 12, -cs},
		{9, 3, cs}, {9, 6, -ss}, {9, 12, -cs},
		{12, 3, ss}, {12, 6, cs}, {12, 9, cs},
	} {
		m = m.ScatterAdd(e.i, e.j, e.v)
	}
	return m
}

// Decompositions. Product order is first-applied first; the produced
// operators are standalone values.

func singleExcitationDecomposition(phi float64, w Wires) []Operator {
	return []Operator{
		CNOT(nil, w[0], w[1]),
		CRY(nil, phi, w[1], w[0]),
		CNOT(nil, w[0], w[1]),
	}
}

func singleExcitationPhasedDecomposition(phi, phaseSign float64, w Wires) []Operator {
	return []Operator{
		PauliX(nil, w[0]),
		PauliX(nil, w[1]),
		ControlledPhaseShift(nil, phaseSign*phi/2, w[1], w[0]),
		PauliX(nil, w[0]),
		PauliX(nil, w[1]),
		ControlledPhaseShift(nil, phaseSign*phi/2, w[0], w[1]),
		CNOT(nil, w[0], w[1]),
		CRY(nil, phi, w[1], w[0]),
		CNOT(nil, w[0], w[1]),
	}
}

func singleExcitationMinusDecomposition(phi float64, w Wires) []Operator {
	return singleExcitationPhasedDecomposition(phi, -1, w)
}

func singleExcitationPlusDecomposition(phi float64, w Wires) []Operator {
	return singleExcitationPhasedDecomposition(phi, +1, w)
}

func doubleExcitationDecomposition(phi float64, w Wires) []Operator {
	return []Operator{
		CNOT(nil, w[2], w[3]),
		CNOT(nil, w[0], w[2]),
		Hadamard(nil, w[3]),
		Hadamard(nil, w[0]),
		CNOT(nil, w[2], w[3]),
		CNOT(nil, w[0], w[1]),
		RY(nil, phi/8, w[1]),
		RY(nil, -phi/8, w[0]),
		CNOT(nil, w[0], w[3]),
		Hadamard(nil, w[3]),
		CNOT(nil, w[3], w[1]),
		RY(nil, phi/8, w[1]),
		RY(nil, -phi/8, w[0]),
		CNOT(nil, w[2], w[1]),
		CNOT(nil, w[2], w[0]),
		RY(nil, -phi/8, w[1]),
		RY(nil, phi/8, w[0]),
		CNOT(nil, w[3], w[1]),
		Hadamard(nil, w[3]),
		CNOT(nil, w[0], w[3]),
		RY(nil, -phi/8, w[1]),
		RY(nil, phi/8, w[0]),
		CNOT(nil, w[0], w[1]),
		CNOT(nil, w[2], w[0]),
		Hadamard(nil, w[0]),
		Hadamard(nil, w[3]),
		CNOT(nil, w[0], w[2]),
		CNOT(nil, w[2], w[3]),
	}
}

func orbitalRotationDecomposition(phi float64, w Wires) []Operator {
	return []Operator{
		Hadamard(nil, w[3]),
		Hadamard(nil, w[2]),
		CNOT(nil, w[3], w[1]),
		CNOT(nil, w[2], w[0]),
		RY(nil, phi/2, w[3]),
		RY(nil, phi/2, w[2]),
		RY(nil, phi/2, w[1]),
		RY(nil, phi/2, w[0]),
		CNOT(nil, w[3], w[1]),
		CNOT(nil, w[2], w[0]),
		Hadamard(nil, w[3]),
		Hadamard(nil, w[2]),
	}
}

// Generators, under the convention Matrix(phi) == exp(-i*phi*G/2).

func singleExcitationGenerator(w Wires) Generator {
	return NewPauliSum(w,
		PauliTerm{Coeff: -0.5, Word: map[int]Pauli{w[0]: X, w[1]: Y}},
		PauliTerm{Coeff: 0.5, Word: map[int]Pauli{w[0]: Y, w[1]: X}},
	)
}

func singleExcitationMinusGenerator(w Wires) Generator {
	return NewPauliSum(w,
		PauliTerm{Coeff: 0.5, Word: nil},
		PauliTerm{Coeff: -0.5, Word: map[int]Pauli{w[0]: X, w[1]: Y}},
		PauliTerm{Coeff: 0.5, Word: map[int]Pauli{w[0]: Y, w[1]: X}},
		PauliTerm{Coeff: 0.5, Word: map[int]Pauli{w[0]: Z, w[1]: Z}},
	)
}

func singleExcitationPlusGenerator(w Wires) Generator {
	return NewPauliSum(w,
		PauliTerm{Coeff: -0.5, Word: nil},
		PauliTerm{Coeff: -0.5, Word: map[int]Pauli{w[0]: X, w[1]: Y}},
		PauliTerm{Coeff: 0.5, Word: map[int]Pauli{w[0]: Y, w[1]: X}},
		PauliTerm{Coeff: -0.5, Word: map[int]Pauli{w[0]: Z, w[1]: Z}},
	)
}

func doubleExcitationGenerator(w Wires) Generator {
	words := [][4]Pauli{
		{X, X, X, Y},
		{X, X, Y, X},
		{X, Y, X, X},
		{X, Y, Y, Y},
		{Y, X, X, X},
		{Y, X, Y, Y},
		{Y, Y, X, Y},
		{Y, Y, Y, X},
	}
	coeffs := []float64{-0.125, -0.125, 0.125, -0.125, 0.125, -0.125, 0.125, 0.125}
	terms := make([]PauliTerm, len(words))
	for i, word := range words {
		terms[i] = PauliTerm{Coeff: coeffs[i], Word: map[int]Pauli{
			w[0]: word[0], w[1]: word[1], w[2]: word[2], w[3]: word[3],
		}}
	}
	return NewPauliSum(w, terms...)
}

// The phase-shifted double excitations are generated by observables
// supported on only the two rotation-subspace states plus a uniform
// diagonal, so they are kept sparse rather than expanded into the 256
// Pauli words a dense 16x16 Hermitian would need.
func doubleExcitationPhasedGenerator(w Wires, diag float64) Generator {
	entries := make([]qmath.Entry, 0, 16)
	for i := 0; i < 16; i++ {
		if i == 3 || i == 12 {
			continue
		}
		entries = append(entries, qmath.Entry{Row: i, Col: i, V: complex(diag, 0)})
	}
	entries = append(entries,
		qmath.Entry{Row: 3, Col: 12, V: -1i},
		qmath.Entry{Row: 12, Col: 3, V: 1i},
	)
	return NewSparseHamiltonian(w, qmath.NewSparse(16, entries))
}

func doubleExcitationMinusGenerator(w Wires) Generator {
	return doubleExcitationPhasedGenerator(w, 1)
}

func doubleExcitationPlusGenerator(w Wires) Generator {
	return doubleExcitationPhasedGenerator(w, -1)
}

func orbitalRotationGenerator(w Wires) Generator {
	return NewPauliSum(w,
		PauliTerm{Coeff: -0.5, Word: map[int]Pauli{w[0]: X, w[2]: Y}},
		PauliTerm{Coeff: 0.5, Word: map[int]Pauli{w[0]: Y, w[2]: X}},
		PauliTerm{Coeff: -0.5, Word: map[int]Pauli{w[1]: X, w[3]: Y}},
		PauliTerm{Coeff: 0.5, Word: map[int]Pauli{w[1]: Y, w[3]: X}},
	)
}
