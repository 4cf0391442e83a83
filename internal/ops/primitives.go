package ops

import (
	"math"
	"math/cmplx"

	"github.com/amitjansc/pennylane/internal/qmath"
)

// Single- and two-wire primitives. These are the targets of the
// excitation-gate decompositions.

// PauliX applies the Pauli X (bit flip) on one wire.
func PauliX(q Queue, wire int) *Gate {
	return newGate(q, KindPauliX, nil, wire)
}

// PauliY applies the Pauli Y on one wire.
func PauliY(q Queue, wire int) *Gate {
	return newGate(q, KindPauliY, nil, wire)
}

// PauliZ applies the Pauli Z (phase flip) on one wire.
func PauliZ(q Queue, wire int) *Gate {
	return newGate(q, KindPauliZ, nil, wire)
}

// Hadamard applies the Hadamard gate on one wire.
func Hadamard(q Queue, wire int) *Gate {
	return newGate(q, KindHadamard, nil, wire)
}

// RY rotates one wire about the Y axis by theta.
func RY(q Queue, theta float64, wire int) *Gate {
	return newGate(q, KindRY, []float64{theta}, wire)
}

// CNOT applies a controlled NOT; wires are (control, target).
func CNOT(q Queue, wires ...int) *Gate {
	return newGate(q, KindCNOT, nil, wires...)
}

// CRY applies a controlled Y rotation; wires are (control, target).
func CRY(q Queue, theta float64, wires ...int) *Gate {
	return newGate(q, KindCRY, []float64{theta}, wires...)
}

// ControlledPhaseShift applies a phase e^{i phi} to the |11> state;
// wires are (control, target).
func ControlledPhaseShift(q Queue, phi float64, wires ...int) *Gate {
	return newGate(q, KindControlledPhaseShift, []float64{phi}, wires...)
}

func pauliXMatrix([]float64) *qmath.Matrix {
	return qmath.FromRows([][]complex128{
		{0, 1},
		{1, 0},
	})
}

func pauliYMatrix([]float64) *qmath.Matrix {
	return qmath.FromRows([][]complex128{
		{0, -1i},
		{1i, 0},
	})
}

func pauliZMatrix([]float64) *qmath.Matrix {
	return qmath.Diag(1, -1)
}

func hadamardMatrix([]float64) *qmath.Matrix {
	h := complex(1/math.Sqrt2, 0)
	return qmath.FromRows([][]complex128{
		{h, h},
		{h, -h},
	})
}

func ryMatrix(params []float64) *qmath.Matrix {
	c := complex(math.Cos(params[0]/2), 0)
	s := complex(math.Sin(params[0]/2), 0)
	return qmath.FromRows([][]complex128{
		{c, -s},
		{s, c},
	})
}

func cnotMatrix([]float64) *qmath.Matrix {
	return qmath.FromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
}

func cryMatrix(params []float64) *qmath.Matrix {
	c := complex(math.Cos(params[0]/2), 0)
	s := complex(math.Sin(params[0]/2), 0)
	return qmath.Diag(1, 1, c, c).
		ScatterAdd(2, 3, -s).
		ScatterAdd(3, 2, s)
}

func controlledPhaseShiftMatrix(params []float64) *qmath.Matrix {
	return qmath.Diag(1, 1, 1, cmplx.Exp(complex(0, params[0])))
}
