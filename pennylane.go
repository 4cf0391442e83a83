// Copyright 2025 The PennyLane-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pennylane provides quantum circuit operators with recording
// and adjoint transformation.
//
// The package defines the public API over three concerns:
//   - Operators: gate kinds with exact matrices, generators,
//     decompositions and closed-form adjoints
//   - Recording: an explicit context that operator construction reports
//     to, capturing ordered tapes
//   - Adjoint transform: capture a procedure's operations, reverse them
//     and map each to its conjugate transpose
//
// Example:
//
//	ctx := pennylane.NewContext()
//	tape := ctx.Enter()
//	pennylane.SingleExcitation(ctx, 1.23, 0, 1)
//	adj, _ := pennylane.Adjoint(ctx, func() {
//	    pennylane.RY(ctx, 0.5, 0)
//	    pennylane.CNOT(ctx, 0, 1)
//	})
//	adj() // emits CNOT(0,1), RY(-0.5, 0) onto the tape
//	ctx.Exit(tape)
package pennylane

import (
	"github.com/amitjansc/pennylane/internal/ops"
	"github.com/amitjansc/pennylane/internal/queuing"
	"github.com/amitjansc/pennylane/internal/transform"
)

// Type aliases for public API

// Operator is the capability set shared by gates, wrappers and sums.
type Operator = ops.Operator

// Gate is a concrete operator of one of the registered kinds.
type Gate = ops.Gate

// Kind tags a gate family.
type Kind = ops.Kind

// Wires is an ordered, duplicate-free sequence of site identifiers.
type Wires = ops.Wires

// Queue receives operator-construction notifications; nil means
// standalone construction.
type Queue = ops.Queue

// Generator is a Hermitian observable generating a gate.
type Generator = ops.Generator

// PauliSum is a generator expressed as weighted Pauli-tensor terms.
type PauliSum = ops.PauliSum

// SparseHamiltonian is a generator kept in sparse coordinate form.
type SparseHamiltonian = ops.SparseHamiltonian

// AdjointOp structurally represents the conjugate transpose of a base
// operator.
type AdjointOp = ops.AdjointOp

// Sum is the arithmetic sum of two or more operators.
type Sum = ops.Sum

// GradRecipe is an ordered parameter-shift rule.
type GradRecipe = ops.GradRecipe

// Context is the stack-disciplined recording registry.
type Context = queuing.Context

// Tape is the ordered capture of one recording session.
type Tape = queuing.Tape

// Result is the ordered output of an adjoint invocation.
type Result = transform.Result

// Errors surfaced by capability queries and the adjoint transform.
var (
	ErrDecompositionUndefined = ops.ErrDecompositionUndefined
	ErrGeneratorUndefined     = ops.ErrGeneratorUndefined
	ErrNotCallable            = transform.ErrNotCallable
)

// NewContext creates a recording context with no active tape.
func NewContext() *Context {
	return queuing.NewContext()
}

// NewSum builds the sum of the given operators.
func NewSum(q Queue, summands ...Operator) *Sum {
	return ops.NewSum(q, summands...)
}

// NewAdjointOp wraps base in a structural adjoint; wrapping a wrapper
// collapses to the base operator.
func NewAdjointOp(q Queue, base Operator) Operator {
	return ops.NewAdjointOp(q, base)
}

// Adjoint creates a function applying the adjoint of the operations fn
// constructs, in reverse order.
//
// Example:
//
//	func subroutine(q pennylane.Queue) {
//	    pennylane.RY(q, 0.123, 0)
//	    pennylane.CNOT(q, 0, 1)
//	}
//
//	adj, err := pennylane.Adjoint(ctx, subroutine)
//	if err != nil { ... }
//	result, err := adj()
func Adjoint(ctx *Context, fn any) (transform.Fn, error) {
	return transform.Adjoint(ctx, fn)
}

// Gate constructors. Each records the new gate on q (when non-nil) and
// returns it.

// PauliX applies the Pauli X (bit flip) on one wire.
func PauliX(q Queue, wire int) *Gate { return ops.PauliX(q, wire) }

// PauliY applies the Pauli Y on one wire.
func PauliY(q Queue, wire int) *Gate { return ops.PauliY(q, wire) }

// PauliZ applies the Pauli Z (phase flip) on one wire.
func PauliZ(q Queue, wire int) *Gate { return ops.PauliZ(q, wire) }

// Hadamard applies the Hadamard gate on one wire.
func Hadamard(q Queue, wire int) *Gate { return ops.Hadamard(q, wire) }

// RY rotates one wire about the Y axis by theta.
func RY(q Queue, theta float64, wire int) *Gate { return ops.RY(q, theta, wire) }

// CNOT applies a controlled NOT; wires are (control, target).
func CNOT(q Queue, wires ...int) *Gate { return ops.CNOT(q, wires...) }

// CRY applies a controlled Y rotation; wires are (control, target).
func CRY(q Queue, theta float64, wires ...int) *Gate {
	return ops.CRY(q, theta, wires...)
}

// ControlledPhaseShift applies a phase e^{i phi} to the |11> state.
func ControlledPhaseShift(q Queue, phi float64, wires ...int) *Gate {
	return ops.ControlledPhaseShift(q, phi, wires...)
}

// SingleExcitation rotates by phi in the {|01>, |10>} subspace.
func SingleExcitation(q Queue, phi float64, wires ...int) *Gate {
	return ops.SingleExcitation(q, phi, wires...)
}

// SingleExcitationMinus is the single excitation rotation with a
// negative phase shift outside the rotation subspace.
func SingleExcitationMinus(q Queue, phi float64, wires ...int) *Gate {
	return ops.SingleExcitationMinus(q, phi, wires...)
}

// SingleExcitationPlus is the single excitation rotation with a positive
// phase shift outside the rotation subspace.
func SingleExcitationPlus(q Queue, phi float64, wires ...int) *Gate {
	return ops.SingleExcitationPlus(q, phi, wires...)
}

// DoubleExcitation rotates by phi in the {|0011>, |1100>} subspace.
func DoubleExcitation(q Queue, phi float64, wires ...int) *Gate {
	return ops.DoubleExcitation(q, phi, wires...)
}

// DoubleExcitationMinus is the double excitation rotation with a
// negative phase shift outside the rotation subspace.
func DoubleExcitationMinus(q Queue, phi float64, wires ...int) *Gate {
	return ops.DoubleExcitationMinus(q, phi, wires...)
}

// DoubleExcitationPlus is the double excitation rotation with a positive
// phase shift outside the rotation subspace.
func DoubleExcitationPlus(q Queue, phi float64, wires ...int) *Gate {
	return ops.DoubleExcitationPlus(q, phi, wires...)
}

// OrbitalRotation is the spin-adapted spatial orbital rotation on four
// wires.
func OrbitalRotation(q Queue, phi float64, wires ...int) *Gate {
	return ops.OrbitalRotation(q, phi, wires...)
}
