package queuing

import (
	"testing"

	"github.com/amitjansc/pennylane/internal/ops"
)

// TestRecording tests that construction reports to the active tape.
func TestRecording(t *testing.T) {
	ctx := NewContext()
	tape := ctx.Enter()

	x := ops.PauliX(ctx, 0)
	ry := ops.RY(ctx, 0.5, 1)
	ctx.Exit(tape)

	got := tape.Operations()
	if len(got) != 2 {
		t.Fatalf("Len() = %d, want 2", tape.Len())
	}
	if got[0] != ops.Operator(x) || got[1] != ops.Operator(ry) {
		t.Errorf("Operations() = %v, want [%v %v]", got, x, ry)
	}
	if !tape.Frozen() {
		t.Error("tape not frozen after Exit")
	}
}

// TestStandalone tests that nil-queue and empty-context construction
// leaves operators unrecorded.
func TestStandalone(t *testing.T) {
	ops.PauliX(nil, 0)

	ctx := NewContext()
	if ctx.Recording() {
		t.Error("fresh context reports recording")
	}
	ops.PauliX(ctx, 0)
	if ctx.Active() != nil {
		t.Errorf("Active() = %v, want nil", ctx.Active())
	}

	tape := ctx.Enter()
	ctx.Exit(tape)
	if tape.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tape.Len())
	}
}

// TestNesting tests that only the innermost tape records and that the
// outer session resumes after the inner exits.
func TestNesting(t *testing.T) {
	ctx := NewContext()
	outer := ctx.Enter()
	ops.PauliX(ctx, 0)

	inner := ctx.Enter()
	if d := ctx.Depth(); d != 2 {
		t.Fatalf("Depth() = %d, want 2", d)
	}
	ops.PauliY(ctx, 0)
	ctx.Exit(inner)

	ops.PauliZ(ctx, 0)
	ctx.Exit(outer)

	if inner.Len() != 1 || inner.Operations()[0].Name() != "PauliY" {
		t.Errorf("inner tape = %v, want [PauliY]", inner.Operations())
	}
	if outer.Len() != 2 {
		t.Fatalf("outer Len() = %d, want 2", outer.Len())
	}
	if outer.Operations()[0].Name() != "PauliX" || outer.Operations()[1].Name() != "PauliZ" {
		t.Errorf("outer tape = %v, want [PauliX PauliZ]", outer.Operations())
	}
}

// TestSuspend tests that a suspend guard blocks the covered tape and
// that restore resumes delivery.
func TestSuspend(t *testing.T) {
	ctx := NewContext()
	tape := ctx.Enter()

	restore := ctx.Suspend()
	if ctx.Recording() {
		t.Error("Recording() = true under suspension")
	}
	ops.PauliX(ctx, 0)
	restore()

	if !ctx.Recording() {
		t.Error("Recording() = false after restore")
	}
	ops.PauliY(ctx, 0)
	ctx.Exit(tape)

	if tape.Len() != 1 || tape.Operations()[0].Name() != "PauliY" {
		t.Errorf("tape = %v, want [PauliY]", tape.Operations())
	}
}

// TestSuspendCoversOnlyCurrentTape tests that a tape entered while a
// guard is held records normally.
func TestSuspendCoversOnlyCurrentTape(t *testing.T) {
	ctx := NewContext()
	outer := ctx.Enter()
	restore := ctx.Suspend()

	inner := ctx.Enter()
	if !ctx.Recording() {
		t.Fatal("tape entered under suspension does not record")
	}
	ops.PauliX(ctx, 0)
	ctx.Exit(inner)

	if ctx.Recording() {
		t.Error("outer tape recording while still suspended")
	}
	ops.PauliY(ctx, 0)
	restore()
	ctx.Exit(outer)

	if inner.Len() != 1 || inner.Operations()[0].Name() != "PauliX" {
		t.Errorf("inner tape = %v, want [PauliX]", inner.Operations())
	}
	if outer.Len() != 0 {
		t.Errorf("outer Len() = %d, want 0", outer.Len())
	}
}

// TestNestedSuspensions tests that each restore undoes exactly its own
// guard.
func TestNestedSuspensions(t *testing.T) {
	ctx := NewContext()
	tape := ctx.Enter()

	r1 := ctx.Suspend()
	r2 := ctx.Suspend()
	r2()
	if ctx.Recording() {
		t.Error("one guard released, one held: should not record")
	}
	r1()
	if !ctx.Recording() {
		t.Error("all guards released: should record")
	}
	ctx.Exit(tape)
}

// TestRestoreIdempotent tests that calling a restore twice does not
// release another guard.
func TestRestoreIdempotent(t *testing.T) {
	ctx := NewContext()
	tape := ctx.Enter()

	r1 := ctx.Suspend()
	r2 := ctx.Suspend()
	r1()
	r1()
	if ctx.Recording() {
		t.Error("double restore released a guard it did not own")
	}
	r2()
	if !ctx.Recording() {
		t.Error("context still suspended after both guards released")
	}
	ctx.Exit(tape)
}

// TestExitWrongHandlePanics tests the improper-nesting guard.
func TestExitWrongHandlePanics(t *testing.T) {
	ctx := NewContext()
	outer := ctx.Enter()
	ctx.Enter()

	defer func() {
		if recover() == nil {
			t.Error("Exit accepted a non-top handle")
		}
	}()
	ctx.Exit(outer)
}

// TestRecordOnFrozenTapePanics tests the escaped-handle guard.
func TestRecordOnFrozenTapePanics(t *testing.T) {
	ctx := NewContext()
	tape := ctx.Enter()
	ctx.Exit(tape)

	defer func() {
		if recover() == nil {
			t.Error("frozen tape accepted a record")
		}
	}()
	tape.Record(ops.PauliX(nil, 0))
}

// TestTapeIDs tests that sessions get distinct identifiers.
func TestTapeIDs(t *testing.T) {
	ctx := NewContext()
	a := ctx.Enter()
	ctx.Exit(a)
	b := ctx.Enter()
	ctx.Exit(b)

	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("tape IDs not distinct: %q vs %q", a.ID(), b.ID())
	}
}
