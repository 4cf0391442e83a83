package transform_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitjansc/pennylane/internal/ops"
	"github.com/amitjansc/pennylane/internal/queuing"
	"github.com/amitjansc/pennylane/internal/transform"
)

func TestAdjointRejectsNonCallable(t *testing.T) {
	ctx := queuing.NewContext()

	for _, bad := range []any{
		[]ops.Operator{ops.PauliX(nil, 0)},
		ops.PauliX(nil, 0),
		"PauliX",
		nil,
	} {
		fn, err := transform.Adjoint(ctx, bad)
		assert.Nil(t, fn, "%T", bad)
		require.Error(t, err, "%T", bad)
		assert.True(t, errors.Is(err, transform.ErrNotCallable), "%T: %v", bad, err)
	}

	_, err := transform.Adjoint(ctx, []ops.Operator{ops.PauliX(nil, 0)})
	assert.Contains(t, err.Error(), "[]ops.Operator", "message should name the offending type")
	assert.Contains(t, err.Error(), "not to already-constructed operations")

	var nilFn func()
	_, err = transform.Adjoint(ctx, nilFn)
	assert.ErrorIs(t, err, transform.ErrNotCallable)
}

func TestAdjointOfConstructor(t *testing.T) {
	ctx := queuing.NewContext()
	adj, err := transform.Adjoint(ctx, ops.RY)
	require.NoError(t, err)

	tape := ctx.Enter()
	res, err := adj(0.123, 0)
	ctx.Exit(tape)
	require.NoError(t, err)

	op := res.Op()
	require.NotNil(t, op)
	g, ok := op.(*ops.Gate)
	require.True(t, ok, "expected *ops.Gate, got %T", op)
	assert.Equal(t, ops.KindRY, g.Kind())
	assert.InDelta(t, -0.123, g.Parameters()[0], 1e-12)
	assert.True(t, g.Wires().Equal(ops.Wires{0}))

	// The adjointed operation lands on the ambient tape.
	require.Equal(t, 1, tape.Len())
	assert.Same(t, op, tape.Operations()[0])
}

func TestAdjointReversesSequence(t *testing.T) {
	ctx := queuing.NewContext()
	circuit := func(q ops.Queue) {
		ops.RY(q, 0.1, 0)
		ops.Hadamard(q, 1)
		ops.SingleExcitation(q, 0.7, 0, 1)
	}
	adj, err := transform.Adjoint(ctx, circuit)
	require.NoError(t, err)

	tape := ctx.Enter()
	res, err := adj()
	ctx.Exit(tape)
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.Equal(t, "SingleExcitation", res[0].Name())
	assert.InDelta(t, -0.7, res[0].Parameters()[0], 1e-12)
	assert.Equal(t, "Hadamard", res[1].Name())
	assert.Equal(t, "RY", res[2].Name())
	assert.InDelta(t, -0.1, res[2].Parameters()[0], 1e-12)

	// Only the adjointed operations are visible on the ambient tape; the
	// originals were captured on a hidden inner tape.
	require.Equal(t, 3, tape.Len())
	for i := range res {
		assert.Same(t, res[i], tape.Operations()[i], "op %d", i)
	}
}

func TestAdjointVariadicWires(t *testing.T) {
	ctx := queuing.NewContext()
	adj, err := transform.Adjoint(ctx, ops.CNOT)
	require.NoError(t, err)

	res, err := adj(2, 0)
	require.NoError(t, err)
	op := res.Op()
	require.NotNil(t, op)
	assert.Equal(t, "CNOT", op.Name())
	assert.True(t, op.Wires().Equal(ops.Wires{2, 0}))
}

func TestDoubleAdjointRestoresCircuit(t *testing.T) {
	ctx := queuing.NewContext()
	circuit := func(q ops.Queue) {
		ops.RY(q, 0.1, 0)
		ops.PauliX(q, 1)
	}
	adj, err := transform.Adjoint(ctx, circuit)
	require.NoError(t, err)
	// An adjointed Fn is itself callable, so it can be transformed again.
	adjAdj, err := transform.Adjoint(ctx, adj)
	require.NoError(t, err)

	res, err := adjAdj()
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, "RY", res[0].Name())
	assert.InDelta(t, 0.1, res[0].Parameters()[0], 1e-12)
	assert.Equal(t, "PauliX", res[1].Name())
}

func TestAdjointWrapsWithoutClosedForm(t *testing.T) {
	ctx := queuing.NewContext()
	circuit := func(q ops.Queue) {
		ops.NewSum(q, ops.PauliX(nil, 0), ops.RY(nil, 0.3, 1))
	}
	adj, err := transform.Adjoint(ctx, circuit)
	require.NoError(t, err)

	res, err := adj()
	require.NoError(t, err)
	w, ok := res.Op().(*ops.AdjointOp)
	require.True(t, ok, "expected *ops.AdjointOp, got %T", res.Op())
	assert.Equal(t, "Adjoint(Sum)", w.Name())

	// Adjointing again collapses the wrapper back to the base sum.
	adjAdj, err := transform.Adjoint(ctx, adj)
	require.NoError(t, err)
	res, err = adjAdj()
	require.NoError(t, err)
	_, ok = res.Op().(*ops.Sum)
	assert.True(t, ok, "expected *ops.Sum, got %T", res.Op())
}

func TestAdjointOfReturnedSequence(t *testing.T) {
	ctx := queuing.NewContext()
	// Standalone construction: nothing is emitted, the sequence is
	// returned instead.
	builder := func() []ops.Operator {
		return []ops.Operator{
			ops.PauliX(nil, 0),
			ops.RY(nil, 0.4, 1),
		}
	}
	adj, err := transform.Adjoint(ctx, builder)
	require.NoError(t, err)

	res, err := adj()
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "RY", res[0].Name())
	assert.InDelta(t, -0.4, res[0].Parameters()[0], 1e-12)
	assert.Equal(t, "PauliX", res[1].Name())
}

func TestAdjointOfReturnedTape(t *testing.T) {
	scratch := queuing.NewContext()
	recorded := scratch.Enter()
	ops.Hadamard(scratch, 0)
	ops.CNOT(scratch, 0, 1)
	scratch.Exit(recorded)

	ctx := queuing.NewContext()
	adj, err := transform.Adjoint(ctx, func() *queuing.Tape { return recorded })
	require.NoError(t, err)

	res, err := adj()
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "CNOT", res[0].Name())
	assert.Equal(t, "Hadamard", res[1].Name())
}

func TestAdjointPropagatesError(t *testing.T) {
	ctx := queuing.NewContext()
	boom := errors.New("boom")
	adj, err := transform.Adjoint(ctx, func(q ops.Queue) error {
		ops.PauliX(q, 0)
		return boom
	})
	require.NoError(t, err)

	tape := ctx.Enter()
	res, err := adj()
	ctx.Exit(tape)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, tape.Len(), "failed transform must not emit")
	assert.True(t, ctx.Recording() == false && ctx.Depth() == 0)
}

func TestAdjointArityMismatch(t *testing.T) {
	ctx := queuing.NewContext()
	adj, err := transform.Adjoint(ctx, ops.RY)
	require.NoError(t, err)

	_, err = adj(0.1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arguments")
}

func TestAdjointRestoresContextOnPanic(t *testing.T) {
	ctx := queuing.NewContext()
	adj, err := transform.Adjoint(ctx, func() { panic("boom") })
	require.NoError(t, err)

	tape := ctx.Enter()
	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic did not propagate")
			}
		}()
		adj() //nolint:errcheck
	}()

	// The inner tape was popped and the suspension released.
	assert.Equal(t, 1, ctx.Depth())
	assert.True(t, ctx.Recording())
	ops.PauliZ(ctx, 0)
	ctx.Exit(tape)
	require.Equal(t, 1, tape.Len())
	assert.Equal(t, "PauliZ", tape.Operations()[0].Name())
}

func TestAdjointEmptyProcedure(t *testing.T) {
	ctx := queuing.NewContext()
	adj, err := transform.Adjoint(ctx, func() {})
	require.NoError(t, err)

	res, err := adj()
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.Nil(t, res.Op())
}

func ExampleAdjoint() {
	ctx := queuing.NewContext()
	subroutine := func(q ops.Queue) {
		ops.Hadamard(q, 0)
		ops.SingleExcitation(q, 1.23, 0, 1)
	}
	adj, _ := transform.Adjoint(ctx, subroutine)

	tape := ctx.Enter()
	adj() //nolint:errcheck
	ctx.Exit(tape)

	for _, op := range tape.Operations() {
		fmt.Println(op.Label(2, ""))
	}
	// Output:
	// G(-1.23)
	// H
}
