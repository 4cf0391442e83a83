// Package transform implements tape-to-tape transforms over recorded
// operator sequences. The only transform in this module is Adjoint:
// capture what a procedure constructs, reverse it and map every operator
// to its conjugate transpose.
package transform

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/amitjansc/pennylane/internal/ops"
	"github.com/amitjansc/pennylane/internal/queuing"
)

// ErrNotCallable is returned when Adjoint is handed something that is
// not a function — typically a list of already-constructed operators.
var ErrNotCallable = errors.New("transform: not callable")

// Result is the ordered sequence of adjointed operators produced by an
// adjoint invocation: N inputs give N outputs, order reversed.
type Result []ops.Operator

// Op returns the single produced operator, or nil when the invocation
// produced zero or several.
func (r Result) Op() ops.Operator {
	if len(r) != 1 {
		return nil
	}
	return r[0]
}

// Fn invokes the transformed procedure with the given arguments and
// emits the adjointed operations into the ambient context.
type Fn func(args ...any) (Result, error)

var queueType = reflect.TypeOf((*ops.Queue)(nil)).Elem()

// Adjoint creates a function applying the adjoint (inverse) of the
// operations fn constructs, in reverse order. fn may be any callable
// whose side effect is operator construction on ctx: a func(), a gate
// constructor, or another adjointed Fn. When fn's first parameter is an
// ops.Queue, ctx is supplied for it automatically.
//
// Calling the returned Fn records fn's operations on a fresh inner tape
// with ambient recording suspended, then re-emits each captured
// operation, reversed and adjointed, into ctx. Operators with a
// closed-form adjoint are mapped through it; the rest are wrapped in an
// ops.AdjointOp.
//
// A procedure that emits nothing but returns a tape or operator sequence
// has that return value transformed instead.
func Adjoint(ctx *queuing.Context, fn any) (Fn, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %v of type %T; apply adjoint to a function, not to already-constructed operations", ErrNotCallable, fn, fn)
	}

	return func(args ...any) (result Result, err error) {
		restore := ctx.Suspend()
		inner := ctx.Enter()
		exited := false
		leave := func() {
			if !exited {
				exited = true
				ctx.Exit(inner)
				restore()
			}
		}
		// The context must be restored even when fn panics, or the
		// caller's recording scope would be corrupted.
		defer leave()

		returned, err := invoke(v, ctx, args)
		if err != nil {
			return nil, err
		}

		captured := inner.Operations()
		if len(captured) == 0 {
			// The procedure expanded itself into a returned tape or
			// sequence instead of emitting directly.
			captured = capturedFromReturn(returned)
		}
		leave()

		result = make(Result, 0, len(captured))
		for i := len(captured) - 1; i >= 0; i-- {
			result = append(result, ops.ApplyAdjoint(ctx, captured[i]))
		}
		return result, nil
	}, nil
}

// invoke calls fn with args, prepending ctx when the first parameter is
// an ops.Queue. A trailing non-nil error return aborts the transform.
func invoke(v reflect.Value, ctx *queuing.Context, args []any) ([]reflect.Value, error) {
	if f, ok := v.Interface().(func()); ok {
		f()
		return nil, nil
	}

	t := v.Type()
	in := make([]reflect.Value, 0, len(args)+1)
	if t.NumIn() > 0 && t.In(0) == queueType {
		in = append(in, reflect.ValueOf(ctx))
	}
	for _, a := range args {
		idx := len(in)
		want := paramType(t, idx)
		if a == nil {
			in = append(in, reflect.Zero(want))
			continue
		}
		av := reflect.ValueOf(a)
		if av.Type() != want && av.Type().ConvertibleTo(want) {
			av = av.Convert(want)
		}
		in = append(in, av)
	}
	if !t.IsVariadic() && len(in) != t.NumIn() {
		return nil, fmt.Errorf("transform: %s takes %d arguments, got %d", t, t.NumIn(), len(in))
	}

	returned := v.Call(in)
	for _, r := range returned {
		if e, ok := r.Interface().(error); ok && e != nil {
			return nil, e
		}
	}
	return returned, nil
}

// paramType returns the declared type of parameter idx, unrolling the
// variadic tail.
func paramType(t reflect.Type, idx int) reflect.Type {
	if t.IsVariadic() && idx >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	if idx >= t.NumIn() {
		return reflect.TypeOf((*any)(nil)).Elem()
	}
	return t.In(idx)
}

// capturedFromReturn interprets a procedure's return value as the
// operation sequence to transform.
func capturedFromReturn(returned []reflect.Value) []ops.Operator {
	for _, r := range returned {
		switch val := r.Interface().(type) {
		case *queuing.Tape:
			return val.Operations()
		case []ops.Operator:
			return val
		case Result:
			return val
		case ops.Operator:
			if val != nil {
				return []ops.Operator{val}
			}
		}
	}
	return nil
}
