// Package queuing implements the recording context: a stack-disciplined
// registry that operator construction reports to, with scope-based
// suspension.
//
// The context is an explicit object passed into operator-constructing
// call sites (as an ops.Queue), never package-level state. The model is
// single-threaded: one call stack observes a context at a time, and all
// suspension is stack push/pop, so no locking is involved. A concurrent
// caller should use one context per goroutine.
package queuing

import "github.com/amitjansc/pennylane/internal/ops"

// Context is a stack of active tapes. The top of the stack receives
// construction notifications while no suspension covers it.
type Context struct {
	stack []*Tape
	// suspensions holds the stack depth at which each active suspend
	// guard was taken. A guard covers the tape that was on top at that
	// moment; tapes entered afterwards still record.
	suspensions []int
}

// NewContext creates a context with no active tape. Recording to it is a
// no-op until Enter is called, so standalone operator construction works
// against a fresh context as well as against a nil queue.
func NewContext() *Context {
	return &Context{}
}

// Enter opens a recording session: a fresh tape is pushed and returned
// as the session handle.
func (c *Context) Enter() *Tape {
	t := NewTape()
	c.stack = append(c.stack, t)
	return t
}

// Exit closes the session identified by t, freezing the tape. The handle
// must be the current top of stack; anything else is improper nesting
// and panics.
func (c *Context) Exit(t *Tape) {
	if len(c.stack) == 0 || c.stack[len(c.stack)-1] != t {
		panic("queuing: Exit handle is not the active tape")
	}
	c.stack = c.stack[:len(c.stack)-1]
	t.freeze()
}

// Suspend disables notification delivery to the currently active tape
// without popping the stack. Tapes entered while the guard is held still
// record normally; delivery to the covered tape resumes when the
// returned restore function runs. Restore must run on every exit path;
// extra calls are no-ops. Nested suspensions compose: each restore
// undoes exactly its own guard.
func (c *Context) Suspend() (restore func()) {
	c.suspensions = append(c.suspensions, len(c.stack))
	released := false
	return func() {
		if !released {
			released = true
			c.suspensions = c.suspensions[:len(c.suspensions)-1]
		}
	}
}

// Record delivers a construction notification to the active tape. With
// no active tape, or while suspended, the operator is simply left
// standalone.
func (c *Context) Record(op ops.Operator) {
	if c.Recording() {
		c.stack[len(c.stack)-1].Record(op)
	}
}

// Recording reports whether notifications currently reach a tape.
func (c *Context) Recording() bool {
	if len(c.stack) == 0 {
		return false
	}
	for _, depth := range c.suspensions {
		if depth >= len(c.stack) {
			return false
		}
	}
	return true
}

// Active returns the top-of-stack tape, or nil.
func (c *Context) Active() *Tape {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// Depth returns the number of open recording sessions.
func (c *Context) Depth() int {
	return len(c.stack)
}
