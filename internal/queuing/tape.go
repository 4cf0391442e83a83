package queuing

import (
	"github.com/google/uuid"

	"github.com/amitjansc/pennylane/internal/ops"
)

// Tape is the ordered capture of operators constructed during one
// recording session. A tape is owned by exactly one session: the context
// freezes it on exit, after which further recording is a programmer
// error.
type Tape struct {
	id         string
	operations []ops.Operator
	frozen     bool
}

// NewTape creates an empty, unfrozen tape with a fresh session ID.
func NewTape() *Tape {
	return &Tape{
		id:         uuid.NewString(),
		operations: make([]ops.Operator, 0, 16),
	}
}

// ID returns the tape's session identifier.
func (t *Tape) ID() string {
	return t.id
}

// Record appends an operator. Recording onto a finalized tape panics:
// it means an operator handle escaped its recording scope.
func (t *Tape) Record(op ops.Operator) {
	if t.frozen {
		panic("queuing: record on a finalized tape")
	}
	t.operations = append(t.operations, op)
}

// Operations returns the captured operators in construction order.
func (t *Tape) Operations() []ops.Operator {
	return t.operations
}

// Len returns the number of captured operators.
func (t *Tape) Len() int {
	return len(t.operations)
}

// Frozen reports whether the tape has been finalized.
func (t *Tape) Frozen() bool {
	return t.frozen
}

func (t *Tape) freeze() {
	t.frozen = true
}
