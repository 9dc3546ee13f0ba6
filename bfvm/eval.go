package bfvm

import (
	"context"
	"errors"
	"fmt"

	"github.com/alape/bfi/bfir"
	"github.com/alape/bfi/logs"
	"lukechampine.com/blake3"
)

// Load lowers source and resets the program counter and loop stack.
// The tape and cursor are left as they are.
func (m *Machine) Load(source string) bfir.Program {
	var prog bfir.Program
	if m.cache != nil {
		key := blake3.Sum256([]byte(source))
		var ok bool
		prog, ok = m.cache.Get(key)
		if !ok {
			prog = bfir.Lower(source)
			m.cache.Add(key, prog)
		}
	} else {
		prog = bfir.Lower(source)
	}
	m.Program = prog
	m.PC = 0
	m.Stack = m.Stack[:0]

	if m.Trace != nil {
		fmt.Fprintf(m.Trace, "Compiled input: %d -> %d instructions\n", len(source), len(prog))
		prog.Dump(m.Trace)
	}

	return prog
}

// Eval lowers and runs one statement. Returned errors carry the evaluation span.
func (m *Machine) Eval(ctx context.Context, source string) error {
	if m.newSpan != nil {
		ctx, _ = m.newSpan(ctx, "")
	}

	prog := m.Load(source)
	m.Logger.DebugContext(ctx, "evaluate",
		"bytes", len(source),
		"instructions", len(prog),
	)

	before := m.steps
	err := m.Run(ctx)

	var fault *Fault
	switch {
	case err == nil:
		m.Logger.DebugContext(ctx, "evaluated",
			"steps", m.steps-before,
		)
	case errors.As(err, &fault):
		m.Logger.ErrorContext(ctx, "runtime fault",
			"error", fault.Err,
			"pc", fault.Status.PC,
			"inst", fault.Status.Inst,
			"cursor", fault.Status.Cursor,
			"cell", fault.Status.Cell,
			"stack", fault.Status.Stack,
		)
	case errors.Is(err, ErrInterrupted):
		m.Logger.InfoContext(ctx, "interrupted",
			"pc", m.PC,
		)
	}

	return logs.WrapSpan(ctx, err)
}
