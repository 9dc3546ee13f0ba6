package bfvm

import (
	"context"
	"fmt"

	"github.com/alape/bfi/bfir"
)

// Run executes the loaded program from the current program counter until it
// falls off the end, faults, or is interrupted. Tape effects applied before an
// interruption are kept.
func (m *Machine) Run(ctx context.Context) error {
	for m.PC >= 0 && m.PC < len(m.Program) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrInterrupted, err)
		}

		if m.Debugger != nil {
			action, err := m.Debugger.Step(ctx, m.Status())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInterrupted, err)
			}
			switch action {
			case DebugForward:
				m.PC++
				continue
			case DebugBack:
				if m.PC > 0 {
					m.PC--
				}
				continue
			case DebugAbort:
				return ErrInterrupted
			}
		} else if m.Trace != nil {
			fmt.Fprintln(m.Trace, m.Status())
		}

		if err := m.step(); err != nil {
			return err
		}
		m.PC++
	}
	return nil
}

// step applies the instruction at PC and resolves its directive.
// On return PC points at the instruction to advance from.
func (m *Machine) step() error {
	inst := m.Program[m.PC]
	directive, err := inst.Apply(m.Tape, m.IO)
	if err != nil {
		return m.fault(err)
	}

	switch directive {

	case bfir.EnterLoop:
		m.Stack = append(m.Stack, m.PC)

	case bfir.SkipLoop:
		end, ok := m.Program.MatchForward(m.PC)
		if !ok {
			return m.fault(ErrUnmatchedLoop)
		}
		m.PC = end

	case bfir.RepeatLoop:
		// the entry stays open, execution resumes right after it
		if len(m.Stack) == 0 {
			return m.fault(ErrUnmatchedLoop)
		}
		m.PC = m.Stack[len(m.Stack)-1]

	case bfir.LeaveLoop:
		if len(m.Stack) == 0 {
			return m.fault(ErrUnmatchedLoop)
		}
		m.Stack = m.Stack[:len(m.Stack)-1]

	}

	m.steps++
	return nil
}
