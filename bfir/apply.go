package bfir

import (
	"errors"
	"fmt"
	"io"

	"github.com/alape/bfi/bftape"
)

// Directive tells the engine how to move the program counter after an instruction is applied.
type Directive uint8

const (
	Continue Directive = iota
	// EnterLoop: push the current position and fall through.
	EnterLoop
	// SkipLoop: jump past the matching LoopExit without pushing.
	SkipLoop
	// RepeatLoop: resume after the LoopEnter on top of the loop stack, leaving it open.
	RepeatLoop
	// LeaveLoop: pop the loop stack and fall through.
	LeaveLoop
)

var directiveNames = [...]string{
	Continue:   "continue",
	EnterLoop:  "enter loop",
	SkipLoop:   "skip loop",
	RepeatLoop: "repeat loop",
	LeaveLoop:  "leave loop",
}

func (d Directive) String() string {
	if int(d) < len(directiveNames) {
		return directiveNames[d]
	}
	return fmt.Sprintf("directive(%d)", d)
}

// Apply performs the instruction's effect on the tape and the IO surface.
// Control flow is not applied here; it is returned as a Directive.
func (i Inst) Apply(tape *bftape.Tape, rw IO) (Directive, error) {
	switch i.Op {

	case OpMove:
		if err := tape.Move(i.Delta); err != nil {
			return Continue, err
		}

	case OpAdjust:
		tape.Adjust(i.Delta)

	case OpZero:
		tape.Set(0)

	case OpRead:
		c, err := rw.ReadChar()
		if errors.Is(err, io.EOF) {
			// cell unchanged
			return Continue, nil
		}
		if err != nil {
			return Continue, fmt.Errorf("read input: %w", err)
		}
		tape.Set(byte(c))

	case OpWrite:
		if err := rw.WriteChar(int(tape.Get())); err != nil {
			return Continue, fmt.Errorf("write output: %w", err)
		}

	case OpLoopEnter:
		if tape.Get() == 0 {
			return SkipLoop, nil
		}
		return EnterLoop, nil

	case OpLoopExit:
		if tape.Get() != 0 {
			return RepeatLoop, nil
		}
		return LeaveLoop, nil

	default:
		return Continue, fmt.Errorf("invalid instruction: %v", i)
	}

	return Continue, nil
}
