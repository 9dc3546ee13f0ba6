package bfvm

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type DebugAction uint8

const (
	// DebugApply applies the current instruction.
	DebugApply DebugAction = iota
	// DebugForward moves to the next instruction without applying the current one.
	DebugForward
	// DebugBack moves to the previous instruction without applying the current one.
	DebugBack
	// DebugAbort abandons the run.
	DebugAbort
)

// Debugger is consulted before every instruction while attached to a Machine.
type Debugger interface {
	Step(ctx context.Context, status Status) (DebugAction, error)
}

type DebuggerFunc func(ctx context.Context, status Status) (DebugAction, error)

var _ Debugger = DebuggerFunc(nil)

func (d DebuggerFunc) Step(ctx context.Context, status Status) (DebugAction, error) {
	return d(ctx, status)
}

// LineDebugger reads one command line per instruction:
//
//	(empty)  apply the instruction
//	>        skip forward without applying
//	<        step back without applying
//	tap      inspect the machine, then ask again
//	p EXPR   print an expression over the machine state, then ask again
//	q        abort the run
//
// Unknown commands are reported and the instruction is applied.
type LineDebugger struct {
	ReadLine func(prompt string) (string, error)
	Out      io.Writer
	Tap      func(ctx context.Context, status Status)
	Eval     func(ctx context.Context, status Status, expr string) (string, error)
}

var _ Debugger = new(LineDebugger)

func (l *LineDebugger) Step(ctx context.Context, status Status) (DebugAction, error) {
	for {
		line, err := l.ReadLine(status.String() + " ?")
		if err != nil {
			// end of input or interrupt from the terminal
			l.printf("\nClosing the debugger.\n")
			return DebugAbort, nil
		}

		cmd := strings.TrimSpace(line)
		if expr, ok := strings.CutPrefix(cmd, "p "); ok && l.Eval != nil {
			result, err := l.Eval(ctx, status, expr)
			if err != nil {
				l.printf("%v\n", err)
			} else {
				l.printf("%s\n", result)
			}
			continue
		}

		switch cmd {
		case "":
			return DebugApply, nil
		case ">":
			return DebugForward, nil
		case "<":
			return DebugBack, nil
		case "q", "Q":
			l.printf("Closing the debugger.\n")
			return DebugAbort, nil
		case "tap":
			if l.Tap != nil {
				l.Tap(ctx, status)
				continue
			}
			l.printf("Unknown debug statement: %s\n", cmd)
			return DebugApply, nil
		default:
			l.printf("Unknown debug statement: %s\n", cmd)
			return DebugApply, nil
		}
	}
}

func (l *LineDebugger) printf(format string, args ...any) {
	if l.Out == nil {
		return
	}
	fmt.Fprintf(l.Out, format, args...)
}
