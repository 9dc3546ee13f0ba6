package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedLoop = errors.New("unmatched bracket")
	ErrInterrupted   = errors.New("interrupted")
)

// Fault is a runtime error that halted a run, with the machine state at the faulting instruction.
type Fault struct {
	Err    error
	Status Status
}

func (f *Fault) Error() string {
	return fmt.Sprintf("runtime error: %v; %s", f.Err, f.Status)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

func (m *Machine) fault(err error) *Fault {
	return &Fault{
		Err:    err,
		Status: m.Status(),
	}
}
