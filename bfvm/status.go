package bfvm

import (
	"fmt"
	"slices"
)

// Status is a snapshot of the machine taken before an instruction is applied.
type Status struct {
	PC     int
	Inst   string
	Cursor int
	Cell   byte
	Stack  []int
}

func (m *Machine) Status() Status {
	ret := Status{
		PC:     m.PC,
		Cursor: m.Tape.Cursor(),
		Cell:   m.Tape.Get(),
		Stack:  slices.Clone(m.Stack),
	}
	if m.PC >= 0 && m.PC < len(m.Program) {
		ret.Inst = m.Program[m.PC].String()
	}
	if ret.Stack == nil {
		ret.Stack = []int{}
	}
	return ret
}

func (s Status) String() string {
	return fmt.Sprintf("PC:%d; INSTR:%q; MC:%d; MV:%d; STK:%v",
		s.PC, s.Inst, s.Cursor, s.Cell, s.Stack)
}
