package bfir

import (
	"fmt"
	"io"
	"strings"
)

type Program []Inst

func (p Program) String() string {
	var b strings.Builder
	for i, inst := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(inst.String())
	}
	return b.String()
}

// Dump writes one "addr:\tinst" line per instruction, with hexadecimal addresses.
func (p Program) Dump(w io.Writer) error {
	for addr, inst := range p {
		if _, err := fmt.Fprintf(w, "%#x:\t%s\n", addr, inst); err != nil {
			return err
		}
	}
	return nil
}

// MatchForward returns the position of the LoopExit matching the LoopEnter at pos.
func (p Program) MatchForward(pos int) (int, bool) {
	depth := 0
	for i := pos; i < len(p); i++ {
		switch p[i].Op {
		case OpLoopEnter:
			depth++
		case OpLoopExit:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// Balanced reports whether every LoopEnter has a matching LoopExit and vice versa.
func (p Program) Balanced() bool {
	depth := 0
	for _, inst := range p {
		switch inst.Op {
		case OpLoopEnter:
			depth++
		case OpLoopExit:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
