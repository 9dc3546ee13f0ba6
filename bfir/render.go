package bfir

import (
	"fmt"
	"strconv"
)

// Syntax selects the textual language instructions render to.
type Syntax string

const (
	SyntaxC  Syntax = "c"
	SyntaxGo Syntax = "go"
)

func ParseSyntax(s string) (Syntax, error) {
	switch Syntax(s) {
	case SyntaxC, SyntaxGo:
		return Syntax(s), nil
	case "golang":
		return SyntaxGo, nil
	}
	return "", fmt.Errorf("unknown target syntax: %q", s)
}

func (s *Syntax) UnmarshalText(text []byte) error {
	parsed, err := ParseSyntax(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Render returns the instruction as one line of the target syntax, without indentation.
func (i Inst) Render(syntax Syntax) string {
	switch syntax {
	case SyntaxGo:
		return i.renderGo()
	default:
		return i.renderC()
	}
}

func (i Inst) renderC() string {
	switch i.Op {
	case OpMove:
		if i.Delta < 0 {
			return "i -= " + strconv.Itoa(-i.Delta) + ";"
		}
		return "i += " + strconv.Itoa(i.Delta) + ";"
	case OpAdjust:
		if i.Delta < 0 {
			n := strconv.Itoa(-i.Delta)
			return "mem[i] = mem[i] > " + n + " ? mem[i] - " + n + " : 0;"
		}
		return "mem[i] += " + strconv.Itoa(i.Delta%256) + ";"
	case OpZero:
		return "mem[i] = 0;"
	case OpRead:
		return "{ int c = getchar(); if (c != EOF) mem[i] = c; }"
	case OpWrite:
		return "putchar(mem[i]);"
	case OpLoopEnter:
		return "while (mem[i]) {"
	case OpLoopExit:
		return "}"
	}
	return ";"
}

func (i Inst) renderGo() string {
	switch i.Op {
	case OpMove:
		if i.Delta < 0 {
			return "i -= " + strconv.Itoa(-i.Delta)
		}
		return "i += " + strconv.Itoa(i.Delta)
	case OpAdjust:
		if i.Delta < 0 {
			if -i.Delta >= 255 {
				return "mem[i] = 0"
			}
			n := strconv.Itoa(-i.Delta)
			return "if mem[i] > " + n + " { mem[i] -= " + n + " } else { mem[i] = 0 }"
		}
		return "mem[i] += " + strconv.Itoa(i.Delta%256)
	case OpZero:
		return "mem[i] = 0"
	case OpRead:
		return "if c, err := in.ReadByte(); err == nil { mem[i] = c }"
	case OpWrite:
		return "out.WriteByte(mem[i])"
	case OpLoopEnter:
		return "for mem[i] != 0 {"
	case OpLoopExit:
		return "}"
	}
	return ""
}
