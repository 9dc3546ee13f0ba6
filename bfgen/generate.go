// Package bfgen lowers a program to the source text of a standalone C or Go program.
package bfgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alape/bfi/bfir"
	"github.com/alape/bfi/bftape"
)

type Options struct {
	Syntax  bfir.Syntax
	MemSize int
}

// Generate renders prog as a complete program. The tape starts zeroed
// with the cursor at cell 0, as in the interpreter.
func Generate(prog bfir.Program, opts Options) string {
	if opts.MemSize <= 0 {
		opts.MemSize = bftape.DefaultSize
	}
	target := targets[bfir.SyntaxC]
	if t, ok := targets[opts.Syntax]; ok {
		target = t
	}

	buf := new(strings.Builder)
	target.preamble(buf, prog, opts)

	depth := 1
	for _, inst := range prog {
		if inst.Op == bfir.OpLoopExit && depth > 1 {
			depth--
		}
		buf.WriteString(strings.Repeat(target.indent, depth))
		buf.WriteString(inst.Render(opts.Syntax))
		buf.WriteByte('\n')
		if inst.Op == bfir.OpLoopEnter {
			depth++
		}
	}

	buf.WriteString(target.epilogue)
	return buf.String()
}

type target struct {
	indent   string
	preamble func(buf *strings.Builder, prog bfir.Program, opts Options)
	epilogue string
}

var targets = map[bfir.Syntax]target{

	bfir.SyntaxC: {
		indent: "  ",
		preamble: func(buf *strings.Builder, _ bfir.Program, opts Options) {
			fmt.Fprintf(buf, `#include <stdio.h>
#include <string.h>

int i = 0;
unsigned char mem[%d];

int main(void) {
  memset(mem, 0, sizeof(mem));
`, opts.MemSize)
		},
		epilogue: "  return 0;\n}\n",
	},

	bfir.SyntaxGo: {
		indent: "\t",
		preamble: func(buf *strings.Builder, prog bfir.Program, opts Options) {
			fmt.Fprintf(buf, `package main

import (
	"bufio"
	"os"
)

var (
	i   int
	mem [%d]byte
`, opts.MemSize)
			if slices.ContainsFunc(prog, func(inst bfir.Inst) bool {
				return inst.Op == bfir.OpRead
			}) {
				buf.WriteString("\tin  = bufio.NewReader(os.Stdin)\n")
			}
			buf.WriteString(`	out = bufio.NewWriter(os.Stdout)
)

func main() {
	defer out.Flush()
`)
		},
		epilogue: "}\n",
	},
}
