package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/alape/bfi/bfvm"
)

const shellPrompt = "§ "

func runShell(m *bfvm.Machine, rl lineEditor, out *bufio.Writer) {
	fmt.Fprintln(out, `Running BFI in interactive mode. Enter "q" or Ctrl-C to exit, "s" for status information.`)
	defer func() {
		fmt.Fprintln(out, "\nKTHXBYE")
		out.Flush()
	}()

	for {
		out.Flush()
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return
		}
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "q", "Q":
			return
		case "s", "S":
			fmt.Fprintln(out, statusLine(m))
			continue
		}
		_ = eval(context.Background(), m, line, out)
	}
}

func statusLine(m *bfvm.Machine) string {
	stack := m.Stack
	if stack == nil {
		stack = []int{}
	}
	return fmt.Sprintf("Stack: %v, memory position: %d, memory value: %d",
		stack, m.Tape.Cursor(), m.Tape.Get())
}
