package main

import (
	"bufio"

	"github.com/alape/bfi/bfir"
)

// lineEditor is the line source shared by the shell, the debugger and program input.
type lineEditor interface {
	Readline() (string, error)
	SetPrompt(string)
}

// lineIO reads program input through the line editor so that it does not
// compete with the editor for standard input. Each line is handed out byte
// by byte; an empty line reads as a newline.
type lineIO struct {
	editor  lineEditor
	out     *bufio.Writer
	pending []byte
}

var _ bfir.IO = new(lineIO)

func newLineIO(editor lineEditor, out *bufio.Writer) *lineIO {
	return &lineIO{
		editor: editor,
		out:    out,
	}
}

func (l *lineIO) ReadChar() (int, error) {
	if len(l.pending) == 0 {
		if err := l.out.Flush(); err != nil {
			return 0, err
		}
		l.editor.SetPrompt("")
		line, err := l.editor.Readline()
		l.editor.SetPrompt(shellPrompt)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return '\n', nil
		}
		l.pending = []byte(line)
	}
	c := l.pending[0]
	l.pending = l.pending[1:]
	return int(c), nil
}

func (l *lineIO) WriteChar(c int) error {
	return l.out.WriteByte(byte(c))
}
