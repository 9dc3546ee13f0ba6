package bfir

import (
	"bufio"
	"errors"
	"io"
)

// IO is the character exchange surface used by Read and Write instructions.
// ReadChar returns io.EOF when no more input is available.
type IO interface {
	ReadChar() (int, error)
	WriteChar(c int) error
}

type StreamIO struct {
	r *bufio.Reader
	w io.Writer
}

var _ IO = new(StreamIO)

func NewStreamIO(r io.Reader, w io.Writer) *StreamIO {
	ret := &StreamIO{
		w: w,
	}
	if r != nil {
		ret.r = bufio.NewReader(r)
	}
	return ret
}

func (s *StreamIO) ReadChar() (int, error) {
	if s.r == nil {
		return 0, io.EOF
	}
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	return int(b), nil
}

func (s *StreamIO) WriteChar(c int) error {
	if s.w == nil {
		return errors.New("no output stream")
	}
	_, err := s.w.Write([]byte{byte(c)})
	return err
}
