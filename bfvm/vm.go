// Package bfvm runs lowered programs against a memory tape.
package bfvm

import (
	"io"
	"log/slog"

	"github.com/alape/bfi/bfir"
	"github.com/alape/bfi/bftape"
	"github.com/alape/bfi/logs"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Machine holds one tape across evaluations. The program, program counter
// and loop stack are reset on every evaluation.
type Machine struct {
	Tape    *bftape.Tape
	Program bfir.Program
	PC      int
	Stack   []int

	IO       bfir.IO
	Trace    io.Writer
	Debugger Debugger
	Logger   logs.Logger

	newSpan logs.NewSpan
	cache   *simplelru.LRU[[32]byte, bfir.Program]
	steps   uint64
}

type Option func(*Machine)

func New(size int, options ...Option) *Machine {
	m := &Machine{
		Tape:   bftape.New(size),
		IO:     bfir.NewStreamIO(nil, nil),
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func WithIO(rw bfir.IO) Option {
	return func(m *Machine) {
		m.IO = rw
	}
}

func WithStreams(r io.Reader, w io.Writer) Option {
	return WithIO(bfir.NewStreamIO(r, w))
}

func WithTrace(w io.Writer) Option {
	return func(m *Machine) {
		m.Trace = w
	}
}

func WithDebugger(d Debugger) Option {
	return func(m *Machine) {
		m.Debugger = d
	}
}

func WithLogger(logger logs.Logger) Option {
	return func(m *Machine) {
		m.Logger = logger
	}
}

func WithSpans(newSpan logs.NewSpan) Option {
	return func(m *Machine) {
		m.newSpan = newSpan
	}
}

// WithCacheSize keeps up to n lowered programs keyed by a digest of their source.
// n <= 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(m *Machine) {
		if n <= 0 {
			m.cache = nil
			return
		}
		cache, err := simplelru.NewLRU[[32]byte, bfir.Program](n, nil)
		if err != nil {
			panic(err)
		}
		m.cache = cache
	}
}

// Steps returns the number of instructions applied over the machine's lifetime.
func (m *Machine) Steps() uint64 {
	return m.steps
}
