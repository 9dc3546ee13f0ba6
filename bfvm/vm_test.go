package bfvm

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/alape/bfi/bfir"
	"github.com/alape/bfi/bftape"
	"lukechampine.com/blake3"
)

func run(t *testing.T, m *Machine, source string) error {
	t.Helper()
	return m.Eval(context.Background(), source)
}

func TestHello(t *testing.T) {
	src, err := os.ReadFile("testdata/hello.b")
	if err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)
	m := New(0, WithStreams(nil, out))
	if err := run(t, m, string(src)); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Hello World!\n" {
		t.Fatalf("got %q", out.String())
	}
	if len(m.Stack) != 0 {
		t.Fatalf("got %v", m.Stack)
	}
}

func TestCountdownSample(t *testing.T) {
	out := new(bytes.Buffer)
	m := New(bftape.DefaultSize, WithStreams(nil, out))
	err := run(t, m, "++[>+++++++++++++++++++++++++++++++++++++++++++++++++[>++++[-]<-.]<-]")
	if err != nil {
		t.Fatal(err)
	}
	var want []byte
	for range 2 {
		for c := 48; c >= 0; c-- {
			want = append(want, byte(c))
		}
	}
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("got %v", out.Bytes())
	}
}

func TestUnmatchedLoopExit(t *testing.T) {
	m := New(10)
	err := run(t, m, "]")
	if !errors.Is(err, ErrUnmatchedLoop) {
		t.Fatalf("got %v", err)
	}
	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("got %T", err)
	}
	if fault.Status.PC != 0 {
		t.Fatalf("got %v", fault.Status.PC)
	}
	if fault.Status.Inst != "LoopExit[]" {
		t.Fatalf("got %v", fault.Status.Inst)
	}
	if !strings.HasPrefix(err.Error(), "runtime error: unmatched bracket;") {
		t.Fatalf("got %v", err)
	}
	if m.Steps() != 0 {
		t.Fatalf("got %v", m.Steps())
	}
}

func TestUnmatchedLoopEnter(t *testing.T) {
	m := New(10)
	err := run(t, m, "[+")
	if !errors.Is(err, ErrUnmatchedLoop) {
		t.Fatalf("got %v", err)
	}

	// entered loop without an exit just runs off the end
	m = New(10)
	if err := run(t, m, "+[+"); err != nil {
		t.Fatal(err)
	}
	if m.Tape.Get() != 2 {
		t.Fatalf("got %v", m.Tape.Get())
	}
}

func TestRepeatWithEmptyStack(t *testing.T) {
	m := New(10)
	m.Program = bfir.Program{bfir.Adjust(1), bfir.Exit()}
	err := m.Run(context.Background())
	if !errors.Is(err, ErrUnmatchedLoop) {
		t.Fatalf("got %v", err)
	}
	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatal()
	}
	if fault.Status.PC != 1 || fault.Status.Cell != 1 {
		t.Fatalf("got %v", fault.Status)
	}
}

func TestBoundsFault(t *testing.T) {
	const n = 16
	m := New(n)
	for range n {
		m.Program = append(m.Program, bfir.Move(1))
	}
	err := m.Run(context.Background())
	if !errors.Is(err, bftape.ErrOutOfBounds) {
		t.Fatalf("got %v", err)
	}
	var boundsErr *bftape.BoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatalf("got %T", err)
	}
	if boundsErr.Address != n {
		t.Fatalf("got %v", boundsErr.Address)
	}
	if m.Tape.Cursor() != n-1 {
		t.Fatalf("got %v", m.Tape.Cursor())
	}
	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatal()
	}
	if fault.Status.PC != n-1 || fault.Status.Cursor != n-1 {
		t.Fatalf("got %v", fault.Status)
	}
	// the fault carries the tape error as is
	if e, ok := fault.Err.(*bftape.BoundsError); !ok || e.Size != n {
		t.Fatalf("got %#v", fault.Err)
	}
	if !errors.Is(fault.Err, bftape.ErrOutOfBounds) {
		t.Fatal()
	}
}

func TestBoundsFaultCoalesced(t *testing.T) {
	const n = 16
	m := New(n)
	err := run(t, m, ">>"+strings.Repeat(">", n))
	if !errors.Is(err, bftape.ErrOutOfBounds) {
		t.Fatalf("got %v", err)
	}
	// the whole run is one move, rolled back
	if m.Tape.Cursor() != 0 {
		t.Fatalf("got %v", m.Tape.Cursor())
	}
	if err := run(t, m, "<"); !errors.Is(err, bftape.ErrOutOfBounds) {
		t.Fatalf("got %v", err)
	}
	if m.Tape.Cursor() != 0 {
		t.Fatalf("got %v", m.Tape.Cursor())
	}
}

func TestSaturation(t *testing.T) {
	m := New(10)
	if err := run(t, m, "++-----"); err != nil {
		t.Fatal(err)
	}
	if m.Tape.Get() != 0 {
		t.Fatalf("got %v", m.Tape.Get())
	}
	for range 5 {
		if err := run(t, m, "-"); err != nil {
			t.Fatal(err)
		}
	}
	if m.Tape.Get() != 0 {
		t.Fatalf("got %v", m.Tape.Get())
	}
}

func TestSkipLoop(t *testing.T) {
	m := New(10)
	// cell 0 is zero, so the whole loop including the nested one is skipped
	if err := run(t, m, "[>+[>+<-]<]>>>+"); err != nil {
		t.Fatal(err)
	}
	cells := m.Tape.Cells()
	if !bytes.Equal(cells[:4], []byte{0, 0, 0, 1}) {
		t.Fatalf("got %v", cells[:4])
	}
}

func TestRepeatLoop(t *testing.T) {
	m := New(10)
	// move 3 from cell 0 to cell 1, doubled
	if err := run(t, m, "+++[>++<-]>"); err != nil {
		t.Fatal(err)
	}
	if m.Tape.Get() != 6 {
		t.Fatalf("got %v", m.Tape.Get())
	}
	if len(m.Stack) != 0 {
		t.Fatalf("got %v", m.Stack)
	}
}

func TestNestedLoops(t *testing.T) {
	m := New(10)
	// 3 * 4 = 12 in cell 2
	if err := run(t, m, "+++[>++++[>+<-]<-]>>"); err != nil {
		t.Fatal(err)
	}
	if m.Tape.Get() != 12 {
		t.Fatalf("got %v", m.Tape.Get())
	}
}

func TestTapePersistsAcrossEvals(t *testing.T) {
	m := New(10)
	if err := run(t, m, "+++>++"); err != nil {
		t.Fatal(err)
	}
	if err := run(t, m, "+"); err != nil {
		t.Fatal(err)
	}
	if m.Tape.Cursor() != 1 || m.Tape.Get() != 3 {
		t.Fatalf("got %v %v", m.Tape.Cursor(), m.Tape.Get())
	}
	if m.PC != 1 {
		t.Fatalf("got %v", m.PC)
	}

	// a fault does not reset the tape
	if err := run(t, m, "]"); err == nil {
		t.Fatal("should error")
	}
	if err := run(t, m, "<"); err != nil {
		t.Fatal(err)
	}
	if m.Tape.Get() != 3 {
		t.Fatalf("got %v", m.Tape.Get())
	}
}

func TestStackResetOnEval(t *testing.T) {
	m := New(10)
	if err := run(t, m, "+[["); err != nil {
		t.Fatal(err)
	}
	if len(m.Stack) != 2 {
		t.Fatalf("got %v", m.Stack)
	}
	if err := run(t, m, "]"); !errors.Is(err, ErrUnmatchedLoop) {
		t.Fatalf("got %v", err)
	}
}

func TestReadInput(t *testing.T) {
	out := new(bytes.Buffer)
	m := New(10, WithStreams(strings.NewReader("abc"), out))
	// echo until end of input, cells left unchanged at EOF
	if err := run(t, m, ",.,.,.,."); err != nil {
		t.Fatal(err)
	}
	if out.String() != "abcc" {
		t.Fatalf("got %q", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteError(t *testing.T) {
	m := New(10, WithStreams(nil, failingWriter{}))
	err := run(t, m, "+.")
	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("got %v", err)
	}
	if fault.Status.PC != 1 {
		t.Fatalf("got %v", fault.Status.PC)
	}
}

func TestCancelled(t *testing.T) {
	m := New(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := m.Eval(ctx, "+++")
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	if m.Tape.Get() != 0 {
		t.Fatalf("got %v", m.Tape.Get())
	}
}

func TestCancelInfiniteLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	steps := 0
	m := New(10, WithDebugger(DebuggerFunc(func(_ context.Context, status Status) (DebugAction, error) {
		steps++
		if steps == 100 {
			cancel()
		}
		return DebugApply, nil
	})))
	err := m.Eval(ctx, "+[]")
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("got %v", err)
	}
	if m.Tape.Get() != 1 {
		t.Fatalf("got %v", m.Tape.Get())
	}
}

func TestCache(t *testing.T) {
	m := New(10, WithCacheSize(2))
	for range 3 {
		if err := run(t, m, "+"); err != nil {
			t.Fatal(err)
		}
	}
	if m.cache.Len() != 1 {
		t.Fatalf("got %v", m.cache.Len())
	}
	if m.Tape.Get() != 3 {
		t.Fatalf("got %v", m.Tape.Get())
	}
	for _, src := range []string{">", "<", "-"} {
		if err := run(t, m, src); err != nil {
			t.Fatal(err)
		}
	}
	if m.cache.Len() != 2 {
		t.Fatalf("got %v", m.cache.Len())
	}
	if !m.cache.Contains(blake3.Sum256([]byte("-"))) {
		t.Fatal()
	}
	if m.cache.Contains(blake3.Sum256([]byte("+"))) {
		t.Fatal("should be evicted")
	}

	if New(10, WithCacheSize(0)).cache != nil {
		t.Fatal()
	}
}

func TestEmptyProgram(t *testing.T) {
	m := New(10)
	if err := run(t, m, "no commands here"); err != nil {
		t.Fatal(err)
	}
	if len(m.Program) != 0 {
		t.Fatalf("got %v", m.Program)
	}
}
