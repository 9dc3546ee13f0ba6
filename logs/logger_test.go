package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Warn("test", "hello", "world!")
	})
}

func TestSetLevel(t *testing.T) {
	defer SetLevel("warn")

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("hidden")
		if err := SetLevel("info"); err != nil {
			t.Fatal(err)
		}
		logger.Info("shown")
	})

	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("got %s", buf.String())
	}

	if err := SetLevel("loud"); err == nil {
		t.Fatal("should error")
	}
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("logs.span"); key != "LOGS_SPAN" {
		t.Fatalf("got %v", key)
	}
}
