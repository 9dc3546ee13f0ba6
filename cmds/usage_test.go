package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("run", Sub(map[string]*Command{
		"-trace": Func(func() {
		}).Desc("TRACE"),
		"tape": Sub(map[string]*Command{
			"-mem": Func(func(n int) {}).Desc("MEM"),
		}).Desc("TAPE"),
		"-secret": Func(func() {}).Hide(),
	}).Desc("RUN"))
	executor.Define("-internal", Func(func() {}).Hide())

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	out := buf.String()
	for _, want := range []string{
		"  run\tRUN",
		"    -trace\tTRACE",
		"    tape\tTAPE",
		"      -mem <int>\tMEM",
		"-h (help, -help, --help)\tprint this usage",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}
	for _, hidden := range []string{"-secret", "-internal"} {
		if strings.Contains(out, hidden) {
			t.Fatalf("got %s", out)
		}
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("got %s", out)
	}
}
