package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test2.cue",
		"testdata/test.cue",
	}, testSchema)

	if n := First[int](loader, "mem_size"); n != 200 {
		t.Fatalf("got %v", n)
	}
	if s := First[string](loader, "target"); s != "c" {
		t.Fatalf("got %v", s)
	}
	if s := First[string](loader, "missing"); s != "" {
		t.Fatalf("got %v", s)
	}

}
