package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModes(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
		got *testing.T,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if got != nil {
			t.Fatal()
		}
	})

	dscope.New(ForTest(t)).Call(func(
		mode Mode,
		got *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if got != t {
			t.Fatal()
		}
	})

	if s := Mode(0).String(); s != "unknown" {
		t.Fatalf("got %s", s)
	}
}
