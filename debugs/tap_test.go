package debugs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		// returns at end of standard input
		tap(t.Context(), "test", map[string]any{
			"cell": 42,
		})
		// unsupported globals are logged and skipped
		tap(t.Context(), "bad", map[string]any{
			"c": make(chan int),
		})
	})
}
