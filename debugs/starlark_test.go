package debugs

import (
	"testing"

	"github.com/alape/bfi/bfir"
	"go.starlark.net/starlark"
)

func TestToValue(t *testing.T) {
	type point struct {
		X          int
		unexported int
	}

	list := func(values ...starlark.Value) starlark.Value {
		return starlark.NewList(values)
	}
	dict := func(pairs ...starlark.Value) starlark.Value {
		d := starlark.NewDict(len(pairs) / 2)
		for i := 0; i < len(pairs); i += 2 {
			d.SetKey(pairs[i], pairs[i+1])
		}
		return d
	}
	p := &point{X: 1}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "Move[1]", starlark.String("Move[1]")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-3), starlark.MakeInt(-3)},
		{"byte", byte(255), starlark.MakeInt(255)},
		{"uint64", uint64(7), starlark.MakeInt(7)},
		{"float", 0.5, starlark.Float(0.5)},
		{"cells", []byte{0, 1, 255}, list(starlark.MakeInt(0), starlark.MakeInt(1), starlark.MakeInt(255))},
		{"stack", []int{0, 3}, list(starlark.MakeInt(0), starlark.MakeInt(3))},
		{"array", [2]bool{true, false}, list(starlark.True, starlark.False)},
		{"stringer", bfir.Adjust(-2), starlark.String("Adjust[-2]")},
		{"program", []bfir.Inst{bfir.Enter(), bfir.Zero()}, list(starlark.String("LoopEnter[]"), starlark.String("Zero[]"))},
		{"map", map[string]int{"a": 1}, dict(starlark.String("a"), starlark.MakeInt(1))},
		{"struct", point{X: 1, unexported: 2}, dict(starlark.String("X"), starlark.MakeInt(1))},
		{"pointer", &p, dict(starlark.String("X"), starlark.MakeInt(1))},
		{"nil pointer", (*point)(nil), starlark.None},
		{"starlark value", starlark.String("x"), starlark.String("x")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := toValue(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Fatalf("got %v, want %v", actual, tc.expected)
			}
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		if _, err := toValue(make(chan bool)); err == nil {
			t.Fatal("should error")
		}
		if _, err := toStringDict(map[string]any{"c": []any{make(chan int)}}); err == nil {
			t.Fatal("should error")
		}
	})
}
