package debugs

import (
	"context"
	"fmt"

	"github.com/alape/bfi/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Evaluate computes one starlark expression over globals.
type Evaluate func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error)

func (Module) Evaluate(
	logger logs.Logger,
) Evaluate {
	return func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error) {
		env, err := toStringDict(globals)
		if err != nil {
			return nil, err
		}
		thread := &starlark.Thread{
			Name: "eval",
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg)
			},
		}
		value, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "<expr>", expr, env)
		if err != nil {
			return nil, fmt.Errorf("evaluate %q: %w", expr, err)
		}
		return value, nil
	}
}
