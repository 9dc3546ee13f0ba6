package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alape/bfi/bfgen"
	"github.com/alape/bfi/bficonfigs"
	"github.com/alape/bfi/bfir"
	"github.com/alape/bfi/bfvm"
	"github.com/alape/bfi/cmds"
	"github.com/alape/bfi/configs"
	"github.com/alape/bfi/debugs"
	"github.com/alape/bfi/logs"
	"github.com/alape/bfi/modes"
	"github.com/alape/bfi/sources"
	"github.com/chzyer/readline"
	"github.com/reusee/dscope"
)

var (
	fileFlag   = cmds.Var[string]("-file", "run a program from a path, a url, or - for standard input")
	outputFlag = cmds.Var[string]("-c", "write the program compiled to -target into this file instead of running it")
)

func main() {
	cmds.Execute(os.Args[1:])

	var code int
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		loader configs.Loader,
		_ bficonfigs.LogLevel,
		logger logs.Logger,
		load sources.Load,
		newMachine bfvm.NewMachine,
		trace bficonfigs.Trace,
		debug bficonfigs.Debug,
		target bficonfigs.Target,
		memSize bficonfigs.MemSize,
		historyFile bficonfigs.HistoryFile,
		tap debugs.Tap,
		evaluate debugs.Evaluate,
	) {
		if err := loader.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			code = 1
			return
		}

		ctx := context.Background()
		logger.Debug("start",
			"file", *fileFlag,
			"output", *outputFlag,
			"trace", bool(trace),
			"debug", bool(debug),
			"mem", memSize,
		)

		if *outputFlag != "" {
			code = compile(ctx, load, *fileFlag, *outputFlag, bfgen.Options{
				Syntax:  target,
				MemSize: int(memSize),
			})
			return
		}

		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()
		options := []bfvm.Option{
			bfvm.WithStreams(os.Stdin, out),
		}
		if bool(trace) || bool(debug) {
			options = append(options, bfvm.WithTrace(out))
		}

		// one line editor for the shell and the debugger
		var rl *readline.Instance
		if bool(debug) || *fileFlag == "" {
			var err error
			rl, err = readline.NewEx(&readline.Config{
				Prompt:      shellPrompt,
				HistoryFile: string(historyFile),
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				code = 1
				return
			}
			defer rl.Close()
			// program input goes through the editor too
			options = append(options, bfvm.WithIO(newLineIO(rl, out)))
		}

		var m *bfvm.Machine
		if debug {
			options = append(options, bfvm.WithDebugger(&bfvm.LineDebugger{
				ReadLine: func(prompt string) (string, error) {
					out.Flush()
					rl.SetPrompt(prompt + " ")
					defer rl.SetPrompt(shellPrompt)
					return rl.Readline()
				},
				Out: out,
				Tap: func(ctx context.Context, status bfvm.Status) {
					out.Flush()
					tap(ctx, "debugger", debugs.MachineGlobals(m, status))
				},
				Eval: func(ctx context.Context, status bfvm.Status, expr string) (string, error) {
					value, err := evaluate(ctx, expr, debugs.MachineGlobals(m, status))
					if err != nil {
						return "", err
					}
					return value.String(), nil
				},
			}))
		}
		m = newMachine(options...)

		switch {
		case bool(debug):
			fmt.Fprintln(out, "Debugging enabled.")
			fmt.Fprintln(out, "Debug: Return to apply, > to skip, < to go back, tap or p EXPR to inspect, q to quit.")
		case bool(trace):
			fmt.Fprintln(out, "Tracing enabled.")
		}

		if *fileFlag == "" {
			runShell(m, rl, out)
			return
		}

		source, err := load(ctx, *fileFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			code = 1
			return
		}
		if err := eval(ctx, m, source, out); err != nil {
			code = 1
		}
	})

	os.Exit(code)
}

// eval runs one statement, stopping it on interrupt, and reports faults.
func eval(parent context.Context, m *bfvm.Machine, source string, out *bufio.Writer) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()
	err := m.Eval(ctx, source)
	out.Flush()
	report(os.Stderr, err)
	return err
}

func report(w io.Writer, err error) {
	if err == nil {
		return
	}
	var fault *bfvm.Fault
	switch {
	case errors.As(err, &fault):
		fmt.Fprintf(w, "\n=== Runtime error: %v ===\n%s\n", fault.Err, fault.Status)
	case errors.Is(err, bfvm.ErrInterrupted):
		fmt.Fprintf(w, "\n=== Interrupted ===\n")
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}

func compile(ctx context.Context, load sources.Load, location string, output string, options bfgen.Options) int {
	if location == "" {
		location = "-"
	}
	source, err := load(ctx, location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	prog := bfir.Lower(source)
	if !prog.Balanced() {
		report(os.Stderr, fmt.Errorf("%s: %w", location, bfvm.ErrUnmatchedLoop))
		return 1
	}
	text := bfgen.Generate(prog, options)
	if output == "-" {
		_, err = os.Stdout.WriteString(text)
	} else {
		err = os.WriteFile(output, []byte(text), 0644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
