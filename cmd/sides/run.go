package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/wippyai/sides/bridge"
	"github.com/wippyai/sides/entry"
	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/reference"
	"github.com/wippyai/sides/runtime"
	"github.com/wippyai/sides/script"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "hand the reference Thing to a script through the entry point",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    "script",
				Aliases: []string{"s"},
				Usage:   "run the script at `path`",
				EnvVars: []string{"SIDES_SCRIPT"},
			},
			&cli.BoolFlag{
				Name:  "builtin",
				Usage: "run the built-in reference script instead of a file",
			},
			&cli.IntFlag{
				Name:    "number",
				Aliases: []string{"n"},
				Usage:   "number reported by the reference Thing",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print the Thing's lifecycle after the run",
			},
			&cli.BoolFlag{
				Name:  "foreign",
				Usage: "use a Thing implemented in C (needs cgo)",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "drive the Thing from a terminal UI",
			},
		},
		Action: runAction,
	}
}

// runOptions is the resolved configuration of one run.
type runOptions struct {
	entry  entry.Config
	number int32
}

func resolveRun(c *cli.Context) (runOptions, error) {
	cfg := settings(c)
	opts := runOptions{
		entry: entry.Config{
			Stdout:  c.App.Writer,
			Stderr:  c.App.ErrWriter,
			Script:  cfg.Script,
			Runtime: &runtime.Config{MemoryLimitPages: cfg.MemoryLimitPages},
		},
		number: cfg.Reference.Number,
	}
	if c.IsSet("script") {
		opts.entry.Script = c.Path("script")
	}
	if c.Bool("builtin") {
		opts.entry.Bytes = script.Default()
	}
	if c.IsSet("number") {
		n := c.Int("number")
		if n < math.MinInt32 || n > math.MaxInt32 {
			return runOptions{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Value(n).
				Detail("--number must fit in 32 bits").
				Build()
		}
		opts.number = int32(n)
	}
	return opts, nil
}

func runAction(c *cli.Context) error {
	opts, err := resolveRun(c)
	if err != nil {
		return err
	}

	if c.Bool("interactive") {
		if !isTerminal(c.App.Writer) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(opts)
	}

	var tr *tracer
	if c.Bool("trace") {
		tr = newTracer()
		bridge.Subscribe(tr)
		defer bridge.Unsubscribe(tr)
	}

	err = run(c.Context, opts, c.Bool("foreign"))
	if tr != nil {
		fmt.Fprint(c.App.Writer, renderTrace(tr.Events(), isTerminal(c.App.Writer)))
	}
	if err != nil {
		// entry already reported the error
		return cli.Exit("", 1)
	}
	return nil
}

func run(ctx context.Context, opts runOptions, foreign bool) error {
	if foreign {
		return runForeign(ctx, opts.entry, opts.number)
	}
	thing := reference.New(
		reference.WithNumber(opts.number),
		reference.WithDiagnostics(opts.entry.Stdout),
	)
	return entry.New(opts.entry).Main(ctx, bridge.Export(thing))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
