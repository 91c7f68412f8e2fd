// Package entry is the boundary entry point: it receives an owned Thing
// handle, uses it, passes it to a collaborator script and makes sure the
// Thing is destroyed exactly once before returning.
package entry

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wippyai/sides/bridge"
	"github.com/wippyai/sides/runtime"
	"github.com/wippyai/sides/script"
)

// Config holds configuration for the entry point
type Config struct {
	// Stdout receives diagnostics and script output. nil means os.Stdout.
	Stdout io.Writer

	// Stderr receives the error line of a failed call. nil means os.Stderr.
	Stderr io.Writer

	// Runtime configures the per-call foreign host.
	Runtime *runtime.Config

	// Script is the collaborator script path. Empty means script.DefaultPath.
	Script string

	// Bytes, when set, is used instead of reading Script.
	Bytes []byte
}

type Entry struct {
	stdout io.Writer
	stderr io.Writer
	cfg    Config
}

func New(cfg Config) *Entry {
	e := &Entry{cfg: cfg, stdout: cfg.Stdout, stderr: cfg.Stderr}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	return e
}

// Main takes ownership of thing. It returns the script error, if any; the
// Thing is destroyed either way.
func (e *Entry) Main(ctx context.Context, thing *bridge.Owned) error {
	h := thing.Take()
	log := Logger().With(
		zap.String("call", uuid.NewString()),
		zap.Uintptr("handle", uintptr(h)))

	p := bridge.FromHandle(h)
	fmt.Fprintf(e.stdout, "Got into rust %d\n", p.Number())
	fmt.Fprintf(e.stdout, "Vtable %p\n", p.VTable())

	h = p.IntoHandle()
	defer reclaim(h, log)

	result, err := e.run(ctx, h, log)
	if err != nil {
		fmt.Fprintf(e.stderr, "error %v\n", err)
		log.Error("script failed", zap.Error(err))
		return err
	}
	fmt.Fprintf(e.stdout, "script main: %v\n", result)
	log.Info("script returned", zap.Any("result", result))
	return nil
}

func (e *Entry) run(ctx context.Context, h bridge.Handle, log *zap.Logger) (any, error) {
	cfg := runtime.Config{Stdout: e.stdout}
	if e.cfg.Runtime != nil {
		cfg = *e.cfg.Runtime
		if cfg.Stdout == nil {
			cfg.Stdout = e.stdout
		}
	}

	rt, err := runtime.New(ctx, &cfg)
	if err != nil {
		return nil, err
	}
	defer rt.Close(ctx)

	var s *runtime.Script
	if e.cfg.Bytes != nil {
		s, err = rt.LoadBytes(ctx, "inline", e.cfg.Bytes)
	} else {
		path := e.cfg.Script
		if path == "" {
			path = script.DefaultPath
		}
		s, err = rt.LoadScript(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	log.Debug("running script", zap.String("script", s.Name()))
	return s.Main(ctx, h)
}

// reclaim destroys h unless the script already did.
func reclaim(h bridge.Handle, log *zap.Logger) {
	if !bridge.Reclaim(h) {
		log.Debug("destroyed by script")
		return
	}
	bridge.FromHandle(h).Drop()
	log.Debug("destroyed on return")
}
