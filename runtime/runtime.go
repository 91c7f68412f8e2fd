package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/script"
)

// Config holds configuration for runtime creation
type Config struct {
	// Stdout receives sides:log output. nil means os.Stdout.
	Stdout io.Writer

	// MemoryLimitPages sets the maximum memory per script in pages (64KB each).
	// 0 means the wazero default.
	MemoryLimitPages uint32
}

// MaxMemoryPages is the most linear memory a 32-bit wasm module can address.
const MaxMemoryPages = 65536

type Runtime struct {
	wz     wazero.Runtime
	stdout io.Writer
}

// New creates a runtime with the sides host modules registered.
func New(ctx context.Context, cfg *Config) (*Runtime, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	r := &Runtime{stdout: os.Stdout}

	if cfg != nil {
		if cfg.MemoryLimitPages > MaxMemoryPages {
			return nil, errors.InvalidInput(errors.PhaseHost,
				fmt.Sprintf("memory limit %d pages exceeds %d", cfg.MemoryLimitPages, MaxMemoryPages))
		}
		if cfg.MemoryLimitPages > 0 {
			runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
		}
		if cfg.Stdout != nil {
			r.stdout = cfg.Stdout
		}
	}
	r.wz = wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	if err := r.registerThing(ctx); err != nil {
		_ = r.wz.Close(ctx)
		return nil, err
	}
	if err := r.registerLog(ctx); err != nil {
		_ = r.wz.Close(ctx)
		return nil, err
	}
	return r, nil
}

// Close releases all runtime resources, including loaded scripts.
func (r *Runtime) Close(ctx context.Context) error {
	return r.wz.Close(ctx)
}

// LoadScript reads and compiles the script at path.
// An empty path means script.DefaultPath.
func (r *Runtime) LoadScript(ctx context.Context, path string) (*Script, error) {
	if path == "" {
		path = script.DefaultPath
	}
	bin, err := script.Load(path)
	if err != nil {
		return nil, err
	}
	return r.LoadBytes(ctx, path, bin)
}

// LoadBytes compiles a script held in memory. name is used in errors and logs.
func (r *Runtime) LoadBytes(ctx context.Context, name string, bin []byte) (*Script, error) {
	compiled, err := r.wz.CompileModule(ctx, bin)
	if err != nil {
		return nil, errors.Load("compile "+name, err)
	}
	return &Script{
		runtime:  r,
		name:     name,
		compiled: compiled,
	}, nil
}
