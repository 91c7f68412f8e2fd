package runtime

import (
	"context"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/sides/bridge"
	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/script"
)

// Script is a compiled collaborator script.
type Script struct {
	runtime  *Runtime
	compiled wazero.CompiledModule
	name     string
}

// Name returns the path or name the script was loaded from.
func (s *Script) Name() string {
	return s.name
}

// Main instantiates the script and calls main(h). It returns the single
// result of main, or nil when main returns nothing.
//
// The caller keeps ownership of h unless the script destroys it; check
// bridge.Live afterwards.
func (s *Script) Main(ctx context.Context, h bridge.Handle) (any, error) {
	def, ok := s.compiled.ExportedFunctions()[script.MainExport]
	if !ok {
		return nil, errors.NotFound(errors.PhaseHost, "export", script.MainExport)
	}
	params, results := def.ParamTypes(), def.ResultTypes()
	if len(params) != 1 || params[0] != api.ValueTypeI64 || len(results) > 1 {
		return nil, errors.New(errors.PhaseHost, errors.KindTypeMismatch).
			Detail("%s has signature %s, want func(i64) -> (any)", script.MainExport, signature(params, results)).
			Build()
	}

	mod, err := s.runtime.wz.InstantiateModule(ctx, s.compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		return nil, errors.Instantiation(err)
	}
	defer mod.Close(ctx)

	Logger().Debug("calling script",
		zap.String("script", s.name),
		zap.Uintptr("handle", uintptr(h)))

	out, err := mod.ExportedFunction(script.MainExport).Call(ctx, uint64(h))
	if err != nil {
		return nil, errors.HostFailure("script "+s.name+" main", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return decode(results[0], out[0]), nil
}

// Close releases the compiled script.
func (s *Script) Close(ctx context.Context) error {
	return s.compiled.Close(ctx)
}

func decode(t api.ValueType, v uint64) any {
	switch t {
	case api.ValueTypeI32:
		return api.DecodeI32(v)
	case api.ValueTypeI64:
		return int64(v)
	case api.ValueTypeF32:
		return api.DecodeF32(v)
	case api.ValueTypeF64:
		return api.DecodeF64(v)
	}
	return v
}

func signature(params, results []api.ValueType) string {
	names := func(types []api.ValueType) string {
		parts := make([]string, len(types))
		for i, t := range types {
			parts[i] = api.ValueTypeName(t)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return "func" + names(params) + " -> " + names(results)
}
