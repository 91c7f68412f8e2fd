package runtime

import (
	"context"
	"fmt"
	"reflect"

	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/sides"
	"github.com/wippyai/sides/bridge"
	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/idl"
	"github.com/wippyai/sides/wasm"
)

// Import is one host function a script may import.
type Import struct {
	Module  string
	Name    string
	Params  []api.ValueType
	Results []api.ValueType
}

// dispatcher runs one slot on a checked proxy. Results go to stack.
type dispatcher func(ctx context.Context, p *bridge.Proxy, stack []uint64)

var dispatchers = map[string]dispatcher{
	"destroy": func(_ context.Context, p *bridge.Proxy, _ []uint64) {
		p.Drop()
	},
	"number": func(_ context.Context, p *bridge.Proxy, stack []uint64) {
		stack[0] = api.EncodeI32(p.Number())
	},
}

// ThingImports derives the sides:thing imports from the Thing IDL.
// The implicit destroy slot comes first, then the declared methods.
func ThingImports() ([]Import, error) {
	file, err := idl.Parse(sides.ThingIDL)
	if err != nil {
		return nil, err
	}
	iface, ok := file.Interface("Thing")
	if !ok {
		return nil, errors.NotFound(errors.PhaseHost, "interface", "Thing")
	}

	methods := append([]idl.Method{{Name: "destroy", Return: idl.Void}}, iface.Members()...)
	imports := make([]Import, 0, len(methods))
	for _, m := range methods {
		name := idl.FromCamel(m.Name).Snake()
		slot, ok := bridge.SlotByName(name)
		if !ok {
			return nil, errors.NotFound(errors.PhaseHost, "slot", name)
		}

		params, ok := m.ParamTypes()
		if !ok {
			return nil, errors.Unsupported(errors.PhaseHost, "parameter types of "+m.Name)
		}
		results, ok := m.Results()
		if !ok {
			return nil, errors.Unsupported(errors.PhaseHost, "return type of "+m.Name)
		}
		if !sameTypes(params, slot.Params) || !sameTypes(results, slot.Results) {
			return nil, errors.TypeMismatch(errors.PhaseHost, typeList(slot.Params, slot.Results), typeList(params, results))
		}

		coreParams, ok := flatten(params)
		if !ok {
			return nil, errors.Unsupported(errors.PhaseHost, "non-scalar parameters of "+m.Name)
		}
		coreResults, ok := flatten(results)
		if !ok {
			return nil, errors.Unsupported(errors.PhaseHost, "non-scalar results of "+m.Name)
		}

		imports = append(imports, Import{
			Module:  sides.ThingModule,
			Name:    name,
			Params:  append([]api.ValueType{api.ValueTypeI64}, coreParams...),
			Results: coreResults,
		})
	}
	return imports, nil
}

func (r *Runtime) registerThing(ctx context.Context) error {
	imports, err := ThingImports()
	if err != nil {
		return err
	}

	builder := r.wz.NewHostModuleBuilder(sides.ThingModule)
	for _, imp := range imports {
		d, ok := dispatchers[imp.Name]
		if !ok {
			return errors.Registration(imp.Module, imp.Name, fmt.Errorf("no dispatcher"))
		}
		builder.NewFunctionBuilder().
			WithGoModuleFunction(slotFunc(imp.Name, d), imp.Params, imp.Results).
			Export(imp.Name)
	}

	if _, err := builder.Instantiate(ctx); err != nil {
		return errors.Registration(sides.ThingModule, "*", err)
	}
	return nil
}

func slotFunc(name string, d dispatcher) api.GoModuleFunc {
	return func(ctx context.Context, _ api.Module, stack []uint64) {
		h := bridge.Handle(stack[0])
		p, err := bridge.LookupLent(h)
		if err != nil {
			Logger().Warn("script passed a bad handle",
				zap.String("slot", name),
				zap.Uintptr("handle", uintptr(h)),
				zap.Error(err))
			panic(err)
		}
		Logger().Debug("slot call",
			zap.String("slot", name),
			zap.Uintptr("handle", uintptr(h)))
		d(ctx, p, stack)
	}
}

func (r *Runtime) registerLog(ctx context.Context) error {
	_, err := r.wz.NewHostModuleBuilder(sides.LogModule).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			fmt.Fprintf(r.stdout, "script: thing %#x\n", stack[0])
		}), []api.ValueType{api.ValueTypeI64}, nil).
		Export("handle").
		Instantiate(ctx)
	if err != nil {
		return errors.Registration(sides.LogModule, "handle", err)
	}
	return nil
}

func flatten(types []wit.Type) ([]api.ValueType, bool) {
	vals, ok := wasm.FlattenAll(types)
	if !ok {
		return nil, false
	}
	if len(vals) == 0 {
		return nil, true
	}
	out := make([]api.ValueType, len(vals))
	for i, v := range vals {
		out[i] = api.ValueType(v)
	}
	return out, true
}

func sameTypes(a, b []wit.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if reflect.TypeOf(a[i]) != reflect.TypeOf(b[i]) {
			return false
		}
	}
	return true
}

func typeList(params, results []wit.Type) string {
	return fmt.Sprintf("%s -> %s", typeNames(params), typeNames(results))
}

func typeNames(types []wit.Type) string {
	s := "("
	for i, t := range types {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%T", t)
	}
	return s + ")"
}
