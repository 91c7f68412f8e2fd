package runtime_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/sides"
	"github.com/wippyai/sides/bridge"
	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/reference"
	"github.com/wippyai/sides/runtime"
	"github.com/wippyai/sides/script"
	"github.com/wippyai/sides/wasm"
)

var (
	i64 = []wasm.ValType{wasm.ValI64}
	i32 = []wasm.ValType{wasm.ValI32}
)

func newRuntime(t *testing.T) (*runtime.Runtime, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()
	var out bytes.Buffer
	rt, err := runtime.New(ctx, &runtime.Config{Stdout: &out, MemoryLimitPages: 16})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close(ctx) })
	return rt, &out
}

func load(t *testing.T, rt *runtime.Runtime, bin []byte) *runtime.Script {
	t.Helper()
	s, err := rt.LoadBytes(context.Background(), t.Name(), bin)
	require.NoError(t, err)
	return s
}

// counted lends a fresh Thing the way the entry point does before calling a
// script.
func counted(drops *int) bridge.Handle {
	h := bridge.Wrap(reference.New(reference.OnDrop(func() { *drops++ })))
	return bridge.FromHandle(h).IntoHandle()
}

// callsTwice builds main(h) { slot(arg); slot(arg); return 0 } where arg is
// either the incoming handle or a constant.
func callsTwice(slot string, results []wasm.ValType, arg *int64) []byte {
	m := &wasm.Module{}
	fn := m.ImportFunc(sides.ThingModule, slot, wasm.FuncType{Params: i64, Results: results})
	code := wasm.NewCode()
	for range 2 {
		if arg != nil {
			code.I64Const(*arg)
		} else {
			code.LocalGet(0)
		}
		code.Call(fn)
		if len(results) > 0 {
			code.Drop()
		}
	}
	code.I32Const(0)
	m.ExportFunc(script.MainExport, wasm.FuncType{Params: i64, Results: i32}, nil, code.End())
	return m.Encode()
}

func TestThingImports(t *testing.T) {
	imports, err := runtime.ThingImports()
	require.NoError(t, err)
	require.Len(t, imports, 2)

	assert.Equal(t, runtime.Import{
		Module: sides.ThingModule,
		Name:   "destroy",
		Params: []api.ValueType{api.ValueTypeI64},
	}, imports[0])
	assert.Equal(t, runtime.Import{
		Module:  sides.ThingModule,
		Name:    "number",
		Params:  []api.ValueType{api.ValueTypeI64},
		Results: []api.ValueType{api.ValueTypeI32},
	}, imports[1])
}

func TestMain_Reference(t *testing.T) {
	rt, out := newRuntime(t)
	s := load(t, rt, script.Default())

	var drops int
	h := counted(&drops)

	res, err := s.Main(context.Background(), h)
	require.NoError(t, err)
	assert.Equal(t, int32(42), res)
	assert.Equal(t, 1, drops)
	assert.False(t, bridge.Live(h))
	assert.Contains(t, out.String(), "script: thing 0x")
}

func TestMain_KeepsThing(t *testing.T) {
	rt, out := newRuntime(t)
	s := load(t, rt, script.Reference(script.Options{}))

	var drops int
	h := counted(&drops)

	res, err := s.Main(context.Background(), h)
	require.NoError(t, err)
	assert.Equal(t, int32(42), res)
	assert.Zero(t, drops)
	assert.Empty(t, out.String())

	require.True(t, bridge.Live(h))
	bridge.FromHandle(h).Drop()
	assert.Equal(t, 1, drops)
}

func TestMain_TrapAfterDestroy(t *testing.T) {
	rt, _ := newRuntime(t)
	s := load(t, rt, script.Reference(script.Options{Destroy: true, Trap: true}))

	var drops int
	h := counted(&drops)

	_, err := s.Main(context.Background(), h)
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindHostFailure})
	assert.Equal(t, 1, drops)
	assert.False(t, bridge.Live(h))
}

func TestMain_TrapBeforeDestroy(t *testing.T) {
	rt, _ := newRuntime(t)
	s := load(t, rt, script.Reference(script.Options{Trap: true}))

	var drops int
	h := counted(&drops)

	_, err := s.Main(context.Background(), h)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindHostFailure})
	assert.Zero(t, drops)

	require.True(t, bridge.Live(h))
	bridge.FromHandle(h).Drop()
	assert.Equal(t, 1, drops)
}

func TestMain_ForgedHandleTraps(t *testing.T) {
	rt, _ := newRuntime(t)
	forged := int64(0xdead0)
	s := load(t, rt, callsTwice("number", i32, &forged))

	var drops int
	h := counted(&drops)
	defer bridge.FromHandle(h).Drop()

	_, err := s.Main(context.Background(), h)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindHostFailure})
	assert.Zero(t, drops)
}

func TestMain_UnlentHandleTraps(t *testing.T) {
	rt, _ := newRuntime(t)

	var kept int
	victim := bridge.Wrap(reference.New(reference.OnDrop(func() { kept++ })))
	defer bridge.FromHandle(victim).Drop()

	target := int64(victim)
	s := load(t, rt, callsTwice("destroy", nil, &target))

	var drops int
	h := counted(&drops)
	defer bridge.FromHandle(h).Drop()

	_, err := s.Main(context.Background(), h)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindHostFailure})
	assert.Zero(t, kept)
	assert.True(t, bridge.Live(victim))
	assert.False(t, bridge.Lent(victim))
	assert.Zero(t, drops)
}

func TestNew_MemoryLimitTooLarge(t *testing.T) {
	_, err := runtime.New(context.Background(), &runtime.Config{MemoryLimitPages: runtime.MaxMemoryPages + 1})
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindInvalidInput})
}

func TestMain_DoubleDestroyTraps(t *testing.T) {
	rt, _ := newRuntime(t)
	s := load(t, rt, callsTwice("destroy", nil, nil))

	var drops int
	h := counted(&drops)

	_, err := s.Main(context.Background(), h)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindHostFailure})
	assert.Equal(t, 1, drops)
	assert.False(t, bridge.Live(h))
}

func TestMain_MissingExport(t *testing.T) {
	rt, _ := newRuntime(t)
	m := &wasm.Module{}
	m.ExportFunc("start", wasm.FuncType{}, nil, wasm.NewCode().End())
	s := load(t, rt, m.Encode())

	_, err := s.Main(context.Background(), bridge.Handle(1))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindNotFound})
}

func TestMain_WrongSignature(t *testing.T) {
	rt, _ := newRuntime(t)
	m := &wasm.Module{}
	m.ExportFunc(script.MainExport, wasm.FuncType{Params: i32, Results: i32}, nil, wasm.NewCode().LocalGet(0).End())
	s := load(t, rt, m.Encode())

	_, err := s.Main(context.Background(), bridge.Handle(1))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindTypeMismatch})
	assert.Contains(t, err.Error(), "func(i32) -> (i32)")
}

func TestMain_NoResult(t *testing.T) {
	rt, _ := newRuntime(t)
	m := &wasm.Module{}
	m.ExportFunc(script.MainExport, wasm.FuncType{Params: i64}, nil, wasm.NewCode().End())
	s := load(t, rt, m.Encode())

	res, err := s.Main(context.Background(), bridge.Handle(1))
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestMain_UnknownImport(t *testing.T) {
	rt, _ := newRuntime(t)
	m := &wasm.Module{}
	m.ImportFunc(sides.ThingModule, "frobnicate", wasm.FuncType{Params: i64})
	m.ExportFunc(script.MainExport, wasm.FuncType{Params: i64}, nil, wasm.NewCode().End())
	s := load(t, rt, m.Encode())

	_, err := s.Main(context.Background(), bridge.Handle(1))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindInstantiation})
}

func TestLoad_Errors(t *testing.T) {
	rt, _ := newRuntime(t)
	ctx := context.Background()

	_, err := rt.LoadBytes(ctx, "junk", []byte("\x00asm\x01\x00\x00\x00\xff"))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInvalidData})

	_, err = rt.LoadScript(ctx, filepath.Join(t.TempDir(), "missing.wasm"))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInvalidData})
}

func TestLoadScript_FromFile(t *testing.T) {
	rt, _ := newRuntime(t)
	path := filepath.Join(t.TempDir(), "main.wasm")
	require.NoError(t, os.WriteFile(path, script.Reference(script.Options{Destroy: true}), 0o644))

	s, err := rt.LoadScript(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Name())

	var drops int
	res, err := s.Main(context.Background(), counted(&drops))
	require.NoError(t, err)
	assert.Equal(t, int32(42), res)
	assert.Equal(t, 1, drops)
	require.NoError(t, s.Close(context.Background()))
}
