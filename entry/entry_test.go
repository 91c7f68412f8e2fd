package entry_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/sides/bridge"
	"github.com/wippyai/sides/entry"
	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/internal/mocks/mock_sides"
	"github.com/wippyai/sides/reference"
	"github.com/wippyai/sides/runtime"
	"github.com/wippyai/sides/script"
)

type fixture struct {
	out   bytes.Buffer
	err   bytes.Buffer
	drops int
	live  int
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{live: bridge.LiveCount()}
	t.Cleanup(func() {
		assert.Equal(t, f.live, bridge.LiveCount(), "holders leaked")
	})
	return f
}

func (f *fixture) thing() *bridge.Owned {
	return bridge.Export(reference.New(
		reference.WithDiagnostics(&f.out),
		reference.OnDrop(func() { f.drops++ }),
	))
}

func (f *fixture) entry(bin []byte) *entry.Entry {
	return entry.New(entry.Config{Stdout: &f.out, Stderr: &f.err, Bytes: bin})
}

func TestMain_EndToEnd(t *testing.T) {
	f := newFixture(t)

	err := f.entry(script.Default()).Main(context.Background(), f.thing())
	require.NoError(t, err)

	out := f.out.String()
	assert.Equal(t, 1, strings.Count(out, "Got into rust 42\n"))
	assert.Equal(t, 1, strings.Count(out, "script main: 42\n"))
	assert.Equal(t, 1, strings.Count(out, "GOING AWAY!\n"))
	assert.Contains(t, out, "Vtable 0x")
	assert.Contains(t, out, "script: thing 0x")
	assert.Less(t, strings.Index(out, "Got into rust"), strings.Index(out, "GOING AWAY!"))
	assert.Equal(t, 1, f.drops)
}

func TestMain_ScriptKeepsThing(t *testing.T) {
	f := newFixture(t)

	err := f.entry(script.Reference(script.Options{})).Main(context.Background(), f.thing())
	require.NoError(t, err)

	out := f.out.String()
	assert.Contains(t, out, "script main: 42")
	assert.Greater(t, strings.Index(out, "GOING AWAY!"), strings.Index(out, "script main: 42"))
	assert.Equal(t, 1, f.drops)
}

func TestMain_CustomNumber(t *testing.T) {
	f := newFixture(t)
	thing := bridge.Export(reference.New(reference.WithNumber(7), reference.OnDrop(func() { f.drops++ })))

	require.NoError(t, f.entry(script.Default()).Main(context.Background(), thing))
	assert.Contains(t, f.out.String(), "Got into rust 7\n")
	assert.Contains(t, f.out.String(), "script main: 7\n")
	assert.Equal(t, 1, f.drops)
}

func TestMain_ScriptFailures(t *testing.T) {
	tests := []struct {
		name string
		opts script.Options
	}{
		{"trap before destroy", script.Options{Trap: true}},
		{"trap after destroy", script.Options{Destroy: true, Trap: true}},
		{"traced trap", script.Options{Trace: true, Destroy: true, Trap: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			err := f.entry(script.Reference(tt.opts)).Main(context.Background(), f.thing())
			assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindHostFailure})
			assert.True(t, strings.HasPrefix(f.err.String(), "error "))
			assert.NotContains(t, f.out.String(), "error ")
			assert.NotContains(t, f.out.String(), "script main:")
			assert.Equal(t, 1, f.drops)
		})
	}
}

func TestMain_MissingScript(t *testing.T) {
	f := newFixture(t)
	e := entry.New(entry.Config{
		Stdout: &f.out,
		Stderr: &f.err,
		Script: filepath.Join(t.TempDir(), "main.wasm"),
	})

	err := e.Main(context.Background(), f.thing())
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInvalidData})
	assert.Contains(t, f.out.String(), "Got into rust 42")
	assert.Contains(t, f.err.String(), "error ")
	assert.Equal(t, 1, f.drops)
}

func TestMain_MemoryLimitTooLarge(t *testing.T) {
	f := newFixture(t)
	e := entry.New(entry.Config{
		Stdout:  &f.out,
		Stderr:  &f.err,
		Runtime: &runtime.Config{MemoryLimitPages: 70000},
		Bytes:   script.Default(),
	})

	var err error
	require.NotPanics(t, func() { err = e.Main(context.Background(), f.thing()) })
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindInvalidInput})
	assert.Contains(t, f.err.String(), "error ")
	assert.Equal(t, 1, f.drops)
}

func TestMain_TokenTakenOnce(t *testing.T) {
	f := newFixture(t)
	thing := f.thing()
	e := f.entry(script.Default())

	require.NoError(t, e.Main(context.Background(), thing))
	assert.False(t, thing.Valid())
	assert.Panics(t, func() { _ = e.Main(context.Background(), thing) })
	assert.Equal(t, 1, f.drops)
}

func TestMain_RepeatedCalls(t *testing.T) {
	f := newFixture(t)
	e := f.entry(script.Reference(script.Options{}))

	for range 3 {
		require.NoError(t, e.Main(context.Background(), f.thing()))
	}
	assert.Equal(t, 3, f.drops)
	assert.Equal(t, 3, strings.Count(f.out.String(), "Got into rust 42"))
}

func TestMain_DispatchesThroughVtable(t *testing.T) {
	ctrl := gomock.NewController(t)
	thing := mock_sides.NewMockDroppableThing(ctrl)

	// Once from the entry point, once from the script.
	thing.EXPECT().Number().Return(int32(42)).Times(2)
	thing.EXPECT().Drop().Times(1)

	f := newFixture(t)
	require.NoError(t, f.entry(script.Default()).Main(context.Background(), bridge.Export(thing)))
}

func TestMain_LogsCallID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := entry.Logger()
	entry.SetLogger(zap.New(core))
	defer entry.SetLogger(prev)

	f := newFixture(t)
	require.NoError(t, f.entry(script.Default()).Main(context.Background(), f.thing()))

	entries := logs.All()
	require.NotEmpty(t, entries)
	call := entries[0].ContextMap()["call"]
	require.NotEmpty(t, call)
	for _, e := range entries {
		assert.Equal(t, call, e.ContextMap()["call"])
	}
	assert.Equal(t, 1, logs.FilterMessage("destroyed by script").Len())
}
