// Package script assembles and loads collaborator scripts: WebAssembly
// modules exporting main(thing i64) that reach the Thing only through the
// sides:thing imports.
package script

import (
	"bytes"
	"os"

	"github.com/wippyai/sides"
	"github.com/wippyai/sides/bridge"
	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/wasm"
)

// DefaultPath is where the entry point looks for a script.
const DefaultPath = "main.wasm"

// MainExport is the function every script exports.
const MainExport = "main"

// Options selects what the reference script does with the Thing.
type Options struct {
	// Trace logs the handle through sides:log before using it.
	Trace bool
	// Destroy calls the destroy slot after reading the number.
	Destroy bool
	// Trap fails the script after all other steps.
	Trap bool
}

// DefaultOptions read the number, destroy the Thing and return the number.
var DefaultOptions = Options{Trace: true, Destroy: true}

var magicVersion = []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

// Reference assembles the reference script:
//
//	main(thing) { log.handle(thing); n = number(thing); destroy(thing); return n }
func Reference(opts Options) []byte {
	m := &wasm.Module{}
	handle := []wasm.ValType{wasm.ValI64}

	logHandle := m.ImportFunc(sides.LogModule, "handle", wasm.FuncType{Params: handle})

	slots := make(map[string]uint32, len(bridge.Slots))
	for _, s := range bridge.Slots {
		params, _ := wasm.FlattenAll(s.Params)
		results, _ := wasm.FlattenAll(s.Results)
		slots[s.Name] = m.ImportFunc(sides.ThingModule, s.Name, wasm.FuncType{
			Params:  append(append([]wasm.ValType(nil), handle...), params...),
			Results: results,
		})
	}

	code := wasm.NewCode()
	if opts.Trace {
		code.LocalGet(0).Call(logHandle)
	}
	code.LocalGet(0).Call(slots["number"]).LocalSet(1)
	if opts.Destroy {
		code.LocalGet(0).Call(slots["destroy"])
	}
	if opts.Trap {
		code.Unreachable()
	}
	code.LocalGet(1)

	m.ExportFunc(MainExport, wasm.FuncType{
		Params:  handle,
		Results: []wasm.ValType{wasm.ValI32},
	}, []wasm.ValType{wasm.ValI32}, code.End())

	return m.Encode()
}

// Default returns the reference script built with DefaultOptions.
func Default() []byte {
	return Reference(DefaultOptions)
}

// Load reads a script from path. An empty path means DefaultPath.
func Load(path string) ([]byte, error) {
	if path == "" {
		path = DefaultPath
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read script "+path, err)
	}
	if !bytes.HasPrefix(bin, magicVersion) {
		return nil, errors.InvalidData(errors.PhaseLoad, path+" is not a WebAssembly module")
	}
	return bin, nil
}

// Write stores a script at path.
func Write(path string, bin []byte) error {
	if err := os.WriteFile(path, bin, 0o644); err != nil {
		return errors.Load("write script "+path, err)
	}
	return nil
}
