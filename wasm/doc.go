// Package wasm writes small WebAssembly core modules.
//
// It covers what collaborator scripts need: function types, function
// imports and exports, and bodies built from a handful of instructions.
//
//	m := &wasm.Module{}
//	number := m.ImportFunc("sides:thing", "number", wasm.FuncType{
//		Params:  []wasm.ValType{wasm.ValI64},
//		Results: []wasm.ValType{wasm.ValI32},
//	})
//	body := wasm.NewCode().LocalGet(0).Call(number).End()
//	m.ExportFunc("main", wasm.FuncType{
//		Params:  []wasm.ValType{wasm.ValI64},
//		Results: []wasm.ValType{wasm.ValI32},
//	}, nil, body)
//
//	bin := m.Encode()
package wasm
