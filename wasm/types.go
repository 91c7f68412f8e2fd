package wasm

import "fmt"

// Module is a core module under construction.
// Imported functions take the lowest function indices.
type Module struct {
	Types   []FuncType
	Imports []Import
	Funcs   []uint32 // Type indices for declared functions
	Exports []Export
	Code    []FuncBody
}

// FuncType is a function signature.
type FuncType struct {
	Params  []ValType
	Results []ValType
}

// Equal reports whether two signatures are identical.
func (f FuncType) Equal(o FuncType) bool {
	if len(f.Params) != len(o.Params) || len(f.Results) != len(o.Results) {
		return false
	}
	for i := range f.Params {
		if f.Params[i] != o.Params[i] {
			return false
		}
	}
	for i := range f.Results {
		if f.Results[i] != o.Results[i] {
			return false
		}
	}
	return true
}

// ValType is a core value type.
type ValType byte

func (v ValType) String() string {
	switch v {
	case ValI32:
		return "i32"
	case ValI64:
		return "i64"
	case ValF32:
		return "f32"
	case ValF64:
		return "f64"
	}
	return fmt.Sprintf("valtype(0x%02x)", byte(v))
}

// Import is an imported function.
type Import struct {
	Module  string
	Name    string
	TypeIdx uint32
}

// Export is an exported function.
type Export struct {
	Name string
	Idx  uint32
}

// FuncBody is a function's locals and instruction bytes (ending in end).
type FuncBody struct {
	Locals []ValType
	Code   []byte
}

// AddType returns the index of ft, adding it if missing.
func (m *Module) AddType(ft FuncType) uint32 {
	for i, t := range m.Types {
		if t.Equal(ft) {
			return uint32(i)
		}
	}
	m.Types = append(m.Types, ft)
	return uint32(len(m.Types) - 1)
}

// ImportFunc adds a function import and returns its function index.
// Imports must be added before any defined function.
func (m *Module) ImportFunc(module, name string, ft FuncType) uint32 {
	if len(m.Funcs) > 0 {
		panic("wasm: imports must precede defined functions")
	}
	m.Imports = append(m.Imports, Import{Module: module, Name: name, TypeIdx: m.AddType(ft)})
	return uint32(len(m.Imports) - 1)
}

// AddFunc defines a function and returns its function index.
func (m *Module) AddFunc(ft FuncType, locals []ValType, code []byte) uint32 {
	m.Funcs = append(m.Funcs, m.AddType(ft))
	m.Code = append(m.Code, FuncBody{Locals: locals, Code: code})
	return uint32(len(m.Imports) + len(m.Funcs) - 1)
}

// ExportFunc defines a function and exports it under name.
func (m *Module) ExportFunc(name string, ft FuncType, locals []ValType, code []byte) uint32 {
	idx := m.AddFunc(ft, locals, code)
	m.Exports = append(m.Exports, Export{Name: name, Idx: idx})
	return idx
}
