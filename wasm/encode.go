package wasm

import (
	"bytes"
	"encoding/binary"
)

// Encode encodes the module to WebAssembly binary format
func (m *Module) Encode() []byte {
	var w bytes.Buffer

	// Magic number and version
	_ = binary.Write(&w, binary.LittleEndian, Magic)
	_ = binary.Write(&w, binary.LittleEndian, Version)

	// Type section
	if len(m.Types) > 0 {
		var sec bytes.Buffer
		WriteLEB128u(&sec, uint32(len(m.Types)))
		for _, ft := range m.Types {
			sec.WriteByte(FuncTypeByte)
			writeValTypes(&sec, ft.Params)
			writeValTypes(&sec, ft.Results)
		}
		writeSection(&w, SectionType, sec.Bytes())
	}

	// Import section
	if len(m.Imports) > 0 {
		var sec bytes.Buffer
		WriteLEB128u(&sec, uint32(len(m.Imports)))
		for _, imp := range m.Imports {
			writeName(&sec, imp.Module)
			writeName(&sec, imp.Name)
			sec.WriteByte(KindFunc)
			WriteLEB128u(&sec, imp.TypeIdx)
		}
		writeSection(&w, SectionImport, sec.Bytes())
	}

	// Function section
	if len(m.Funcs) > 0 {
		var sec bytes.Buffer
		WriteLEB128u(&sec, uint32(len(m.Funcs)))
		for _, typeIdx := range m.Funcs {
			WriteLEB128u(&sec, typeIdx)
		}
		writeSection(&w, SectionFunction, sec.Bytes())
	}

	// Export section
	if len(m.Exports) > 0 {
		var sec bytes.Buffer
		WriteLEB128u(&sec, uint32(len(m.Exports)))
		for _, exp := range m.Exports {
			writeName(&sec, exp.Name)
			sec.WriteByte(KindFunc)
			WriteLEB128u(&sec, exp.Idx)
		}
		writeSection(&w, SectionExport, sec.Bytes())
	}

	// Code section
	if len(m.Code) > 0 {
		var sec bytes.Buffer
		WriteLEB128u(&sec, uint32(len(m.Code)))
		for _, body := range m.Code {
			var fb bytes.Buffer
			writeLocals(&fb, body.Locals)
			fb.Write(body.Code)
			WriteLEB128u(&sec, uint32(fb.Len()))
			sec.Write(fb.Bytes())
		}
		writeSection(&w, SectionCode, sec.Bytes())
	}

	return w.Bytes()
}

func writeSection(w *bytes.Buffer, id byte, data []byte) {
	w.WriteByte(id)
	WriteLEB128u(w, uint32(len(data)))
	w.Write(data)
}

func writeName(w *bytes.Buffer, name string) {
	WriteLEB128u(w, uint32(len(name)))
	w.WriteString(name)
}

func writeValTypes(w *bytes.Buffer, types []ValType) {
	WriteLEB128u(w, uint32(len(types)))
	for _, t := range types {
		w.WriteByte(byte(t))
	}
}

// writeLocals groups consecutive locals of the same type.
func writeLocals(w *bytes.Buffer, locals []ValType) {
	type run struct {
		t ValType
		n uint32
	}
	var runs []run
	for _, l := range locals {
		if len(runs) > 0 && runs[len(runs)-1].t == l {
			runs[len(runs)-1].n++
			continue
		}
		runs = append(runs, run{t: l, n: 1})
	}
	WriteLEB128u(w, uint32(len(runs)))
	for _, r := range runs {
		WriteLEB128u(w, r.n)
		w.WriteByte(byte(r.t))
	}
}
