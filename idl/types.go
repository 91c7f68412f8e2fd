package idl

import (
	"go.bytecodealliance.org/wit"
)

// Primitive type names.
const (
	I8   = "i8"
	I16  = "i16"
	I32  = "i32"
	I64  = "i64"
	U8   = "u8"
	U16  = "u16"
	U32  = "u32"
	U64  = "u64"
	Long = "long"
	Size = "size"
	Void = "void"
)

var witTypes = map[string]wit.Type{
	I8:   wit.S8{},
	I16:  wit.S16{},
	I32:  wit.S32{},
	I64:  wit.S64{},
	U8:   wit.U8{},
	U16:  wit.U16{},
	U32:  wit.U32{},
	U64:  wit.U64{},
	Long: wit.S64{},
	Size: wit.U64{},
}

// IsPrimitive reports whether name is a built-in type.
func IsPrimitive(name string) bool {
	if name == Void {
		return true
	}
	_, ok := witTypes[name]
	return ok
}

// WitType maps a primitive to its WIT type. void has no WIT type and
// reports false, as do non-primitive names.
func WitType(name string) (wit.Type, bool) {
	t, ok := witTypes[name]
	return t, ok
}

// Results returns the WIT result list for a method: empty for void.
func (m Method) Results() ([]wit.Type, bool) {
	if m.Return == Void {
		return nil, true
	}
	t, ok := WitType(m.Return)
	if !ok {
		return nil, false
	}
	return []wit.Type{t}, true
}

// ParamTypes returns the WIT types of the explicit parameters.
func (m Method) ParamTypes() ([]wit.Type, bool) {
	out := make([]wit.Type, 0, len(m.Params))
	for _, p := range m.Params {
		t, ok := WitType(p.Type)
		if !ok {
			return nil, false
		}
		out = append(out, t)
	}
	return out, true
}
