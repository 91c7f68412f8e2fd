package wasm

import (
	"go.bytecodealliance.org/wit"
)

// Flatten returns the core value type carrying a scalar WIT type.
func Flatten(t wit.Type) (ValType, bool) {
	switch t.(type) {
	case wit.Bool, wit.S8, wit.U8, wit.S16, wit.U16, wit.S32, wit.U32, wit.Char:
		return ValI32, true
	case wit.S64, wit.U64:
		return ValI64, true
	case wit.F32:
		return ValF32, true
	case wit.F64:
		return ValF64, true
	}
	return 0, false
}

// FlattenAll flattens a list of scalar WIT types.
func FlattenAll(types []wit.Type) ([]ValType, bool) {
	out := make([]ValType, 0, len(types))
	for _, t := range types {
		v, ok := Flatten(t)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
