package wasm

import (
	"bytes"
)

// WriteLEB128u appends v as unsigned LEB128.
func WriteLEB128u(w *bytes.Buffer, v uint32) {
	for v >= 0x80 {
		w.WriteByte(byte(v) | 0x80)
		v >>= 7
	}
	w.WriteByte(byte(v))
}

// WriteLEB128s appends v as signed LEB128.
func WriteLEB128s(w *bytes.Buffer, v int32) {
	WriteLEB128s64(w, int64(v))
}

// WriteLEB128s64 appends v as signed LEB128. Encoding stops once the
// remaining bits are all copies of the sign bit.
func WriteLEB128s64(w *bytes.Buffer, v int64) {
	for {
		b := byte(v) & 0x7f
		v >>= 7
		sign := b & 0x40
		if (v == 0 && sign == 0) || (v == -1 && sign != 0) {
			w.WriteByte(b)
			return
		}
		w.WriteByte(b | 0x80)
	}
}
