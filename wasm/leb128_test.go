package wasm_test

import (
	"bytes"
	"testing"

	"github.com/wippyai/sides/wasm"
)

func TestWriteLEB128u(t *testing.T) {
	tests := []struct {
		value uint32
		want  []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{624485, []byte{0xe5, 0x8e, 0x26}},
		{0xFFFFFFFF, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		wasm.WriteLEB128u(&buf, tt.value)
		if !bytes.Equal(buf.Bytes(), tt.want) {
			t.Errorf("WriteLEB128u(%d) = %x, want %x", tt.value, buf.Bytes(), tt.want)
		}
	}
}

func TestWriteLEB128s64(t *testing.T) {
	tests := []struct {
		value int64
		want  []byte
	}{
		{0, []byte{0x00}},
		{-1, []byte{0x7f}},
		{63, []byte{0x3f}},
		{64, []byte{0xc0, 0x00}},
		{-64, []byte{0x40}},
		{-65, []byte{0xbf, 0x7f}},
		{42, []byte{0x2a}},
		{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x78}},
		{0xdead0, []byte{0xd0, 0xd5, 0x37}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		wasm.WriteLEB128s64(&buf, tt.value)
		if !bytes.Equal(buf.Bytes(), tt.want) {
			t.Errorf("WriteLEB128s64(%d) = %x, want %x", tt.value, buf.Bytes(), tt.want)
		}
	}
}

func TestWriteLEB128s(t *testing.T) {
	for _, v := range []int32{0, -1, 42, -64, 64, -2147483648, 2147483647} {
		var got, want bytes.Buffer
		wasm.WriteLEB128s(&got, v)
		wasm.WriteLEB128s64(&want, int64(v))
		if !bytes.Equal(got.Bytes(), want.Bytes()) {
			t.Errorf("WriteLEB128s(%d) = %x, want %x", v, got.Bytes(), want.Bytes())
		}
	}
}
