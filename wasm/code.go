package wasm

import "bytes"

// Code builds a function body.
type Code struct {
	buf bytes.Buffer
}

// NewCode starts an empty body.
func NewCode() *Code {
	return &Code{}
}

func (c *Code) LocalGet(idx uint32) *Code {
	c.buf.WriteByte(OpLocalGet)
	WriteLEB128u(&c.buf, idx)
	return c
}

func (c *Code) LocalSet(idx uint32) *Code {
	c.buf.WriteByte(OpLocalSet)
	WriteLEB128u(&c.buf, idx)
	return c
}

func (c *Code) LocalTee(idx uint32) *Code {
	c.buf.WriteByte(OpLocalTee)
	WriteLEB128u(&c.buf, idx)
	return c
}

func (c *Code) Call(funcIdx uint32) *Code {
	c.buf.WriteByte(OpCall)
	WriteLEB128u(&c.buf, funcIdx)
	return c
}

func (c *Code) I32Const(v int32) *Code {
	c.buf.WriteByte(OpI32Const)
	WriteLEB128s(&c.buf, v)
	return c
}

func (c *Code) I64Const(v int64) *Code {
	c.buf.WriteByte(OpI64Const)
	WriteLEB128s64(&c.buf, v)
	return c
}

func (c *Code) Drop() *Code {
	c.buf.WriteByte(OpDrop)
	return c
}

func (c *Code) Unreachable() *Code {
	c.buf.WriteByte(OpUnreachable)
	return c
}

// End terminates the body and returns its bytes.
func (c *Code) End() []byte {
	c.buf.WriteByte(OpEnd)
	return c.buf.Bytes()
}
