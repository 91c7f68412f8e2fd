package cgen

import (
	"strings"

	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/idl"
)

// Type is a C type usable as a parameter or return type.
type Type interface {
	Name() string
	ParamName() string
}

// PrimitiveType is an IDL primitive rendered as its C equivalent.
type PrimitiveType string

func (t PrimitiveType) Name() string { return string(t) }

// ParamName returns the C spelling, or "" for unknown primitives.
func (t PrimitiveType) ParamName() string {
	switch t {
	case idl.I8:
		return "char"
	case idl.I16:
		return "short"
	case idl.I32:
		return "int"
	case idl.I64:
		return "long long"
	case idl.Long:
		return "long"
	case idl.Size:
		return "unsigned long"
	case idl.Void:
		return "void"
	}
	if strings.HasPrefix(string(t), "u") {
		if signed := PrimitiveType("i" + string(t)[1:]).ParamName(); signed != "" {
			return "unsigned " + signed
		}
	}
	return ""
}

// Param is a named, typed argument.
type Param struct {
	Name string
	Type Type
}

// Context resolves IDL type names to C types.
type Context struct {
	types map[string]Type
}

// NewContext creates a context knowing the primitives and the interfaces
// and enums declared in f.
func NewContext(f *idl.File) *Context {
	c := &Context{types: make(map[string]Type)}
	if f == nil {
		return c
	}
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *idl.Interface:
			c.types[d.Name] = &Class{name: typeName(d.Name)}
		case *idl.Enum:
			c.types[d.Name] = &Enum{name: typeName(d.Name), Values: d.Values}
		}
	}
	return c
}

// Define registers a custom type under name.
func (c *Context) Define(name string, t Type) {
	c.types[name] = t
}

// CType resolves name.
func (c *Context) CType(name string) (Type, bool) {
	if t, ok := c.types[name]; ok {
		return t, true
	}
	if idl.IsPrimitive(name) {
		return PrimitiveType(name), true
	}
	return nil, false
}

func (c *Context) resolve(name string) (Type, error) {
	t, ok := c.CType(name)
	if !ok {
		return nil, errors.NotFound(errors.PhaseGenerate, "type", name)
	}
	return t, nil
}

// typeName turns an IDL name into its C struct name: CoisaDeCamelo -> coisa_de_camelo_t.
func typeName(name string) string {
	return idl.FromCamel(name).Append(idl.Identifier{"t"}).Snake()
}
