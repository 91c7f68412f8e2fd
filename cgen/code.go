package cgen

import (
	"fmt"
	"strings"

	"github.com/wippyai/sides/errors"
)

// Function is a C function declaration.
type Function struct {
	Ret    Type
	Name   string
	Args   []Param
	Static bool
}

func (f *Function) Gen() (string, []Node) {
	return fmt.Sprintf("%s %s(%s);", f.Ret.ParamName(), f.Name, joinParams(f.Args)), nil
}

func joinParams(args []Param) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Type.ParamName() + " " + a.Name
	}
	return strings.Join(parts, ", ")
}

// Stub is an opaque struct typedef.
type Stub struct {
	Struct string
}

// NewStub checks that name follows the x_t convention.
func NewStub(name string) (*Stub, error) {
	if !strings.HasSuffix(name, "_t") {
		return nil, errors.InvalidInput(errors.PhaseGenerate, fmt.Sprintf("struct name %q must end in _t", name))
	}
	return &Stub{Struct: name}, nil
}

func (s *Stub) Gen() (string, []Node) {
	return fmt.Sprintf("typedef struct %s_s %s;", strings.TrimSuffix(s.Struct, "_t"), s.Struct), nil
}

// PragmaOnce is the include guard.
type PragmaOnce struct{}

func (PragmaOnce) Gen() (string, []Node) { return "#pragma once", nil }

// Slot is one vtable entry: a function pointer field.
type Slot struct {
	Ret  Type
	Name string
	Args []Param
}

// VTable is the function pointer table every implementation of a class
// points to from its first field.
type VTable struct {
	Class *Class
	Slots []Slot
}

func (v *VTable) base() string {
	return strings.TrimSuffix(v.Class.name, "_t")
}

func (v *VTable) Gen() (string, []Node) {
	base := v.base()
	nodes := Group{Line(fmt.Sprintf("typedef struct %s_vtable_s {", base))}
	for _, s := range v.Slots {
		nodes = append(nodes, Line(fmt.Sprintf("\t%s (*%s)(%s);", s.Ret.ParamName(), s.Name, joinParams(s.Args))))
	}
	nodes = append(nodes,
		Line(fmt.Sprintf("} %s_vtable_t;", base)),
		Line(fmt.Sprintf("struct %s_s {", base)),
		Line(fmt.Sprintf("\tconst %s_vtable_t* vtable;", base)),
		Line("};"),
	)
	return "", nodes
}

// Class is an opaque object type with its vtable and functions.
type Class struct {
	name    string
	VTable  *VTable
	Methods []*Function
}

func (c *Class) Name() string      { return c.name }
func (c *Class) ParamName() string { return c.name + "*" }

func (c *Class) Stub() *Stub {
	return &Stub{Struct: c.name}
}

func (c *Class) Gen() (string, []Node) {
	nodes := Group{c.Stub()}
	if c.VTable != nil {
		nodes = append(nodes, c.VTable)
	}
	for _, m := range c.Methods {
		nodes = append(nodes, m)
	}
	return "", nodes
}

// File returns the header holding c.
func (c *Class) File() *File {
	return &File{
		Name:    strings.TrimSuffix(c.name, "_t") + ".h",
		Content: []Node{c},
	}
}

// Enum is a C enum typedef.
type Enum struct {
	name   string
	Values []string
}

func (e *Enum) Name() string      { return e.name }
func (e *Enum) ParamName() string { return e.name }

func (e *Enum) Gen() (string, []Node) {
	prefix := strings.ToUpper(strings.TrimSuffix(e.name, "_t"))
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = prefix + "_" + strings.ToUpper(v)
	}
	return fmt.Sprintf("typedef enum { %s } %s;", strings.Join(values, ", "), e.name), nil
}

// Header is the first line of every generated file.
const Header = "// Code generated by sides header. DO NOT EDIT."

// File is a generated header.
type File struct {
	Name    string
	Content []Node
}

func (f *File) Gen() (string, []Node) {
	return "", append(Group{Line(Header), PragmaOnce{}}, f.Content...)
}
