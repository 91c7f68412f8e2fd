package cgen

import (
	"io"
	"os"
	"path/filepath"

	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/idl"
)

// Language is the IDL target name handled by this package.
const Language = "c"

// SelfParam is the name of the implicit receiver argument.
const SelfParam = "_sides_self"

// ClassSpec builds the C class for an IDL interface.
func ClassSpec(iface *idl.Interface, ctx *Context) (*Class, error) {
	t, err := ctx.resolve(iface.Name)
	if err != nil {
		return nil, err
	}
	class, ok := t.(*Class)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseGenerate, "class", t.Name())
	}
	self := Param{Name: SelfParam, Type: class}
	prefix := idl.FromCamel(iface.Name)

	vtable := &VTable{Class: class}
	vtable.Slots = append(vtable.Slots, Slot{Ret: PrimitiveType(idl.Void), Name: "destroy", Args: []Param{self}})

	class.Methods = []*Function{{
		Ret:  PrimitiveType(idl.Void),
		Name: prefix.Append(idl.Identifier{"destroy"}).Snake(),
		Args: []Param{self},
	}}

	for _, m := range iface.Methods {
		if m.Async {
			return nil, errors.Unsupported(errors.PhaseGenerate, "async method "+iface.Name+"."+m.Name)
		}
		if m.Name == "destroy" && !m.Static {
			return nil, errors.InvalidInput(errors.PhaseGenerate, iface.Name+".destroy is implicit")
		}

		ret, err := ctx.resolve(m.Return)
		if err != nil {
			return nil, err
		}
		args := make([]Param, 0, len(m.Params)+1)
		if !m.Static {
			args = append(args, self)
		}
		for _, p := range m.Params {
			pt, err := ctx.resolve(p.Type)
			if err != nil {
				return nil, err
			}
			args = append(args, Param{Name: p.Name, Type: pt})
		}

		method := idl.FromCamel(m.Name)
		class.Methods = append(class.Methods, &Function{
			Ret:    ret,
			Name:   prefix.Append(method).Snake(),
			Args:   args,
			Static: m.Static,
		})
		if !m.Static {
			vtable.Slots = append(vtable.Slots, Slot{Ret: ret, Name: method.Snake(), Args: args})
		}
	}

	class.VTable = vtable
	return class, nil
}

// Generate builds one header per interface that targets C.
func Generate(f *idl.File) ([]*File, error) {
	ctx := NewContext(f)
	var files []*File
	for _, iface := range f.Interfaces() {
		if !iface.Targets(Language) {
			continue
		}
		class, err := ClassSpec(iface, ctx)
		if err != nil {
			return nil, err
		}
		files = append(files, class.File())
	}
	return files, nil
}

// WriteFiles writes each file into dir.
func WriteFiles(dir string, files []*File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "create output directory")
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.Name), f); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, n Node) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "create "+path)
	}
	if _, err := io.Copy(out, NewReader(n)); err != nil {
		out.Close()
		return errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "write "+path)
	}
	return out.Close()
}
