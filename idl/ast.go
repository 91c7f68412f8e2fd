package idl

// Decl is a top-level declaration: *Interface, *Enum or *Setting.
type Decl interface {
	DeclName() string
}

// Interface declares an object type and its methods.
type Interface struct {
	Name      string
	Languages []string
	Methods   []Method
	Line      int
}

// Method is one interface member.
type Method struct {
	Name   string
	Return string
	Params []Param
	Static bool
	Async  bool
}

// Param is a named, typed method argument.
type Param struct {
	Name string
	Type string
}

// Enum declares a set of named values.
type Enum struct {
	Name   string
	Values []string
	Line   int
}

// Setting binds a name to a string value.
type Setting struct {
	Name   string
	Value  string
	Legacy bool
	Line   int
}

func (i *Interface) DeclName() string { return i.Name }
func (e *Enum) DeclName() string      { return e.Name }
func (s *Setting) DeclName() string   { return s.Name }

// Members returns the non-static methods, in declaration order.
func (i *Interface) Members() []Method {
	var out []Method
	for _, m := range i.Methods {
		if !m.Static {
			out = append(out, m)
		}
	}
	return out
}

// Method returns the method called name.
func (i *Interface) Method(name string) (Method, bool) {
	for _, m := range i.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return Method{}, false
}

// Targets reports whether the interface is generated for lang.
func (i *Interface) Targets(lang string) bool {
	for _, l := range i.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// File is a parsed IDL file.
type File struct {
	Decls []Decl
}

// Interfaces returns the interface declarations in order.
func (f *File) Interfaces() []*Interface {
	var out []*Interface
	for _, d := range f.Decls {
		if i, ok := d.(*Interface); ok {
			out = append(out, i)
		}
	}
	return out
}

// Interface returns the interface called name.
func (f *File) Interface(name string) (*Interface, bool) {
	for _, i := range f.Interfaces() {
		if i.Name == name {
			return i, true
		}
	}
	return nil, false
}

// Setting returns the value bound to name.
func (f *File) Setting(name string) (string, bool) {
	for _, d := range f.Decls {
		if s, ok := d.(*Setting); ok && s.Name == name {
			return s.Value, true
		}
	}
	return "", false
}
