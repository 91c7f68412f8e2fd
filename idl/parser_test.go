package idl

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/sides"
	"github.com/wippyai/sides/errors"
)

func TestParse(t *testing.T) {
	src := `// things
binding = "sides"
# ola = "va\"lor\\" #

Thing = interface +c +py {
	number(): i32;
	static create(seed: u32, scale: i64): Thing;
	async static fetch();
	static(): void;
}

Color = enum { red; green; }
`
	got, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := &File{Decls: []Decl{
		&Setting{Name: "binding", Value: "sides", Line: 2},
		&Setting{Name: "ola", Value: `va"lor\`, Legacy: true, Line: 3},
		&Interface{
			Name:      "Thing",
			Languages: []string{"c", "py"},
			Line:      5,
			Methods: []Method{
				{Name: "number", Return: "i32"},
				{Name: "create", Return: "Thing", Static: true, Params: []Param{
					{Name: "seed", Type: "u32"},
					{Name: "scale", Type: "i64"},
				}},
				{Name: "fetch", Return: "void", Static: true, Async: true},
				{Name: "static", Return: "void"},
			},
		},
		&Enum{Name: "Color", Values: []string{"red", "green"}, Line: 12},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}

	iface, ok := got.Interface("Thing")
	if !ok {
		t.Fatal("Interface(Thing) not found")
	}
	if !iface.Targets("c") || iface.Targets("ts") {
		t.Errorf("Targets = %v", iface.Languages)
	}
	members := iface.Members()
	if len(members) != 2 || members[0].Name != "number" || members[1].Name != "static" {
		t.Errorf("Members = %+v", members)
	}
	if v, ok := got.Setting("ola"); !ok || v != `va"lor\` {
		t.Errorf("Setting(ola) = %q, %v", v, ok)
	}
	if _, ok := got.Setting("missing"); ok {
		t.Error("Setting(missing) should not be found")
	}
}

func TestParse_ThingIDL(t *testing.T) {
	f, err := Parse(sides.ThingIDL)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	iface, ok := f.Interface("Thing")
	if !ok {
		t.Fatal("Thing not declared")
	}
	m, ok := iface.Method("number")
	if !ok {
		t.Fatal("number not declared")
	}
	if m.Static || m.Return != I32 || len(m.Params) != 0 {
		t.Errorf("number = %+v", m)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"missing eq", "Thing interface {}", 1},
		{"unterminated interface", "Thing = interface {\n number(): i32;\n", 2},
		{"missing semicolon", "Thing = interface {\n number(): i32\n}", 3},
		{"bad param", "Thing = interface {\n f(a i32);\n}", 2},
		{"duplicate decl", "A = \"x\"\nA = \"y\"", 2},
		{"duplicate method", "T = interface {\n a();\n a();\n}", 3},
		{"unterminated string", "a = \"abc", 1},
		{"bad character", "a = @", 1},
		{"legacy without close", "# a = \"b\"", 1},
		{"enum without semicolon", "E = enum { a }", 1},
		{"unknown kind", "E = struct {}", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatal("expected error")
			}
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("error type = %T", err)
			}
			if e.Phase != errors.PhaseParse {
				t.Errorf("Phase = %v", e.Phase)
			}
			if e.Line != tt.line {
				t.Errorf("Line = %d, want %d (%v)", e.Line, tt.line, err)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse("  \n// nothing\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(f.Decls) != 0 {
		t.Errorf("Decls = %v", f.Decls)
	}
}
