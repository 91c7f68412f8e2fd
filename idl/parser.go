package idl

import (
	"github.com/wippyai/sides/errors"
)

// Parse parses an IDL source.
func Parse(src string) (*File, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, seen: make(map[string]int)}
	return p.parseFile()
}

type parser struct {
	seen   map[string]int
	tokens []token
	pos    int
}

func (p *parser) peek() *token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) line() int {
	if t := p.peek(); t != nil {
		return t.Line
	}
	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1].Line
	}
	return 1
}

func (p *parser) expect(typ tokenType) (*token, error) {
	t := p.next()
	if t == nil {
		return nil, errors.Syntax(p.line(), "unexpected end of input, expected %v", typ)
	}
	if t.Type != typ {
		return nil, errors.Syntax(t.Line, "expected %v, got %q", typ, t.Value)
	}
	return t, nil
}

func (p *parser) expectPunct(value string) error {
	t := p.next()
	if t == nil {
		return errors.Syntax(p.line(), "unexpected end of input, expected %q", value)
	}
	if t.Type != tokPunct || t.Value != value {
		return errors.Syntax(t.Line, "expected %q, got %q", value, t.Value)
	}
	return nil
}

func (p *parser) atPunct(value string) bool {
	t := p.peek()
	return t != nil && t.Type == tokPunct && t.Value == value
}

func (p *parser) atKeyword(word string) bool {
	t := p.peek()
	return t != nil && t.Type == tokIdent && t.Value == word
}

func (p *parser) parseFile() (*File, error) {
	f := &File{}
	for p.peek() != nil {
		d, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		f.Decls = append(f.Decls, d)
	}
	return f, nil
}

func (p *parser) declare(name string, line int) error {
	if prev, ok := p.seen[name]; ok {
		return errors.Syntax(line, "%s already declared at line %d", name, prev)
	}
	p.seen[name] = line
	return nil
}

func (p *parser) parseDecl() (Decl, error) {
	if p.atPunct("#") {
		return p.parseLegacySetting()
	}

	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if err := p.declare(name.Value, name.Line); err != nil {
		return nil, err
	}
	if err := p.expectPunct("="); err != nil {
		return nil, err
	}

	t := p.peek()
	switch {
	case t == nil:
		return nil, errors.Syntax(p.line(), "unexpected end of input after %s =", name.Value)
	case t.Type == tokString:
		p.next()
		return &Setting{Name: name.Value, Value: t.Value, Line: name.Line}, nil
	case p.atKeyword("interface"):
		p.next()
		return p.parseInterface(name)
	case p.atKeyword("enum"):
		p.next()
		return p.parseEnum(name)
	}
	return nil, errors.Syntax(t.Line, "expected interface, enum or string, got %q", t.Value)
}

func (p *parser) parseLegacySetting() (Decl, error) {
	p.next()
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if err := p.declare(name.Value, name.Line); err != nil {
		return nil, err
	}
	if err := p.expectPunct("="); err != nil {
		return nil, err
	}
	value, err := p.expect(tokString)
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("#"); err != nil {
		return nil, err
	}
	return &Setting{Name: name.Value, Value: value.Value, Legacy: true, Line: name.Line}, nil
}

func (p *parser) parseInterface(name *token) (*Interface, error) {
	iface := &Interface{Name: name.Value, Line: name.Line}

	for p.atPunct("+") {
		p.next()
		lang, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		iface.Languages = append(iface.Languages, lang.Value)
	}

	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	methods := make(map[string]bool)
	for !p.atPunct("}") {
		if p.peek() == nil {
			return nil, errors.Syntax(p.line(), "unterminated interface %s", iface.Name)
		}
		line := p.line()
		m, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		if methods[m.Name] {
			return nil, errors.Syntax(line, "method %s.%s declared twice", iface.Name, m.Name)
		}
		methods[m.Name] = true
		iface.Methods = append(iface.Methods, m)
	}
	p.next()

	return iface, nil
}

func (p *parser) parseMethod() (Method, error) {
	var m Method

	for (p.atKeyword("static") || p.atKeyword("async")) && !p.atCall() {
		if p.next().Value == "static" {
			m.Static = true
		} else {
			m.Async = true
		}
	}

	name, err := p.expect(tokIdent)
	if err != nil {
		return m, err
	}
	m.Name = name.Value

	if err := p.expectPunct("("); err != nil {
		return m, err
	}
	for !p.atPunct(")") {
		if len(m.Params) > 0 {
			if err := p.expectPunct(","); err != nil {
				return m, err
			}
		}
		param, err := p.parseParam()
		if err != nil {
			return m, err
		}
		m.Params = append(m.Params, param)
	}
	p.next()

	m.Return = "void"
	if p.atPunct(":") {
		p.next()
		ret, err := p.expect(tokIdent)
		if err != nil {
			return m, err
		}
		m.Return = ret.Value
	}

	if err := p.expectPunct(";"); err != nil {
		return m, err
	}
	return m, nil
}

// atCall reports whether the next identifier is followed by '(' and is
// therefore a method name rather than a modifier.
func (p *parser) atCall() bool {
	if p.pos+1 >= len(p.tokens) {
		return false
	}
	t := p.tokens[p.pos+1]
	return t.Type == tokPunct && t.Value == "("
}

func (p *parser) parseParam() (Param, error) {
	name, err := p.expect(tokIdent)
	if err != nil {
		return Param{}, err
	}
	if err := p.expectPunct(":"); err != nil {
		return Param{}, err
	}
	typ, err := p.expect(tokIdent)
	if err != nil {
		return Param{}, err
	}
	return Param{Name: name.Value, Type: typ.Value}, nil
}

func (p *parser) parseEnum(name *token) (*Enum, error) {
	e := &Enum{Name: name.Value, Line: name.Line}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	for !p.atPunct("}") {
		v, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(";"); err != nil {
			return nil, err
		}
		e.Values = append(e.Values, v.Value)
	}
	p.next()
	return e, nil
}
