package cgen

import (
	"io"
)

// Node is a piece of generated code. Gen returns either one line of code or
// the child nodes to emit in its place.
type Node interface {
	Gen() (line string, children []Node)
}

// Line is a literal line of code.
type Line string

func (l Line) Gen() (string, []Node) { return string(l), nil }

// Group emits its nodes in order.
type Group []Node

func (g Group) Gen() (string, []Node) { return "", g }

// Reader streams the code of a node tree, one line per leaf.
type Reader struct {
	pending []Node
	buf     []byte
}

// NewReader returns a Reader over n.
func NewReader(n Node) *Reader {
	return &Reader{pending: []Node{n}}
}

func (r *Reader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		if len(r.pending) == 0 {
			return 0, io.EOF
		}
		next := r.pending[0]
		r.pending = r.pending[1:]

		line, children := next.Gen()
		if children != nil {
			r.pending = append(append([]Node(nil), children...), r.pending...)
			continue
		}
		r.buf = append(r.buf, line...)
		r.buf = append(r.buf, '\n')
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// Render returns the full code of n.
func Render(n Node) (string, error) {
	b, err := io.ReadAll(NewReader(n))
	return string(b), err
}
