// Package reference provides the reference Thing: it reports 42 and makes
// its destruction observable.
package reference

import (
	"fmt"
	"io"
)

// DefaultNumber is what Number returns unless overridden.
const DefaultNumber int32 = 42

// Option configures a Thing.
type Option func(*Thing)

// WithNumber overrides the reported number.
func WithNumber(n int32) Option {
	return func(t *Thing) { t.number = n }
}

// OnDrop registers a hook run when the Thing is destroyed.
func OnDrop(fn func()) Option {
	return func(t *Thing) { t.onDrop = append(t.onDrop, fn) }
}

// WithDiagnostics writes "GOING AWAY!" to w on destruction.
func WithDiagnostics(w io.Writer) Option {
	return func(t *Thing) { t.diag = w }
}

// Thing is the reference implementation of sides.Thing.
type Thing struct {
	diag    io.Writer
	onDrop  []func()
	number  int32
	dropped bool
}

// New creates a Thing.
func New(opts ...Option) *Thing {
	t := &Thing{number: DefaultNumber}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Number returns the configured number.
func (t *Thing) Number() int32 {
	return t.number
}

// Drop runs the destruction hooks.
func (t *Thing) Drop() {
	if t.dropped {
		panic("reference: Thing dropped twice")
	}
	t.dropped = true
	if t.diag != nil {
		fmt.Fprintln(t.diag, "GOING AWAY!")
	}
	for _, fn := range t.onDrop {
		fn()
	}
}

// Dropped reports whether Drop has run.
func (t *Thing) Dropped() bool {
	return t.dropped
}
