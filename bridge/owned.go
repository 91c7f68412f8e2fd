package bridge

import (
	"github.com/wippyai/sides/errors"
)

// noCopy makes go vet's copylocks check flag copies of Owned.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Owned is a move-only handle token. Take moves the handle out once.
type Owned struct {
	noCopy noCopy
	h      Handle
}

// Own wraps h into a token.
func Own(h Handle) *Owned {
	return &Owned{h: h}
}

// Take moves the handle out. Taking twice panics.
func (o *Owned) Take() Handle {
	if o == nil || o.h == 0 {
		panic(errors.Protocol(errors.PhaseBoundary, 0, "handle already taken"))
	}
	h := o.h
	o.h = 0
	return h
}

// Valid reports whether the token still holds a handle.
func (o *Owned) Valid() bool {
	return o != nil && o.h != 0
}
