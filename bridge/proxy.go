package bridge

import (
	"unsafe"

	"github.com/wippyai/sides/errors"
)

// Proxy calls a wrapped value through its vtable.
// It owns the handle until Drop or IntoHandle; both leave it poisoned.
type Proxy struct {
	vtable *VTable
	self   unsafe.Pointer
}

// FromHandle rebuilds a proxy from a live handle. The handle is trusted:
// anything other than a live handle is a protocol violation.
func FromHandle(h Handle) *Proxy {
	if h == 0 {
		panic(errors.InvalidHandle(errors.PhaseDispatch, 0))
	}
	p := pointer(h)
	return &Proxy{
		vtable: *(**VTable)(p),
		self:   p,
	}
}

// Lookup is FromHandle for handles from untrusted code.
func Lookup(h Handle) (*Proxy, error) {
	if _, ok := live.Get(h); !ok {
		return nil, errors.InvalidHandle(errors.PhaseDispatch, uintptr(h))
	}
	p := FromHandle(h)
	if p.vtable == nil {
		return nil, errors.Protocol(errors.PhaseDispatch, uintptr(h), "holder already destroyed")
	}
	return p, nil
}

// LookupLent is Lookup for code that may only act on handles lent to it.
// A live handle the host still owns is a protocol violation.
func LookupLent(h Handle) (*Proxy, error) {
	p, err := Lookup(h)
	if err != nil {
		return nil, err
	}
	if !live.Lent(h) {
		return nil, errors.Protocol(errors.PhaseDispatch, uintptr(h), "handle was not lent")
	}
	return p, nil
}

// Number forwards to the wrapped value.
func (p *Proxy) Number() int32 {
	return p.vtable.Number(p.self)
}

// Drop destroys the wrapped value. The proxy must not be used afterwards.
func (p *Proxy) Drop() {
	destroy := p.vtable.Destroy
	self := p.self
	p.poison()
	destroy(self)
}

// IntoHandle gives up ownership without destroying and returns the handle
// for whoever takes over.
func (p *Proxy) IntoHandle() Handle {
	h := handleOf(p.self)
	p.poison()
	live.Lend(h)
	return h
}

// Handle returns the handle without giving up ownership.
func (p *Proxy) Handle() Handle {
	return handleOf(p.self)
}

// VTable returns the descriptor the proxy dispatches through.
func (p *Proxy) VTable() *VTable {
	return p.vtable
}

func (p *Proxy) poison() {
	p.vtable = nil
	p.self = nil
}
