// Package bridge erases a Go value behind an address-sized handle and a fixed
// table of function pointers, and rebuilds a callable view of it from the
// handle alone.
//
// # Layout
//
// Every exported value lives in a Holder whose first word is a pointer to the
// VTable of its concrete type:
//
//	Holder[T]  { vtable *VTable; self T }
//	VTable     { Destroy func(self); Number func(self) int32 }
//	Handle     = address of the Holder
//
// A Proxy reads the first word of the holder to find the vtable and calls
// every operation through it, so code holding only a handle never needs the
// concrete type.
//
// # Ownership
//
// Wrap consumes the value. The handle is owned by exactly one party at a
// time; whoever owns it last calls Drop (or the vtable Destroy slot)
// exactly once. IntoHandle passes ownership onward without destroying.
//
//	h := bridge.Wrap[sides.Thing](reference.New())
//	p := bridge.FromHandle(h)
//	fmt.Println(p.Number()) // 42
//	p.Drop()
//
// Handles that arrive from untrusted code should go through Lookup, which
// rejects handles that are not live. Code that may only touch handles it
// was given uses LookupLent, which also rejects handles the host still owns.
// FromHandle trusts its input.
package bridge
