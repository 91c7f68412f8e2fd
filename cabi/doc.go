// Package cabi exposes the bridge to C.
//
// thing.h is generated from the Thing IDL:
//
//	sides header ../thing.sides .
//
// A Go value crosses into C as a small C-allocated shell whose vtable slots
// call back into Go with the value's handle; Go pointers never reach C.
// A C-built Thing crossing into Go is wrapped like any other Thing and
// dispatched through its own C vtable.
//
// The exported symbols are
//
//	void     sides_rust_main(thing_t* thing);
//	thing_t* sides_new_reference_thing(void);
//
// sides_rust_main takes ownership of thing and runs the entry point with
// the configuration named by SIDES_CONFIG.
//
// The package is empty when cgo is disabled.
package cabi

//go:generate go run ../cmd/sides header ../thing.sides .
