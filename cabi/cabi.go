//go:build cgo

package cabi

/*
#include <stdlib.h>
#include "cabi.h"
*/
import "C"

import (
	"context"
	"fmt"
	"io"
	"os"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/sides/bridge"
	"github.com/wippyai/sides/config"
	"github.com/wippyai/sides/entry"
	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/reference"
	"github.com/wippyai/sides/runtime"
)

// foreignThing is a Thing built outside Go, dispatched through its C vtable.
type foreignThing struct {
	ptr *C.thing_t
}

func (f *foreignThing) Number() int32 {
	return int32(C.thing_number(f.ptr))
}

func (f *foreignThing) Drop() {
	C.thing_destroy(f.ptr)
	f.ptr = nil
}

// adopt takes ownership of a C Thing. A Go shell is unwrapped back to the
// handle it carries; anything else is wrapped as a foreignThing.
func adopt(t *C.thing_t) *bridge.Owned {
	if C.sides_is_go_thing(t) != 0 {
		return bridge.Own(bridge.Handle(C.sides_go_thing_release(t)))
	}
	return bridge.Export(&foreignThing{ptr: t})
}

// shell moves an owned Go value into a C shell. The shell's destroy slot
// destroys the value.
func shell(o *bridge.Owned) *C.thing_t {
	h := o.Take()
	t := C.sides_go_thing_new(C.uintptr_t(h))
	if t == nil {
		bridge.FromHandle(h).Drop()
		panic(outOfMemory("Go thing shell"))
	}
	return t
}

// entryConfig builds the entry configuration from SIDES_CONFIG.
func entryConfig() (entry.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return entry.Config{}, err
	}
	return entry.Config{
		Script:  cfg.Script,
		Runtime: &runtime.Config{MemoryLimitPages: cfg.MemoryLimitPages},
	}, nil
}

// RunShell hands a Go Thing to C and back, the way a C harness holding a
// Go-made Thing would: C reads the number through the vtable, then passes
// the Thing to the entry point.
func RunShell(ctx context.Context, cfg entry.Config, thing *bridge.Owned) error {
	t := shell(thing)
	fmt.Fprintf(stdout(cfg), "C side %d\n", int32(C.thing_number(t)))
	return entry.New(cfg).Main(ctx, adopt(t))
}

// RunForeign builds a Thing in C and passes it to the entry point. It
// returns how many times the C destroy slot ran.
func RunForeign(ctx context.Context, cfg entry.Config, number int32) (int, error) {
	destroyed := (*C.int)(C.malloc(C.sizeof_int))
	defer C.free(unsafe.Pointer(destroyed))
	*destroyed = 0

	t := C.sides_c_thing_new(C.int(number), destroyed)
	if t == nil {
		panic(outOfMemory("C thing"))
	}
	fmt.Fprintf(stdout(cfg), "C side %d\n", int32(C.thing_number(t)))
	err := entry.New(cfg).Main(ctx, adopt(t))
	return int(*destroyed), err
}

func outOfMemory(what string) error {
	return errors.New(errors.PhaseBoundary, errors.KindAllocation).
		Detail("malloc %s", what).
		Build()
}

func stdout(cfg entry.Config) io.Writer {
	if cfg.Stdout == nil {
		return os.Stdout
	}
	return cfg.Stdout
}

//export sides_rust_main
func sides_rust_main(t *C.thing_t) {
	owned := adopt(t)
	cfg, err := entryConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		bridge.FromHandle(owned.Take()).Drop()
		return
	}
	_ = entry.New(cfg).Main(context.Background(), owned)
}

//export sides_new_reference_thing
func sides_new_reference_thing() *C.thing_t {
	cfg, err := config.FromEnv()
	number := reference.DefaultNumber
	if err == nil {
		number = cfg.Reference.Number
	}
	return shell(bridge.Export(reference.New(
		reference.WithNumber(number),
		reference.WithDiagnostics(os.Stdout),
	)))
}

//export sidesGoThingNumber
func sidesGoThingNumber(h C.uintptr_t) C.int {
	return C.int(checked(bridge.Handle(h), "number").Number())
}

//export sidesGoThingDestroy
func sidesGoThingDestroy(h C.uintptr_t) {
	checked(bridge.Handle(h), "destroy").Drop()
}

func checked(h bridge.Handle, slot string) *bridge.Proxy {
	p, err := bridge.Lookup(h)
	if err != nil {
		entry.Logger().Error("C passed a bad handle",
			zap.String("slot", slot),
			zap.Uintptr("handle", uintptr(h)),
			zap.Error(err))
		panic(err)
	}
	return p
}
