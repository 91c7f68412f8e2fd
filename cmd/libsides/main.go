// Command libsides builds the bridge as a C library:
//
//	go build -buildmode=c-shared -o libsides.so ./cmd/libsides
//
// The library exports sides_rust_main and sides_new_reference_thing; see
// package cabi.
package main

import (
	_ "github.com/wippyai/sides/cabi"
)

func main() {}
