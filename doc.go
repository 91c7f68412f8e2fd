// Package sides bridges a Go capability to foreign code through a
// binary-stable layout: an opaque, address-sized handle plus a fixed table of
// function pointers.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	sides/               Root package with the Thing capability and its IDL
//	├── bridge/          Vtable descriptors, erasure holders, boundary proxies
//	├── resource/        Live handle table with lifecycle observers
//	├── reference/       Reference Thing (number 42, observable drop)
//	├── entry/           Boundary entry point
//	├── runtime/         Foreign host on wazero (collaborator scripts)
//	├── script/          Reference collaborator script
//	├── wasm/            Core WASM binary writer
//	├── idl/             Interface description language parser
//	├── cgen/            C header generator
//	├── cabi/            C ABI exports (cgo)
//	├── config/          TOML configuration
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Hand a value to the foreign side and run the collaborator script:
//
//	owned := bridge.Export[sides.Thing](reference.New())
//	e := entry.New(entry.Config{Script: "main.wasm", Stdout: os.Stdout})
//	e.Main(ctx, owned)
//
// # Ownership
//
// Wrapping consumes the value. Exactly one party destroys it: either the
// foreign side through the vtable destroy slot, or the entry point when
// control comes back and the object is still live. A handle must not be
// used after destruction.
package sides
