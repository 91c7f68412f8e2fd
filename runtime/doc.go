// Package runtime is the foreign host collaborator scripts run in.
//
// A Runtime wraps a wazero runtime with two host modules:
//
//	sides:thing  one import per vtable slot, derived from the Thing IDL
//	sides:log    handle(i64) prints the handle a script received
//
// Every slot import takes the handle as its first i64 parameter and
// dispatches through the handle's vtable. Handles are checked against the
// live table first; a stale or forged handle traps the calling script.
//
// Basic usage:
//
//	rt, err := runtime.New(ctx, &runtime.Config{Stdout: os.Stdout})
//	if err != nil {
//	    return err
//	}
//	defer rt.Close(ctx)
//
//	s, err := rt.LoadScript(ctx, "main.wasm")
//	if err != nil {
//	    return err
//	}
//	result, err := s.Main(ctx, handle)
//
// Scripts are compiled once and instantiated anonymously for every Main
// call, so a script keeps no state between calls.
package runtime
