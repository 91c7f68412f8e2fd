// Package resource tracks objects that have been handed to foreign code.
//
// A handle is the address of a host-side holder. Foreign code keeps it as a
// plain integer, which the Go collector cannot see, so every exported holder
// is registered here until its destroy slot runs. The table is the source of
// truth for which handles are live.
//
// # Handle Table
//
//	table := resource.NewTable()
//
//	// Register a holder under its address
//	err := table.Insert(h, "*reference.Thing", holder)
//
//	// Check liveness and fetch the holder
//	holder, ok := table.Get(h)
//
//	// Release on destruction
//	holder, ok := table.Remove(h)
//
// # Lending
//
// Ownership moving to foreign code is recorded with Lend and returned with
// Reclaim. A lent handle may be removed by the foreign side at any time.
//
// # Observers
//
// Register observers to track lifecycle events:
//
//	type logObserver struct{}
//
//	func (logObserver) OnResourceEvent(e resource.Event) {
//	    log.Printf("handle %#x %s", e.Handle, e.Type)
//	}
//
//	table.Subscribe(&logObserver{})
//
// Observers run synchronously on the calling goroutine and must not call
// back into the table.
package resource
