package bridge

import (
	"github.com/wippyai/sides/resource"
)

// live keeps every exported holder reachable until its destroy slot runs.
var live resource.Table = resource.NewTable()

// Live reports whether h names a holder that has not been destroyed.
func Live(h Handle) bool {
	_, ok := live.Get(h)
	return ok
}

// Lent reports whether h is live and owned by foreign code.
func Lent(h Handle) bool {
	return live.Lent(h)
}

// Reclaim takes ownership of a lent handle back. It reports false if the
// handle was destroyed while away.
func Reclaim(h Handle) bool {
	if !Live(h) {
		return false
	}
	live.Reclaim(h)
	return true
}

// LiveCount returns the number of live holders.
func LiveCount() int {
	return live.Len()
}

// TypeName returns the Go type recorded for a live handle.
func TypeName(h Handle) (string, bool) {
	return live.TypeName(h)
}

// Subscribe registers o for holder lifecycle events.
func Subscribe(o resource.Observer) {
	live.Subscribe(o)
}

// Unsubscribe removes o.
func Unsubscribe(o resource.Observer) {
	live.Unsubscribe(o)
}
