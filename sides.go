//go:generate mockgen -source=sides.go -destination=internal/mocks/mock_sides/sides.go -package=mock_sides

package sides

import (
	_ "embed"
)

// Boundary module names seen by collaborator scripts.
const (
	ThingModule = "sides:thing"
	LogModule   = "sides:log"
)

// ThingIDL is the interface description of Thing. The vtable layout and the
// script imports are derived from it; the destroy slot is implicit.
//
//go:embed thing.sides
var ThingIDL string

// Thing is the capability exposed across the boundary.
type Thing interface {
	Number() int32
}

// Dropper is implemented by values that release resources when destroyed.
type Dropper interface {
	Drop()
}

// DroppableThing is a Thing with a destructor.
type DroppableThing interface {
	Thing
	Dropper
}
