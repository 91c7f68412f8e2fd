package resource

// Handle is the address of an exported holder.
// Handle 0 is reserved and always invalid.
type Handle uintptr

// Event types for lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
	EventLent
	EventReclaimed
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDropped:
		return "dropped"
	case EventLent:
		return "lent"
	case EventReclaimed:
		return "reclaimed"
	}
	return "unknown"
}

// Event represents a lifecycle event.
type Event struct {
	Value    any
	TypeName string
	Handle   Handle
	Type     EventType
}

// Observer receives notifications about lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Backend provides the underlying storage for live handles.
type Backend interface {
	// Create registers value under handle.
	Create(handle Handle, typeName string, value any) error

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// TypeName returns the type name recorded for handle.
	TypeName(handle Handle) (string, bool)

	// Drop unregisters a handle and returns (value, true) if it was live.
	Drop(handle Handle) (any, bool)

	// Lend marks a live handle as lent.
	Lend(handle Handle) bool

	// Reclaim clears the lent mark of a live handle.
	Reclaim(handle Handle) bool

	// Lent reports whether handle is live and lent.
	Lent(handle Handle) bool

	// Len returns the number of live handles.
	Len() int
}

// Table manages live handles with lifecycle observers.
type Table interface {
	// Insert registers value under handle.
	Insert(handle Handle, typeName string, value any) error

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// TypeName returns the Go type name recorded for handle.
	TypeName(handle Handle) (string, bool)

	// Remove unregisters a handle and returns (value, true) if found.
	Remove(handle Handle) (any, bool)

	// Lend marks handle as owned by foreign code.
	Lend(handle Handle) bool

	// Reclaim marks a lent handle as owned by the host again.
	Reclaim(handle Handle) bool

	// Lent reports whether handle is currently lent.
	Lent(handle Handle) bool

	// Subscribe adds an observer for lifecycle events.
	Subscribe(Observer)

	// Unsubscribe removes an observer.
	Unsubscribe(Observer)

	// Len returns the number of live handles.
	Len() int
}
