package resource

import (
	"sync"
)

// LiveTable implements the Table interface on top of a Backend.
type LiveTable struct {
	backend   Backend
	observers []Observer
	obsMu     sync.RWMutex
}

var _ Table = (*LiveTable)(nil)

// NewTable creates a new live table with a LocalBackend.
func NewTable() *LiveTable {
	return NewTableOn(NewLocalBackend())
}

// NewTableOn creates a live table storing its entries in b.
func NewTableOn(b Backend) *LiveTable {
	return &LiveTable{backend: b}
}

// Insert registers value under handle.
func (t *LiveTable) Insert(handle Handle, typeName string, value any) error {
	if err := t.backend.Create(handle, typeName, value); err != nil {
		return err
	}

	t.notify(Event{
		Type:     EventCreated,
		Handle:   handle,
		TypeName: typeName,
		Value:    value,
	})
	return nil
}

// Get retrieves a value by handle.
func (t *LiveTable) Get(handle Handle) (any, bool) {
	return t.backend.Get(handle)
}

// TypeName returns the type name recorded for handle.
func (t *LiveTable) TypeName(handle Handle) (string, bool) {
	return t.backend.TypeName(handle)
}

// Remove unregisters a handle and returns (value, true) if found.
func (t *LiveTable) Remove(handle Handle) (any, bool) {
	typeName, _ := t.backend.TypeName(handle)
	value, ok := t.backend.Drop(handle)
	if !ok {
		return nil, false
	}

	t.notify(Event{
		Type:     EventDropped,
		Handle:   handle,
		TypeName: typeName,
		Value:    value,
	})
	return value, true
}

// Lend marks handle as owned by foreign code.
func (t *LiveTable) Lend(handle Handle) bool {
	if !t.backend.Lend(handle) {
		return false
	}
	t.notifyState(EventLent, handle)
	return true
}

// Reclaim marks a lent handle as owned by the host again.
func (t *LiveTable) Reclaim(handle Handle) bool {
	if !t.backend.Reclaim(handle) {
		return false
	}
	t.notifyState(EventReclaimed, handle)
	return true
}

// Lent reports whether handle is currently lent.
func (t *LiveTable) Lent(handle Handle) bool {
	return t.backend.Lent(handle)
}

// Subscribe adds an observer for lifecycle events.
func (t *LiveTable) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *LiveTable) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live handles.
func (t *LiveTable) Len() int {
	return t.backend.Len()
}

func (t *LiveTable) notifyState(typ EventType, handle Handle) {
	typeName, _ := t.backend.TypeName(handle)
	value, _ := t.backend.Get(handle)
	t.notify(Event{
		Type:     typ,
		Handle:   handle,
		TypeName: typeName,
		Value:    value,
	})
}

func (t *LiveTable) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
