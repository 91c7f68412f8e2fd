package resource

import (
	"errors"
	"sync"
)

var (
	ErrNullHandle = errors.New("handle 0 is reserved")
	ErrExists     = errors.New("handle already registered")
)

// LocalBackend is an in-memory backend keyed by holder address.
type LocalBackend struct {
	entries map[Handle]*entry
	mu      sync.RWMutex
}

var _ Backend = (*LocalBackend)(nil)

type entry struct {
	value    any
	typeName string
	lent     bool
}

// NewLocalBackend creates a new in-memory backend.
func NewLocalBackend() *LocalBackend {
	return &LocalBackend{
		entries: make(map[Handle]*entry, 64),
	}
}

// Create registers value under handle.
func (b *LocalBackend) Create(handle Handle, typeName string, value any) error {
	if handle == 0 {
		return ErrNullHandle
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.entries[handle]; ok {
		return ErrExists
	}

	b.entries[handle] = &entry{
		typeName: typeName,
		value:    value,
	}
	return nil
}

// Get retrieves a value by handle.
func (b *LocalBackend) Get(handle Handle) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.entries[handle]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// TypeName returns the type name recorded for handle.
func (b *LocalBackend) TypeName(handle Handle) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.entries[handle]
	if !ok {
		return "", false
	}
	return e.typeName, true
}

// Drop unregisters a handle and returns (value, true) if it was live.
func (b *LocalBackend) Drop(handle Handle) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[handle]
	if !ok {
		return nil, false
	}
	delete(b.entries, handle)
	return e.value, true
}

// Lend marks a live handle as lent. Lending twice fails.
func (b *LocalBackend) Lend(handle Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[handle]
	if !ok || e.lent {
		return false
	}
	e.lent = true
	return true
}

// Reclaim clears the lent mark of a live handle.
func (b *LocalBackend) Reclaim(handle Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[handle]
	if !ok || !e.lent {
		return false
	}
	e.lent = false
	return true
}

// Lent reports whether handle is live and lent.
func (b *LocalBackend) Lent(handle Handle) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.entries[handle]
	return ok && e.lent
}

// Len returns the number of live handles.
func (b *LocalBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
