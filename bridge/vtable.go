package bridge

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/wippyai/sides"
	"github.com/wippyai/sides/errors"
	"go.uber.org/zap"
)

// VTable is the layout table shared by every holder of one concrete type.
// Slot order is fixed: Destroy first, then the Thing operations.
type VTable struct {
	Destroy func(self unsafe.Pointer)
	Number  func(self unsafe.Pointer) int32
}

// descriptors caches one *VTable per concrete type. Entries are never removed.
var descriptors sync.Map // reflect.Type -> *VTable

// Descriptor returns the VTable for T, building it on first use.
// Repeated calls for the same T return the same pointer.
func Descriptor[T sides.Thing]() *VTable {
	key := reflect.TypeFor[T]()
	if vt, ok := descriptors.Load(key); ok {
		return vt.(*VTable)
	}

	vt, loaded := descriptors.LoadOrStore(key, &VTable{
		Destroy: destroyHolder[T],
		Number:  numberHolder[T],
	})
	if !loaded {
		Logger().Debug("vtable created", zap.Stringer("type", key))
	}
	return vt.(*VTable)
}

func numberHolder[T sides.Thing](self unsafe.Pointer) int32 {
	return (*Holder[T])(self).self.Number()
}

// destroyHolder runs the payload destructor and releases the holder.
// A second call on the same holder is a protocol violation and panics.
func destroyHolder[T sides.Thing](self unsafe.Pointer) {
	holder := (*Holder[T])(self)
	h := handleOf(self)
	if holder.vtable == nil {
		panic(errors.Protocol(errors.PhaseDispatch, uintptr(h), "holder destroyed twice"))
	}

	payload := holder.self
	var zero T
	holder.self = zero
	holder.vtable = nil

	if d, ok := any(payload).(sides.Dropper); ok {
		d.Drop()
	}

	live.Remove(h)
	Logger().Debug("holder destroyed", zap.Uintptr("handle", uintptr(h)))
}
