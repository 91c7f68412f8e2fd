package bridge

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/sides"
	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/resource"
	"go.uber.org/zap"
)

// Handle is the opaque value that crosses the boundary: the address of a
// Holder.
type Handle = resource.Handle

// Holder stores a concrete value behind its vtable. The vtable pointer must
// stay the first field; proxies read it without knowing T.
type Holder[T sides.Thing] struct {
	vtable *VTable
	self   T
}

// Wrap moves payload into a new holder and returns its handle.
// The caller must eventually destroy the handle exactly once.
func Wrap[T sides.Thing](payload T) Handle {
	holder := &Holder[T]{
		vtable: Descriptor[T](),
		self:   payload,
	}
	h := Handle(uintptr(unsafe.Pointer(holder)))

	typeName := reflect.TypeFor[T]().String()
	if err := live.Insert(h, typeName, holder); err != nil {
		panic(errors.New(errors.PhaseWrap, errors.KindProtocol).
			Handle(uintptr(h)).
			GoType(typeName).
			Cause(err).
			Detail("register holder").
			Build())
	}

	Logger().Debug("wrapped",
		zap.Uintptr("handle", uintptr(h)),
		zap.String("type", typeName))
	return h
}

// Export wraps payload and returns the handle as an ownership token.
func Export[T sides.Thing](payload T) *Owned {
	return Own(Wrap(payload))
}

// pointer reinterprets handle bits as an address.
func pointer(h Handle) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&h))
}

func handleOf(p unsafe.Pointer) Handle {
	return Handle(uintptr(p))
}
