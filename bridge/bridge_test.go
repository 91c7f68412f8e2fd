package bridge

import (
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/sides"
	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/internal/mocks/mock_sides"
	"github.com/wippyai/sides/reference"
	"github.com/wippyai/sides/resource"
)

type fixed int32

func (f fixed) Number() int32 { return int32(f) }

type recorder struct {
	watch  Handle
	events []resource.EventType
	types  []string
}

func (r *recorder) OnResourceEvent(e resource.Event) {
	if r.watch != 0 && e.Handle != r.watch {
		return
	}
	r.events = append(r.events, e.Type)
	r.types = append(r.types, e.TypeName)
}

func TestWrap_RoundTrip(t *testing.T) {
	before := LiveCount()

	h := Wrap(reference.New())
	require.NotZero(t, h)
	assert.True(t, Live(h))
	assert.Equal(t, before+1, LiveCount())

	p := FromHandle(h)
	assert.Equal(t, int32(42), p.Number())
	assert.Equal(t, h, p.Handle())

	p.Drop()
	assert.False(t, Live(h))
	assert.Equal(t, before, LiveCount())
}

func TestWrap_InterfacePayload(t *testing.T) {
	h := Wrap[sides.Thing](fixed(7))
	p := FromHandle(h)
	assert.Equal(t, int32(7), p.Number())
	assert.Same(t, Descriptor[sides.Thing](), p.VTable())
	p.Drop()
}

func TestDestroy_ExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	thing := mock_sides.NewMockDroppableThing(ctrl)
	thing.EXPECT().Number().Return(int32(42)).Times(3)
	thing.EXPECT().Drop().Times(1)

	h := Wrap(thing)

	// Hand the handle around several times before anyone destroys it.
	for i := 0; i < 3; i++ {
		p := FromHandle(h)
		require.Equal(t, int32(42), p.Number())
		next := p.IntoHandle()
		require.Equal(t, h, next)
		require.True(t, Lent(h))
		require.True(t, Reclaim(h))
	}

	FromHandle(h).Drop()
	assert.False(t, Live(h))
}

func TestDestroy_NonDroppablePayload(t *testing.T) {
	before := LiveCount()
	FromHandle(Wrap(fixed(1))).Drop()
	assert.Equal(t, before, LiveCount())
}

func TestDescriptor_Identity(t *testing.T) {
	h1 := Wrap(reference.New())
	h2 := Wrap(reference.New(reference.WithNumber(9)))
	p1 := FromHandle(h1)
	p2 := FromHandle(h2)

	assert.Same(t, p1.VTable(), p2.VTable())
	assert.Same(t, Descriptor[*reference.Thing](), p1.VTable())
	assert.Equal(t,
		reflect.ValueOf(p1.VTable().Number).Pointer(),
		reflect.ValueOf(p2.VTable().Number).Pointer())
	assert.Equal(t,
		reflect.ValueOf(p1.VTable().Destroy).Pointer(),
		reflect.ValueOf(p2.VTable().Destroy).Pointer())

	assert.NotSame(t, Descriptor[fixed](), Descriptor[*reference.Thing]())

	assert.Equal(t, int32(42), p1.Number())
	assert.Equal(t, int32(9), p2.Number())
	p1.Drop()
	p2.Drop()

	// Descriptors outlive their holders.
	assert.Same(t, Descriptor[*reference.Thing](), dropVTable(t, Wrap(reference.New())))
}

// dropVTable destroys h and returns the vtable it used.
func dropVTable(t *testing.T, h Handle) *VTable {
	t.Helper()
	p := FromHandle(h)
	vt := p.VTable()
	p.Drop()
	return vt
}

func TestProxy_PoisonedAfterDrop(t *testing.T) {
	dropped := 0
	h := Wrap(reference.New(reference.OnDrop(func() { dropped++ })))
	p := FromHandle(h)
	p.Drop()

	assert.Equal(t, 1, dropped)
	assert.Nil(t, p.VTable())
	assert.Panics(t, func() { p.Number() })
	assert.Panics(t, func() { p.Drop() })
	assert.Equal(t, 1, dropped)

	_, err := Lookup(h)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDispatch, Kind: errors.KindInvalidHandle})
}

func TestProxy_IntoHandlePoisons(t *testing.T) {
	h := Wrap(reference.New())
	p := FromHandle(h)
	assert.Equal(t, h, p.IntoHandle())
	assert.Panics(t, func() { p.Number() })

	// The new owner still sees a working object.
	q := FromHandle(h)
	assert.Equal(t, int32(42), q.Number())
	q.Drop()
}

func TestDestroy_TwiceFromStaleProxy(t *testing.T) {
	h := Wrap(reference.New())
	stale := FromHandle(h)
	FromHandle(h).Drop()

	assert.Panics(t, stale.Drop)
}

func TestLookup(t *testing.T) {
	h := Wrap(reference.New())
	p, err := Lookup(h)
	require.NoError(t, err)
	assert.Equal(t, int32(42), p.Number())
	p.Drop()

	for _, bad := range []Handle{0, 0xdead0, h} {
		_, err := Lookup(bad)
		assert.Error(t, err, "handle %#x", bad)
	}
}

func TestLookupLent(t *testing.T) {
	owned := Wrap(reference.New())
	_, err := LookupLent(owned)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDispatch, Kind: errors.KindProtocol})
	assert.True(t, Live(owned), "a rejected lookup must not touch the holder")

	h := FromHandle(owned).IntoHandle()
	p, err := LookupLent(h)
	require.NoError(t, err)
	assert.Equal(t, int32(42), p.Number())
	p.Drop()

	_, err = LookupLent(h)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDispatch, Kind: errors.KindInvalidHandle})
}

func TestFromHandle_Zero(t *testing.T) {
	assert.Panics(t, func() { FromHandle(0) })
}

func TestObserver_Lifecycle(t *testing.T) {
	h := Wrap(reference.New())
	rec := &recorder{watch: h}
	Subscribe(rec)
	defer Unsubscribe(rec)

	p := FromHandle(h)
	h = p.IntoHandle()
	require.True(t, Reclaim(h))
	FromHandle(h).Drop()

	assert.Equal(t, []resource.EventType{
		resource.EventLent,
		resource.EventReclaimed,
		resource.EventDropped,
	}, rec.events)
	for _, name := range rec.types {
		assert.Equal(t, "*reference.Thing", name)
	}
	assert.False(t, Reclaim(h))
}

func TestTypeName(t *testing.T) {
	h := Wrap(fixed(3))
	name, ok := TypeName(h)
	assert.True(t, ok)
	assert.Equal(t, "bridge.fixed", name)
	FromHandle(h).Drop()
	_, ok = TypeName(h)
	assert.False(t, ok)
}

func TestOwned(t *testing.T) {
	o := Export(reference.New())
	require.True(t, o.Valid())

	h := o.Take()
	assert.False(t, o.Valid())
	assert.Panics(t, func() { o.Take() })

	var missing *Owned
	assert.False(t, missing.Valid())

	FromHandle(h).Drop()
}

func TestSlots(t *testing.T) {
	require.Len(t, Slots, 2)
	assert.Equal(t, "destroy", Slots[0].Name)
	assert.Empty(t, Slots[0].Results)

	s, ok := SlotByName("number")
	require.True(t, ok)
	assert.Equal(t, []wit.Type{wit.S32{}}, s.Results)

	_, ok = SlotByName("missing")
	assert.False(t, ok)
}
