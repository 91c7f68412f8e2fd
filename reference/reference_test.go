package reference

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wippyai/sides"
)

var _ sides.DroppableThing = (*Thing)(nil)

func TestThing_Number(t *testing.T) {
	assert.Equal(t, int32(42), New().Number())
	assert.Equal(t, int32(7), New(WithNumber(7)).Number())
}

func TestThing_Drop(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	th := New(WithDiagnostics(&buf), OnDrop(func() { calls++ }), OnDrop(func() { calls++ }))

	require.False(t, th.Dropped())
	th.Drop()

	assert.True(t, th.Dropped())
	assert.Equal(t, 2, calls)
	assert.Equal(t, "GOING AWAY!\n", buf.String())
	assert.Panics(t, th.Drop)
}
