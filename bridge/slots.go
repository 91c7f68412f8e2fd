package bridge

import (
	"go.bytecodealliance.org/wit"
)

// Slot describes one vtable entry as seen by foreign code. The receiver is
// implicit and not listed in Params.
type Slot struct {
	Name    string
	Params  []wit.Type
	Results []wit.Type
}

// Slots lists the vtable entries in layout order.
var Slots = []Slot{
	{Name: "destroy"},
	{Name: "number", Results: []wit.Type{wit.S32{}}},
}

// SlotByName returns the slot called name.
func SlotByName(name string) (Slot, bool) {
	for _, s := range Slots {
		if s.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}
