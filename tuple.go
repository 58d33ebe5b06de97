package bundle

import (
	"fmt"
	"reflect"
)

// MaxArity is the largest tuple the generated descriptors cover.
const MaxArity = 16

// Descriptor describes an ordered list of wanted component types and how to
// rebuild a typed result R from slots already in that order.
//
// TupleN types generated for N in 2..MaxArity implement it with R = RefsN.
type Descriptor[R any] interface {
	// WantedTypes returns the wanted type identities in order.
	WantedTypes() []reflect.Type
	// TryBuildShared downcasts exactly len(WantedTypes()) shared slots.
	TryBuildShared(ordered []Slot) (R, bool)
	// TryBuildExclusive downcasts exactly len(WantedTypes()) exclusive
	// slots. It refuses slots that alias one another.
	TryBuildExclusive(ordered []Slot) (R, bool)
}

// Extract runs a multi-component query against r: the record's slots are
// reordered into d's wanted order and handed to d to build the typed result.
//
// If r is nil or any wanted type cannot be matched the zero R and false are
// returned.
func Extract[R any](r Record, d Descriptor[R], mode Access) (R, bool) {
	var zero R
	if r == nil {
		return zero, false
	}
	ordered, ok := Reorder(r.Slots(mode), d.WantedTypes())
	if !ok {
		return zero, false
	}
	if mode == Exclusive {
		return d.TryBuildExclusive(ordered)
	}
	return d.TryBuildShared(ordered)
}

// mustExtract backs the ComponentsN accessors. The panic value explains the
// first unmatched position.
func mustExtract[R any](r Record, d Descriptor[R], mode Access) R {
	refs, ok := Extract(r, d, mode)
	if ok {
		return refs
	}
	err := Explain(r, d.WantedTypes()...)
	if err == nil {
		err = fmt.Errorf("%w: record %s rejected slots for (%s)",
			ErrTupleUnsatisfiable, typeName(recordType(r)), typeList(d.WantedTypes()))
	}
	panic(err)
}

// checkSlots validates ordered slots before a descriptor downcasts them.
func checkSlots(slots []Slot, n int, mode Access) bool {
	if len(slots) != n {
		return false
	}
	for _, s := range slots {
		if s.IsZero() || s.mode != mode {
			return false
		}
	}
	if mode == Exclusive {
		return !aliased(slots)
	}
	return true
}

// aliased reports whether two slots reference the same memory. Zero-sized
// fields may legally share an address and are ignored.
func aliased(slots []Slot) bool {
	for i := range slots {
		if slots[i].typ.Size() == 0 {
			continue
		}
		a := slots[i].addr()
		for j := i + 1; j < len(slots); j++ {
			if slots[j].typ.Size() != 0 && slots[j].addr() == a {
				return true
			}
		}
	}
	return false
}
