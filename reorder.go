package bundle

import "reflect"

// Reorder permutes slots into the order given by order.
//
// For every wanted type, left to right, the first remaining slot of that type
// is taken out of slots (replaced by the empty Slot) and placed at the same
// position of the result. If any wanted type has no remaining slot the whole
// operation fails and nil, false is returned; a partial result is never
// produced.
//
// Slots is consumed. Each field contributes exactly one slot, so a type
// wanted twice is satisfied by two distinct fields or not at all, which keeps
// exclusive results free of aliases.
func Reorder(slots []Slot, order []reflect.Type) ([]Slot, bool) {
	if len(order) > len(slots) {
		return nil, false
	}
	result := make([]Slot, len(order))
	for i, want := range order {
		pos := firstOf(slots, want)
		if pos < 0 {
			return nil, false
		}
		result[i] = slots[pos]
		slots[pos] = Slot{}
	}
	return result, true
}

// firstOf returns the index of the first non-empty slot of type t, or -1.
func firstOf(slots []Slot, t reflect.Type) int {
	for i := range slots {
		if slots[i].Is(t) {
			return i
		}
	}
	return -1
}
