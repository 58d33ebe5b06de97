package bundle

import (
	"fmt"
	"reflect"
)

// Access is the mode a slot borrows its field with.
type Access uint8

const (
	// Shared slots are read views. Any number of shared slots may point at
	// the same field.
	Shared Access = iota
	// Exclusive slots are write views. No two exclusive slots handed out by
	// one extraction ever point at the same field.
	Exclusive
)

// String returns the mode name.
func (a Access) String() string {
	switch a {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	}
	return fmt.Sprintf("Access(%d)", uint8(a))
}

// Slot is a type-erased reference to one field of a record, tagged with the
// field's type identity. Slots are built per call and must not be retained
// after the call that produced them returns.
//
// The zero Slot is the empty placeholder the Reordering Engine leaves behind
// once a slot has been taken.
type Slot struct {
	typ  reflect.Type
	ref  any // always a *T where reflect.TypeFor[T]() == typ
	mode Access
}

// NewSlot wraps a pointer to a field of type T.
func NewSlot[T any](p *T, mode Access) Slot {
	if p == nil {
		return Slot{}
	}
	return Slot{typ: reflect.TypeFor[T](), ref: p, mode: mode}
}

// slotOf wraps a reflect.Value that must be a non-nil pointer.
func slotOf(ptr reflect.Value, mode Access) Slot {
	return Slot{typ: ptr.Type().Elem(), ref: ptr.Interface(), mode: mode}
}

// Type returns the type identity of the referenced field, or nil for the
// empty slot.
func (s Slot) Type() reflect.Type { return s.typ }

// Mode returns the access mode the slot was created with.
func (s Slot) Mode() Access { return s.mode }

// IsZero reports whether s is the empty placeholder.
func (s Slot) IsZero() bool { return s.typ == nil }

// Is reports whether the slot holds a field whose type is t.
func (s Slot) Is(t reflect.Type) bool {
	return s.typ != nil && s.typ == t
}

// Ref returns the underlying *T as an interface value.
func (s Slot) Ref() any { return s.ref }

// addr returns the field address; zero for the empty slot.
func (s Slot) addr() uintptr {
	if s.ref == nil {
		return 0
	}
	return reflect.ValueOf(s.ref).Pointer()
}

// Downcast views the slot as *T. It reports false for the empty slot and for
// a slot whose field is not of type T.
func Downcast[T any](s Slot) (*T, bool) {
	if s.ref == nil {
		return nil, false
	}
	p, ok := s.ref.(*T)
	return p, ok && p != nil
}
