// Package bundle adds type-indexed access to plain Go structs.
//
// A record is an ordinary struct whose fields are components of distinct
// purpose-built types. Once an adapter exists for it (built at runtime with
// Reflect/Of, or generated with cmd/bundlegen) it can be queried by type:
//
//	v, ok := bundle.GetComponent[Velocity](rec)
//	t, d, ok := bundle.GetMutComponents2[Transform, AttackDamage](rec)
//
// Multi-component queries return their pointers in the order of the type
// parameters, not the order of the struct fields, and either every pointer
// is found or the whole query fails.
//
//go:generate go run ./cmd/generate
package bundle

import "reflect"

// Record is the adapter contract every queryable struct satisfies.
//
// Implementations never report errors: a lookup that finds nothing returns
// false and callers decide whether absence matters.
type Record interface {
	// LookupByType returns the first participating field, in declaration
	// order, whose type is t.
	LookupByType(t reflect.Type, mode Access) (Slot, bool)
	// Slots returns one slot per field in declaration order, all in mode.
	// Every field is included, participating in LookupByType or not.
	Slots(mode Access) []Slot
	// FieldTypes returns the declared type of every field in declaration
	// order.
	FieldTypes() []reflect.Type
}

// FieldTypes is a convenience wrapper around r.FieldTypes. A nil record has
// no fields.
func FieldTypes(r Record) []reflect.Type {
	if r == nil {
		return nil
	}
	return r.FieldTypes()
}

// Has reports whether a single lookup of type C would succeed. It is false
// for a nil record.
func Has[C any](r Record) bool {
	if r == nil {
		return false
	}
	_, ok := r.LookupByType(reflect.TypeFor[C](), Shared)
	return ok
}
