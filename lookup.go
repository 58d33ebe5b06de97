package bundle

import "reflect"

// GetComponent returns a shared pointer to the first field of type C that
// takes part in single-type lookup.
//
// If the record is nil or has no such field, this function returns nil,
// false.
//
// Parameters:
//   - r: The Record to query.
//
// Returns:
//   - A pointer to the field (*C), or nil if not found.
//   - Whether the field was found.
func GetComponent[C any](r Record) (*C, bool) {
	return lookup[C](r, Shared)
}

// GetMutComponent is the exclusive analogue of GetComponent. The caller must
// not hold any other pointer into the same field while writing through it.
//
// Parameters:
//   - r: The Record to query.
//
// Returns:
//   - A pointer to the field (*C), or nil if not found.
//   - Whether the field was found.
func GetMutComponent[C any](r Record) (*C, bool) {
	return lookup[C](r, Exclusive)
}

// Component returns the field of type C and panics if there is none.
//
// It exists for call sites that have already established that the record
// carries C. Absence that can legitimately happen must be handled with
// GetComponent instead. The panic value is a *TypeNotFoundError.
func Component[C any](r Record) *C {
	c, ok := GetComponent[C](r)
	if !ok {
		panic(notFound[C](r))
	}
	return c
}

// MutComponent is the exclusive analogue of Component and panics the same
// way.
func MutComponent[C any](r Record) *C {
	c, ok := GetMutComponent[C](r)
	if !ok {
		panic(notFound[C](r))
	}
	return c
}

func lookup[C any](r Record, mode Access) (*C, bool) {
	if r == nil {
		return nil, false
	}
	s, ok := r.LookupByType(reflect.TypeFor[C](), mode)
	if !ok {
		return nil, false
	}
	return Downcast[C](s)
}

func notFound[C any](r Record) error {
	return &TypeNotFoundError{
		Record:    recordType(r),
		Type:      reflect.TypeFor[C](),
		Available: FieldTypes(r),
	}
}
