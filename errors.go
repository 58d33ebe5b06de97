package bundle

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrTypeNotFound is matched by errors reporting a single lookup miss.
	ErrTypeNotFound = errors.New("bundle: component type not found")
	// ErrTupleUnsatisfiable is matched by errors reporting a failed
	// multi-component query.
	ErrTupleUnsatisfiable = errors.New("bundle: component tuple unsatisfiable")
	// ErrInvalidRecord is matched by errors reporting a value that cannot be
	// adapted as a record.
	ErrInvalidRecord = errors.New("bundle: invalid record")
)

// TypeNotFoundError describes a single lookup that found no field.
type TypeNotFoundError struct {
	Record    reflect.Type
	Type      reflect.Type
	Available []reflect.Type
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("bundle: record %s has no component %s (fields: %s)",
		typeName(e.Record), typeName(e.Type), typeList(e.Available))
}

func (e *TypeNotFoundError) Is(target error) bool { return target == ErrTypeNotFound }

// UnsatisfiableError describes the first wanted position of a tuple query
// that could not be matched against the remaining fields.
type UnsatisfiableError struct {
	Record    reflect.Type
	Position  int
	Type      reflect.Type
	Wanted    []reflect.Type
	Available []reflect.Type
	// Exhausted is true when the record has fields of Type but earlier
	// positions of the query already took all of them.
	Exhausted bool
}

func (e *UnsatisfiableError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("bundle: record %s has %d fields, query (%s) wants %d",
			typeName(e.Record), len(e.Available), typeList(e.Wanted), len(e.Wanted))
	}
	reason := "absent"
	if e.Exhausted {
		reason = "requested more often than declared"
	}
	return fmt.Sprintf("bundle: record %s cannot satisfy (%s): %s at position %d is %s (fields: %s)",
		typeName(e.Record), typeList(e.Wanted), typeName(e.Type), e.Position, reason, typeList(e.Available))
}

func (e *UnsatisfiableError) Is(target error) bool { return target == ErrTupleUnsatisfiable }

// InvalidRecordError is returned by Reflect for values that are not non-nil
// pointers to structs.
type InvalidRecordError struct {
	Type reflect.Type
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("bundle: %s is not a pointer to a struct", typeName(e.Type))
}

func (e *InvalidRecordError) Is(target error) bool { return target == ErrInvalidRecord }

// Explain replays Reorder for order against r and describes why it fails. It
// returns nil when the query is satisfiable. A nil record satisfies only the
// empty query.
func Explain(r Record, order ...reflect.Type) error {
	var slots []Slot
	if r != nil {
		slots = r.Slots(Shared)
	}
	available := FieldTypes(r)
	if len(order) > len(slots) {
		return &UnsatisfiableError{
			Record:    recordType(r),
			Position:  -1,
			Wanted:    order,
			Available: available,
		}
	}
	for i, want := range order {
		pos := firstOf(slots, want)
		if pos < 0 {
			return &UnsatisfiableError{
				Record:    recordType(r),
				Position:  i,
				Type:      want,
				Wanted:    order,
				Available: available,
				Exhausted: containsType(available, want),
			}
		}
		slots[pos] = Slot{}
	}
	return nil
}

// recordType names the struct behind an adapter for messages.
func recordType(r Record) reflect.Type {
	if a, ok := r.(*Adapter); ok {
		return a.layout.typ
	}
	t := reflect.TypeOf(r)
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

func containsType(types []reflect.Type, t reflect.Type) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func typeList(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = typeName(t)
	}
	return strings.Join(names, ", ")
}
