package bundle

import (
	"reflect"
	"sync"
	"unsafe"
)

type options struct {
	positional bool
}

// Option configures a reflection-backed adapter.
type Option func(*options)

// Positional makes every field take part in single-type lookup regardless of
// its name, the way records with purely positional fields behave.
//
// Without it a field only takes part when its name matches its type's simple
// name (see NameMatches).
func Positional() Option {
	return func(o *options) {
		o.positional = true
	}
}

// fieldInfo is the cached description of one struct field.
type fieldInfo struct {
	typ    reflect.Type
	name   string
	offset uintptr
	named  bool // name matches the type's simple name
}

// layout is the per-type field table shared by every adapter of that type.
type layout struct {
	typ    reflect.Type
	fields []fieldInfo
	types  []reflect.Type
}

var layouts sync.Map // reflect.Type -> *layout

// layoutOf returns the cached layout of struct type t, building it on first
// use.
func layoutOf(t reflect.Type) *layout {
	if l, ok := layouts.Load(t); ok {
		return l.(*layout)
	}
	l := &layout{typ: t}
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Name == "_" {
			continue // padding, not a component
		}
		l.fields = append(l.fields, fieldInfo{
			typ:    f.Type,
			name:   f.Name,
			offset: f.Offset,
			named:  NameMatches(f.Name, SimpleName(f.Type)),
		})
		l.types = append(l.types, f.Type)
	}
	actual, _ := layouts.LoadOrStore(t, l)
	return actual.(*layout)
}

// Adapter is a Record backed by reflection over a struct pointer. Adapters
// are cheap to build; the field table is computed once per struct type.
type Adapter struct {
	base       unsafe.Pointer
	layout     *layout
	positional bool
}

var _ Record = (*Adapter)(nil)

// Reflect builds an adapter for ptr, which must be a non-nil pointer to a
// struct. The adapter borrows the struct: slots it hands out point into it.
func Reflect(ptr any, opts ...Option) (*Adapter, error) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, &InvalidRecordError{Type: reflect.TypeOf(ptr)}
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Adapter{
		base:       v.UnsafePointer(),
		layout:     layoutOf(v.Elem().Type()),
		positional: o.positional,
	}, nil
}

// Of is like Reflect but panics when ptr is not a pointer to a struct.
func Of(ptr any, opts ...Option) *Adapter {
	a, err := Reflect(ptr, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// field returns a *T for field i as a reflect.Value. NewAt is used so
// unexported fields are reachable as well.
func (a *Adapter) field(i int) reflect.Value {
	f := &a.layout.fields[i]
	return reflect.NewAt(f.typ, unsafe.Add(a.base, f.offset))
}

// participates reports whether field i is reachable by LookupByType.
func (a *Adapter) participates(i int) bool {
	return a.positional || a.layout.fields[i].named
}

// LookupByType implements Record.
func (a *Adapter) LookupByType(t reflect.Type, mode Access) (Slot, bool) {
	for i := range a.layout.fields {
		if a.layout.fields[i].typ == t && a.participates(i) {
			return slotOf(a.field(i), mode), true
		}
	}
	return Slot{}, false
}

// Slots implements Record.
func (a *Adapter) Slots(mode Access) []Slot {
	slots := make([]Slot, len(a.layout.fields))
	for i := range slots {
		slots[i] = slotOf(a.field(i), mode)
	}
	return slots
}

// FieldTypes implements Record.
func (a *Adapter) FieldTypes() []reflect.Type {
	types := make([]reflect.Type, len(a.layout.types))
	copy(types, a.layout.types)
	return types
}

// Type returns the struct type behind the adapter.
func (a *Adapter) Type() reflect.Type { return a.layout.typ }

// Reachable returns the names of the fields LookupByType can reach, in
// declaration order.
func (a *Adapter) Reachable() []string {
	var names []string
	for i, f := range a.layout.fields {
		if a.participates(i) {
			names = append(names, f.name)
		}
	}
	return names
}
