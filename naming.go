package bundle

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// NameMatches reports whether a field named field, declared with a type whose
// simple name is typeName, takes part in single-type lookup for records with
// named fields.
//
// Both names are compared in snake_case, so Velocity, velocity and the
// embedded field Velocity all match a field of type Velocity, while a field
// named vel does not.
func NameMatches(field, typeName string) bool {
	if field == "" || field == "_" || typeName == "" {
		return false
	}
	return strcase.ToSnake(field) == strcase.ToSnake(typeName)
}

// SimpleName returns the unqualified name of a named type with any type
// argument list removed. Unnamed types (pointers, slices, maps, literal
// structs) have no simple name.
func SimpleName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}
