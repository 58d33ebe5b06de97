// Command generate writes tuple_generated.go, the fixed-arity family of tuple
// descriptors and multi-component accessors for arities 2 through 16.
//
// Run it from the repository root through go generate.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

const (
	minArity = 2
	maxArity = 16
	output   = "tuple_generated.go"
)

// arity is the template input for one tuple size.
type arity struct {
	N      int
	Params string   // T1 any, T2 any
	Args   string   // T1, T2
	Ptrs   string   // *T1, *T2
	Refs   string   // refs.C1, refs.C2
	Types  []string // T1, T2 as separate items
	Fields []field
}

type field struct {
	Name  string // C1
	Type  string // T1
	Index int
}

const header = `// Code generated by go run ./cmd/generate. DO NOT EDIT.

package bundle

import "reflect"
`

var tmpl = template.Must(template.New("tuple").Funcs(template.FuncMap{
	"dec": func(i int) int { return i - 1 },
}).Parse(`
// Tuple{{.N}} describes the ordered component list ({{.Args}}).
type Tuple{{.N}}[{{.Params}}] struct{}

// Refs{{.N}} holds the pointers a Tuple{{.N}} query resolves to, in query order.
type Refs{{.N}}[{{.Params}}] struct {
{{- range .Fields}}
	{{.Name}} *{{.Type}}
{{- end}}
}

// WantedTypes implements Descriptor.
func (Tuple{{.N}}[{{.Args}}]) WantedTypes() []reflect.Type {
	return []reflect.Type{
{{- range .Types}}
		reflect.TypeFor[{{.}}](),
{{- end}}
	}
}

// TryBuildShared implements Descriptor.
func (Tuple{{.N}}[{{.Args}}]) TryBuildShared(ordered []Slot) (Refs{{.N}}[{{.Args}}], bool) {
	return build{{.N}}[{{.Args}}](ordered, Shared)
}

// TryBuildExclusive implements Descriptor.
func (Tuple{{.N}}[{{.Args}}]) TryBuildExclusive(ordered []Slot) (Refs{{.N}}[{{.Args}}], bool) {
	return build{{.N}}[{{.Args}}](ordered, Exclusive)
}

func build{{.N}}[{{.Params}}](ordered []Slot, mode Access) (Refs{{.N}}[{{.Args}}], bool) {
	var refs Refs{{.N}}[{{.Args}}]
	if !checkSlots(ordered, {{.N}}, mode) {
		return refs, false
	}
	var ok bool
{{- $n := .N}}{{$args := .Args}}
{{- range .Fields}}
	if refs.C{{.Index}}, ok = Downcast[{{.Type}}](ordered[{{.Index | dec}}]); !ok {
		return Refs{{$n}}[{{$args}}]{}, false
	}
{{- end}}
	return refs, true
}

// GetComponents{{.N}} returns shared pointers to fields of types
// ({{.Args}}), in that order.
//
// If the record cannot supply every type, this function returns nils and
// false.
//
// Parameters:
//   - r: The Record to query.
//
// Returns:
//   - Pointers to the fields ({{.Ptrs}}), or nils if not found.
//   - Whether every type was found.
func GetComponents{{.N}}[{{.Params}}](r Record) ({{.Ptrs}}, bool) {
	refs, ok := Extract[Refs{{.N}}[{{.Args}}]](r, Tuple{{.N}}[{{.Args}}]{}, Shared)
	return {{.Refs}}, ok
}

// GetMutComponents{{.N}} returns exclusive pointers to {{.N}} distinct fields of
// types ({{.Args}}), in that order.
//
// If the record cannot supply every type, this function returns nils and
// false.
//
// Parameters:
//   - r: The Record to query.
//
// Returns:
//   - Pointers to the fields ({{.Ptrs}}), or nils if not found.
//   - Whether every type was found.
func GetMutComponents{{.N}}[{{.Params}}](r Record) ({{.Ptrs}}, bool) {
	refs, ok := Extract[Refs{{.N}}[{{.Args}}]](r, Tuple{{.N}}[{{.Args}}]{}, Exclusive)
	return {{.Refs}}, ok
}

// Components{{.N}} is like GetComponents{{.N}} but panics with an
// *UnsatisfiableError if the record cannot supply every type.
func Components{{.N}}[{{.Params}}](r Record) ({{.Ptrs}}) {
	refs := mustExtract[Refs{{.N}}[{{.Args}}]](r, Tuple{{.N}}[{{.Args}}]{}, Shared)
	return {{.Refs}}
}

// MutComponents{{.N}} is like GetMutComponents{{.N}} but panics with an
// *UnsatisfiableError if the record cannot supply every type.
func MutComponents{{.N}}[{{.Params}}](r Record) ({{.Ptrs}}) {
	refs := mustExtract[Refs{{.N}}[{{.Args}}]](r, Tuple{{.N}}[{{.Args}}]{}, Exclusive)
	return {{.Refs}}
}
`))

func newArity(n int) arity {
	a := arity{N: n}
	params := make([]string, n)
	ptrs := make([]string, n)
	refs := make([]string, n)
	for i := 1; i <= n; i++ {
		t := fmt.Sprintf("T%d", i)
		params[i-1] = t + " any"
		ptrs[i-1] = "*" + t
		refs[i-1] = fmt.Sprintf("refs.C%d", i)
		a.Types = append(a.Types, t)
		a.Fields = append(a.Fields, field{Name: fmt.Sprintf("C%d", i), Type: t, Index: i})
	}
	a.Params = strings.Join(params, ", ")
	a.Args = strings.Join(a.Types, ", ")
	a.Ptrs = strings.Join(ptrs, ", ")
	a.Refs = strings.Join(refs, ", ")
	return a
}

func main() {
	var buf bytes.Buffer
	buf.WriteString(header)
	for n := minArity; n <= maxArity; n++ {
		if err := tmpl.Execute(&buf, newArity(n)); err != nil {
			log.Fatalf("generate: arity %d: %v", n, err)
		}
	}
	src, err := imports.Process(output, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("generate: format: %v", err)
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		log.Fatalf("generate: %v", err)
	}
}
