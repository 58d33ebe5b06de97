package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

var adapterTmpl = template.Must(template.New("adapter").Parse(`// Code generated by bundlegen. DO NOT EDIT.

package {{.Package}}

import (
	"reflect"

	{{printf "%q" .Import}}
{{- range .Imports}}
	{{if .Name}}{{.Name}} {{end}}{{printf "%q" .Path}}
{{- end}}
)
{{- $q := .Qualifier}}
{{range .Records}}
// LookupByType implements {{$q}}.Record.
func (r *{{.Name}}) LookupByType(t reflect.Type, mode {{$q}}.Access) ({{$q}}.Slot, bool) {
{{- with .Participating}}
	switch t {
{{- range .}}
	case reflect.TypeFor[{{.Type}}]():
		return {{$q}}.NewSlot(&r.{{.Name}}, mode), true
{{- end}}
	}
{{- end}}
	return {{$q}}.Slot{}, false
}

// Slots implements {{$q}}.Record.
func (r *{{.Name}}) Slots(mode {{$q}}.Access) []{{$q}}.Slot {
	return []{{$q}}.Slot{
{{- range .Fields}}
		{{$q}}.NewSlot(&r.{{.Name}}, mode),
{{- end}}
	}
}

// FieldTypes implements {{$q}}.Record.
func (*{{.Name}}) FieldTypes() []reflect.Type {
	return []reflect.Type{
{{- range .Fields}}
		reflect.TypeFor[{{.Type}}](),
{{- end}}
	}
}
{{end}}`))

type renderInput struct {
	Package   string
	Import    string
	Qualifier string
	Imports   []Import
	Records   []Record
}

// Render writes the adapter source for every record of f. The result is
// formatted and imports, under the source file's names, every package a
// field type is qualified with.
func Render(f *File, cfg Config) ([]byte, error) {
	deps, err := f.neededImports(cfg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = adapterTmpl.Execute(&buf, renderInput{
		Package:   f.Package,
		Import:    cfg.Import,
		Qualifier: cfg.qualifier(),
		Imports:   deps,
		Records:   f.Records,
	})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", f.Path, err)
	}
	out, err := imports.Process(OutputPath(f.Path, cfg), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", f.Path, err)
	}
	return out, nil
}
