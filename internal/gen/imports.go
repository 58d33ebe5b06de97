package gen

import (
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Import is one import spec of a source file.
type Import struct {
	Name string // explicit package name, empty when none is given
	Path string
}

// localName is the identifier the source file refers to the package by.
func (i Import) localName() string {
	if i.Name != "" {
		return i.Name
	}
	return assumedName(i.Path)
}

// assumedName guesses a package name from its import path the way goimports
// does: the last path element, or the one before a major version suffix,
// without a "go-" prefix and cut at the first non-identifier character.
func assumedName(importPath string) string {
	base := path.Base(importPath)
	if v, ok := strings.CutPrefix(base, "v"); ok {
		if _, err := strconv.Atoi(v); err == nil {
			if dir := path.Dir(importPath); dir != "." {
				base = path.Base(dir)
			}
		}
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexFunc(base, notIdentifier); i >= 0 {
		base = base[:i]
	}
	return base
}

func notIdentifier(r rune) bool {
	return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}

// neededImports selects the source imports the generated adapters refer to
// through qualified field types. reflect and the bundle package are imported
// by the adapter template itself and are not repeated.
func (f *File) neededImports(cfg Config) ([]Import, error) {
	used := make(map[string]bool)
	for _, rec := range f.Records {
		for _, field := range rec.Fields {
			for _, pkg := range field.Packages {
				used[pkg] = true
			}
		}
	}
	if len(used) == 0 {
		return nil, nil
	}

	qualifier := cfg.qualifier()
	resolved := make(map[string]bool, len(used))
	var out []Import
	for _, imp := range f.Imports {
		name := imp.localName()
		if !used[name] || resolved[name] {
			continue
		}
		resolved[name] = true
		switch {
		case name == "reflect" && imp.Path == "reflect":
			continue
		case name == qualifier && imp.Path == cfg.Import:
			continue
		case name == "reflect" || name == qualifier:
			return nil, fmt.Errorf("%s: import %q as %s collides with generated code, give it another name",
				f.Path, imp.Path, name)
		}
		out = append(out, imp)
	}

	var missing []string
	for name := range used {
		if !resolved[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, fmt.Errorf("%s: no import of this file provides %s, name the import explicitly",
			f.Path, strings.Join(missing, ", "))
	}
	return out, nil
}
