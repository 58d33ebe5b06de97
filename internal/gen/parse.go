package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"github.com/edwinsyarief/bundle"
)

// File is the parsed view of one source file.
type File struct {
	Path    string
	Package string
	Imports []Import
	Records []Record
}

// Record is a struct declaration carrying the derive directive.
type Record struct {
	Name       string
	Positional bool
	Fields     []Field
}

// Field is one component field of a record.
type Field struct {
	Name   string // selector used in generated code
	Type   string // type expression as written in the source
	Simple string // simple name of Type, empty for unnamed types
	// Packages lists the package qualifiers Type refers to.
	Packages []string
	// Lookup is true when LookupByType can reach the field.
	Lookup bool
}

// Participating returns the fields single-type lookup can reach.
func (r Record) Participating() []Field {
	var fields []Field
	for _, f := range r.Fields {
		if f.Lookup {
			fields = append(fields, f)
		}
	}
	return fields
}

// Parse reads the records marked with directive from a Go source file. src
// may be nil, in which case the file is read from path.
func Parse(fset *token.FileSet, path string, src any, directive string) (*File, error) {
	af, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	file := &File{Path: path, Package: af.Name.Name}
	dotImport := ""
	for _, spec := range af.Imports {
		imp := Import{}
		if imp.Path, err = strconv.Unquote(spec.Path.Value); err != nil {
			return nil, fmt.Errorf("%s: bad import path %s", fset.Position(spec.Pos()), spec.Path.Value)
		}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}
		switch imp.Name {
		case "_":
			continue
		case ".":
			dotImport = imp.Path
			continue
		}
		file.Imports = append(file.Imports, imp)
	}
	for _, decl := range af.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}
			mode, found := findDirective(doc, directive)
			if !found {
				continue
			}
			rec, err := parseRecord(fset, ts, mode)
			if err != nil {
				return nil, err
			}
			file.Records = append(file.Records, rec)
		}
	}
	if dotImport != "" && len(file.Records) > 0 {
		return nil, fmt.Errorf("%s: dot import of %q is not supported in files with %s records",
			path, dotImport, directive)
	}
	return file, nil
}

// findDirective looks for "//<directive>" or "//<directive> positional".
func findDirective(doc *ast.CommentGroup, directive string) (string, bool) {
	if doc == nil {
		return "", false
	}
	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//")
		if !ok {
			continue
		}
		rest, ok := strings.CutPrefix(text, directive)
		if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		return strings.TrimSpace(rest), true
	}
	return "", false
}

func parseRecord(fset *token.FileSet, ts *ast.TypeSpec, mode string) (Record, error) {
	pos := fset.Position(ts.Pos())
	rec := Record{Name: ts.Name.Name}
	switch mode {
	case "":
	case "positional":
		rec.Positional = true
	default:
		return Record{}, fmt.Errorf("%s: %s: unknown derive mode %q", pos, rec.Name, mode)
	}
	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		return Record{}, fmt.Errorf("%s: %s: generic records are not supported", pos, rec.Name)
	}
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return Record{}, fmt.Errorf("%s: %s: only struct types can derive type-indexed access", pos, rec.Name)
	}
	for _, f := range st.Fields.List {
		typ := types.ExprString(f.Type)
		simple := simpleName(f.Type)
		pkgs := qualifiers(f.Type)
		if len(f.Names) == 0 {
			// Embedded fields are named after their type.
			name := simpleName(deref(f.Type))
			rec.Fields = append(rec.Fields, Field{
				Name:     name,
				Type:     typ,
				Simple:   simple,
				Packages: pkgs,
				Lookup:   rec.Positional || bundle.NameMatches(name, simple),
			})
			continue
		}
		for _, n := range f.Names {
			if n.Name == "_" {
				continue
			}
			rec.Fields = append(rec.Fields, Field{
				Name:     n.Name,
				Type:     typ,
				Simple:   simple,
				Packages: pkgs,
				Lookup:   rec.Positional || bundle.NameMatches(n.Name, simple),
			})
		}
	}
	return rec, nil
}

// simpleName mirrors bundle.SimpleName on syntax: the unqualified name of a
// named type without type arguments, empty otherwise.
func simpleName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return simpleName(e.X)
	case *ast.IndexListExpr:
		return simpleName(e.X)
	case *ast.ParenExpr:
		return simpleName(e.X)
	}
	return ""
}

// qualifiers returns the sorted package names a type expression selects
// from, such as "time" for map[string]time.Duration.
func qualifiers(expr ast.Expr) []string {
	var pkgs []string
	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if id, ok := sel.X.(*ast.Ident); ok && !slices.Contains(pkgs, id.Name) {
			pkgs = append(pkgs, id.Name)
		}
		return false
	})
	slices.Sort(pkgs)
	return pkgs
}

func deref(expr ast.Expr) ast.Expr {
	if star, ok := expr.(*ast.StarExpr); ok {
		return star.X
	}
	return expr
}
