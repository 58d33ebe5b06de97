package gen

import (
	"context"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `package demo

type Transform struct{ X float32 }
type Velocity struct{ DX float32 }

// Ship flies.
//
//bundle:derive
type Ship struct {
	Transform Transform
	vel       Velocity
	velocity  Velocity
	a, b      int
	_         int
	*Velocity
}

//bundle:derive positional
type Pair struct {
	Left, Right Transform
}

// NotMarked has no directive.
type NotMarked struct{ Transform Transform }

type (
	//bundle:derive
	Grouped struct{ Transform }
)

//bundle:derived
type Lookalike struct{ Transform Transform }
`

const importSource = `package demo

import (
	_ "embed"
	"strconv"
	str "strings"
	"time"

	"github.com/edwinsyarief/bundle"
)

var _ bundle.Record = (*Timer)(nil)

//bundle:derive
type Timer struct {
	Duration time.Duration
	builder  *str.Builder
	Laps     map[string][]time.Duration
	time.Month
}

func (t *Timer) Label() string { return strconv.Itoa(int(t.Duration)) }
`

// bundleAPI declares the part of the bundle package generated adapters use.
const bundleAPI = `package bundle

import "reflect"

type Access int

type Slot struct{}

func NewSlot[T any](p *T, mode Access) Slot { return Slot{} }

type Record interface {
	LookupByType(t reflect.Type, mode Access) (Slot, bool)
	Slots(mode Access) []Slot
	FieldTypes() []reflect.Type
}
`

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }

// typeCheck compiles a source file together with its generated adapters.
// The standard library is loaded from source and the bundle package is
// replaced by bundleAPI.
func typeCheck(t *testing.T, src string, generated []byte) {
	t.Helper()
	fset := token.NewFileSet()
	std := importer.ForCompiler(fset, "source", nil)

	apiFile, err := parser.ParseFile(fset, "bundle.go", bundleAPI, 0)
	require.NoError(t, err)
	api, err := (&types.Config{Importer: std}).Check(DefaultConfig().Import, fset, []*ast.File{apiFile}, nil)
	require.NoError(t, err)

	srcFile, err := parser.ParseFile(fset, "demo.go", src, 0)
	require.NoError(t, err)
	genFile, err := parser.ParseFile(fset, "demo_bundle.go", generated, 0)
	require.NoError(t, err, string(generated))

	conf := types.Config{Importer: importerFunc(func(path string) (*types.Package, error) {
		if path == api.Path() {
			return api, nil
		}
		return std.Import(path)
	})}
	_, err = conf.Check("demo", fset, []*ast.File{srcFile, genFile}, nil)
	require.NoError(t, err, string(generated))
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Jobs = 2
	return cfg
}

// go test -run ^TestParse$ ./internal/gen -count 1
func TestParse(t *testing.T) {
	f, err := Parse(token.NewFileSet(), "demo.go", source, "bundle:derive")
	require.NoError(t, err)
	assert.Equal(t, "demo", f.Package)
	require.Len(t, f.Records, 3)

	ship := f.Records[0]
	assert.Equal(t, "Ship", ship.Name)
	assert.False(t, ship.Positional)
	assert.Equal(t, []Field{
		{Name: "Transform", Type: "Transform", Simple: "Transform", Lookup: true},
		{Name: "vel", Type: "Velocity", Simple: "Velocity", Lookup: false},
		{Name: "velocity", Type: "Velocity", Simple: "Velocity", Lookup: true},
		{Name: "a", Type: "int", Simple: "int", Lookup: false},
		{Name: "b", Type: "int", Simple: "int", Lookup: false},
		{Name: "Velocity", Type: "*Velocity", Simple: "", Lookup: false},
	}, ship.Fields)
	assert.Len(t, ship.Participating(), 2)

	pair := f.Records[1]
	assert.Equal(t, "Pair", pair.Name)
	assert.True(t, pair.Positional)
	assert.Len(t, pair.Participating(), 2)

	grouped := f.Records[2]
	assert.Equal(t, "Grouped", grouped.Name)
	assert.Equal(t, []Field{{Name: "Transform", Type: "Transform", Simple: "Transform", Lookup: true}}, grouped.Fields)
}

// go test -run ^TestParseErrors$ ./internal/gen -count 1
func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"UnknownMode": "package x\n//bundle:derive sideways\ntype A struct{}\n",
		"Generic":     "package x\n//bundle:derive\ntype A[T any] struct{ v T }\n",
		"NotStruct":   "package x\n//bundle:derive\ntype A int\n",
		"Syntax":      "package x\ntype A struct{\n",
		"DotImport":   "package x\nimport . \"time\"\n//bundle:derive\ntype A struct{ D Duration }\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(token.NewFileSet(), "x.go", src, "bundle:derive")
			assert.Error(t, err)
		})
	}
}

// go test -run ^TestRender$ ./internal/gen -count 1
func TestRender(t *testing.T) {
	f, err := Parse(token.NewFileSet(), "demo.go", source, "bundle:derive")
	require.NoError(t, err)
	out, err := Render(f, testConfig())
	require.NoError(t, err)

	code := string(out)
	typeCheck(t, source, out)

	assert.True(t, strings.HasPrefix(code, "// Code generated by bundlegen. DO NOT EDIT."))
	assert.Contains(t, code, `"github.com/edwinsyarief/bundle"`)
	assert.Contains(t, code, "func (r *Ship) LookupByType(t reflect.Type, mode bundle.Access) (bundle.Slot, bool) {")
	assert.Contains(t, code, "return bundle.NewSlot(&r.velocity, mode), true")
	assert.NotContains(t, code, "return bundle.NewSlot(&r.vel, mode), true")
	assert.Contains(t, code, "bundle.NewSlot(&r.vel, mode),")
	assert.Contains(t, code, "reflect.TypeFor[*Velocity](),")
	assert.Contains(t, code, "return bundle.NewSlot(&r.Right, mode), true")
	assert.NotContains(t, code, "NotMarked")
	assert.NotContains(t, code, "Lookalike")
}

// go test -run ^TestRenderMatchesExample$ ./internal/gen -count 1
func TestRenderMatchesExample(t *testing.T) {
	g, err := New(testConfig(), nil)
	require.NoError(t, err)
	res, err := g.File(filepath.Join("..", "..", "example", "actor", "actor.go"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Actor", "Squad"}, res.Records)

	want, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(string(want)), strings.Fields(string(res.Code)),
		"example/actor/actor_bundle.go is stale, run go generate ./example/actor")
}

// go test -run ^TestRun$ ./internal/gen -count 1
func TestRun(t *testing.T) {
	dir := t.TempDir()
	write := func(name, src string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	write("demo.go", source)
	write("plain.go", "package demo\n\ntype Plain struct{}\n")
	write("demo_test.go", "package demo\n\n//bundle:derive\ntype InTest struct{}\n")

	g, err := New(testConfig(), NewLogger(nil, 0))
	require.NoError(t, err)
	results, err := g.Run(context.Background(), []string{dir}, true)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, filepath.Join(dir, "demo.go"), results[0].Source)
	assert.Equal(t, filepath.Join(dir, "demo_bundle.go"), results[0].Output)
	assert.NotNil(t, results[0].Code)
	assert.Nil(t, results[1].Code)

	written, err := os.ReadFile(filepath.Join(dir, "demo_bundle.go"))
	require.NoError(t, err)
	assert.Equal(t, results[0].Code, written)
	assert.NoFileExists(t, filepath.Join(dir, "plain_bundle.go"))

	// A second run skips the file it generated.
	results, err = g.Run(context.Background(), []string{dir}, false)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

// go test -run ^TestRunErrors$ ./internal/gen -count 1
func TestRunErrors(t *testing.T) {
	g, err := New(testConfig(), nil)
	require.NoError(t, err)

	_, err = g.Run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.go")}, false)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte(source), 0o644))
	_, err = g.Run(ctx, []string{dir}, false)
	assert.ErrorIs(t, err, context.Canceled)
}

// go test -run ^TestConfig$ ./internal/gen -count 1
func TestConfig(t *testing.T) {
	t.Run("MissingOptional", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml"), false)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("MissingRequired", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml"), true)
		assert.Error(t, err)
	})

	t.Run("Overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bundlegen.toml")
		require.NoError(t, os.WriteFile(path, []byte("suffix = \"_gen.go\"\njobs = 3\n"), 0o644))
		cfg, err := LoadConfig(path, true)
		require.NoError(t, err)
		assert.Equal(t, "_gen.go", cfg.Suffix)
		assert.Equal(t, 3, cfg.Jobs)
		assert.Equal(t, "bundle:derive", cfg.Directive)
		assert.Equal(t, "x_gen.go", OutputPath("x.go", cfg))
	})

	t.Run("UnknownKey", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bundlegen.toml")
		require.NoError(t, os.WriteFile(path, []byte("sufix = \"_gen.go\"\n"), 0o644))
		_, err := LoadConfig(path, true)
		assert.ErrorContains(t, err, "sufix")
	})

	t.Run("Validate", func(t *testing.T) {
		for name, mutate := range map[string]func(*Config){
			"EmptyDirective": func(c *Config) { c.Directive = " " },
			"BareSuffix":     func(c *Config) { c.Suffix = ".go" },
			"NotGo":          func(c *Config) { c.Suffix = "_bundle.txt" },
			"TestSuffix":     func(c *Config) { c.Suffix = "_bundle_test.go" },
			"NoImport":       func(c *Config) { c.Import = "" },
			"NoJobs":         func(c *Config) { c.Jobs = 0 },
		} {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate(), name)
			_, err := New(cfg, nil)
			assert.Error(t, err, name)
		}
	})

	assert.Equal(t, "bundle", DefaultConfig().qualifier())
	cfg := DefaultConfig()
	cfg.Import = "github.com/edwinsyarief/bundle/v2"
	assert.Equal(t, "bundle", cfg.qualifier())
}

// go test -run ^TestRenderImports$ ./internal/gen -count 1
func TestRenderImports(t *testing.T) {
	f, err := Parse(token.NewFileSet(), "demo.go", importSource, "bundle:derive")
	require.NoError(t, err)
	assert.Equal(t, []Import{
		{Path: "strconv"},
		{Name: "str", Path: "strings"},
		{Path: "time"},
		{Path: "github.com/edwinsyarief/bundle"},
	}, f.Imports)
	require.Len(t, f.Records, 1)
	assert.Equal(t, []string{"time"}, f.Records[0].Fields[2].Packages)

	out, err := Render(f, testConfig())
	require.NoError(t, err)
	code := string(out)
	assert.Contains(t, code, `str "strings"`)
	assert.Contains(t, code, `"time"`)
	assert.NotContains(t, code, `"strconv"`)
	assert.NotContains(t, code, `"embed"`)
	assert.Equal(t, 1, strings.Count(code, `"github.com/edwinsyarief/bundle"`))
	assert.Contains(t, code, "case reflect.TypeFor[time.Month]():")
	assert.Contains(t, code, "reflect.TypeFor[*str.Builder](),")

	typeCheck(t, importSource, out)
}

// go test -run ^TestRenderImportErrors$ ./internal/gen -count 1
func TestRenderImportErrors(t *testing.T) {
	tests := map[string]string{
		"Unresolved":    "package x\n//bundle:derive\ntype A struct{ D time.Duration }\n",
		"AliasMismatch": "package x\nimport yaml \"example.com/go-yaml-fork\"\n//bundle:derive\ntype A struct{ N yamlfork.Node }\n",
		"Collision":     "package x\nimport reflect \"example.com/mirror\"\n//bundle:derive\ntype A struct{ V reflect.Value }\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := Parse(token.NewFileSet(), "x.go", src, "bundle:derive")
			require.NoError(t, err)
			_, err = Render(f, testConfig())
			assert.Error(t, err)
		})
	}
}

// go test -run ^TestAssumedName$ ./internal/gen -count 1
func TestAssumedName(t *testing.T) {
	for path, want := range map[string]string{
		"time":                           "time",
		"github.com/edwinsyarief/bundle": "bundle",
		"github.com/foo/bar/v2":          "bar",
		"gopkg.in/yaml.v3":               "yaml",
		"github.com/mattn/go-isatty":     "isatty",
		"example.com/v2":                 "example",
	} {
		assert.Equal(t, want, assumedName(path), path)
	}
}
