// Package gen generates bundle.Record adapters for struct declarations
// marked with a derive directive.
package gen

import (
	"context"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Result describes the outcome for one source file.
type Result struct {
	Source  string
	Output  string
	Records []string
	Code    []byte // nil when the file has no marked records
}

// Generator turns marked records into adapter source files.
type Generator struct {
	cfg Config
	log *Logger
}

// New returns a Generator. A nil logger discards output.
func New(cfg Config, log *Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = NoopLogger()
	}
	return &Generator{cfg: cfg, log: log}, nil
}

// OutputPath returns where the adapter for source is written.
func OutputPath(source string, cfg Config) string {
	return strings.TrimSuffix(source, ".go") + cfg.Suffix
}

// File generates the adapters for one source file without writing them. src
// may be nil to read the file from disk.
func (g *Generator) File(path string, src any) (Result, error) {
	res := Result{Source: path, Output: OutputPath(path, g.cfg)}
	f, err := Parse(token.NewFileSet(), path, src, g.cfg.Directive)
	if err != nil {
		return res, err
	}
	if len(f.Records) == 0 {
		return res, nil
	}
	for _, r := range f.Records {
		res.Records = append(res.Records, r.Name)
		g.log.WithFile(path).Debug("record",
			"name", r.Name,
			"fields", len(r.Fields),
			"lookup", len(r.Participating()),
			"positional", r.Positional)
	}
	res.Code, err = Render(f, g.cfg)
	return res, err
}

// Run generates adapters for every path, which may name Go files or
// directories (not recursed). Files are processed concurrently. When write
// is set, outputs are written next to their sources.
//
// Results are sorted by source path; files without marked records are
// included with a nil Code.
func (g *Generator) Run(ctx context.Context, paths []string, write bool) ([]Result, error) {
	files, err := g.expand(paths)
	if err != nil {
		return nil, err
	}
	var (
		mu      sync.Mutex
		results = make([]Result, 0, len(files))
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Jobs)
	for _, path := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.File(path, nil)
			if err != nil {
				return err
			}
			if write && res.Code != nil {
				if err := os.WriteFile(res.Output, res.Code, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", res.Output, err)
				}
				g.log.WithFile(path).Info("generated", "output", res.Output, "records", len(res.Records))
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Source < results[j].Source })
	return results, nil
}

// expand resolves directories to their non-test, non-generated Go files.
func (g *Generator) expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !g.isSource(name) {
				continue
			}
			files = append(files, filepath.Join(p, name))
		}
	}
	return files, nil
}

func (g *Generator) isSource(name string) bool {
	return strings.HasSuffix(name, ".go") &&
		!strings.HasSuffix(name, "_test.go") &&
		!strings.HasSuffix(name, g.cfg.Suffix)
}
