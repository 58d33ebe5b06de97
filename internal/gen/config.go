package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is looked up in the working directory when no config
// path is given.
const DefaultConfigFile = "bundlegen.toml"

// Config controls adapter generation.
type Config struct {
	// Directive marks struct declarations to generate adapters for. It is
	// matched against line comments without the leading "//".
	Directive string `toml:"directive"`
	// Suffix replaces ".go" in the source file name to form the output name.
	Suffix string `toml:"suffix"`
	// Import is the import path of the bundle package used by generated code.
	Import string `toml:"import"`
	// Jobs bounds how many files are processed concurrently.
	Jobs int `toml:"jobs"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Directive: "bundle:derive",
		Suffix:    "_bundle.go",
		Import:    "github.com/edwinsyarief/bundle",
		Jobs:      runtime.GOMAXPROCS(0),
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// only an error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigFile
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate reports configuration values generation cannot work with.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Directive) == "":
		return errors.New("config: directive must not be empty")
	case !strings.HasSuffix(c.Suffix, ".go") || c.Suffix == ".go":
		return fmt.Errorf("config: suffix %q must end in .go and differ from it", c.Suffix)
	case strings.HasSuffix(c.Suffix, "_test.go"):
		return fmt.Errorf("config: suffix %q would produce test files", c.Suffix)
	case c.Import == "":
		return errors.New("config: import must not be empty")
	case c.Jobs < 1:
		return fmt.Errorf("config: jobs must be positive, got %d", c.Jobs)
	}
	return nil
}

// qualifier is the package name generated code refers to the bundle package
// by. A major version suffix such as /v2 is not part of it.
func (c Config) qualifier() string {
	return assumedName(c.Import)
}
