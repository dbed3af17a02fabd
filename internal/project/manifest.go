package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"fncomp/internal/abi"
)

// DefaultAttributes are the attribute paths recognised without a manifest.
var DefaultAttributes = []string{
	"functional_component",
	"yew_functional::functional_component",
	"yew::functional_component",
}

// DefaultSuffix is appended to the input path by `expand --write`.
const DefaultSuffix = ".expanded.rs"

// Manifest is a loaded fncomp.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest sections.
type Config struct {
	Runtime RuntimeConfig `toml:"runtime"`
	Expand  ExpandConfig  `toml:"expand"`
}

// RuntimeConfig overrides fields of abi.Default(); unset keys keep defaults.
type RuntimeConfig struct {
	Version    int    `toml:"version"`
	Provider   string `toml:"provider"`
	PropsAssoc string `toml:"props_assoc"`
	Operation  string `toml:"operation"`
	Wrapper    string `toml:"wrapper"`
	Output     string `toml:"output"`
}

// ExpandConfig configures the driver.
type ExpandConfig struct {
	Attributes []string `toml:"attributes"`
	Suffix     string   `toml:"suffix"`
	Cache      bool     `toml:"cache"`
	Jobs       int      `toml:"jobs"`
	// Exclude holds glob patterns matched against paths relative to the project root.
	Exclude []string `toml:"exclude"`
}

// DefaultConfig is the configuration used when no manifest exists.
func DefaultConfig() Config {
	c := abi.Default()
	return Config{
		Runtime: RuntimeConfig{
			Version:    c.Version,
			Provider:   c.ProviderTrait,
			PropsAssoc: c.PropsAssoc,
			Operation:  c.Operation,
			Wrapper:    c.Wrapper,
			Output:     c.OutputType,
		},
		Expand: ExpandConfig{
			Attributes: append([]string(nil), DefaultAttributes...),
			Suffix:     DefaultSuffix,
			Cache:      true,
		},
	}
}

// Contract builds the runtime contract described by the configuration.
func (c Config) Contract() abi.Contract {
	contract := abi.Default()
	contract.Version = c.Runtime.Version
	contract.ProviderTrait = c.Runtime.Provider
	contract.PropsAssoc = c.Runtime.PropsAssoc
	contract.Operation = c.Runtime.Operation
	contract.Wrapper = c.Runtime.Wrapper
	contract.OutputType = c.Runtime.Output
	return contract
}

// Load finds and loads the manifest starting at startDir. ok is false when
// there is no manifest; the returned config is then the default one.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return &Manifest{Config: DefaultConfig()}, false, err
	}
	m, err := LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadFile decodes and validates one manifest file.
func LoadFile(path string) (*Manifest, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// Validate checks the expand section and the runtime contract.
func (c Config) Validate() error {
	if len(c.Expand.Attributes) == 0 {
		return fmt.Errorf("[expand].attributes must not be empty")
	}
	for _, a := range c.Expand.Attributes {
		if strings.HasPrefix(a, "::") || !abi.IsPath(a) {
			return fmt.Errorf("[expand].attributes: %q is not an attribute path", a)
		}
	}
	if !strings.HasSuffix(c.Expand.Suffix, ".rs") || c.Expand.Suffix == ".rs" {
		return fmt.Errorf("[expand].suffix must end with .rs and not be just .rs, got %q", c.Expand.Suffix)
	}
	if c.Expand.Jobs < 0 {
		return fmt.Errorf("[expand].jobs must not be negative")
	}
	for _, pat := range c.Expand.Exclude {
		if _, err := filepath.Match(pat, ""); err != nil {
			return fmt.Errorf("[expand].exclude: bad pattern %q: %w", pat, err)
		}
	}
	if err := c.Contract().Validate(); err != nil {
		return fmt.Errorf("[runtime]: %w", err)
	}
	return nil
}

// DefaultManifest renders the manifest written by `fncomp init`.
func DefaultManifest() string {
	c := DefaultConfig()
	var b strings.Builder
	fmt.Fprintf(&b, "[runtime]\n")
	fmt.Fprintf(&b, "version = %d\n", c.Runtime.Version)
	fmt.Fprintf(&b, "provider = %q\n", c.Runtime.Provider)
	fmt.Fprintf(&b, "props_assoc = %q\n", c.Runtime.PropsAssoc)
	fmt.Fprintf(&b, "operation = %q\n", c.Runtime.Operation)
	fmt.Fprintf(&b, "wrapper = %q\n", c.Runtime.Wrapper)
	fmt.Fprintf(&b, "output = %q\n", c.Runtime.Output)
	fmt.Fprintf(&b, "\n[expand]\n")
	fmt.Fprintf(&b, "attributes = [%s]\n", quoteList(c.Expand.Attributes))
	fmt.Fprintf(&b, "suffix = %q\n", c.Expand.Suffix)
	fmt.Fprintf(&b, "cache = %t\n", c.Expand.Cache)
	return b.String()
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}

// Excluded reports whether path (absolute or relative to Root) matches an exclude pattern.
func (m *Manifest) Excluded(path string) bool {
	if m == nil || len(m.Config.Expand.Exclude) == 0 {
		return false
	}
	rel := path
	if m.Root != "" && filepath.IsAbs(path) {
		if r, err := filepath.Rel(m.Root, path); err == nil {
			rel = r
		}
	}
	rel = filepath.ToSlash(rel)
	for _, pat := range m.Config.Expand.Exclude {
		if ok, _ := filepath.Match(pat, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}
