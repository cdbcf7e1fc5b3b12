// Package config loads the tsplus sidecar configuration.
//
// The sidecar maps declaring source files to the module paths and trace names
// the transformer emits:
//
//	{
//	  "moduleMap": { "^packages/core/_src/(.*)\\.ts$": "@effect/core/$1" },
//	  "traceMap":  { "^packages/core/_src/(.*)$": "(@effect/core) _src/$1" }
//	}
//
// Keys are regular expressions matched against the file path relative to the
// config directory; values are replacement templates. Rules are tried in the
// order they are written and the first match wins.
package config

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/ts-plus/typescript-sub002/internal/diagnostics"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config is the parsed sidecar.
type Config struct {
	ModuleMap Rules `yaml:"moduleMap"`
	TraceMap  Rules `yaml:"traceMap"`

	// Dir is the directory rule patterns are relative to.
	Dir string `yaml:"-"`
}

// Rule maps files matching Pattern to Replacement.
type Rule struct {
	Pattern     string
	Replacement string
	re          *regexp.Regexp
}

// Rules keeps the written order of a JSON/YAML mapping.
type Rules []Rule

func (r *Rules) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of pattern to replacement", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: replacement for %q must be a string", value.Line, key.Value)
		}
		*r = append(*r, Rule{Pattern: key.Value, Replacement: value.Value})
	}
	return nil
}

// jsGroupRef matches $1 style group references, which Go templates would read
// as ${1...} when followed by a name character.
var jsGroupRef = regexp.MustCompile(`\$(\d+)`)

func (r *Rule) compile() error {
	if r.Pattern == "" {
		return errors.New("empty pattern")
	}
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return errors.Wrapf(err, "pattern %q", r.Pattern)
	}
	r.re = re
	r.Replacement = jsGroupRef.ReplaceAllString(r.Replacement, "$${${1}}")
	return nil
}

func (r *Rule) apply(path string) (string, bool) {
	if r.re == nil || !r.re.MatchString(path) {
		return "", false
	}
	return r.re.ReplaceAllString(path, r.Replacement), true
}

// LoadConfig downloads and parses the config at URL. Any afs supported scheme
// works; plain paths are read from the local file system.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, diagnostics.Wrap(diagnostics.ErrC001, errors.Wrapf(err, "reading %s", URL)).WithFile(URL)
	}
	return ParseConfig(data, URL)
}

// ParseConfig parses sidecar content. The path argument is used for error
// messages and as the base directory of the rules. JSON is accepted as the
// YAML subset it is.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, diagnostics.Wrap(diagnostics.ErrC001, errors.Wrap(err, "parsing")).WithFile(path)
	}
	if err := cfg.validate(); err != nil {
		return nil, diagnostics.Wrap(diagnostics.ErrC002, err).WithFile(path)
	}
	cfg.Dir = baseDir(path)
	return cfg, nil
}

// FindConfig searches for a sidecar starting from dir and walking up to parent
// directories. It returns an empty path and nil error when none is found.
func FindConfig(ctx context.Context, fs afs.Service, dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving directory")
	}
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if ok, _ := fs.Exists(ctx, candidate); ok {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// validate compiles every rule.
func (c *Config) validate() error {
	for i := range c.ModuleMap {
		if err := c.ModuleMap[i].compile(); err != nil {
			return errors.Wrapf(err, "moduleMap[%d]", i)
		}
	}
	for i := range c.TraceMap {
		if err := c.TraceMap[i].compile(); err != nil {
			return errors.Wrapf(err, "traceMap[%d]", i)
		}
	}
	return nil
}

// Relative returns file relative to the config directory with forward slashes.
func (c *Config) Relative(file string) string {
	if c.Dir != "" && filepath.IsAbs(file) {
		if rel, err := filepath.Rel(c.Dir, file); err == nil {
			file = rel
		}
	}
	return filepath.ToSlash(file)
}

// ImportPath returns the module path for a declaring file from the first
// matching moduleMap rule.
func (c *Config) ImportPath(file string) (string, bool) {
	rel := c.Relative(file)
	for i := range c.ModuleMap {
		if path, ok := c.ModuleMap[i].apply(rel); ok {
			return path, true
		}
	}
	return "", false
}

// TraceName returns the name traces use for file: the first matching traceMap
// rule, or the relative path itself.
func (c *Config) TraceName(file string) string {
	rel := c.Relative(file)
	for i := range c.TraceMap {
		if name, ok := c.TraceMap[i].apply(rel); ok {
			return name
		}
	}
	return rel
}

// baseDir is the local directory holding URL, or empty for remote schemes.
func baseDir(URL string) string {
	if strings.HasPrefix(URL, "file://") {
		URL = strings.TrimPrefix(URL, "file://")
	} else if strings.Contains(URL, "://") {
		return ""
	}
	dir, err := filepath.Abs(filepath.Dir(URL))
	if err != nil {
		return ""
	}
	return dir
}
