// Package config loads the kcc CLI configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
)

// Config is the on-disk kcc.toml shape.
type Config struct {
	Preprocessor struct {
		// IncludePaths are -I style directories. Entries may be
		// doublestar glob patterns; every matching directory is
		// added.
		IncludePaths []string `toml:"include_paths"`
		// SystemPaths are -isystem style directories, same glob
		// rules.
		SystemPaths []string `toml:"system_paths"`
		Defines     []string `toml:"defines"`
		Undefines   []string `toml:"undefines"`
	} `toml:"preprocessor"`

	Display struct {
		ColorOutput bool `toml:"color_output"`
		ShowTokens  bool `toml:"show_tokens"`
	} `toml:"display"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Display.ColorOutput = true
	return cfg
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// ExpandSearchPaths resolves the configured include and system path
// entries, expanding glob patterns against the filesystem rooted at
// base. Non-pattern entries are kept in place (relative ones joined to
// base), so search order stays predictable; a pattern's matches are
// sorted.
func (c *Config) ExpandSearchPaths(base string) (include, system []string, err error) {
	include, err = expandAll(base, c.Preprocessor.IncludePaths)
	if err != nil {
		return nil, nil, err
	}
	system, err = expandAll(base, c.Preprocessor.SystemPaths)
	if err != nil {
		return nil, nil, err
	}
	return include, system, nil
}

func expandAll(base string, entries []string) ([]string, error) {
	var out []string
	for _, entry := range entries {
		if !hasGlobMeta(entry) {
			out = append(out, joinBase(base, entry))
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(base), entry)
		if err != nil {
			return nil, fmt.Errorf("bad search path pattern %q: %w", entry, err)
		}
		var dirs []string
		for _, m := range matches {
			full := filepath.Join(base, m)
			if info, statErr := os.Stat(full); statErr == nil && info.IsDir() {
				dirs = append(dirs, full)
			}
		}
		sort.Strings(dirs)
		out = append(out, dirs...)
	}
	return out, nil
}

func joinBase(base, entry string) string {
	if filepath.IsAbs(entry) {
		return entry
	}
	return filepath.Join(base, entry)
}

func hasGlobMeta(s string) bool {
	for _, c := range s {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
