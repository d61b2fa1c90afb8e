package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for Sandworm. Every field
// is optional; nil means "not set here" so lower-precedence sources apply.
type FileConfig struct {
	MinWhitespace *int    `yaml:"min_whitespace"`
	MaxSize       *int64  `yaml:"max_size"`
	Verbose       *bool   `yaml:"verbose"`
	Threads       *int    `yaml:"threads"`
	Include       *string `yaml:"include"`
	Format        *string `yaml:"format"`
	NoColor       *bool   `yaml:"no_color"`
}

// LoadFile reads a YAML config file from the provided path. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LocalPath returns the config file LoadLocal would read in root.
// It supports .sandworm.yml/.yaml and sandworm.yml/.yaml, in that order.
func LocalPath(root string) (string, bool) {
	for _, name := range []string{".sandworm.yml", ".sandworm.yaml", "sandworm.yml", "sandworm.yaml"} {
		p := filepath.Join(root, name)
		if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

// LoadLocal loads the config file found in the given scan root.
func LoadLocal(root string) (FileConfig, error) {
	p, ok := LocalPath(root)
	if !ok {
		return FileConfig{}, ErrNotFound
	}
	return LoadFile(p)
}

// GlobalPath returns $XDG_CONFIG_HOME/sandworm/config.yml, falling back to
// ~/.config, when that file exists.
func GlobalPath() (string, bool) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return "", false
	}
	p := filepath.Join(base, "sandworm", "config.yml")
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	p, ok := GlobalPath()
	if !ok {
		return FileConfig{}, ErrNotFound
	}
	return LoadFile(p)
}

// ErrNotFound means no config file exists at the searched locations.
var ErrNotFound = errors.New("no config file")

// Validate rejects values the scanner cannot use.
func (fc FileConfig) Validate() error {
	if fc.MinWhitespace != nil && *fc.MinWhitespace < 1 {
		return fmt.Errorf("min_whitespace must be >= 1, got %d", *fc.MinWhitespace)
	}
	if fc.MaxSize != nil && *fc.MaxSize < 1 {
		return fmt.Errorf("max_size must be >= 1, got %d", *fc.MaxSize)
	}
	if fc.Threads != nil && *fc.Threads < 0 {
		return fmt.Errorf("threads must be >= 0, got %d", *fc.Threads)
	}
	if fc.Format != nil {
		switch *fc.Format {
		case "", "text", "json", "sarif", "table":
		default:
			return fmt.Errorf("unknown format %q", *fc.Format)
		}
	}
	return nil
}
