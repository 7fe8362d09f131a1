package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ErrNotFound is returned when no commitizen configuration exists between
// the start directory and the filesystem root.
var ErrNotFound = errors.New("commitizen config not found")

// EnvDisableSubjectLowerCase overrides Config.DisableSubjectLowerCase.
const EnvDisableSubjectLowerCase = "GIT_CZ_DISABLE_SUBJECT_LOWER_CASE"

// Files searched in each directory, in order of precedence.
var searchOrder = []string{".czrc", ".cz.json", "package.json"}

// Config is the commitizen section of a project's configuration.
type Config struct {
	// Path names the adapter; only the built-in conventional-changelog one is used.
	Path                    string `json:"path"`
	DisableSubjectLowerCase bool   `json:"disableSubjectLowerCase"`

	// Source is the file the config was read from.
	Source string `json:"-"`
}

// Load walks from dir up to the root and returns the first config found.
func Load(dir string) (*Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		for _, name := range searchOrder {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}

			var cfg *Config
			if name == "package.json" {
				cfg, err = LoadFromPackageJSON(path)
			} else {
				cfg, err = LoadFromJSON(path)
			}
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return cfg, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNotFound
		}
		dir = parent
	}
}

// LoadFromJSON reads a plain JSON config file such as .czrc.
func LoadFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.Source = path
	return &cfg, nil
}

// LoadFromPackageJSON reads the config.commitizen section of a package.json.
// A package.json without that section yields ErrNotFound.
func LoadFromPackageJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pkg struct {
		Config struct {
			Commitizen *Config `json:"commitizen"`
		} `json:"config"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if pkg.Config.Commitizen == nil {
		return nil, ErrNotFound
	}

	cfg := pkg.Config.Commitizen
	cfg.Source = path
	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvDisableSubjectLowerCase); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvDisableSubjectLowerCase, v, err)
		}
		c.DisableSubjectLowerCase = b
	}
	return nil
}
