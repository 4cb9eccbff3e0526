// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the generation configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inputs
	DataES string `json:"data_es,omitempty"` // Path to the Spanish CV document
	DataEN string `json:"data_en,omitempty"` // Path to the English CV document

	// Outputs
	OutES string `json:"out_es,omitempty"` // Path of the Spanish PDF
	OutEN string `json:"out_en,omitempty"` // Path of the English PDF

	// Assets
	Avatar  string `json:"avatar,omitempty"`   // Path to the avatar image (optional)
	FontDir string `json:"font_dir,omitempty"` // Directory holding the TrueType faces

	// Behavior
	Lang    string `json:"lang,omitempty"` // Restrict to one variant ("es" or "en"); empty renders both
	Verbose bool   `json:"verbose,omitempty"`
}

// Defaults are the fixed, known paths of the portfolio site layout.
func Defaults() Config {
	return Config{
		DataES:  "data/cv.json",
		DataEN:  "data/cv-en.json",
		OutES:   "static/files/cv.pdf",
		OutEN:   "static/files/cv-en.pdf",
		Avatar:  "static/img/perfil.png",
		FontDir: "fonts",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Input files must
// exist up front; output directories are created at write time.
func (c *Config) Validate() error {
	if c.Lang != "" && c.Lang != "es" && c.Lang != "en" {
		return fmt.Errorf("config error: 'lang' must be \"es\" or \"en\", got %q", c.Lang)
	}

	for _, in := range []string{c.DataES, c.DataEN} {
		if in == "" {
			continue
		}
		if _, err := os.Stat(in); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("config error: CV document not found: %s", in)
			}
			return fmt.Errorf("config error: cannot access CV document %s: %w", in, err)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataES == "" {
		result.DataES = defaults.DataES
	}
	if result.DataEN == "" {
		result.DataEN = defaults.DataEN
	}
	if result.OutES == "" {
		result.OutES = defaults.OutES
	}
	if result.OutEN == "" {
		result.OutEN = defaults.OutEN
	}
	if result.Avatar == "" {
		result.Avatar = defaults.Avatar
	}
	if result.FontDir == "" {
		result.FontDir = defaults.FontDir
	}
	if result.Lang == "" {
		result.Lang = defaults.Lang
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
