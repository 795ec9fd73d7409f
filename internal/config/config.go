// Package config loads the application configuration file: where project
// documents and presets live, how the viewer listens, and how the editor
// renders.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	bperrors "github.com/bracketpress/bracketpress/pkg/errors"
)

// Config is the full application configuration document.
type Config struct {
	DataDir      string `yaml:"data_dir,omitempty" validate:"omitempty,safe_path"`
	PresetsDir   string `yaml:"presets_dir,omitempty" validate:"omitempty,safe_path"`
	ViewerAddr   string `yaml:"viewer_addr,omitempty" validate:"omitempty,hostname_port"`
	StreamParent string `yaml:"stream_parent,omitempty" validate:"omitempty,hostname"`
	LogLevel     string `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Unicode      bool   `yaml:"unicode,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".bracketpress")
	return &Config{
		DataDir:      base,
		PresetsDir:   filepath.Join(base, "presets"),
		ViewerAddr:   "localhost:8321",
		StreamParent: "localhost",
		LogLevel:     "info",
		Unicode:      true,
	}
}

// DocumentsDir is where saved project documents live.
func (c *Config) DocumentsDir() string {
	return filepath.Join(c.DataDir, "documents")
}

// RegistryPath is the tournament records file.
func (c *Config) RegistryPath() string {
	return filepath.Join(c.DataDir, "tournaments.json")
}

// StreamConfigPath is the shared livestream configuration file.
func (c *Config) StreamConfigPath() string {
	return filepath.Join(c.DataDir, "stream.yaml")
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads and validates the configuration at path, filling unset fields
// with defaults. A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, bperrors.NewStorageError(path, "read", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, bperrors.NewParseError(path, extractLine(err), err)
	}

	applyDefaults(cfg)

	if err := validatorInstance().Struct(cfg); err != nil {
		return nil, bperrors.NewValidationError("config", err.Error(), err)
	}
	return cfg, nil
}

// applyDefaults fills fields an explicit file left empty.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.PresetsDir == "" {
		cfg.PresetsDir = filepath.Join(cfg.DataDir, "presets")
	}
	if cfg.ViewerAddr == "" {
		cfg.ViewerAddr = def.ViewerAddr
	}
	if cfg.StreamParent == "" {
		cfg.StreamParent = def.StreamParent
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
