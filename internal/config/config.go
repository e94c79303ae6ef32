package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	clierrors "github.com/salmonumbrella/textx/internal/errors"
	"github.com/salmonumbrella/textx/internal/output"
	"github.com/salmonumbrella/textx/internal/ui"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "TEXTX_CONFIG"

// Config holds user defaults. Command-line flags take precedence.
type Config struct {
	// Default output format (text, json, yaml)
	Output string `yaml:"output,omitempty"`

	// Default error format (auto, text, json, yaml)
	ErrorFormat string `yaml:"error_format,omitempty"`

	// Default color mode (auto, always, never)
	Color string `yaml:"color,omitempty"`
}

// DefaultConfigPath returns $TEXTX_CONFIG or ~/.config/textx/config.yaml
func DefaultConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textx", "config.yaml"), nil
}

// Load loads config from the default path, returns empty config if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates config from a specific path.
// A missing file yields an empty config.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, clierrors.WrapUserError(err, "invalid config file "+path, "Fix or remove the offending key")
	}
	return &cfg, nil
}

// Validate checks that every set value is one the CLI understands.
func (c *Config) Validate() error {
	if c.Output != "" {
		if _, err := output.ParseFormat(c.Output); err != nil {
			return &clierrors.ValidationError{Field: "output", Message: err.Error()}
		}
	}
	if _, err := ui.ParseColorMode(c.Color); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(c.ErrorFormat)) {
	case "", "auto", "text", "json", "yaml":
	default:
		return &clierrors.ValidationError{
			Field:   "error_format",
			Message: fmt.Sprintf("unknown format %q (expected auto|text|json|yaml)", c.ErrorFormat),
		}
	}
	return nil
}
