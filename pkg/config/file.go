package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encoding is a configuration file syntax
type Encoding string

const (
	EncodingYAML Encoding = "yaml"
	EncodingTOML Encoding = "toml"
)

// EncodingFor picks the syntax from the file extension. Anything that is
// not .toml is read as YAML.
func EncodingFor(path string) Encoding {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return EncodingTOML
	}
	return EncodingYAML
}

// Parse decodes data over the defaults and validates the result
func Parse(data []byte, enc Encoding) (*Config, error) {
	cfg := Default()

	var err error
	switch enc {
	case EncodingTOML:
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Marshal encodes cfg in the given syntax
func Marshal(cfg *Config, enc Encoding) ([]byte, error) {
	if enc == EncodingTOML {
		return toml.Marshal(cfg)
	}
	return yaml.Marshal(cfg)
}

// LoadFromFile loads configuration from a YAML or TOML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, EncodingFor(path))
}

// SaveToFile writes cfg to path, creating parent directories
func SaveToFile(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := Marshal(cfg, EncodingFor(path))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "namediff", "config.yaml"), nil
}

// Load reads path, or the default location when path is empty. A missing
// default file yields the defaults; a missing explicit file is an error.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFromFile(path)
	}

	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadDefault loads the default configuration file, falling back to the
// built-in defaults when it does not exist
func LoadDefault() (*Config, error) {
	return Load("")
}
