package config

import (
	"github.com/dustin/go-humanize"

	"github.com/sdejongh/namediff/pkg/models"
)

// Config represents the application configuration
type Config struct {
	List    ListConfig    `yaml:"list" toml:"list"`
	Compare CompareConfig `yaml:"compare" toml:"compare"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// ListConfig holds the lister defaults
type ListConfig struct {
	OutputName      string   `yaml:"output_name" toml:"output_name"`
	IncludeFiles    bool     `yaml:"include_files" toml:"include_files"`
	IncludeDirs     bool     `yaml:"include_dirs" toml:"include_dirs"`
	Recursive       bool     `yaml:"recursive" toml:"recursive"`
	CaseInsensitive bool     `yaml:"case_insensitive" toml:"case_insensitive"`
	NaturalSort     bool     `yaml:"natural_sort" toml:"natural_sort"`
	SkipOutputName  bool     `yaml:"skip_output_name" toml:"skip_output_name"`
	Exclude         []string `yaml:"exclude" toml:"exclude"`
	PreviewLimit    int      `yaml:"preview_limit" toml:"preview_limit"` // 0 = no cap
}

// CompareConfig holds the comparison defaults
type CompareConfig struct {
	CaseInsensitive   bool `yaml:"case_insensitive" toml:"case_insensitive"`
	ReduceLargeOutput bool `yaml:"reduce_large_output" toml:"reduce_large_output"`
	// LargeOutputThreshold is a size such as "3MiB"
	LargeOutputThreshold string `yaml:"large_output_threshold" toml:"large_output_threshold"`
	// MaxLoadSize caps the combined size of list files loaded from disk
	MaxLoadSize string `yaml:"max_load_size" toml:"max_load_size"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format" toml:"format"`     // "human" or "json"
	Color    string `yaml:"color" toml:"color"`       // "auto", "always" or "never"
	Progress bool   `yaml:"progress" toml:"progress"` // Show progress bars while writing files
	Quiet    bool   `yaml:"quiet" toml:"quiet"`       // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format string `yaml:"format" toml:"format"` // "json" or "text"
	Level  string `yaml:"level" toml:"level"`   // "debug", "info", "warn", "error"
	File   string `yaml:"file" toml:"file"`     // Log file path (empty = no file logging)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		List: ListConfig{
			OutputName:      "filenames_sorted.txt",
			IncludeFiles:    true,
			IncludeDirs:     false,
			Recursive:       false,
			CaseInsensitive: true,
			NaturalSort:     true,
			SkipOutputName:  true,
			Exclude:         []string{},
			PreviewLimit:    5000,
		},
		Compare: CompareConfig{
			CaseInsensitive:      false,
			ReduceLargeOutput:    false,
			LargeOutputThreshold: "3MiB",
			MaxLoadSize:          "15MiB",
		},
		Output: OutputConfig{
			Format:   "human",
			Color:    "auto",
			Progress: false,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
			File:   "",
		},
	}
}

// ThresholdBytes returns the large output threshold in bytes
func (c *CompareConfig) ThresholdBytes() (int64, error) {
	return parseSize("compare.large_output_threshold", c.LargeOutputThreshold)
}

// MaxLoadBytes returns the combined list file size limit in bytes
func (c *CompareConfig) MaxLoadBytes() (int64, error) {
	return parseSize("compare.max_load_size", c.MaxLoadSize)
}

func parseSize(field, value string) (int64, error) {
	n, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, &models.ValidationError{Field: field, Message: "must be a size such as 3MiB: " + err.Error()}
	}
	return int64(n), nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.List.PreviewLimit < 0 {
		return &models.ValidationError{
			Field:   "list.preview_limit",
			Message: "must be 0 (no limit) or positive",
		}
	}

	if _, err := c.Compare.ThresholdBytes(); err != nil {
		return err
	}

	if _, err := c.Compare.MaxLoadBytes(); err != nil {
		return err
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[c.Output.Color] {
		return &models.ValidationError{
			Field:   "output.color",
			Message: "must be 'auto', 'always' or 'never'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
