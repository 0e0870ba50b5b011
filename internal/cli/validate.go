package cli

import (
	"fmt"
	"io"

	"github.com/sdejongh/namediff/internal/platform"
	"github.com/sdejongh/namediff/pkg/config"
	"github.com/sdejongh/namediff/pkg/logging"
	"github.com/sdejongh/namediff/pkg/output"
)

// loadConfig loads the --config file, or the default location
func loadConfig() (*config.Config, error) {
	path := globalFlags.ConfigFile
	if path != "" {
		path = platform.NormalizePath(path)
	}
	return config.Load(path)
}

// applyGlobalFlags overrides config values with global flags and validates
// the result
func applyGlobalFlags(cfg *config.Config) error {
	if globalFlags.Verbose && globalFlags.Quiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}

	if globalFlags.LogFile != "" {
		cfg.Logging.File = globalFlags.LogFile
	}
	if globalFlags.LogFormat != "" {
		cfg.Logging.Format = globalFlags.LogFormat
	}
	if globalFlags.LogLevel != "" {
		cfg.Logging.Level = globalFlags.LogLevel
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	// Enable progress in verbose mode
	if globalFlags.Verbose {
		cfg.Output.Progress = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// createLogger builds the logger for a run: a rotating file logger when a
// log file is configured, a stderr stream in verbose mode, or both
func createLogger(cfg config.LoggingConfig, verbose bool, stderr io.Writer) (logging.Logger, error) {
	format := logging.FormatText
	if cfg.Format == "json" {
		format = logging.FormatJSON
	}
	level := logging.ParseLevel(cfg.Level)

	var loggers []logging.Logger

	if cfg.File != "" {
		path := platform.NormalizePath(cfg.File)
		if err := platform.ValidatePath(path); err != nil {
			return nil, err
		}
		fileLogger, err := logging.NewFileLogger(logging.FileLoggerConfig{
			Path:       path,
			Format:     format,
			Level:      level,
			MaxSize:    10 * 1024 * 1024, // 10 MB
			MaxBackups: 5,
		})
		if err != nil {
			return nil, err
		}
		loggers = append(loggers, fileLogger)
	}

	if verbose {
		loggers = append(loggers, logging.NewStreamLogger(stderr, format, level))
	}

	return logging.NewMultiLogger(loggers...), nil
}

// useColor decides whether terminal styling is applied to w
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return output.IsTerminal(w)
	}
}

// newFormatter creates the formatter selected by cfg for w
func newFormatter(cfg config.OutputConfig, w io.Writer) (output.Formatter, error) {
	return output.NewFormatter(cfg.Format, useColor(cfg.Color, w))
}

// newExporter creates an exporter whose progress bars go to stderr when
// enabled and stderr is a terminal
func newExporter(cfg config.OutputConfig, stderr io.Writer) *output.Exporter {
	enabled := cfg.Progress && !cfg.Quiet && output.IsTerminal(stderr)
	return output.NewExporter(output.NewProgress(stderr, enabled))
}
