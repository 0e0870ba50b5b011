package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
	LogFile    string
	LogFormat  string
	LogLevel   string
}

var globalFlags GlobalFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&globalFlags.ConfigFile, "config", "",
		"config file, YAML or TOML (default is $HOME/.config/namediff/config.yaml)")
	flags.BoolVarP(&globalFlags.Verbose, "verbose", "v", false,
		"log progress to stderr and show progress bars")
	flags.BoolVarP(&globalFlags.Quiet, "quiet", "q", false,
		"suppress non-error output")
	flags.StringVar(&globalFlags.LogFile, "log-file", "",
		"write logs to this file")
	flags.StringVar(&globalFlags.LogFormat, "log-format", "",
		"log format: text, json (default from config)")
	flags.StringVar(&globalFlags.LogLevel, "log-level", "",
		"log level: debug, info, warn, error (default from config)")
}

// GetGlobalFlags returns the global flags
func GetGlobalFlags() *GlobalFlags {
	return &globalFlags
}
