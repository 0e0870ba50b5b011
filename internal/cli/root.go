package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand assembles the namediff command tree
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "namediff",
		Short: "List directory names and compare lists of names",
		Long: `namediff writes naturally sorted listings of the names in a directory
and compares two lists of names, reporting what is only in A, only in B,
and in both.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewCompareCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
