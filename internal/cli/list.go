package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdejongh/namediff/internal/platform"
	"github.com/sdejongh/namediff/pkg/collect"
	"github.com/sdejongh/namediff/pkg/config"
	"github.com/sdejongh/namediff/pkg/logging"
	"github.com/sdejongh/namediff/pkg/output"
	"github.com/sdejongh/namediff/pkg/storage"
)

// ListFlags holds list command flag values
type ListFlags struct {
	Dir             string
	Output          string
	Files           bool
	Dirs            bool
	Recursive       bool
	CaseInsensitive bool
	Natural         bool
	SkipOutput      bool
	Exclude         []string
	Preview         bool
	Limit           int
	Format          string
}

var listFlags ListFlags

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the names found in a directory",
		Long: `Enumerate the files and/or directories under a directory and write them,
one per line, to a listing file inside that directory.

Names are sorted naturally by default so that img2 comes before img10.
Use --preview to print the listing instead of writing it.`,
		Example: `  namediff list --dir ./photos
  namediff list -d ./src -r --dirs --exclude "*.tmp" --exclude "build/"
  namediff list -d . --preview --limit 100`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	flags := cmd.Flags()
	flags.StringVarP(&listFlags.Dir, "dir", "d", ".", "directory to list")
	flags.StringVarP(&listFlags.Output, "output", "o", collect.DefaultOutputName, "listing file name, relative to --dir")
	flags.BoolVar(&listFlags.Files, "files", true, "include files")
	flags.BoolVar(&listFlags.Dirs, "dirs", false, "include directories")
	flags.BoolVarP(&listFlags.Recursive, "recursive", "r", false, "walk subdirectories and list relative paths")
	flags.BoolVar(&listFlags.CaseInsensitive, "case-insensitive", true, "sort ignoring case when --natural is off")
	flags.BoolVar(&listFlags.Natural, "natural", true, "sort digit runs numerically")
	flags.BoolVar(&listFlags.SkipOutput, "skip-output", true, "leave the listing file itself out of the listing")
	flags.StringArrayVar(&listFlags.Exclude, "exclude", nil, "glob pattern to exclude (repeatable)")
	flags.BoolVar(&listFlags.Preview, "preview", false, "print the listing instead of writing it")
	flags.IntVar(&listFlags.Limit, "limit", 0, "maximum entries shown by --preview (default from config, 5000)")
	flags.StringVar(&listFlags.Format, "format", "", "output format: human, json (default from config)")

	return cmd
}

// applyListFlags overrides config values with the list flags that were set
func applyListFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("output") {
		cfg.List.OutputName = listFlags.Output
	}
	if flags.Changed("files") {
		cfg.List.IncludeFiles = listFlags.Files
	}
	if flags.Changed("dirs") {
		cfg.List.IncludeDirs = listFlags.Dirs
	}
	if flags.Changed("recursive") {
		cfg.List.Recursive = listFlags.Recursive
	}
	if flags.Changed("case-insensitive") {
		cfg.List.CaseInsensitive = listFlags.CaseInsensitive
	}
	if flags.Changed("natural") {
		cfg.List.NaturalSort = listFlags.Natural
	}
	if flags.Changed("skip-output") {
		cfg.List.SkipOutputName = listFlags.SkipOutput
	}
	if len(listFlags.Exclude) > 0 {
		cfg.List.Exclude = listFlags.Exclude
	}
	if flags.Changed("limit") {
		cfg.List.PreviewLimit = listFlags.Limit
	}
	if listFlags.Format != "" {
		cfg.Output.Format = listFlags.Format
	}
}

// collectOptions builds lister options for root from the list config
func collectOptions(root string, cfg config.ListConfig) collect.Options {
	return collect.Options{
		Root:                root,
		IncludeFiles:        cfg.IncludeFiles,
		IncludeDirs:         cfg.IncludeDirs,
		Recursive:           cfg.Recursive,
		NaturalSort:         cfg.NaturalSort,
		CaseInsensitiveSort: cfg.CaseInsensitive,
		SkipOutputName:      cfg.SkipOutputName,
		OutputName:          cfg.OutputName,
		Exclude:             cfg.Exclude,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyListFlags(cmd, cfg)
	if err := applyGlobalFlags(cfg); err != nil {
		return err
	}

	if err := platform.ValidatePath(listFlags.Dir); err != nil {
		return err
	}
	dir := platform.NormalizePath(listFlags.Dir)

	formatter, err := newFormatter(cfg.Output, stdout)
	if err != nil {
		return err
	}

	logger, err := createLogger(cfg.Logging, globalFlags.Verbose, stderr)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	listing, err := collect.Listing(ctx, collectOptions(dir, cfg.List))
	if err != nil {
		logger.Error(ctx, "listing failed", err, logging.Fields{"dir": dir})
		return err
	}

	log := logger.WithFields(logging.Fields{"run_id": listing.ID, "root": listing.Root})
	log.Info(ctx, "names collected", logging.Fields{
		"count":     len(listing.Names),
		"sort":      string(listing.Sort),
		"recursive": listing.Recursive,
	})

	if listFlags.Preview {
		if listing.Truncated(cfg.List.PreviewLimit) {
			log.Debug(ctx, "preview truncated", logging.Fields{"limit": cfg.List.PreviewLimit})
		}
		return formatter.Listing(stdout, output.ListingView{Listing: listing, Limit: cfg.List.PreviewLimit})
	}

	dest := platform.OutputPath(listing.Root, cfg.List.OutputName, collect.DefaultOutputName)
	backend, err := storage.NewLocal(listing.Root)
	if err != nil {
		return err
	}
	defer backend.Close()

	written, err := newExporter(cfg.Output, stderr).WriteListing(ctx, backend, dest, listing.Names)
	if err != nil {
		log.Error(ctx, "listing write failed", err, logging.Fields{"path": dest})
		return err
	}
	log.Info(ctx, "listing written", logging.Fields{"path": written})

	if cfg.Output.Quiet {
		return nil
	}
	return formatter.Listing(stdout, output.ListingView{Listing: listing, Destination: written})
}
