package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sdejongh/namediff/internal/platform"
	"github.com/sdejongh/namediff/pkg/collect"
	"github.com/sdejongh/namediff/pkg/compare"
	"github.com/sdejongh/namediff/pkg/config"
	"github.com/sdejongh/namediff/pkg/logging"
	"github.com/sdejongh/namediff/pkg/models"
	"github.com/sdejongh/namediff/pkg/session"
	"github.com/sdejongh/namediff/pkg/storage"
)

// CompareFlags holds compare command flag values
type CompareFlags struct {
	FileA string
	FileB string
	TextA string
	TextB string
	DirA  string
	DirB  string

	CaseInsensitive bool
	Reduce          bool
	Threshold       string
	MaxLoad         string
	Save            string
	Format          string
}

var compareFlags CompareFlags

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two lists of names",
		Long: `Compare list A with list B and report the names found only in A, only
in B, and in both. Each list is split into lines, trimmed, stripped of blank
lines and duplicates, and sorted naturally before the comparison.

Each side comes from a file (--a/--b), literal text (--a-text/--b-text) or
a directory listing (--a-dir/--b-dir) built with the list settings.`,
		Example: `  namediff compare --a old.txt --b new.txt
  namediff compare --a-dir ./backup --b-dir ./photos -i --save ./diff
  namediff compare --a-text "$(ls dirA)" --b export.txt --format json`,
		Args: cobra.NoArgs,
		RunE: runCompare,
	}

	flags := cmd.Flags()
	flags.StringVar(&compareFlags.FileA, "a", "", "file holding list A")
	flags.StringVar(&compareFlags.FileB, "b", "", "file holding list B")
	flags.StringVar(&compareFlags.TextA, "a-text", "", "list A as literal text")
	flags.StringVar(&compareFlags.TextB, "b-text", "", "list B as literal text")
	flags.StringVar(&compareFlags.DirA, "a-dir", "", "use the listing of this directory as list A")
	flags.StringVar(&compareFlags.DirB, "b-dir", "", "use the listing of this directory as list B")
	cmd.MarkFlagsMutuallyExclusive("a", "a-text", "a-dir")
	cmd.MarkFlagsMutuallyExclusive("b", "b-text", "b-dir")

	flags.BoolVarP(&compareFlags.CaseInsensitive, "case-insensitive", "i", false, "lower-case both lists before comparing")
	flags.BoolVar(&compareFlags.Reduce, "reduce", false, "do not print results larger than --threshold")
	flags.StringVar(&compareFlags.Threshold, "threshold", "", "size above which --reduce hides the result (default 3MiB)")
	flags.StringVar(&compareFlags.MaxLoad, "max-load", "", "combined size limit for list files (default 15MiB)")
	flags.StringVar(&compareFlags.Save, "save", "", "directory to export only_in_a.txt, only_in_b.txt, in_both.txt and compare_result.txt")
	flags.StringVar(&compareFlags.Format, "format", "", "output format: human, json (default from config)")

	return cmd
}

// applyCompareFlags overrides config values with the compare flags that were set
func applyCompareFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("case-insensitive") {
		cfg.Compare.CaseInsensitive = compareFlags.CaseInsensitive
	}
	if flags.Changed("reduce") {
		cfg.Compare.ReduceLargeOutput = compareFlags.Reduce
	}
	if compareFlags.Threshold != "" {
		cfg.Compare.LargeOutputThreshold = compareFlags.Threshold
	}
	if compareFlags.MaxLoad != "" {
		cfg.Compare.MaxLoadSize = compareFlags.MaxLoad
	}
	if compareFlags.Format != "" {
		cfg.Output.Format = compareFlags.Format
	}
}

// listSource is where one side of the comparison comes from
type listSource struct {
	target models.Target
	file   string
	text   string
	dir    string
	// textSet distinguishes an explicit empty --a-text from no flag
	textSet bool
}

func (s listSource) empty() bool {
	return s.file == "" && s.dir == "" && !s.textSet
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	sources := []listSource{
		{target: models.TargetA, file: compareFlags.FileA, text: compareFlags.TextA, dir: compareFlags.DirA, textSet: cmd.Flags().Changed("a-text")},
		{target: models.TargetB, file: compareFlags.FileB, text: compareFlags.TextB, dir: compareFlags.DirB, textSet: cmd.Flags().Changed("b-text")},
	}
	if sources[0].empty() && sources[1].empty() {
		return fmt.Errorf("%w: use --a/--b, --a-text/--b-text or --a-dir/--b-dir", models.ErrEmptyInput)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyCompareFlags(cmd, cfg)
	if err := applyGlobalFlags(cfg); err != nil {
		return err
	}

	threshold, err := cfg.Compare.ThresholdBytes()
	if err != nil {
		return err
	}
	maxLoad, err := cfg.Compare.MaxLoadBytes()
	if err != nil {
		return err
	}

	formatter, err := newFormatter(cfg.Output, stdout)
	if err != nil {
		return err
	}

	logger, err := createLogger(cfg.Logging, globalFlags.Verbose, stderr)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	cwd, err := storage.NewLocal(".")
	if err != nil {
		return err
	}
	defer cwd.Close()

	sess := session.New(cwd, maxLoad, logger)
	for _, src := range sources {
		if err := fillSide(ctx, sess, src, cfg.List, logger); err != nil {
			return err
		}
	}

	result, err := sess.Compare(ctx, cfg.Compare.CaseInsensitive, compare.Options{
		Reduce:         cfg.Compare.ReduceLargeOutput,
		ThresholdBytes: threshold,
	})
	if err != nil {
		return err
	}

	if !cfg.Output.Quiet {
		if err := formatter.Comparison(stdout, result); err != nil {
			return err
		}
	}

	if compareFlags.Save == "" {
		return nil
	}
	return saveResults(ctx, cmd, cfg, cwd, sess)
}

// fillSide loads one side of the comparison into the session
func fillSide(ctx context.Context, sess *session.Session, src listSource, listCfg config.ListConfig, logger logging.Logger) error {
	switch {
	case src.file != "":
		path := platform.NormalizePath(src.file)
		if err := platform.ValidatePath(path); err != nil {
			return err
		}
		return sess.LoadList(ctx, src.target, path)

	case src.dir != "":
		dir := platform.NormalizePath(src.dir)
		listing, err := collect.Listing(ctx, collectOptions(dir, listCfg))
		if err != nil {
			return err
		}
		logger.Debug(ctx, "listing sent", logging.Fields{
			"run_id": listing.ID,
			"root":   listing.Root,
			"target": string(src.target),
			"count":  len(listing.Names),
		})
		sess.SetTarget(src.target)
		sess.SendListing(listing.Names, false, 0)
		sess.SetTarget(models.TargetNone)
		return nil

	case src.textSet:
		return sess.SetText(src.target, src.text)
	}
	return nil
}

func saveResults(ctx context.Context, cmd *cobra.Command, cfg *config.Config, cwd storage.Backend, sess *session.Session) error {
	dir := platform.NormalizePath(compareFlags.Save)
	if err := platform.ValidatePath(dir); err != nil {
		return err
	}
	if err := cwd.MkdirAll(ctx, dir); err != nil {
		return err
	}

	dest, err := storage.NewLocal(dir)
	if err != nil {
		return err
	}
	defer dest.Close()

	paths, err := sess.SaveResults(ctx, dest, newExporter(cfg.Output, cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	if !cfg.Output.Quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d files to %s\n", len(paths), filepath.Clean(dest.Root()))
	}
	return nil
}
