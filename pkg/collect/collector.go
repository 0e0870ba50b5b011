// Package collect enumerates the names found under a directory, filtered by
// entry kind and exclusion rules, in a selectable order.
package collect

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sdejongh/namediff/pkg/models"
	"github.com/sdejongh/namediff/pkg/natural"
	"github.com/sdejongh/namediff/pkg/storage"
)

// DefaultOutputName is the listing file written when no name is given
const DefaultOutputName = "filenames_sorted.txt"

// Options controls a collection run
type Options struct {
	// Root is the directory to enumerate
	Root string

	IncludeFiles bool
	IncludeDirs  bool

	// Recursive walks the full subtree and reports paths relative to Root
	Recursive bool

	// NaturalSort takes precedence over CaseInsensitiveSort
	NaturalSort         bool
	CaseInsensitiveSort bool

	// SkipOutputName drops entries whose base name equals the base name
	// of OutputName
	SkipOutputName bool
	OutputName     string

	// Exclude holds glob patterns of names to leave out
	Exclude []string
}

// DefaultOptions returns the lister defaults for root
func DefaultOptions(root string) Options {
	return Options{
		Root:                root,
		IncludeFiles:        true,
		NaturalSort:         true,
		CaseInsensitiveSort: true,
		SkipOutputName:      true,
		OutputName:          DefaultOutputName,
	}
}

// SortMode returns the ordering selected by the sort toggles
func (o Options) SortMode() models.SortMode {
	return models.SortModeFor(o.NaturalSort, o.CaseInsensitiveSort)
}

// Collect returns the sorted names under opts.Root.
// It fails with models.ErrNotADirectory when the root is missing or is not
// a directory. On any other failure no partial result is returned.
func Collect(ctx context.Context, opts Options) ([]string, error) {
	backend, err := storage.NewLocal(opts.Root)
	if err != nil {
		return nil, err
	}
	defer backend.Close()

	return CollectFrom(ctx, backend, opts)
}

// CollectFrom runs a collection against an already opened backend.
// opts.Root is ignored; the backend root is used instead.
func CollectFrom(ctx context.Context, backend storage.Backend, opts Options) ([]string, error) {
	if err := validatePatterns(opts.Exclude); err != nil {
		return nil, &models.ValidationError{Field: "exclude", Message: err.Error()}
	}

	var entries []storage.Entry
	var err error
	if opts.Recursive {
		entries, err = backend.Walk(ctx, "")
	} else {
		entries, err = backend.ListDir(ctx, "")
	}
	if err != nil {
		return nil, err
	}

	skipName := ""
	if opts.SkipOutputName {
		skipName = outputBaseName(opts.OutputName)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !qualifies(e, opts) {
			continue
		}
		name := e.Name
		if opts.Recursive {
			name = e.RelativePath
		}
		if skipName != "" && filepath.Base(name) == skipName {
			continue
		}
		if matchesExclude(name, opts.Exclude) {
			continue
		}
		names = append(names, name)
	}

	SortNames(names, opts.SortMode())
	return names, nil
}

// Listing runs Collect and wraps the names with run metadata
func Listing(ctx context.Context, opts Options) (*models.Listing, error) {
	backend, err := storage.NewLocal(opts.Root)
	if err != nil {
		return nil, err
	}
	defer backend.Close()

	names, err := CollectFrom(ctx, backend, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to collect names: %w", err)
	}

	return &models.Listing{
		ID:        uuid.New().String(),
		Root:      backend.Root(),
		Names:     names,
		Sort:      opts.SortMode(),
		Recursive: opts.Recursive,
		CreatedAt: time.Now(),
	}, nil
}

// SortNames orders names in place according to mode
func SortNames(names []string, mode models.SortMode) {
	switch mode {
	case models.SortCaseFold:
		natural.SortFold(names)
	case models.SortRaw:
		natural.SortRaw(names)
	default:
		natural.Sort(names)
	}
}

// Directories and files are enumerated independently. A walk reports any
// non-directory as a file; a flat listing only counts regular files.
func qualifies(e storage.Entry, opts Options) bool {
	if e.IsDir {
		return opts.IncludeDirs
	}
	if opts.Recursive {
		return opts.IncludeFiles
	}
	return opts.IncludeFiles && e.IsRegular
}

func outputBaseName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultOutputName
	}
	return filepath.Base(name)
}
