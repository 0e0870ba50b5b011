package output

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/sdejongh/namediff/pkg/models"
	"github.com/sdejongh/namediff/pkg/storage"
)

// Exporter writes listings and comparison results as flat text files.
// All files are UTF-8 with "\n" line endings.
type Exporter struct {
	progress Progress
}

// NewExporter creates an exporter. A nil progress disables progress bars.
func NewExporter(progress Progress) *Exporter {
	if progress == nil {
		progress = nullProgress{}
	}
	return &Exporter{progress: progress}
}

// FormatLines renders items one per line, each terminated by "\n".
// An empty list renders as an empty string.
func FormatLines(items []string) string {
	var b strings.Builder
	size := 0
	for _, item := range items {
		size += len(item) + 1
	}
	b.Grow(size)
	for _, item := range items {
		b.WriteString(item)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatSection renders a comparison section for export. It matches
// FormatLines except that an empty section is a single "\n".
func FormatSection(items []string) string {
	if len(items) == 0 {
		return "\n"
	}
	return FormatLines(items)
}

// WriteListing writes names to path inside the backend and returns the
// absolute path written
func (e *Exporter) WriteListing(ctx context.Context, backend storage.Backend, path string, names []string) (string, error) {
	defer e.progress.Finish()

	if err := e.write(ctx, backend, path, FormatLines(names)); err != nil {
		return "", err
	}
	return absIn(backend, path), nil
}

// SaveComparison writes the four comparison files into the backend root and
// returns their absolute paths in write order
func (e *Exporter) SaveComparison(ctx context.Context, backend storage.Backend, result *models.ComparisonResult) ([]string, error) {
	defer e.progress.Finish()

	written := make([]string, 0, len(models.Sections)+1)
	for _, s := range models.Sections {
		if err := e.write(ctx, backend, s.FileName(), FormatSection(result.Items(s))); err != nil {
			return written, err
		}
		written = append(written, absIn(backend, s.FileName()))
	}

	if err := e.write(ctx, backend, models.CombinedFileName, result.Combined); err != nil {
		return written, err
	}
	written = append(written, absIn(backend, models.CombinedFileName))

	return written, nil
}

func (e *Exporter) write(ctx context.Context, backend storage.Backend, path, content string) error {
	size := int64(len(content))
	reader := e.progress.Track(strings.NewReader(content), size, filepath.Base(path))
	return backend.Write(ctx, path, reader, size)
}

func absIn(backend storage.Backend, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(backend.Root(), path)
}
