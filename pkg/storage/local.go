package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sdejongh/namediff/pkg/models"
)

// Local is a filesystem-based storage backend
type Local struct {
	rootPath string
}

// NewLocal creates a new local filesystem backend.
// It fails with models.ErrNotADirectory when rootPath is missing or is not
// a directory.
func NewLocal(rootPath string) (*Local, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, &models.OpError{Op: "open", Path: absPath, Kind: models.ErrNotADirectory, Err: err}
	}

	// Walks do not follow a symlinked root, so resolve it up front
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}

	if !info.IsDir() {
		return nil, &models.OpError{Op: "open", Path: absPath, Kind: models.ErrNotADirectory}
	}

	return &Local{rootPath: absPath}, nil
}

// Root returns the absolute root directory
func (l *Local) Root() string {
	return l.rootPath
}

// ListDir returns the immediate children of a directory
func (l *Local) ListDir(ctx context.Context, path string) ([]Entry, error) {
	fullPath := l.resolve(path)

	dirEntries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, models.NewReadError("list", fullPath, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		p := filepath.Join(fullPath, d.Name())
		entry, ok := l.classify(p, d, false)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Walk returns every entry below a directory, excluding the directory itself
func (l *Local) Walk(ctx context.Context, path string) ([]Entry, error) {
	fullPath := l.resolve(path)
	var entries []Entry

	err := filepath.WalkDir(fullPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if p == fullPath {
			return nil
		}

		entry, _ := l.classify(p, d, true)
		entries = append(entries, entry)
		return nil
	})

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, models.NewReadError("walk", fullPath, err)
	}

	return entries, nil
}

// classify builds an Entry, following symlinks to decide its kind.
// Unresolvable symlinks are dropped from directory listings and reported
// as plain files during walks.
func (l *Local) classify(p string, d fs.DirEntry, walking bool) (Entry, bool) {
	entry := Entry{
		Name: d.Name(),
		Path: p,
	}
	if rel, err := filepath.Rel(l.rootPath, p); err == nil {
		entry.RelativePath = rel
	} else {
		entry.RelativePath = d.Name()
	}

	var info fs.FileInfo
	var err error
	if d.Type()&fs.ModeSymlink != 0 {
		info, err = os.Stat(p)
	} else {
		info, err = d.Info()
	}
	if err != nil {
		if walking {
			return entry, true
		}
		return entry, false
	}

	entry.IsDir = info.IsDir()
	entry.IsRegular = info.Mode().IsRegular()
	entry.Size = info.Size()
	entry.ModTime = info.ModTime()
	return entry, true
}

// ReadFile returns the whole content of a file
func (l *Local) ReadFile(ctx context.Context, path string) ([]byte, error) {
	fullPath := l.resolve(path)

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, models.NewReadError("read", fullPath, err)
	}

	return data, nil
}

// Write creates or overwrites a file
func (l *Local) Write(ctx context.Context, path string, reader io.Reader, size int64) error {
	fullPath := l.resolve(path)

	// Ensure parent directory exists
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return models.NewWriteError("mkdir", dir, err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return models.NewWriteError("create", fullPath, err)
	}

	written, err := io.Copy(file, reader)
	if err != nil {
		file.Close()
		return models.NewWriteError("write", fullPath, err)
	}

	if err := file.Close(); err != nil {
		return models.NewWriteError("close", fullPath, err)
	}

	if size >= 0 && written != size {
		return models.NewWriteError("write", fullPath,
			fmt.Errorf("incomplete write: expected %d bytes, wrote %d", size, written))
	}

	return nil
}

// Exists checks if a file or directory exists
func (l *Local) Exists(ctx context.Context, path string) (bool, error) {
	fullPath := l.resolve(path)

	_, err := os.Stat(fullPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check existence: %w", err)
}

// Stat returns entry metadata
func (l *Local) Stat(ctx context.Context, path string) (*Entry, error) {
	fullPath := l.resolve(path)

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, models.NewReadError("stat", fullPath, err)
	}

	relPath, err := filepath.Rel(l.rootPath, fullPath)
	if err != nil {
		return nil, err
	}

	return &Entry{
		Name:         info.Name(),
		RelativePath: relPath,
		Path:         fullPath,
		IsDir:        info.IsDir(),
		IsRegular:    info.Mode().IsRegular(),
		Size:         info.Size(),
		ModTime:      info.ModTime(),
	}, nil
}

// MkdirAll creates a directory and all necessary parents
func (l *Local) MkdirAll(ctx context.Context, path string) error {
	fullPath := l.resolve(path)

	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return models.NewWriteError("mkdir", fullPath, err)
	}

	return nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}

// resolve joins relative paths to the root and keeps absolute ones
func (l *Local) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(l.rootPath, path)
}
