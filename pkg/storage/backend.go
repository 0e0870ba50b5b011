package storage

import (
	"context"
	"io"
	"time"
)

// Entry represents one filesystem entry below a backend root
type Entry struct {
	// Name is the final path component
	Name string

	// RelativePath is the path relative to the backend root, using the
	// platform separator
	RelativePath string

	// Path is the absolute path
	Path string

	// IsDir is set for directories and for symlinks pointing to one
	IsDir bool

	// IsRegular is set for regular files and for symlinks pointing to one
	IsRegular bool

	Size    int64
	ModTime time.Time
}

// Backend defines the storage operations used by the lister and the exporter
type Backend interface {
	// Root returns the absolute root directory of the backend
	Root() string

	// ListDir returns the immediate children of a directory
	ListDir(ctx context.Context, path string) ([]Entry, error)

	// Walk returns every entry below a directory, excluding the directory
	// itself. Symlinked directories are reported but not descended into.
	Walk(ctx context.Context, path string) ([]Entry, error)

	// ReadFile returns the whole content of a file
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// Write creates or overwrites a file with the given content.
	// A negative size skips the length check.
	Write(ctx context.Context, path string, reader io.Reader, size int64) error

	// Exists checks if a file or directory exists
	Exists(ctx context.Context, path string) (bool, error)

	// Stat returns entry metadata
	Stat(ctx context.Context, path string) (*Entry, error)

	// MkdirAll creates a directory and all necessary parents
	MkdirAll(ctx context.Context, path string) error

	// Close releases any resources held by the backend
	Close() error
}
