package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"a/b/../c", filepath.Join("a", "c")},
		{"  ./lists/ ", "lists"},
		{"~", home},
		{"~/lists", filepath.Join(home, "lists")},
		{"~user/lists", filepath.Join("~user", "lists")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizePath(tt.in); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere.txt")

	tests := []struct {
		name string
		file string
		want string
	}{
		{"relative", "out.txt", filepath.Join(dir, "out.txt")},
		{"blank uses default", "   ", filepath.Join(dir, "filenames_sorted.txt")},
		{"trimmed", " out.txt ", filepath.Join(dir, "out.txt")},
		{"absolute kept", abs, abs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(dir, tt.file, "filenames_sorted.txt"); got != tt.want {
				t.Errorf("OutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	if err := ValidatePath("lists/a.txt"); err != nil {
		t.Errorf("ValidatePath() error = %v", err)
	}

	for _, bad := range []string{"", "   ", "a\x00b"} {
		err := ValidatePath(bad)
		var perr *PathError
		if !errors.As(err, &perr) {
			t.Errorf("ValidatePath(%q) = %v, want PathError", bad, err)
		}
	}

	if runtime.GOOS == "windows" {
		if err := ValidatePath(`C:\lists\a.txt`); err != nil {
			t.Errorf("drive letter rejected: %v", err)
		}
		if err := ValidatePath(`C:\lists\a?.txt`); err == nil {
			t.Error("wildcard should be rejected")
		}
	}
}

func TestIsAbsolute(t *testing.T) {
	if IsAbsolute("relative/path") {
		t.Error("relative path reported absolute")
	}
	if !IsAbsolute(t.TempDir()) {
		t.Error("temp dir reported relative")
	}
}
