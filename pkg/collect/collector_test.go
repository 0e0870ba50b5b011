package collect

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdejongh/namediff/pkg/models"
)

func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		full := filepath.Join(root, filepath.FromSlash(f))
		if filepath.ToSlash(f)[len(f)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0644))
	}
	return root
}

func TestCollect_NaturalOrder(t *testing.T) {
	root := makeTree(t, "img2.png", "img10.png", "img1.png")

	opts := DefaultOptions(root)
	opts.IncludeDirs = false

	names, err := Collect(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"img1.png", "img2.png", "img10.png"}, names)
}

func TestCollect_SkipOutputName(t *testing.T) {
	root := makeTree(t, "out.txt", "a.txt")

	opts := DefaultOptions(root)
	opts.OutputName = "out.txt"

	names, err := Collect(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, names)

	opts.SkipOutputName = false
	names, err = Collect(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "out.txt"}, names)
}

func TestCollect_SkipOutputNameUsesBaseName(t *testing.T) {
	root := makeTree(t, "sub/out.txt", "sub/keep.txt", "out.txt")

	opts := DefaultOptions(root)
	opts.Recursive = true
	opts.OutputName = filepath.Join("elsewhere", "out.txt")

	names, err := Collect(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("sub", "keep.txt")}, names)
}

func TestCollect_Kinds(t *testing.T) {
	root := makeTree(t, "alpha/", "beta.txt", "gamma/inner.txt")

	tests := []struct {
		name      string
		files     bool
		dirs      bool
		recursive bool
		want      []string
	}{
		{"FilesOnly", true, false, false, []string{"beta.txt"}},
		{"DirsOnly", false, true, false, []string{"alpha", "gamma"}},
		{"Both", true, true, false, []string{"alpha", "beta.txt", "gamma"}},
		{"Neither", false, false, false, []string{}},
		{"RecursiveFiles", true, false, true, []string{"beta.txt", filepath.Join("gamma", "inner.txt")}},
		{"RecursiveBoth", true, true, true, []string{"alpha", "beta.txt", "gamma", filepath.Join("gamma", "inner.txt")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions(root)
			opts.IncludeFiles = tt.files
			opts.IncludeDirs = tt.dirs
			opts.Recursive = tt.recursive

			names, err := Collect(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCollect_NeverIncludesRoot(t *testing.T) {
	root := makeTree(t, "a/")

	opts := DefaultOptions(root)
	opts.IncludeDirs = true
	opts.Recursive = true

	names, err := Collect(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names)
	assert.NotContains(t, names, ".")
}

func TestCollect_SortModes(t *testing.T) {
	root := makeTree(t, "b10", "B2", "a1", "A3")

	tests := []struct {
		name            string
		natural         bool
		caseInsensitive bool
		want            []string
	}{
		{"Natural", true, false, []string{"a1", "A3", "B2", "b10"}},
		{"NaturalWins", true, true, []string{"a1", "A3", "B2", "b10"}},
		{"CaseFold", false, true, []string{"a1", "A3", "b10", "B2"}},
		{"Raw", false, false, []string{"A3", "B2", "a1", "b10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions(root)
			opts.NaturalSort = tt.natural
			opts.CaseInsensitiveSort = tt.caseInsensitive

			names, err := Collect(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCollect_Exclude(t *testing.T) {
	root := makeTree(t, "keep.txt", "drop.tmp", "node_modules/pkg.js", "src/main.go", "src/cache/x.bin")

	opts := DefaultOptions(root)
	opts.Recursive = true
	opts.IncludeDirs = true
	opts.Exclude = []string{"*.tmp", "node_modules/", "**/cache"}

	names, err := Collect(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt", "src", filepath.Join("src", "main.go")}, names)
}

func TestCollect_InvalidPattern(t *testing.T) {
	root := makeTree(t, "a.txt")

	opts := DefaultOptions(root)
	opts.Exclude = []string{"[unterminated"}

	_, err := Collect(context.Background(), opts)
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCollect_NotADirectory(t *testing.T) {
	root := makeTree(t, "file.txt")

	_, err := Collect(context.Background(), DefaultOptions(filepath.Join(root, "missing")))
	assert.ErrorIs(t, err, models.ErrNotADirectory)

	_, err = Collect(context.Background(), DefaultOptions(filepath.Join(root, "file.txt")))
	assert.ErrorIs(t, err, models.ErrNotADirectory)
}

func TestListing(t *testing.T) {
	root := makeTree(t, "x2", "x1")

	listing, err := Listing(context.Background(), DefaultOptions(root))
	require.NoError(t, err)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, []string{"x1", "x2"}, listing.Names)
	assert.Equal(t, models.SortNatural, listing.Sort)
	assert.True(t, filepath.IsAbs(listing.Root))
}

func TestMatchesExclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"a.tmp", []string{"*.tmp"}, true},
		{"dir/a.tmp", []string{"*.tmp"}, true},
		{"a.txt", []string{"*.tmp"}, false},
		{".git", []string{".git/"}, true},
		{".git/config", []string{".git/"}, true},
		{"sub/.git/config", []string{".git/"}, true},
		{"gitlog", []string{".git/"}, false},
		{"build/out.o", []string{"build/*"}, true},
		{"a/b/cache", []string{"**/cache"}, true},
		{"a/b/x.bak", []string{"**/*.bak"}, true},
		{"a/b/x.txt", []string{"", "**/*.bak"}, false},
		{"anything", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesExclude(filepath.FromSlash(tt.path), tt.patterns))
		})
	}
}
