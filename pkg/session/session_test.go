package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdejongh/namediff/pkg/compare"
	"github.com/sdejongh/namediff/pkg/models"
	"github.com/sdejongh/namediff/pkg/output"
	"github.com/sdejongh/namediff/pkg/storage"
)

func newSession(t *testing.T, maxLoad int64) (*Session, string) {
	t.Helper()
	backend, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	return New(backend, maxLoad, nil), backend.Root()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNew_Defaults(t *testing.T) {
	s, _ := newSession(t, 0)
	assert.Equal(t, DefaultMaxLoadBytes, s.maxLoad)
	assert.Equal(t, models.TargetNone, s.Target())
	assert.Nil(t, s.LastResult())
}

func TestSession_SetText(t *testing.T) {
	s, _ := newSession(t, 0)

	require.NoError(t, s.SetText(models.TargetA, "x"))
	require.NoError(t, s.SetText(models.TargetB, "y"))
	assert.Equal(t, "x", s.Text(models.TargetA))
	assert.Equal(t, "y", s.Text(models.TargetB))

	err := s.SetText(models.TargetNone, "z")
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSession_LoadList(t *testing.T) {
	s, root := newSession(t, 0)
	writeFile(t, root, "a.txt", "one\ntwo\n")

	require.NoError(t, s.LoadList(context.Background(), models.TargetA, "a.txt"))
	assert.Equal(t, "one\ntwo\n", s.Text(models.TargetA))
	assert.Empty(t, s.Text(models.TargetB))
}

func TestSession_LoadListDropsInvalidUTF8(t *testing.T) {
	s, root := newSession(t, 0)
	writeFile(t, root, "bad.txt", "ok\xff\n")

	require.NoError(t, s.LoadList(context.Background(), models.TargetB, "bad.txt"))
	assert.Equal(t, "ok\n", s.Text(models.TargetB))
}

func TestSession_LoadListTooLarge(t *testing.T) {
	s, root := newSession(t, 10)
	require.NoError(t, s.SetText(models.TargetA, "12345"))
	require.NoError(t, s.SetText(models.TargetB, "abc"))
	path := writeFile(t, root, "big.txt", "xyz")

	// 5 + 3 + 3 = 11 > 10
	err := s.LoadList(context.Background(), models.TargetB, path)
	require.ErrorIs(t, err, models.ErrTooLarge)
	assert.Equal(t, "12345", s.Text(models.TargetA))
	assert.Equal(t, "abc", s.Text(models.TargetB), "text unchanged on refusal")

	// exactly at the limit is allowed
	require.NoError(t, s.SetText(models.TargetB, "ab"))
	require.NoError(t, s.LoadList(context.Background(), models.TargetB, path))
	assert.Equal(t, "xyz", s.Text(models.TargetB))
}

func TestSession_LoadListReadFailure(t *testing.T) {
	s, root := newSession(t, 0)
	require.NoError(t, s.SetText(models.TargetA, "keep"))

	err := s.LoadList(context.Background(), models.TargetA, "missing.txt")
	assert.ErrorIs(t, err, models.ErrReadFailure)
	assert.Equal(t, "keep", s.Text(models.TargetA))

	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0755))
	err = s.LoadList(context.Background(), models.TargetA, "dir")
	assert.ErrorIs(t, err, models.ErrReadFailure)
}

func TestSession_SendListing(t *testing.T) {
	s, _ := newSession(t, 0)
	names := []string{"a", "b", "c"}

	assert.False(t, s.SendListing(names, false, 0), "no target selected")

	s.SetTarget(models.TargetA)
	assert.True(t, s.SendListing(names, true, 2))
	assert.Equal(t, "a\nb", s.Text(models.TargetA))

	// selecting B deselects A
	s.SetTarget(models.TargetB)
	assert.True(t, s.SendListing(names, false, 2))
	assert.Equal(t, "a\nb\nc", s.Text(models.TargetB))
	assert.Equal(t, "a\nb", s.Text(models.TargetA))
}

func TestSession_Compare(t *testing.T) {
	s, _ := newSession(t, 0)

	_, err := s.Compare(context.Background(), false, compare.DefaultOptions())
	require.ErrorIs(t, err, models.ErrEmptyInput)
	assert.Nil(t, s.LastResult())

	require.NoError(t, s.SetText(models.TargetA, "b.txt\na.txt\na.txt"))
	require.NoError(t, s.SetText(models.TargetB, "B.txt"))

	result, err := s.Compare(context.Background(), true, compare.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, result.OnlyA)
	assert.Empty(t, result.OnlyB)
	assert.Equal(t, []string{"b.txt"}, result.Both)
	assert.Same(t, result, s.LastResult())

	// a failing comparison keeps the previous result
	require.NoError(t, s.SetText(models.TargetA, ""))
	require.NoError(t, s.SetText(models.TargetB, ""))
	_, err = s.Compare(context.Background(), true, compare.DefaultOptions())
	require.Error(t, err)
	assert.Same(t, result, s.LastResult())
}

func TestSession_SaveResults(t *testing.T) {
	s, _ := newSession(t, 0)
	dest, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = s.SaveResults(context.Background(), dest, output.NewExporter(nil))
	require.ErrorIs(t, err, ErrNoResult)

	require.NoError(t, s.SetText(models.TargetA, "x\ny"))
	require.NoError(t, s.SetText(models.TargetB, "y\nz"))
	_, err = s.Compare(context.Background(), false, compare.DefaultOptions())
	require.NoError(t, err)

	paths, err := s.SaveResults(context.Background(), dest, output.NewExporter(nil))
	require.NoError(t, err)
	require.Len(t, paths, 4)

	data, err := os.ReadFile(filepath.Join(dest.Root(), "compare_result.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Only in A (1)\nx\n"))
}
