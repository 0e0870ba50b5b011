// Package session holds the state a user builds up between operations:
// the text of list A and list B, where listings are sent, and the most
// recent comparison result.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sdejongh/namediff/pkg/compare"
	"github.com/sdejongh/namediff/pkg/logging"
	"github.com/sdejongh/namediff/pkg/models"
	"github.com/sdejongh/namediff/pkg/output"
	"github.com/sdejongh/namediff/pkg/storage"
)

// DefaultMaxLoadBytes caps the combined size of list files loaded from disk
const DefaultMaxLoadBytes int64 = 15 * 1024 * 1024

// ErrNoResult is returned when saving before any comparison ran
var ErrNoResult = errors.New("no comparison result to save")

// Session is not safe for concurrent use
type Session struct {
	backend storage.Backend
	logger  logging.Logger
	maxLoad int64

	textA  string
	textB  string
	target models.Target
	last   *models.ComparisonResult
}

// New creates a session reading list files through backend. A maxLoad of
// zero or less uses DefaultMaxLoadBytes.
func New(backend storage.Backend, maxLoad int64, logger logging.Logger) *Session {
	if maxLoad <= 0 {
		maxLoad = DefaultMaxLoadBytes
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Session{
		backend: backend,
		logger:  logger.WithFields(logging.Fields{"component": "session"}),
		maxLoad: maxLoad,
		target:  models.TargetNone,
	}
}

// Text returns the current text of list A or B
func (s *Session) Text(t models.Target) string {
	switch t {
	case models.TargetA:
		return s.textA
	case models.TargetB:
		return s.textB
	}
	return ""
}

// SetText replaces the text of list A or B. Typed or pasted text is not
// subject to the load guard.
func (s *Session) SetText(t models.Target, text string) error {
	switch t {
	case models.TargetA:
		s.textA = text
	case models.TargetB:
		s.textB = text
	default:
		return &models.ValidationError{Field: "target", Message: "must be 'a' or 'b'"}
	}
	return nil
}

// Target returns where listings are currently sent
func (s *Session) Target() models.Target {
	return s.target
}

// SetTarget selects where listings are sent. Only one side can be selected
// at a time; selecting one replaces the other.
func (s *Session) SetTarget(t models.Target) {
	s.target = t
}

// LoadList replaces the text of target with the content of the file at
// path. The load is refused with ErrTooLarge when the current text of both
// lists plus the file would exceed the guard; the session is unchanged on
// any failure. Invalid UTF-8 sequences are dropped.
func (s *Session) LoadList(ctx context.Context, target models.Target, path string) error {
	if target != models.TargetA && target != models.TargetB {
		return &models.ValidationError{Field: "target", Message: "must be 'a' or 'b'"}
	}

	entry, err := s.backend.Stat(ctx, path)
	if err != nil {
		return err
	}
	if entry.IsDir {
		return models.NewReadError("load", entry.Path, fmt.Errorf("is a directory"))
	}

	combined := int64(len(s.textA)) + int64(len(s.textB)) + entry.Size
	if combined > s.maxLoad {
		s.logger.Warn(ctx, "list file refused", logging.Fields{
			"path":     entry.Path,
			"combined": combined,
			"limit":    s.maxLoad,
		})
		return &models.OpError{
			Op:   "load",
			Path: entry.Path,
			Kind: models.ErrTooLarge,
			Err:  fmt.Errorf("combined size exceeds %s", humanize.IBytes(uint64(s.maxLoad))),
		}
	}

	data, err := s.backend.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	text := strings.ToValidUTF8(string(data), "")
	_ = s.SetText(target, text)
	s.logger.Debug(ctx, "list file loaded", logging.Fields{"path": entry.Path, "target": string(target), "bytes": len(text)})
	return nil
}

// SendListing copies names into the selected target, one per line. When
// preview is set only the first limit names are sent (limit <= 0 sends
// all). It reports whether anything was sent.
func (s *Session) SendListing(names []string, preview bool, limit int) bool {
	if s.target == models.TargetNone {
		return false
	}
	if preview && limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	_ = s.SetText(s.target, strings.Join(names, "\n"))
	return true
}

// Compare normalizes both lists, compares them and keeps the result as the
// last result. A failed comparison leaves the previous result in place.
func (s *Session) Compare(ctx context.Context, caseInsensitive bool, opts compare.Options) (*models.ComparisonResult, error) {
	result, err := compare.CompareText(s.textA, s.textB, caseInsensitive, opts)
	if err != nil {
		return nil, err
	}

	s.last = result
	s.logger.Info(ctx, "lists compared", logging.Fields{
		"run_id":  result.ID,
		"only_a":  len(result.OnlyA),
		"only_b":  len(result.OnlyB),
		"both":    len(result.Both),
		"reduced": result.Reduced,
	})
	return result, nil
}

// LastResult returns the most recent comparison result, or nil
func (s *Session) LastResult() *models.ComparisonResult {
	return s.last
}

// SaveResults exports the last result into dest using exporter
func (s *Session) SaveResults(ctx context.Context, dest storage.Backend, exporter *output.Exporter) ([]string, error) {
	if s.last == nil {
		return nil, ErrNoResult
	}

	paths, err := exporter.SaveComparison(ctx, dest, s.last)
	if err != nil {
		s.logger.Error(ctx, "export failed", err, logging.Fields{"run_id": s.last.ID, "dir": dest.Root()})
		return nil, err
	}

	s.logger.Info(ctx, "results saved", logging.Fields{"run_id": s.last.ID, "dir": dest.Root()})
	return paths, nil
}
