package models

import (
	"strings"
	"time"
)

// SortMode defines how collected names are ordered
type SortMode string

const (
	// SortNatural orders digit runs numerically ("file2" before "file10")
	SortNatural SortMode = "natural"
	// SortCaseFold orders by case-folded text
	SortCaseFold SortMode = "casefold"
	// SortRaw orders by codepoint
	SortRaw SortMode = "raw"
)

// SortModeFor resolves the two sort toggles into a mode.
// Natural sort takes precedence over case-insensitive sort.
func SortModeFor(natural, caseInsensitive bool) SortMode {
	switch {
	case natural:
		return SortNatural
	case caseInsensitive:
		return SortCaseFold
	default:
		return SortRaw
	}
}

// Target selects which comparison input receives a listing
type Target string

const (
	// TargetNone sends the listing nowhere
	TargetNone Target = "none"
	// TargetA replaces list A with the listing
	TargetA Target = "a"
	// TargetB replaces list B with the listing
	TargetB Target = "b"
)

// ParseTarget parses a target name, accepting an empty string as TargetNone
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return TargetNone, nil
	case "a":
		return TargetA, nil
	case "b":
		return TargetB, nil
	default:
		return TargetNone, &ValidationError{Field: "target", Message: "must be 'none', 'a' or 'b'"}
	}
}

// Listing is the result of enumerating names under a root directory
type Listing struct {
	// ID identifies the listing run
	ID string

	// Root is the absolute directory that was enumerated
	Root string

	// Names is the complete, sorted sequence of collected names
	Names []string

	// Sort is the ordering that was applied
	Sort SortMode

	Recursive bool

	CreatedAt time.Time
}

// Preview returns at most limit names. A limit <= 0 returns all names.
// The listing itself is never truncated.
func (l *Listing) Preview(limit int) []string {
	if limit <= 0 || len(l.Names) <= limit {
		return l.Names
	}
	return l.Names[:limit]
}

// Truncated reports whether a preview of the given size hides entries
func (l *Listing) Truncated(limit int) bool {
	return limit > 0 && len(l.Names) > limit
}
