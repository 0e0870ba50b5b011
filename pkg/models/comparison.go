package models

import (
	"time"
)

// Section identifies one of the three partitions of a comparison
type Section string

const (
	// SectionOnlyA holds items present in list A only
	SectionOnlyA Section = "only_a"
	// SectionOnlyB holds items present in list B only
	SectionOnlyB Section = "only_b"
	// SectionBoth holds items present in both lists
	SectionBoth Section = "both"
)

// Title returns the header used for the section in rendered reports
func (s Section) Title() string {
	switch s {
	case SectionOnlyA:
		return "Only in A"
	case SectionOnlyB:
		return "Only in B"
	case SectionBoth:
		return "In both"
	default:
		return string(s)
	}
}

// FileName returns the export file name for the section
func (s Section) FileName() string {
	switch s {
	case SectionOnlyA:
		return "only_in_a.txt"
	case SectionOnlyB:
		return "only_in_b.txt"
	case SectionBoth:
		return "in_both.txt"
	default:
		return string(s) + ".txt"
	}
}

// Sections lists the partitions in report order
var Sections = []Section{SectionOnlyA, SectionOnlyB, SectionBoth}

// CombinedFileName is the export file holding the full rendered report
const CombinedFileName = "compare_result.txt"

// ComparisonResult is the outcome of comparing two normalized lists.
// A result is never modified after it has been returned.
type ComparisonResult struct {
	// ID identifies the comparison run in logs and JSON output
	ID string

	// OnlyA, OnlyB and Both partition the union of both inputs
	OnlyA []string
	OnlyB []string
	Both  []string

	// Combined is the rendered three-block report
	Combined string

	// CombinedSize is the UTF-8 byte length of Combined
	CombinedSize int64

	// Reduced is set when the report is too large to show inline.
	// The three sets and Combined are complete either way.
	Reduced bool

	// SizeA and SizeB are the lengths of the normalized inputs
	SizeA int
	SizeB int

	CreatedAt time.Time
}

// Items returns the list held by a section
func (r *ComparisonResult) Items(s Section) []string {
	switch s {
	case SectionOnlyA:
		return r.OnlyA
	case SectionOnlyB:
		return r.OnlyB
	case SectionBoth:
		return r.Both
	default:
		return nil
	}
}

// Total returns the number of distinct items across both inputs
func (r *ComparisonResult) Total() int {
	return len(r.OnlyA) + len(r.OnlyB) + len(r.Both)
}
