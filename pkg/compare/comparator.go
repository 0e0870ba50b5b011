// Package compare partitions two normalized lists into the items found only
// in A, only in B and in both, and renders the result as a text report.
package compare

import (
	"time"

	"github.com/google/uuid"

	"github.com/sdejongh/namediff/pkg/models"
	"github.com/sdejongh/namediff/pkg/natural"
	"github.com/sdejongh/namediff/pkg/normalize"
)

// DefaultThresholdBytes is the rendered size above which a reduced
// comparison is not shown inline (3 MiB)
const DefaultThresholdBytes int64 = 3 * 1024 * 1024

// Options controls presentation hints of a comparison.
// They never change the computed sets.
type Options struct {
	// Reduce enables the large output check
	Reduce bool
	// ThresholdBytes is the rendered size limit used when Reduce is set
	ThresholdBytes int64
}

// DefaultOptions returns options with reduction disabled
func DefaultOptions() Options {
	return Options{ThresholdBytes: DefaultThresholdBytes}
}

// Compare computes the three-way partition of two normalized lists.
// It fails with models.ErrEmptyInput when both lists are empty.
func Compare(listA, listB []string, opts Options) (*models.ComparisonResult, error) {
	if len(listA) == 0 && len(listB) == 0 {
		return nil, models.ErrEmptyInput
	}

	setA := toSet(listA)
	setB := toSet(listB)

	// walk the inputs, not the sets, so ties under the natural key keep
	// their input order and the output is the same on every run
	onlyA := make([]string, 0)
	both := make([]string, 0)
	for _, item := range unique(listA) {
		if _, ok := setB[item]; ok {
			both = append(both, item)
		} else {
			onlyA = append(onlyA, item)
		}
	}

	onlyB := make([]string, 0)
	for _, item := range unique(listB) {
		if _, ok := setA[item]; !ok {
			onlyB = append(onlyB, item)
		}
	}

	natural.Sort(onlyA)
	natural.Sort(onlyB)
	natural.Sort(both)

	result := &models.ComparisonResult{
		ID:        uuid.New().String(),
		OnlyA:     onlyA,
		OnlyB:     onlyB,
		Both:      both,
		SizeA:     len(setA),
		SizeB:     len(setB),
		CreatedAt: time.Now(),
	}
	result.Combined = Render(result)
	result.CombinedSize = int64(len(result.Combined))
	result.Reduced = ShouldReduce(result.CombinedSize, opts)

	return result, nil
}

// CompareText normalizes two raw texts and compares them.
// Both texts empty is an ErrEmptyInput.
func CompareText(rawA, rawB string, caseInsensitive bool, opts Options) (*models.ComparisonResult, error) {
	if rawA == "" && rawB == "" {
		return nil, models.ErrEmptyInput
	}
	a := normalize.Normalize(rawA, caseInsensitive)
	b := normalize.Normalize(rawB, caseInsensitive)
	return Compare(a, b, opts)
}

// ShouldReduce reports whether a rendering of size bytes must be kept out
// of inline display
func ShouldReduce(size int64, opts Options) bool {
	return opts.Reduce && size > opts.ThresholdBytes
}

// unique drops repeated items, keeping the first occurrence
func unique(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
