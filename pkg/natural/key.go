// Package natural implements natural ordering of strings, where embedded
// digit runs compare as numbers and text runs compare case-folded.
package natural

import (
	"math/big"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Segment is one run of a Key: either an integer or a folded text run
type Segment struct {
	// Num is set for digit runs, nil for text runs
	Num *big.Int
	// Text holds the case-folded text of a text run
	Text string
}

// IsNumber reports whether the segment came from a digit run
func (s Segment) IsNumber() bool {
	return s.Num != nil
}

// Key is an ordering key. It always starts with a text segment (possibly
// empty) and alternates text and integer segments.
type Key []Segment

// KeyOf builds the natural ordering key for s
func KeyOf(s string) Key {
	return keyOf(cases.Fold(), s)
}

func keyOf(folder cases.Caser, s string) Key {
	key := make(Key, 0, 4)
	start := 0
	for {
		// text run, possibly empty
		end := start
		for end < len(s) {
			r, size := utf8.DecodeRuneInString(s[end:])
			if _, ok := digitValue(r); ok {
				break
			}
			end += size
		}
		key = append(key, Segment{Text: folder.String(s[start:end])})
		if end == len(s) {
			return key
		}

		// digit run, never empty here; any decimal digit counts, so
		// "١٠" reads as 10
		var digits strings.Builder
		for end < len(s) {
			r, size := utf8.DecodeRuneInString(s[end:])
			v, ok := digitValue(r)
			if !ok {
				break
			}
			digits.WriteByte(byte('0' + v))
			end += size
		}
		n, _ := new(big.Int).SetString(digits.String(), 10)
		key = append(key, Segment{Num: n})
		start = end
		if start == len(s) {
			// a trailing digit run is followed by an empty text segment
			return append(key, Segment{})
		}
	}
}

// digitValue returns the value of a Unicode decimal digit (category Nd).
// Nd digits come in contiguous runs of ten starting at zero, so the value
// is the offset from the start of the run modulo ten.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if r < utf8.RuneSelf || !unicode.IsDigit(r) {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10, true
		}
	}
	return 0, false
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal
// to, or after b.
func Compare(a, b Key) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareSegment(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Integers sort before text when segment types differ at a position.
func compareSegment(a, b Segment) int {
	switch {
	case a.IsNumber() && b.IsNumber():
		return a.Num.Cmp(b.Num)
	case a.IsNumber():
		return -1
	case b.IsNumber():
		return 1
	default:
		return strings.Compare(a.Text, b.Text)
	}
}

// Equal reports whether two keys compare equal
func Equal(a, b Key) bool {
	return Compare(a, b) == 0
}

// Less reports whether a sorts before b in natural order
func Less(a, b string) bool {
	return Compare(KeyOf(a), KeyOf(b)) < 0
}

// Sort sorts names in natural order. The sort is stable and builds each
// key once.
func Sort(names []string) {
	folder := cases.Fold()
	keyed := make([]keyedName, len(names))
	for i, n := range names {
		keyed[i] = keyedName{name: n, key: keyOf(folder, n)}
	}
	slices.SortStableFunc(keyed, func(x, y keyedName) int {
		return Compare(x.key, y.key)
	})
	for i := range keyed {
		names[i] = keyed[i].name
	}
}

// Sorted returns a naturally sorted copy of names
func Sorted(names []string) []string {
	out := slices.Clone(names)
	Sort(out)
	return out
}

// SortFold sorts names by their case-folded form, stable
func SortFold(names []string) {
	folder := cases.Fold()
	keyed := make([]keyedName, len(names))
	for i, n := range names {
		keyed[i] = keyedName{name: n, folded: folder.String(n)}
	}
	slices.SortStableFunc(keyed, func(x, y keyedName) int {
		return strings.Compare(x.folded, y.folded)
	})
	for i := range keyed {
		names[i] = keyed[i].name
	}
}

// SortRaw sorts names by codepoint
func SortRaw(names []string) {
	slices.Sort(names)
}

type keyedName struct {
	name   string
	key    Key
	folded string
}
