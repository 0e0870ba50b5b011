// Package normalize turns raw multi-line text into clean lists: trimmed,
// non-blank, deduplicated and naturally sorted.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sdejongh/namediff/pkg/natural"
)

// Normalize converts raw text into a list of unique, non-blank lines sorted
// in natural order.
//
// When caseInsensitive is set, lines are compared by their lower-cased form
// and the lower-cased form is what ends up in the list.
func Normalize(raw string, caseInsensitive bool) []string {
	lower := cases.Lower(language.Und)

	items := make([]string, 0)
	seen := make(map[string]struct{})
	for _, line := range SplitLines(raw) {
		s := strings.TrimFunc(line, unicode.IsSpace)
		if s == "" {
			continue
		}
		if caseInsensitive {
			s = lower.String(s)
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		items = append(items, s)
	}

	natural.Sort(items)
	return items
}

// SplitLines splits text on every Unicode line boundary: \n, \r\n, \r,
// \v, \f, \x1c, \x1d, \x1e, \x85, U+2028 and U+2029. A trailing line break
// does not produce an extra empty line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i, r := range text {
		if !isLineBreak(r) {
			continue
		}
		if i < start {
			// second half of \r\n
			continue
		}
		lines = append(lines, text[start:i])
		start = i + len(string(r))
		if r == '\r' && start < len(text) && text[start] == '\n' {
			start++
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Render joins a list back into text, one item per line
func Render(items []string) string {
	return strings.Join(items, "\n")
}
