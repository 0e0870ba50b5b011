package compare

import (
	"strconv"
	"strings"

	"github.com/sdejongh/namediff/pkg/models"
)

// Render produces the combined report: one block per section in the order
// "Only in A", "Only in B", "In both". Every block is a "<title> (<count>)"
// header, its items one per line, and a blank line.
func Render(r *models.ComparisonResult) string {
	var b strings.Builder
	b.Grow(renderedSize(r))
	for _, s := range models.Sections {
		writeBlock(&b, s.Title(), r.Items(s))
	}
	return b.String()
}

func writeBlock(b *strings.Builder, title string, items []string) {
	b.WriteString(title)
	b.WriteString(" (")
	b.WriteString(strconv.Itoa(len(items)))
	b.WriteString(")\n")
	for _, item := range items {
		b.WriteString(item)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func renderedSize(r *models.ComparisonResult) int {
	n := 0
	for _, s := range models.Sections {
		n += len(s.Title()) + 16
		for _, item := range r.Items(s) {
			n += len(item) + 1
		}
	}
	return n
}
