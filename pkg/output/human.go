package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sdejongh/namediff/pkg/models"
)

// Styles holds the lipgloss styles used for terminal output
type Styles struct {
	Header lipgloss.Style
	Count  lipgloss.Style
	Muted  lipgloss.Style
	Notice lipgloss.Style
}

// DefaultStyles returns the purple and pink header palette
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f6b2d1")),
		Count:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7d44b2")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#BBBBBB")),
		Notice: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
	}
}

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	styled bool
	styles Styles
}

// NewHumanFormatter creates a new human-readable formatter.
// Styling only applies when styled is true.
func NewHumanFormatter(styled bool) *HumanFormatter {
	return &HumanFormatter{
		styled: styled,
		styles: DefaultStyles(),
	}
}

// Listing prints the (possibly capped) names followed by a summary line
func (f *HumanFormatter) Listing(w io.Writer, view ListingView) error {
	l := view.Listing

	if view.Destination == "" {
		for _, name := range l.Preview(view.Limit) {
			fmt.Fprintln(w, name)
		}
		if l.Truncated(view.Limit) {
			fmt.Fprintln(w, f.render(f.styles.Muted,
				fmt.Sprintf("... %s more not shown", humanize.Comma(int64(len(l.Names)-view.Limit)))))
		}
		fmt.Fprintln(w, f.render(f.styles.Muted, fmt.Sprintf("Previewed %s entries", humanize.Comma(int64(len(l.Names))))))
		return nil
	}

	fmt.Fprintf(w, "Wrote %s entries to %s\n", humanize.Comma(int64(len(l.Names))), view.Destination)
	return nil
}

// Comparison prints the three blocks, or a notice when the result is reduced
func (f *HumanFormatter) Comparison(w io.Writer, result *models.ComparisonResult) error {
	if result.Reduced {
		fmt.Fprintln(w, f.render(f.styles.Notice,
			fmt.Sprintf("Large output (%s): result not shown. Use --save to export it.", humanize.IBytes(uint64(result.CombinedSize)))))
		f.summary(w, result)
		return nil
	}

	if !f.styled {
		if _, err := io.WriteString(w, result.Combined); err != nil {
			return err
		}
		f.summary(w, result)
		return nil
	}

	for _, s := range models.Sections {
		items := result.Items(s)
		fmt.Fprintf(w, "%s %s\n",
			f.styles.Header.Render(s.Title()),
			f.styles.Count.Render(fmt.Sprintf("(%d)", len(items))))
		if len(items) > 0 {
			fmt.Fprintln(w, strings.Join(items, "\n"))
		}
		fmt.Fprintln(w)
	}
	f.summary(w, result)
	return nil
}

func (f *HumanFormatter) summary(w io.Writer, result *models.ComparisonResult) {
	fmt.Fprintln(w, f.render(f.styles.Muted, fmt.Sprintf("Compared lists. A:%d B:%d", result.SizeA, result.SizeB)))
}

func (f *HumanFormatter) render(style lipgloss.Style, s string) string {
	if !f.styled {
		return s
	}
	return style.Render(s)
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
