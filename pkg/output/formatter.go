package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/sdejongh/namediff/pkg/models"
)

// ListingView is what a formatter needs to present a listing
type ListingView struct {
	Listing *models.Listing

	// Limit caps the number of names shown (0 = all)
	Limit int

	// Destination is the file the listing was written to, empty for a preview
	Destination string
}

// Formatter defines the interface for output formatting
// Implementations include human-readable and JSON formatters
type Formatter interface {
	// Listing presents a collected listing
	Listing(w io.Writer, view ListingView) error

	// Comparison presents a comparison result. Reduced results are
	// summarized without their items.
	Comparison(w io.Writer, result *models.ComparisonResult) error

	// Name returns the formatter name
	Name() string
}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, styled bool) (Formatter, error) {
	switch name {
	case "", "human":
		return NewHumanFormatter(styled), nil
	case "json":
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use: human, json)", name)
	}
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// TerminalWidth returns the width of w, or fallback when w is not a terminal
func TerminalWidth(w io.Writer, fallback int) int {
	if file, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}
