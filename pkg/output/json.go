package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sdejongh/namediff/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting
type JSONFormatter struct{}

// JSONListingData is the JSON document for a listing
type JSONListingData struct {
	ID          string   `json:"id"`
	Root        string   `json:"root"`
	Sort        string   `json:"sort"`
	Recursive   bool     `json:"recursive"`
	Total       int      `json:"total"`
	Truncated   bool     `json:"truncated,omitempty"`
	Destination string   `json:"destination,omitempty"`
	Names       []string `json:"names,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// JSONComparisonData is the JSON document for a comparison
type JSONComparisonData struct {
	ID           string       `json:"id"`
	SizeA        int          `json:"size_a"`
	SizeB        int          `json:"size_b"`
	Counts       JSONCounts   `json:"counts"`
	Reduced      bool         `json:"reduced"`
	CombinedSize int64        `json:"combined_size"`
	Sections     *JSONSection `json:"sections,omitempty"`
	CreatedAt    string       `json:"created_at"`
}

// JSONCounts holds the size of each section
type JSONCounts struct {
	OnlyA int `json:"only_a"`
	OnlyB int `json:"only_b"`
	Both  int `json:"both"`
}

// JSONSection holds the items of each section
type JSONSection struct {
	OnlyA []string `json:"only_a"`
	OnlyB []string `json:"only_b"`
	Both  []string `json:"both"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Listing encodes the listing. Written listings omit the names.
func (f *JSONFormatter) Listing(w io.Writer, view ListingView) error {
	l := view.Listing
	data := JSONListingData{
		ID:          l.ID,
		Root:        l.Root,
		Sort:        string(l.Sort),
		Recursive:   l.Recursive,
		Total:       len(l.Names),
		Destination: view.Destination,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
	if view.Destination == "" {
		data.Names = l.Preview(view.Limit)
		data.Truncated = l.Truncated(view.Limit)
	}
	return encode(w, data)
}

// Comparison encodes the result. Reduced results omit the sections.
func (f *JSONFormatter) Comparison(w io.Writer, result *models.ComparisonResult) error {
	data := JSONComparisonData{
		ID:    result.ID,
		SizeA: result.SizeA,
		SizeB: result.SizeB,
		Counts: JSONCounts{
			OnlyA: len(result.OnlyA),
			OnlyB: len(result.OnlyB),
			Both:  len(result.Both),
		},
		Reduced:      result.Reduced,
		CombinedSize: result.CombinedSize,
		CreatedAt:    result.CreatedAt.Format(time.RFC3339),
	}
	if !result.Reduced {
		data.Sections = &JSONSection{
			OnlyA: result.OnlyA,
			OnlyB: result.OnlyB,
			Both:  result.Both,
		}
	}
	return encode(w, data)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
