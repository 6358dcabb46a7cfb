// Package labels - ordered label tables and display colors for detections.
//
// A Table is loaded once at startup and treated as immutable afterwards; the
// post-processor receives it by value and never mutates it, so one table can
// back any number of concurrent calls.
package labels

import (
	"image/color"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Table is an ordered, immutable list of class labels. A model's class index
// is a direct index into the table.
type Table struct {
	names []string
}

// NewTable creates a Table from an ordered label list. The slice is copied so
// later mutation of the argument cannot leak into an in-flight call.
func NewTable(names []string) Table {
	owned := make([]string, len(names))
	copy(owned, names)
	return Table{names: owned}
}

// Load reads a newline-separated label file, one label per line. Blank lines
// are skipped; order is preserved.
//
// Arguments:
//   - path: Path to the label file.
//
// Returns:
//   - Table: The loaded label table.
//   - error: An error if the file cannot be read or holds no labels.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, errors.Wrapf(err, "failed to read label file %s", path)
	}

	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if len(names) == 0 {
		return Table{}, errors.Errorf("label file %s contains no labels", path)
	}
	return Table{names: names}, nil
}

// Count returns the number of labels in the table.
func (t Table) Count() int { return len(t.names) }

// Contains reports whether i is a valid class index for this table.
func (t Table) Contains(i int) bool { return i >= 0 && i < len(t.names) }

// Name returns the label at index i. Callers validate the index with
// Contains first; an invalid index panics like any slice access.
func (t Table) Name(i int) string { return t.names[i] }

// FallbackColor is used for labels with no palette entry.
var FallbackColor = color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}

// Palette maps labels to their display color. Like Table it is loaded once
// and read-only afterwards.
type Palette map[string]color.NRGBA

// DefaultPalette returns the display colors for the PII classes the
// segmentation model is trained on.
func DefaultPalette() Palette {
	return Palette{
		"license_plate": {R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
		"face":          {R: 0x1e, G: 0x88, B: 0xe5, A: 0xff},
		"person":        {R: 0x43, G: 0xa0, B: 0x47, A: 0xff},
		"document":      {R: 0xfb, G: 0x8c, B: 0x00, A: 0xff},
		"signature":     {R: 0x8e, G: 0x24, B: 0xaa, A: 0xff},
		"screen":        {R: 0x00, G: 0xac, B: 0xc1, A: 0xff},
	}
}

// Color resolves the display color for a label, falling back to
// FallbackColor for unmapped labels.
func (p Palette) Color(label string) color.NRGBA {
	if c, ok := p[label]; ok {
		return c
	}
	return FallbackColor
}
