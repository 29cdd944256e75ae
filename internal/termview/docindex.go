// Package termview adapts a text document and a terminal surface to the
// view layer: it supplies the Viewport and SecondaryViewport the tracker
// consumes, measured in the document's character-offset space.
package termview

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/glintedit/glint/internal/span"
)

// DocIndex is a line-offset index over an immutable text snapshot. Line
// ranges include their trailing newline, so consecutive lines tile the
// offset space without gaps.
type DocIndex struct {
	text       string
	lineStarts []span.Offset
}

// NewDocIndex builds the index for a text snapshot. Empty text yields an
// index with zero lines.
func NewDocIndex(text string) *DocIndex {
	d := &DocIndex{text: text}
	if len(text) == 0 {
		return d
	}
	d.lineStarts = append(d.lineStarts, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' && i+1 < len(text) {
			d.lineStarts = append(d.lineStarts, span.Offset(i+1))
		}
	}
	return d
}

// Text returns the indexed snapshot.
func (d *DocIndex) Text() string {
	return d.text
}

// Len returns the total length in offsets.
func (d *DocIndex) Len() span.Offset {
	return span.Offset(len(d.text))
}

// IsEmpty returns true when the document holds no text.
func (d *DocIndex) IsEmpty() bool {
	return len(d.text) == 0
}

// LineCount returns the number of lines.
func (d *DocIndex) LineCount() int {
	return len(d.lineStarts)
}

// LineAt returns the full range of line i, newline included.
func (d *DocIndex) LineAt(i int) (span.Range, bool) {
	if i < 0 || i >= len(d.lineStarts) {
		return span.Range{}, false
	}
	start := d.lineStarts[i]
	end := d.Len()
	if i+1 < len(d.lineStarts) {
		end = d.lineStarts[i+1]
	}
	return span.FromBounds(start, end), true
}

// LineForOffset returns the line covering the given offset and its index.
func (d *DocIndex) LineForOffset(off span.Offset) (span.Range, int, bool) {
	if off < 0 || off >= d.Len() {
		return span.Range{}, 0, false
	}
	i := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > off
	}) - 1
	r, ok := d.LineAt(i)
	return r, i, ok
}

// LineText returns line i without its trailing newline.
func (d *DocIndex) LineText(i int) string {
	r, ok := d.LineAt(i)
	if !ok {
		return ""
	}
	return strings.TrimSuffix(d.text[r.Start:r.End], "\n")
}

// LineWidth returns the rendered cell width of line i, counting grapheme
// clusters rather than bytes so combining marks and wide runes measure
// correctly.
func (d *DocIndex) LineWidth(i int) int {
	return uniseg.StringWidth(d.LineText(i))
}
