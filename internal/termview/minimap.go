package termview

import (
	"github.com/chewxy/math32"

	"github.com/glintedit/glint/internal/span"
)

// Minimap is the secondary viewport: a compressed overview where each
// on-screen row stands for several document lines. It reports its own
// visible range and can be hidden, in which case it contributes nothing
// to the visible set.
type Minimap struct {
	doc     *DocIndex
	rows    int
	scale   int
	topLine int
	hidden  bool
}

// NewMinimap creates a minimap showing rows*scale document lines.
// Scale is the number of document lines per minimap row.
func NewMinimap(doc *DocIndex, rows, scale int) *Minimap {
	if rows < 1 {
		rows = 1
	}
	if scale < 1 {
		scale = 1
	}
	return &Minimap{doc: doc, rows: rows, scale: scale}
}

// IsHidden reports whether the minimap is hidden.
func (m *Minimap) IsHidden() bool {
	return m.hidden
}

// SetHidden shows or hides the minimap.
func (m *Minimap) SetHidden(hidden bool) {
	m.hidden = hidden
}

// Lines returns how many document lines the minimap can show.
func (m *Minimap) Lines() int {
	return m.rows * m.scale
}

// Scale returns the number of document lines per minimap row.
func (m *Minimap) Scale() int {
	return m.scale
}

// TopLine returns the first document line the minimap shows.
func (m *Minimap) TopLine() int {
	return m.topLine
}

// VisibleRange returns the document range the minimap currently shows,
// or false when the document is empty.
func (m *Minimap) VisibleRange() (span.Range, bool) {
	if m.doc.IsEmpty() {
		return span.Range{}, false
	}
	first, ok := m.doc.LineAt(m.topLine)
	if !ok {
		return span.Range{}, false
	}
	lastLine := m.topLine + m.Lines() - 1
	if max := m.doc.LineCount() - 1; lastLine > max {
		lastLine = max
	}
	last, _ := m.doc.LineAt(lastLine)
	return span.FromBounds(first.Start, last.End), true
}

// SyncTo centers the minimap window on the given document line, clamped
// to the document.
func (m *Minimap) SyncTo(centerLine int) {
	top := centerLine - int(math32.Round(float32(m.Lines())/2))
	maxTop := m.doc.LineCount() - m.Lines()
	if maxTop < 0 {
		maxTop = 0
	}
	if top < 0 {
		top = 0
	}
	if top > maxTop {
		top = maxTop
	}
	m.topLine = top
}

// RowForLine maps a document line to its minimap row, or false when the
// line is outside the minimap window.
func (m *Minimap) RowForLine(line int) (int, bool) {
	if line < m.topLine || line >= m.topLine+m.Lines() {
		return 0, false
	}
	return (line - m.topLine) / m.scale, true
}
