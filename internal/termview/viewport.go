package termview

import (
	"context"

	"github.com/bits-and-blooms/bitset"

	"github.com/glintedit/glint/internal/event"
	"github.com/glintedit/glint/internal/geom"
	"github.com/glintedit/glint/internal/span"
)

// defaultLayoutPadding is the fixed prefetch margin in offsets. It covers
// slow scrolling; fast scrolling is covered by the tracker's
// full-viewport lookahead.
const defaultLayoutPadding = 256

// TextViewport is the primary viewport over a DocIndex. The scroll axis
// is vertical and measured in character offsets: a line's height equals
// its length, so viewport geometry maps straight onto document ranges.
//
// Scroll and resize publish on the event bus, which is what drives the
// tracker; the viewport itself never recomputes visibility.
type TextViewport struct {
	doc     *DocIndex
	bus     *event.Bus
	padding span.Offset

	topLine int
	rows    int
	cols    int

	// Line-visibility bookkeeping fed back from the tracker.
	visibleLines *bitset.BitSet
}

// ViewportOption configures a TextViewport.
type ViewportOption func(*TextViewport)

// WithBus attaches the event bus scroll and bounds changes publish on.
func WithBus(bus *event.Bus) ViewportOption {
	return func(v *TextViewport) {
		v.bus = bus
	}
}

// WithPadding overrides the fixed layout padding.
func WithPadding(padding span.Offset) ViewportOption {
	return func(v *TextViewport) {
		if padding >= 0 {
			v.padding = padding
		}
	}
}

// NewTextViewport creates a viewport showing the given number of columns
// and rows of the document.
func NewTextViewport(doc *DocIndex, cols, rows int, opts ...ViewportOption) *TextViewport {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	v := &TextViewport{
		doc:          doc,
		padding:      defaultLayoutPadding,
		rows:         rows,
		cols:         cols,
		visibleLines: bitset.New(uint(doc.LineCount())),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VisibleRect returns the on-screen rectangle in content coordinates.
// Y is the first visible line's start offset; the height spans through
// the last visible line's end.
func (v *TextViewport) VisibleRect() geom.Rect {
	first, ok := v.doc.LineAt(v.topLine)
	if !ok {
		return geom.Rect{}
	}
	lastLine := v.topLine + v.rows - 1
	if max := v.doc.LineCount() - 1; lastLine > max {
		lastLine = max
	}
	last, _ := v.doc.LineAt(lastLine)
	return geom.NewRect(0, first.Start, span.Offset(v.cols), last.End-first.Start)
}

// DocumentRange returns the document extent, or false when empty.
func (v *TextViewport) DocumentRange() (span.Range, bool) {
	if v.doc.IsEmpty() {
		return span.Range{}, false
	}
	return span.New(0, v.doc.Len()), true
}

// EstimatedTotalExtent returns the document length; with offset-space
// geometry the estimate is exact.
func (v *TextViewport) EstimatedTotalExtent() span.Offset {
	return v.doc.Len()
}

// LayoutPadding returns the fixed prefetch margin.
func (v *TextViewport) LayoutPadding() span.Offset {
	return v.padding
}

// LineForPosition maps a scroll-axis position to its line's full range.
func (v *TextViewport) LineForPosition(pos span.Offset) (span.Range, bool) {
	r, _, ok := v.doc.LineForOffset(pos)
	return r, ok
}

// TopLine returns the first visible line index.
func (v *TextViewport) TopLine() int {
	return v.topLine
}

// Rows returns the viewport height in lines.
func (v *TextViewport) Rows() int {
	return v.rows
}

// Cols returns the viewport width in cells.
func (v *TextViewport) Cols() int {
	return v.cols
}

// ScrollTo scrolls so the given line is the top line, clamped to keep
// the viewport inside the document. Publishes a scroll change when the
// position actually moves.
func (v *TextViewport) ScrollTo(line int) {
	maxTop := v.doc.LineCount() - v.rows
	if maxTop < 0 {
		maxTop = 0
	}
	if line < 0 {
		line = 0
	}
	if line > maxTop {
		line = maxTop
	}
	if line == v.topLine {
		return
	}

	oldRect := v.VisibleRect()
	v.topLine = line
	newRect := v.VisibleRect()

	if v.bus != nil {
		evt := event.New(event.TopicViewScrollChanged, event.ScrollChanged{
			Position: newRect.Y,
			Delta:    newRect.Y - oldRect.Y,
		}, "termview")
		_ = v.bus.PublishSync(context.Background(), evt)
	}
}

// ScrollBy scrolls by a line delta, clamped.
func (v *TextViewport) ScrollBy(delta int) {
	v.ScrollTo(v.topLine + delta)
}

// SetSize resizes the viewport and publishes the new bounds.
func (v *TextViewport) SetSize(cols, rows int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	if cols == v.cols && rows == v.rows {
		return
	}
	v.cols = cols
	v.rows = rows

	// A shrunken viewport may leave the top line past the end.
	maxTop := v.doc.LineCount() - v.rows
	if maxTop < 0 {
		maxTop = 0
	}
	if v.topLine > maxTop {
		v.topLine = maxTop
	}

	if v.bus != nil {
		evt := event.New(event.TopicViewBoundsChanged, event.BoundsChanged{
			Bounds: v.VisibleRect(),
		}, "termview")
		_ = v.bus.PublishSync(context.Background(), evt)
	}
}

// ApplyVisibleSet records which lines the tracker considers visible.
// Registered as a tracker observer; IsLineVisible answers from the
// resulting bitset in O(1).
func (v *TextViewport) ApplyVisibleSet(visible span.IndexSet) {
	v.visibleLines.ClearAll()
	for _, r := range visible.Ranges() {
		_, first, ok := v.doc.LineForOffset(r.Start)
		if !ok {
			continue
		}
		_, last, ok := v.doc.LineForOffset(r.End - 1)
		if !ok {
			continue
		}
		for i := first; i <= last; i++ {
			v.visibleLines.Set(uint(i))
		}
	}
}

// IsLineVisible reports whether the tracker last marked the line visible.
func (v *TextViewport) IsLineVisible(line int) bool {
	return line >= 0 && v.visibleLines.Test(uint(line))
}
