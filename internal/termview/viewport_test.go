package termview

import (
	"context"
	"strings"
	"testing"

	"github.com/glintedit/glint/internal/event"
	"github.com/glintedit/glint/internal/span"
	"github.com/glintedit/glint/internal/view"
)

// tenLines builds "line-0\n" ... "line-9\n": 10 lines of 7 offsets each.
func tenLines() *DocIndex {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("line-")
		b.WriteByte(byte('0' + i))
		b.WriteByte('\n')
	}
	return NewDocIndex(b.String())
}

func TestTextViewportImplementsViewport(t *testing.T) {
	var _ view.Viewport = (*TextViewport)(nil)
	var _ view.SecondaryViewport = (*Minimap)(nil)
}

func TestTextViewportVisibleRect(t *testing.T) {
	vp := NewTextViewport(tenLines(), 80, 3)

	rect := vp.VisibleRect()
	if rect.Y != 0 || rect.Height != 21 {
		t.Errorf("rect = %s, want Y=0 Height=21", rect)
	}

	vp.ScrollTo(2)
	rect = vp.VisibleRect()
	if rect.Y != 14 || rect.Height != 21 {
		t.Errorf("rect after scroll = %s, want Y=14 Height=21", rect)
	}
}

func TestTextViewportScrollClamps(t *testing.T) {
	vp := NewTextViewport(tenLines(), 80, 3)

	vp.ScrollTo(-5)
	if vp.TopLine() != 0 {
		t.Errorf("TopLine = %d after negative scroll", vp.TopLine())
	}

	vp.ScrollTo(100)
	if vp.TopLine() != 7 {
		t.Errorf("TopLine = %d, want 7 (last full page)", vp.TopLine())
	}

	vp.ScrollBy(-2)
	if vp.TopLine() != 5 {
		t.Errorf("TopLine = %d after ScrollBy(-2), want 5", vp.TopLine())
	}
}

func TestTextViewportPublishesScroll(t *testing.T) {
	bus := event.NewBus()
	vp := NewTextViewport(tenLines(), 80, 3, WithBus(bus))

	var got event.ScrollChanged
	deliveries := 0
	if _, err := bus.Subscribe(event.TopicViewScrollChanged,
		event.Typed(func(_ context.Context, e event.Event[event.ScrollChanged]) error {
			got = e.Payload
			deliveries++
			return nil
		})); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	vp.ScrollTo(2)
	if deliveries != 1 {
		t.Fatalf("deliveries = %d, want 1", deliveries)
	}
	if got.Position != 14 || got.Delta != 14 {
		t.Errorf("payload = %+v, want Position=14 Delta=14", got)
	}

	// Scrolling to the current position is silent.
	vp.ScrollTo(2)
	if deliveries != 1 {
		t.Errorf("redundant scroll published: %d deliveries", deliveries)
	}
}

func TestTextViewportPublishesBounds(t *testing.T) {
	bus := event.NewBus()
	vp := NewTextViewport(tenLines(), 80, 3, WithBus(bus))

	deliveries := 0
	if _, err := bus.Subscribe(event.TopicViewBoundsChanged,
		event.HandlerFunc(func(_ context.Context, _ any) error {
			deliveries++
			return nil
		})); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	vp.SetSize(100, 5)
	if deliveries != 1 {
		t.Errorf("deliveries = %d, want 1", deliveries)
	}
	if vp.Rows() != 5 || vp.Cols() != 100 {
		t.Errorf("size = %dx%d", vp.Cols(), vp.Rows())
	}

	vp.SetSize(100, 5)
	if deliveries != 1 {
		t.Errorf("redundant resize published: %d deliveries", deliveries)
	}
}

func TestTextViewportDrivesTracker(t *testing.T) {
	bus := event.NewBus()
	doc := tenLines()
	vp := NewTextViewport(doc, 80, 3, WithBus(bus), WithPadding(0))

	tracker := view.NewTracker(vp)
	if err := tracker.BindBus(bus); err != nil {
		t.Fatalf("BindBus failed: %v", err)
	}
	tracker.Observe(vp.ApplyVisibleSet)
	tracker.Recompute()

	// Padding equals the rect height (21), so lines 0..5 are visible
	// from the top: window [0, 42) of a 70-offset document.
	if !vp.IsLineVisible(0) || !vp.IsLineVisible(5) {
		t.Error("initial visible lines not marked")
	}
	if vp.IsLineVisible(9) {
		t.Error("line far below viewport marked visible")
	}

	vp.ScrollTo(7)
	if !vp.IsLineVisible(9) {
		t.Error("scroll did not update visible lines")
	}
	if vp.IsLineVisible(0) {
		t.Error("line far above viewport still marked visible")
	}
}

func TestTextViewportEmptyDocument(t *testing.T) {
	vp := NewTextViewport(NewDocIndex(""), 80, 3)

	if _, ok := vp.DocumentRange(); ok {
		t.Error("empty document reported a range")
	}
	if rect := vp.VisibleRect(); !rect.IsEmpty() {
		t.Errorf("empty document rect = %s", rect)
	}
}

func TestApplyVisibleSetMarksLineSpans(t *testing.T) {
	vp := NewTextViewport(tenLines(), 80, 3)

	vp.ApplyVisibleSet(span.NewIndexSet(span.FromBounds(14, 28), span.FromBounds(63, 70)))

	for line, want := range map[int]bool{0: false, 1: false, 2: true, 3: true, 4: false, 9: true} {
		if got := vp.IsLineVisible(line); got != want {
			t.Errorf("IsLineVisible(%d) = %v, want %v", line, got, want)
		}
	}
}
