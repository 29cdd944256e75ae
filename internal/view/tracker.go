package view

import (
	"context"

	"github.com/glintedit/glint/internal/event"
	"github.com/glintedit/glint/internal/geom"
	"github.com/glintedit/glint/internal/log"
	"github.com/glintedit/glint/internal/span"
)

// Tracker maintains the visible-index set for one viewport pair and
// notifies observers exactly once per distinct change.
//
// The tracker is single-threaded by contract: recomputation, notification,
// and observer management all happen on the execution context that
// delivers layout events. It holds non-owning references to its viewports
// and never assumes they outlive it.
type Tracker struct {
	viewport  Viewport
	secondary SecondaryViewport
	axis      geom.Axis

	visible  span.IndexSet
	attached bool

	observers []registration
	nextID    uint64

	bus     *event.Bus
	busSubs []*event.Subscription

	logger *log.Logger
}

type registration struct {
	id uint64
	fn Observer
}

// Option configures a tracker at construction time.
type Option func(*Tracker)

// WithSecondary attaches a secondary viewport whose range is unioned into
// the visible set while it is not hidden.
func WithSecondary(sv SecondaryViewport) Option {
	return func(t *Tracker) {
		t.secondary = sv
	}
}

// WithAxis selects the scroll axis. The default is vertical.
func WithAxis(axis geom.Axis) Option {
	return func(t *Tracker) {
		t.axis = axis
	}
}

// WithLogger sets the tracker's logger.
func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) {
		t.logger = l
	}
}

// NewTracker creates a tracker for the given viewport. A nil viewport is
// allowed and yields a tracker that starts detached.
func NewTracker(vp Viewport, opts ...Option) *Tracker {
	t := &Tracker{
		viewport: vp,
		axis:     geom.Vertical,
		attached: vp != nil,
		logger:   log.Null,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// VisibleSet returns a copy of the current visible set.
func (t *Tracker) VisibleSet() span.IndexSet {
	return t.visible.Clone()
}

// IsAttached reports whether the tracker still follows a viewport.
func (t *Tracker) IsAttached() bool {
	return t.attached
}

// Observe registers an observer. Observers are notified synchronously, in
// registration order, every time the visible set changes.
func (t *Tracker) Observe(fn Observer) *Subscription {
	if fn == nil {
		return &Subscription{}
	}
	t.nextID++
	t.observers = append(t.observers, registration{id: t.nextID, fn: fn})
	return &Subscription{id: t.nextID, tracker: t}
}

// unsubscribe removes an observer by registration ID.
func (t *Tracker) unsubscribe(id uint64) {
	for i, reg := range t.observers {
		if reg.id == id {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// BindBus subscribes the tracker to the viewport layout topics so that
// frame, bounds, and scroll changes trigger recomputation. The
// subscriptions are released by Detach.
func (t *Tracker) BindBus(bus *event.Bus) error {
	if bus == nil || !t.attached {
		return nil
	}

	handler := event.HandlerFunc(func(_ context.Context, _ any) error {
		t.Recompute()
		return nil
	})

	for _, topic := range []event.Topic{
		event.TopicViewFrameChanged,
		event.TopicViewBoundsChanged,
		event.TopicViewScrollChanged,
	} {
		sub, err := bus.Subscribe(topic, handler)
		if err != nil {
			return err
		}
		t.busSubs = append(t.busSubs, sub)
	}
	t.bus = bus
	return nil
}

// Detach permanently disconnects the tracker from its viewports and event
// source. After Detach every Recompute is a no-op and no observer is
// notified again. The transition is one-way.
func (t *Tracker) Detach() {
	if !t.attached && t.viewport == nil {
		return
	}
	t.attached = false
	t.viewport = nil
	t.secondary = nil
	for _, sub := range t.busSubs {
		sub.Cancel()
	}
	t.busSubs = nil
	t.bus = nil
	t.logger.Debug("tracker detached")
}

// Recompute rebuilds the visible set from the current viewport geometry.
// Every failure mode is a silent no-op: a missing viewport, an empty
// document, or an unresolvable line position leaves the existing set
// unchanged and skips notification. The next valid layout event
// self-corrects the set.
func (t *Tracker) Recompute() {
	if !t.attached || t.viewport == nil {
		return
	}
	vp := t.viewport

	if _, ok := vp.DocumentRange(); !ok {
		return
	}

	rect := vp.VisibleRect()

	// A full-viewport lookahead keeps highlighting ahead of the next
	// frame during fast scrolling; the fixed layout padding covers slow
	// scrolling with minimal over-computation.
	padding := vp.LayoutPadding()
	if extent := rect.Extent(t.axis); extent > padding {
		padding = extent
	}

	padded := rect.ExpandAlong(t.axis, padding, padding)
	clamped := padded.ClampAlong(t.axis, 0, vp.EstimatedTotalExtent())

	window := clamped.Span(t.axis)
	if window.IsEmpty() {
		return
	}

	nearLine, ok := vp.LineForPosition(window.Start)
	if !ok {
		return
	}
	farLine, ok := vp.LineForPosition(window.End - 1)
	if !ok {
		return
	}

	// A partially visible line counts as fully visible: the range runs
	// to the far line's end, not the padded boundary.
	next := span.NewIndexSet(span.FromBounds(nearLine.Start, farLine.End))

	if t.secondary != nil && !t.secondary.IsHidden() {
		if r, ok := t.secondary.VisibleRange(); ok {
			next.Insert(r)
		}
	}

	if next.Equals(t.visible) {
		return
	}
	t.visible = next
	t.logger.Debug("visible set changed: %s", next)
	t.notify(next)
}

// notify delivers the new set to every observer in registration order,
// then publishes it on the bus if one is bound.
func (t *Tracker) notify(visible span.IndexSet) {
	// Copy so an observer cancelling mid-delivery cannot skip a peer.
	regs := make([]registration, len(t.observers))
	copy(regs, t.observers)
	for _, reg := range regs {
		reg.fn(visible.Clone())
	}

	if t.bus != nil {
		evt := event.New(event.TopicViewVisibleSetChanged, event.VisibleSetChanged{
			Visible: visible.Clone(),
		}, "view.tracker")
		_ = t.bus.PublishSync(context.Background(), evt)
	}
}
