// Package view tracks which document ranges are visible in a scrollable
// viewport and notifies consumers when that set changes. The tracker owns
// nothing but its own bookkeeping: viewports, listeners, and the event
// source all live outside it, and every access tolerates their absence.
package view

import (
	"github.com/glintedit/glint/internal/geom"
	"github.com/glintedit/glint/internal/span"
)

// Viewport is the primary scrollable surface showing a window into the
// document. All positions are in content coordinates, which share the
// document's character-offset space along the scroll axis.
type Viewport interface {
	// VisibleRect returns the on-screen rectangle in content coordinates.
	VisibleRect() geom.Rect

	// DocumentRange returns the full document extent, or false when no
	// document is loaded.
	DocumentRange() (span.Range, bool)

	// EstimatedTotalExtent returns the estimated total content size along
	// the scroll axis, used to clamp prefetch lookahead.
	EstimatedTotalExtent() span.Offset

	// LayoutPadding returns the fixed prefetch margin added around the
	// visible rectangle before computing visibility.
	LayoutPadding() span.Offset

	// LineForPosition maps a position on the scroll axis to the full
	// range of the line at that position. Returns false when the
	// position is outside the document.
	LineForPosition(pos span.Offset) (span.Range, bool)
}

// SecondaryViewport is an auxiliary view with its own visible range,
// typically a minimap. It may be hidden, in which case its range does not
// contribute to visibility.
type SecondaryViewport interface {
	// IsHidden returns true when the view contributes nothing.
	IsHidden() bool

	// VisibleRange returns the range the view currently shows, or false
	// when it cannot report one.
	VisibleRange() (span.Range, bool)
}

// Observer receives the new visible set after the tracker adopts it.
// Delivery is synchronous on the call stack of the event that triggered
// the recompute; an observer must not force a layout change that alters
// the viewport rectangle, or it will re-enter the tracker.
type Observer func(visible span.IndexSet)
