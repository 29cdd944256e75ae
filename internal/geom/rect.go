// Package geom provides content-coordinate geometry for the view layer.
// Rectangles are measured in the same offset units the document index
// space uses, so a rectangle edge can be handed directly to a
// position-to-line lookup.
package geom

import (
	"fmt"

	"github.com/glintedit/glint/internal/span"
)

// Axis selects which rectangle dimension scrolling moves along.
type Axis int

const (
	// Vertical scrolls along Y; the common editor layout.
	Vertical Axis = iota

	// Horizontal scrolls along X; single-line or rotated layouts.
	Horizontal
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Rect represents a rectangular region in content coordinates.
type Rect struct {
	X      span.Offset // Leading edge on the horizontal axis (inclusive)
	Y      span.Offset // Leading edge on the vertical axis (inclusive)
	Width  span.Offset
	Height span.Offset
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height span.Offset) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Equals returns true if both rectangles have the same position and size.
func (r Rect) Equals(other Rect) bool {
	return r == other
}

// Min returns the leading edge along the given axis.
func (r Rect) Min(axis Axis) span.Offset {
	if axis == Horizontal {
		return r.X
	}
	return r.Y
}

// Max returns the trailing edge along the given axis (exclusive).
func (r Rect) Max(axis Axis) span.Offset {
	if axis == Horizontal {
		return r.X + r.Width
	}
	return r.Y + r.Height
}

// Extent returns the rectangle's size along the given axis.
func (r Rect) Extent(axis Axis) span.Offset {
	if axis == Horizontal {
		return r.Width
	}
	return r.Height
}

// Span returns the rectangle's coverage along the given axis as a
// half-open range.
func (r Rect) Span(axis Axis) span.Range {
	return span.FromBounds(r.Min(axis), r.Max(axis))
}

// ExpandAlong returns a rectangle grown by lead before the leading edge
// and trail past the trailing edge of the given axis. The cross axis is
// untouched.
func (r Rect) ExpandAlong(axis Axis, lead, trail span.Offset) Rect {
	if axis == Horizontal {
		return Rect{X: r.X - lead, Y: r.Y, Width: r.Width + lead + trail, Height: r.Height}
	}
	return Rect{X: r.X, Y: r.Y - lead, Width: r.Width, Height: r.Height + lead + trail}
}

// ClampAlong returns a rectangle whose edges along the given axis are
// limited to [lo, hi]. The result may be empty.
func (r Rect) ClampAlong(axis Axis, lo, hi span.Offset) Rect {
	clipped := r.Span(axis).Clamp(lo, hi)
	if axis == Horizontal {
		return Rect{X: clipped.Start, Y: r.Y, Width: clipped.Len(), Height: r.Height}
	}
	return Rect{X: r.X, Y: clipped.Start, Width: r.Width, Height: clipped.Len()}
}
