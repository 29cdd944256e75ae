// Package span provides the one-dimensional index primitives the view layer
// works in: half-open character ranges and normalized sets of them. Offsets
// count characters from the start of the document; the scroll axis and the
// character axis share this space.
package span

import (
	"errors"
	"fmt"
)

// Sentinel errors for range validation.
var (
	ErrNegativeOffset = errors.New("negative offset")
	ErrInvertedRange  = errors.New("inverted range")
)

// Offset is a position in the document's character-offset space.
type Offset int64

// Range represents a span of character offsets.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Offset // Inclusive start position
	End   Offset // Exclusive end position
}

// New creates a Range from a location and a length.
func New(location, length Offset) Range {
	return Range{Start: location, End: location + length}
}

// FromBounds creates a Range from start and end offsets.
// Inverted bounds are swapped.
func FromBounds(start, end Offset) Range {
	if end < start {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// Checked creates a Range from a location and a length, rejecting
// negative locations and negative lengths.
func Checked(location, length Offset) (Range, error) {
	if location < 0 {
		return Range{}, fmt.Errorf("location %d: %w", location, ErrNegativeOffset)
	}
	if length < 0 {
		return Range{}, fmt.Errorf("length %d: %w", length, ErrInvertedRange)
	}
	return Range{Start: location, End: location + length}, nil
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range.
func (r Range) Len() Offset {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is valid (0 <= Start <= End).
func (r Range) IsValid() bool {
	return r.Start >= 0 && r.Start <= r.End
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset Offset) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsRange returns true if the given range is entirely within this range.
func (r Range) ContainsRange(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Overlaps returns true if this range overlaps with another range.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Adjacent returns true if the ranges share an edge without overlapping.
func (r Range) Adjacent(other Range) bool {
	return r.End == other.Start || other.End == r.Start
}

// Touches returns true if the ranges overlap or are adjacent, meaning a
// union of the two forms a single contiguous range.
func (r Range) Touches(other Range) bool {
	return r.Overlaps(other) || r.Adjacent(other)
}

// Intersect returns the intersection of two ranges, or an empty range if
// they don't overlap.
func (r Range) Intersect(other Range) Range {
	start := r.Start
	if other.Start > start {
		start = other.Start
	}
	end := r.End
	if other.End < end {
		end = other.End
	}
	if start >= end {
		return Range{Start: start, End: start}
	}
	return Range{Start: start, End: end}
}

// Union returns the smallest range that contains both ranges.
func (r Range) Union(other Range) Range {
	start := r.Start
	if other.Start < start {
		start = other.Start
	}
	end := r.End
	if other.End > end {
		end = other.End
	}
	return Range{Start: start, End: end}
}

// Shift returns a new range shifted by the given delta.
func (r Range) Shift(delta Offset) Range {
	return Range{
		Start: r.Start + delta,
		End:   r.End + delta,
	}
}

// Clamp returns the range limited to [lo, hi]. The result may be empty.
func (r Range) Clamp(lo, hi Offset) Range {
	start := r.Start
	if start < lo {
		start = lo
	}
	end := r.End
	if end > hi {
		end = hi
	}
	if end < start {
		end = start
	}
	return Range{Start: start, End: end}
}
