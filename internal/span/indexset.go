package span

import "strings"

// IndexSet is an ordered set of disjoint, non-adjacent ranges. It stays
// normalized on every mutation: inserting a range that overlaps or touches
// existing ranges merges them into one, so two sets covering the same
// offsets always compare equal range-for-range.
//
// The zero value is an empty set ready for use.
type IndexSet struct {
	ranges []Range
}

// NewIndexSet creates a set containing the given ranges, merged and
// normalized.
func NewIndexSet(ranges ...Range) IndexSet {
	var s IndexSet
	for _, r := range ranges {
		s.Insert(r)
	}
	return s
}

// Insert adds a range to the set, merging it with any ranges it overlaps
// or touches. Empty ranges are ignored; a negative start is clamped to
// zero.
func (s *IndexSet) Insert(r Range) {
	if r.End < r.Start {
		r.Start, r.End = r.End, r.Start
	}
	if r.Start < 0 {
		r.Start = 0
	}
	if r.IsEmpty() || !r.IsValid() {
		return
	}

	out := make([]Range, 0, len(s.ranges)+1)
	inserted := false
	for _, cur := range s.ranges {
		switch {
		case cur.End < r.Start:
			// Strictly before the new range.
			out = append(out, cur)
		case r.End < cur.Start:
			// Strictly after: the merged range is final.
			if !inserted {
				out = append(out, r)
				inserted = true
			}
			out = append(out, cur)
		default:
			// Overlapping or adjacent: fold into the new range.
			r = r.Union(cur)
		}
	}
	if !inserted {
		out = append(out, r)
	}
	s.ranges = out
}

// InsertSet adds every range of other to the set.
func (s *IndexSet) InsertSet(other IndexSet) {
	for _, r := range other.ranges {
		s.Insert(r)
	}
}

// Union returns a new set covering the offsets of both sets.
func (s IndexSet) Union(other IndexSet) IndexSet {
	out := s.Clone()
	out.InsertSet(other)
	return out
}

// Contains returns true if the offset is covered by the set.
func (s IndexSet) Contains(offset Offset) bool {
	for _, r := range s.ranges {
		if r.Contains(offset) {
			return true
		}
		if r.Start > offset {
			break
		}
	}
	return false
}

// ContainsRange returns true if the range is entirely covered by a single
// range of the set.
func (s IndexSet) ContainsRange(r Range) bool {
	for _, cur := range s.ranges {
		if cur.ContainsRange(r) {
			return true
		}
	}
	return false
}

// Intersects returns true if any range of the set overlaps r.
func (s IndexSet) Intersects(r Range) bool {
	for _, cur := range s.ranges {
		if cur.Overlaps(r) {
			return true
		}
		if cur.Start >= r.End {
			break
		}
	}
	return false
}

// Ranges returns the normalized ranges in ascending order. The returned
// slice is a copy.
func (s IndexSet) Ranges() []Range {
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Len returns the number of disjoint ranges in the set.
func (s IndexSet) Len() int {
	return len(s.ranges)
}

// Extent returns the total number of offsets covered by the set.
func (s IndexSet) Extent() Offset {
	var total Offset
	for _, r := range s.ranges {
		total += r.Len()
	}
	return total
}

// IsEmpty returns true if the set covers no offsets.
func (s IndexSet) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Equals returns true if both sets contain exactly the same ranges.
// Because sets are always normalized, this is equivalent to covering the
// same offsets.
func (s IndexSet) Equals(other IndexSet) bool {
	if len(s.ranges) != len(other.ranges) {
		return false
	}
	for i, r := range s.ranges {
		if r != other.ranges[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s IndexSet) Clone() IndexSet {
	return IndexSet{ranges: s.Ranges()}
}

// String returns a human-readable representation of the set.
func (s IndexSet) String() string {
	if len(s.ranges) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range s.ranges {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte('}')
	return b.String()
}
