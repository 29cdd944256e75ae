package span

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	r := New(100, 50)
	if r.Start != 100 || r.End != 150 {
		t.Errorf("New(100, 50) = %s, want [100:150)", r)
	}
	if r.Len() != 50 {
		t.Errorf("Len() = %d, want 50", r.Len())
	}
}

func TestFromBounds(t *testing.T) {
	t.Run("normal order", func(t *testing.T) {
		r := FromBounds(10, 20)
		if r.Start != 10 || r.End != 20 {
			t.Errorf("FromBounds(10, 20) = %s, want [10:20)", r)
		}
	})

	t.Run("inverted order", func(t *testing.T) {
		r := FromBounds(20, 10)
		if r.Start != 10 || r.End != 20 {
			t.Errorf("FromBounds(20, 10) should swap to [10:20), got %s", r)
		}
	})
}

func TestChecked(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := Checked(5, 10)
		if err != nil {
			t.Fatalf("Checked(5, 10) returned error: %v", err)
		}
		if r.Start != 5 || r.End != 15 {
			t.Errorf("Checked(5, 10) = %s, want [5:15)", r)
		}
	})

	t.Run("negative location", func(t *testing.T) {
		_, err := Checked(-1, 10)
		if !errors.Is(err, ErrNegativeOffset) {
			t.Errorf("Checked(-1, 10) error = %v, want ErrNegativeOffset", err)
		}
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := Checked(5, -1)
		if !errors.Is(err, ErrInvertedRange) {
			t.Errorf("Checked(5, -1) error = %v, want ErrInvertedRange", err)
		}
	})
}

func TestRangeString(t *testing.T) {
	r := FromBounds(3, 9)
	if r.String() != "[3:9)" {
		t.Errorf("String() = %q, want %q", r.String(), "[3:9)")
	}
}

func TestRangeContains(t *testing.T) {
	r := FromBounds(10, 20)

	tests := []struct {
		offset Offset
		want   bool
	}{
		{9, false},
		{10, true},
		{15, true},
		{19, true},
		{20, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.offset); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestRangeOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Range
		want bool
	}{
		{"disjoint", FromBounds(0, 10), FromBounds(20, 30), false},
		{"adjacent", FromBounds(0, 10), FromBounds(10, 20), false},
		{"overlapping", FromBounds(0, 15), FromBounds(10, 20), true},
		{"contained", FromBounds(0, 30), FromBounds(10, 20), true},
		{"identical", FromBounds(5, 10), FromBounds(5, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRangeAdjacent(t *testing.T) {
	a := FromBounds(0, 10)
	b := FromBounds(10, 20)
	c := FromBounds(11, 20)

	if !a.Adjacent(b) {
		t.Error("ranges sharing an edge should be adjacent")
	}
	if !b.Adjacent(a) {
		t.Error("adjacency should be symmetric")
	}
	if a.Adjacent(c) {
		t.Error("ranges with a gap should not be adjacent")
	}
	if !a.Touches(b) {
		t.Error("adjacent ranges should touch")
	}
	if a.Touches(c) {
		t.Error("separated ranges should not touch")
	}
}

func TestRangeIntersect(t *testing.T) {
	a := FromBounds(0, 15)
	b := FromBounds(10, 20)

	got := a.Intersect(b)
	if got.Start != 10 || got.End != 15 {
		t.Errorf("Intersect = %s, want [10:15)", got)
	}

	c := FromBounds(30, 40)
	if !a.Intersect(c).IsEmpty() {
		t.Errorf("disjoint Intersect = %s, want empty", a.Intersect(c))
	}
}

func TestRangeUnion(t *testing.T) {
	a := FromBounds(0, 10)
	b := FromBounds(20, 30)

	got := a.Union(b)
	if got.Start != 0 || got.End != 30 {
		t.Errorf("Union = %s, want [0:30)", got)
	}
}

func TestRangeShift(t *testing.T) {
	r := FromBounds(10, 20).Shift(5)
	if r.Start != 15 || r.End != 25 {
		t.Errorf("Shift(5) = %s, want [15:25)", r)
	}

	r = FromBounds(10, 20).Shift(-5)
	if r.Start != 5 || r.End != 15 {
		t.Errorf("Shift(-5) = %s, want [5:15)", r)
	}
}

func TestRangeClamp(t *testing.T) {
	tests := []struct {
		name   string
		r      Range
		lo, hi Offset
		want   Range
	}{
		{"inside", FromBounds(10, 20), 0, 100, FromBounds(10, 20)},
		{"clips low", FromBounds(-10, 20), 0, 100, FromBounds(0, 20)},
		{"clips high", FromBounds(10, 200), 0, 100, FromBounds(10, 100)},
		{"fully below", FromBounds(-20, -10), 0, 100, Range{Start: 0, End: 0}},
		{"fully above", FromBounds(200, 300), 0, 100, Range{Start: 200, End: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Clamp(tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%d, %d) = %s, want %s", tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
