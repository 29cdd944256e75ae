package capture

import (
	"sort"
	"sync"

	orderedset "github.com/lindell/go-ordered-set/orderedset"
	"github.com/rdleal/intervalst/interval"

	"github.com/glintedit/glint/internal/span"
)

// Span is one captured range with its capture name.
type Span struct {
	Range span.Range
	Name  Name
}

// Store holds capture spans indexed by interval, so the renderer can ask
// for exactly the captures inside the visible set. Safe for concurrent
// use; grammars write from parse completions while the render path reads.
type Store struct {
	mu    sync.Mutex
	tree  *interval.MultiValueSearchTree[Span, span.Offset]
	names *orderedset.OrderedSet[Name]
	count int
}

func cmpOffset(a, b span.Offset) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// NewStore creates an empty capture store.
func NewStore() *Store {
	return &Store{
		tree:  newTree(),
		names: orderedset.New[Name](),
	}
}

func newTree() *interval.MultiValueSearchTree[Span, span.Offset] {
	// Point intervals allowed: zero-width captures mark positions.
	return interval.NewMultiValueSearchTreeWithOptions[Span, span.Offset](
		cmpOffset, interval.TreeWithIntervalPoint())
}

// Put records a capture span. Empty and invalid ranges are ignored.
func (s *Store) Put(r span.Range, name Name) {
	if !r.IsValid() || name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Insert(r.Start, r.End, Span{Range: r, Name: name})
	s.names.Add(name)
	s.count++
}

// Intersecting returns every capture span overlapping r, ordered by start
// position then name.
func (s *Store) Intersecting(r span.Range) []Span {
	s.mu.Lock()
	found, ok := s.tree.AllIntersections(r.Start, r.End)
	s.mu.Unlock()
	if !ok {
		return nil
	}

	out := make([]Span, 0, len(found))
	for _, sp := range found {
		if sp.Range.Overlaps(r) || (sp.Range.IsEmpty() && r.Contains(sp.Range.Start)) {
			out = append(out, sp)
		}
	}
	sortSpans(out)
	return out
}

// InsideSet returns the capture spans overlapping any range of the
// visible set, each span reported once. This is the lookup the visible
// range tracker's consumers drive on every visibility change.
func (s *Store) InsideSet(set span.IndexSet) []Span {
	seen := make(map[Span]bool)
	var out []Span
	for _, r := range set.Ranges() {
		for _, sp := range s.Intersecting(r) {
			if seen[sp] {
				continue
			}
			seen[sp] = true
			out = append(out, sp)
		}
	}
	sortSpans(out)
	return out
}

// Names returns the distinct capture names in first-seen order.
func (s *Store) Names() []Name {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.names.Values()
}

// Len returns the number of stored spans.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Clear drops every span and name.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = newTree()
	s.names = orderedset.New[Name]()
	s.count = 0
}

func sortSpans(spans []Span) {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Range.Start != spans[j].Range.Start {
			return spans[i].Range.Start < spans[j].Range.Start
		}
		if spans[i].Range.End != spans[j].Range.End {
			return spans[i].Range.End < spans[j].Range.End
		}
		return spans[i].Name < spans[j].Name
	})
}
