// Package brackets finds matching bracket pairs and derives their visual
// emphasis. Matching is lexical: the scanner does not know about strings
// or comments, so a bracket inside a string literal counts like any
// other. That trade keeps matching O(distance) with no grammar in the
// loop; grammar-aware matching belongs to the syntax layer.
package brackets

import (
	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/span"
	"github.com/glintedit/glint/internal/style"
	"github.com/glintedit/glint/internal/theme"
)

// Kind identifies a bracket family.
type Kind int

const (
	Round  Kind = iota // ()
	Square             // []
	Curly              // {}
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Round:
		return "round"
	case Square:
		return "square"
	case Curly:
		return "curly"
	default:
		return "unknown"
	}
}

// Pair is one matched bracket pair. Depth counts enclosing pairs at the
// opening bracket, zero-based, and drives rainbow emphasis.
type Pair struct {
	Open  span.Range
	Close span.Range
	Kind  Kind
	Depth int
}

var bracketKinds = map[byte]struct {
	kind   Kind
	opener bool
}{
	'(': {Round, true}, ')': {Round, false},
	'[': {Square, true}, ']': {Square, false},
	'{': {Curly, true}, '}': {Curly, false},
}

// Match finds the pair for the bracket at offset. When the character at
// offset is not a bracket, the character just before it is tried, so a
// cursor sitting after a bracket still matches. Returns false for
// unbalanced brackets and non-bracket positions.
func Match(text string, offset span.Offset) (Pair, bool) {
	pos, ok := bracketAt(text, offset)
	if !ok {
		return Pair{}, false
	}

	b := bracketKinds[text[pos]]
	var openPos, closePos span.Offset
	if b.opener {
		openPos = pos
		cp, ok := scanForward(text, pos)
		if !ok {
			return Pair{}, false
		}
		closePos = cp
	} else {
		closePos = pos
		op, ok := scanBackward(text, pos)
		if !ok {
			return Pair{}, false
		}
		openPos = op
	}

	return Pair{
		Open:  span.New(openPos, 1),
		Close: span.New(closePos, 1),
		Kind:  b.kind,
		Depth: depthAt(text, openPos),
	}, true
}

// PairsInSet finds bracket pairs inside the visible set, the consumer
// path of the visible-range tracker: only visible ranges are scanned.
// Pairs that open inside a visible range but close outside it are
// skipped, as are pairs opened before the range began; depth is counted
// within the scanned range.
func PairsInSet(text string, set span.IndexSet) []Pair {
	var pairs []Pair
	type openBracket struct {
		kind Kind
		pos  span.Offset
	}

	for _, r := range set.Ranges() {
		r = r.Clamp(0, span.Offset(len(text)))
		var stack []openBracket
		for pos := r.Start; pos < r.End; pos++ {
			b, ok := bracketKinds[text[pos]]
			if !ok {
				continue
			}
			if b.opener {
				stack = append(stack, openBracket{kind: b.kind, pos: pos})
				continue
			}
			// Pop until a matching opener; mismatched brackets in
			// between stay unclosed.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == b.kind {
					pairs = append(pairs, Pair{
						Open:  span.New(top.pos, 1),
						Close: span.New(pos, 1),
						Kind:  b.kind,
						Depth: len(stack),
					})
					break
				}
			}
		}
	}
	return pairs
}

// rainbowAccents cycles with nesting depth.
var rainbowAccents = []style.Color{
	style.RGB(255, 215, 0),   // gold
	style.RGB(218, 112, 214), // orchid
	style.RGB(100, 200, 255), // sky
	style.RGB(152, 251, 152), // mint
	style.RGB(255, 160, 122), // salmon
}

// Emphasis returns the style for a matched pair at the given depth:
// the theme's bracket style pushed toward a depth-cycled accent, over a
// softened selection background.
func Emphasis(th *theme.Theme, depth int) style.Style {
	if depth < 0 {
		depth = 0
	}
	base := th.StyleFor(capture.PunctuationBracket)
	accent := rainbowAccents[depth%len(rainbowAccents)]

	fg := base.Foreground
	if fg.IsDefault() {
		fg = th.Foreground
	}
	return base.
		WithForeground(fg.Blend(accent, 0.6)).
		WithBackground(style.Mix(style.BlendMultiply, th.Selection, accent)).
		Bold()
}

// bracketAt resolves the bracket position for a cursor offset, looking
// at the offset itself and then one position back.
func bracketAt(text string, offset span.Offset) (span.Offset, bool) {
	n := span.Offset(len(text))
	if offset >= 0 && offset < n {
		if _, ok := bracketKinds[text[offset]]; ok {
			return offset, true
		}
	}
	if offset > 0 && offset <= n {
		if _, ok := bracketKinds[text[offset-1]]; ok {
			return offset - 1, true
		}
	}
	return 0, false
}

// scanForward finds the closer matching the opener at pos.
func scanForward(text string, pos span.Offset) (span.Offset, bool) {
	kind := bracketKinds[text[pos]].kind
	nesting := 0
	for i := pos; i < span.Offset(len(text)); i++ {
		b, ok := bracketKinds[text[i]]
		if !ok || b.kind != kind {
			continue
		}
		if b.opener {
			nesting++
		} else {
			nesting--
			if nesting == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// scanBackward finds the opener matching the closer at pos.
func scanBackward(text string, pos span.Offset) (span.Offset, bool) {
	kind := bracketKinds[text[pos]].kind
	nesting := 0
	for i := pos; i >= 0; i-- {
		b, ok := bracketKinds[text[i]]
		if !ok || b.kind != kind {
			continue
		}
		if b.opener {
			nesting--
			if nesting == 0 {
				return i, true
			}
		} else {
			nesting++
		}
	}
	return 0, false
}

// depthAt counts bracket pairs still open at the given position.
func depthAt(text string, pos span.Offset) int {
	depth := 0
	for i := span.Offset(0); i < pos; i++ {
		b, ok := bracketKinds[text[i]]
		if !ok {
			continue
		}
		if b.opener {
			depth++
		} else if depth > 0 {
			depth--
		}
	}
	return depth
}
