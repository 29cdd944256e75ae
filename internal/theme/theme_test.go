package theme

import (
	"testing"

	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/style"
)

func TestStyleForExactMatch(t *testing.T) {
	th := DefaultDark()
	got := th.StyleFor(capture.Keyword)
	want := style.New(style.RGB(86, 156, 214))
	if !got.Equals(want) {
		t.Errorf("StyleFor(keyword) = %+v, want %+v", got, want)
	}
}

func TestStyleForParentFallback(t *testing.T) {
	th := DefaultDark()
	// "keyword.control" has no entry; it falls back to "keyword".
	got := th.StyleFor(capture.Name("keyword.control"))
	if !got.Equals(th.StyleFor(capture.Keyword)) {
		t.Errorf("keyword.control did not fall back to keyword: %+v", got)
	}

	// Deeper chains walk all the way up.
	got = th.StyleFor(capture.Name("string.escape.unicode"))
	if !got.Equals(th.StyleFor(capture.StringEscape)) {
		t.Errorf("string.escape.unicode did not fall back to string.escape: %+v", got)
	}
}

func TestStyleForUnknownUsesForeground(t *testing.T) {
	th := DefaultDark()
	got := th.StyleFor(capture.Name("totally.unknown"))
	want := style.New(th.Foreground)
	if !got.Equals(want) {
		t.Errorf("unknown capture = %+v, want default foreground %+v", got, want)
	}
}

func TestBuiltInThemesAreComplete(t *testing.T) {
	required := []capture.Name{
		capture.Comment, capture.String, capture.Number, capture.Keyword,
		capture.Operator, capture.Function, capture.Type, capture.Variable,
		capture.PunctuationBracket, capture.Invalid,
	}

	for _, th := range BuiltIn() {
		if th.Name == "" {
			t.Error("built-in theme without a name")
		}
		for _, name := range required {
			if _, ok := th.CaptureStyles[name]; !ok {
				t.Errorf("theme %q missing style for %q", th.Name, name)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := DefaultDark()
	clone := orig.Clone()
	clone.CaptureStyles[capture.Keyword] = style.New(style.RGB(1, 2, 3))

	if orig.StyleFor(capture.Keyword).Equals(clone.StyleFor(capture.Keyword)) {
		t.Error("mutating the clone changed the original")
	}
}
