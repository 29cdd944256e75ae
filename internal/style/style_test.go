package style

import "testing"

func TestAttributeOps(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrItalic)

	if !a.Has(AttrBold) || !a.Has(AttrItalic) {
		t.Errorf("attributes = %b, want bold and italic set", a)
	}
	if a.Has(AttrUnderline) {
		t.Error("underline should not be set")
	}

	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("Without should clear bold")
	}
	if !a.Has(AttrItalic) {
		t.Error("Without should leave italic")
	}
}

func TestStyleBuilders(t *testing.T) {
	s := New(RGB(255, 0, 0)).Bold().Italic()

	if !s.Foreground.Equals(RGB(255, 0, 0)) {
		t.Errorf("Foreground = %s, want #FF0000", s.Foreground)
	}
	if !s.Background.IsDefault() {
		t.Errorf("Background = %s, want default", s.Background)
	}
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrItalic) {
		t.Errorf("Attributes = %b, want bold and italic", s.Attributes)
	}
}

func TestStyleMerge(t *testing.T) {
	base := New(RGB(255, 255, 255)).WithBackground(RGB(0, 0, 0))
	accent := Default().Bold()

	merged := base.Merge(accent)
	if !merged.Foreground.Equals(base.Foreground) {
		t.Errorf("default foreground should not override, got %s", merged.Foreground)
	}
	if !merged.Attributes.Has(AttrBold) {
		t.Error("attributes should accumulate")
	}

	override := New(RGB(255, 0, 0))
	merged = base.Merge(override)
	if !merged.Foreground.Equals(RGB(255, 0, 0)) {
		t.Errorf("non-default foreground should override, got %s", merged.Foreground)
	}
	if !merged.Background.Equals(RGB(0, 0, 0)) {
		t.Errorf("background should persist, got %s", merged.Background)
	}
}

func TestStyleEqualsAndDefault(t *testing.T) {
	if !Default().Equals(Default()) {
		t.Error("two default styles should be equal")
	}
	if !Default().IsDefault() {
		t.Error("Default() should report IsDefault")
	}
	if New(RGB(1, 2, 3)).IsDefault() {
		t.Error("colored style should not report IsDefault")
	}
}

func TestStyleInvert(t *testing.T) {
	s := New(RGB(1, 2, 3)).WithBackground(RGB(4, 5, 6)).Invert()

	if !s.Foreground.Equals(RGB(4, 5, 6)) || !s.Background.Equals(RGB(1, 2, 3)) {
		t.Errorf("Invert = fg %s bg %s, want swapped", s.Foreground, s.Background)
	}
}
