package style

import "testing"

func TestFromHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    Color
		wantErr bool
	}{
		{"six digit", "#282A36", RGB(0x28, 0x2A, 0x36), false},
		{"no hash", "FF5733", RGB(0xFF, 0x57, 0x33), false},
		{"three digit", "#F80", RGB(0xFF, 0x88, 0x00), false},
		{"bad length", "#12345", Color{}, true},
		{"bad digits", "#GGGGGG", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHex(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromHex(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if err == nil && !got.Equals(tt.want) {
				t.Errorf("FromHex(%q) = %s, want %s", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorEquals(t *testing.T) {
	if !ColorDefault.Equals(Color{Default: true}) {
		t.Error("default colors should be equal")
	}
	if ColorDefault.Equals(RGB(0, 0, 0)) {
		t.Error("default should not equal black")
	}
	if !Palette(3).Equals(Palette(3)) {
		t.Error("same palette index should be equal")
	}
	if Palette(3).Equals(RGB(3, 0, 0)) {
		t.Error("indexed and true color should differ")
	}
}

func TestColorString(t *testing.T) {
	if got := RGB(0xAB, 0xCD, 0xEF).String(); got != "#ABCDEF" {
		t.Errorf("String() = %q, want %q", got, "#ABCDEF")
	}
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("default String() = %q", got)
	}
	if got := Palette(7).String(); got != "idx(7)" {
		t.Errorf("indexed String() = %q", got)
	}
}

func TestLightenDarken(t *testing.T) {
	base := RGB(100, 100, 100)

	lighter := base.Lighten(0.5)
	if lighter.R <= base.R {
		t.Errorf("Lighten should raise channels, got %s from %s", lighter, base)
	}

	darker := base.Darken(0.5)
	if darker.R >= base.R {
		t.Errorf("Darken should lower channels, got %s from %s", darker, base)
	}

	// Palette colors pass through untouched.
	idx := Palette(3)
	if !idx.Lighten(0.5).Equals(idx) {
		t.Error("Lighten should not modify indexed colors")
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := RGB(255, 0, 0)
	b := RGB(0, 0, 255)

	if got := a.Blend(b, 0); !got.Equals(a) {
		t.Errorf("Blend(0) = %s, want %s", got, a)
	}
	if got := a.Blend(b, 1); !got.Equals(b) {
		t.Errorf("Blend(1) = %s, want %s", got, b)
	}

	// Indexed falls back to nearest operand.
	idx := Palette(1)
	if got := idx.Blend(b, 0.2); !got.Equals(idx) {
		t.Errorf("indexed Blend(0.2) = %s, want %s", got, idx)
	}
	if got := idx.Blend(b, 0.8); !got.Equals(b) {
		t.Errorf("indexed Blend(0.8) = %s, want %s", got, b)
	}
}

func TestMix(t *testing.T) {
	base := RGB(200, 100, 50)
	overlay := RGB(128, 128, 128)

	t.Run("multiply darkens", func(t *testing.T) {
		got := Mix(BlendMultiply, base, overlay)
		if got.R > base.R || got.G > base.G || got.B > base.B {
			t.Errorf("Multiply should not brighten: %s from %s", got, base)
		}
	})

	t.Run("screen brightens", func(t *testing.T) {
		got := Mix(BlendScreen, base, overlay)
		if got.R < base.R || got.G < base.G || got.B < base.B {
			t.Errorf("Screen should not darken: %s from %s", got, base)
		}
	})

	t.Run("normal replaces", func(t *testing.T) {
		if got := Mix(BlendNormal, base, overlay); !got.Equals(overlay) {
			t.Errorf("Normal = %s, want %s", got, overlay)
		}
	})

	t.Run("default passes base through", func(t *testing.T) {
		if got := Mix(BlendMultiply, base, ColorDefault); !got.Equals(base) {
			t.Errorf("default overlay = %s, want %s", got, base)
		}
	})
}
