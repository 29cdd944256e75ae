package theme

import (
	"testing"

	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/event"
)

func TestResolverMatchesTheme(t *testing.T) {
	r := NewRegistry(nil)
	res, err := NewResolver(r, nil)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	want := r.Current().StyleFor(capture.Keyword)
	if got := res.StyleFor(capture.Keyword); !got.Equals(want) {
		t.Errorf("resolved style = %+v, want %+v", got, want)
	}

	// Second lookup hits the cache and must agree.
	if got := res.StyleFor(capture.Keyword); !got.Equals(want) {
		t.Errorf("cached style = %+v, want %+v", got, want)
	}
}

func TestResolverFlushesOnThemeSwitch(t *testing.T) {
	bus := event.NewBus()
	r := NewRegistry(bus)
	res, err := NewResolver(r, bus)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	defer res.Close()

	before := res.StyleFor(capture.Keyword)

	if err := r.SetCurrent("Monokai"); err != nil {
		t.Fatalf("SetCurrent failed: %v", err)
	}

	after := res.StyleFor(capture.Keyword)
	want := Monokai().StyleFor(capture.Keyword)
	if !after.Equals(want) {
		t.Errorf("post-switch style = %+v, want %+v", after, want)
	}
	if after.Equals(before) {
		t.Error("resolver kept serving the old theme's style")
	}
}
