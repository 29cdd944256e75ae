package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/glintedit/glint/internal/event"
)

func TestRegistryBuiltInsPreloaded(t *testing.T) {
	r := NewRegistry(nil)

	names := r.Names()
	if len(names) != 5 {
		t.Fatalf("got %d themes, want 5: %v", len(names), names)
	}
	if cur := r.Current(); cur == nil || cur.Name != "Default Dark" {
		t.Errorf("default current theme = %v", cur)
	}
}

func TestRegistrySetCurrent(t *testing.T) {
	bus := event.NewBus()
	r := NewRegistry(bus)

	var announced string
	_, err := bus.Subscribe(event.TopicThemeChanged,
		event.Typed(func(_ context.Context, e event.Event[event.ThemeChanged]) error {
			announced = e.Payload.Name
			return nil
		}))
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if err := r.SetCurrent("Monokai"); err != nil {
		t.Fatalf("SetCurrent failed: %v", err)
	}
	if announced != "Monokai" {
		t.Errorf("announced %q, want Monokai", announced)
	}

	// Switching to the already-active theme stays silent.
	announced = ""
	if err := r.SetCurrent("Monokai"); err != nil {
		t.Fatalf("SetCurrent failed: %v", err)
	}
	if announced != "" {
		t.Errorf("redundant switch announced %q", announced)
	}
}

func TestRegistrySetCurrentUnknown(t *testing.T) {
	r := NewRegistry(nil)
	err := r.SetCurrent("No Such Theme")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("err = %v, want ErrUnknownTheme", err)
	}
}

func TestRegistryRegisterReplacesCurrent(t *testing.T) {
	bus := event.NewBus()
	r := NewRegistry(bus)

	announced := 0
	if _, err := bus.Subscribe(event.TopicThemeChanged,
		event.HandlerFunc(func(_ context.Context, _ any) error {
			announced++
			return nil
		})); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	// Replacing a non-active theme is silent.
	monokai := Monokai()
	if err := r.Register(monokai); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if announced != 0 {
		t.Errorf("replacing inactive theme announced %d times", announced)
	}

	// Replacing the active theme announces a restyle.
	dark := DefaultDark()
	if err := r.Register(dark); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if announced != 1 {
		t.Errorf("replacing active theme announced %d times, want 1", announced)
	}
}

func TestRegistryRegisterRejectsUnnamed(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.Register(&Theme{}); !errors.Is(err, ErrNoThemeName) {
		t.Errorf("err = %v, want ErrNoThemeName", err)
	}
	if err := r.Register(nil); !errors.Is(err, ErrNoThemeName) {
		t.Errorf("err = %v, want ErrNoThemeName", err)
	}
}
