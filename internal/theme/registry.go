package theme

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/glintedit/glint/internal/event"
)

// Registry tracks known themes and the active one. Switching the active
// theme publishes on the event bus so style consumers can invalidate.
type Registry struct {
	mu      sync.RWMutex
	themes  map[string]*Theme
	current string
	bus     *event.Bus
}

// NewRegistry creates a registry preloaded with the built-in themes and
// Default Dark active. The bus may be nil for bus-less use.
func NewRegistry(bus *event.Bus) *Registry {
	r := &Registry{
		themes: make(map[string]*Theme),
		bus:    bus,
	}
	for _, t := range BuiltIn() {
		r.themes[t.Name] = t
	}
	r.current = DefaultDark().Name
	return r
}

// Register adds or replaces a theme by name.
func (r *Registry) Register(t *Theme) error {
	if t == nil || t.Name == "" {
		return ErrNoThemeName
	}
	r.mu.Lock()
	r.themes[t.Name] = t
	isCurrent := r.current == t.Name
	r.mu.Unlock()

	// Re-registering the active theme restyles in place.
	if isCurrent {
		r.publish(event.TopicThemeChanged, t.Name)
	}
	return nil
}

// Get returns a registered theme by name.
func (r *Registry) Get(name string) (*Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTheme)
	}
	return t, nil
}

// Current returns the active theme.
func (r *Registry) Current() *Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.themes[r.current]
}

// SetCurrent switches the active theme and publishes the change.
func (r *Registry) SetCurrent(name string) error {
	r.mu.Lock()
	if _, ok := r.themes[name]; !ok {
		r.mu.Unlock()
		return fmt.Errorf("%q: %w", name, ErrUnknownTheme)
	}
	changed := r.current != name
	r.current = name
	r.mu.Unlock()

	if changed {
		r.publish(event.TopicThemeChanged, name)
	}
	return nil
}

// Names returns the registered theme names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) publish(topic event.Topic, name string) {
	if r.bus == nil {
		return
	}
	evt := event.New(topic, event.ThemeChanged{Name: name}, "theme.registry")
	_ = r.bus.PublishSync(context.Background(), evt)
}
