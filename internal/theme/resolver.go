package theme

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/event"
	"github.com/glintedit/glint/internal/style"
)

const (
	resolverExpiration      = 10 * time.Minute
	resolverCleanupInterval = 30 * time.Minute
)

// Resolver answers StyleFor against the registry's current theme with a
// memoizing cache in front. Capture names arrive unbounded from external
// grammars, so entries expire rather than accumulate. The cache flushes
// whenever the active theme changes.
type Resolver struct {
	registry *Registry
	cache    *gocache.Cache
	sub      *event.Subscription
}

// NewResolver creates a resolver over the registry. When a bus is given,
// the resolver subscribes to theme switches to flush its cache; release
// the resolver with Close.
func NewResolver(registry *Registry, bus *event.Bus) (*Resolver, error) {
	r := &Resolver{
		registry: registry,
		cache:    gocache.New(resolverExpiration, resolverCleanupInterval),
	}
	if bus != nil {
		sub, err := bus.Subscribe(event.TopicThemeChanged,
			event.HandlerFunc(func(_ context.Context, _ any) error {
				r.Flush()
				return nil
			}))
		if err != nil {
			return nil, err
		}
		r.sub = sub
	}
	return r, nil
}

// StyleFor resolves a capture name against the active theme.
func (r *Resolver) StyleFor(name capture.Name) style.Style {
	if cached, ok := r.cache.Get(string(name)); ok {
		if s, ok := cached.(style.Style); ok {
			return s
		}
	}

	theme := r.registry.Current()
	if theme == nil {
		return style.Default()
	}
	s := theme.StyleFor(name)
	r.cache.SetDefault(string(name), s)
	return s
}

// Flush drops every memoized style.
func (r *Resolver) Flush() {
	r.cache.Flush()
}

// Close cancels the resolver's bus subscription.
func (r *Resolver) Close() {
	if r.sub != nil {
		r.sub.Cancel()
		r.sub = nil
	}
}
