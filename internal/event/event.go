// Package event provides the synchronous topic bus the view layer runs on.
// Viewports publish layout and scroll changes; trackers and adapters
// subscribe. Delivery is ordered and happens on the publisher's call stack,
// so a handler observes state exactly as it was when the event fired.
package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Topic is a hierarchical event type, dot-separated ("view.scroll.changed").
// A pattern ending in ".*" subscribes to every topic below the prefix.
type Topic string

// Matches returns true if the topic satisfies the given pattern.
func (t Topic) Matches(pattern Topic) bool {
	if pattern == t || pattern == "*" {
		return true
	}
	const wildcard = ".*"
	if len(pattern) > len(wildcard) && pattern[len(pattern)-len(wildcard):] == wildcard {
		prefix := string(pattern[:len(pattern)-1])
		return len(t) > len(prefix) && string(t[:len(prefix)]) == prefix
	}
	return false
}

// Event represents an event in the system.
// Events are immutable once created.
type Event[T any] struct {
	// Type is the hierarchical event type.
	Type Topic

	// Payload contains the event-specific data.
	Payload T

	// Metadata contains standard event information.
	Metadata Metadata
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the component that published the event.
	Source string
}

// New creates a new event with the given type and payload.
func New[T any](eventType Topic, payload T, source string) Event[T] {
	return Event[T]{
		Type:    eventType,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// EventTopic returns the event's topic for type-erased handling.
func (e Event[T]) EventTopic() Topic {
	return e.Type
}

// TopicProvider is implemented by types that can provide their topic.
type TopicProvider interface {
	EventTopic() Topic
}

// Handler is the interface for event handlers.
type Handler interface {
	// Handle processes an event.
	// The event parameter is type-erased; handlers should type-assert.
	Handle(ctx context.Context, event any) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, event any) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// Typed wraps a typed handler function as a generic Handler. Events of a
// different payload type are skipped silently.
func Typed[T any](fn func(ctx context.Context, event Event[T]) error) Handler {
	return HandlerFunc(func(ctx context.Context, event any) error {
		if e, ok := event.(Event[T]); ok {
			return fn(ctx, e)
		}
		return nil
	})
}
