package event

import "sync/atomic"

// SubscriptionState represents the state of a subscription.
type SubscriptionState int32

const (
	// SubscriptionActive means the subscription is receiving events.
	SubscriptionActive SubscriptionState = iota

	// SubscriptionPaused means the subscription is temporarily muted.
	SubscriptionPaused

	// SubscriptionCancelled means the subscription is permanently over.
	SubscriptionCancelled
)

// String returns a human-readable state name.
func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionActive:
		return "active"
	case SubscriptionPaused:
		return "paused"
	case SubscriptionCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// FilterFunc is a predicate for filtering events.
// Return true to allow the event, false to skip it.
type FilterFunc func(event any) bool

// SubscriptionOption configures a subscription at registration time.
type SubscriptionOption func(*Subscription)

// WithFilter sets a filter predicate.
func WithFilter(f FilterFunc) SubscriptionOption {
	return func(s *Subscription) {
		s.filter = f
	}
}

// WithOnce sets the subscription to auto-cancel after the first delivery.
func WithOnce() SubscriptionOption {
	return func(s *Subscription) {
		s.once = true
	}
}

// Subscription is an active registration on the bus. Releasing it via
// Cancel deterministically stops delivery; there is no implicit
// deregistration tied to garbage collection.
type Subscription struct {
	id      string
	pattern Topic
	handler Handler
	filter  FilterFunc
	once    bool
	bus     *Bus
	state   atomic.Int32
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Pattern returns the subscribed topic pattern.
func (s *Subscription) Pattern() Topic {
	return s.pattern
}

// State returns the current subscription state.
func (s *Subscription) State() SubscriptionState {
	return SubscriptionState(s.state.Load())
}

// IsActive returns true if the subscription can receive events.
func (s *Subscription) IsActive() bool {
	return s.State() == SubscriptionActive
}

// Pause temporarily stops delivery. Only an active subscription pauses.
func (s *Subscription) Pause() {
	s.state.CompareAndSwap(int32(SubscriptionActive), int32(SubscriptionPaused))
}

// Resume restarts delivery after a pause.
func (s *Subscription) Resume() {
	s.state.CompareAndSwap(int32(SubscriptionPaused), int32(SubscriptionActive))
}

// Cancel permanently removes the subscription from its bus.
// Safe to call more than once.
func (s *Subscription) Cancel() {
	if s.state.Swap(int32(SubscriptionCancelled)) == int32(SubscriptionCancelled) {
		return
	}
	if s.bus != nil {
		s.bus.remove(s.id)
	}
}

// shouldDeliver reports whether the event passes state and filter checks.
func (s *Subscription) shouldDeliver(event any) bool {
	if !s.IsActive() {
		return false
	}
	if s.filter != nil && !s.filter(event) {
		return false
	}
	return true
}
