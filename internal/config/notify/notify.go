// Package notify fans configuration changes out to subscribed observers.
// Delivery is synchronous and ordered by subscription; unsubscription is
// deterministic through the returned Subscription.
package notify

import "sync"

// Observer is called with the new configuration after a change.
type Observer[T any] func(value T)

// Subscription represents an active observer registration.
type Subscription struct {
	id          uint64
	unsubscribe func(uint64)
}

// Unsubscribe removes the observer. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.unsubscribe != nil {
		s.unsubscribe(s.id)
		s.unsubscribe = nil
	}
}

// Notifier delivers values of T to its observers in subscription order.
type Notifier[T any] struct {
	mu        sync.Mutex
	observers []entry[T]
	nextID    uint64
}

type entry[T any] struct {
	id uint64
	fn Observer[T]
}

// NewNotifier creates an empty notifier.
func NewNotifier[T any]() *Notifier[T] {
	return &Notifier[T]{}
}

// Subscribe registers an observer.
func (n *Notifier[T]) Subscribe(fn Observer[T]) *Subscription {
	if fn == nil {
		return &Subscription{}
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	n.observers = append(n.observers, entry[T]{id: n.nextID, fn: fn})
	return &Subscription{id: n.nextID, unsubscribe: n.remove}
}

// Publish delivers the value to every observer, synchronously, in
// subscription order.
func (n *Notifier[T]) Publish(value T) {
	n.mu.Lock()
	observers := make([]entry[T], len(n.observers))
	copy(observers, n.observers)
	n.mu.Unlock()

	for _, obs := range observers {
		obs.fn(value)
	}
}

// Len returns the number of active observers.
func (n *Notifier[T]) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.observers)
}

func (n *Notifier[T]) remove(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, obs := range n.observers {
		if obs.id == id {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}
