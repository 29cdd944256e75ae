package event

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Bus routes events to subscriptions by topic. Delivery is synchronous on
// the publisher's call stack, in subscription registration order. The view
// layer depends on that ordering: a tracker recomputing on a scroll event
// must see the world exactly as the publisher left it.
type Bus struct {
	mu     sync.RWMutex
	subs   []*Subscription
	byID   map[string]*Subscription
	closed bool

	// Stats
	published     atomic.Uint64
	delivered     atomic.Uint64
	handlerErrors atomic.Uint64
}

// Stats is a snapshot of bus counters.
type Stats struct {
	Published           uint64
	Delivered           uint64
	HandlerErrors       uint64
	ActiveSubscriptions int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		byID: make(map[string]*Subscription),
	}
}

// Subscribe registers a handler for every topic matching the pattern.
// The returned subscription stays live until cancelled or the bus closes.
func (b *Bus) Subscribe(pattern Topic, handler Handler, opts ...SubscriptionOption) (*Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if pattern == "" {
		return nil, ErrInvalidTopic
	}

	sub := &Subscription{
		id:      uuid.NewString(),
		pattern: pattern,
		handler: handler,
		bus:     b,
	}
	for _, opt := range opts {
		opt(sub)
	}
	sub.state.Store(int32(SubscriptionActive))

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBusClosed
	}
	b.subs = append(b.subs, sub)
	b.byID[sub.id] = sub
	return sub, nil
}

// SubscribeFunc is a convenience method for subscribing with a function.
func (b *Bus) SubscribeFunc(pattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (*Subscription, error) {
	return b.Subscribe(pattern, fn, opts...)
}

// PublishSync delivers the event to every matching active subscription
// before returning. Handler errors are counted but do not stop delivery to
// later subscriptions.
func (b *Bus) PublishSync(ctx context.Context, evt any) error {
	tp, ok := evt.(TopicProvider)
	if !ok {
		return ErrInvalidEvent
	}
	eventTopic := tp.EventTopic()
	if eventTopic == "" {
		return ErrInvalidEvent
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}
	// Copy the matching set so handlers may subscribe or cancel freely.
	matched := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if eventTopic.Matches(sub.pattern) {
			matched = append(matched, sub)
		}
	}
	b.mu.RUnlock()

	b.published.Add(1)

	for _, sub := range matched {
		if !sub.shouldDeliver(evt) {
			continue
		}
		if err := sub.handler.Handle(ctx, evt); err != nil {
			b.handlerErrors.Add(1)
		} else {
			b.delivered.Add(1)
		}
		if sub.once {
			sub.Cancel()
		}
	}
	return nil
}

// Stats returns current bus statistics.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	active := 0
	for _, sub := range b.subs {
		if sub.IsActive() {
			active++
		}
	}
	b.mu.RUnlock()

	return Stats{
		Published:           b.published.Load(),
		Delivered:           b.delivered.Load(),
		HandlerErrors:       b.handlerErrors.Load(),
		ActiveSubscriptions: active,
	}
}

// Close cancels every subscription and rejects further use.
func (b *Bus) Close() {
	b.mu.Lock()
	subs := b.subs
	b.subs = nil
	b.byID = make(map[string]*Subscription)
	b.closed = true
	b.mu.Unlock()

	for _, sub := range subs {
		sub.state.Store(int32(SubscriptionCancelled))
	}
}

// remove drops a subscription by ID. Called from Subscription.Cancel.
func (b *Bus) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.byID[id]; !exists {
		return
	}
	delete(b.byID, id)
	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			break
		}
	}
}
