package view

// Subscription represents a registered observer. Releasing it via Cancel
// removes the observer deterministically; nothing is tied to garbage
// collection or destruction order.
type Subscription struct {
	id      uint64
	tracker *Tracker
}

// Cancel removes the observer from its tracker. Safe to call more than
// once, and safe after the tracker has detached.
func (s *Subscription) Cancel() {
	if s.tracker != nil {
		s.tracker.unsubscribe(s.id)
		s.tracker = nil
	}
}
