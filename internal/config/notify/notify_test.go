package notify

import "testing"

func TestPublishDeliversInOrder(t *testing.T) {
	n := NewNotifier[int]()

	var order []int
	n.Subscribe(func(int) { order = append(order, 1) })
	n.Subscribe(func(int) { order = append(order, 2) })
	n.Subscribe(func(int) { order = append(order, 3) })

	n.Publish(7)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
}

func TestUnsubscribeIsDeterministic(t *testing.T) {
	n := NewNotifier[string]()

	got := ""
	sub := n.Subscribe(func(v string) { got = v })

	n.Publish("first")
	sub.Unsubscribe()
	sub.Unsubscribe() // second call is a no-op
	n.Publish("second")

	if got != "first" {
		t.Errorf("got = %q, want first", got)
	}
	if n.Len() != 0 {
		t.Errorf("Len = %d after unsubscribe", n.Len())
	}
}

func TestSubscribeNilObserver(t *testing.T) {
	n := NewNotifier[int]()
	sub := n.Subscribe(nil)
	sub.Unsubscribe()

	if n.Len() != 0 {
		t.Errorf("nil observer registered: Len = %d", n.Len())
	}
	n.Publish(1) // must not panic
}

func TestObserverReceivesValue(t *testing.T) {
	type settings struct{ Theme string }
	n := NewNotifier[settings]()

	var got settings
	n.Subscribe(func(v settings) { got = v })
	n.Publish(settings{Theme: "Dracula"})

	if got.Theme != "Dracula" {
		t.Errorf("got = %+v", got)
	}
}
