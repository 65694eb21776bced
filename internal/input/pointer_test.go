package input

import (
	"testing"

	"chosenoffset.com/lookout/internal/render/rendertest"
)

func TestPollPublishesOnlyChanges(t *testing.T) {
	in := rendertest.NewInput()
	tracker := NewPointerTracker(in)

	var moves []PointerMove
	tracker.Subscribe(func(m PointerMove) { moves = append(moves, m) })

	if _, _, ok := tracker.Position(); ok {
		t.Error("Expected no position before the first poll")
	}

	tracker.Poll()
	tracker.Poll()
	in.MoveTo(10, 20)
	tracker.Poll()
	tracker.Poll()

	if len(moves) != 2 {
		t.Fatalf("Expected 2 moves, got %d", len(moves))
	}
	if moves[1] != (PointerMove{X: 10, Y: 20}) {
		t.Errorf("Expected move to (10, 20), got %+v", moves[1])
	}
	if x, y, ok := tracker.Position(); !ok || x != 10 || y != 20 {
		t.Errorf("Expected position (10, 20), got (%d, %d, %v)", x, y, ok)
	}
}

func TestSubscribersReceiveInOrder(t *testing.T) {
	tracker := NewPointerTracker(rendertest.NewInput())

	var order []string
	tracker.Subscribe(func(PointerMove) { order = append(order, "a") })
	tracker.Subscribe(func(PointerMove) { order = append(order, "b") })

	tracker.Publish(PointerMove{})

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("Expected [a b], got %v", order)
	}
}

func TestDetachIsIdempotent(t *testing.T) {
	tracker := NewPointerTracker(rendertest.NewInput())

	calls := 0
	sub := tracker.Subscribe(func(PointerMove) { calls++ })
	sub.Detach()
	sub.Detach()

	tracker.Publish(PointerMove{})
	if calls != 0 {
		t.Errorf("Expected no calls after detach, got %d", calls)
	}
	if sub.Active() {
		t.Error("Expected subscription to be inactive")
	}

	var nilSub *Subscription
	nilSub.Detach()
}

func TestDetachDuringDispatch(t *testing.T) {
	tracker := NewPointerTracker(rendertest.NewInput())

	var second *Subscription
	secondCalls := 0
	tracker.Subscribe(func(PointerMove) { second.Detach() })
	second = tracker.Subscribe(func(PointerMove) { secondCalls++ })

	tracker.Publish(PointerMove{})
	tracker.Publish(PointerMove{})

	if secondCalls != 0 {
		t.Errorf("Expected listener detached mid-dispatch to be skipped, got %d calls", secondCalls)
	}
	if tracker.Subscribers() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", tracker.Subscribers())
	}
}
