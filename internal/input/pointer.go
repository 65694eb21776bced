// Package input turns the per-tick polled input state into the discrete
// events the login scene reacts to: window-wide pointer moves and hover
// enter/leave edges over rectangular regions.
package input

import (
	"chosenoffset.com/lookout/internal/render"
)

// PointerMove is published when the cursor position changes.
type PointerMove struct {
	X, Y float64
}

// Subscription is an attached pointer listener. It stays attached until
// Detach is called.
type Subscription struct {
	tracker *PointerTracker
	fn      func(PointerMove)
	active  bool
}

// Detach removes the listener. Calling it more than once is harmless.
func (s *Subscription) Detach() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.tracker.remove(s)
}

// Active reports whether the subscription still receives events.
func (s *Subscription) Active() bool {
	return s != nil && s.active
}

// PointerTracker watches the cursor over the whole window and fans pointer
// moves out to its subscribers in subscription order.
type PointerTracker struct {
	input render.InputManager
	subs  []*Subscription

	lastX, lastY int
	seen         bool
}

// NewPointerTracker creates a tracker that polls the given input manager.
func NewPointerTracker(input render.InputManager) *PointerTracker {
	return &PointerTracker{input: input}
}

// Subscribe attaches fn and returns the handle that detaches it.
func (t *PointerTracker) Subscribe(fn func(PointerMove)) *Subscription {
	sub := &Subscription{tracker: t, fn: fn, active: true}
	t.subs = append(t.subs, sub)
	return sub
}

// Subscribers returns the number of attached listeners.
func (t *PointerTracker) Subscribers() int {
	return len(t.subs)
}

// Position returns the last polled cursor position. ok is false before the
// first Poll.
func (t *PointerTracker) Position() (x, y int, ok bool) {
	return t.lastX, t.lastY, t.seen
}

// Poll reads the cursor and publishes a move when it changed since the last
// poll. The first poll always publishes.
func (t *PointerTracker) Poll() {
	x, y := t.input.GetCursorPosition()
	if t.seen && x == t.lastX && y == t.lastY {
		return
	}
	t.lastX, t.lastY = x, y
	t.seen = true
	t.Publish(PointerMove{X: float64(x), Y: float64(y)})
}

// Publish delivers a move to every active subscriber.
func (t *PointerTracker) Publish(move PointerMove) {
	// Listeners may detach while we dispatch.
	subs := make([]*Subscription, len(t.subs))
	copy(subs, t.subs)
	for _, sub := range subs {
		if sub.active {
			sub.fn(move)
		}
	}
}

func (t *PointerTracker) remove(target *Subscription) {
	for i, sub := range t.subs {
		if sub == target {
			t.subs = append(t.subs[:i], t.subs[i+1:]...)
			return
		}
	}
}
