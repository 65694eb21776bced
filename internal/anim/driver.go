package anim

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"

	"chosenoffset.com/lookout/internal/clock"
	"chosenoffset.com/lookout/internal/input"
)

// DefaultDebounceWindow is how long typing stays active after the last key event.
const DefaultDebounceWindow = 1000 * time.Millisecond

// Options tune a Driver. Zero fields take their defaults.
type Options struct {
	ReferenceDistance float64
	DebounceWindow    time.Duration
	Clock             clock.Clock
	Logger            *slog.Logger
}

// PointerSource publishes window-wide pointer moves.
type PointerSource interface {
	Subscribe(fn func(input.PointerMove)) *input.Subscription
}

// Driver owns the offset vectors for a fixed set of shapes and the
// interaction state that suppresses them. All methods must be called from the
// loop goroutine.
type Driver struct {
	configs []ShapeConfig
	anchors *AnchorTable
	offsets []OffsetVector
	state   InteractionState

	referenceDistance float64
	debounce          time.Duration
	typingTimer       *clock.Timer
	sub               *input.Subscription

	log      *slog.Logger
	revision uint64
	closed   bool
}

// NewDriver creates a driver for the given shapes. Shape IDs must be unique
// and non-empty, and maxima non-negative.
func NewDriver(configs []ShapeConfig, opts Options) (*Driver, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("driver needs at least one shape")
	}
	for i, cfg := range configs {
		if cfg.ID == "" {
			return nil, fmt.Errorf("shape %d has no id", i)
		}
		if cfg.FaceMax < 0 || cfg.EyeMax < 0 || cfg.RotationMax < 0 || cfg.BodySkewMax < 0 {
			return nil, fmt.Errorf("shape %q has a negative maximum", cfg.ID)
		}
	}
	if dups := lo.FindDuplicatesBy(configs, func(c ShapeConfig) string { return c.ID }); len(dups) > 0 {
		return nil, fmt.Errorf("duplicate shape id %q", dups[0].ID)
	}

	if opts.ReferenceDistance <= 0 {
		opts.ReferenceDistance = DefaultReferenceDistance
	}
	if opts.DebounceWindow <= 0 {
		opts.DebounceWindow = DefaultDebounceWindow
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewSystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Driver{
		configs:           append([]ShapeConfig(nil), configs...),
		anchors:           NewAnchorTable(),
		offsets:           neutralSet(len(configs)),
		referenceDistance: opts.ReferenceDistance,
		debounce:          opts.DebounceWindow,
		typingTimer:       clock.NewTimer(opts.Clock),
		log:               opts.Logger.With("component", "anim"),
	}, nil
}

// Configs returns the shape configurations in render order.
func (d *Driver) Configs() []ShapeConfig {
	return d.configs
}

// SetAnchor registers the rendered element for a shape.
func (d *Driver) SetAnchor(id string, a Anchor) {
	d.anchors.Set(id, a)
}

// UnsetAnchor drops the rendered element for a shape, e.g. on unmount.
func (d *Driver) UnsetAnchor(id string) {
	d.anchors.Unset(id)
}

// Attach subscribes the driver to a pointer source. A previous attachment is
// detached first.
func (d *Driver) Attach(src PointerSource) {
	if d.closed {
		return
	}
	d.Detach()
	d.sub = src.Subscribe(func(m input.PointerMove) {
		d.HandlePointerMove(m.X, m.Y)
	})
}

// Detach stops listening to pointer moves.
func (d *Driver) Detach() {
	d.sub.Detach()
	d.sub = nil
}

// Attached reports whether the driver currently listens to a pointer source.
func (d *Driver) Attached() bool {
	return d.sub.Active()
}

// HandlePointerMove recomputes every shape's offsets for a pointer position.
// It does nothing while suppressed.
func (d *Driver) HandlePointerMove(x, y float64) {
	if d.closed || d.state.Suppressed() {
		return
	}

	pointer := mgl64.Vec2{x, y}
	d.offsets = lo.Map(d.configs, func(cfg ShapeConfig, _ int) OffsetVector {
		bounds, ok := d.anchors.Resolve(cfg.ID)
		if !ok {
			return Neutral()
		}
		return Sample(cfg, bounds, pointer, d.referenceDistance)
	})
	d.revision++
}

// EnterSuppressor marks the pointer (or focus) as inside the suppressing region.
func (d *Driver) EnterSuppressor() {
	if d.closed || d.state.PointerInside {
		return
	}
	wasSuppressed := d.state.Suppressed()
	d.state.PointerInside = true
	d.log.Debug("suppressor entered", "typing", d.state.Typing)
	if !wasSuppressed {
		d.neutralize()
	}
}

// LeaveSuppressor handles pointer-leave or blur of the suppressing region. It
// cancels the typing timer, clears both flags and resets live offsets to
// neutral.
func (d *Driver) LeaveSuppressor() {
	if d.closed {
		return
	}
	d.typingTimer.Cancel()
	if d.state.Suppressed() {
		d.state = InteractionState{}
		d.log.Debug("suppressor left")
	}
	if !d.allNeutral() {
		d.neutralize()
	}
}

// KeyActivity handles key-down, key-up and input events in the suppressing
// region. Each call restarts the debounce window.
func (d *Driver) KeyActivity() {
	if d.closed {
		return
	}
	wasSuppressed := d.state.Suppressed()
	d.typingTimer.Cancel()
	if !d.state.Typing {
		d.log.Debug("typing started")
	}
	d.state.Typing = true
	d.typingTimer.Schedule(d.debounce, d.stopTyping)
	if !wasSuppressed {
		d.neutralize()
	}
}

func (d *Driver) stopTyping() {
	if d.closed {
		return
	}
	d.state.Typing = false
	d.log.Debug("typing settled", "pointerInside", d.state.PointerInside)
}

// Update advances timers. Call once per tick.
func (d *Driver) Update() {
	if d.closed {
		return
	}
	d.typingTimer.Poll()
}

// Offsets returns a copy of the current offsets, one per shape in config order.
func (d *Driver) Offsets() []OffsetVector {
	out := make([]OffsetVector, len(d.offsets))
	copy(out, d.offsets)
	return out
}

// Offset returns the offsets for one shape.
func (d *Driver) Offset(id string) (OffsetVector, bool) {
	_, idx, ok := lo.FindIndexOf(d.configs, func(c ShapeConfig) bool { return c.ID == id })
	if !ok {
		return OffsetVector{}, false
	}
	return d.offsets[idx], true
}

// State returns the current interaction flags.
func (d *Driver) State() InteractionState {
	return d.state
}

// TypingPending reports whether the stop-typing timer is armed, and how long is left.
func (d *Driver) TypingPending() (bool, time.Duration) {
	return d.typingTimer.Pending(), d.typingTimer.Remaining()
}

// AnchorCount returns how many shapes have a registered anchor.
func (d *Driver) AnchorCount() int {
	return d.anchors.Len()
}

// Revision increments every time the offset set is replaced.
func (d *Driver) Revision() uint64 {
	return d.revision
}

// Close detaches from the pointer source and cancels the typing timer. The
// driver ignores every event afterwards.
func (d *Driver) Close() {
	if d.closed {
		return
	}
	d.typingTimer.Cancel()
	d.Detach()
	d.closed = true
	d.log.Debug("driver closed")
}

// Closed reports whether Close has been called.
func (d *Driver) Closed() bool {
	return d.closed
}

func (d *Driver) allNeutral() bool {
	return lo.EveryBy(d.offsets, func(o OffsetVector) bool { return o.IsNeutral() })
}

func (d *Driver) neutralize() {
	d.offsets = neutralSet(len(d.configs))
	d.revision++
}
