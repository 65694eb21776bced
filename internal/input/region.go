package input

// HitRect is an axis-aligned rectangular hit area in screen coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Region tracks whether the pointer is over a rectangle and reports the
// enter and leave edges.
type Region struct {
	Rect    HitRect
	OnEnter func()
	OnLeave func()

	hovered bool
}

// NewRegion creates a region over rect.
func NewRegion(rect HitRect) *Region {
	return &Region{Rect: rect}
}

// Hovered reports whether the pointer was inside at the last update.
func (r *Region) Hovered() bool {
	return r.hovered
}

// Update feeds a pointer position and fires OnEnter or OnLeave on a change.
func (r *Region) Update(x, y float64) {
	inside := r.Rect.Contains(x, y)
	if inside == r.hovered {
		return
	}
	r.hovered = inside
	if inside {
		if r.OnEnter != nil {
			r.OnEnter()
		}
	} else if r.OnLeave != nil {
		r.OnLeave()
	}
}

// Reset forgets the hover state without firing callbacks.
func (r *Region) Reset() {
	r.hovered = false
}
