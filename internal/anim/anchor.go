package anim

import "github.com/go-gl/mathgl/mgl64"

// Rect is an on-screen bounding box.
type Rect struct {
	Left, Top, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.Left + r.Width/2, r.Top + r.Height/2}
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Left+r.Width &&
		y >= r.Top && y <= r.Top+r.Height
}

// Anchor is a live handle to a rendered shape's geometry. Bounds reports
// false while the element is not mounted.
type Anchor interface {
	Bounds() (Rect, bool)
}

// AnchorFunc adapts a function to the Anchor interface.
type AnchorFunc func() (Rect, bool)

// Bounds calls f.
func (f AnchorFunc) Bounds() (Rect, bool) {
	return f()
}

// AnchorTable maps shape IDs to the anchors the rendering layer registered.
// Written at mount, read by the sampler.
type AnchorTable struct {
	anchors map[string]Anchor
}

// NewAnchorTable creates an empty table.
func NewAnchorTable() *AnchorTable {
	return &AnchorTable{anchors: make(map[string]Anchor)}
}

// Set registers the anchor for a shape, replacing any previous one.
func (t *AnchorTable) Set(id string, a Anchor) {
	if a == nil {
		delete(t.anchors, id)
		return
	}
	t.anchors[id] = a
}

// Unset removes the anchor for a shape.
func (t *AnchorTable) Unset(id string) {
	delete(t.anchors, id)
}

// Resolve returns the current bounds for a shape. It fails when no anchor
// is registered or the anchor reports that it is not mounted.
func (t *AnchorTable) Resolve(id string) (Rect, bool) {
	a, ok := t.anchors[id]
	if !ok {
		return Rect{}, false
	}
	return a.Bounds()
}

// Len returns the number of registered anchors.
func (t *AnchorTable) Len() int {
	return len(t.anchors)
}
