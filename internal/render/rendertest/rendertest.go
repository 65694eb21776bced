// Package rendertest provides in-memory render and input doubles for tests.
package rendertest

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/lookout/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// Input is a scriptable render.InputManager. Tests set the fields for the
// next tick and call EndTick to clear the one-shot edges.
type Input struct {
	CursorX, CursorY int

	JustPressed  map[render.Key]bool
	AnyDown      bool
	AnyUp        bool
	Chars        []rune
	MouseClicked map[render.MouseButton]bool
}

// NewInput creates an input with no keys held and the cursor at the origin.
func NewInput() *Input {
	return &Input{
		JustPressed:  make(map[render.Key]bool),
		MouseClicked: make(map[render.MouseButton]bool),
	}
}

// MoveTo sets the cursor position.
func (i *Input) MoveTo(x, y int) {
	i.CursorX, i.CursorY = x, y
}

// Press marks key as just pressed this tick.
func (i *Input) Press(key render.Key) {
	i.JustPressed[key] = true
	i.AnyDown = true
}

// Type queues runes as typed this tick, with the matching key-down edge.
func (i *Input) Type(s string) {
	i.Chars = append(i.Chars, []rune(s)...)
	i.AnyDown = true
}

// Click marks the left button as clicked at (x, y).
func (i *Input) Click(x, y int) {
	i.MoveTo(x, y)
	i.MouseClicked[render.MouseButtonLeft] = true
}

// EndTick clears the per-tick edges. Keys pressed this tick are released on
// the next one.
func (i *Input) EndTick() {
	released := len(i.Chars) > 0 || i.AnyDown
	i.JustPressed = make(map[render.Key]bool)
	i.MouseClicked = make(map[render.MouseButton]bool)
	i.Chars = nil
	i.AnyDown = false
	i.AnyUp = released
}

func (i *Input) IsKeyJustPressed(key render.Key) bool { return i.JustPressed[key] }
func (i *Input) AnyKeyJustPressed() bool              { return i.AnyDown }
func (i *Input) AnyKeyJustReleased() bool             { return i.AnyUp }
func (i *Input) GetCursorPosition() (int, int)        { return i.CursorX, i.CursorY }

func (i *Input) AppendInputChars(runes []rune) []rune {
	return append(runes, i.Chars...)
}

func (i *Input) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return i.MouseClicked[b]
}

// Renderer counts draw calls and keeps every string drawn.
type Renderer struct {
	Circles  int
	Rings    int
	Rects    int
	Lines    int
	Polygons int
	Texts    []string
}

// NewRenderer creates a recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Reset clears the recorded calls.
func (r *Renderer) Reset() {
	*r = Renderer{}
}

func (r *Renderer) NewImage(width, height int) render.Image {
	return NewImage(width, height)
}

func (r *Renderer) FillCircle(render.Image, float32, float32, float32, color.Color) { r.Circles++ }

func (r *Renderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {
	r.Rings++
}

func (r *Renderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {
	r.Rects++
}

func (r *Renderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
	r.Rects++
}

func (r *Renderer) StrokeLine(render.Image, float32, float32, float32, float32, float32, color.Color) {
	r.Lines++
}

func (r *Renderer) FillPolygon(_ render.Image, points []mgl64.Vec2, _ color.Color) {
	if len(points) >= 3 {
		r.Polygons++
	}
}

func (r *Renderer) DrawText(_ render.Image, text string, _, _ int, _ color.Color, _ float64) {
	r.Texts = append(r.Texts, text)
}

func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len([]rune(text))) * 6 * scale), int(16 * scale)
}

// Image is an in-memory render.Image that records fills and draws.
type Image struct {
	W, H     int
	Filled   color.Color
	Draws    int
	Disposed bool
}

// NewImage creates an image of the given size.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

func (i *Image) Bounds() image.Rectangle                          { return image.Rect(0, 0, i.W, i.H) }
func (i *Image) Fill(clr color.Color)                             { i.Filled = clr }
func (i *Image) DrawImage(render.Image, *render.DrawImageOptions) { i.Draws++ }
func (i *Image) Dispose()                                         { i.Disposed = true }

// GeoM is a no-op transform.
type GeoM struct{}

func (g *GeoM) Translate(float64, float64) {}
