// Package ebiten is the Ebiten backend for the render interfaces.
package ebiten

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/lookout/internal/render"
)

// debug font cell, in pixels
const (
	glyphWidth  = 6
	glyphHeight = 16
)

func init() {
	render.NewGeoM = func() render.GeoM { return &geoM{} }
}

// Renderer draws vector shapes and debug text onto Ebiten images.
type Renderer struct {
	white *ebiten.Image
}

// NewRenderer returns the Ebiten renderer.
func NewRenderer() render.Renderer {
	return &Renderer{}
}

func (r *Renderer) NewImage(width, height int) render.Image {
	return &surface{img: ebiten.NewImage(width, height)}
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(target(dst), x, y, radius, clr, true)
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius, width float32, clr color.Color) {
	vector.StrokeCircle(target(dst), x, y, radius, width, clr, true)
}

func (r *Renderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(target(dst), x, y, w, h, clr, true)
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, w, h, width float32, clr color.Color) {
	vector.StrokeRect(target(dst), x, y, w, h, width, clr, true)
}

func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(target(dst), x0, y0, x1, y1, width, clr, true)
}

// FillPolygon triangulates the outline with a vector path and paints it with
// a 1x1 white source tinted per vertex.
func (r *Renderer) FillPolygon(dst render.Image, points []mgl64.Vec2, clr color.Color) {
	if len(points) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X()), float32(points[0].Y()))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X()), float32(p.Y()))
	}
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)

	if r.white == nil {
		r.white = ebiten.NewImage(1, 1)
		r.white.Fill(color.White)
	}

	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	target(dst).DrawTriangles(vs, is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawText prints with Ebiten's debug font; clr and scale are ignored.
// TODO: switch to text/v2 with a bundled face so labels honour colour and scale.
func (r *Renderer) DrawText(dst render.Image, str string, x, y int, _ color.Color, _ float64) {
	ebitenutil.DebugPrintAt(target(dst), str, x, y)
}

// MeasureText approximates the debug font's extent.
func (r *Renderer) MeasureText(str string, scale float64) (int, int) {
	return int(float64(len([]rune(str))) * glyphWidth * scale), int(glyphHeight * scale)
}
