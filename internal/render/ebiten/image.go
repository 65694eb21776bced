package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/lookout/internal/render"
)

// surface adapts *ebiten.Image to render.Image.
type surface struct {
	img *ebiten.Image
}

func target(img render.Image) *ebiten.Image {
	return img.(*surface).img
}

func (s *surface) Bounds() image.Rectangle { return s.img.Bounds() }

func (s *surface) Fill(clr color.Color) { s.img.Fill(clr) }

func (s *surface) Dispose() {
	if s.img != nil {
		s.img.Deallocate()
	}
}

func (s *surface) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	var op ebiten.DrawImageOptions
	if opts != nil {
		if g, ok := opts.GeoM.(*geoM); ok {
			op.GeoM = g.m
		}
		if opts.Alpha > 0 && opts.Alpha < 1 {
			op.ColorScale.ScaleAlpha(opts.Alpha)
		}
	}
	s.img.DrawImage(target(src), &op)
}

type geoM struct {
	m ebiten.GeoM
}

func (g *geoM) Translate(tx, ty float64) { g.m.Translate(tx, ty) }
