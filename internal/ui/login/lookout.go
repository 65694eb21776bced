package login

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/lookout/internal/anim"
	"chosenoffset.com/lookout/internal/config"
	"chosenoffset.com/lookout/internal/render"
)

// palette holds the parsed appearance colours of one lookout.
type palette struct {
	shell, face, feature, highlight, eyelid, ear colorful.Color
}

func parsePalette(a config.Appearance) (palette, error) {
	var p palette
	fields := []struct {
		dst *colorful.Color
		hex string
	}{
		{&p.shell, a.ShellColor},
		{&p.face, a.FaceColor},
		{&p.feature, a.FeatureColor},
		{&p.highlight, a.HighlightColor},
		{&p.eyelid, a.EyelidColor},
		{&p.ear, a.EarColor},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return palette{}, fmt.Errorf("failed to parse colour %q: %w", f.hex, err)
		}
		*f.dst = c
	}
	return p, nil
}

// Lookout is the rendered form of one shape. It is the shape's anchor: its
// bounds follow the current layout and it reports unmounted outside
// Mount/Unmount.
type Lookout struct {
	cfg        anim.ShapeConfig
	appearance config.Appearance
	colors     palette

	// Bottom-centre of the shell and the effective scale, set by layout.
	base    mgl64.Vec2
	scale   float64
	mounted bool
}

func newLookout(shape config.Shape) (*Lookout, error) {
	colors, err := parsePalette(shape.Appearance)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", shape.ID, err)
	}
	return &Lookout{
		cfg:        shape.ShapeConfig(),
		appearance: shape.Appearance,
		colors:     colors,
		scale:      1,
	}, nil
}

// ID returns the shape id.
func (l *Lookout) ID() string {
	return l.cfg.ID
}

// Bounds implements anim.Anchor.
func (l *Lookout) Bounds() (anim.Rect, bool) {
	if !l.mounted {
		return anim.Rect{}, false
	}
	w, h := l.size()
	return anim.Rect{
		Left:   l.base.X() - w/2,
		Top:    l.base.Y() - h,
		Width:  w,
		Height: h,
	}, true
}

func (l *Lookout) size() (float64, float64) {
	return l.appearance.Width * l.scale, l.appearance.Height * l.scale
}

func (l *Lookout) shellOutline() []mgl64.Vec2 {
	w, h := l.size()
	left, top := l.base.X()-w/2, l.base.Y()-h
	switch l.appearance.Silhouette {
	case "block":
		return roundedRect(left, top, w, h, 42*l.scale, 42*l.scale)
	case "round":
		return ellipse(left, top, w, h)
	case "tall":
		return roundedRect(left, top, w, h, 24*l.scale, 80*l.scale)
	default: // "dome"
		return roundedRect(left, top, w, h, w/2, 30*l.scale)
	}
}

// Draw paints the lookout with the given offsets. Closed eyes replace the
// pupils while suppressed.
func (l *Lookout) Draw(r render.Renderer, screen render.Image, o anim.OffsetVector, suppressed bool) {
	alpha := l.cfg.Layout.OpacityOrDefault()
	s := l.scale
	w, h := l.size()
	top := l.base.Y() - h

	// Ears sit behind the shell and follow the face at 40%.
	earFrame := newFrame(
		mgl64.Vec2{l.base.X() + o.Face.X*0.4*s, top + 31*s + o.Face.Y*0.4*s},
		o.Face.Rotate, s)
	for _, side := range []float64{-1, 1} {
		p := earFrame.at(side*(w/s/2+4), 0)
		r.FillCircle(screen, float32(p.X()), float32(p.Y()), float32(23*s), withAlpha(l.colors.ear, alpha))
	}

	shell := skewX(l.shellOutline(), o.BodySkew, l.base.Y())
	r.FillPolygon(screen, shell, withAlpha(l.colors.shell, alpha))

	// Face: a disc with a lower patch, rotated around its own centre.
	face := newFrame(
		mgl64.Vec2{l.base.X() + o.Face.X*s, top + 69*s + o.Face.Y*s},
		o.Face.Rotate, s)
	faceColor := withAlpha(l.colors.face, alpha)
	for _, c := range [][2]float64{{0, -20}, {0, -4}} {
		p := face.at(c[0], c[1])
		r.FillCircle(screen, float32(p.X()), float32(p.Y()), float32(25*s), faceColor)
	}
	r.FillPolygon(screen, []mgl64.Vec2{
		face.at(-17.5, -4), face.at(17.5, -4), face.at(17.5, 14), face.at(-17.5, 14),
	}, faceColor)

	feature := withAlpha(l.colors.feature, alpha)
	nose := face.at(0, -8)
	r.FillCircle(screen, float32(nose.X()), float32(nose.Y()), float32(7*s), feature)
	m0, m1 := face.at(-4.5, 17), face.at(4.5, 17)
	r.StrokeLine(screen, float32(m0.X()), float32(m0.Y()), float32(m1.X()), float32(m1.Y()), float32(2*s), feature)

	for _, side := range []float64{-1, 1} {
		ex, ey := side*10.5+o.Eyes.X, -31+o.Eyes.Y
		if suppressed {
			a, b := face.at(ex-7, ey+1), face.at(ex+7, ey+1)
			r.StrokeLine(screen, float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()), float32(3*s), withAlpha(l.colors.eyelid, alpha))
			continue
		}
		socket := face.at(side*10.5, -31)
		r.StrokeCircle(screen, float32(socket.X()), float32(socket.Y()), float32(9*s), float32(1.5*s), feature)
		pupil := face.at(ex, ey)
		r.FillCircle(screen, float32(pupil.X()), float32(pupil.Y()), float32(6*s), feature)
		glint := face.at(ex-2, ey-2)
		r.FillCircle(screen, float32(glint.X()), float32(glint.Y()), float32(1.8*s), withAlpha(l.colors.highlight, alpha))
	}
}

func withAlpha(c colorful.Color, alpha float64) color.Color {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(mgl64.Clamp(alpha, 0, 1) * 255)}
}
