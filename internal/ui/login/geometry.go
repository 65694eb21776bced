package login

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const arcSegments = 12

// arc appends points along a circular arc around c, from angle a0 to a1 (radians).
func arc(points []mgl64.Vec2, c mgl64.Vec2, radius, a0, a1 float64) []mgl64.Vec2 {
	for i := 0; i <= arcSegments; i++ {
		a := a0 + (a1-a0)*float64(i)/arcSegments
		points = append(points, mgl64.Vec2{c.X() + radius*math.Cos(a), c.Y() + radius*math.Sin(a)})
	}
	return points
}

// roundedRect outlines a rectangle whose top corners use radius top and bottom
// corners use radius bottom. Radii are clamped to half the width and height.
func roundedRect(left, top, width, height, rTop, rBottom float64) []mgl64.Vec2 {
	limit := math.Min(width, height) / 2
	rTop = math.Min(rTop, limit)
	rBottom = math.Min(rBottom, limit)
	right, bottom := left+width, top+height

	points := make([]mgl64.Vec2, 0, 4*(arcSegments+1))
	points = arc(points, mgl64.Vec2{left + rTop, top + rTop}, rTop, math.Pi, 1.5*math.Pi)
	points = arc(points, mgl64.Vec2{right - rTop, top + rTop}, rTop, 1.5*math.Pi, 2*math.Pi)
	points = arc(points, mgl64.Vec2{right - rBottom, bottom - rBottom}, rBottom, 0, 0.5*math.Pi)
	points = arc(points, mgl64.Vec2{left + rBottom, bottom - rBottom}, rBottom, 0.5*math.Pi, math.Pi)
	return points
}

// ellipse outlines an ellipse inscribed in the given box.
func ellipse(left, top, width, height float64) []mgl64.Vec2 {
	c := mgl64.Vec2{left + width/2, top + height/2}
	points := make([]mgl64.Vec2, 0, 4*arcSegments)
	for i := 0; i < 4*arcSegments; i++ {
		a := 2 * math.Pi * float64(i) / (4 * arcSegments)
		points = append(points, mgl64.Vec2{c.X() + width/2*math.Cos(a), c.Y() + height/2*math.Sin(a)})
	}
	return points
}

// skewX shears points horizontally around the horizontal line y = originY,
// matching a CSS skewX with a bottom transform origin.
func skewX(points []mgl64.Vec2, degrees, originY float64) []mgl64.Vec2 {
	if degrees == 0 {
		return points
	}
	k := math.Tan(mgl64.DegToRad(degrees))
	out := make([]mgl64.Vec2, len(points))
	for i, p := range points {
		out[i] = mgl64.Vec2{p.X() + k*(p.Y()-originY), p.Y()}
	}
	return out
}

// frame maps face-local coordinates to screen space: rotate, scale, translate.
type frame struct {
	origin mgl64.Vec2
	rot    mgl64.Mat2
	scale  float64
}

func newFrame(origin mgl64.Vec2, degrees, scale float64) frame {
	return frame{origin: origin, rot: mgl64.Rotate2D(mgl64.DegToRad(degrees)), scale: scale}
}

func (f frame) at(x, y float64) mgl64.Vec2 {
	return f.origin.Add(f.rot.Mul2x1(mgl64.Vec2{x, y}).Mul(f.scale))
}
