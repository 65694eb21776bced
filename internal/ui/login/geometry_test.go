package login

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSkewXKeepsBaseline(t *testing.T) {
	points := []mgl64.Vec2{{0, 100}, {10, 100}, {10, 0}, {0, 0}}

	out := skewX(points, 45, 100)

	if !out[0].ApproxEqual(points[0]) || !out[1].ApproxEqual(points[1]) {
		t.Errorf("Expected baseline points unchanged, got %v", out[:2])
	}
	if math.Abs(out[2].X()-(10-100)) > 1e-9 {
		t.Errorf("Expected top point sheared by -100, got %v", out[2])
	}
	if !points[2].ApproxEqual(mgl64.Vec2{10, 0}) {
		t.Error("Expected input slice left untouched")
	}
}

func TestSkewXZeroIsIdentity(t *testing.T) {
	points := []mgl64.Vec2{{1, 2}, {3, 4}}
	out := skewX(points, 0, 10)
	if &out[0] != &points[0] {
		t.Error("Expected zero skew to return the input")
	}
}

func TestFrameRotatesAroundOrigin(t *testing.T) {
	f := newFrame(mgl64.Vec2{100, 100}, 90, 2)

	p := f.at(10, 0)

	if !p.ApproxEqualThreshold(mgl64.Vec2{100, 120}, 1e-9) {
		t.Errorf("Expected (100, 120), got %v", p)
	}
	if o := f.at(0, 0); !o.ApproxEqual(mgl64.Vec2{100, 100}) {
		t.Errorf("Expected origin fixed, got %v", o)
	}
}

func TestRoundedRectStaysInBox(t *testing.T) {
	points := roundedRect(10, 20, 100, 60, 500, 8)

	for _, p := range points {
		if p.X() < 10-1e-9 || p.X() > 110+1e-9 || p.Y() < 20-1e-9 || p.Y() > 80+1e-9 {
			t.Fatalf("Expected point inside the box, got %v", p)
		}
	}
	if len(points) != 4*(arcSegments+1) {
		t.Errorf("Expected %d points, got %d", 4*(arcSegments+1), len(points))
	}
}

func TestEllipseTouchesBox(t *testing.T) {
	points := ellipse(0, 0, 40, 20)

	if !points[0].ApproxEqual(mgl64.Vec2{40, 10}) {
		t.Errorf("Expected first point on the right edge, got %v", points[0])
	}
}
