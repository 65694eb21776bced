// Package anim implements the pointer-reactive animation driver behind the
// login scene: it turns pointer positions into bounded per-shape offsets and
// forces every shape back to neutral while the password field is hovered,
// focused or being typed into.
package anim

// ShapeConfig is the static description of one animated shape. Maxima are
// magnitudes: every offset component stays within [-max, max].
type ShapeConfig struct {
	ID          string
	FaceMax     float64
	EyeMax      float64
	RotationMax float64 // degrees
	BodySkewMax float64 // degrees
	Layout      Layout
}

// Layout holds optional placement parameters for the rendering layer.
// The driver never reads them.
type Layout struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
	Opacity    float64
	ZIndex     int
}

// ScaleOrDefault returns the layout scale, treating zero as 1.
func (l Layout) ScaleOrDefault() float64 {
	if l.Scale == 0 {
		return 1
	}
	return l.Scale
}

// OpacityOrDefault returns the layout opacity, treating zero as fully opaque.
func (l Layout) OpacityOrDefault() float64 {
	if l.Opacity == 0 {
		return 1
	}
	return l.Opacity
}
