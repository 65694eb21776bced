package anim

import "github.com/go-gl/mathgl/mgl64"

// DefaultReferenceDistance is the pointer distance, per axis, at which an
// offset reaches its maximum.
const DefaultReferenceDistance = 150.0

// Normalize maps the pointer's offset from center onto [-1, 1] per axis.
func Normalize(pointer, center mgl64.Vec2, referenceDistance float64) mgl64.Vec2 {
	delta := pointer.Sub(center)
	return mgl64.Vec2{
		mgl64.Clamp(delta.X()/referenceDistance, -1, 1),
		mgl64.Clamp(delta.Y()/referenceDistance, -1, 1),
	}
}

// Apply scales a normalized direction by the shape's maxima.
func Apply(cfg ShapeConfig, n mgl64.Vec2) OffsetVector {
	return OffsetVector{
		Face: FaceOffset{
			X:      cfg.FaceMax * n.X(),
			Y:      cfg.FaceMax * n.Y(),
			Rotate: cfg.RotationMax * n.X(),
		},
		Eyes: EyeOffset{
			X: cfg.EyeMax * n.X(),
			Y: cfg.EyeMax * n.Y(),
		},
		BodySkew: -cfg.BodySkewMax * n.X(),
	}
}

// Sample computes the offset for one shape whose anchor has the given bounds.
func Sample(cfg ShapeConfig, bounds Rect, pointer mgl64.Vec2, referenceDistance float64) OffsetVector {
	return Apply(cfg, Normalize(pointer, bounds.Center(), referenceDistance))
}
