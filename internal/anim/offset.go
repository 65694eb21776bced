package anim

// FaceOffset displaces and rotates a shape's face.
type FaceOffset struct {
	X, Y   float64
	Rotate float64 // degrees
}

// EyeOffset displaces a shape's pupils inside the face.
type EyeOffset struct {
	X, Y float64
}

// OffsetVector is the per-frame displacement of one shape.
// The zero value is the neutral vector.
type OffsetVector struct {
	Face     FaceOffset
	Eyes     EyeOffset
	BodySkew float64 // degrees
}

// Neutral returns the zero offset.
func Neutral() OffsetVector {
	return OffsetVector{}
}

// IsNeutral reports whether every component is zero.
func (o OffsetVector) IsNeutral() bool {
	return o == OffsetVector{}
}

func neutralSet(n int) []OffsetVector {
	return make([]OffsetVector, n)
}

// InteractionState holds the two independent suppression flags.
type InteractionState struct {
	// PointerInside is set while the pointer hovers or focus rests on the
	// suppressing region.
	PointerInside bool
	// Typing is set on key activity and cleared by the debounce timer.
	Typing bool
}

// Suppressed reports whether either flag is set.
func (s InteractionState) Suppressed() bool {
	return s.PointerInside || s.Typing
}
