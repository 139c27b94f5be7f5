package gesture

import "time"

// PointerKind distinguishes the phases of a pointer interaction.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// String returns a string representation of the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return ""
	}
}

// PointerEvent is one sample of pointer input in window coordinates.
// Mouse and touch input both normalize to this shape before reaching a
// Recognizer, so gesture handling never sees the windowing layer.
type PointerEvent struct {
	Kind PointerKind
	X    float64
	Y    float64
	Time time.Time
}
