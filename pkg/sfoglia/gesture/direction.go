package gesture

import "github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"

// Direction describes which way a pan must travel to dismiss a screen.
// The inverted variants flip the sign for right-to-left layouts and
// bottom-sheet style presentations.
type Direction int

const (
	// Horizontal dismisses by panning toward the trailing edge (rightward),
	// starting from the leading edge. The card-stack default.
	Horizontal Direction = iota

	// HorizontalInverted dismisses by panning leftward from the trailing
	// edge. Used for right-to-left layouts.
	HorizontalInverted

	// Vertical dismisses by panning downward, starting from the top strip.
	// The modal default.
	Vertical

	// VerticalInverted dismisses by panning upward from the bottom strip.
	// Used for bottom sheets.
	VerticalInverted
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case HorizontalInverted:
		return "horizontal-inverted"
	case Vertical:
		return "vertical"
	case VerticalInverted:
		return "vertical-inverted"
	default:
		return ""
	}
}

// IsVertical reports whether the dismiss axis is the Y axis.
func (d Direction) IsVertical() bool {
	return d == Vertical || d == VerticalInverted
}

// multiplier normalizes signed axis deltas so that positive always means
// "toward dismissal" regardless of direction.
func (d Direction) multiplier() float64 {
	switch d {
	case HorizontalInverted, VerticalInverted:
		return -1
	default:
		return 1
	}
}

// ResponseDistance bounds the edge strip where a dismiss pan may begin.
// Horizontal applies to the left/right directions, Vertical to the
// top/bottom ones; the other field is ignored.
type ResponseDistance struct {
	Horizontal float64
	Vertical   float64
}

// DefaultResponseDistance returns the stock edge strip sizes.
func DefaultResponseDistance() ResponseDistance {
	return ResponseDistance{
		Horizontal: constants.DefaultGestureResponseDistanceHorizontal,
		Vertical:   constants.DefaultGestureResponseDistanceVertical,
	}
}
