// Package constants defines shared constants, types, and configuration values
// used throughout the sfoglia navigation framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// BackgroundPathEnvVar is the environment variable name for custom background image path.
const BackgroundPathEnvVar = "BACKGROUND_PATH"

// NitratesEnvVar enables debug logging when set (any non-empty value).
const NitratesEnvVar = "NITRATES"

// WindowWidthEnvVar overrides the window width in development mode.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar overrides the window height in development mode.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction allows sfoglia to work with different controller configurations.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonL2:
		return "L2"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonR2:
		return "R2"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPower:
		return "Power"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay         = 20 * time.Millisecond  // Debounce delay between input events
	DefaultRepeatDelay        = 300 * time.Millisecond // Hold time before directional input starts repeating
	DefaultRepeatInterval     = 50 * time.Millisecond  // Interval between directional repeats once started
	DefaultHeaderHeight int32 = 56                     // Header bar height in logical pixels, before safe-area top inset
)

// Gesture tuning defaults. These are empirical UX constants carried over from
// mobile navigation conventions; every one of them can be overridden per
// screen or through a transition tuning file.
const (
	// DefaultGestureResponseDistanceHorizontal is how far from the screen's
	// start edge (in logical pixels) a horizontal dismiss pan may begin.
	DefaultGestureResponseDistanceHorizontal = 25.0

	// DefaultGestureResponseDistanceVertical is the height of the strip at the
	// screen's top (or bottom, for inverted direction) where a vertical
	// dismiss pan may begin. Sized to cover the header plus some slack.
	DefaultGestureResponseDistanceVertical = 135.0

	// DefaultGestureVelocityImpact weights release velocity against travelled
	// distance when deciding whether a released pan dismisses the screen.
	DefaultGestureVelocityImpact = 0.3

	// DefaultGestureOverscroll is how far past the resting position (progress
	// 1.0) a pan may drag a card, as a fraction of the gesture extent.
	DefaultGestureOverscroll = 0.05
)
