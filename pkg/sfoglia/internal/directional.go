package internal

import (
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// Direction is a held dpad direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalInput turns dpad press/release transitions into hold-to-repeat
// pulses. Scenes feed button transitions through SetHeld and call Update
// once per frame; the first pulse fires after the repeat delay, later ones
// at the repeat interval. The initial press itself is the scene's to act
// on, so a tap moves exactly one step.
type DirectionalInput struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeat  time.Time
	hasRepeated bool

	repeatDelay    time.Duration
	repeatInterval time.Duration
}

// NewDirectionalInput creates a DirectionalInput with the framework's
// default repeat timing.
func NewDirectionalInput() DirectionalInput {
	return DirectionalInput{
		repeatDelay:    constants.DefaultRepeatDelay,
		repeatInterval: constants.DefaultRepeatInterval,
		lastRepeat:     time.Now(),
	}
}

// SetHeld records a button transition. Returns true when the button was a
// directional one, whether pressed or released.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	var slot *bool
	switch button {
	case constants.VirtualButtonUp:
		slot = &d.held.up
	case constants.VirtualButtonDown:
		slot = &d.held.down
	case constants.VirtualButtonLeft:
		slot = &d.held.left
	case constants.VirtualButtonRight:
		slot = &d.held.right
	default:
		return false
	}

	*slot = held
	if !held {
		d.hasRepeated = false
	}
	return true
}

// IsHeld reports whether any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.up || d.held.down || d.held.left || d.held.right
}

// HeldDirection returns the held direction, preferring vertical over
// horizontal when several are down at once.
func (d *DirectionalInput) HeldDirection() Direction {
	switch {
	case d.held.up:
		return DirectionUp
	case d.held.down:
		return DirectionDown
	case d.held.left:
		return DirectionLeft
	case d.held.right:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// Update returns the direction that should repeat this frame, or
// DirectionNone. Call once per frame while the scene is focused.
func (d *DirectionalInput) Update() Direction {
	if !d.IsHeld() {
		d.lastRepeat = time.Now()
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if time.Since(d.lastRepeat) < threshold {
		return DirectionNone
	}
	d.lastRepeat = time.Now()
	d.hasRepeated = true
	return d.HeldDirection()
}

// Reset drops all held state, for scenes that lose focus mid-hold.
func (d *DirectionalInput) Reset() {
	d.held.up, d.held.down, d.held.left, d.held.right = false, false, false, false
	d.hasRepeated = false
	d.lastRepeat = time.Now()
}
