// Package anim provides the animated scalar values that drive sfoglia's
// screen transitions. Each mounted screen owns one Value describing how
// open it is (0 = fully closed/off-screen, 1 = fully open); the value is
// moved either by a timing/spring driver or directly by the gesture bridge,
// never both at once.
//
// Values are stepped cooperatively, once per rendered frame, with an
// explicit timestamp. Between steps a Value is stable and may be read any
// number of times.
package anim

import "time"

// maxFrameDelta bounds the time step fed to drivers so a stalled frame
// (window drag, suspend) does not catapult the simulation.
const maxFrameDelta = 0.25

// driver advances a value toward a target. Implementations keep their own
// integration state; step reports the new position and velocity plus
// whether the driver has finished.
type driver interface {
	step(dt float64) (pos, vel float64, done bool)
}

// Value is a mutable animated scalar. The zero Value is ready to use and
// reads as a settled 0; NewValue constructs one at a chosen position.
//
// Exactly one driver owns a Value at any instant: an animation started by
// AnimateTo, the gesture bridge writing through SetImmediate, or none
// (settled). Starting a new driver atomically cancels the previous one.
type Value struct {
	position float64
	velocity float64
	driver   driver
	onSettle func()
	lastStep time.Time
}

// NewValue creates a settled Value at the given position.
func NewValue(initial float64) *Value {
	return &Value{position: initial}
}

// Position returns the current scalar position.
func (v *Value) Position() float64 { return v.position }

// Velocity returns the current rate of change in progress units per second.
func (v *Value) Velocity() float64 { return v.velocity }

// Settled reports whether no driver currently owns the value.
func (v *Value) Settled() bool { return v.driver == nil }

// AnimateTo starts an animation toward target, cancelling any in-flight
// driver on this value. The new driver takes over from the current position
// and velocity, so retargeting a moving spring keeps its momentum instead
// of jumping. onSettle fires exactly once when the animation completes; a
// cancelled animation's callback is dropped, never fired.
func (v *Value) AnimateTo(target float64, cfg Config, onSettle func()) {
	switch cfg.Kind {
	case KindSpring:
		v.driver = newSpringDriver(v.position, v.velocity, target, cfg.Spring)
	default:
		v.driver = newTimingDriver(v.position, target, cfg.Timing)
	}
	v.onSettle = onSettle
	v.lastStep = time.Time{}
}

// Snap moves the value to target instantly and fires onSettle synchronously.
// Used for screens with animation disabled, where the transition lifecycle
// must start and end within the same update.
func (v *Value) Snap(target float64, onSettle func()) {
	v.driver = nil
	v.onSettle = nil
	v.position = target
	v.velocity = 0
	if onSettle != nil {
		onSettle()
	}
}

// SetImmediate moves the value directly without animating, detaching any
// in-flight driver. This is the gesture path: the bridge writes the pan
// position here every frame while tracking. Velocity resets to zero; a
// bridge that wants a release fling to carry into the next animation seeds
// it explicitly with SetVelocity.
func (v *Value) SetImmediate(pos float64) {
	v.driver = nil
	v.onSettle = nil
	v.position = pos
	v.velocity = 0
}

// SetVelocity overrides the current velocity. A following AnimateTo picks
// it up as the driver's initial condition.
func (v *Value) SetVelocity(vel float64) { v.velocity = vel }

// CancelAnimation detaches the current driver, if any, without firing its
// settle callback. The value stays wherever it is.
func (v *Value) CancelAnimation() {
	v.driver = nil
	v.onSettle = nil
}

// Step advances the owning driver by the elapsed time since the previous
// Step. It returns true while an animation is still running. When the
// driver finishes, the value snaps to its final position, the driver
// detaches, and the settle callback fires (after detachment, so the
// callback may start a new animation on this same value).
func (v *Value) Step(now time.Time) bool {
	if v.driver == nil {
		return false
	}

	if v.lastStep.IsZero() {
		// First frame after the animation started; prime the timestamp so
		// the next step has a real delta.
		v.lastStep = now
		return true
	}

	dt := now.Sub(v.lastStep).Seconds()
	v.lastStep = now
	if dt <= 0 {
		return true
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	pos, vel, done := v.driver.step(dt)
	v.position = pos
	v.velocity = vel

	if done {
		v.driver = nil
		callback := v.onSettle
		v.onSettle = nil
		if callback != nil {
			callback()
		}
		return false
	}
	return true
}
