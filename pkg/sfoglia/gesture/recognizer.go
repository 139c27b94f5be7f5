// Package gesture turns raw pointer input into dismiss progress for the
// top screen of a navigation stack. A Recognizer arms when a pointer
// lands inside the screen's response edge, captures once the pan commits
// to the dismiss axis, writes the screen's progress value directly while
// the pointer is down, and on release decides between completing the
// dismissal and springing back open.
//
// Recognizers are headless: they consume PointerEvent samples and talk to
// the rest of the stack through Hooks, so the whole state machine is
// testable without a window.
package gesture

import (
	"math"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/anim"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

const (
	// activationDistance is how far a pan must travel along the dismiss
	// axis, toward dismissal, before the recognizer captures it and starts
	// driving progress.
	activationDistance = 5.0

	// failDistance is how much cross-axis travel an uncaptured pan may
	// accumulate before the recognizer gives it up as the screen's own
	// scrolling.
	failDistance = 15.0
)

// State identifies where a Recognizer is in its lifecycle.
type State int

const (
	// StateIdle means no pan is in flight.
	StateIdle State = iota

	// StateTracking means a pointer is down inside the response edge. Once
	// the pan commits to the dismiss axis the recognizer captures it and
	// drives the progress value until release.
	StateTracking

	// StateCompleting means the pan released past the dismiss threshold and
	// the screen is animating closed.
	StateCompleting

	// StateCanceling means the pan released short of the threshold and the
	// screen is animating back open.
	StateCanceling
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateCompleting:
		return "completing"
	case StateCanceling:
		return "canceling"
	default:
		return ""
	}
}

// Config tunes a single screen's dismiss gesture. Zero values are honored
// as given; use DefaultConfig for the stock tuning.
type Config struct {
	Direction        Direction
	ResponseDistance ResponseDistance

	// VelocityImpact weights release velocity against travelled distance in
	// the dismiss decision, so a short flick can dismiss and a slow drag
	// past halfway can too.
	VelocityImpact float64

	// Overscroll is how far past the resting position (progress 1) a pan
	// may drag the card, as a fraction of the gesture extent.
	Overscroll float64
}

// DefaultConfig returns the stock gesture tuning.
func DefaultConfig() Config {
	return Config{
		Direction:        Horizontal,
		ResponseDistance: DefaultResponseDistance(),
		VelocityImpact:   constants.DefaultGestureVelocityImpact,
		Overscroll:       constants.DefaultGestureOverscroll,
	}
}

// Release reports the outcome of a captured pan when the pointer lifts.
type Release struct {
	// Completing is true when the release commits the dismissal.
	Completing bool

	// Translation is the signed travel along the dismiss axis, in pixels.
	Translation float64

	// Velocity is the release velocity along the dismiss axis, in pixels
	// per second.
	Velocity float64

	// ProgressVelocity is Velocity mapped into progress units per second,
	// ready to seed the settle animation. Negative while travelling toward
	// dismissal.
	ProgressVelocity float64
}

// Hooks connects a Recognizer to its owning navigator. Nil fields are
// skipped.
type Hooks struct {
	// Claim asks for the stack's gesture token at pointer-down. Returning
	// false vetoes the pan; at most one recognizer in a stack holds the
	// token at a time.
	Claim func() bool

	// Free returns the token. Called exactly once for every successful
	// Claim, when the recognizer goes back to idle.
	Free func()

	// Began fires when an armed pan commits to the dismiss axis and the
	// recognizer starts driving the progress value.
	Began func()

	// Ended fires when a captured pan releases, after the recognizer has
	// moved to StateCompleting or StateCanceling.
	Ended func(Release)
}

// Recognizer is the per-screen dismiss gesture state machine:
// idle, tracking, then completing or canceling, then idle again.
type Recognizer struct {
	cfg   Config
	value *anim.Value
	hooks Hooks

	state    State
	captured bool
	width    float64
	height   float64
	extent   float64
	startX   float64
	startY   float64
	tracker  VelocityTracker
}

// NewRecognizer creates an idle recognizer driving the given progress
// value. Call SetLayout before feeding it events.
func NewRecognizer(value *anim.Value, cfg Config, hooks Hooks) *Recognizer {
	return &Recognizer{cfg: cfg, value: value, hooks: hooks}
}

// SetLayout updates the screen dimensions used for edge tests and for the
// gesture extent. Force-cancel an active pan before changing the layout
// underneath it.
func (r *Recognizer) SetLayout(width, height float64) {
	r.width = width
	r.height = height
}

// State returns the current lifecycle state.
func (r *Recognizer) State() State { return r.state }

// Swiping reports whether a captured pan is currently driving the
// progress value.
func (r *Recognizer) Swiping() bool { return r.state == StateTracking && r.captured }

// Handle feeds one pointer event through the state machine. It returns
// true when the event belonged to the recognizer; events it returns false
// for are free for the screen's own content.
func (r *Recognizer) Handle(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		return r.pointerDown(ev)
	case PointerMove:
		return r.pointerMove(ev)
	case PointerUp:
		return r.pointerUp(ev)
	default:
		return false
	}
}

func (r *Recognizer) pointerDown(ev PointerEvent) bool {
	if r.state != StateIdle {
		return false
	}

	extent := r.width
	if r.cfg.Direction.IsVertical() {
		extent = r.height
	}
	if extent <= 0 || !r.withinEdge(ev.X, ev.Y) {
		return false
	}
	if r.hooks.Claim != nil && !r.hooks.Claim() {
		return false
	}

	r.state = StateTracking
	r.captured = false
	r.extent = extent
	r.startX = ev.X
	r.startY = ev.Y
	r.tracker.Reset()
	r.tracker.Add(ev.Time, 0)
	return true
}

func (r *Recognizer) pointerMove(ev PointerEvent) bool {
	if r.state != StateTracking {
		return false
	}

	axis, cross := r.axes(ev)
	if !r.captured {
		if math.Abs(cross) > failDistance {
			r.reset()
			return false
		}
		if axis*r.cfg.Direction.multiplier() < activationDistance {
			// Armed but not committed; keep watching.
			return true
		}
		r.captured = true
		if r.hooks.Began != nil {
			r.hooks.Began()
		}
	}

	r.tracker.Add(ev.Time, axis)
	r.value.SetImmediate(r.progressFor(axis))
	return true
}

func (r *Recognizer) pointerUp(ev PointerEvent) bool {
	if r.state != StateTracking {
		return false
	}
	if !r.captured {
		// A tap in the edge strip that never committed to the axis.
		r.reset()
		return false
	}

	axis, _ := r.axes(ev)
	r.tracker.Add(ev.Time, axis)
	velocity := r.tracker.Estimate()
	mult := r.cfg.Direction.multiplier()
	completing := (axis+velocity*r.cfg.VelocityImpact)*mult > r.extent/2

	r.captured = false
	if completing {
		r.state = StateCompleting
	} else {
		r.state = StateCanceling
	}

	if r.hooks.Ended != nil {
		r.hooks.Ended(Release{
			Completing:       completing,
			Translation:      axis,
			Velocity:         velocity,
			ProgressVelocity: -velocity * mult / r.extent,
		})
	}
	return true
}

// Finish returns the recognizer to idle after the navigator's settle
// animation for the released pan has completed. The gesture token frees
// here rather than at release so no second pan can start mid-settle.
func (r *Recognizer) Finish() {
	if r.state != StateCompleting && r.state != StateCanceling {
		return
	}
	r.reset()
}

// ForceCancel abandons the pan from any state without firing Ended. The
// navigator calls this before applying an external dispatch so gesture
// state never outlives the stack change that invalidated it. The progress
// value stays wherever the pan put it; the caller decides where it goes
// next.
func (r *Recognizer) ForceCancel() {
	if r.state == StateIdle {
		return
	}
	r.reset()
}

func (r *Recognizer) reset() {
	r.state = StateIdle
	r.captured = false
	if r.hooks.Free != nil {
		r.hooks.Free()
	}
}

// withinEdge tests whether a pointer-down position falls in the response
// strip for the configured direction: the leading edge for horizontal
// panning, the top (or bottom, when inverted) strip for vertical.
func (r *Recognizer) withinEdge(x, y float64) bool {
	switch r.cfg.Direction {
	case Horizontal:
		return x <= r.cfg.ResponseDistance.Horizontal
	case HorizontalInverted:
		return x >= r.width-r.cfg.ResponseDistance.Horizontal
	case Vertical:
		return y <= r.cfg.ResponseDistance.Vertical
	case VerticalInverted:
		return y >= r.height-r.cfg.ResponseDistance.Vertical
	default:
		return false
	}
}

func (r *Recognizer) axes(ev PointerEvent) (axis, cross float64) {
	dx := ev.X - r.startX
	dy := ev.Y - r.startY
	if r.cfg.Direction.IsVertical() {
		return dy, dx
	}
	return dx, dy
}

// progressFor maps signed axis translation into progress. Travel toward
// dismissal pulls progress from 1 down toward 0; travel the other way may
// push past the resting position by at most the overscroll allowance.
func (r *Recognizer) progressFor(axis float64) float64 {
	progress := 1 - axis*r.cfg.Direction.multiplier()/r.extent
	if progress < 0 {
		return 0
	}
	if limit := 1 + r.cfg.Overscroll; progress > limit {
		return limit
	}
	return progress
}
