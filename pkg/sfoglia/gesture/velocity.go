package gesture

import "time"

// velocityWindow is how far back release velocity looks. Samples older
// than this describe an earlier phase of the pan and would dampen flicks.
const velocityWindow = 100 * time.Millisecond

// maxVelocitySamples caps the retained history; at 60 fps a full window
// holds six or seven samples, so this only guards degenerate input.
const maxVelocitySamples = 20

type velocitySample struct {
	at       time.Time
	position float64
}

// VelocityTracker estimates the velocity of a pan along its dismiss axis
// from a short window of recent position samples. Feed it one sample per
// pointer event; Estimate reads the window without consuming it.
type VelocityTracker struct {
	samples []velocitySample
}

// Reset drops all samples. Call when a new pan begins.
func (vt *VelocityTracker) Reset() {
	vt.samples = vt.samples[:0]
}

// Add records a position sample at the given time. Samples must arrive in
// time order; an out-of-order sample resets the window instead of feeding
// a negative interval into the estimate.
func (vt *VelocityTracker) Add(at time.Time, position float64) {
	if n := len(vt.samples); n > 0 && at.Before(vt.samples[n-1].at) {
		vt.samples = vt.samples[:0]
	}
	vt.samples = append(vt.samples, velocitySample{at: at, position: position})
	vt.prune(at)
}

// Estimate returns the average velocity across the sample window in
// position units per second. Fewer than two samples, or a window with no
// elapsed time, estimates zero.
func (vt *VelocityTracker) Estimate() float64 {
	if len(vt.samples) < 2 {
		return 0
	}

	first := vt.samples[0]
	last := vt.samples[len(vt.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.position - first.position) / dt
}

func (vt *VelocityTracker) prune(now time.Time) {
	cutoff := now.Add(-velocityWindow)
	start := 0
	for start < len(vt.samples)-1 && vt.samples[start].at.Before(cutoff) {
		start++
	}
	if overflow := len(vt.samples) - maxVelocitySamples; overflow > start {
		start = overflow
	}
	if start > 0 {
		vt.samples = append(vt.samples[:0], vt.samples[start:]...)
	}
}
