package anim

import "math"

// springSubstep is the integration step, in seconds. Frame deltas are split
// into substeps no larger than this so stiff springs stay numerically stable
// at any frame rate.
const springSubstep = 1.0 / 240

// Fallback rest thresholds when a config leaves them zero.
const (
	defaultRestDisplacement = 0.001
	defaultRestVelocity     = 0.001
)

// springDriver integrates a damped harmonic oscillator toward the target
// using semi-implicit Euler (velocity first, then position).
type springDriver struct {
	to       float64
	cfg      SpringConfig
	pos      float64
	vel      float64
	fromSide float64 // sign of (target - start), for overshoot clamping
}

func newSpringDriver(pos, vel, to float64, cfg SpringConfig) *springDriver {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	if cfg.RestDisplacement <= 0 {
		cfg.RestDisplacement = defaultRestDisplacement
	}
	if cfg.RestVelocity <= 0 {
		cfg.RestVelocity = defaultRestVelocity
	}
	side := 0.0
	if to > pos {
		side = 1
	} else if to < pos {
		side = -1
	}
	return &springDriver{to: to, cfg: cfg, pos: pos, vel: vel, fromSide: side}
}

func (d *springDriver) step(dt float64) (float64, float64, bool) {
	remaining := dt
	for remaining > 0 {
		h := remaining
		if h > springSubstep {
			h = springSubstep
		}
		remaining -= h

		accel := (-d.cfg.Stiffness*(d.pos-d.to) - d.cfg.Damping*d.vel) / d.cfg.Mass
		d.vel += accel * h
		d.pos += d.vel * h

		if d.cfg.OvershootClamping && d.crossedTarget() {
			d.pos = d.to
			d.vel = 0
			return d.to, 0, true
		}
	}

	if math.Abs(d.vel) < d.cfg.RestVelocity && math.Abs(d.pos-d.to) < d.cfg.RestDisplacement {
		return d.to, 0, true
	}
	return d.pos, d.vel, false
}

// crossedTarget reports whether the position has moved past the target
// relative to the side it started on. A spring that starts on the target
// never clamps.
func (d *springDriver) crossedTarget() bool {
	switch {
	case d.fromSide > 0:
		return d.pos >= d.to
	case d.fromSide < 0:
		return d.pos <= d.to
	default:
		return false
	}
}
