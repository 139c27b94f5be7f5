package anim

// timingDriver interpolates from a fixed start to the target over a fixed
// duration, shaped by an easing curve.
type timingDriver struct {
	from     float64
	to       float64
	duration float64 // seconds
	easing   Easing
	elapsed  float64
	lastPos  float64
}

func newTimingDriver(from, to float64, cfg TimingConfig) *timingDriver {
	easing := cfg.Easing
	if easing == nil {
		easing = Linear
	}
	return &timingDriver{
		from:     from,
		to:       to,
		duration: cfg.Duration.Seconds(),
		easing:   easing,
		lastPos:  from,
	}
}

func (d *timingDriver) step(dt float64) (float64, float64, bool) {
	d.elapsed += dt
	if d.duration <= 0 || d.elapsed >= d.duration {
		return d.to, 0, true
	}

	t := d.easing(d.elapsed / d.duration)
	pos := d.from + (d.to-d.from)*t
	vel := (pos - d.lastPos) / dt
	d.lastPos = pos
	return pos, vel, false
}
