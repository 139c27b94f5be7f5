package anim

import "time"

// Kind selects which driver a Config describes.
type Kind int

const (
	// KindTiming runs a fixed-duration animation shaped by an easing curve.
	KindTiming Kind = iota
	// KindSpring runs a damped spring simulation toward the target.
	KindSpring
)

// TimingConfig describes a fixed-duration animation.
type TimingConfig struct {
	Duration time.Duration
	Easing   Easing // nil means Linear
}

// SpringConfig describes a damped spring animation.
// The parameters follow the usual harmonic oscillator model:
// acceleration = (-Stiffness*displacement - Damping*velocity) / Mass.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64

	// RestDisplacement and RestVelocity define when the spring is considered
	// settled: both the distance to the target and the speed must fall below
	// these thresholds. Values are in progress units (the [0,1] range).
	RestDisplacement float64
	RestVelocity     float64

	// OvershootClamping pins the value at the target the moment it crosses,
	// instead of letting it oscillate past and come back.
	OvershootClamping bool
}

// Config is a tagged variant selecting either a timing or a spring animation.
// Exactly one of Timing or Spring is meaningful, per Kind.
type Config struct {
	Kind   Kind
	Timing TimingConfig
	Spring SpringConfig
}

// Timing builds a timing Config with the given duration and easing.
func Timing(duration time.Duration, easing Easing) Config {
	return Config{
		Kind:   KindTiming,
		Timing: TimingConfig{Duration: duration, Easing: easing},
	}
}

// Spring builds a spring Config.
func Spring(cfg SpringConfig) Config {
	return Config{Kind: KindSpring, Spring: cfg}
}
