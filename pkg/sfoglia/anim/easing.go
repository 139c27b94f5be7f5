package anim

import "math"

// Easing maps normalized animation time [0,1] to normalized progress [0,1].
// Curves must pass through (0,0) and (1,1); intermediate values may leave
// [0,1] for curves with anticipation or overshoot.
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// EaseIn is a cubic curve that starts slow and accelerates.
func EaseIn(t float64) float64 { return t * t * t }

// EaseOut is a cubic curve that starts fast and decelerates.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOut accelerates through the first half and decelerates through the second.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOutPoly returns a polynomial ease-out of the given degree.
// Higher degrees brake harder at the end; degree 5 matches the classic
// material-style screen fade.
func EaseOutPoly(degree float64) Easing {
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, degree)
	}
}

// EaseInPoly returns a polynomial ease-in of the given degree.
func EaseInPoly(degree float64) Easing {
	return func(t float64) float64 {
		return math.Pow(t, degree)
	}
}

// CubicBezier returns the easing defined by a cubic bezier curve through
// (0,0), (x1,y1), (x2,y2), (1,1), evaluated the same way CSS timing
// functions are: the input t is an x coordinate, and the result is the
// curve's y at that x.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	sampleX := func(u float64) float64 {
		// Cubic bezier with P0=(0,0), P3=(1,1).
		v := 1 - u
		return 3*v*v*u*x1 + 3*v*u*u*x2 + u*u*u
	}
	sampleY := func(u float64) float64 {
		v := 1 - u
		return 3*v*v*u*y1 + 3*v*u*u*y2 + u*u*u
	}
	derivX := func(u float64) float64 {
		v := 1 - u
		return 3*v*v*x1 + 6*v*u*(x2-x1) + 3*u*u*(1-x2)
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Newton-Raphson for the parameter u where x(u) == t, with a
		// bisection fallback when the derivative gets too flat.
		u := t
		for i := 0; i < 8; i++ {
			d := derivX(u)
			if math.Abs(d) < 1e-6 {
				break
			}
			u -= (sampleX(u) - t) / d
		}

		if u < 0 || u > 1 || math.Abs(sampleX(u)-t) > 1e-4 {
			lo, hi := 0.0, 1.0
			u = t
			for i := 0; i < 32; i++ {
				x := sampleX(u)
				if math.Abs(x-t) < 1e-6 {
					break
				}
				if x < t {
					lo = u
				} else {
					hi = u
				}
				u = (lo + hi) / 2
			}
		}

		return sampleY(u)
	}
}
