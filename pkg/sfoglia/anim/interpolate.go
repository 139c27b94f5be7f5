package anim

import "math"

// Interpolate maps v through piecewise-linear breakpoints: inputRange and
// outputRange pair up index-for-index, inputRange must be ascending, and v
// values outside the range clamp to the first/last output. Interpolators
// build every visual style from this one primitive, so it is deliberately
// forgiving: malformed ranges and NaN inputs degrade to a neutral defined
// output instead of propagating NaN into a style.
func Interpolate(v float64, inputRange, outputRange []float64) float64 {
	if len(inputRange) < 2 || len(inputRange) != len(outputRange) {
		if len(outputRange) > 0 {
			return outputRange[0]
		}
		return 0
	}
	if math.IsNaN(v) {
		return outputRange[0]
	}

	if v <= inputRange[0] {
		return outputRange[0]
	}
	last := len(inputRange) - 1
	if v >= inputRange[last] {
		return outputRange[last]
	}

	// Find the segment containing v.
	segment := 0
	for i := 1; i <= last; i++ {
		if v < inputRange[i] {
			segment = i - 1
			break
		}
	}

	in0, in1 := inputRange[segment], inputRange[segment+1]
	out0, out1 := outputRange[segment], outputRange[segment+1]
	width := in1 - in0
	if width <= 0 {
		return out0
	}

	t := (v - in0) / width
	return out0 + (out1-out0)*t
}
