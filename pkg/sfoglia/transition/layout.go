package transition

// Layout is the size of the navigator's drawable area in logical pixels.
type Layout struct {
	Width  float64
	Height float64
}

// Insets are the safe-area margins that content must keep clear of
// notches, rounded corners, and system bars.
type Insets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// ElementLayout is the measured size of a single header element.
// Measured stays false until a real measurement pass has run; header
// interpolators substitute a neutral offset until then so the element
// does not jump when the measurement arrives.
type ElementLayout struct {
	Width    float64
	Height   float64
	Measured bool
}
