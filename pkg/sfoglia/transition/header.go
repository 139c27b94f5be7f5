package transition

import "github.com/BrandonKowalski/sfoglia/pkg/sfoglia/anim"

// HeaderProps is everything a header interpolator may read. The measured
// element layouts describe this screen's title and its back label (the
// previous screen's title rendered small); both may be unmeasured early.
type HeaderProps struct {
	// Current is the screen's own progress, Next the progress of the
	// screen above it (valid when HasNext). Header interpolators combine
	// the two into one timeline: 0 means the screen is still closed,
	// 1 at rest on top, 2 fully covered by the next screen.
	Current float64
	Next    float64
	HasNext bool

	Layout Layout
	Insets Insets

	Title     ElementLayout
	BackLabel ElementLayout
}

// HeaderStyle is the fixed-schema output of a header interpolator, one
// entry per header element.
type HeaderStyle struct {
	Title      ElementStyle
	BackButton ElementStyle
	BackLabel  ElementStyle
	RightSlot  ElementStyle
	Background ElementStyle
}

// HeaderInterpolator maps progress to header element styles. Must be pure.
type HeaderInterpolator func(HeaderProps) HeaderStyle

// headerDefaultOffset stands in for a measurement-derived slide distance
// until the title and back label have real layouts. The offset only shows
// mid-transition (at rest every translation is 0), so swapping in the
// measured value never causes a visible jump.
const headerDefaultOffset = 100.0

// headerLeftSpacing is the distance from the screen's leading edge to the
// back label's resting position.
const headerLeftSpacing = 27.0

// HeaderFloatUIKit animates the single floating header the way iOS
// navigation bars do: the incoming title slides in from the right while
// the outgoing title slides down into the back-label slot, cross-fading
// with the back label on the way.
func HeaderFloatUIKit(p HeaderProps) HeaderStyle {
	t := p.Current
	if p.HasNext {
		t += p.Next
	}

	// The title travels to where the next screen's back label rests, so
	// its slide distance derives from the back label's measured width, and
	// the back label's from the title's.
	titleOffset := headerDefaultOffset
	if p.BackLabel.Measured {
		titleOffset = (p.Layout.Width-p.BackLabel.Width)/2 - headerLeftSpacing
	}
	labelOffset := headerDefaultOffset
	if p.Title.Measured {
		labelOffset = (p.Layout.Width-p.Title.Width)/2 - headerLeftSpacing
	}

	buttonOpacity := anim.Interpolate(t, []float64{0.3, 1, 1.5}, []float64{0, 1, 0})

	title := IdentityElement()
	title.Opacity = anim.Interpolate(t, []float64{0, 0.4, 1, 1.5}, []float64{0, 0.1, 1, 0})
	title.TranslateX = anim.Interpolate(t, []float64{0.5, 1, 2}, []float64{titleOffset, 0, -titleOffset})

	backButton := IdentityElement()
	backButton.Opacity = buttonOpacity

	backLabel := IdentityElement()
	backLabel.Opacity = buttonOpacity
	backLabel.TranslateX = anim.Interpolate(t, []float64{0, 1, 2}, []float64{labelOffset, 0, -labelOffset})

	rightSlot := IdentityElement()
	rightSlot.Opacity = buttonOpacity

	return HeaderStyle{
		Title:      title,
		BackButton: backButton,
		BackLabel:  backLabel,
		RightSlot:  rightSlot,
		Background: IdentityElement(),
	}
}

// HeaderFade fades the whole header in place on the combined timeline.
// The per-screen header mode uses this; there is no cross-label
// interaction because every screen carries its own header.
func HeaderFade(p HeaderProps) HeaderStyle {
	t := p.Current
	if p.HasNext {
		t += p.Next
	}
	opacity := anim.Interpolate(t, []float64{0, 1, 2}, []float64{0, 1, 0})

	faded := IdentityElement()
	faded.Opacity = opacity

	return HeaderStyle{
		Title:      faded,
		BackButton: faded,
		BackLabel:  faded,
		RightSlot:  faded,
		Background: faded,
	}
}
