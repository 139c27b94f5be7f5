package transition

import (
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/anim"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
)

// Spec pairs the animation configurations for a screen's two movements:
// opening (progress 0 to 1) and closing (1 to 0).
type Spec struct {
	Open  anim.Config
	Close anim.Config
}

// Preset is a named bundle covering everything a screen needs for one
// coherent transition feel.
type Preset struct {
	Name      string
	Spec      Spec
	Card      CardInterpolator
	Header    HeaderInterpolator
	Direction gesture.Direction
}

// Choice carries a screen's explicit transition overrides. Nil fields are
// unset and resolve from the preset or the stack default.
type Choice struct {
	Preset    *Preset
	Spec      *Spec
	Card      CardInterpolator
	Header    HeaderInterpolator
	Direction *gesture.Direction
}

// Resolved is a fully-determined transition: every field concrete, ready
// for the navigator to use.
type Resolved struct {
	Spec      Spec
	Card      CardInterpolator
	Header    HeaderInterpolator
	Direction gesture.Direction
}

// Resolve flattens a screen's transition choice against a fallback
// preset. Precedence per field: explicit override, then the screen's own
// preset, then the fallback (normally the stack mode's default).
func Resolve(choice Choice, fallback Preset) Resolved {
	base := fallback
	if choice.Preset != nil {
		base = *choice.Preset
	}

	out := Resolved{
		Spec:      base.Spec,
		Card:      base.Card,
		Header:    base.Header,
		Direction: base.Direction,
	}
	if choice.Spec != nil {
		out.Spec = *choice.Spec
	}
	if choice.Card != nil {
		out.Card = choice.Card
	}
	if choice.Header != nil {
		out.Header = choice.Header
	}
	if choice.Direction != nil {
		out.Direction = *choice.Direction
	}
	return out
}

// springSpec is the stiff, heavily damped spring used by the horizontal
// slide in both directions. Clamped so cards stop dead at their edges.
func springSpec() anim.Config {
	return anim.Spring(anim.SpringConfig{
		Stiffness:         1000,
		Damping:           500,
		Mass:              3,
		RestDisplacement:  0.01,
		RestVelocity:      0.01,
		OvershootClamping: true,
	})
}

// SlideHorizontal is the card-mode default: the incoming screen slides in
// from the trailing edge on a clamped spring while the screen beneath
// compresses away, with a single floating header shared across the
// transition.
func SlideHorizontal() Preset {
	return Preset{
		Name:      "slide-horizontal",
		Spec:      Spec{Open: springSpec(), Close: springSpec()},
		Card:      CardSlideHorizontal,
		Header:    HeaderFloatUIKit,
		Direction: gesture.Horizontal,
	}
}

// SlideVertical is the modal-mode default: the screen rises from the
// bottom edge on an eased timing curve and drops back out faster, with
// per-screen fading headers and a downward dismiss gesture.
func SlideVertical() Preset {
	return Preset{
		Name: "slide-vertical",
		Spec: Spec{
			Open:  anim.Timing(450*time.Millisecond, anim.CubicBezier(0.35, 0.45, 0, 1)),
			Close: anim.Timing(250*time.Millisecond, anim.EaseIn),
		},
		Card:      CardSlideVertical,
		Header:    HeaderFade,
		Direction: gesture.Vertical,
	}
}

// Fade cross-fades screens in place with a slight upward drift, opening
// slower than it closes.
func Fade() Preset {
	return Preset{
		Name: "fade",
		Spec: Spec{
			Open:  anim.Timing(350*time.Millisecond, anim.EaseOutPoly(5)),
			Close: anim.Timing(150*time.Millisecond, anim.Linear),
		},
		Card:      CardFade,
		Header:    HeaderFade,
		Direction: gesture.Horizontal,
	}
}
