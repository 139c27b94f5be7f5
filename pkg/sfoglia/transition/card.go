package transition

import "github.com/BrandonKowalski/sfoglia/pkg/sfoglia/anim"

// ElementStyle describes the placement of one interpolated element.
// The zero value is NOT the resting style; use IdentityElement so scale
// and opacity start at 1.
type ElementStyle struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
	Opacity    float64
}

// IdentityElement is the resting style: no offset, full scale, opaque.
func IdentityElement() ElementStyle {
	return ElementStyle{Scale: 1, Opacity: 1}
}

// FillStyle describes a full-surface fill whose only animated property is
// opacity. Zero means the fill is invisible.
type FillStyle struct {
	Opacity float64
}

// CardProps is everything a card interpolator may read. Identical props
// must always produce identical styles.
type CardProps struct {
	// Current is this screen's own progress: 0 fully closed, 1 fully open.
	Current float64

	// Next is the progress of the screen stacked above, valid only when
	// HasNext is true. The last screen in the stack has no next.
	Next    float64
	HasNext bool

	// Index is the screen's position in the stack, 0 at the bottom.
	Index int

	// Closing is 1 while the screen is headed toward dismissal and 0 while
	// opening. It may sit between the two when a branch change happens
	// mid-flight, and interpolators blend across it rather than branching.
	Closing float64

	// Swiping is true while a pan gesture is driving Current directly.
	Swiping bool

	Layout Layout
	Insets Insets
}

// CardStyle is the fixed-schema output of a card interpolator.
// Container wraps the card and everything rendered with it; Card is the
// screen surface itself; Overlay dims whatever is beneath the card; and
// Shadow is the card's leading-edge shadow.
type CardStyle struct {
	Container ElementStyle
	Card      ElementStyle
	Overlay   FillStyle
	Shadow    FillStyle
}

// CardInterpolator maps progress to a card's visual style. Must be pure:
// no hidden state, since the navigator re-runs it every frame.
type CardInterpolator func(CardProps) CardStyle

// CardSlideHorizontal slides the card in from the trailing edge while the
// screen beneath it compresses 30% of the width away. The overlay and the
// leading-edge shadow both deepen as the card opens.
func CardSlideHorizontal(p CardProps) CardStyle {
	w := p.Layout.Width

	translate := anim.Interpolate(p.Current, []float64{0, 1}, []float64{w, 0})
	if p.HasNext {
		translate += anim.Interpolate(p.Next, []float64{0, 1}, []float64{0, w * -0.3})
	}

	card := IdentityElement()
	card.TranslateX = translate

	return CardStyle{
		Container: IdentityElement(),
		Card:      card,
		Overlay:   FillStyle{Opacity: anim.Interpolate(p.Current, []float64{0, 1}, []float64{0, 0.07})},
		Shadow:    FillStyle{Opacity: anim.Interpolate(p.Current, []float64{0, 1}, []float64{0, 0.3})},
	}
}

// CardSlideVertical slides the card up from the bottom edge. No overlay
// or shadow; the card covers the full width so neither would show.
func CardSlideVertical(p CardProps) CardStyle {
	card := IdentityElement()
	card.TranslateY = anim.Interpolate(p.Current, []float64{0, 1}, []float64{p.Layout.Height, 0})

	return CardStyle{
		Container: IdentityElement(),
		Card:      card,
	}
}

// CardFade fades the card in with a slight upward drift. Opening eases
// through staged breakpoints; closing fades out linearly with progress.
// The Closing flag blends between the two so an interrupted transition
// never pops between branches.
func CardFade(p CardProps) CardStyle {
	opening := anim.Interpolate(p.Current,
		[]float64{0, 0.5, 0.9, 1},
		[]float64{0, 0.25, 0.7, 1})
	opacity := p.Closing*p.Current + (1-p.Closing)*opening

	card := IdentityElement()
	card.TranslateY = anim.Interpolate(p.Current, []float64{0, 1}, []float64{p.Layout.Height * 0.08, 0})
	card.Opacity = opacity

	return CardStyle{
		Container: IdentityElement(),
		Card:      card,
	}
}
