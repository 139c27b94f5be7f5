package sfoglia

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/transition"
)

// StackMode selects the transition family a navigator uses for screens
// that do not pick their own preset.
type StackMode int

const (
	// StackModeCard slides screens in from the trailing edge, iOS
	// navigation style. The default.
	StackModeCard StackMode = iota

	// StackModeModal raises screens from the bottom edge.
	StackModeModal
)

// HeaderMode controls where headers are rendered.
type HeaderMode int

const (
	// HeaderModeFloat renders one header above all cards; titles and back
	// labels animate across screen changes inside it.
	HeaderModeFloat HeaderMode = iota

	// HeaderModeScreen gives each card its own header that moves with it.
	HeaderModeScreen

	// HeaderModeNone renders no header at all.
	HeaderModeNone
)

// Bool returns a pointer to v, for the tri-state option fields.
func Bool(v bool) *bool { return &v }

// Float64 returns a pointer to v, for optional numeric option fields.
func Float64(v float64) *float64 { return &v }

// HeaderSlot renders custom content into a header region. The region is
// the slot's rectangle in logical coordinates; style carries the
// interpolated opacity and offset the slot should honor.
type HeaderSlot func(renderer *sdl.Renderer, region sdl.Rect, style transition.ElementStyle)

// HeaderOptions configures a screen's header.
type HeaderOptions struct {
	// Shown toggles the header for this screen. Nil inherits the stack
	// default (shown).
	Shown *bool

	// Title overrides the route name in the header.
	Title string

	// TitleAlign anchors the title: centered by default, or left against
	// the back button, or right. Nil inherits the stack default.
	TitleAlign *constants.TextAlign

	// BackLabel overrides the label next to the back chevron. Empty uses
	// the previous screen's title, falling back to a localized "Back" when
	// that title does not fit.
	BackLabel string

	// TintColor draws the back chevron and back label. Nil uses the theme
	// accent color.
	TintColor *sdl.Color

	// BackgroundColor fills the header bar. Nil leaves the bar transparent
	// so the card (or theme background) shows through.
	BackgroundColor *sdl.Color

	// RenderLeft replaces the back button area entirely.
	RenderLeft HeaderSlot

	// RenderRight draws into the trailing slot, which is otherwise empty.
	RenderRight HeaderSlot

	// RenderBackground replaces the header bar fill, receiving the full
	// bar as its region.
	RenderBackground HeaderSlot
}

func (o HeaderOptions) merge(d HeaderOptions) HeaderOptions {
	if o.Shown == nil {
		o.Shown = d.Shown
	}
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.TitleAlign == nil {
		o.TitleAlign = d.TitleAlign
	}
	if o.BackLabel == "" {
		o.BackLabel = d.BackLabel
	}
	if o.TintColor == nil {
		o.TintColor = d.TintColor
	}
	if o.BackgroundColor == nil {
		o.BackgroundColor = d.BackgroundColor
	}
	if o.RenderLeft == nil {
		o.RenderLeft = d.RenderLeft
	}
	if o.RenderRight == nil {
		o.RenderRight = d.RenderRight
	}
	if o.RenderBackground == nil {
		o.RenderBackground = d.RenderBackground
	}
	return o
}

func (o HeaderOptions) shown() bool {
	return o.Shown == nil || *o.Shown
}

// CardOptions configures a screen's card surface.
type CardOptions struct {
	// BackgroundColor fills the card before the scene renders. Nil uses
	// the theme background color.
	BackgroundColor *sdl.Color

	// Transparent marks the card as see-through, which keeps the screens
	// beneath it rendering even when this card is fully open.
	Transparent *bool

	// OverlayEnabled dims the screens beneath while this card opens. Nil
	// inherits whatever the card interpolator emits.
	OverlayEnabled *bool

	// ShadowEnabled draws the card's leading-edge shadow. Nil inherits
	// the interpolator's output.
	ShadowEnabled *bool
}

func (o CardOptions) merge(d CardOptions) CardOptions {
	if o.BackgroundColor == nil {
		o.BackgroundColor = d.BackgroundColor
	}
	if o.Transparent == nil {
		o.Transparent = d.Transparent
	}
	if o.OverlayEnabled == nil {
		o.OverlayEnabled = d.OverlayEnabled
	}
	if o.ShadowEnabled == nil {
		o.ShadowEnabled = d.ShadowEnabled
	}
	return o
}

func (o CardOptions) transparent() bool {
	return o.Transparent != nil && *o.Transparent
}

func (o CardOptions) overlayEnabled() bool {
	return o.OverlayEnabled == nil || *o.OverlayEnabled
}

func (o CardOptions) shadowEnabled() bool {
	return o.ShadowEnabled == nil || *o.ShadowEnabled
}

// ScreenOptions configures one screen on the stack. The zero value
// inherits everything from the navigator defaults; tri-state fields are
// pointers so an unset field stays distinguishable from an explicit
// false or zero.
type ScreenOptions struct {
	// Title labels the screen in headers and back labels. Empty uses the
	// route name.
	Title string

	Header HeaderOptions
	Card   CardOptions

	// AnimationEnabled toggles transition animations. When false the
	// screen snaps between closed and open, with the transition lifecycle
	// events firing in the same update. Nil inherits (enabled).
	AnimationEnabled *bool

	// GestureEnabled toggles swipe-to-dismiss. Nil inherits (enabled).
	GestureEnabled *bool

	// Gesture tuning overrides. Nil fields keep the stack's tuned values.
	GestureDirection        *gesture.Direction
	GestureResponseDistance *gesture.ResponseDistance
	GestureVelocityImpact   *float64
	GestureOverscroll       *float64

	// Transition overrides, in increasing precedence: Preset replaces the
	// stack-mode default wholesale; Spec and the interpolators override
	// individual fields of whichever preset applies.
	Preset             *transition.Preset
	Spec               *transition.Spec
	CardInterpolator   transition.CardInterpolator
	HeaderInterpolator transition.HeaderInterpolator

	// HeaderMode overrides the navigator's header placement for this
	// screen (used by modal screens that want no floating header).
	HeaderMode *HeaderMode

	// SafeArea overrides the navigator's insets for this screen.
	SafeArea *transition.Insets
}

// merge fills o's unset fields from d and returns the result.
func (o ScreenOptions) merge(d ScreenOptions) ScreenOptions {
	if o.Title == "" {
		o.Title = d.Title
	}
	o.Header = o.Header.merge(d.Header)
	o.Card = o.Card.merge(d.Card)
	if o.AnimationEnabled == nil {
		o.AnimationEnabled = d.AnimationEnabled
	}
	if o.GestureEnabled == nil {
		o.GestureEnabled = d.GestureEnabled
	}
	if o.GestureDirection == nil {
		o.GestureDirection = d.GestureDirection
	}
	if o.GestureResponseDistance == nil {
		o.GestureResponseDistance = d.GestureResponseDistance
	}
	if o.GestureVelocityImpact == nil {
		o.GestureVelocityImpact = d.GestureVelocityImpact
	}
	if o.GestureOverscroll == nil {
		o.GestureOverscroll = d.GestureOverscroll
	}
	if o.Preset == nil {
		o.Preset = d.Preset
	}
	if o.Spec == nil {
		o.Spec = d.Spec
	}
	if o.CardInterpolator == nil {
		o.CardInterpolator = d.CardInterpolator
	}
	if o.HeaderInterpolator == nil {
		o.HeaderInterpolator = d.HeaderInterpolator
	}
	if o.HeaderMode == nil {
		o.HeaderMode = d.HeaderMode
	}
	if o.SafeArea == nil {
		o.SafeArea = d.SafeArea
	}
	return o
}

func (o ScreenOptions) animationEnabled() bool {
	return o.AnimationEnabled == nil || *o.AnimationEnabled
}

func (o ScreenOptions) gestureEnabled() bool {
	return o.GestureEnabled == nil || *o.GestureEnabled
}

// transitionChoice assembles the per-screen overrides for the resolver.
func (o ScreenOptions) transitionChoice() transition.Choice {
	return transition.Choice{
		Preset:    o.Preset,
		Spec:      o.Spec,
		Card:      o.CardInterpolator,
		Header:    o.HeaderInterpolator,
		Direction: o.GestureDirection,
	}
}

// gestureConfig applies the screen's gesture overrides to the stack's
// tuned base configuration.
func (o ScreenOptions) gestureConfig(base gesture.Config, direction gesture.Direction) gesture.Config {
	base.Direction = direction
	if o.GestureResponseDistance != nil {
		base.ResponseDistance = *o.GestureResponseDistance
	}
	if o.GestureVelocityImpact != nil {
		base.VelocityImpact = *o.GestureVelocityImpact
	}
	if o.GestureOverscroll != nil {
		base.Overscroll = *o.GestureOverscroll
	}
	return base
}

// MeasureTextFunc reports the rendered size of a piece of header text.
// The navigator injects a real SDL measurement by default; headless tests
// substitute a fixed-metrics stub.
type MeasureTextFunc func(text string) (width, height float64)

// NavigatorOptions configures a Navigator.
type NavigatorOptions struct {
	// StackKey identifies this navigator, for persistence and logging.
	StackKey string

	// Mode picks the default transition family: StackModeCard or
	// StackModeModal.
	Mode StackMode

	// HeaderMode picks where headers render. Default HeaderModeFloat.
	HeaderMode HeaderMode

	// Defaults apply to every screen that does not override a field.
	Defaults ScreenOptions

	// Layout is the logical size available to cards. Zero means the
	// navigator reads it from the window at first render.
	Layout transition.Layout

	// Insets reserve space for hardware cutouts and system bars.
	Insets transition.Insets

	// HeaderHeight in logical pixels, before the top inset. Zero uses
	// the stock height.
	HeaderHeight int32

	// MeasureText overrides header text measurement. Nil measures with
	// the loaded UI fonts.
	MeasureText MeasureTextFunc

	// Tuning overrides the built-in transition and gesture constants.
	// Nil uses DefaultTuning.
	Tuning *transition.Tuning
}

// DefaultNavigatorOptions returns the stock navigator configuration:
// card mode with a floating header.
func DefaultNavigatorOptions() NavigatorOptions {
	return NavigatorOptions{
		Mode:         StackModeCard,
		HeaderMode:   HeaderModeFloat,
		HeaderHeight: constants.DefaultHeaderHeight,
	}
}
