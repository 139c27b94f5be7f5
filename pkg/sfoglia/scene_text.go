package sfoglia

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/transition"
)

const (
	textScrollSpeed          = 85
	textScrollAnimationSpeed = 0.15
	scrollbarWidth           = 10
	scrollbarMargin          = 5
	minScrollHandleHeight    = 30
)

// TextSceneOptions configures a TextScene.
type TextSceneOptions struct {
	// TopPadding is the distance from the top of the layout to the first
	// line of text. Defaults to the header height plus a small gap so the
	// content clears a screen-mode header.
	TopPadding int32

	// BottomPadding reserves space below the text, typically for a footer.
	// Defaults to 64.
	BottomPadding int32

	// SideMargin is the horizontal margin on both edges. Defaults to 20.
	SideMargin int32

	// ShowScrollbar renders a scrollbar on the right edge when the text
	// overflows the visible area.
	ShowScrollbar bool

	// FooterHelpItems are rendered along the bottom edge.
	FooterHelpItems []FooterHelpItem
}

// DefaultTextSceneOptions returns the options used when none are overridden.
func DefaultTextSceneOptions() TextSceneOptions {
	return TextSceneOptions{
		ShowScrollbar: true,
	}
}

// TextScene displays a block of word-wrapped text that the user can scroll
// with up and down. Scrolling eases toward its target position a little each
// frame instead of jumping, which reads much better on small screens.
type TextScene struct {
	opts TextSceneOptions
	text string

	scrollY       int32
	targetScrollY int32
	maxScrollY    int32

	directional internal.DirectionalInput
}

// NewTextScene creates a scrollable text scene.
func NewTextScene(text string, opts TextSceneOptions) *TextScene {
	if opts.TopPadding == 0 {
		opts.TopPadding = constants.DefaultHeaderHeight + 12
	}
	if opts.BottomPadding == 0 {
		opts.BottomPadding = 64
	}
	if opts.SideMargin == 0 {
		opts.SideMargin = 20
	}

	return &TextScene{
		opts:        opts,
		text:        text,
		directional: internal.NewDirectionalInput(),
	}
}

// SetText replaces the displayed text and resets the scroll position.
func (s *TextScene) SetText(text string) {
	s.text = text
	s.scrollY = 0
	s.targetScrollY = 0
}

// HandleInput scrolls on up/down and pages on L1/R1. Other buttons are left
// for the navigator.
func (s *TextScene) HandleInput(button constants.VirtualButton, pressed bool, nav *NavigationProp) bool {
	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown:
		s.directional.SetHeld(button, pressed)
		if pressed {
			if button == constants.VirtualButtonUp {
				s.scrollBy(-textScrollSpeed)
			} else {
				s.scrollBy(textScrollSpeed)
			}
		}
		return true
	case constants.VirtualButtonL1:
		if pressed {
			s.scrollBy(-s.pageStep())
		}
		return true
	case constants.VirtualButtonR1:
		if pressed {
			s.scrollBy(s.pageStep())
		}
		return true
	}
	return false
}

// Update advances held-button repeat and eases the scroll position toward
// its target.
func (s *TextScene) Update(now time.Time) {
	switch s.directional.Update() {
	case internal.DirectionUp:
		s.scrollBy(-textScrollSpeed)
	case internal.DirectionDown:
		s.scrollBy(textScrollSpeed)
	}

	if diff := s.targetScrollY - s.scrollY; diff != 0 {
		step := int32(float32(diff) * textScrollAnimationSpeed)
		if step == 0 {
			if diff > 0 {
				step = 1
			} else {
				step = -1
			}
		}
		s.scrollY += step
	}
}

// Blur drops held dpad state; the release will go to whichever screen took focus.
func (s *TextScene) Blur() {
	s.directional.Reset()
}

func (s *TextScene) scrollBy(amount int32) {
	s.targetScrollY = internal.Max32(0, internal.Min32(s.maxScrollY, s.targetScrollY+amount))
}

func (s *TextScene) pageStep() int32 {
	// Roughly one viewport, refined once Render has measured the layout.
	return textScrollSpeed * 4
}

// Render draws the wrapped text clipped to the content area, plus the
// scrollbar and footer.
func (s *TextScene) Render(renderer *sdl.Renderer, layout transition.Layout) {
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont
	if font == nil {
		return
	}

	contentX := s.opts.SideMargin
	contentWidth := int32(layout.Width) - s.opts.SideMargin*2
	if s.opts.ShowScrollbar {
		contentWidth -= scrollbarWidth + scrollbarMargin*2
	}
	viewportHeight := int32(layout.Height) - s.opts.TopPadding - s.opts.BottomPadding
	if contentWidth <= 0 || viewportHeight <= 0 {
		return
	}

	contentHeight := internal.MultilineTextHeight(s.text, font, contentWidth)
	s.maxScrollY = internal.Max32(0, contentHeight-viewportHeight)
	s.targetScrollY = internal.Min32(s.targetScrollY, s.maxScrollY)
	s.scrollY = internal.Min32(s.scrollY, s.maxScrollY)

	clip := sdl.Rect{X: 0, Y: s.opts.TopPadding, W: int32(layout.Width), H: viewportHeight}
	renderer.SetClipRect(&clip)
	internal.RenderMultilineText(renderer, s.text, font, contentWidth,
		contentX, s.opts.TopPadding-s.scrollY, theme.TextColor, constants.TextAlignLeft)
	renderer.SetClipRect(nil)

	if s.opts.ShowScrollbar && s.maxScrollY > 0 {
		s.renderScrollbar(renderer, layout, viewportHeight, contentHeight)
	}

	if len(s.opts.FooterHelpItems) > 0 {
		RenderFooter(renderer, s.opts.FooterHelpItems, layout, 20)
	}
}

func (s *TextScene) renderScrollbar(renderer *sdl.Renderer, layout transition.Layout, viewportHeight, contentHeight int32) {
	trackX := int32(layout.Width) - scrollbarWidth - scrollbarMargin
	trackY := s.opts.TopPadding
	trackHeight := viewportHeight

	handleHeight := internal.Max32(minScrollHandleHeight, trackHeight*viewportHeight/contentHeight)
	handleRange := trackHeight - handleHeight
	handleY := trackY
	if s.maxScrollY > 0 {
		handleY += handleRange * s.scrollY / s.maxScrollY
	}

	internal.DrawSmoothScrollbar(renderer, trackX, trackY, scrollbarWidth, trackHeight,
		sdl.Color{R: 50, G: 50, B: 50, A: 255})
	internal.DrawSmoothScrollbar(renderer, trackX, handleY, scrollbarWidth, handleHeight,
		sdl.Color{R: 100, G: 100, B: 100, A: 255})
}
