package sfoglia

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/transition"
)

// shadowWidth is the leading-edge shadow strip, in logical pixels.
const shadowWidth = 3

// Render draws the stack, cards bottom to top, then the floating header.
// Each screen's scene renders into a per-screen target texture, which is
// then composited with the card interpolator's transforms applied. The
// caller clears the frame first and presents after.
func (n *Navigator) Render(renderer *sdl.Renderer) {
	if len(n.screens) == 0 {
		return
	}
	if n.layout.Width <= 0 {
		n.adoptRendererLayout(renderer)
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	// Screens hidden beneath a settled opaque card need no drawing.
	first := 0
	for i := len(n.screens) - 1; i >= 0; i-- {
		s := n.screens[i]
		if !s.closing && !s.dismissed && !s.options.transparent() &&
			s.progress.Settled() && s.progress.Position() >= 1 {
			first = i
			break
		}
	}

	for i := first; i < len(n.screens); i++ {
		n.renderCard(renderer, i)
	}

	n.renderFloatHeader(renderer)
}

// adoptRendererLayout derives the navigator's layout from the renderer
// when the application never called SetLayout.
func (n *Navigator) adoptRendererLayout(renderer *sdl.Renderer) {
	w, h := renderer.GetLogicalSize()
	if w == 0 || h == 0 {
		var err error
		w, h, err = renderer.GetOutputSize()
		if err != nil {
			return
		}
	}
	n.SetLayout(transition.Layout{Width: float64(w), Height: float64(h)}, n.insets)
}

func (n *Navigator) renderCard(renderer *sdl.Renderer, index int) {
	s := n.screens[index]
	style := s.resolved.Card(n.cardProps(index))

	opacity := clamp01(style.Card.Opacity * style.Container.Opacity)
	if opacity <= 0 {
		return
	}

	if s.options.overlayEnabled() && style.Overlay.Opacity > 0 {
		renderer.SetDrawColor(0, 0, 0, alphaByte(style.Overlay.Opacity))
		renderer.FillRect(&sdl.Rect{W: int32(n.layout.Width), H: int32(n.layout.Height)})
	}

	texture := n.ensureCardTexture(renderer, s)
	if texture == nil {
		return
	}
	n.paintCardContent(renderer, s, texture)

	dst := n.cardDestRect(style)

	if s.options.shadowEnabled() && style.Shadow.Opacity > 0 {
		n.renderCardShadow(renderer, s.resolved.Direction, dst, style.Shadow.Opacity)
	}

	texture.SetAlphaMod(alphaByte(opacity))
	renderer.Copy(texture, nil, &dst)
}

// paintCardContent redraws a screen's surface: background fill, the
// scene, and the per-screen header when that mode is active.
func (n *Navigator) paintCardContent(renderer *sdl.Renderer, s *Screen, texture *sdl.Texture) {
	prev := renderer.GetRenderTarget()
	renderer.SetRenderTarget(texture)

	if s.options.transparent() {
		renderer.SetDrawColor(0, 0, 0, 0)
	} else {
		bg := internal.GetTheme().BackgroundColor
		if c := s.options.Card.BackgroundColor; c != nil {
			bg = *c
		}
		renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	}
	renderer.Clear()

	if s.scene != nil {
		s.scene.Render(renderer, n.layout)
	}
	if n.effectiveHeaderMode(s) == HeaderModeScreen {
		n.renderScreenHeader(renderer, s)
	}

	renderer.SetRenderTarget(prev)
}

func (n *Navigator) ensureCardTexture(renderer *sdl.Renderer, s *Screen) *sdl.Texture {
	w := int32(n.layout.Width)
	h := int32(n.layout.Height)
	if w <= 0 || h <= 0 {
		return nil
	}

	if s.texture != nil && (s.textureW != w || s.textureH != h) {
		s.texture.Destroy()
		s.texture = nil
	}
	if s.texture == nil {
		texture, err := internal.CreateTargetTexture(renderer, w, h)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to create card surface",
				"key", s.Route.Key, "error", err)
			return nil
		}
		s.texture = texture
		s.textureW = w
		s.textureH = h
	}
	return s.texture
}

func (n *Navigator) cardDestRect(style transition.CardStyle) sdl.Rect {
	scale := style.Card.Scale * style.Container.Scale
	w := n.layout.Width * scale
	h := n.layout.Height * scale
	x := style.Container.TranslateX + style.Card.TranslateX + (n.layout.Width-w)/2
	y := style.Container.TranslateY + style.Card.TranslateY + (n.layout.Height-h)/2
	return sdl.Rect{
		X: int32(math.Round(x)),
		Y: int32(math.Round(y)),
		W: int32(math.Round(w)),
		H: int32(math.Round(h)),
	}
}

// renderCardShadow draws the strip along the card's leading edge, the
// edge that faces the screen it slides over.
func (n *Navigator) renderCardShadow(renderer *sdl.Renderer, direction gesture.Direction, dst sdl.Rect, opacity float64) {
	var rect sdl.Rect
	switch direction {
	case gesture.Horizontal:
		rect = sdl.Rect{X: dst.X - shadowWidth, Y: dst.Y, W: shadowWidth, H: dst.H}
	case gesture.HorizontalInverted:
		rect = sdl.Rect{X: dst.X + dst.W, Y: dst.Y, W: shadowWidth, H: dst.H}
	case gesture.Vertical:
		rect = sdl.Rect{X: dst.X, Y: dst.Y - shadowWidth, W: dst.W, H: shadowWidth}
	case gesture.VerticalInverted:
		rect = sdl.Rect{X: dst.X, Y: dst.Y + dst.H, W: dst.W, H: shadowWidth}
	default:
		return
	}
	renderer.SetDrawColor(0, 0, 0, alphaByte(opacity))
	renderer.FillRect(&rect)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func alphaByte(opacity float64) uint8 {
	return uint8(math.Round(clamp01(opacity) * 255))
}
