package sfoglia

import (
	"fmt"
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/transition"
)

// headerState holds the navigator's long-lived header render resources:
// rendered text lines and the rasterized back chevron.
type headerState struct {
	cache    *internal.TextureCache
	chevron  *sdl.Texture
	chevronH int32
}

func (h *headerState) destroy() {
	if h.cache != nil {
		h.cache.Destroy()
		h.cache = nil
	}
	if h.chevron != nil {
		h.chevron.Destroy()
		h.chevron = nil
	}
}

// renderFloatHeader draws the single shared header above the cards. The
// focused screen's interpolator decides where every element sits, which
// is how the outgoing title slides down into the back-label slot.
func (n *Navigator) renderFloatHeader(renderer *sdl.Renderer) {
	focused := n.topScreen()
	if focused == nil || n.effectiveHeaderMode(focused) != HeaderModeFloat {
		return
	}
	if !focused.options.Header.shown() {
		return
	}

	n.ensureMeasurer()
	props, backLabel := n.headerProps(focused)
	style := focused.resolved.Header(props)

	n.renderHeaderBackground(renderer, focused, style)
	n.renderHeaderElements(renderer, focused, backLabel, style)
}

// renderScreenHeader draws a header onto one screen's own surface, for
// the per-screen header mode where every card carries its bar along.
func (n *Navigator) renderScreenHeader(renderer *sdl.Renderer, s *Screen) {
	if !s.options.Header.shown() {
		return
	}

	n.ensureMeasurer()
	props, backLabel := n.headerProps(s)
	style := s.resolved.Header(props)

	n.renderHeaderBackground(renderer, s, style)
	n.renderHeaderElements(renderer, s, backLabel, style)
}

func (n *Navigator) renderHeaderBackground(renderer *sdl.Renderer, s *Screen, style transition.HeaderStyle) {
	bar := sdl.Rect{
		W: int32(n.layout.Width),
		H: int32(n.effectiveInsets(s).Top) + n.headerHeight,
	}
	if slot := s.options.Header.RenderBackground; slot != nil {
		slot(renderer, bar, style.Background)
		return
	}
	c := s.options.Header.BackgroundColor
	if c == nil || style.Background.Opacity <= 0 {
		return
	}
	renderer.SetDrawColor(c.R, c.G, c.B, alphaByte(float64(c.A)/255*style.Background.Opacity))
	renderer.FillRect(&bar)
}

func (n *Navigator) renderHeaderElements(renderer *sdl.Renderer, s *Screen, backLabel string, style transition.HeaderStyle) {
	insets := n.effectiveInsets(s)
	centerY := int32(insets.Top) + n.headerHeight/2

	tint := internal.GetTheme().TextColor
	if c := s.options.Header.TintColor; c != nil {
		tint = *c
	}

	if title := s.Title(); title != "" && style.Title.Opacity > 0 {
		if tex := n.textTexture(renderer, internal.Fonts.LargeFont, title, tint); tex != nil {
			_, _, w, h, _ := tex.Query()
			dst := sdl.Rect{
				X: n.titleX(s, insets, w, backLabel) + roundi32(style.Title.TranslateX),
				Y: centerY - h/2 + roundi32(style.Title.TranslateY),
				W: w,
				H: h,
			}
			tex.SetAlphaMod(alphaByte(style.Title.Opacity))
			renderer.Copy(tex, nil, &dst)
		}
	}

	if slot := s.options.Header.RenderLeft; slot != nil {
		slot(renderer, n.headerSlotRegion(insets, false), style.BackButton)
	} else if backLabel != "" {
		n.renderBackButton(renderer, insets, centerY, tint, backLabel, style)
	}

	if slot := s.options.Header.RenderRight; slot != nil {
		slot(renderer, n.headerSlotRegion(insets, true), style.RightSlot)
	}
}

// titleX anchors the title by the screen's alignment: centered by
// default, left clearing the back button area, or right against the
// trailing edge.
func (n *Navigator) titleX(s *Screen, insets transition.Insets, w int32, backLabel string) int32 {
	align := constants.TextAlignCenter
	if a := s.options.Header.TitleAlign; a != nil {
		align = *a
	}
	switch align {
	case constants.TextAlignLeft:
		x := int32(insets.Left) + 16
		if backLabel != "" || s.options.Header.RenderLeft != nil {
			x = int32(insets.Left) + n.headerHeight + 8
		}
		return x
	case constants.TextAlignRight:
		return int32(n.layout.Width) - int32(insets.Right) - 16 - w
	default:
		return (int32(n.layout.Width) - w) / 2
	}
}

func (n *Navigator) renderBackButton(renderer *sdl.Renderer, insets transition.Insets, centerY int32, tint sdl.Color, label string, style transition.HeaderStyle) {
	chevronX := int32(insets.Left) + 8
	var chevronW int32

	if chevron := n.ensureChevron(renderer); chevron != nil && style.BackButton.Opacity > 0 {
		_, _, w, h, _ := chevron.Query()
		chevronW = w
		dst := sdl.Rect{
			X: chevronX + roundi32(style.BackButton.TranslateX),
			Y: centerY - h/2 + roundi32(style.BackButton.TranslateY),
			W: w,
			H: h,
		}
		chevron.SetColorMod(tint.R, tint.G, tint.B)
		chevron.SetAlphaMod(alphaByte(style.BackButton.Opacity))
		renderer.Copy(chevron, nil, &dst)
	}

	if style.BackLabel.Opacity <= 0 {
		return
	}
	if tex := n.textTexture(renderer, internal.Fonts.SmallFont, label, tint); tex != nil {
		_, _, w, h, _ := tex.Query()
		dst := sdl.Rect{
			X: chevronX + chevronW + 6 + roundi32(style.BackLabel.TranslateX),
			Y: centerY - h/2 + roundi32(style.BackLabel.TranslateY),
			W: w,
			H: h,
		}
		tex.SetAlphaMod(alphaByte(style.BackLabel.Opacity))
		renderer.Copy(tex, nil, &dst)
	}
}

func (n *Navigator) headerSlotRegion(insets transition.Insets, right bool) sdl.Rect {
	w := int32(n.layout.Width) / 3
	region := sdl.Rect{
		X: int32(insets.Left),
		Y: int32(insets.Top),
		W: w,
		H: n.headerHeight,
	}
	if right {
		region.X = int32(n.layout.Width) - w - int32(insets.Right)
	}
	return region
}

// ensureMeasurer wires the default text measurer, backed by the loaded
// title font, the first time the header renders. Headless callers inject
// their own through NavigatorOptions instead.
func (n *Navigator) ensureMeasurer() {
	if n.measure != nil {
		return
	}
	font := internal.Fonts.LargeFont
	if font == nil {
		return
	}
	n.measure = func(text string) (float64, float64) {
		w, h := internal.MeasureText(text, font)
		return float64(w), float64(h)
	}
}

func (n *Navigator) ensureChevron(renderer *sdl.Renderer) *sdl.Texture {
	want := n.headerHeight * 3 / 7
	if n.header.chevron != nil && n.header.chevronH == want {
		return n.header.chevron
	}
	if n.header.chevron != nil {
		n.header.chevron.Destroy()
		n.header.chevron = nil
	}

	chevron, err := internal.BackChevronTexture(renderer, want)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to rasterize back chevron", "error", err)
		return nil
	}
	n.header.chevron = chevron
	n.header.chevronH = want
	return chevron
}

// textTexture renders a line of text through the header cache. Keys
// include the font and color so a tint change does not serve stale
// pixels.
func (n *Navigator) textTexture(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) *sdl.Texture {
	if font == nil || text == "" {
		return nil
	}
	if n.header.cache == nil {
		n.header.cache = internal.NewTextureCacheWithSize(16)
	}

	key := fmt.Sprintf("%p|%02x%02x%02x|%s", font, color.R, color.G, color.B, text)
	if tex := n.header.cache.Get(key); tex != nil {
		return tex
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	tex, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	n.header.cache.Set(key, tex)
	return tex
}

func roundi32(v float64) int32 {
	return int32(math.Round(v))
}
