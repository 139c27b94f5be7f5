package sfoglia

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// Theme is the framework's color and font scheme. Re-exported so
// applications can read and override it without reaching into internal
// packages.
type Theme = internal.Theme

// CurrentTheme returns the active theme.
func CurrentTheme() Theme { return internal.GetTheme() }

// SetTheme replaces the active theme. Call before Init so the fonts load
// from the right path.
func SetTheme(theme Theme) { internal.SetTheme(theme) }

// FontRole selects one of the framework's loaded font sizes.
type FontRole int

const (
	// FontLarge is the header title size.
	FontLarge FontRole = iota
	// FontMedium is the body text size.
	FontMedium
	// FontSmall is the back label and hint size.
	FontSmall
	// FontTiny is the badge size.
	FontTiny
)

func fontFor(role FontRole) *ttf.Font {
	switch role {
	case FontLarge:
		return internal.Fonts.LargeFont
	case FontSmall:
		return internal.Fonts.SmallFont
	case FontTiny:
		return internal.Fonts.TinyFont
	default:
		return internal.Fonts.MediumFont
	}
}

// MeasureText returns the pixel size of a line of text in the given
// role's font, or zeros before Init has loaded fonts.
func MeasureText(text string, role FontRole) (int32, int32) {
	return internal.MeasureText(text, fontFor(role))
}

// DrawText renders one line of text with its top-left corner at x, y and
// returns the drawn size. Scenes drawing dynamic per-frame text use this;
// for static labels drawn every frame consider caching a texture instead.
func DrawText(renderer *sdl.Renderer, text string, role FontRole, x, y int32, color sdl.Color) (int32, int32) {
	font := fontFor(role)
	if font == nil || text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W, surface.H
}

// DrawTextCentered renders one line of text horizontally centered on cx
// with its top edge at y.
func DrawTextCentered(renderer *sdl.Renderer, text string, role FontRole, cx, y int32, color sdl.Color) (int32, int32) {
	w, _ := MeasureText(text, role)
	return DrawText(renderer, text, role, cx-w/2, y, color)
}
