package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes selects the point sizes loaded for each font role.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
	Tiny   int
}

// DefaultFontSizes fits 640x480 and up. Large is header titles, Medium
// body text, Small back labels and hints, Tiny badges.
var DefaultFontSizes = FontSizes{
	Large:  28,
	Medium: 22,
	Small:  18,
	Tiny:   14,
}

// FontSet holds the loaded fonts for the framework. Populated by Init
// from the active theme's FontPath.
type FontSet struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
	TinyFont   *ttf.Font
}

// Fonts is the active font set.
var Fonts FontSet

func initFonts(sizes FontSizes) {
	path := GetTheme().FontPath
	if path == "" {
		GetInternalLogger().Error("No font path in theme; text rendering disabled")
		return
	}

	open := func(size int) *ttf.Font {
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			GetInternalLogger().Error("Failed to open font", "path", path, "size", size, "error", err)
			return nil
		}
		return font
	}

	Fonts = FontSet{
		LargeFont:  open(sizes.Large),
		MediumFont: open(sizes.Medium),
		SmallFont:  open(sizes.Small),
		TinyFont:   open(sizes.Tiny),
	}
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont, Fonts.TinyFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}

// MeasureText returns the pixel size of text in the given font, or zeros
// when the font is unavailable. Header layout measurement runs through
// here.
func MeasureText(text string, font *ttf.Font) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}
