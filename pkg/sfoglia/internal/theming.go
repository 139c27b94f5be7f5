package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the UI framework.
// Colors are typically loaded from CFW theme files (NextUI, Cannoli).
type Theme struct {
	HighlightColor       sdl.Color // Selected item background, footer button background
	AccentColor          sdl.Color // Pill backgrounds, status bar pill
	ButtonLabelColor     sdl.Color // Button label text (inside pills)
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on highlighted items
	HintColor            sdl.Color // Help text, status bar text
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme Theme

// HexToColor converts a 0xRRGGBB value to an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme is the fallback used when no CFW theme has been applied:
// a dark surface with light text, usable in dev mode on a desktop.
func DefaultTheme() Theme {
	return Theme{
		HighlightColor:       sdl.Color{R: 0x3A, G: 0x3A, B: 0x3E, A: 255},
		AccentColor:          sdl.Color{R: 0x0A, G: 0x84, B: 0xFF, A: 255},
		ButtonLabelColor:     sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 255},
		TextColor:            sdl.Color{R: 0xEB, G: 0xEB, B: 0xF0, A: 255},
		HighlightedTextColor: sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 255},
		HintColor:            sdl.Color{R: 0x9A, G: 0x9A, B: 0xA0, A: 255},
		BackgroundColor:      sdl.Color{R: 0x1C, G: 0x1C, B: 0x1E, A: 255},
		FontPath:             "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}
}
