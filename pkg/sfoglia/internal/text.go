package internal

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// lineSpacingFactor is the gap between wrapped lines as a fraction of the
// font height.
const lineSpacingFactor = 0.2

// WrapText splits text into lines that fit maxWidth in the given font.
// Explicit newlines are honored; a single word wider than the limit gets
// a line of its own rather than being broken.
func WrapText(text string, font *ttf.Font, maxWidth int32) []string {
	if text == "" || font == nil {
		return nil
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			out = append(out, "")
			continue
		}

		current := ""
		for _, word := range strings.Fields(line) {
			test := current
			if test != "" {
				test += " "
			}
			test += word

			width, _, _ := font.SizeUTF8(test)
			if int32(width) > maxWidth && current != "" {
				out = append(out, current)
				current = word
			} else {
				current = test
			}
		}
		if current != "" {
			out = append(out, current)
		}
	}
	return out
}

// MultilineTextHeight returns the height RenderMultilineText would draw
// for the given text, without drawing it.
func MultilineTextHeight(text string, font *ttf.Font, maxWidth int32) int32 {
	lines := WrapText(text, font, maxWidth)
	if len(lines) == 0 {
		return 0
	}
	fontHeight := int32(font.Height())
	spacing := int32(float64(fontHeight) * lineSpacingFactor)
	return int32(len(lines))*fontHeight + int32(len(lines)-1)*spacing
}

// RenderMultilineText draws word-wrapped text and returns the height
// drawn. x anchors the left edge, center, or right edge of each line
// depending on align.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth int32, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	lines := WrapText(text, font, maxWidth)
	if len(lines) == 0 {
		return 0
	}

	fontHeight := int32(font.Height())
	spacing := int32(float64(fontHeight) * lineSpacingFactor)

	curY := y
	for _, line := range lines {
		if line == "" {
			curY += fontHeight + spacing
			continue
		}

		surface, err := font.RenderUTF8Blended(line, color)
		if err != nil {
			curY += fontHeight + spacing
			continue
		}

		texture, err := renderer.CreateTextureFromSurface(surface)
		if err == nil {
			drawX := x
			switch align {
			case constants.TextAlignCenter:
				drawX = x - surface.W/2
			case constants.TextAlignRight:
				drawX = x - surface.W
			}
			renderer.Copy(texture, nil, &sdl.Rect{X: drawX, Y: curY, W: surface.W, H: surface.H})
			texture.Destroy()
		}
		surface.Free()

		curY += fontHeight + spacing
	}
	return curY - y - spacing
}
