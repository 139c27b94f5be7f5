package internal

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// backChevronSVG is the header back indicator, drawn white so the
// renderer can tint it to the header color with a color mod.
const backChevronSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 12 20">
  <path fill="#FFFFFF" d="M10.7 1.6 L9.1 0 L0 10 L9.1 20 L10.7 18.4 L3.1 10 Z"/>
</svg>`

// RenderSVG rasterizes an SVG document into an SDL texture of the given
// size with blending enabled.
func RenderSVG(renderer *sdl.Renderer, svg string, width, height int32) (*sdl.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid icon size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(int(width), int(height), scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		width, height, 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("creating icon surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("creating icon texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// BackChevronTexture rasterizes the back chevron at the given height,
// keeping its 12:20 aspect.
func BackChevronTexture(renderer *sdl.Renderer, height int32) (*sdl.Texture, error) {
	width := height * 12 / 20
	if width < 1 {
		width = 1
	}
	return RenderSVG(renderer, backChevronSVG, width, height)
}
