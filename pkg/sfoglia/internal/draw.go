package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// DrawRoundedRect fills a rectangle with rounded corners using plain
// fill calls: the body as one rect, then one-pixel strips tracing the
// corner arcs. Needs no auxiliary texture, so it is safe mid-frame on
// any render target.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if rect == nil || rect.W <= 0 || rect.H <= 0 {
		return
	}
	if max := Min32(rect.W, rect.H) / 2; radius > max {
		radius = max
	}

	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	if radius <= 0 {
		renderer.FillRect(rect)
		return
	}

	body := sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - radius*2}
	renderer.FillRect(&body)

	for dy := int32(0); dy < radius; dy++ {
		d := float64(radius-dy) - 0.5
		dx := int32(math.Round(math.Sqrt(float64(radius)*float64(radius) - d*d)))
		inset := radius - dx

		top := sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: rect.W - inset*2, H: 1}
		bottom := sdl.Rect{X: rect.X + inset, Y: rect.Y + rect.H - 1 - dy, W: rect.W - inset*2, H: 1}
		renderer.FillRect(&top)
		renderer.FillRect(&bottom)
	}
}

// DrawSmoothScrollbar draws one scrollbar segment (track or handle) with
// fully rounded ends.
func DrawSmoothScrollbar(renderer *sdl.Renderer, x, y, width, height int32, color sdl.Color) {
	rect := sdl.Rect{X: x, Y: y, W: width, H: height}
	DrawRoundedRect(renderer, &rect, width/2, color)
}
