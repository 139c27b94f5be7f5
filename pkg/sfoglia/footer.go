package sfoglia

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/transition"
)

// FooterHelpItem is one button hint in the footer row: the button's name
// and what pressing it does on this screen.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// RenderFooter draws the button hint row along the bottom edge of the
// layout, right-aligned: each button name sits in an accent-colored pill
// with its action label beside it. Scenes call this at the end of Render.
func RenderFooter(renderer *sdl.Renderer, items []FooterHelpItem, layout transition.Layout, bottomPadding int32) {
	font := internal.Fonts.SmallFont
	if font == nil || len(items) == 0 {
		return
	}
	theme := internal.GetTheme()

	fontHeight := int32(font.Height())
	pillHeight := fontHeight + 10

	const (
		sideMargin = 20
		itemGap    = 24
		labelGap   = 8
		pillPadX   = 12
	)

	type measuredItem struct {
		item   FooterHelpItem
		pillW  int32
		labelW int32
	}

	total := int32(0)
	measured := make([]measuredItem, 0, len(items))
	for _, item := range items {
		buttonW, _ := internal.MeasureText(item.ButtonName, font)
		labelW, _ := internal.MeasureText(item.HelpText, font)
		pillW := buttonW + pillPadX*2
		if pillW < pillHeight {
			pillW = pillHeight
		}
		measured = append(measured, measuredItem{item, pillW, labelW})
		total += pillW + labelGap + labelW
	}
	total += itemGap * int32(len(items)-1)

	x := int32(layout.Width) - sideMargin - total
	y := int32(layout.Height) - bottomPadding - pillHeight

	for _, m := range measured {
		pill := sdl.Rect{X: x, Y: y, W: m.pillW, H: pillHeight}
		renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, theme.AccentColor.A)
		renderer.FillRect(&pill)

		buttonW, buttonH := internal.MeasureText(m.item.ButtonName, font)
		DrawText(renderer, m.item.ButtonName, FontSmall,
			pill.X+(pill.W-buttonW)/2, y+(pillHeight-buttonH)/2, theme.ButtonLabelColor)

		x += m.pillW + labelGap
		DrawText(renderer, m.item.HelpText, FontSmall,
			x, y+(pillHeight-fontHeight)/2, theme.HintColor)
		x += m.labelW + itemGap
	}
}
