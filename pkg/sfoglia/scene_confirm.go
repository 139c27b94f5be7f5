package sfoglia

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/transition"
)

// ConfirmOption is one horizontally selectable choice in a ConfirmScene.
type ConfirmOption struct {
	// DisplayName is the text shown to the user.
	DisplayName string
	// Value is carried through to OnConfirm untouched.
	Value interface{}
}

// ConfirmSceneOptions configures a ConfirmScene.
type ConfirmSceneOptions struct {
	// ConfirmButton confirms the selection (default: VirtualButtonA).
	// Start always confirms as well.
	ConfirmButton constants.VirtualButton

	// BackButton cancels (default: VirtualButtonB).
	BackButton constants.VirtualButton

	// DisableBack swallows the back button so the scene cannot be
	// dismissed without choosing an option.
	DisableBack bool

	// InitialSelection is the index selected when the scene appears.
	InitialSelection int

	// FooterHelpItems are rendered along the bottom edge.
	FooterHelpItems []FooterHelpItem

	// OnConfirm is called when the user confirms the highlighted option.
	OnConfirm func(index int, option ConfirmOption, nav *NavigationProp)

	// OnCancel is called when the user presses the back button. When nil
	// the press is left unhandled so the navigator pops the screen.
	OnCancel func(nav *NavigationProp)
}

// ConfirmScene shows a message with a row of options the user picks between
// with left and right, in the style of "Are you sure?  < Yes | No >". It is
// usually pushed with a vertical (modal) transition.
type ConfirmScene struct {
	opts      ConfirmSceneOptions
	message   string
	options   []ConfirmOption
	selected  int
	lastInput time.Time
}

// NewConfirmScene creates a confirmation scene. With no options the scene
// still renders its message but can only be dismissed with back.
func NewConfirmScene(message string, options []ConfirmOption, opts ConfirmSceneOptions) *ConfirmScene {
	if opts.ConfirmButton == constants.VirtualButtonUnassigned {
		opts.ConfirmButton = constants.VirtualButtonA
	}
	if opts.BackButton == constants.VirtualButtonUnassigned {
		opts.BackButton = constants.VirtualButtonB
	}

	selected := opts.InitialSelection
	if selected < 0 || selected >= len(options) {
		selected = 0
	}

	return &ConfirmScene{
		opts:     opts,
		message:  message,
		options:  options,
		selected: selected,
	}
}

// SelectedIndex returns the currently highlighted option index.
func (s *ConfirmScene) SelectedIndex() int {
	return s.selected
}

// HandleInput moves the selection with left/right and fires the callbacks on
// confirm or back.
func (s *ConfirmScene) HandleInput(button constants.VirtualButton, pressed bool, nav *NavigationProp) bool {
	if !pressed {
		return false
	}
	if time.Since(s.lastInput) < constants.DefaultInputDelay {
		return true
	}
	s.lastInput = time.Now()

	switch button {
	case constants.VirtualButtonLeft:
		if len(s.options) > 0 {
			s.selected--
			if s.selected < 0 {
				s.selected = len(s.options) - 1
			}
		}
		return true

	case constants.VirtualButtonRight:
		if len(s.options) > 0 {
			s.selected++
			if s.selected >= len(s.options) {
				s.selected = 0
			}
		}
		return true

	case s.opts.ConfirmButton, constants.VirtualButtonStart:
		if len(s.options) > 0 && s.opts.OnConfirm != nil {
			s.opts.OnConfirm(s.selected, s.options[s.selected], nav)
		}
		return true

	case s.opts.BackButton:
		if s.opts.DisableBack {
			return true
		}
		if s.opts.OnCancel != nil {
			s.opts.OnCancel(nav)
			return true
		}
		return false
	}
	return false
}

// Render draws the message and option row centered in the layout.
func (s *ConfirmScene) Render(renderer *sdl.Renderer, layout transition.Layout) {
	theme := internal.GetTheme()
	messageFont := internal.Fonts.SmallFont
	optionFont := internal.Fonts.MediumFont
	if messageFont == nil || optionFont == nil {
		return
	}

	maxMessageWidth := int32(layout.Width * 0.75)
	if maxMessageWidth > 800 {
		maxMessageWidth = 800
	}

	messageHeight := internal.MultilineTextHeight(s.message, messageFont, maxMessageWidth)
	optionHeight := int32(optionFont.Height())
	spacing := int32(30)
	totalHeight := messageHeight + spacing + optionHeight

	startY := (int32(layout.Height) - totalHeight) / 2
	centerX := int32(layout.Width) / 2

	internal.RenderMultilineText(renderer, s.message, messageFont, maxMessageWidth,
		centerX, startY, theme.TextColor, constants.TextAlignCenter)

	if len(s.options) > 0 {
		s.renderOptions(renderer, centerX, startY+messageHeight+spacing, optionFont, theme)
	}

	if len(s.opts.FooterHelpItems) > 0 {
		RenderFooter(renderer, s.opts.FooterHelpItems, layout, 20)
	}
}

// renderOptions draws the row as < Option1 | Option2 | Option3 > with the
// selected option highlighted.
func (s *ConfirmScene) renderOptions(renderer *sdl.Renderer, centerX, y int32, font *ttf.Font, theme internal.Theme) {
	arrowColor := sdl.Color{R: 180, G: 180, B: 180, A: 255}
	separatorColor := sdl.Color{R: 80, G: 80, B: 80, A: 255}

	leftArrow := "<  "
	rightArrow := "  >"
	separator := "  |  "

	leftArrowWidth := textWidth(font, leftArrow)
	rightArrowWidth := textWidth(font, rightArrow)
	separatorWidth := textWidth(font, separator)

	var optionWidths []int32
	totalOptionsWidth := int32(0)
	for i, opt := range s.options {
		w := textWidth(font, opt.DisplayName)
		optionWidths = append(optionWidths, w)
		totalOptionsWidth += w
		if i < len(s.options)-1 {
			totalOptionsWidth += separatorWidth
		}
	}

	totalWidth := leftArrowWidth + totalOptionsWidth + rightArrowWidth
	x := centerX - totalWidth/2

	renderLine(renderer, font, leftArrow, x, y, arrowColor)
	x += leftArrowWidth

	for i, opt := range s.options {
		color := theme.HintColor
		if i == s.selected {
			color = theme.TextColor
		}
		renderLine(renderer, font, opt.DisplayName, x, y, color)
		x += optionWidths[i]

		if i < len(s.options)-1 {
			renderLine(renderer, font, separator, x, y, separatorColor)
			x += separatorWidth
		}
	}

	renderLine(renderer, font, rightArrow, x, y, arrowColor)
}

func textWidth(font *ttf.Font, text string) int32 {
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

func renderLine(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
}
