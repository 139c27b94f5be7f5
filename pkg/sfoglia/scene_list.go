package sfoglia

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/transition"
)

// ListSceneOptions configures a ListScene.
type ListSceneOptions struct {
	Items []MenuItem

	// InitialFocus is the index focused when the scene mounts.
	InitialFocus int

	// TopPadding keeps rows clear of the floating header; BottomPadding
	// keeps them clear of the footer. Zero values use sensible defaults.
	TopPadding    int32
	BottomPadding int32
	SideMargin    int32

	FooterHelpItems []FooterHelpItem

	// OnAction fires when a button activates the focused item.
	OnAction func(action ListAction, index int, item MenuItem, nav *NavigationProp)

	// OnFocusChange fires whenever focus moves to a different item.
	OnFocusChange func(index int, item MenuItem)
}

// ListScene is a vertically scrolling menu with a single focused row.
// Up/down moves focus with hold-to-repeat; A, X, Y, and Start report
// through OnAction. B is left unhandled so the navigator pops.
type ListScene struct {
	opts  ListSceneOptions
	items []MenuItem

	focused      int
	visibleStart int
	visibleRows  int

	directional internal.DirectionalInput
	lastInput   time.Time
}

// NewListScene creates a list scene. The item slice is used directly;
// call SetItems to swap it later.
func NewListScene(opts ListSceneOptions) *ListScene {
	if opts.TopPadding == 0 {
		opts.TopPadding = constants.DefaultHeaderHeight + 12
	}
	if opts.BottomPadding == 0 {
		opts.BottomPadding = 64
	}
	if opts.SideMargin == 0 {
		opts.SideMargin = 20
	}

	s := &ListScene{
		opts:        opts,
		items:       opts.Items,
		directional: internal.NewDirectionalInput(),
	}
	if opts.InitialFocus > 0 && opts.InitialFocus < len(s.items) {
		s.focused = opts.InitialFocus
	}
	if len(s.items) > 0 && s.items[s.focused].Disabled {
		s.moveFocus(1)
	}
	return s
}

// Items returns the current item slice.
func (s *ListScene) Items() []MenuItem { return s.items }

// SetItems replaces the list contents, keeping focus in bounds.
func (s *ListScene) SetItems(items []MenuItem) {
	s.items = items
	if s.focused >= len(items) {
		s.focused = len(items) - 1
	}
	if s.focused < 0 {
		s.focused = 0
	}
}

// FocusedIndex returns the index of the focused item, -1 when empty.
func (s *ListScene) FocusedIndex() int {
	if len(s.items) == 0 {
		return -1
	}
	return s.focused
}

func (s *ListScene) HandleInput(button constants.VirtualButton, pressed bool, nav *NavigationProp) bool {
	if s.directional.SetHeld(button, pressed) {
		switch button {
		case constants.VirtualButtonUp:
			if pressed {
				s.moveFocus(-1)
			}
			return true
		case constants.VirtualButtonDown:
			if pressed {
				s.moveFocus(1)
			}
			return true
		default:
			return false
		}
	}

	if !pressed {
		return false
	}
	if time.Since(s.lastInput) < constants.DefaultInputDelay {
		return true
	}
	s.lastInput = time.Now()

	var action ListAction
	switch button {
	case constants.VirtualButtonA:
		action = ListActionSelected
	case constants.VirtualButtonX:
		action = ListActionTriggered
	case constants.VirtualButtonY:
		action = ListActionSecondaryTriggered
	case constants.VirtualButtonStart:
		action = ListActionConfirmed
	default:
		return false
	}

	if len(s.items) == 0 || s.opts.OnAction == nil {
		return false
	}
	item := s.items[s.focused]
	if item.Disabled {
		return true
	}
	s.opts.OnAction(action, s.focused, item, nav)
	return true
}

// Update advances hold-to-repeat focus movement.
func (s *ListScene) Update(now time.Time) {
	switch s.directional.Update() {
	case internal.DirectionUp:
		s.moveFocus(-1)
	case internal.DirectionDown:
		s.moveFocus(1)
	}
}

// Blur drops held dpad state; the release will go to whichever screen
// took focus.
func (s *ListScene) Blur() {
	s.directional.Reset()
}

// moveFocus shifts focus by delta, wrapping around the ends and skipping
// disabled items.
func (s *ListScene) moveFocus(delta int) {
	if len(s.items) == 0 {
		return
	}

	next := s.focused
	for range s.items {
		next = (next + delta + len(s.items)) % len(s.items)
		if !s.items[next].Disabled {
			break
		}
	}
	if next == s.focused || s.items[next].Disabled {
		return
	}

	s.focused = next
	s.ensureVisible()
	if s.opts.OnFocusChange != nil {
		s.opts.OnFocusChange(s.focused, s.items[s.focused])
	}
}

func (s *ListScene) ensureVisible() {
	if s.visibleRows <= 0 {
		s.visibleStart = 0
		return
	}
	if s.focused < s.visibleStart {
		s.visibleStart = s.focused
	}
	if s.focused >= s.visibleStart+s.visibleRows {
		s.visibleStart = s.focused - s.visibleRows + 1
	}
}

func (s *ListScene) Render(renderer *sdl.Renderer, layout transition.Layout) {
	font := internal.Fonts.MediumFont
	if font == nil || len(s.items) == 0 {
		RenderFooter(renderer, s.opts.FooterHelpItems, layout, 20)
		return
	}
	theme := internal.GetTheme()

	rowHeight := int32(font.Height()) + 18
	rowPitch := rowHeight + 6
	contentTop := s.opts.TopPadding
	contentBottom := int32(layout.Height) - s.opts.BottomPadding

	s.visibleRows = int((contentBottom - contentTop) / rowPitch)
	if s.visibleRows < 1 {
		s.visibleRows = 1
	}
	if s.visibleStart > len(s.items)-1 {
		s.visibleStart = len(s.items) - 1
	}
	if s.visibleStart < 0 {
		s.visibleStart = 0
	}
	s.ensureVisible()

	width := int32(layout.Width)
	contentWidth := width - s.opts.SideMargin*2

	end := s.visibleStart + s.visibleRows
	if end > len(s.items) {
		end = len(s.items)
	}

	for i := s.visibleStart; i < end; i++ {
		item := s.items[i]
		y := contentTop + rowPitch*int32(i-s.visibleStart)
		focused := i == s.focused

		textColor := theme.TextColor
		if item.Disabled {
			textColor = theme.HintColor
		}
		if focused {
			textColor = theme.HighlightedTextColor
			rect := sdl.Rect{
				X: s.opts.SideMargin - 10,
				Y: y,
				W: contentWidth + 20,
				H: rowHeight,
			}
			internal.DrawRoundedRect(renderer, &rect, 8, theme.HighlightColor)
		}

		maxLabelWidth := contentWidth
		var hintW int32
		if item.Hint != "" {
			hintW, _ = internal.MeasureText(item.Hint, font)
			maxLabelWidth -= hintW + 40
		}

		label := truncateText(font, item.Text, maxLabelWidth)
		_, labelH := internal.MeasureText(label, font)
		DrawText(renderer, label, FontMedium,
			s.opts.SideMargin, y+(rowHeight-labelH)/2, textColor)

		if item.Hint != "" {
			hintColor := theme.HintColor
			if focused {
				hintColor = theme.HighlightedTextColor
			}
			DrawText(renderer, item.Hint, FontMedium,
				width-s.opts.SideMargin-hintW, y+(rowHeight-labelH)/2, hintColor)
		}
	}

	RenderFooter(renderer, s.opts.FooterHelpItems, layout, 20)
}

// truncateText shortens text with a trailing ellipsis until it fits
// maxWidth in the given font.
func truncateText(font *ttf.Font, text string, maxWidth int32) string {
	if w, _ := internal.MeasureText(text, font); w <= maxWidth {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if w, _ := internal.MeasureText(candidate, font); w <= maxWidth {
			return candidate
		}
	}
	return "..."
}
