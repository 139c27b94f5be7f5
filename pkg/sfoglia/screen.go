package sfoglia

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/anim"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/router"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/transition"
)

// Scene is the content a screen shows inside its card. Implementations
// come from application code; both methods run on the navigator's
// goroutine.
type Scene interface {
	// Render draws the scene into the card's surface. The renderer's
	// target is already the card texture; draw in logical coordinates
	// within layout.
	Render(renderer *sdl.Renderer, layout transition.Layout)

	// HandleInput reacts to a button event on the focused screen. Return
	// true to consume the event; unconsumed B presses pop the screen.
	HandleInput(button constants.VirtualButton, pressed bool, nav *NavigationProp) bool
}

// Updater is implemented by scenes that advance state once per frame,
// such as input repeat or smooth scrolling. The navigator calls it on the
// focused scene during Update, after animations have stepped.
type Updater interface {
	Update(now time.Time)
}

// Blurrer is implemented by scenes that need to know when their screen
// stops being the focused one. A scene holding dpad state must drop it
// here: the release event goes to whichever screen has focus, so a hold
// spanning a push would otherwise still be repeating on return.
type Blurrer interface {
	Blur()
}

// SceneFactory builds a screen's scene when its route mounts. The
// NavigationProp stays valid for the lifetime of the screen.
type SceneFactory func(route router.Route, nav *NavigationProp) Scene

// registration is one Register entry: how to build the scene for a route
// name, plus the options every screen of that name starts from.
type registration struct {
	factory SceneFactory
	options ScreenOptions
}

// Screen is one mounted entry of the stack: a route, its scene, its
// effective options, and the animated progress value everything about the
// screen's appearance derives from.
type Screen struct {
	// Route is the descriptor this screen was mounted for. Params refresh
	// on every Apply; Key never changes.
	Route router.Route

	nav     *Navigator
	options ScreenOptions
	scene   Scene
	prop    *NavigationProp

	progress   *anim.Value
	recognizer *gesture.Recognizer
	resolved   transition.Resolved

	// closing is set while the screen animates toward removal; dismissed
	// once a gesture has taken it to progress 0 and the navigator is
	// waiting for the state owner to confirm.
	closing   bool
	dismissed bool

	texture  *sdl.Texture
	textureW int32
	textureH int32
}

// Key returns the screen's route key.
func (s *Screen) Key() string { return s.Route.Key }

// Name returns the screen's route name.
func (s *Screen) Name() string { return s.Route.Name }

// Title returns the text shown in the header for this screen: the header
// title override, then the screen title, then the route name.
func (s *Screen) Title() string {
	if s.options.Header.Title != "" {
		return s.options.Header.Title
	}
	if s.options.Title != "" {
		return s.options.Title
	}
	return s.Route.Name
}

// Progress returns the screen's current progress: 0 closed, 1 open.
func (s *Screen) Progress() float64 { return s.progress.Position() }

// Closing reports whether the screen is animating toward removal.
func (s *Screen) Closing() bool { return s.closing }

// Swiping reports whether a dismiss pan is currently driving this screen.
func (s *Screen) Swiping() bool { return s.recognizer.Swiping() }

// Options returns the screen's effective options.
func (s *Screen) Options() ScreenOptions { return s.options }

// SetOptions replaces the screen's options at runtime (dynamic titles,
// toggling the gesture, swapping the transition). No-op once the screen
// has unmounted.
func (s *Screen) SetOptions(opts ScreenOptions) {
	if s.nav == nil {
		return
	}
	s.nav.setScreenOptions(s, opts)
}

// Navigation returns the screen's navigation capability, the same value
// its scene factory received.
func (s *Screen) Navigation() *NavigationProp { return s.prop }
