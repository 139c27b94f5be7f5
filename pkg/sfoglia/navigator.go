package sfoglia

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/anim"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/router"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/transition"
)

// Dispatcher applies navigation actions on behalf of the navigator.
// *router.Router satisfies it; applications with their own state owner
// implement it and feed resulting states back through Apply.
type Dispatcher interface {
	Dispatch(action router.Action)
}

// Navigator renders a navigation state as an animated stack of cards.
// It never decides navigation itself: actions go out through the
// Dispatcher, states come back in through Apply, and the navigator
// animates whatever difference it sees.
//
// Apply, Update, HandlePointer, and HandleButton never touch SDL, so the
// whole orchestration layer runs headless in tests. Render and
// HandleEvent are the SDL boundary.
type Navigator struct {
	opts     NavigatorOptions
	tuning   transition.Tuning
	fallback transition.Preset
	baseGest gesture.Config

	registrations map[string]registration
	dispatcher    Dispatcher

	screens        []*Screen
	gestureOwner   *Screen
	lastFocused    *Screen
	pendingPointer []gesture.PointerEvent

	events       eventRegistry
	layout       transition.Layout
	insets       transition.Insets
	headerHeight int32

	measure       MeasureTextFunc
	transitioning *atomic.Bool

	header headerState
}

// NewNavigator creates a navigator. Register scenes on it, then Attach a
// router (or Apply states by hand).
func NewNavigator(opts NavigatorOptions) *Navigator {
	if opts.HeaderHeight == 0 {
		opts.HeaderHeight = constants.DefaultHeaderHeight
	}

	tuning := transition.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	} else if activeTuning != nil {
		tuning = *activeTuning
	}

	base := transition.SlideHorizontal()
	if opts.Mode == StackModeModal {
		base = transition.SlideVertical()
	}
	fallback, err := tuning.ApplyPreset(base)
	if err != nil {
		internal.GetInternalLogger().Warn("Transition tuning rejected; using built-in preset",
			"preset", base.Name, "error", err)
		fallback = base
	}

	return &Navigator{
		opts:          opts,
		tuning:        tuning,
		fallback:      fallback,
		baseGest:      tuning.GestureConfig(fallback.Direction),
		registrations: make(map[string]registration),
		layout:        opts.Layout,
		insets:        opts.Insets,
		headerHeight:  opts.HeaderHeight,
		measure:       opts.MeasureText,
		transitioning: atomic.NewBool(false),
	}
}

// Register binds a scene factory to a route name.
func (n *Navigator) Register(name string, factory SceneFactory) *Navigator {
	return n.RegisterWithOptions(name, factory, ScreenOptions{})
}

// RegisterWithOptions binds a scene factory plus the options every screen
// mounted for this route name starts from.
func (n *Navigator) RegisterWithOptions(name string, factory SceneFactory, opts ScreenOptions) *Navigator {
	n.registrations[name] = registration{factory: factory, options: opts}
	return n
}

// Attach wires the navigator to a router: the router becomes the
// dispatcher for navigation actions, the router's current state applies
// immediately, and every later change follows. The returned disposer
// severs both directions.
func (n *Navigator) Attach(r *router.Router) func() {
	n.dispatcher = r
	n.Apply(r.State())
	dispose := r.OnChange(func(state router.State) {
		n.Apply(state)
	})
	return func() {
		dispose()
		if n.dispatcher == r {
			n.dispatcher = nil
		}
	}
}

// On subscribes to a navigator lifecycle event. Handlers run
// synchronously, in registration order.
func (n *Navigator) On(kind EventKind, handler EventHandler) Disposer {
	return n.events.subscribe(kind, handler)
}

// Dispatch forwards a navigation action to the attached dispatcher. An
// active dismiss pan is force-cancelled first: an explicit navigation
// call outranks whatever the finger was doing.
func (n *Navigator) Dispatch(action router.Action) {
	n.abortGesture()
	if n.dispatcher == nil {
		internal.GetInternalLogger().Warn("Navigation action dropped; no dispatcher attached",
			"stack", n.opts.StackKey)
		return
	}
	n.dispatcher.Dispatch(action)
}

// abortGesture force-cancels the active pan, if any, and sends the
// abandoned screen back to rest unless it is already closing.
func (n *Navigator) abortGesture() {
	owner := n.gestureOwner
	if owner == nil {
		return
	}
	owner.recognizer.ForceCancel()
	n.events.emit(StackEvent{Kind: EventGestureCancel, Key: owner.Route.Key})
	if !owner.closing && !owner.dismissed {
		owner.progress.AnimateTo(1, owner.resolved.Spec.Open, nil)
	}
}

// Apply reconciles the mounted screens against a navigation state.
//
// New top screens mount at progress 0 and animate open; a removed top
// animates closed and unmounts on settle while everything beneath it
// stays put. In a batch removal only the outgoing top animates;
// intermediates unmount immediately and silently, as does a
// gesture-dismissed screen whose removal this state confirms. A state
// that still contains a locally-closing key revives that screen: it
// animates back open from wherever it currently is.
func (n *Navigator) Apply(state router.State) {
	routes := state.Routes
	if state.Index >= 0 && state.Index+1 < len(routes) {
		routes = routes[:state.Index+1]
	}

	incoming := make(map[string]int, len(routes))
	for i, route := range routes {
		incoming[route.Key] = i
	}

	wasEmpty := len(n.screens) == 0
	prevTop := n.topScreen()

	type ghost struct {
		screen *Screen
		index  int
	}
	var ghosts []ghost
	survivors := make(map[string]*Screen)

	for i, s := range n.screens {
		if _, ok := incoming[s.Route.Key]; ok {
			survivors[s.Route.Key] = s
			continue
		}
		switch {
		case s.closing && !s.dismissed:
			// Mid-flight from an earlier Apply; let it finish.
			ghosts = append(ghosts, ghost{s, i})
		case s.dismissed:
			// The confirming Apply after a gesture dismissal.
			n.unmountScreen(s)
		case s == prevTop:
			if n.beginClose(s) {
				ghosts = append(ghosts, ghost{s, i})
			}
		default:
			// Intermediate screen of a batch removal.
			n.unmountScreen(s)
		}
	}

	newList := make([]*Screen, 0, len(routes)+len(ghosts))
	var opening []*Screen
	for i, route := range routes {
		isTop := i == len(routes)-1
		if s, ok := survivors[route.Key]; ok {
			s.Route = route
			if s.closing || s.dismissed {
				// Revived: the state still wants a key we were closing.
				if isTop {
					opening = append(opening, s)
				} else {
					s.closing = false
					s.dismissed = false
					s.progress.SetImmediate(1)
				}
			}
			newList = append(newList, s)
			continue
		}

		s := n.mountScreen(route)
		newList = append(newList, s)
		if isTop && !wasEmpty {
			opening = append(opening, s)
		} else {
			s.progress.SetImmediate(1)
		}
	}

	for _, g := range ghosts {
		pos := g.index
		if pos > len(newList) {
			pos = len(newList)
		}
		newList = append(newList, nil)
		copy(newList[pos+1:], newList[pos:])
		newList[pos] = g.screen
	}

	n.screens = newList

	for _, s := range opening {
		n.beginOpen(s)
	}
	n.refreshTransitioning()
}

// Update advances the stack one frame. Queued gesture input applies
// first, then every screen's progress steps, so interpolators read
// post-step values for the frame about to render. Returns true while
// anything is still moving.
func (n *Navigator) Update(now time.Time) bool {
	pending := n.pendingPointer
	n.pendingPointer = nil
	for _, ev := range pending {
		n.routePointer(ev)
	}

	// Settle callbacks may dispatch and reshape the screen list, so step
	// over a snapshot.
	screens := make([]*Screen, len(n.screens))
	copy(screens, n.screens)

	animating := false
	for _, s := range screens {
		if s.progress.Step(now) {
			animating = true
		}
	}

	top := n.topScreen()
	if top != n.lastFocused {
		if n.lastFocused != nil && n.lastFocused.scene != nil {
			if b, ok := n.lastFocused.scene.(Blurrer); ok {
				b.Blur()
			}
		}
		n.lastFocused = top
	}

	if top != nil && top.scene != nil {
		if u, ok := top.scene.(Updater); ok {
			u.Update(now)
		}
	}

	busy := animating || n.gestureOwner != nil
	n.transitioning.Store(busy)
	return busy
}

// HandlePointer queues a pointer event for the next Update. Safe to call
// any number of times between frames.
func (n *Navigator) HandlePointer(ev gesture.PointerEvent) {
	n.pendingPointer = append(n.pendingPointer, ev)
}

// HandleButton feeds a button event to the focused scene, then falls back
// to stack navigation: an unconsumed B press pops the focused screen.
// Returns true when the event was consumed.
func (n *Navigator) HandleButton(button constants.VirtualButton, pressed bool) bool {
	top := n.topScreen()
	if top == nil {
		return false
	}
	if top.scene != nil && top.scene.HandleInput(button, pressed, top.prop) {
		return true
	}
	if pressed && button == constants.VirtualButtonB && n.Depth() > 1 {
		n.Dispatch(router.PopAction{Count: 1})
		return true
	}
	return false
}

// HandleEvent translates a raw SDL event into navigator input: pointer
// events feed the dismiss gesture, everything else goes through the input
// processor to the focused scene.
func (n *Navigator) HandleEvent(event sdl.Event) bool {
	if n.layout.Width > 0 {
		if pev, ok := internal.PointerFromSDL(event, int32(n.layout.Width), int32(n.layout.Height)); ok {
			n.HandlePointer(pev)
			return n.gestureOwner != nil
		}
	}
	if ie := internal.GetInputProcessor().ProcessSDLEvent(event); ie != nil {
		return n.HandleButton(ie.Button, ie.Pressed)
	}
	return false
}

// SetLayout updates the logical size and insets, cancelling any pan that
// was measured against the old geometry.
func (n *Navigator) SetLayout(layout transition.Layout, insets transition.Insets) {
	n.abortGesture()
	n.layout = layout
	n.insets = insets
	for _, s := range n.screens {
		s.recognizer.SetLayout(layout.Width, layout.Height)
	}
}

// Depth returns the number of screens on the stack, not counting ones
// already animating out.
func (n *Navigator) Depth() int {
	depth := 0
	for _, s := range n.screens {
		if !s.closing && !s.dismissed {
			depth++
		}
	}
	return depth
}

// Top returns the focused screen: the topmost one not on its way out.
func (n *Navigator) Top() *Screen { return n.topScreen() }

// Screens returns the rendered stack, bottom first, including screens
// still animating out.
func (n *Navigator) Screens() []*Screen {
	out := make([]*Screen, len(n.screens))
	copy(out, n.screens)
	return out
}

// IsTransitioning reports whether any screen is animating or a pan is in
// flight. Safe to call from any goroutine.
func (n *Navigator) IsTransitioning() bool { return n.transitioning.Load() }

// Destroy unmounts every screen and releases the navigator's render
// resources. The navigator must not be used afterwards.
func (n *Navigator) Destroy() {
	for _, s := range n.screens {
		n.unmountScreen(s)
	}
	n.screens = nil
	n.gestureOwner = nil
	n.lastFocused = nil
	n.header.destroy()
	n.transitioning.Store(false)
}

// CardStyleAt computes the interpolated style for the screen at the given
// stack position, bottom first.
func (n *Navigator) CardStyleAt(index int) (transition.CardStyle, bool) {
	if index < 0 || index >= len(n.screens) {
		return transition.CardStyle{}, false
	}
	s := n.screens[index]
	return s.resolved.Card(n.cardProps(index)), true
}

// FloatHeaderStyle computes the floating header's interpolated style for
// the current frame, through the focused screen's header interpolator.
func (n *Navigator) FloatHeaderStyle() (transition.HeaderStyle, bool) {
	focused := n.topScreen()
	if focused == nil {
		return transition.HeaderStyle{}, false
	}
	props, _ := n.headerProps(focused)
	return focused.resolved.Header(props), true
}

func (n *Navigator) topScreen() *Screen {
	for i := len(n.screens) - 1; i >= 0; i-- {
		if s := n.screens[i]; !s.closing && !s.dismissed {
			return s
		}
	}
	return nil
}

func (n *Navigator) findScreen(key string) *Screen {
	for _, s := range n.screens {
		if s.Route.Key == key {
			return s
		}
	}
	return nil
}

func (n *Navigator) mounted(s *Screen) bool {
	for _, cur := range n.screens {
		if cur == s {
			return true
		}
	}
	return false
}

func (n *Navigator) mountScreen(route router.Route) *Screen {
	reg := n.registrations[route.Name]

	s := &Screen{Route: route, nav: n}
	s.options = reg.options.merge(n.opts.Defaults)
	s.resolved = transition.Resolve(s.options.transitionChoice(), n.fallback)
	s.progress = anim.NewValue(0)
	s.prop = &NavigationProp{key: route.Key, nav: n, screen: s}
	s.recognizer = n.buildRecognizer(s)
	s.recognizer.SetLayout(n.layout.Width, n.layout.Height)

	if reg.factory != nil {
		s.scene = reg.factory(route, s.prop)
	} else if len(n.registrations) > 0 {
		internal.GetInternalLogger().Warn("No scene registered for route", "name", route.Name)
	}
	return s
}

func (n *Navigator) buildRecognizer(s *Screen) *gesture.Recognizer {
	cfg := s.options.gestureConfig(n.baseGest, s.resolved.Direction)
	return gesture.NewRecognizer(s.progress, cfg, gesture.Hooks{
		Claim: func() bool {
			if n.gestureOwner != nil || s.closing || s.dismissed {
				return false
			}
			if !s.options.gestureEnabled() || n.topScreen() != s || n.Depth() < 2 {
				return false
			}
			n.gestureOwner = s
			return true
		},
		Free: func() {
			if n.gestureOwner == s {
				n.gestureOwner = nil
			}
		},
		Began: func() {
			n.events.emit(StackEvent{Kind: EventGestureStart, Key: s.Route.Key})
		},
		Ended: func(release gesture.Release) {
			n.onGestureRelease(s, release)
		},
	})
}

// setScreenOptions layers runtime overrides above the screen's registered
// options. The nav check rather than a list scan keeps this callable from
// inside a scene factory, before the screen joins the stack.
func (n *Navigator) setScreenOptions(s *Screen, opts ScreenOptions) {
	if s.nav != n {
		return
	}
	if n.gestureOwner == s {
		n.abortGesture()
	}
	reg := n.registrations[s.Route.Name]
	s.options = opts.merge(reg.options).merge(n.opts.Defaults)
	s.resolved = transition.Resolve(s.options.transitionChoice(), n.fallback)
	s.recognizer = n.buildRecognizer(s)
	s.recognizer.SetLayout(n.layout.Width, n.layout.Height)
}

// beginOpen animates a screen to progress 1, also clearing any closing
// state, which makes it double as the revive path for a re-pushed key.
func (n *Navigator) beginOpen(s *Screen) {
	s.closing = false
	s.dismissed = false
	key := s.Route.Key
	n.events.emit(StackEvent{Kind: EventTransitionStart, Key: key})

	if !s.options.animationEnabled() {
		s.progress.Snap(1, nil)
		n.events.emit(StackEvent{Kind: EventTransitionEnd, Key: key})
		return
	}

	s.progress.AnimateTo(1, s.resolved.Spec.Open, func() {
		if !n.mounted(s) {
			return
		}
		n.events.emit(StackEvent{Kind: EventTransitionEnd, Key: key})
	})
}

// beginClose animates a screen to progress 0 and unmounts it on settle.
// Returns true when the screen remains mounted as a closing ghost, false
// when it unmounted synchronously (animation disabled).
func (n *Navigator) beginClose(s *Screen) bool {
	s.closing = true
	s.recognizer.ForceCancel()
	key := s.Route.Key
	n.events.emit(StackEvent{Kind: EventTransitionStart, Key: key, Closing: true})

	if !s.options.animationEnabled() {
		s.progress.Snap(0, nil)
		n.events.emit(StackEvent{Kind: EventTransitionEnd, Key: key, Closing: true})
		n.unmountScreen(s)
		return false
	}

	s.progress.AnimateTo(0, s.resolved.Spec.Close, func() {
		if !n.mounted(s) {
			return
		}
		n.events.emit(StackEvent{Kind: EventTransitionEnd, Key: key, Closing: true})
		n.removeScreen(s)
	})
	return true
}

// onGestureRelease turns a released pan into the settle animation, with
// the release velocity seeded so the spring keeps the finger's momentum.
func (n *Navigator) onGestureRelease(s *Screen, release gesture.Release) {
	key := s.Route.Key
	s.progress.SetVelocity(release.ProgressVelocity)

	if release.Completing {
		n.events.emit(StackEvent{Kind: EventGestureEnd, Key: key})
		s.closing = true
		n.events.emit(StackEvent{Kind: EventTransitionStart, Key: key, Closing: true})

		settle := func() {
			if !n.mounted(s) {
				return
			}
			s.recognizer.Finish()
			s.dismissed = true
			n.events.emit(StackEvent{Kind: EventTransitionEnd, Key: key, Closing: true})
			n.confirmDismiss(s)
		}
		if !s.options.animationEnabled() {
			s.progress.Snap(0, settle)
		} else {
			s.progress.AnimateTo(0, s.resolved.Spec.Close, settle)
		}
		return
	}

	n.events.emit(StackEvent{Kind: EventGestureCancel, Key: key})
	settle := func() {
		if !n.mounted(s) {
			return
		}
		s.recognizer.Finish()
	}
	if !s.options.animationEnabled() {
		s.progress.Snap(1, settle)
	} else {
		s.progress.AnimateTo(1, s.resolved.Spec.Open, settle)
	}
}

// confirmDismiss asks the state owner to drop a gesture-dismissed route.
// The screen stays mounted, invisible at progress 0, until the resulting
// Apply confirms; with no dispatcher attached it is dropped locally.
func (n *Navigator) confirmDismiss(s *Screen) {
	if n.dispatcher == nil {
		n.removeScreen(s)
		return
	}
	n.dispatcher.Dispatch(router.RemoveAction{Key: s.Route.Key})
}

func (n *Navigator) routePointer(ev gesture.PointerEvent) {
	if owner := n.gestureOwner; owner != nil {
		owner.recognizer.Handle(ev)
		return
	}
	if top := n.topScreen(); top != nil {
		top.recognizer.Handle(ev)
	}
}

func (n *Navigator) removeScreen(s *Screen) {
	for i, cur := range n.screens {
		if cur == s {
			n.screens = append(n.screens[:i:i], n.screens[i+1:]...)
			break
		}
	}
	n.unmountScreen(s)
}

// unmountScreen releases a screen's resources. Pending settle callbacks
// are dropped, so nothing fires for a screen that is already gone.
func (n *Navigator) unmountScreen(s *Screen) {
	s.progress.CancelAnimation()
	s.recognizer.ForceCancel()
	s.nav = nil
	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}
}

func (n *Navigator) refreshTransitioning() {
	busy := n.gestureOwner != nil
	if !busy {
		for _, s := range n.screens {
			if !s.progress.Settled() {
				busy = true
				break
			}
		}
	}
	n.transitioning.Store(busy)
}

func (n *Navigator) effectiveInsets(s *Screen) transition.Insets {
	if s.options.SafeArea != nil {
		return *s.options.SafeArea
	}
	return n.insets
}

func (n *Navigator) effectiveHeaderMode(s *Screen) HeaderMode {
	if s.options.HeaderMode != nil {
		return *s.options.HeaderMode
	}
	return n.opts.HeaderMode
}

func (n *Navigator) cardProps(index int) transition.CardProps {
	s := n.screens[index]
	props := transition.CardProps{
		Current: s.progress.Position(),
		Index:   index,
		Swiping: s.recognizer.Swiping(),
		Layout:  n.layout,
		Insets:  n.effectiveInsets(s),
	}
	if s.closing || s.dismissed {
		props.Closing = 1
	}
	if index+1 < len(n.screens) {
		props.HasNext = true
		props.Next = n.screens[index+1].progress.Position()
	}
	return props
}

// headerProps assembles the floating header's view of the stack: the
// focused screen's progress plus the progress of whatever is above it,
// with measured text layouts when a measurer is available. The second
// return is the resolved back-label text.
func (n *Navigator) headerProps(focused *Screen) (transition.HeaderProps, string) {
	props := transition.HeaderProps{
		Current: focused.progress.Position(),
		Layout:  n.layout,
		Insets:  n.effectiveInsets(focused),
	}

	idx := -1
	for i, s := range n.screens {
		if s == focused {
			idx = i
			break
		}
	}
	if idx >= 0 && idx+1 < len(n.screens) {
		props.HasNext = true
		props.Next = n.screens[idx+1].progress.Position()
	}

	var below *Screen
	if idx > 0 {
		below = n.screens[idx-1]
	}

	backLabel := n.backLabelFor(focused, below)
	props.Title = n.measureElement(focused.Title())
	props.BackLabel = n.measureElement(backLabel)
	return props, backLabel
}

// backLabelFor picks the text next to the back chevron: the explicit
// override, else the previous screen's title, falling back to the
// localized generic label when that title is too wide to fit.
func (n *Navigator) backLabelFor(focused, below *Screen) string {
	if below == nil {
		return ""
	}
	text := focused.options.Header.BackLabel
	if text == "" {
		text = below.Title()
	}
	if n.measure != nil && n.layout.Width > 0 {
		if w, _ := n.measure(text); w > n.layout.Width*0.35 {
			text = internal.BackLabel()
		}
	}
	return text
}

func (n *Navigator) measureElement(text string) transition.ElementLayout {
	if n.measure == nil || text == "" {
		return transition.ElementLayout{}
	}
	w, h := n.measure(text)
	if w <= 0 {
		return transition.ElementLayout{}
	}
	return transition.ElementLayout{Width: w, Height: h, Measured: true}
}
