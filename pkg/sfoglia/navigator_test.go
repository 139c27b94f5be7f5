package sfoglia

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/anim"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/router"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/transition"
)

func TestMain(m *testing.M) {
	// Keep test logs out of the package directory.
	internal.SetLogPath(filepath.Join(os.TempDir(), "sfoglia-test", "sfoglia.log"))
	os.Exit(m.Run())
}

var navEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// eventLog records every stack event as "kind key[ closing]" so tests can
// assert on exact ordering.
type eventLog struct {
	entries []string
}

func (l *eventLog) attach(n *Navigator) {
	kinds := []EventKind{
		EventTransitionStart, EventTransitionEnd,
		EventGestureStart, EventGestureEnd, EventGestureCancel,
	}
	for _, kind := range kinds {
		n.On(kind, func(ev StackEvent) {
			entry := fmt.Sprintf("%s %s", ev.Kind, ev.Key)
			if ev.Closing {
				entry += " closing"
			}
			l.entries = append(l.entries, entry)
		})
	}
}

func (l *eventLog) clear() { l.entries = nil }

// mentioning returns the recorded entries that contain the given key.
func (l *eventLog) mentioning(key string) []string {
	var out []string
	for _, e := range l.entries {
		if strings.Contains(e, key) {
			out = append(out, e)
		}
	}
	return out
}

// stubScene is a headless Scene whose input handling is injectable.
type stubScene struct {
	handle  func(button constants.VirtualButton, pressed bool, nav *NavigationProp) bool
	buttons []constants.VirtualButton
}

func (s *stubScene) Render(renderer *sdl.Renderer, layout transition.Layout) {}

func (s *stubScene) HandleInput(button constants.VirtualButton, pressed bool, nav *NavigationProp) bool {
	s.buttons = append(s.buttons, button)
	if s.handle == nil {
		return false
	}
	return s.handle(button, pressed, nav)
}

// tickingScene counts per-frame updates to prove only the focused scene
// receives them.
type tickingScene struct {
	stubScene
	ticks int
}

func (s *tickingScene) Update(now time.Time) { s.ticks++ }

// fastOptions returns navigator options with a short linear transition so
// tests settle in a handful of 16ms frames.
func fastOptions() NavigatorOptions {
	opts := DefaultNavigatorOptions()
	opts.Layout = transition.Layout{Width: 640, Height: 480}
	opts.MeasureText = func(text string) (float64, float64) {
		return float64(10 * len(text)), 20
	}
	opts.Defaults.Spec = &transition.Spec{
		Open:  anim.Timing(80*time.Millisecond, anim.Linear),
		Close: anim.Timing(80*time.Millisecond, anim.Linear),
	}
	return opts
}

// stackHarness drives a navigator-plus-router pair on a simulated 16ms
// frame clock.
type stackHarness struct {
	nav    *Navigator
	router *router.Router
	events *eventLog
	clock  time.Time
}

func newStackHarness(t *testing.T, opts NavigatorOptions, names ...string) *stackHarness {
	t.Helper()
	h := &stackHarness{
		nav:    NewNavigator(opts),
		events: &eventLog{},
		clock:  navEpoch,
	}
	h.events.attach(h.nav)
	h.router = router.New(names...)
	h.nav.Attach(h.router)
	return h
}

// update runs one frame and advances the clock.
func (h *stackHarness) update() bool {
	busy := h.nav.Update(h.clock)
	h.clock = h.clock.Add(16 * time.Millisecond)
	return busy
}

// settle runs frames until nothing is animating, returning how many frames
// reported movement.
func (h *stackHarness) settle(t *testing.T) int {
	t.Helper()
	frames := 0
	for h.update() {
		frames++
		if frames > 600 {
			t.Fatal("stack never settled")
		}
	}
	return frames
}

func (h *stackHarness) keys() []string {
	var out []string
	for _, s := range h.nav.Screens() {
		out = append(out, s.Key())
	}
	return out
}

func TestNavigator_InitialAttachMountsSettled(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "home", "detail")

	assert.Equal(t, 2, h.nav.Depth())
	assert.Equal(t, "detail-2", h.nav.Top().Key())
	assert.False(t, h.nav.IsTransitioning(), "a restored stack starts at rest")
	assert.Empty(t, h.events.entries, "mounting existing state is not a transition")
	for _, s := range h.nav.Screens() {
		assert.InDelta(t, 1, s.Progress(), 1e-9)
	}
}

func TestNavigator_PushAnimatesOnlyNewTop(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "home")

	h.router.Dispatch(router.PushAction{Name: "detail"})

	require.Equal(t, 2, h.nav.Depth())
	top := h.nav.Top()
	assert.Equal(t, "detail-2", top.Key())
	assert.InDelta(t, 0, top.Progress(), 1e-9, "a pushed screen starts closed")
	assert.True(t, h.nav.IsTransitioning())
	assert.Equal(t, []string{"transitionStart detail-2"}, h.events.entries)

	frames := h.settle(t)

	assert.Greater(t, frames, 1, "the open animates over several frames")
	assert.InDelta(t, 1, top.Progress(), 1e-9)
	assert.InDelta(t, 1, h.nav.Screens()[0].Progress(), 1e-9, "the screen beneath never moves")
	assert.False(t, h.nav.IsTransitioning())
	assert.Equal(t, []string{
		"transitionStart detail-2",
		"transitionEnd detail-2",
	}, h.events.entries)
}

func TestNavigator_PopKeepsGhostUntilSettled(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "home", "detail")

	h.router.Dispatch(router.PopAction{})

	// The popped screen leaves the logical stack at once but stays rendered
	// while it animates out.
	assert.Equal(t, 1, h.nav.Depth())
	assert.Equal(t, "home-1", h.nav.Top().Key())
	require.Equal(t, []string{"home-1", "detail-2"}, h.keys())
	ghost := h.nav.Screens()[1]
	assert.True(t, ghost.Closing())
	assert.Equal(t, []string{"transitionStart detail-2 closing"}, h.events.entries)

	// Partway through, the ghost sits between open and closed.
	h.update()
	h.update()
	h.update()
	assert.Greater(t, ghost.Progress(), 0.0)
	assert.Less(t, ghost.Progress(), 1.0)

	h.settle(t)

	assert.Equal(t, []string{"home-1"}, h.keys())
	assert.Equal(t, []string{
		"transitionStart detail-2 closing",
		"transitionEnd detail-2 closing",
	}, h.events.entries)
	assert.InDelta(t, 1, h.nav.Top().Progress(), 1e-9)
}

func TestNavigator_BatchPopAnimatesOnlyOldTop(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "a", "b", "c", "d")

	h.router.Dispatch(router.PopAction{Count: 2})

	// c vanishes silently; d animates out on top of the survivors.
	require.Equal(t, []string{"a-1", "b-2", "d-4"}, h.keys())
	assert.Equal(t, 2, h.nav.Depth())
	assert.Equal(t, []string{"transitionStart d-4 closing"}, h.events.entries)
	assert.Empty(t, h.events.mentioning("c-3"), "batch intermediates fire no events")

	h.settle(t)

	assert.Equal(t, []string{"a-1", "b-2"}, h.keys())
	assert.Equal(t, []string{
		"transitionStart d-4 closing",
		"transitionEnd d-4 closing",
	}, h.events.entries)
}

func TestNavigator_ReplaceClosesOldTopUnderNew(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "a", "b")

	h.router.Dispatch(router.ReplaceAction{Name: "c"})

	// The ghost keeps its old stack position, so the incoming screen slides
	// in above it.
	require.Equal(t, []string{"a-1", "b-2", "c-3"}, h.keys())
	assert.True(t, h.nav.Screens()[1].Closing())
	assert.Equal(t, "c-3", h.nav.Top().Key())
	assert.Equal(t, []string{
		"transitionStart b-2 closing",
		"transitionStart c-3",
	}, h.events.entries)

	h.settle(t)

	assert.Equal(t, []string{"a-1", "c-3"}, h.keys())
	assert.Equal(t, []string{
		"transitionStart b-2 closing",
		"transitionStart c-3",
		"transitionEnd b-2 closing",
		"transitionEnd c-3",
	}, h.events.entries)
}

func TestNavigator_PopThenReviveReopensInPlace(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "a", "b")
	saved := h.router.State()

	h.router.Dispatch(router.PopAction{})
	h.update()
	h.update()
	h.update()
	ghost := h.nav.Screens()[1]
	midway := ghost.Progress()
	require.Greater(t, midway, 0.0)
	require.Less(t, midway, 1.0)

	// The state owner brings the closing key back: the screen turns around
	// from wherever it is instead of restarting from zero.
	h.router.Dispatch(router.ResetAction{State: saved})

	assert.False(t, ghost.Closing())
	assert.Equal(t, 2, h.nav.Depth())
	assert.Equal(t, "b-2", h.nav.Top().Key())
	assert.InDelta(t, midway, ghost.Progress(), 1e-9, "revival keeps the current position")

	h.settle(t)

	assert.InDelta(t, 1, ghost.Progress(), 1e-9)
	assert.Equal(t, []string{
		"transitionStart b-2 closing",
		"transitionStart b-2",
		"transitionEnd b-2",
	}, h.events.entries, "the abandoned close never reports an end")
}

func TestNavigator_NonTopReviveSettlesSilently(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "a", "b")

	h.router.Dispatch(router.PopAction{})
	h.update()
	h.update()

	// A reset that keeps b in the middle of the stack with a new screen on
	// top: b snaps open with no events of its own.
	h.router.Dispatch(router.ResetAction{State: router.State{
		Routes: []router.Route{
			{Key: "a-1", Name: "a"},
			{Key: "b-2", Name: "b"},
			{Name: "c"},
		},
		Index: 2,
	}})

	require.Equal(t, []string{"a-1", "b-2", "c-3"}, h.keys())
	b := h.nav.Screens()[1]
	assert.False(t, b.Closing())
	assert.InDelta(t, 1, b.Progress(), 1e-9, "a non-top revival snaps to rest")
	assert.Equal(t, []string{"transitionStart b-2 closing"}, h.events.mentioning("b-2"))

	h.settle(t)

	assert.Equal(t, []string{"transitionStart b-2 closing"}, h.events.mentioning("b-2"),
		"neither the abandoned close nor the snap reports an end")
	assert.Equal(t, []string{
		"transitionStart c-3",
		"transitionEnd c-3",
	}, h.events.mentioning("c-3"))
}

func TestNavigator_AnimationDisabledRunsLifecycleSynchronously(t *testing.T) {
	opts := fastOptions()
	opts.Defaults.AnimationEnabled = Bool(false)
	h := newStackHarness(t, opts, "home")

	h.router.Dispatch(router.PushAction{Name: "detail"})

	assert.InDelta(t, 1, h.nav.Top().Progress(), 1e-9)
	assert.False(t, h.nav.IsTransitioning())
	assert.Equal(t, []string{
		"transitionStart detail-2",
		"transitionEnd detail-2",
	}, h.events.entries, "start and end land in the same dispatch")

	h.events.clear()
	h.router.Dispatch(router.PopAction{})

	assert.Equal(t, []string{"home-1"}, h.keys(), "no ghost lingers without animation")
	assert.False(t, h.nav.IsTransitioning())
	assert.Equal(t, []string{
		"transitionStart detail-2 closing",
		"transitionEnd detail-2 closing",
	}, h.events.entries)
}

func TestNavigator_HandleButtonPopsOnUnconsumedB(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "home", "detail")

	consumed := h.nav.HandleButton(constants.VirtualButtonB, true)

	assert.True(t, consumed)
	assert.Equal(t, 1, h.nav.Depth())
	assert.Equal(t, []string{"transitionStart detail-2 closing"}, h.events.entries)
	h.settle(t)

	// At the root there is nothing to pop.
	assert.False(t, h.nav.HandleButton(constants.VirtualButtonB, true))
	// Releases and other buttons pass through untouched.
	assert.False(t, h.nav.HandleButton(constants.VirtualButtonB, false))
	assert.False(t, h.nav.HandleButton(constants.VirtualButtonA, true))
	assert.Equal(t, 1, h.nav.Depth())
}

func TestNavigator_SceneConsumesButtonBeforeStackFallback(t *testing.T) {
	scene := &stubScene{
		handle: func(button constants.VirtualButton, pressed bool, nav *NavigationProp) bool {
			return button == constants.VirtualButtonB
		},
	}

	opts := fastOptions()
	nav := NewNavigator(opts)
	events := &eventLog{}
	events.attach(nav)
	nav.Register("home", func(route router.Route, prop *NavigationProp) Scene { return &stubScene{} })
	nav.Register("detail", func(route router.Route, prop *NavigationProp) Scene { return scene })

	r := router.New("home", "detail")
	nav.Attach(r)

	assert.True(t, nav.HandleButton(constants.VirtualButtonB, true))
	assert.Equal(t, 2, nav.Depth(), "a consumed B never reaches the stack")
	assert.Empty(t, events.entries)
	assert.Equal(t, []constants.VirtualButton{constants.VirtualButtonB}, scene.buttons)

	// An unconsumed button still reaches the scene but pops nothing.
	assert.False(t, nav.HandleButton(constants.VirtualButtonA, true))
	assert.Equal(t, 2, nav.Depth())
}

func TestNavigator_OnlyFocusedSceneTicks(t *testing.T) {
	home := &tickingScene{}
	opts := fastOptions()
	nav := NewNavigator(opts)
	nav.Register("home", func(route router.Route, prop *NavigationProp) Scene { return home })
	nav.Register("detail", func(route router.Route, prop *NavigationProp) Scene { return &stubScene{} })

	h := &stackHarness{nav: nav, events: &eventLog{}, clock: navEpoch}
	h.events.attach(nav)
	h.router = router.New("home")
	nav.Attach(h.router)

	h.update()
	h.update()
	assert.Equal(t, 2, home.ticks)

	h.router.Dispatch(router.PushAction{Name: "detail"})
	h.settle(t)
	frozen := home.ticks

	h.update()
	h.update()
	assert.Equal(t, frozen, home.ticks, "a covered scene stops ticking")
}

func TestNavigator_NavigationPropGoesInertAfterUnmount(t *testing.T) {
	var detailProp *NavigationProp
	opts := fastOptions()
	nav := NewNavigator(opts)
	nav.Register("home", func(route router.Route, prop *NavigationProp) Scene { return &stubScene{} })
	nav.Register("detail", func(route router.Route, prop *NavigationProp) Scene {
		detailProp = prop
		return &stubScene{}
	})

	h := &stackHarness{nav: nav, events: &eventLog{}, clock: navEpoch}
	h.events.attach(nav)
	h.router = router.New("home", "detail")
	nav.Attach(h.router)

	require.NotNil(t, detailProp)
	require.NotNil(t, detailProp.Screen())

	h.router.Dispatch(router.PopAction{})
	h.settle(t)
	require.Equal(t, []string{"home-1"}, h.keys())
	h.events.clear()

	// A stale callback holding the prop can no longer navigate with it.
	detailProp.Pop(1)
	detailProp.Push("detail", nil)
	detailProp.SetOptions(ScreenOptions{Title: "ignored"})

	assert.Nil(t, detailProp.Screen())
	assert.Equal(t, 1, h.router.State().Len(), "an inert prop dispatches nothing")
	assert.Equal(t, 1, h.nav.Depth())
	assert.Empty(t, h.events.entries)
}

func TestNavigator_SetOptionsRetunesTransition(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "home", "detail")

	top := h.nav.Top()
	require.Equal(t, gesture.Horizontal, top.resolved.Direction)

	preset := transition.SlideVertical()
	top.SetOptions(ScreenOptions{Preset: &preset})

	assert.Equal(t, gesture.Vertical, top.resolved.Direction)
	assert.Equal(t, "detail-2", h.nav.Top().Key(), "retuning does not reorder the stack")
}

func TestNavigator_DispatchWithoutDispatcherIsDropped(t *testing.T) {
	nav := NewNavigator(fastOptions())
	events := &eventLog{}
	events.attach(nav)

	nav.Apply(router.State{
		Routes: []router.Route{{Key: "a-1", Name: "a"}, {Key: "b-2", Name: "b"}},
		Index:  1,
	})
	require.Equal(t, 2, nav.Depth())

	nav.Dispatch(router.PopAction{})

	assert.Equal(t, 2, nav.Depth(), "no dispatcher, no state change")
	assert.Empty(t, events.entries)
}

func TestNavigator_ApplyTruncatesRoutesAboveIndex(t *testing.T) {
	nav := NewNavigator(fastOptions())

	// A state whose focus sits below the last route renders only up to the
	// focused route.
	nav.Apply(router.State{
		Routes: []router.Route{
			{Key: "a-1", Name: "a"},
			{Key: "b-2", Name: "b"},
			{Key: "c-3", Name: "c"},
		},
		Index: 1,
	})

	assert.Equal(t, 2, nav.Depth())
	assert.Equal(t, "b-2", nav.Top().Key())
}

func TestNavigator_CardStyleAtInterpolatesStackPositions(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "home")
	h.router.Dispatch(router.PushAction{Name: "detail"})

	// Prime plus three 16ms frames of an 80ms linear open: progress 0.6.
	h.update()
	h.update()
	h.update()
	h.update()
	top := h.nav.Top()
	require.InDelta(t, 0.6, top.Progress(), 1e-9)

	style, ok := h.nav.CardStyleAt(1)
	require.True(t, ok)
	assert.InDelta(t, (1-0.6)*640, style.Card.TranslateX, 1e-9)
	assert.InDelta(t, 0.6*0.07, style.Overlay.Opacity, 1e-9)
	assert.InDelta(t, 0.6*0.3, style.Shadow.Opacity, 1e-9)

	below, ok := h.nav.CardStyleAt(0)
	require.True(t, ok)
	assert.InDelta(t, 0.6*640*-0.3, below.Card.TranslateX, 1e-9,
		"the covered screen compresses away as the card opens")

	_, ok = h.nav.CardStyleAt(2)
	assert.False(t, ok)
	_, ok = h.nav.CardStyleAt(-1)
	assert.False(t, ok)
}

func TestNavigator_BackLabelFallsBackWhenTitleTooWide(t *testing.T) {
	opts := fastOptions()
	nav := NewNavigator(opts)
	factory := func(route router.Route, prop *NavigationProp) Scene { return &stubScene{} }
	nav.RegisterWithOptions("home", factory, ScreenOptions{Title: "A very long library title indeed"})
	nav.Register("detail", factory)

	r := router.New("home", "detail")
	nav.Attach(r)

	screens := nav.Screens()
	require.Len(t, screens, 2)

	// 32 characters at 10px each is wider than 35% of 640, so the header
	// swaps in the localized generic label.
	label := nav.backLabelFor(screens[1], screens[0])
	assert.Equal(t, internal.BackLabel(), label)

	// A short title is used verbatim.
	screens[0].options.Title = "Home"
	label = nav.backLabelFor(screens[1], screens[0])
	assert.Equal(t, "Home", label)

	// An explicit override wins over the title.
	screens[1].options.Header.BackLabel = "Close"
	label = nav.backLabelFor(screens[1], screens[0])
	assert.Equal(t, "Close", label)
}

func TestNavigator_FloatHeaderStyleTracksTransition(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "home", "detail")

	style, ok := h.nav.FloatHeaderStyle()
	require.True(t, ok)
	assert.InDelta(t, 1, style.Title.Opacity, 1e-9, "a settled header shows its title plainly")
	assert.InDelta(t, 0, style.Title.TranslateX, 1e-9)
	assert.InDelta(t, 1, style.BackButton.Opacity, 1e-9)

	// While a new screen opens, its header title is still fading in.
	h.router.Dispatch(router.PushAction{Name: "settings"})
	h.update()
	h.update()
	h.update()
	h.update()

	style, ok = h.nav.FloatHeaderStyle()
	require.True(t, ok)
	assert.Less(t, style.Title.Opacity, 1.0)
	assert.Greater(t, style.Title.Opacity, 0.0)
}

func TestNavigator_DestroyUnmountsEverything(t *testing.T) {
	h := newStackHarness(t, fastOptions(), "home", "detail")
	h.router.Dispatch(router.PushAction{Name: "settings"})

	h.nav.Destroy()

	assert.Empty(t, h.nav.Screens())
	assert.Nil(t, h.nav.Top())
	assert.Zero(t, h.nav.Depth())
	assert.False(t, h.nav.IsTransitioning())
}

func TestNavigator_AttachDisposerSevers(t *testing.T) {
	nav := NewNavigator(fastOptions())
	r := router.New("home")
	dispose := nav.Attach(r)
	require.Equal(t, 1, nav.Depth())

	dispose()
	r.Dispatch(router.PushAction{Name: "detail"})

	assert.Equal(t, 1, nav.Depth(), "a detached navigator ignores router changes")
	assert.Equal(t, 2, r.State().Len())

	// The outbound direction is severed too.
	nav.Dispatch(router.PopAction{})
	assert.Equal(t, 2, r.State().Len())
}
