package sfoglia

import "github.com/BrandonKowalski/sfoglia/pkg/sfoglia/router"

// NavigationProp is the handle a scene uses to navigate. Each mounted
// screen gets its own; once that screen unmounts the prop goes inert and
// every call on it is a no-op, so a stale callback cannot pop somebody
// else's screen. The prop is already live inside the scene factory, so a
// factory may call SetOptions to derive a title from route params.
type NavigationProp struct {
	key    string
	nav    *Navigator
	screen *Screen
}

// Key returns the route key of the screen this prop belongs to.
func (p *NavigationProp) Key() string { return p.key }

// Screen returns the owning screen, or nil after it unmounts.
func (p *NavigationProp) Screen() *Screen {
	if p.nav == nil || p.screen == nil || p.screen.nav != p.nav {
		return nil
	}
	return p.screen
}

// Push asks the state owner for a new screen on top of the stack.
func (p *NavigationProp) Push(name string, params map[string]string) {
	p.Dispatch(router.PushAction{Name: name, Params: params})
}

// Pop asks the state owner to remove the top count screens.
func (p *NavigationProp) Pop(count int) {
	p.Dispatch(router.PopAction{Count: count})
}

// PopToTop asks the state owner to unwind to the first screen.
func (p *NavigationProp) PopToTop() {
	p.Dispatch(router.PopToTopAction{})
}

// Replace asks the state owner to swap the top screen for a new one.
func (p *NavigationProp) Replace(name string, params map[string]string) {
	p.Dispatch(router.ReplaceAction{Name: name, Params: params})
}

// Dispatch forwards an arbitrary action, dropped when the owning screen
// is no longer mounted.
func (p *NavigationProp) Dispatch(action router.Action) {
	if p.Screen() == nil {
		return
	}
	p.nav.Dispatch(action)
}

// SetOptions updates the owning screen's options at runtime.
func (p *NavigationProp) SetOptions(opts ScreenOptions) {
	if s := p.Screen(); s != nil {
		s.SetOptions(opts)
	}
}
