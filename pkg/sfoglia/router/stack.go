package router

// Route describes one screen on the stack. The key is unique for the
// lifetime of the screen: pushing the same name twice yields two routes
// with distinct keys, and the navigator matches screens to routes by key
// alone.
type Route struct {
	Key    string            `json:"key"`
	Name   string            `json:"name"`
	Params map[string]string `json:"params,omitempty"`
}

// Param returns a route parameter, or the empty string when unset.
func (r Route) Param(name string) string {
	return r.Params[name]
}

// State is an immutable snapshot of a navigation stack: the ordered
// routes (bottom first) and the index of the focused route. The focused
// route is normally the last one.
type State struct {
	Routes []Route `json:"routes"`
	Index  int     `json:"index"`
}

// Top returns the focused route. ok is false on an empty state.
func (s State) Top() (Route, bool) {
	if len(s.Routes) == 0 {
		return Route{}, false
	}
	idx := s.Index
	if idx < 0 || idx >= len(s.Routes) {
		idx = len(s.Routes) - 1
	}
	return s.Routes[idx], true
}

// Contains reports whether a route with the given key is on the stack.
func (s State) Contains(key string) bool {
	for _, route := range s.Routes {
		if route.Key == key {
			return true
		}
	}
	return false
}

// Len returns the number of routes on the stack.
func (s State) Len() int {
	return len(s.Routes)
}

// clone detaches the route slice so reducers can mutate freely.
func (s State) clone() State {
	routes := make([]Route, len(s.Routes))
	copy(routes, s.Routes)
	return State{Routes: routes, Index: s.Index}
}
