package router

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Router owns the navigation state for one stack and is the only thing
// that mutates it. Actions go in through Dispatch; every resulting state
// goes out through the OnChange subscribers, synchronously and in
// registration order. The navigator renders whatever state it is handed,
// so the router stays free of rendering concerns.
type Router struct {
	state      State
	keyCounter int

	nextSubID   int
	subscribers []subscriber
	notifying   bool
}

type subscriber struct {
	id int
	fn func(State)
}

// New creates a router whose stack starts with one route per name, the
// last name on top. At least one name is required for a usable stack;
// New() with no names starts empty and the first Push establishes the
// root.
func New(names ...string) *Router {
	r := &Router{}
	for _, name := range names {
		r.state.Routes = append(r.state.Routes, Route{Key: r.nextKey(name), Name: name})
	}
	r.state.Index = len(r.state.Routes) - 1
	return r
}

// State returns a copy of the current navigation state. The copy's route
// slice is detached, so callers can hold it across dispatches.
func (r *Router) State() State {
	return r.state.clone()
}

// OnChange subscribes to state changes. The returned disposer removes the
// subscription; calling it more than once is safe.
func (r *Router) OnChange(fn func(State)) func() {
	r.nextSubID++
	id := r.nextSubID
	r.subscribers = append(r.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range r.subscribers {
			if sub.id == id {
				r.subscribers = append(r.subscribers[:i:i], r.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Dispatch applies one action to the stack. Actions that cannot apply
// (pop on a lone root, removing an unknown key) are silent no-ops and
// notify nobody. Dispatching from inside an OnChange handler is not
// supported; the nested action is dropped.
func (r *Router) Dispatch(action Action) {
	if r.notifying {
		return
	}

	next, changed := r.reduce(action)
	if !changed {
		return
	}

	r.state = next
	r.notify()
}

func (r *Router) reduce(action Action) (State, bool) {
	switch a := action.(type) {
	case PushAction:
		next := r.state.clone()
		next.Routes = append(next.Routes, Route{
			Key:    r.nextKey(a.Name),
			Name:   a.Name,
			Params: a.Params,
		})
		next.Index = len(next.Routes) - 1
		return next, true

	case PopAction:
		count := a.Count
		if count <= 0 {
			count = 1
		}
		keep := len(r.state.Routes) - count
		if keep < 1 {
			keep = 1
		}
		if keep >= len(r.state.Routes) {
			return State{}, false
		}
		next := r.state.clone()
		next.Routes = next.Routes[:keep]
		next.Index = keep - 1
		return next, true

	case PopToTopAction:
		if len(r.state.Routes) <= 1 {
			return State{}, false
		}
		next := r.state.clone()
		next.Routes = next.Routes[:1]
		next.Index = 0
		return next, true

	case RemoveAction:
		idx := -1
		for i, route := range r.state.Routes {
			if route.Key == a.Key {
				idx = i
				break
			}
		}
		if idx < 0 || len(r.state.Routes) == 1 {
			return State{}, false
		}
		next := r.state.clone()
		next.Routes = append(next.Routes[:idx:idx], next.Routes[idx+1:]...)
		next.Index = len(next.Routes) - 1
		return next, true

	case ReplaceAction:
		if len(r.state.Routes) == 0 {
			return r.reduce(PushAction{Name: a.Name, Params: a.Params})
		}
		next := r.state.clone()
		next.Routes[len(next.Routes)-1] = Route{
			Key:    r.nextKey(a.Name),
			Name:   a.Name,
			Params: a.Params,
		}
		next.Index = len(next.Routes) - 1
		return next, true

	case ResetAction:
		if len(a.State.Routes) == 0 {
			return State{}, false
		}
		next := a.State.clone()
		if next.Index < 0 || next.Index >= len(next.Routes) {
			next.Index = len(next.Routes) - 1
		}
		r.adoptKeys(next)
		return next, true

	default:
		return State{}, false
	}
}

func (r *Router) notify() {
	r.notifying = true
	defer func() { r.notifying = false }()

	// Snapshot so a handler may unsubscribe during delivery.
	subs := make([]subscriber, len(r.subscribers))
	copy(subs, r.subscribers)
	for _, sub := range subs {
		sub.fn(r.state.clone())
	}
}

// Snapshot serializes the current state for persistence.
func (r *Router) Snapshot() ([]byte, error) {
	data, err := json.Marshal(r.state)
	if err != nil {
		return nil, fmt.Errorf("router: snapshot: %w", err)
	}
	return data, nil
}

// Restore replaces the stack with a previously snapshotted state and
// notifies subscribers. Restored keys are honored as-is; the key counter
// moves past them so later pushes stay unique.
func (r *Router) Restore(data []byte) error {
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("router: restore: %w", err)
	}
	if len(state.Routes) == 0 {
		return fmt.Errorf("router: restore: snapshot has no routes")
	}
	if state.Index < 0 || state.Index >= len(state.Routes) {
		state.Index = len(state.Routes) - 1
	}

	r.adoptKeys(state)
	r.state = state
	r.notify()
	return nil
}

// nextKey mints a unique route key from the route name.
func (r *Router) nextKey(name string) string {
	r.keyCounter++
	return fmt.Sprintf("%s-%d", name, r.keyCounter)
}

// adoptKeys advances the key counter past every numeric suffix already
// in use, then fills in any missing keys, so minted keys never collide
// with adopted ones regardless of their order in the slice.
func (r *Router) adoptKeys(state State) {
	for _, route := range state.Routes {
		if pos := strings.LastIndex(route.Key, "-"); pos >= 0 {
			if n, err := strconv.Atoi(route.Key[pos+1:]); err == nil && n > r.keyCounter {
				r.keyCounter = n
			}
		}
	}
	for i := range state.Routes {
		if state.Routes[i].Key == "" {
			state.Routes[i].Key = r.nextKey(state.Routes[i].Name)
		}
	}
}
