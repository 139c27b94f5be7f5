package router

// Action is a navigation request. The concrete types below are the full
// set the router understands; unknown actions are ignored.
type Action interface {
	isAction()
}

// PushAction puts a new route on top of the stack.
type PushAction struct {
	Name   string
	Params map[string]string
}

// PopAction removes routes from the top. Count values below one pop a
// single route; popping never removes the root.
type PopAction struct {
	Count int
}

// PopToTopAction removes everything above the root route.
type PopToTopAction struct{}

// RemoveAction removes the route with the given key wherever it sits.
// The navigator dispatches this to confirm a gesture dismissal; a key
// that is no longer on the stack is a no-op.
type RemoveAction struct {
	Key string
}

// ReplaceAction swaps the focused route for a fresh one, with a new key,
// without growing the stack.
type ReplaceAction struct {
	Name   string
	Params map[string]string
}

// ResetAction replaces the whole stack, for restoring a persisted
// session. Routes without keys get fresh ones.
type ResetAction struct {
	State State
}

func (PushAction) isAction()     {}
func (PopAction) isAction()      {}
func (PopToTopAction) isAction() {}
func (RemoveAction) isAction()   {}
func (ReplaceAction) isAction()  {}
func (ResetAction) isAction()    {}
