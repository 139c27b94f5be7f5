// Package router owns the navigation state that a sfoglia Navigator
// renders. It is deliberately small: a stack of routes, a handful of
// actions, and synchronous change notification. The navigator subscribes
// to state changes and animates whatever difference it sees, so all
// navigation logic stays in one inspectable place.
//
// # Basic Usage
//
//	// Start with a root screen
//	r := router.New("home")
//
//	// React to every state change (the navigator does this internally
//	// through Navigator.Attach)
//	dispose := r.OnChange(func(s router.State) {
//	    top, _ := s.Top()
//	    fmt.Println("focused:", top.Name)
//	})
//	defer dispose()
//
//	// Navigate
//	r.Dispatch(router.PushAction{Name: "detail", Params: map[string]string{"id": "42"}})
//	r.Dispatch(router.PopAction{Count: 1})
//
// # Route Keys
//
// Every push mints a unique key ("detail-2"), so the same screen name can
// appear on the stack several times and still be tracked individually.
// Keys are the unit of identity everywhere in sfoglia: screens mount and
// unmount by key, and gesture dismissals are confirmed by key
// (RemoveAction), which makes a late confirmation for an already-removed
// screen a harmless no-op.
//
// # Persistence
//
// Snapshot and Restore round-trip the state as JSON. Pair them with the
// persist package to resume a session where the user left it:
//
//	if data, found, _ := store.LoadState("main"); found {
//	    _ = r.Restore(data)
//	}
package router
