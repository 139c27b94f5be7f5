package sfoglia

// EventKind identifies a navigator lifecycle event.
type EventKind int

const (
	// EventTransitionStart fires when a screen begins animating open or
	// closed, before the first animation step.
	EventTransitionStart EventKind = iota

	// EventTransitionEnd fires when the open or close animation settles.
	// With animation disabled, start and end fire in the same update.
	EventTransitionEnd

	// EventGestureStart fires when a dismiss pan captures and starts
	// driving a screen's progress.
	EventGestureStart

	// EventGestureEnd fires when a released pan commits the dismissal.
	EventGestureEnd

	// EventGestureCancel fires when a pan ends without dismissing: released
	// short of the threshold, or force-cancelled by a navigation dispatch.
	EventGestureCancel
)

func (k EventKind) String() string {
	switch k {
	case EventTransitionStart:
		return "transitionStart"
	case EventTransitionEnd:
		return "transitionEnd"
	case EventGestureStart:
		return "gestureStart"
	case EventGestureEnd:
		return "gestureEnd"
	case EventGestureCancel:
		return "gestureCancel"
	default:
		return "unknown"
	}
}

// StackEvent is the payload delivered to event subscribers.
type StackEvent struct {
	Kind EventKind

	// Key is the route key of the screen the event concerns.
	Key string

	// Closing is true for transition events on a screen headed toward
	// removal, false for one opening.
	Closing bool
}

// EventHandler receives stack events. Handlers run synchronously on the
// navigator's goroutine; do not block.
type EventHandler func(StackEvent)

// Disposer removes a subscription. Safe to call more than once.
type Disposer func()

type eventSubscription struct {
	id      int
	handler EventHandler
}

// eventRegistry fans stack events out to subscribers, synchronously and
// in registration order.
type eventRegistry struct {
	nextID        int
	subscriptions map[EventKind][]eventSubscription
}

func (r *eventRegistry) subscribe(kind EventKind, handler EventHandler) Disposer {
	if r.subscriptions == nil {
		r.subscriptions = make(map[EventKind][]eventSubscription)
	}
	r.nextID++
	id := r.nextID
	r.subscriptions[kind] = append(r.subscriptions[kind], eventSubscription{id: id, handler: handler})

	return func() {
		subs := r.subscriptions[kind]
		for i, sub := range subs {
			if sub.id == id {
				r.subscriptions[kind] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

func (r *eventRegistry) emit(event StackEvent) {
	// Snapshot so handlers may subscribe or dispose during delivery
	// without affecting this emission.
	subs := r.subscriptions[event.Kind]
	snapshot := make([]eventSubscription, len(subs))
	copy(snapshot, subs)
	for _, sub := range snapshot {
		sub.handler(event)
	}
}
