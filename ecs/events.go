package ecs

// Event is something that happened to an entity during an update. Kind is
// the generic event type ("animEnd"); Name optionally narrows it to a
// specific animation or trigger.
type Event struct {
	Entity Entity
	Kind   string
	Name   string
	Data   any
}

// Qualified returns "kind.name", or just kind when the event has no name.
func (e Event) Qualified() string {
	if e.Name == "" {
		return e.Kind
	}
	return e.Kind + "." + e.Name
}

// Matches reports whether a listener subscribed to key should see e.
func (e Event) Matches(key string) bool {
	return key == e.Kind || (e.Name != "" && key == e.Qualified())
}

// Listener handles an event as soon as it is pushed.
type Listener func(Event)

type subscription struct {
	key string
	fn  Listener
}

// EventQueue is a FIFO of the current update's events plus synchronous
// listeners.
type EventQueue struct {
	items     []Event
	listeners []subscription
}

// On registers fn for events whose kind or qualified name equals key. An
// event carrying a name fires both a "kind" and a "kind.name" listener.
func (q *EventQueue) On(key string, fn Listener) {
	if q == nil || key == "" || fn == nil {
		return
	}
	q.listeners = append(q.listeners, subscription{key: key, fn: fn})
}

// Push records evt and dispatches it to matching listeners.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
	// listeners added by a listener see the next event, not this one
	subs := q.listeners
	for _, s := range subs {
		if evt.Matches(s.key) {
			s.fn(evt)
		}
	}
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of undrained events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
