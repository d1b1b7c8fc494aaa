package ecs

// EventType names a world event.
type EventType string

const (
	EventActivated   EventType = "activated"
	EventDeactivated EventType = "deactivated"
	EventInteraction EventType = "interaction"
	EventDialogue    EventType = "dialogue"
	EventReloaded    EventType = "reloaded"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue. Events live until the next frame starts.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
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

// Peek returns pending events of type t without consuming them.
func (q *EventQueue) Peek(t EventType) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
