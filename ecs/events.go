package ecs

// EventType identifies what happened.
type EventType string

const (
	EventLanding      EventType = "landing"
	EventPhase        EventType = "phase"
	EventJump         EventType = "jump"
	EventBuff         EventType = "buff"
	EventWindEnter    EventType = "wind_enter"
	EventWindExit     EventType = "wind_exit"
	EventWin          EventType = "win"
	EventConfigReload EventType = "config_reload"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
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

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
