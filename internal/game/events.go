package game

type EventType int

const (
	EventFoodEaten EventType = iota
	EventGameOver
)

type Event struct {
	Type  EventType
	Head  Position
	Score int
	Cause Cause // set on EventGameOver
}

type EventHandler func(Event)

// EventBus fans events out to handlers synchronously, in subscription order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
