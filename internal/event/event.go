// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Data interface{} // одна из структур из types.go или nil
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine. Listeners run inside the simulation tick.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher - создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for every given event type.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Dispatch - отправка события всем подписчикам
func (d *Dispatcher) Dispatch(eventType EventType, data interface{}) {
	e := Event{Type: eventType, Data: data}
	for _, listener := range d.listeners[eventType] {
		listener.OnEvent(e)
	}
}

// Reset drops every subscription.
func (d *Dispatcher) Reset() {
	d.listeners = make(map[EventType][]Listener)
}
