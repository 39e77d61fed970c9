package websocket

import "log"

// Broadcaster builds and broadcasts notification messages.
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a broadcaster over the given hub.
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// EventsChanged tells connected views that the event collection mutated and
// they should re-render. count is the collection size after the mutation.
func (b *Broadcaster) EventsChanged(count int) {
	b.broadcast(NewMessage(TypeEventsChanged, EventsChangedPayload{Count: count}))
}

// DayRollover tells connected views that the calendar day advanced, so
// today/past cell classification is stale.
func (b *Broadcaster) DayRollover() {
	b.broadcast(NewMessage(TypeDayRollover, nil))
}

func (b *Broadcaster) broadcast(msg Message) {
	data, err := msg.JSON()
	if err != nil {
		log.Printf("Failed to encode %s message: %v", msg.Type, err)
		return
	}
	b.hub.Broadcast(data)
}
