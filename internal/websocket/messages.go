package websocket

import (
	"encoding/json"
	"time"
)

// MessageType identifies the type of WebSocket message.
type MessageType string

const (
	// Server -> client notifications.
	TypeEventsChanged MessageType = "events.changed"
	TypeDayRollover   MessageType = "day.rollover"

	// Client -> server commands and their responses.
	TypePing MessageType = "ping"
	TypePong MessageType = "pong"
)

// Message is the WebSocket message envelope.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   any         `json:"payload,omitempty"`
}

// NewMessage creates a message stamped with the current time.
func NewMessage(msgType MessageType, payload any) Message {
	return Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// JSON serializes the message.
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// EventsChangedPayload is the payload for events.changed notifications.
type EventsChangedPayload struct {
	Count int `json:"count"`
}
