package events

import "time"

// Event is anything the bot publishes onto the audit bus. Concrete events
// carry typed fields; the interface is what crosses process boundaries.
type Event interface {
	// EventType is the stable code used for routing, e.g. TypeQueryPerformed.
	EventType() string

	// Payload is the wire form of the event's fields.
	Payload() map[string]interface{}

	// Timestamp is when the event happened, not when it was delivered.
	Timestamp() time.Time
}

// BaseEvent is the untyped form an event takes after crossing a broker,
// where the concrete Go type is no longer known.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
