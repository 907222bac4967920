package fsm

import "fmt"

// Event is an opaque trigger token. Its identifier is assigned at
// construction and is the sole basis for trigger matching: a transition
// fires only for the exact Event instance (by identifier) it was registered
// with.
//
// An Event may carry application data for consumption by transition actions;
// see NewEventWithData. Events are owned by the caller, and the machine
// holds no reference to one beyond the Execute call.
type Event struct {
	id   uint64
	data any
}

// ID returns the event identifier.
func (e *Event) ID() uint64 {
	return e.id
}

// Data returns the payload attached at construction, or nil.
func (e *Event) Data() any {
	return e.data
}

func (e *Event) String() string {
	return fmt.Sprintf("event-%d", e.id)
}
