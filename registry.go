// Package fsm provides a minimal, embeddable finite state machine engine.
// A machine holds a current state, accepts trigger events, and moves between
// states according to a registered transition table with optional guard
// predicates and transition, entry, and exit actions. The engine is purely
// reactive: it owns no I/O, no persistence, and no scheduling loop.
package fsm

import (
	"sync"
	"sync/atomic"
)

// idCounter hands out monotonically increasing identifiers. Identifiers are
// never reused; exhausting the space is a fatal precondition violation
// because reuse would corrupt transition-table lookups.
type idCounter struct {
	n atomic.Uint64
}

func (c *idCounter) next() uint64 {
	n := c.n.Add(1)
	if n == 0 {
		panic("fsm: identifier space exhausted")
	}
	return n - 1
}

// Registry issues unique identifiers to States and Events and owns the two
// pseudo-states shared by every Machine built against it. State and Event
// identifiers are independent numbering spaces, so a State and an Event may
// legitimately carry the same numeric value.
//
// Identifier allocation is safe for concurrent use. Everything else in this
// package is single-threaded by contract.
type Registry struct {
	stateIDs idCounter
	eventIDs idCounter

	initial *State
	final   *State
}

// NewRegistry creates an isolated registry. The Initial and Final
// pseudo-states are constructed first, so they always carry state
// identifiers 0 and 1 respectively.
//
// Most callers use the package-level constructors, which share one
// process-wide registry. A fresh Registry is useful in tests that must not
// leak identifiers into each other.
func NewRegistry() *Registry {
	r := &Registry{}
	r.initial = r.NewState().WithLabel("initial")
	r.final = r.NewState().WithLabel("final")
	return r
}

// NewState constructs a State with the next state identifier.
func (r *Registry) NewState() *State {
	return &State{id: r.stateIDs.next()}
}

// NewEvent constructs an Event with the next event identifier.
func (r *Registry) NewEvent() *Event {
	return &Event{id: r.eventIDs.next()}
}

// NewEventWithData constructs an Event carrying application data for
// consumption by transition actions.
func (r *Registry) NewEventWithData(data any) *Event {
	return &Event{id: r.eventIDs.next(), data: data}
}

// Initial returns the registry's initial pseudo-state.
func (r *Registry) Initial() *State {
	return r.initial
}

// Final returns the registry's final pseudo-state.
func (r *Registry) Final() *State {
	return r.final
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the lazily constructed process-wide registry. All
// Machines that are not given their own registry agree on its Initial and
// Final pseudo-states.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewState constructs a State in the default registry.
func NewState() *State {
	return DefaultRegistry().NewState()
}

// NewEvent constructs an Event in the default registry.
func NewEvent() *Event {
	return DefaultRegistry().NewEvent()
}

// NewEventWithData constructs a data-carrying Event in the default registry.
func NewEventWithData(data any) *Event {
	return DefaultRegistry().NewEventWithData(data)
}

// Initial returns the default registry's initial pseudo-state.
func Initial() *State {
	return DefaultRegistry().Initial()
}

// Final returns the default registry's final pseudo-state.
func Final() *State {
	return DefaultRegistry().Final()
}
