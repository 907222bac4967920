package fsm

import "github.com/google/uuid"

// Machine is a finite state machine instance. It owns a transition table
// bucketed by source-state identifier, a current-state pointer, and an
// optional single-slot debug observer.
//
// A Machine never owns its States, Events, or transition endpoints; it only
// dereferences them, so the caller must keep them alive for as long as the
// machine is in use. All methods run synchronously on the caller's
// goroutine with no internal locking; concurrent access must be serialized
// externally.
type Machine struct {
	id          string
	registry    *Registry
	table       map[uint64][]Transition
	order       []Transition
	current     *State
	initialized bool
	debugFn     DebugFunc
}

// MachineOption configures a Machine at construction.
type MachineOption func(*Machine)

// WithRegistry binds the machine to a specific identity registry instead of
// the process-wide default. The machine's Initial and Final pseudo-states
// are taken from that registry.
func WithRegistry(r *Registry) MachineOption {
	return func(m *Machine) {
		m.registry = r
	}
}

// NewMachine creates an uninitialized machine. The current state defaults
// to the Initial pseudo-state, but Execute rejects triggers until Init is
// called.
func NewMachine(opts ...MachineOption) *Machine {
	m := &Machine{
		id:    uuid.New().String(),
		table: make(map[uint64][]Transition),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = DefaultRegistry()
	}
	m.current = m.registry.Initial()
	return m
}

// ID returns the machine's instance identifier, useful for correlating log
// output when several machines run in one process.
func (m *Machine) ID() string {
	return m.id
}

// Init makes the machine ready to execute triggers, setting the current
// state to Initial. Init is idempotent: calling it on an already
// initialized machine has no effect, even if the machine has since moved
// away from Initial. Use Reset to force the machine back.
func (m *Machine) Init() {
	if !m.initialized {
		m.current = m.registry.Initial()
		m.initialized = true
	}
}

// Reset unconditionally returns the machine to the Initial pseudo-state and
// marks it uninitialized. It may be called at any time; Init must be called
// again before the machine executes triggers.
func (m *Machine) Reset() {
	m.current = m.registry.Initial()
	m.initialized = false
}

// AddTransitions appends transitions to the table, bucketed by source-state
// identifier. Registration order is preserved within a bucket and decides
// ties when several guarded transitions match the same trigger. The method
// may be called repeatedly, before or after Init; transitions accumulate
// and are never removed.
func (m *Machine) AddTransitions(transitions ...Transition) {
	for _, t := range transitions {
		key := t.From.ID()
		m.table[key] = append(m.table[key], t)
		m.order = append(m.order, t)
	}
}

// Transitions returns every registered transition in registration order.
func (m *Machine) Transitions() []Transition {
	out := make([]Transition, len(m.order))
	copy(out, m.order)
	return out
}

// Registry returns the identity registry the machine was built against.
func (m *Machine) Registry() *Registry {
	return m.registry
}

// SetDebugFunc installs the debug observer, called with (from, to, trigger)
// after every transition firing. At most one observer is active: a later
// call replaces the previous one, and nil clears the slot.
func (m *Machine) SetDebugFunc(fn DebugFunc) {
	m.debugFn = fn
}

// Execute evaluates the trigger against the transitions registered for the
// current state.
//
// Transitions are scanned in registration order. The first whose trigger
// identifier matches flips the result to Success even if its guard later
// rejects; a rejected guard continues the scan. The first trigger match
// with a passing (or absent) guard fires, in this order: transition action,
// from-state exit hook, current-state update, to-state enter hook, debug
// observer. At most one transition fires per call.
//
// Execute therefore returns Success whenever a trigger match existed, even
// when every matching guard rejected and no state change occurred. The
// tie-break among several passing guards is deterministic first-registered
// wins, not a random choice.
func (m *Machine) Execute(trigger *Event) Status {
	if !m.initialized {
		return NotInitialized
	}

	bucket, ok := m.table[m.current.ID()]
	if !ok {
		return NoMatchingTrigger
	}

	status := NoMatchingTrigger
	for _, t := range bucket {
		if t.Trigger.ID() != trigger.ID() {
			continue
		}
		status = Success

		if t.Guard != nil && !t.Guard() {
			continue
		}

		if t.Action != nil {
			t.Action(trigger)
		}
		t.From.InvokeExit()
		m.current = t.To
		t.To.InvokeEnter()

		if m.debugFn != nil {
			m.debugFn(t.From, t.To, trigger)
		}
		break
	}

	return status
}

// State returns the current state.
func (m *Machine) State() *State {
	return m.current
}

// IsInitial reports whether the current state is the Initial pseudo-state.
func (m *Machine) IsInitial() bool {
	return m.current.ID() == m.registry.Initial().ID()
}

// IsFinal reports whether the current state is the Final pseudo-state.
func (m *Machine) IsFinal() bool {
	return m.current.ID() == m.registry.Final().ID()
}
