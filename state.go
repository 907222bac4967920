package fsm

import "fmt"

// StateFunc is the prototype for state entry and exit hooks. Hooks take no
// arguments, return nothing, and exist purely for their side effects.
type StateFunc func()

// State is a named location in a machine. Its identifier is assigned at
// construction and never changes; the entry and exit hooks may be replaced
// at any time.
//
// States are owned by the caller and must outlive every Machine that
// references them. Compare states with Equal rather than pointer identity:
// the identifier is the identity.
type State struct {
	id      uint64
	label   string
	enterFn StateFunc
	exitFn  StateFunc
}

// ID returns the state identifier.
func (s *State) ID() uint64 {
	return s.id
}

// WithLabel attaches a human-readable label used in logs, String, and DOT
// output. It returns the state for chaining.
func (s *State) WithLabel(label string) *State {
	s.label = label
	return s
}

// Label returns the state's label, or a generated "state-<id>" placeholder
// when none was set.
func (s *State) Label() string {
	if s.label == "" {
		return fmt.Sprintf("state-%d", s.id)
	}
	return s.label
}

func (s *State) String() string {
	return s.Label()
}

// SetEnterFunc replaces the entry hook. Passing nil clears it.
func (s *State) SetEnterFunc(fn StateFunc) {
	s.enterFn = fn
}

// SetExitFunc replaces the exit hook. Passing nil clears it.
func (s *State) SetExitFunc(fn StateFunc) {
	s.exitFn = fn
}

// InvokeEnter calls the entry hook if one is registered. Hooks are trusted
// caller code; a panic inside one propagates to the caller.
func (s *State) InvokeEnter() {
	if s.enterFn != nil {
		s.enterFn()
	}
}

// InvokeExit calls the exit hook if one is registered.
func (s *State) InvokeExit() {
	if s.exitFn != nil {
		s.exitFn()
	}
}

// Equal reports whether both handles refer to the same state identity.
func (s *State) Equal(other *State) bool {
	return other != nil && s.id == other.id
}
