package fsm

// GuardFunc is a side-effect-free predicate gating whether a matched
// transition may fire. A nil guard always passes.
type GuardFunc func() bool

// ActionFunc is a side-effecting procedure executed when a transition fires.
// It receives the triggering Event. A nil action is a no-op.
type ActionFunc func(trigger *Event)

// Transition is the unit of machine configuration: an immutable record
// connecting a source state to a target state on a trigger, optionally
// gated by a guard and accompanied by an action.
type Transition struct {
	From    *State
	To      *State
	Trigger *Event
	Guard   GuardFunc
	Action  ActionFunc
}

// NewTransition creates a transition with no guard and no action.
func NewTransition(from, to *State, trigger *Event) Transition {
	return Transition{
		From:    from,
		To:      to,
		Trigger: trigger,
	}
}

// WithGuard returns a copy of the transition with the guard set.
func (t Transition) WithGuard(guard GuardFunc) Transition {
	t.Guard = guard
	return t
}

// WithAction returns a copy of the transition with the action set.
func (t Transition) WithAction(action ActionFunc) Transition {
	t.Action = action
	return t
}
