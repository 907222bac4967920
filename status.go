package fsm

// Status reports the outcome of Machine.Execute. The set is closed; no
// other values are returned.
type Status int

const (
	// Success means the trigger matched at least one registered transition
	// from the current state, whether or not a guard let one fire.
	Success Status = iota

	// NoMatchingTrigger means no transition from the current state is
	// registered for the trigger. The machine is unchanged.
	NoMatchingTrigger

	// NotInitialized means Execute was called before Init. The machine is
	// unchanged; call Init and retry.
	NotInitialized
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case NoMatchingTrigger:
		return "no matching trigger"
	case NotInitialized:
		return "not initialized"
	default:
		return "unknown"
	}
}
