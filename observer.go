package fsm

import "log/slog"

// DebugFunc observes transition firings. It receives the source state, the
// target state, and the trigger of each firing, after the target's enter
// hook has run. It is never called when no transition fires.
type DebugFunc func(from, to *State, trigger *Event)

// LogTransitions returns a DebugFunc that records every firing on the given
// logger at debug level.
func LogTransitions(logger *slog.Logger) DebugFunc {
	return func(from, to *State, trigger *Event) {
		logger.Debug("transition fired",
			"from", from.Label(),
			"to", to.Label(),
			"trigger", trigger.String(),
		)
	}
}
