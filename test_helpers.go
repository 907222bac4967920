package fsm

import "sync"

// Firing is one recorded debug notification.
type Firing struct {
	From    *State
	To      *State
	Trigger *Event
}

// TraceRecorder captures debug notifications so tests can assert on the
// exact (from, to, trigger) triples a machine reported.
type TraceRecorder struct {
	mu      sync.Mutex
	firings []Firing
}

// NewTraceRecorder creates an empty recorder.
func NewTraceRecorder() *TraceRecorder {
	return &TraceRecorder{}
}

// Fn returns a DebugFunc that appends every firing to the recorder.
func (r *TraceRecorder) Fn() DebugFunc {
	return func(from, to *State, trigger *Event) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.firings = append(r.firings, Firing{From: from, To: to, Trigger: trigger})
	}
}

// Firings returns a copy of the recorded notifications in order.
func (r *TraceRecorder) Firings() []Firing {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Firing, len(r.firings))
	copy(out, r.firings)
	return out
}

// Count returns the number of recorded firings.
func (r *TraceRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.firings)
}

// Last returns the most recent firing, if any.
func (r *TraceRecorder) Last() (Firing, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.firings) == 0 {
		return Firing{}, false
	}
	return r.firings[len(r.firings)-1], true
}

// Reset discards all recorded firings.
func (r *TraceRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.firings = nil
}
