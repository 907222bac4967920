package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Identifiers(t *testing.T) {
	registry := NewRegistry()

	a := registry.NewEvent()
	b := registry.NewEvent()

	assert.Equal(t, uint64(0), a.ID())
	assert.Equal(t, uint64(1), b.ID())
	assert.Equal(t, "event-0", a.String())
}

func TestEvent_Data(t *testing.T) {
	plain := NewEvent()
	assert.Nil(t, plain.Data())

	type payload struct{ amount int }
	carrying := NewEventWithData(payload{amount: 25})

	got, ok := carrying.Data().(payload)
	assert.True(t, ok)
	assert.Equal(t, 25, got.amount)
}

func TestEvent_StateAndEventSpacesOverlap(t *testing.T) {
	registry := NewRegistry()

	event := registry.NewEvent()
	// State ids 0 and 1 belong to the pseudo-states; the event legitimately
	// shares the numeric value 0 with Initial.
	assert.Equal(t, registry.Initial().ID(), event.ID())
}
