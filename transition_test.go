package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransition(t *testing.T) {
	from := NewState().WithLabel("from")
	to := NewState().WithLabel("to")
	trigger := NewEvent()

	tr := NewTransition(from, to, trigger)

	assert.True(t, tr.From.Equal(from))
	assert.True(t, tr.To.Equal(to))
	assert.Equal(t, trigger.ID(), tr.Trigger.ID())
	assert.Nil(t, tr.Guard)
	assert.Nil(t, tr.Action)
}

func TestTransition_FluentBuilders(t *testing.T) {
	base := NewTransition(NewState(), NewState(), NewEvent())

	guarded := base.WithGuard(func() bool { return false })
	acting := base.WithAction(func(*Event) {})

	assert.NotNil(t, guarded.Guard)
	assert.NotNil(t, acting.Action)

	// Value semantics: the builders return copies, the base is untouched.
	assert.Nil(t, base.Guard)
	assert.Nil(t, base.Action)
}
