package visualization

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/statetable/fsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMachine(t *testing.T) *fsm.Machine {
	t.Helper()

	registry := fsm.NewRegistry()
	eventA := registry.NewEvent()
	eventB := registry.NewEvent()
	stateA := registry.NewState().WithLabel("A")

	machine := fsm.NewMachine(fsm.WithRegistry(registry))
	machine.AddTransitions(
		fsm.NewTransition(registry.Initial(), stateA, eventA).
			WithAction(func(*fsm.Event) {}),
		fsm.NewTransition(stateA, registry.Final(), eventB).
			WithGuard(func() bool { return true }),
	)
	machine.Init()

	return machine
}

func TestDOTGenerator_Generate(t *testing.T) {
	machine := buildMachine(t)

	dot := NewDOTGenerator(machine).Generate()

	assert.Contains(t, dot, "digraph StateMachine {")
	assert.Contains(t, dot, "rankdir=LR;")
	assert.Contains(t, dot, `"initial_0"`)
	assert.Contains(t, dot, `"A_2"`)
	assert.Contains(t, dot, `"final_1"`)
	assert.Contains(t, dot, `"initial_0" -> "A_2"`)
	assert.Contains(t, dot, `"A_2" -> "final_1"`)
	assert.Contains(t, dot, "fillcolor=lightgreen", "initial state styling")
	assert.Contains(t, dot, "shape=doublecircle", "final state styling")
}

func TestDOTGenerator_EdgeAnnotations(t *testing.T) {
	machine := buildMachine(t)

	dot := NewDOTGenerator(machine).Generate()
	assert.Contains(t, dot, "event-0 / action")
	assert.Contains(t, dot, "event-1 [guard]")

	bare := NewDOTGenerator(machine, DOTOptions{
		RankDirection: "TB",
		NodeShape:     "box",
	}).Generate()
	assert.NotContains(t, bare, "[guard]")
	assert.NotContains(t, bare, "/ action")
	assert.Contains(t, bare, "rankdir=TB;")
}

func TestDOTGenerator_HighlightCurrent(t *testing.T) {
	machine := buildMachine(t)

	opts := DefaultDOTOptions()
	opts.HighlightCurrent = true

	dot := NewDOTGenerator(machine, opts).Generate()
	assert.Contains(t, dot, "penwidth=3")
}

func TestDOTGenerator_GenerateToFile(t *testing.T) {
	machine := buildMachine(t)

	path := filepath.Join(t.TempDir(), "machine.dot")
	require.NoError(t, NewDOTGenerator(machine).GenerateToFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "digraph StateMachine {")
}
