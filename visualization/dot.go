// Package visualization renders fsm transition tables as Graphviz DOT and,
// when the dot binary is available, SVG.
package visualization

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/statetable/fsm"
)

// DOTGenerator generates Graphviz DOT representations of a machine's
// transition table.
type DOTGenerator struct {
	machine *fsm.Machine
	options DOTOptions
}

// DOTOptions configures the DOT generation.
type DOTOptions struct {
	ShowGuards       bool
	ShowActions      bool
	HighlightCurrent bool
	RankDirection    string // "TB", "LR", "BT", "RL"
	NodeShape        string
}

// DefaultDOTOptions returns sensible default options for DOT generation.
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowGuards:       true,
		ShowActions:      true,
		HighlightCurrent: false,
		RankDirection:    "LR",
		NodeShape:        "box",
	}
}

// NewDOTGenerator creates a new DOT generator for the given machine.
func NewDOTGenerator(machine *fsm.Machine, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		machine: machine,
		options: opts,
	}
}

// Generate creates a DOT representation of the machine's transition table.
// States appear in order of first appearance in the table; the Initial and
// Final pseudo-states are styled distinctly.
func (g *DOTGenerator) Generate() string {
	var dot strings.Builder

	dot.WriteString("digraph StateMachine {\n")
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s];\n", g.options.NodeShape))
	dot.WriteString("  edge [fontsize=10];\n\n")

	g.generateStates(&dot)
	g.generateTransitions(&dot)

	dot.WriteString("}\n")

	return dot.String()
}

// generateStates emits one node per distinct state in the transition table.
func (g *DOTGenerator) generateStates(dot *strings.Builder) {
	dot.WriteString("  // States\n")

	for _, state := range g.collectStates() {
		g.generateStateNode(dot, state)
	}
	dot.WriteString("\n")
}

// collectStates returns the distinct states referenced by the table, in
// order of first appearance.
func (g *DOTGenerator) collectStates() []*fsm.State {
	seen := make(map[uint64]bool)
	var states []*fsm.State

	for _, t := range g.machine.Transitions() {
		for _, s := range []*fsm.State{t.From, t.To} {
			if !seen[s.ID()] {
				seen[s.ID()] = true
				states = append(states, s)
			}
		}
	}

	return states
}

func (g *DOTGenerator) generateStateNode(dot *strings.Builder, state *fsm.State) {
	registry := g.machine.Registry()

	shape := g.options.NodeShape
	fillColor := "lightblue"
	label := state.Label()

	switch {
	case state.Equal(registry.Initial()):
		fillColor = "lightgreen"
	case state.Equal(registry.Final()):
		shape = "doublecircle"
		fillColor = "lightcoral"
	}

	attrs := fmt.Sprintf("shape=%s style=\"filled\" fillcolor=%s label=\"%s\"", shape, fillColor, label)
	if g.options.HighlightCurrent && state.Equal(g.machine.State()) {
		attrs += " penwidth=3"
	}

	dot.WriteString(fmt.Sprintf("  \"%s\" [%s];\n", nodeID(state), attrs))
}

// generateTransitions emits one edge per registered transition, in
// registration order.
func (g *DOTGenerator) generateTransitions(dot *strings.Builder) {
	dot.WriteString("  // Transitions\n")

	for _, t := range g.machine.Transitions() {
		label := t.Trigger.String()
		if g.options.ShowGuards && t.Guard != nil {
			label += " [guard]"
		}
		if g.options.ShowActions && t.Action != nil {
			label += " / action"
		}

		dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [label=\"%s\"];\n",
			nodeID(t.From), nodeID(t.To), label))
	}
}

// nodeID returns a stable node identifier. Labels alone could collide, so
// the state identifier is appended.
func nodeID(state *fsm.State) string {
	return fmt.Sprintf("%s_%d", state.Label(), state.ID())
}

// GenerateToFile writes the DOT representation to a file.
func (g *DOTGenerator) GenerateToFile(filename string) error {
	return os.WriteFile(filename, []byte(g.Generate()), 0644)
}

// SVGGenerator generates SVG representations by calling Graphviz.
type SVGGenerator struct {
	dotGenerator *DOTGenerator
}

// NewSVGGenerator creates a new SVG generator.
func NewSVGGenerator(machine *fsm.Machine, options ...DOTOptions) *SVGGenerator {
	return &SVGGenerator{
		dotGenerator: NewDOTGenerator(machine, options...),
	}
}

// Generate creates an SVG representation of the machine by piping the DOT
// output through the local dot binary.
func (g *SVGGenerator) Generate() (string, error) {
	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(g.dotGenerator.Generate())

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute dot command: %w (make sure Graphviz is installed)", err)
	}

	return out.String(), nil
}
