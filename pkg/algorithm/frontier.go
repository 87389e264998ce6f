package algorithm

import "github.com/fyerfyer/podem-atpg/pkg/circuit"

// buildDFrontier collects every gate whose output is still X while at least
// one input carries D or D'. These are the places the fault effect can move
// forward. The slice keeps topological order so objective selection is
// deterministic.
func (g *Generator) buildDFrontier() []int {
	var frontier []int
	for gi := range g.Circuit.Gates {
		gate := &g.Circuit.Gates[gi]
		if g.values[gate.Output] != circuit.X {
			continue
		}
		for _, in := range gate.Inputs {
			if g.values[in].IsFaulty() {
				frontier = append(frontier, gi)
				break
			}
		}
	}
	return frontier
}

// xPathExists checks whether any D-frontier gate still has a path of
// X-valued nets to a primary output. Without one the fault effect is
// blocked everywhere and the current assignment can be abandoned early.
func (g *Generator) xPathExists() bool {
	c := g.Circuit
	seen := make([]bool, c.NetCount())
	stack := make([]circuit.NetID, 0, len(g.frontier))
	for _, gi := range g.frontier {
		stack = append(stack, c.Gates[gi].Output)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		if g.values[n] != circuit.X {
			continue
		}
		if c.IsOutput(n) {
			return true
		}
		for _, gi := range c.Consumers[n] {
			stack = append(stack, c.Gates[gi].Output)
		}
	}
	return false
}
