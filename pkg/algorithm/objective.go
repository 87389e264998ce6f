package algorithm

import "github.com/fyerfyer/podem-atpg/pkg/circuit"

// objective produces the next (net, value) goal of the search. While the
// fault site is unassigned the goal is to excite it with the opposite of
// the stuck value; afterwards the goal is to drive an X input of a
// D-frontier gate to the gate's non-controlling value so the fault effect
// passes through.
func (g *Generator) objective() (circuit.NetID, circuit.Value) {
	if g.values[g.target.Net] == circuit.X {
		return g.target.Net, circuit.Not(g.target.StuckAt)
	}

	gate := &g.Circuit.Gates[g.frontier[0]]
	net := g.firstUnsetInput(gate)
	// BUF and INV are never on the D-frontier: with a faulty input their
	// output is already D or D'.
	nc, _ := gate.Kind.NonControlValue()
	return net, nc
}

// backtrace walks from an objective back to a primary input, flipping the
// desired value through every inverting gate and descending into the first
// X input at each step. The returned net is always a primary input.
func (g *Generator) backtrace(net circuit.NetID, val circuit.Value) (circuit.NetID, circuit.Value) {
	for g.Circuit.Driver[net] >= 0 {
		gate := &g.Circuit.Gates[g.Circuit.Driver[net]]
		if gate.Kind.Inverts() {
			val = circuit.Not(val)
		}
		net = g.firstUnsetInput(gate)
	}
	return net, val
}

// firstUnsetInput returns the first gate input currently at X, in gate
// input order. Callers only reach gates with an X output, which guarantees
// such an input exists.
func (g *Generator) firstUnsetInput(gate *circuit.Gate) circuit.NetID {
	for _, in := range gate.Inputs {
		if g.values[in] == circuit.X {
			return in
		}
	}
	return gate.Inputs[0]
}
