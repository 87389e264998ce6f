package simulator

import (
	"github.com/pkg/errors"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// FaultSimulation determines which single stuck-at faults a test vector
// detects, using deductive fault-list propagation: the fault-free value of
// every net is computed first, then a fault list is pushed forward through
// every gate in topological order. The detected set is the union of the
// lists on the primary outputs.
type FaultSimulation struct {
	Circuit *circuit.Circuit
}

// NewFaultSimulation creates a deductive fault simulator for c.
func NewFaultSimulation(c *circuit.Circuit) *FaultSimulation {
	return &FaultSimulation{Circuit: c}
}

// DetectFaults returns the faults detected by the given binary vector
// string. Vectors containing X are rejected: deductive propagation needs a
// fully defined fault-free value on every net.
func (fs *FaultSimulation) DetectFaults(vector string) (*circuit.FaultSet, error) {
	inputs, err := BitstringToValues(vector)
	if err != nil {
		return nil, err
	}
	return fs.DetectFaultsValues(inputs)
}

// DetectFaultsValues is DetectFaults over already-parsed input values.
func (fs *FaultSimulation) DetectFaultsValues(inputs []circuit.Value) (*circuit.FaultSet, error) {
	c := fs.Circuit
	if len(inputs) != len(c.Inputs) {
		return nil, errors.Wrapf(ErrInvalidVector,
			"vector length %d does not match the %d primary inputs", len(inputs), len(c.Inputs))
	}
	for i, v := range inputs {
		if !v.IsBinary() {
			return nil, errors.Wrapf(ErrInvalidVector,
				"input %s is %s; fault simulation needs a fully specified binary vector",
				c.NetName(c.Inputs[i]), v)
		}
	}
	values, err := Evaluate(c, inputs)
	if err != nil {
		return nil, err
	}

	// Fault list per net. Primary input n starts with its own excited
	// fault: n stuck at the opposite of its applied value.
	lists := make([]*circuit.FaultSet, c.NetCount())
	for _, n := range c.Inputs {
		l := circuit.NewFaultSet(c)
		l.Add(circuit.Fault{Net: n, StuckAt: circuit.Not(values[n])})
		lists[n] = l
	}

	for gi := range c.Gates {
		g := &c.Gates[gi]
		lists[g.Output] = fs.propagate(g, values, lists)
	}

	detected := circuit.NewFaultSet(c)
	for _, out := range c.Outputs {
		detected.UnionWith(lists[out])
	}
	return detected, nil
}

// propagate computes the fault list of a gate output from its input lists.
//
// With C the set of inputs at the controlling value c:
//
//	C empty:  union of all input lists
//	C not empty: (intersection over C) minus (union over the others)
//
// plus, always, the output's own excited fault.
func (fs *FaultSimulation) propagate(g *circuit.Gate, values Assignment, lists []*circuit.FaultSet) *circuit.FaultSet {
	c := fs.Circuit

	var out *circuit.FaultSet
	control, hasControl := g.Kind.ControlValue()

	var controlling, others []*circuit.FaultSet
	if hasControl {
		for _, in := range g.Inputs {
			if values[in] == control {
				controlling = append(controlling, lists[in])
			} else {
				others = append(others, lists[in])
			}
		}
	} else {
		// BUF and INV pass their single input list through.
		others = append(others, lists[g.Inputs[0]])
	}

	if len(controlling) == 0 {
		out = circuit.NewFaultSet(c)
		for _, l := range others {
			out.UnionWith(l)
		}
	} else {
		out = controlling[0].Clone()
		for _, l := range controlling[1:] {
			out.IntersectWith(l)
		}
		for _, l := range others {
			out.DifferenceWith(l)
		}
	}

	out.Add(circuit.Fault{Net: g.Output, StuckAt: circuit.Not(values[g.Output])})
	return out
}
