package simulator

import (
	"github.com/pkg/errors"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// ErrInvalidVector covers every malformed input vector: wrong length,
// illegal characters, or values a particular simulator does not accept.
var ErrInvalidVector = errors.New("invalid input vector")

// Assignment maps every net of a circuit to a logic value, indexed by
// NetID. The zero value of a slot is X (unassigned). Evaluations return a
// fresh Assignment; callers own it.
type Assignment []circuit.Value

// Value returns the value of net n.
func (a Assignment) Value(n circuit.NetID) circuit.Value { return a[n] }

// Project renders the values of the given nets in order.
func (a Assignment) Project(nets []circuit.NetID) []circuit.Value {
	out := make([]circuit.Value, len(nets))
	for i, n := range nets {
		out[i] = a[n]
	}
	return out
}

// noFault is the site override used for plain evaluations.
var noFault = circuit.Fault{Net: -1}

// Evaluate computes the value of every net from the given primary-input
// values, walking the gates once in topological order. The input slice
// follows the circuit's declared input order and may contain any of the
// five logic values. The circuit is not modified.
func Evaluate(c *circuit.Circuit, inputs []circuit.Value) (Assignment, error) {
	return EvaluateWithFault(c, inputs, noFault)
}

// EvaluateWithFault evaluates the circuit while overriding the fault site:
// whenever the site's fault-free value opposes the stuck value, the site is
// rewritten to D (stuck-at-0) or D' (stuck-at-1) before it feeds any
// consumer. This is the implication primitive of the PODEM search.
func EvaluateWithFault(c *circuit.Circuit, inputs []circuit.Value, fault circuit.Fault) (Assignment, error) {
	if len(inputs) != len(c.Inputs) {
		return nil, errors.Wrapf(ErrInvalidVector,
			"vector length %d does not match the %d primary inputs", len(inputs), len(c.Inputs))
	}

	values := make(Assignment, c.NetCount())
	set := func(n circuit.NetID, v circuit.Value) {
		if n == fault.Net {
			switch {
			case v == circuit.One && fault.StuckAt == circuit.Zero:
				v = circuit.D
			case v == circuit.Zero && fault.StuckAt == circuit.One:
				v = circuit.Dbar
			}
		}
		values[n] = v
	}

	for i, n := range c.Inputs {
		set(n, inputs[i])
	}
	in := make([]circuit.Value, 2)
	for gi := range c.Gates {
		g := &c.Gates[gi]
		in = in[:len(g.Inputs)]
		for i, n := range g.Inputs {
			in[i] = values[n]
		}
		set(g.Output, g.Evaluate(in))
	}
	return values, nil
}
