package simulator

import (
	"github.com/pkg/errors"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// Simulation performs fault-free evaluation of a circuit. It accepts 0, 1
// and X input values and rejects the composite values D and D'.
type Simulation struct {
	Circuit *circuit.Circuit
}

// NewSimulation creates a fault-free simulator for c.
func NewSimulation(c *circuit.Circuit) *Simulation {
	return &Simulation{Circuit: c}
}

// Run evaluates the circuit for the given input values and returns the
// full net assignment.
func (s *Simulation) Run(inputs []circuit.Value) (Assignment, error) {
	if len(inputs) != len(s.Circuit.Inputs) {
		return nil, errors.Wrapf(ErrInvalidVector,
			"vector length %d does not match the %d primary inputs", len(inputs), len(s.Circuit.Inputs))
	}
	for i, v := range inputs {
		if v.IsFaulty() {
			return nil, errors.Wrapf(ErrInvalidVector,
				"input %s carries composite value %s; fault-free simulation takes 0, 1 or X",
				s.Circuit.NetName(s.Circuit.Inputs[i]), v)
		}
	}
	return Evaluate(s.Circuit, inputs)
}

// SimulateVector evaluates an input vector string like "1110101" and
// returns the primary-output values as a string in declared output order.
func (s *Simulation) SimulateVector(vector string) (string, error) {
	inputs, err := BitstringToValues(vector)
	if err != nil {
		return "", err
	}
	values, err := s.Run(inputs)
	if err != nil {
		return "", err
	}
	return ValuesToBitstring(values.Project(s.Circuit.Outputs)), nil
}
