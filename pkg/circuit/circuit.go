package circuit

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// NetID is a dense index into the circuit's net arena.
type NetID int

// Structure errors reported while building a circuit. All of them are fatal:
// a Builder that reported one never produces a Circuit. ErrUnknownNet is
// the exception: it is reported by label lookups on a built circuit.
var (
	ErrDuplicateDriver = errors.New("net already driven by another gate")
	ErrUndefinedNet    = errors.New("undefined net reference")
	ErrCycle           = errors.New("cyclic connectivity")
	ErrArity           = errors.New("gate arity mismatch")
	ErrUnknownNet      = errors.New("net not present in circuit")
)

// Circuit is an immutable description of a combinational logic circuit:
// a net arena, the gates in topological order, and the primary input and
// output sets. It holds no simulation state; all per-run values live in
// the simulator's Assignment.
type Circuit struct {
	Name string

	names []string        // net index -> label
	index map[string]NetID // label -> net index

	// Gates in a valid topological order from primary inputs to outputs.
	// Ties are broken by declaration order, so the order is deterministic.
	Gates []Gate

	Inputs  []NetID // primary inputs, preserving input-vector position
	Outputs []NetID // primary outputs, preserving declaration order

	// Driver[n] is the index into Gates of the gate driving net n, or -1
	// for primary inputs. Consumers[n] lists the gates reading net n;
	// fan-out is just len(Consumers[n]) > 1, there is no branch entity.
	Driver    []int
	Consumers [][]int

	isInput  []bool
	isOutput []bool
}

// NetCount returns the number of nets in the arena.
func (c *Circuit) NetCount() int { return len(c.names) }

// NetName returns the label of a net.
func (c *Circuit) NetName(n NetID) string { return c.names[n] }

// Net resolves a label to its net index.
func (c *Circuit) Net(name string) (NetID, error) {
	n, ok := c.index[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownNet, "net %q", name)
	}
	return n, nil
}

// IsInput reports whether net n is a primary input.
func (c *Circuit) IsInput(n NetID) bool { return c.isInput[n] }

// IsOutput reports whether net n is a primary output.
func (c *Circuit) IsOutput(n NetID) bool { return c.isOutput[n] }

// AllFaults enumerates the full single-stuck-at fault universe of the
// circuit: both polarities on every net.
func (c *Circuit) AllFaults() []Fault {
	faults := make([]Fault, 0, 2*c.NetCount())
	for n := 0; n < c.NetCount(); n++ {
		faults = append(faults, Fault{Net: NetID(n), StuckAt: Zero}, Fault{Net: NetID(n), StuckAt: One})
	}
	return faults
}

// String renders a short summary of the circuit.
func (c *Circuit) String() string {
	name := c.Name
	if name == "" {
		name = "circuit"
	}
	return fmt.Sprintf("%s: %d inputs, %d outputs, %d gates, %d nets",
		name, len(c.Inputs), len(c.Outputs), len(c.Gates), c.NetCount())
}

// gateDecl is a gate as declared, before topological ordering.
type gateDecl struct {
	kind    GateType
	inputs  []string
	output  string
}

// Builder accumulates gate and I/O declarations and validates them into a
// Circuit. Declarations may arrive in any order; Build establishes the
// topological order.
type Builder struct {
	name    string
	decls   []gateDecl
	inputs  []string
	outputs []string
	driven  map[string]bool
	err     error
}

// NewBuilder creates an empty circuit builder.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, driven: make(map[string]bool)}
}

// AddGate declares a gate. The input count must match the kind's arity and
// the output net must not already have a driver.
func (b *Builder) AddGate(kind GateType, inputs []string, output string) error {
	if len(inputs) != kind.Arity() {
		err := errors.Wrapf(ErrArity, "%s gate %q takes %d input(s), got %d", kind, output, kind.Arity(), len(inputs))
		b.fail(err)
		return err
	}
	if b.driven[output] {
		err := errors.Wrapf(ErrDuplicateDriver, "net %q", output)
		b.fail(err)
		return err
	}
	b.driven[output] = true
	in := make([]string, len(inputs))
	copy(in, inputs)
	b.decls = append(b.decls, gateDecl{kind: kind, inputs: in, output: output})
	return nil
}

// AddInputs appends nets to the ordered primary-input list.
func (b *Builder) AddInputs(names ...string) {
	b.inputs = append(b.inputs, names...)
}

// AddOutputs appends nets to the primary-output list.
func (b *Builder) AddOutputs(names ...string) {
	b.outputs = append(b.outputs, names...)
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates the declarations and produces an immutable Circuit with
// gates in topological order (Kahn's algorithm; ties broken by declaration
// order).
func (b *Builder) Build() (*Circuit, error) {
	if b.err != nil {
		return nil, b.err
	}

	c := &Circuit{
		Name:  b.name,
		index: make(map[string]NetID),
	}
	intern := func(name string) NetID {
		if n, ok := c.index[name]; ok {
			return n
		}
		n := NetID(len(c.names))
		c.names = append(c.names, name)
		c.index[name] = n
		return n
	}

	// Primary inputs first so vector positions map to low indexes.
	for _, name := range b.inputs {
		intern(name)
	}
	for _, d := range b.decls {
		for _, in := range d.inputs {
			intern(in)
		}
		intern(d.output)
	}

	nets := len(c.names)
	c.Driver = make([]int, nets)
	c.Consumers = make([][]int, nets)
	c.isInput = make([]bool, nets)
	c.isOutput = make([]bool, nets)
	for i := range c.Driver {
		c.Driver[i] = -1
	}

	inputSet := make(map[string]bool, len(b.inputs))
	for _, name := range b.inputs {
		if inputSet[name] {
			return nil, errors.Wrapf(ErrDuplicateDriver, "primary input %q declared twice", name)
		}
		if b.driven[name] {
			return nil, errors.Wrapf(ErrDuplicateDriver, "primary input %q conflicts with a gate output", name)
		}
		inputSet[name] = true
		n := c.index[name]
		c.Inputs = append(c.Inputs, n)
		c.isInput[n] = true
	}

	// Every net must be either a primary input or driven by a gate.
	for _, d := range b.decls {
		for _, in := range d.inputs {
			if !inputSet[in] && !b.driven[in] {
				return nil, errors.Wrapf(ErrUndefinedNet, "net %q has no driver and is not a primary input", in)
			}
		}
	}
	for _, name := range b.outputs {
		n, ok := c.index[name]
		if !ok {
			return nil, errors.Wrapf(ErrUndefinedNet, "output net %q not found in net-list", name)
		}
		c.Outputs = append(c.Outputs, n)
		c.isOutput[n] = true
	}

	// Kahn's algorithm over the gate declarations. ready[n] means net n has
	// a final value available; a repeated in-order scan keeps ties in
	// declaration order.
	ready := make([]bool, nets)
	for _, n := range c.Inputs {
		ready[n] = true
	}
	placed := make([]bool, len(b.decls))
	remaining := len(b.decls)
	for remaining > 0 {
		progress := false
		for i, d := range b.decls {
			if placed[i] {
				continue
			}
			ok := true
			for _, in := range d.inputs {
				if !ready[c.index[in]] {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			gate := Gate{Kind: d.kind, Output: c.index[d.output]}
			for _, in := range d.inputs {
				gate.Inputs = append(gate.Inputs, c.index[in])
			}
			gi := len(c.Gates)
			c.Gates = append(c.Gates, gate)
			c.Driver[gate.Output] = gi
			for _, in := range gate.Inputs {
				c.Consumers[in] = append(c.Consumers[in], gi)
			}
			ready[gate.Output] = true
			placed[i] = true
			remaining--
			progress = true
		}
		if !progress {
			var stuck []string
			for i, d := range b.decls {
				if !placed[i] {
					stuck = append(stuck, d.output)
				}
			}
			return nil, errors.Wrapf(ErrCycle, "gates driving %s cannot be ordered", strings.Join(stuck, ", "))
		}
	}

	return c, nil
}
