package circuit

import "fmt"

// GateType represents the type of logic gate.
type GateType int

const (
	AND GateType = iota
	NAND
	OR
	NOR
	BUF
	INV
)

// String returns a string representation of the gate type.
func (gt GateType) String() string {
	switch gt {
	case AND:
		return "AND"
	case NAND:
		return "NAND"
	case OR:
		return "OR"
	case NOR:
		return "NOR"
	case BUF:
		return "BUF"
	case INV:
		return "INV"
	default:
		return "UNKNOWN"
	}
}

// ParseGateType converts a netlist keyword to a GateType.
func ParseGateType(s string) (GateType, bool) {
	switch s {
	case "AND":
		return AND, true
	case "NAND":
		return NAND, true
	case "OR":
		return OR, true
	case "NOR":
		return NOR, true
	case "BUF":
		return BUF, true
	case "INV", "NOT":
		return INV, true
	default:
		return 0, false
	}
}

// Arity returns the required input count: 2 for the binary gates, 1 for
// BUF and INV.
func (gt GateType) Arity() int {
	switch gt {
	case BUF, INV:
		return 1
	default:
		return 2
	}
}

// ControlValue returns the controlling value for the gate type (0 for
// AND/NAND, 1 for OR/NOR). The second return is false for BUF/INV, which
// have no controlling value.
func (gt GateType) ControlValue() (Value, bool) {
	switch gt {
	case AND, NAND:
		return Zero, true
	case OR, NOR:
		return One, true
	default:
		return X, false
	}
}

// NonControlValue returns the complement of the controlling value. The
// second return is false for BUF/INV.
func (gt GateType) NonControlValue() (Value, bool) {
	c, ok := gt.ControlValue()
	if !ok {
		return X, false
	}
	return Not(c), true
}

// Inverts reports the inversion parity of the gate type: true for
// NAND/NOR/INV.
func (gt GateType) Inverts() bool {
	switch gt {
	case NAND, NOR, INV:
		return true
	default:
		return false
	}
}

// Gate is a logic gate in the circuit arena. Inputs and Output are dense
// net indexes into the owning Circuit.
type Gate struct {
	Kind   GateType
	Inputs []NetID
	Output NetID
}

// Evaluate computes the gate output from the given input values using the
// five-valued algebra.
func (g *Gate) Evaluate(in []Value) Value {
	switch g.Kind {
	case AND:
		return And(in[0], in[1])
	case NAND:
		return Not(And(in[0], in[1]))
	case OR:
		return Or(in[0], in[1])
	case NOR:
		return Not(Or(in[0], in[1]))
	case BUF:
		return in[0]
	case INV:
		return Not(in[0])
	default:
		return X
	}
}

// StringIn renders the gate with net names resolved through the circuit.
func (g *Gate) StringIn(c *Circuit) string {
	if len(g.Inputs) == 1 {
		return fmt.Sprintf("%s %s %s", g.Kind, c.NetName(g.Inputs[0]), c.NetName(g.Output))
	}
	return fmt.Sprintf("%s %s %s %s", g.Kind, c.NetName(g.Inputs[0]), c.NetName(g.Inputs[1]), c.NetName(g.Output))
}
