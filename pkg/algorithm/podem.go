package algorithm

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
	"github.com/fyerfyer/podem-atpg/pkg/simulator"
)

// ErrUndetectable is the distinguished result of an exhausted PODEM search:
// no input vector excites the fault and propagates it to a primary output.
var ErrUndetectable = errors.New("fault is undetectable")

// Stats counts the work done by the most recent Generate call.
type Stats struct {
	Decisions    int // decision nodes visited
	Backtracks   int // reversed or abandoned decisions
	Implications int // full-circuit evaluations
	MaxDepth     int // deepest decision level reached
}

// Generator implements the PODEM (Path-Oriented DEcision Making) test
// generation algorithm. One Generator can serve any number of Generate
// calls on the same circuit; each call starts from a clean assignment.
//
// The search is deterministic: the D-frontier gate is the first in
// topological order and backtrace always follows the first X input of a
// gate, so a given (circuit, fault) pair always yields the same vector.
type Generator struct {
	Circuit *circuit.Circuit
	Topo    *circuit.Topology
	Log     logrus.FieldLogger
	Stats   Stats

	target   circuit.Fault
	inputs   []circuit.Value      // current primary-input assignment
	values   simulator.Assignment // net values implied by inputs
	frontier []int                // D-frontier gate indexes, topological order
	inputPos []int                // net -> position in the input vector, -1 otherwise
}

// NewGenerator creates a PODEM generator for c. A nil logger falls back to
// the logrus standard logger.
func NewGenerator(c *circuit.Circuit, log logrus.FieldLogger) *Generator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	pos := make([]int, c.NetCount())
	for i := range pos {
		pos[i] = -1
	}
	for i, n := range c.Inputs {
		pos[n] = i
	}
	return &Generator{
		Circuit:  c,
		Topo:     circuit.NewTopology(c),
		Log:      log,
		inputPos: pos,
	}
}

// Generate searches for a primary-input vector that detects the given
// fault. The returned vector has one character per primary input in
// declared order; inputs the search never had to assign stay X. A fault no
// vector can detect yields ErrUndetectable.
func (g *Generator) Generate(fault circuit.Fault) (string, error) {
	c := g.Circuit
	if fault.Net < 0 || int(fault.Net) >= c.NetCount() {
		return "", errors.Wrapf(circuit.ErrUnknownNet, "fault site %d", fault.Net)
	}
	if !fault.StuckAt.IsBinary() {
		return "", errors.Errorf("stuck-at value must be 0 or 1, got %s", fault.StuckAt)
	}

	g.target = fault
	g.Stats = Stats{}
	g.inputs = make([]circuit.Value, len(c.Inputs))
	g.Log.Debugf("generating test for %s", fault.StringIn(c))

	// A site with no structural path to an output can never be observed.
	if !g.Topo.CanReachOutput(fault.Net) {
		g.Log.Debugf("%s: no path to a primary output", fault.StringIn(c))
		return "", ErrUndetectable
	}

	g.imply()
	if !g.search(0) {
		g.logStats()
		return "", ErrUndetectable
	}

	vector := simulator.ValuesToBitstring(g.values.Project(c.Inputs))
	g.logStats()
	g.Log.Debugf("%s: found test %s", fault.StringIn(c), vector)
	return vector, nil
}

// search is one node of the PODEM decision tree. It reports whether the
// fault is detected somewhere below the current partial assignment.
func (g *Generator) search(depth int) bool {
	if depth > g.Stats.MaxDepth {
		g.Stats.MaxDepth = depth
	}

	if g.detected() {
		return true
	}
	site := g.values[g.target.Net]
	if site == g.target.StuckAt {
		// The site settled at the stuck value; the fault cannot be excited
		// under this assignment.
		return false
	}
	if site != circuit.X {
		if len(g.frontier) == 0 {
			return false
		}
		if !g.xPathExists() {
			return false
		}
	}

	net, val := g.objective()
	pi, dv := g.backtrace(net, val)
	pos := g.inputPos[pi]

	g.Stats.Decisions++
	g.Log.Debugf("decision %d: %s=%s (objective %s=%s)",
		depth, g.Circuit.NetName(pi), dv, g.Circuit.NetName(net), val)

	g.assign(pos, dv)
	if g.search(depth + 1) {
		return true
	}

	g.Stats.Backtracks++
	g.Log.Debugf("backtrack %d: trying %s=%s", depth, g.Circuit.NetName(pi), circuit.Not(dv))
	g.assign(pos, circuit.Not(dv))
	if g.search(depth + 1) {
		return true
	}

	g.Stats.Backtracks++
	g.assign(pos, circuit.X)
	return false
}

// assign sets one primary input and re-implies the whole circuit.
func (g *Generator) assign(pos int, v circuit.Value) {
	g.inputs[pos] = v
	g.imply()
}

// imply runs a full five-valued evaluation with the fault-site override and
// rebuilds the D-frontier.
func (g *Generator) imply() {
	values, err := simulator.EvaluateWithFault(g.Circuit, g.inputs, g.target)
	if err != nil {
		// The input slice is built by the generator itself and always has
		// the right length.
		panic(err)
	}
	g.values = values
	g.frontier = g.buildDFrontier()
	g.Stats.Implications++
}

// detected reports whether a D or D' reached a primary output.
func (g *Generator) detected() bool {
	for _, out := range g.Circuit.Outputs {
		if g.values[out].IsFaulty() {
			return true
		}
	}
	return false
}

func (g *Generator) logStats() {
	g.Log.WithFields(logrus.Fields{
		"decisions":    g.Stats.Decisions,
		"backtracks":   g.Stats.Backtracks,
		"implications": g.Stats.Implications,
		"max_depth":    g.Stats.MaxDepth,
	}).Debug("search finished")
}
