// Package coverage measures the single-stuck-at fault coverage a stream of
// pseudo-random test vectors achieves on a circuit.
package coverage

import (
	"github.com/sirupsen/logrus"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
	"github.com/fyerfyer/podem-atpg/pkg/simulator"
	"github.com/fyerfyer/podem-atpg/pkg/utils"
)

// Point records the cumulative coverage after one applied vector.
type Point struct {
	Vector   string
	Applied  int
	Detected int
	Coverage float64
}

// Config bounds a coverage run. Target is a fraction of the full fault
// universe (2 faults per net); the run stops when it is reached or when
// MaxVectors patterns have been applied.
type Config struct {
	Seed       uint64
	Target     float64
	MaxVectors int
}

// Run applies seeded pseudo-random patterns to the circuit, accumulating
// the detected-fault set with the deductive simulator, and returns one
// Point per applied vector.
func Run(c *circuit.Circuit, cfg Config, log logrus.FieldLogger) ([]Point, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.Target <= 0 || cfg.Target > 1 {
		cfg.Target = 1.0
	}
	if cfg.MaxVectors <= 0 {
		cfg.MaxVectors = 1000
	}

	patterns, err := utils.NewPatternSource(len(c.Inputs), cfg.Seed)
	if err != nil {
		return nil, err
	}
	sim := simulator.NewFaultSimulation(c)
	total := float64(2 * c.NetCount())
	detected := circuit.NewFaultSet(c)

	var points []Point
	for len(points) < cfg.MaxVectors {
		vector, ok := patterns.Next()
		if !ok {
			break
		}
		faults, err := sim.DetectFaults(vector)
		if err != nil {
			return nil, err
		}
		detected.UnionWith(faults)
		p := Point{
			Vector:   vector,
			Applied:  len(points) + 1,
			Detected: detected.Len(),
			Coverage: float64(detected.Len()) / total,
		}
		points = append(points, p)
		if p.Applied%100 == 0 {
			log.Debugf("applied %d vectors, coverage %.2f%%", p.Applied, 100*p.Coverage)
		}
		if p.Coverage >= cfg.Target {
			break
		}
	}
	return points, nil
}
