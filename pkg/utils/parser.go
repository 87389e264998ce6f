package utils

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// ErrNetlistFormat is reported for any malformed net-list text: unknown
// gate keywords, missing INPUT/OUTPUT terminators, or too few tokens on a
// line. Structural problems (duplicate drivers, cycles, arity) surface as
// the circuit package's errors instead.
var ErrNetlistFormat = errors.New("malformed net-list")

// ParseNetlistFile reads a circuit from a net-list file. The format is
// line-oriented:
//
//	# comment
//	NAND 16 17 14        gate: kind, input net(s), output net
//	INV 9 5
//	INPUT 1 2 3 4 -1     ordered primary inputs, -1 terminated
//	OUTPUT 7 9 -1        primary outputs, -1 terminated
//
// Net labels are arbitrary alphanumeric tokens; integer labels are common.
// Multiple INPUT/OUTPUT lines concatenate in order.
func ParseNetlistFile(path string) (*circuit.Circuit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening net-list")
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	b := circuit.NewBuilder(name)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := parseLine(b, scanner.Text()); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading net-list")
	}
	return b.Build()
}

// ParseNetlistStrings builds a circuit from net-list lines held in memory,
// one element per line. Mostly useful for tests and embedded circuits.
func ParseNetlistStrings(name string, lines []string) (*circuit.Circuit, error) {
	b := circuit.NewBuilder(name)
	for i, line := range lines {
		if err := parseLine(b, line); err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
	}
	return b.Build()
}

func parseLine(b *circuit.Builder, line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	keyword := fields[0]
	nets := fields[1:]
	switch keyword {
	case "INPUT", "OUTPUT":
		if len(nets) == 0 || nets[len(nets)-1] != "-1" {
			return errors.Wrapf(ErrNetlistFormat, "%s must be terminated with \"-1\"", keyword)
		}
		nets = nets[:len(nets)-1]
		if keyword == "INPUT" {
			b.AddInputs(nets...)
		} else {
			b.AddOutputs(nets...)
		}
		return nil
	default:
		kind, ok := circuit.ParseGateType(keyword)
		if !ok {
			return errors.Wrapf(ErrNetlistFormat, "unknown gate type %q", keyword)
		}
		if len(nets) < 2 {
			return errors.Wrapf(ErrNetlistFormat, "%s gate needs input and output nets", keyword)
		}
		return b.AddGate(kind, nets[:len(nets)-1], nets[len(nets)-1])
	}
}
