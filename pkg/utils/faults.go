package utils

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// Accepted textual fault forms: "12-sa-0" and the two-token "12 0".
var (
	faultRegex    = regexp.MustCompile(`^(\S+)-sa-([01])$`)
	altFaultRegex = regexp.MustCompile(`^(\S+)\s+([01])$`)
)

// ParseFault converts a fault string to a Fault on circuit c. The net
// label must exist in the circuit.
func ParseFault(c *circuit.Circuit, s string) (circuit.Fault, error) {
	var m []string
	for _, pat := range []*regexp.Regexp{faultRegex, altFaultRegex} {
		if m = pat.FindStringSubmatch(s); m != nil {
			break
		}
	}
	if m == nil {
		return circuit.Fault{}, errors.Errorf("invalid fault %q (expected <net>-sa-<0|1> or <net> <0|1>)", s)
	}
	stuck := circuit.Zero
	if m[2] == "1" {
		stuck = circuit.One
	}
	return circuit.NewFault(c, m[1], stuck)
}
