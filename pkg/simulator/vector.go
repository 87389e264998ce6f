package simulator

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

// BitstringToValues converts a vector string over {0,1,X} to logic values,
// one per character. Lowercase x is accepted.
func BitstringToValues(s string) ([]circuit.Value, error) {
	out := make([]circuit.Value, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			out[i] = circuit.Zero
		case '1':
			out[i] = circuit.One
		case 'X', 'x':
			out[i] = circuit.X
		default:
			return nil, errors.Wrapf(ErrInvalidVector, "illegal character %q at position %d", s[i], i)
		}
	}
	return out, nil
}

// ValuesToBitstring renders logic values as a vector string. The composite
// values collapse to their fault-free component (D as 1, D' as 0), matching
// how a found test is reported.
func ValuesToBitstring(values []circuit.Value) string {
	var b strings.Builder
	b.Grow(len(values))
	for _, v := range values {
		switch v {
		case circuit.Zero, circuit.Dbar:
			b.WriteByte('0')
		case circuit.One, circuit.D:
			b.WriteByte('1')
		default:
			b.WriteByte('X')
		}
	}
	return b.String()
}
