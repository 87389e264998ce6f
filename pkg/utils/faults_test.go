package utils

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
)

func faultTestCircuit(t *testing.T) *circuit.Circuit {
	t.Helper()
	c, err := ParseNetlistStrings("ft", []string{
		"AND 1 2 net3",
		"INPUT 1 2 -1",
		"OUTPUT net3 -1",
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestParseFault(t *testing.T) {
	c := faultTestCircuit(t)

	cases := []struct {
		in    string
		net   string
		stuck circuit.Value
	}{
		{"1-sa-0", "1", circuit.Zero},
		{"2-sa-1", "2", circuit.One},
		{"net3-sa-1", "net3", circuit.One},
		{"1 0", "1", circuit.Zero},
		{"net3 1", "net3", circuit.One},
	}
	for _, tc := range cases {
		f, err := ParseFault(c, tc.in)
		if err != nil {
			t.Errorf("ParseFault(%q): %v", tc.in, err)
			continue
		}
		if c.NetName(f.Net) != tc.net || f.StuckAt != tc.stuck {
			t.Errorf("ParseFault(%q) = %s-sa-%s, want %s-sa-%s",
				tc.in, c.NetName(f.Net), f.StuckAt, tc.net, tc.stuck)
		}
	}
}

func TestParseFaultErrors(t *testing.T) {
	c := faultTestCircuit(t)

	for _, bad := range []string{"", "1", "1-sa-2", "1-sa-X", "sa-0", "1 2 3"} {
		if _, err := ParseFault(c, bad); err == nil {
			t.Errorf("ParseFault(%q) must fail", bad)
		}
	}

	if _, err := ParseFault(c, "99-sa-0"); !errors.Is(err, circuit.ErrUnknownNet) {
		t.Errorf("unknown net: expected ErrUnknownNet, got %v", err)
	}
}
