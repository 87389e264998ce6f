package utils

import (
	"fmt"

	"github.com/pkg/errors"
)

// PatternSource enumerates every n-bit input pattern exactly once in a
// pseudo-random order, using a full-period linear congruential generator
// (multiplier 5, increment 1, modulus 2^n). The same seed always yields
// the same sequence, so coverage runs are reproducible.
type PatternSource struct {
	length    int
	mask      uint64
	state     uint64
	remaining uint64
}

// NewPatternSource creates a pattern source for vectors of the given
// length, seeded with an arbitrary start state.
func NewPatternSource(length int, seed uint64) (*PatternSource, error) {
	if length < 1 || length > 62 {
		return nil, errors.Errorf("pattern length must be in [1,62], got %d", length)
	}
	period := uint64(1) << uint(length)
	return &PatternSource{
		length:    length,
		mask:      period - 1,
		state:     seed & (period - 1),
		remaining: period,
	}, nil
}

// Next returns the next pattern as a binary string. The second return is
// false once all 2^n patterns have been produced.
func (p *PatternSource) Next() (string, bool) {
	if p.remaining == 0 {
		return "", false
	}
	p.remaining--
	p.state = (5*p.state + 1) & p.mask
	return fmt.Sprintf("%0*b", p.length, p.state), true
}
