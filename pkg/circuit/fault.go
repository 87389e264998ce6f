package circuit

import (
	"sort"
	"strconv"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// Fault is a single stuck-at fault: a net tied to 0 or 1 independent of its
// driver. Written "n-sa-v".
type Fault struct {
	Net     NetID
	StuckAt Value
}

// NewFault builds a fault from a net label, validating both the label and
// the stuck value.
func NewFault(c *Circuit, name string, stuckAt Value) (Fault, error) {
	if !stuckAt.IsBinary() {
		return Fault{}, errors.Errorf("stuck-at value must be 0 or 1, got %s", stuckAt)
	}
	n, err := c.Net(name)
	if err != nil {
		return Fault{}, err
	}
	return Fault{Net: n, StuckAt: stuckAt}, nil
}

// StringIn renders the fault as "<label>-sa-<v>" using the circuit's net
// names.
func (f Fault) StringIn(c *Circuit) string {
	return c.NetName(f.Net) + "-sa-" + f.StuckAt.String()
}

// faultBit maps a fault to its dense bit index: two bits per net.
func faultBit(f Fault) uint {
	b := uint(f.Net) * 2
	if f.StuckAt == One {
		b++
	}
	return b
}

func faultFromBit(b uint) Fault {
	f := Fault{Net: NetID(b / 2), StuckAt: Zero}
	if b%2 == 1 {
		f.StuckAt = One
	}
	return f
}

// FaultSet is a set of stuck-at faults over one circuit's net arena, backed
// by a bitset so that the union/intersection/difference steps of deductive
// fault propagation are cheap word-wise operations.
type FaultSet struct {
	bits *bitset.BitSet
}

// NewFaultSet returns an empty fault set sized for circuit c.
func NewFaultSet(c *Circuit) *FaultSet {
	return &FaultSet{bits: bitset.New(uint(2 * c.NetCount()))}
}

// Add inserts a fault.
func (s *FaultSet) Add(f Fault) {
	s.bits.Set(faultBit(f))
}

// Contains reports membership.
func (s *FaultSet) Contains(f Fault) bool {
	return s.bits.Test(faultBit(f))
}

// Len returns the number of faults in the set.
func (s *FaultSet) Len() int {
	return int(s.bits.Count())
}

// Clone returns an independent copy of the set.
func (s *FaultSet) Clone() *FaultSet {
	return &FaultSet{bits: s.bits.Clone()}
}

// UnionWith adds every fault of t to s.
func (s *FaultSet) UnionWith(t *FaultSet) {
	s.bits.InPlaceUnion(t.bits)
}

// IntersectWith removes from s every fault not in t.
func (s *FaultSet) IntersectWith(t *FaultSet) {
	s.bits.InPlaceIntersection(t.bits)
}

// DifferenceWith removes from s every fault present in t.
func (s *FaultSet) DifferenceWith(t *FaultSet) {
	s.bits.InPlaceDifference(t.bits)
}

// Equal reports whether two sets hold exactly the same faults.
func (s *FaultSet) Equal(t *FaultSet) bool {
	return s.bits.Equal(t.bits)
}

// Faults returns the members ordered by net index, stuck-at-0 before
// stuck-at-1.
func (s *FaultSet) Faults() []Fault {
	out := make([]Fault, 0, s.Len())
	for b, ok := s.bits.NextSet(0); ok; b, ok = s.bits.NextSet(b + 1) {
		out = append(out, faultFromBit(b))
	}
	return out
}

// SortedIn returns the members sorted for display: numerically when both
// labels are integers, lexically otherwise, stuck-at-0 before stuck-at-1.
func (s *FaultSet) SortedIn(c *Circuit) []Fault {
	out := s.Faults()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := c.NetName(out[i].Net), c.NetName(out[j].Net)
		if a != b {
			ai, aerr := strconv.Atoi(a)
			bi, berr := strconv.Atoi(b)
			if aerr == nil && berr == nil {
				return ai < bi
			}
			return a < b
		}
		return out[i].StuckAt == Zero && out[j].StuckAt == One
	})
	return out
}
