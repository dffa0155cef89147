// Package compare checks one live object against one partial expectation.
//
// Only fields set in the expectation are read from the live object. A missing component is
// reported as a capability-absent mismatch, a differing value as a value mismatch. The
// comparators never stop on a mismatch, and a panic raised while reading the host is
// folded into a single host-fault mismatch.
package compare

import (
	"fmt"

	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
)

// Scalar compares one scalar field. read is only called when expected is set.
func Scalar[T comparable](field string, expected fixture.Optional[T], read func() T) (outcome.Mismatch, bool) {
	want, ok := expected.Get()
	if !ok {
		return outcome.Mismatch{}, false
	}

	if got := read(); got != want {
		return outcome.ValueMismatch(field, got, want), true
	}

	return outcome.Mismatch{}, false
}

// Sequence compares two ordered sequences. A length difference yields one reason; otherwise
// the first differing element yields one reason naming its index and the rest are skipped.
func Sequence[T comparable](field string, got, want []T) (outcome.Mismatch, bool) {
	if len(got) != len(want) {
		return outcome.Mismatch{
			Kind:    outcome.KindValueMismatch,
			Field:   field,
			Message: fmt.Sprintf("%s count %d, expected %d", field, len(got), len(want)),
		}, true
	}

	for i := range got {
		if got[i] != want[i] {
			return outcome.ValueMismatch(fmt.Sprintf("%s[%d]", field, i), got[i], want[i]), true
		}
	}

	return outcome.Mismatch{}, false
}

// collector accumulates mismatches for one comparison.
type collector struct {
	out []outcome.Mismatch
}

func (c *collector) add(m outcome.Mismatch, ok bool) {
	if ok {
		c.out = append(c.out, m)
	}
}

func (c *collector) absent(field, capability string) {
	c.out = append(c.out, outcome.CapabilityAbsent(field, capability))
}

// recover converts a host access panic into a single mismatch and stops the comparison.
func (c *collector) recover() {
	if r := recover(); r != nil {
		c.out = append(c.out, outcome.HostFault(r))
	}
}

func (c *collector) mismatches() []outcome.Mismatch {
	return c.out
}
