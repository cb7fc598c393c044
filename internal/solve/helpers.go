package solve

import (
	"fmt"

	"github.com/witnessline/witnessline/pkg/minikanren"
)

// Domain-value conventions used throughout this package, matching the
// teacher's own reification idiom:
//
//   - booleans:    domain {1,2}, 1=false, 2=true
//   - line_index:  domain value v encodes actual index v-1
//   - region(c):   domain value v encodes actual region label v-1
//   - num_regions: domain value v encodes actual count v-1 (the same
//     count+1 convention Count/Among already use)
//
// Two variables are only safe to compare via EqualityReified (or any
// constraint that Intersects their domains directly) when they share the
// same domain MaxValue — region(c) and any region-label constant always
// share regionMax for exactly this reason.

const (
	boolFalse = 1
	boolTrue  = 2
)

func newBoolVar(m *minikanren.Model, name string) *minikanren.FDVariable {
	return m.NewVariableWithName(minikanren.DomainValues(boolFalse, boolTrue), name)
}

// fixBool allocates a boolean variable whose domain is already pinned to
// a single truth value, for use as a constant operand.
func fixBool(m *minikanren.Model, value bool, name string) *minikanren.FDVariable {
	v := boolFalse
	if value {
		v = boolTrue
	}
	return m.NewVariableWithName(minikanren.DomainValues(v), name)
}

func boolOf(value int) bool { return value == boolTrue }

// constInUniverse allocates a singleton FDVariable at domain value
// `encodedValue`, sharing maxValue with whatever offset-encoded variable
// it will be compared against. Using DomainValues(encodedValue) directly
// would derive a MaxValue from the single value given, not from the
// universe it needs to match — exactly the Intersect pitfall this
// constraint package is built to avoid.
func constInUniverse(m *minikanren.Model, maxValue, encodedValue int, name string) *minikanren.FDVariable {
	return m.NewVariableWithName(minikanren.NewBitSetDomainFromValues(maxValue, []int{encodedValue}), name)
}

// encode/decode helpers for the region(c)/num_regions/line_index offset
// convention: domain value = logical value + 1.
func encodeOffset(logical int) int { return logical + 1 }
func decodeOffset(domainValue int) int { return domainValue - 1 }

func addConstraint(m *minikanren.Model, c minikanren.ModelConstraint, err error) error {
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	m.AddConstraint(c)
	return nil
}
