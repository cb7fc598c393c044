package minikanren

// This file provides a thin, additive High-Level API (HLAPI) over the
// BitSetDomain primitives, reducing boilerplate for building FD models.

// DomainRange returns a domain representing the inclusive range [min..max].
// If min <= 1, this is equivalent to NewBitSetDomain(max). For min>1, values
// outside the range are removed in one bulk operation. Empty ranges return an
// empty domain.
func DomainRange(min, max int) Domain {
	if max <= 0 || min > max {
		return NewBitSetDomain(0)
	}
	if min <= 1 {
		return NewBitSetDomain(max)
	}
	// Build base domain [1..max], then remove below min.
	return NewBitSetDomain(max).RemoveBelow(min)
}

// DomainValues returns a domain containing only the provided values. Values
// out of range are ignored. Empty input yields an empty domain.
func DomainValues(vals ...int) Domain {
	if len(vals) == 0 {
		return NewBitSetDomain(0)
	}
	// Compute max to size the domain efficiently
	max := 0
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return NewBitSetDomain(0)
	}
	return NewBitSetDomainFromValues(max, vals)
}

// IntVar creates a new FD variable with integer domain [min..max]. If name is
// non-empty a named variable is created (useful in debugging and formatted output).
func (m *Model) IntVar(min, max int, name string) *FDVariable {
	d := DomainRange(min, max)
	if name != "" {
		return m.NewVariableWithName(d, name)
	}
	return m.NewVariable(d)
}
