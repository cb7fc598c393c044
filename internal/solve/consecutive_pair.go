package solve

import (
	"fmt"

	"github.com/witnessline/witnessline/pkg/minikanren"
)

// ConsecutivePair enforces the line_index ordering rule for one pair of
// adjacent nodes {a,b} sharing a third node n in the drawn line (§4.2's
// "consecutive pair" rule, disjunctive form per the design note resolving
// spec's line_index ambiguity): if both a and b have the line, then
// line_index(a) and line_index(b) must straddle line_index(n) by
// exactly one step in either direction —
//
//	(idx(a) = idx(n)-1 AND idx(b) = idx(n)+1) OR
//	(idx(a) = idx(n)+1 AND idx(b) = idx(n)-1)
//
// This rules out disjoint cycles: a cycle's nodes could all satisfy the
// degree template without ever visiting the source, but could never be
// assigned a consistent monotonic line_index.
//
// Every value this constraint inspects must be bound before it can
// decide anything, so it is a no-op until has_line(a), has_line(b),
// line_index(n), line_index(a), and line_index(b) are all singletons,
// then validates and returns an error if violated. This is sound, not
// merely convenient: solver.search calls propagate() after every single
// variable assignment and only accepts a branch as a solution once every
// variable in the model is bound (isComplete), so a violation is always
// caught before a spurious solution could be returned — it is simply
// caught as late as the last of these five variables is assigned rather
// than incrementally.
type ConsecutivePair struct {
	hasLineA, hasLineB                 *minikanren.FDVariable
	lineIndexN, lineIndexA, lineIndexB *minikanren.FDVariable
}

// NewConsecutivePair builds the constraint for node n and one of its
// neighbour pairs {a,b}.
func NewConsecutivePair(hasLineA, hasLineB, lineIndexN, lineIndexA, lineIndexB *minikanren.FDVariable) (*ConsecutivePair, error) {
	if hasLineA == nil || hasLineB == nil || lineIndexN == nil || lineIndexA == nil || lineIndexB == nil {
		return nil, fmt.Errorf("ConsecutivePair: all operands must be non-nil")
	}
	return &ConsecutivePair{
		hasLineA: hasLineA, hasLineB: hasLineB,
		lineIndexN: lineIndexN, lineIndexA: lineIndexA, lineIndexB: lineIndexB,
	}, nil
}

func (c *ConsecutivePair) Variables() []*minikanren.FDVariable {
	return []*minikanren.FDVariable{c.hasLineA, c.hasLineB, c.lineIndexN, c.lineIndexA, c.lineIndexB}
}
func (c *ConsecutivePair) Type() string { return "ConsecutivePair" }
func (c *ConsecutivePair) String() string {
	return fmt.Sprintf("ConsecutivePair(a=v%d,b=v%d,n=v%d)", c.hasLineA.ID(), c.hasLineB.ID(), c.lineIndexN.ID())
}

func (c *ConsecutivePair) Propagate(solver *minikanren.Solver, state *minikanren.SolverState) (*minikanren.SolverState, error) {
	vars := []*minikanren.FDVariable{c.hasLineA, c.hasLineB, c.lineIndexN, c.lineIndexA, c.lineIndexB}
	doms := make([]minikanren.Domain, len(vars))
	for i, v := range vars {
		d := solver.GetDomain(state, v.ID())
		if d == nil || d.Count() == 0 {
			return nil, fmt.Errorf("ConsecutivePair: variable %d has empty domain", v.ID())
		}
		doms[i] = d
		if !d.IsSingleton() {
			return state, nil
		}
	}

	hasA := boolOf(doms[0].SingletonValue())
	hasB := boolOf(doms[1].SingletonValue())
	if !hasA || !hasB {
		return state, nil
	}

	idxN := doms[2].SingletonValue()
	idxA := doms[3].SingletonValue()
	idxB := doms[4].SingletonValue()

	if (idxA == idxN-1 && idxB == idxN+1) || (idxA == idxN+1 && idxB == idxN-1) {
		return state, nil
	}
	return nil, fmt.Errorf("ConsecutivePair: line_index(a)=%d, line_index(b)=%d do not straddle line_index(n)=%d", idxA, idxB, idxN)
}
