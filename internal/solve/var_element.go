package solve

import (
	"fmt"

	"github.com/witnessline/witnessline/pkg/minikanren"
)

// VarElement enforces result = table[index] where table is a slice of
// FDVariables rather than a constant slice of ints — the uninterpreted
// int->int array §4.5 needs for region_square_colours: a square asserts
// its colour *into* the array at its region's index, it does not just
// read a fixed one. Grounded directly on the teacher's own ElementValues
// (element.go), generalizing its bidirectional index/result pruning to
// operate over each table entry's domain instead of a single constant.
//
// Every table entry and result must share the same domain MaxValue (the
// board's colourMax): the bound-index fast path and the result-to-index
// pass Intersect an entry's domain with result's, and Intersect across
// differing MaxValue yields an empty domain — the same universe-
// consistency rule EqualityReified relies on. index is only clamped to
// [1..len(table)] and iterated, so its MaxValue may differ.
type VarElement struct {
	index  *minikanren.FDVariable
	table  []*minikanren.FDVariable
	result *minikanren.FDVariable
}

// NewVarElement constructs result = table[index], with index 1-based
// over len(table) entries (matching the teacher's own ElementValues
// convention).
func NewVarElement(index *minikanren.FDVariable, table []*minikanren.FDVariable, result *minikanren.FDVariable) (*VarElement, error) {
	if index == nil {
		return nil, fmt.Errorf("VarElement: index cannot be nil")
	}
	if result == nil {
		return nil, fmt.Errorf("VarElement: result cannot be nil")
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("VarElement: table cannot be empty")
	}
	for i, t := range table {
		if t == nil {
			return nil, fmt.Errorf("VarElement: table[%d] is nil", i)
		}
	}
	cp := make([]*minikanren.FDVariable, len(table))
	copy(cp, table)
	return &VarElement{index: index, table: cp, result: result}, nil
}

func (e *VarElement) Variables() []*minikanren.FDVariable {
	vars := make([]*minikanren.FDVariable, 0, len(e.table)+2)
	vars = append(vars, e.index, e.result)
	vars = append(vars, e.table...)
	return vars
}
func (e *VarElement) Type() string { return "VarElement" }
func (e *VarElement) String() string {
	return fmt.Sprintf("VarElement(result=v%d = table[index=v%d], n=%d)", e.result.ID(), e.index.ID(), len(e.table))
}

func (e *VarElement) Propagate(solver *minikanren.Solver, state *minikanren.SolverState) (*minikanren.SolverState, error) {
	n := len(e.table)
	idxDom := solver.GetDomain(state, e.index.ID())
	resDom := solver.GetDomain(state, e.result.ID())
	if idxDom == nil || idxDom.Count() == 0 {
		return nil, fmt.Errorf("VarElement: index has empty domain")
	}
	if resDom == nil || resDom.Count() == 0 {
		return nil, fmt.Errorf("VarElement: result has empty domain")
	}

	cur := state

	// 1) Clamp index to [1..n].
	clamped := idxDom
	if clamped.Min() < 1 {
		clamped = clamped.RemoveBelow(1)
	}
	if clamped.Max() > n {
		clamped = clamped.RemoveAbove(n)
	}
	if clamped.Count() == 0 {
		return nil, fmt.Errorf("VarElement: index domain empty after clamping to [1..%d]", n)
	}
	if !clamped.Equal(idxDom) {
		cur, _ = solver.SetDomain(cur, e.index.ID(), clamped)
		idxDom = clamped
	}

	tableDoms := make([]minikanren.Domain, n)
	for i, t := range e.table {
		d := solver.GetDomain(cur, t.ID())
		if d == nil || d.Count() == 0 {
			return nil, fmt.Errorf("VarElement: table[%d] has empty domain", i)
		}
		tableDoms[i] = d
	}

	// Fast path: index already bound. Full bidirectional propagation
	// between the single admissible table entry and result is sound here
	// because both were built in the same colourMax universe.
	if idxDom.IsSingleton() {
		i := idxDom.SingletonValue()
		entry := tableDoms[i-1]
		merged := entry.Intersect(resDom)
		if merged.Count() == 0 {
			return nil, fmt.Errorf("VarElement: result domain inconsistent with table[%d]", i)
		}
		if !merged.Equal(entry) {
			cur, _ = solver.SetDomain(cur, e.table[i-1].ID(), merged)
		}
		if !merged.Equal(resDom) {
			cur, _ = solver.SetDomain(cur, e.result.ID(), merged)
		}
		return cur, nil
	}

	// 2) From index to result: result must be consistent with at least
	// one admissible table entry's domain.
	allowedResVals := map[int]struct{}{}
	idxDom.IterateValues(func(i int) {
		if i < 1 || i > n {
			return
		}
		tableDoms[i-1].IterateValues(func(v int) { allowedResVals[v] = struct{}{} })
	})
	if len(allowedResVals) == 0 {
		return nil, fmt.Errorf("VarElement: no result values supported by current index/table domains")
	}
	vals := make([]int, 0, len(allowedResVals))
	for v := range allowedResVals {
		vals = append(vals, v)
	}
	allowedResDom := minikanren.NewBitSetDomainFromValues(resDom.MaxValue(), vals)
	resFiltered := resDom.Intersect(allowedResDom)
	if resFiltered.Count() == 0 {
		return nil, fmt.Errorf("VarElement: result domain inconsistent with index/table domains")
	}
	if !resFiltered.Equal(resDom) {
		cur, _ = solver.SetDomain(cur, e.result.ID(), resFiltered)
		resDom = resFiltered
	}

	// 3) From result to index: drop indices whose table entry cannot
	// intersect result at all.
	var allowedIdx []int
	idxDom.IterateValues(func(i int) {
		if i < 1 || i > n {
			return
		}
		if tableDoms[i-1].Intersect(resDom).Count() > 0 {
			allowedIdx = append(allowedIdx, i)
		}
	})
	if len(allowedIdx) == 0 {
		return nil, fmt.Errorf("VarElement: index domain has no value compatible with result domain")
	}
	idxFiltered := minikanren.NewBitSetDomainFromValues(idxDom.MaxValue(), allowedIdx)
	if !idxFiltered.Equal(idxDom) {
		cur, _ = solver.SetDomain(cur, e.index.ID(), idxFiltered)
	}

	return cur, nil
}
