package solve

import (
	"fmt"

	"github.com/witnessline/witnessline/pkg/minikanren"
)

// RegionContinuity enforces ¬has_line(edge) ⇒ region(c1) = region(c2)
// for the two cells an interior edge separates (§4.4): an edge the line
// does not cross leaves its two flanking cells in the same region.
//
// hasLine is reified per-edge already (the node's own HasLine variable),
// so this constraint is a no-op until hasLine is bound. Once it is bound
// false, it intersects region(c1) and region(c2) bidirectionally — sound
// only because both region variables share the board's regionMax domain
// universe (see helpers.go), matching the one case in the teacher's own
// library (EqualityReified) that Intersects two FDVariables directly.
// solver.search calls propagate() after every single assignment and
// only accepts a branch once every variable is bound, so deferring all
// work until hasLine is bound never lets an inconsistent branch through.
type RegionContinuity struct {
	hasLine *minikanren.FDVariable
	region1 *minikanren.FDVariable
	region2 *minikanren.FDVariable
}

// NewRegionContinuity constructs the constraint for one interior edge.
func NewRegionContinuity(hasLine, region1, region2 *minikanren.FDVariable) (*RegionContinuity, error) {
	if hasLine == nil || region1 == nil || region2 == nil {
		return nil, fmt.Errorf("RegionContinuity: all of hasLine, region1, region2 must be non-nil")
	}
	return &RegionContinuity{hasLine: hasLine, region1: region1, region2: region2}, nil
}

func (c *RegionContinuity) Variables() []*minikanren.FDVariable {
	return []*minikanren.FDVariable{c.hasLine, c.region1, c.region2}
}
func (c *RegionContinuity) Type() string { return "RegionContinuity" }
func (c *RegionContinuity) String() string {
	return fmt.Sprintf("RegionContinuity(has_line=v%d => region(v%d)=region(v%d))", c.hasLine.ID(), c.region1.ID(), c.region2.ID())
}

func (c *RegionContinuity) Propagate(solver *minikanren.Solver, state *minikanren.SolverState) (*minikanren.SolverState, error) {
	lineDom := solver.GetDomain(state, c.hasLine.ID())
	if lineDom == nil || lineDom.Count() == 0 {
		return nil, fmt.Errorf("RegionContinuity: has_line has empty domain")
	}
	if lineDom.Has(boolTrue) {
		// Still possibly true: cannot yet require the regions to match.
		return state, nil
	}

	r1 := solver.GetDomain(state, c.region1.ID())
	r2 := solver.GetDomain(state, c.region2.ID())
	if r1 == nil || r1.Count() == 0 {
		return nil, fmt.Errorf("RegionContinuity: region1 has empty domain")
	}
	if r2 == nil || r2.Count() == 0 {
		return nil, fmt.Errorf("RegionContinuity: region2 has empty domain")
	}

	cur := state
	merged := r1.Intersect(r2)
	if merged.Count() == 0 {
		return nil, fmt.Errorf("RegionContinuity: regions forced equal but domains disjoint")
	}
	if !merged.Equal(r1) {
		cur, _ = solver.SetDomain(cur, c.region1.ID(), merged)
	}
	if !merged.Equal(r2) {
		cur, _ = solver.SetDomain(cur, c.region2.ID(), merged)
	}
	return cur, nil
}
