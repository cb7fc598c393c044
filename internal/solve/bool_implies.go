package solve

import (
	"fmt"

	"github.com/witnessline/witnessline/pkg/minikanren"
)

// BoolImplies enforces a ⇒ b over two boolean FDVariables (domain
// {1,2}, 1=false, 2=true): the only forbidden assignment is a=true,
// b=false. No generic boolean-implication global exists in
// pkg/minikanren, so this follows the same shape as its own
// EqualityReified and InSetReified: narrow each variable's own domain,
// never Intersect across variables, so it is safe to use regardless of
// whether a and b share a domain universe (they always do here, both
// being plain booleans, but the pattern costs nothing extra).
type BoolImplies struct {
	a, b *minikanren.FDVariable
}

// NewBoolImplies constructs a ⇒ b.
func NewBoolImplies(a, b *minikanren.FDVariable) (*BoolImplies, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("BoolImplies: a and b must be non-nil")
	}
	return &BoolImplies{a: a, b: b}, nil
}

func (c *BoolImplies) Variables() []*minikanren.FDVariable { return []*minikanren.FDVariable{c.a, c.b} }
func (c *BoolImplies) Type() string                        { return "BoolImplies" }
func (c *BoolImplies) String() string {
	return fmt.Sprintf("BoolImplies(v%d => v%d)", c.a.ID(), c.b.ID())
}

func (c *BoolImplies) Propagate(solver *minikanren.Solver, state *minikanren.SolverState) (*minikanren.SolverState, error) {
	aDom := solver.GetDomain(state, c.a.ID())
	bDom := solver.GetDomain(state, c.b.ID())
	if aDom == nil || aDom.Count() == 0 {
		return nil, fmt.Errorf("BoolImplies: a has empty domain")
	}
	if bDom == nil || bDom.Count() == 0 {
		return nil, fmt.Errorf("BoolImplies: b has empty domain")
	}

	cur := state

	// b known false => a must be false.
	if !bDom.Has(boolTrue) {
		if aDom.Has(boolTrue) {
			newA := aDom.Remove(boolTrue)
			if newA.Count() == 0 {
				return nil, fmt.Errorf("BoolImplies: a forced true and false")
			}
			cur, _ = solver.SetDomain(cur, c.a.ID(), newA)
		}
		return cur, nil
	}

	// a known true => b must be true.
	if !aDom.Has(boolFalse) {
		if bDom.Has(boolFalse) {
			newB := bDom.Remove(boolFalse)
			if newB.Count() == 0 {
				return nil, fmt.Errorf("BoolImplies: b forced true and false")
			}
			cur, _ = solver.SetDomain(cur, c.b.ID(), newB)
		}
		return cur, nil
	}

	return cur, nil
}
