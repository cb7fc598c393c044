package solve

import (
	"github.com/witnessline/witnessline/internal/board"
	"github.com/witnessline/witnessline/pkg/minikanren"
)

// assignment is a satisfying assignment, indexed by FDVariable.ID() —
// the same convention Solver.extractSolution itself uses.
type assignment []int

func (a assignment) of(v *minikanren.FDVariable) int { return a[v.ID()] }

// decide asks the backend for one satisfying assignment (§4.6). A nil
// result with no error means UNSAT or UNKNOWN (cancelled/timed-out
// context) — both map to "no solution" per §5.
func decide(b *board.Board, opts Options) (assignment, error) {
	solver := minikanren.NewSolver(b.Model)
	solutions, err := solver.Solve(opts.context(), 1)
	if err != nil {
		// A cancelled/expired context is UNKNOWN, which maps to "no
		// solution" the same as UNSAT (§5); any other error (model
		// validation) is a genuine failure to surface.
		if opts.context().Err() != nil {
			return nil, nil
		}
		return nil, err
	}
	if len(solutions) == 0 {
		return nil, nil
	}
	return assignment(solutions[0]), nil
}
