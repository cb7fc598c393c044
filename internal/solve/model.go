// Package solve implements the constraint emission, decision, and path
// reconstruction stages (§4.2-§4.7): it turns a materialized
// internal/board.Board into a finite-domain model on pkg/minikanren,
// asks the solver for a satisfying assignment, and reconstructs the path
// one such assignment encodes.
package solve

import (
	"fmt"

	"github.com/witnessline/witnessline/internal/board"
	"github.com/witnessline/witnessline/internal/puzzle"
)

// Solve decides whether the puzzle has a valid path and, if so, returns
// it as the ordered sequence of node references from source to exit.
// A nil, nil result means no solution exists (UNSAT or UNKNOWN, per
// §4.6); a non-nil error means the puzzle was malformed or (should it
// ever happen) reconstruction failed.
func Solve(p *puzzle.Puzzle, opts Options) ([]puzzle.NodeRef, error) {
	b, err := board.New(p)
	if err != nil {
		return nil, err
	}

	if len(b.Sources) == 0 || len(b.Exits) == 0 {
		return nil, nil
	}

	if err := buildTopology(b); err != nil {
		return nil, err
	}
	if err := buildEndpoints(b); err != nil {
		return nil, err
	}
	if _, err := buildRegions(b); err != nil {
		return nil, err
	}
	if err := buildSymbols(b); err != nil {
		return nil, err
	}

	assignment, err := decide(b, opts)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, nil
	}

	path, err := reconstruct(b, assignment)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	return path, nil
}
