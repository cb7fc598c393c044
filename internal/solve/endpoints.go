package solve

import (
	"fmt"

	"github.com/witnessline/witnessline/internal/board"
	"github.com/witnessline/witnessline/pkg/minikanren"
)

// buildEndpoints wires §4.3: exactly one declared source node has
// source_used true, and exactly one declared exit node has exit_used
// true. Both are exactly-one-of-N instances of Among, the same pattern
// the teacher uses for "at least/exactly K" pseudo-boolean constraints.
func buildEndpoints(b *board.Board) error {
	if err := exactlyOne(b, b.Sources, func(n *board.Node) *minikanren.FDVariable { return n.SourceUsed }, "source"); err != nil {
		return err
	}
	if err := exactlyOne(b, b.Exits, func(n *board.Node) *minikanren.FDVariable { return n.ExitUsed }, "exit"); err != nil {
		return err
	}
	return nil
}

// exactlyOne assumes nodes is non-empty; Solve checks for empty
// source/exit lists up front and maps that case directly to "no
// solution" rather than reaching a malformed-constraint error here.
func exactlyOne(b *board.Board, nodes []*board.Node, flag func(*board.Node) *minikanren.FDVariable, label string) error {
	flags := make([]*minikanren.FDVariable, len(nodes))
	for i, n := range nodes {
		flags[i] = flag(n)
	}
	k := constInUniverse(b.Model, len(flags)+1, encodeOffset(1), label+"_count")
	among, err := minikanren.NewAmong(flags, []int{boolTrue}, k)
	if err != nil {
		return fmt.Errorf("solve: exactly-one %s constraint: %w", label, err)
	}
	b.Model.AddConstraint(among)
	return nil
}
