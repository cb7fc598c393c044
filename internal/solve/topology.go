package solve

import (
	"fmt"

	"github.com/witnessline/witnessline/internal/board"
	"github.com/witnessline/witnessline/pkg/minikanren"
)

// maxAdjacencyCode is the k-encoding upper bound: an intersection has at
// most board.MaxAdjacency (4) adjacent edges, so k (offset +1, per the
// Count convention) ranges over [1, board.MaxAdjacency+1].
const maxAdjacencyCode = board.MaxAdjacency + 1

// degreeTemplateRows is the universal (has_line, source_used, exit_used, k)
// relation implementing §4.2's four templates. It is built once and
// reused, unfiltered, for every node: Table.Propagate checks each row's
// column values against that node's own variable domains (Has), so a
// border node whose k domain tops out below maxAdjacencyCode
// automatically drops rows it cannot satisfy without any per-node
// row generation.
func degreeTemplateRows() [][]int {
	var rows [][]int
	// Not in line: source_used and exit_used are false; k unconstrained.
	for k := 1; k <= maxAdjacencyCode; k++ {
		rows = append(rows, []int{boolFalse, boolFalse, boolFalse, k})
	}
	// Middle of line: has_line, neither endpoint, exactly two has_line
	// neighbours (k encodes actual 2).
	rows = append(rows, []int{boolTrue, boolFalse, boolFalse, 3})
	// End of line: has_line, exactly one of source_used/exit_used, exactly
	// one has_line neighbour (k encodes actual 1).
	rows = append(rows, []int{boolTrue, boolTrue, boolFalse, 2})
	rows = append(rows, []int{boolTrue, boolFalse, boolTrue, 2})
	// Entire line is a single node: both source_used and exit_used, zero
	// has_line neighbours (k encodes actual 0).
	rows = append(rows, []int{boolTrue, boolTrue, boolTrue, 1})
	return rows
}

// buildTopology fixes the per-node facts (broken, dot, non-source,
// non-exit) and wires the degree template and line_index consecutive-
// pair rule for every node.
func buildTopology(b *board.Board) error {
	rows := degreeTemplateRows()

	for _, n := range b.AllNodes {
		if n.Broken {
			n.HasLine.SetDomain(minikanren.DomainValues(boolFalse))
		}
		if n.Dot {
			n.HasLine.SetDomain(minikanren.DomainValues(boolTrue))
		}
		if !n.Source {
			n.SourceUsed.SetDomain(minikanren.DomainValues(boolFalse))
		}
		if !n.Exit {
			n.ExitUsed.SetDomain(minikanren.DomainValues(boolFalse))
		}

		adjacent := b.Adjacent(n)
		var kVar *minikanren.FDVariable
		if len(adjacent) == 0 {
			kVar = b.Model.NewVariableWithName(minikanren.DomainValues(1), fmt.Sprintf("k_%d", n.ID))
		} else {
			kVar = b.Model.NewVariableWithName(minikanren.DomainRange(1, len(adjacent)+1), fmt.Sprintf("k_%d", n.ID))
			adjHasLine := make([]*minikanren.FDVariable, len(adjacent))
			for i, adj := range adjacent {
				adjHasLine[i] = adj.HasLine
			}
			count, err := minikanren.NewCount(b.Model, adjHasLine, boolTrue, kVar)
			if err != nil {
				return fmt.Errorf("solve: degree count for node %d: %w", n.ID, err)
			}
			b.Model.AddConstraint(count)
		}

		table, err := minikanren.NewTable([]*minikanren.FDVariable{n.HasLine, n.SourceUsed, n.ExitUsed, kVar}, rows)
		if err != nil {
			return fmt.Errorf("solve: degree template for node %d: %w", n.ID, err)
		}
		b.Model.AddConstraint(table)
	}

	if err := buildLineIndexOrdering(b); err != nil {
		return err
	}
	return nil
}

// buildLineIndexOrdering wires the consecutive-pair rule for every
// unordered adjacent pair sharing a node, per §4.2/§9.
func buildLineIndexOrdering(b *board.Board) error {
	for _, n := range b.AllNodes {
		adjacent := b.Adjacent(n)
		for i := 0; i < len(adjacent); i++ {
			for j := i + 1; j < len(adjacent); j++ {
				a, bb := adjacent[i], adjacent[j]
				cp, err := NewConsecutivePair(a.HasLine, bb.HasLine, n.LineIndex, a.LineIndex, bb.LineIndex)
				if err != nil {
					return fmt.Errorf("solve: consecutive pair at node %d: %w", n.ID, err)
				}
				b.Model.AddConstraint(cp)
			}
		}
	}
	return nil
}
