package solve

import (
	"github.com/witnessline/witnessline/internal/board"
	"github.com/witnessline/witnessline/internal/puzzle"
)

// reconstruct walks a satisfying assignment back into the path it
// encodes (§4.7): start at the unique node with source_used true, then
// repeatedly move to an unvisited has_line neighbour, until the unique
// node with exit_used true is reached.
func reconstruct(b *board.Board, a assignment) ([]puzzle.NodeRef, error) {
	var start *board.Node
	for _, n := range b.AllNodes {
		if boolOf(a.of(n.SourceUsed)) {
			start = n
			break
		}
	}
	if start == nil {
		return nil, ErrReconstruction
	}

	visited := map[int]bool{start.ID: true}
	path := []puzzle.NodeRef{start.Ref()}

	current := start
	for !boolOf(a.of(current.ExitUsed)) {
		next := nextOnPath(b, a, current, visited)
		if next == nil {
			return nil, ErrReconstruction
		}
		visited[next.ID] = true
		path = append(path, next.Ref())
		current = next
	}

	return path, nil
}

// nextOnPath finds the unvisited has_line neighbour of current, which is
// unique by construction once the degree template and consecutive-pair
// constraints hold in a satisfying assignment (a non-endpoint node has
// exactly two has_line neighbours, one of which is already visited).
func nextOnPath(b *board.Board, a assignment, current *board.Node, visited map[int]bool) *board.Node {
	for _, adj := range b.Adjacent(current) {
		if visited[adj.ID] {
			continue
		}
		if boolOf(a.of(adj.HasLine)) {
			return adj
		}
	}
	return nil
}
