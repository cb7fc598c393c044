// Package board materializes a puzzle into the fully-indexed grid of nodes
// and cells described in the data model: a 2D array of intersections, two
// 2D arrays of edges, and a 2D array of cells, each carrying logical
// variable handles allocated from a fresh minikanren.Model.
package board

import (
	"fmt"

	"github.com/witnessline/witnessline/internal/puzzle"
	"github.com/witnessline/witnessline/pkg/minikanren"
)

// Node is one intersection or edge. Every node carries the boolean and
// integer logical variables the topology constraints reason about.
type Node struct {
	ID          int
	Kind        puzzle.NodeKind
	Pos         puzzle.Position
	Orientation puzzle.Orientation // meaningful only for edge nodes

	Broken     bool
	Source     bool
	Exit       bool
	Dot        bool
	OnBoundary bool

	HasLine    *minikanren.FDVariable
	SourceUsed *minikanren.FDVariable
	ExitUsed   *minikanren.FDVariable
	LineIndex  *minikanren.FDVariable
}

func (n *Node) String() string {
	if n.Kind == puzzle.IntersectionKind {
		return n.Pos.String()
	}
	return fmt.Sprintf("%s%s", n.Orientation, n.Pos)
}

// Ref returns the puzzle.NodeRef naming this node, for reconstruction output.
func (n *Node) Ref() puzzle.NodeRef {
	if n.Kind == puzzle.IntersectionKind {
		return puzzle.Intersection(n.Pos)
	}
	return puzzle.Edge(n.Pos, n.Orientation)
}

// SymbolKind distinguishes the two supported symbol kinds.
type SymbolKind int

const (
	NoSymbol SymbolKind = iota
	SquareSymbol
	SunSymbol
)

// Cell is one grid square. It carries an optional symbol and the region
// label variable the region-partitioning constraints assign.
type Cell struct {
	ID     int
	Pos    puzzle.Position
	Symbol SymbolKind
	Colour puzzle.Colour // meaningful only when Symbol != NoSymbol

	Region *minikanren.FDVariable
}

// Board is the materialized puzzle: the node and cell arrays, plus the
// model every logical variable is allocated from.
//
// Shapes, per §4.1:
//   - Intersections: (H+1) x (W+1)
//   - HorizEdges:     (H+1) x W
//   - VertEdges:       H x (W+1)
//   - Cells:           H x W
type Board struct {
	Width, Height int

	Model *minikanren.Model

	Intersections [][]*Node
	HorizEdges    [][]*Node
	VertEdges     [][]*Node
	Cells         [][]*Cell

	Sources []*Node
	Exits   []*Node

	AllNodes []*Node
	AllCells []*Cell

	// RegionMax is the upper bound on region labels (num cells, or 1 when
	// the grid is empty). Every region-label FDVariable in the model
	// (including constants compared against one) must share this domain
	// universe, since domain intersection requires matching MaxValue.
	RegionMax int

	// LineIndexMax is the upper bound of every line_index domain
	// [1, LineIndexMax]: the total node count plus one.
	LineIndexMax int

	nextID int
}

// MaxAdjacency bounds the number of nodes adjacent to any node: an
// intersection has at most 4 adjacent edges; an edge has exactly 2
// adjacent intersections.
const MaxAdjacency = 4

// New materializes a board from a puzzle. It runs p.Validate() first and
// returns that error, wrapped, when the puzzle is malformed; node
// references are then resolved through Lookup, which checks bounds again
// and returns an error wrapping puzzle.ErrMalformedPuzzle.
func New(p *puzzle.Puzzle) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("board.New: %w", err)
	}

	b := &Board{
		Width:  p.Width,
		Height: p.Height,
		Model:  minikanren.NewModel(),
	}

	b.Intersections = make([][]*Node, p.Height+1)
	for y := range b.Intersections {
		b.Intersections[y] = make([]*Node, p.Width+1)
		for x := range b.Intersections[y] {
			b.Intersections[y][x] = b.newNode(puzzle.IntersectionKind, puzzle.Position{X: x, Y: y}, puzzle.Horizontal)
		}
	}

	b.HorizEdges = make([][]*Node, p.Height+1)
	for y := range b.HorizEdges {
		b.HorizEdges[y] = make([]*Node, p.Width)
		for x := range b.HorizEdges[y] {
			b.HorizEdges[y][x] = b.newNode(puzzle.EdgeKind, puzzle.Position{X: x, Y: y}, puzzle.Horizontal)
		}
	}

	b.VertEdges = make([][]*Node, p.Height)
	for y := range b.VertEdges {
		b.VertEdges[y] = make([]*Node, p.Width+1)
		for x := range b.VertEdges[y] {
			b.VertEdges[y][x] = b.newNode(puzzle.EdgeKind, puzzle.Position{X: x, Y: y}, puzzle.Vertical)
		}
	}

	b.Cells = make([][]*Cell, p.Height)
	cellID := 0
	for y := range b.Cells {
		b.Cells[y] = make([]*Cell, p.Width)
		for x := range b.Cells[y] {
			b.Cells[y][x] = &Cell{ID: cellID, Pos: puzzle.Position{X: x, Y: y}}
			b.AllCells = append(b.AllCells, b.Cells[y][x])
			cellID++
		}
	}

	numCells := p.Width * p.Height
	b.RegionMax = numCells
	if b.RegionMax < 1 {
		b.RegionMax = 1
	}

	for _, c := range b.AllCells {
		c.Region = b.Model.NewVariableWithName(minikanren.DomainRange(1, b.RegionMax), fmt.Sprintf("region_%d_%d", c.Pos.X, c.Pos.Y))
	}

	if err := b.applyRoles(p); err != nil {
		return nil, err
	}
	if err := b.applySymbols(p); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Board) newNode(kind puzzle.NodeKind, pos puzzle.Position, orientation puzzle.Orientation) *Node {
	n := &Node{ID: b.nextID, Kind: kind, Pos: pos, Orientation: orientation}
	b.nextID++
	switch {
	case kind == puzzle.IntersectionKind:
		n.OnBoundary = pos.X == 0 || pos.X == b.Width || pos.Y == 0 || pos.Y == b.Height
	case orientation == puzzle.Horizontal:
		n.OnBoundary = pos.Y == 0 || pos.Y == b.Height
	default:
		n.OnBoundary = pos.X == 0 || pos.X == b.Width
	}
	name := func(suffix string) string {
		if kind == puzzle.IntersectionKind {
			return fmt.Sprintf("I_%d_%d_%s", pos.X, pos.Y, suffix)
		}
		return fmt.Sprintf("E_%s_%d_%d_%s", orientation, pos.X, pos.Y, suffix)
	}
	boolDomain := func() minikanren.Domain { return minikanren.DomainValues(1, 2) }
	n.HasLine = b.Model.NewVariableWithName(boolDomain(), name("has_line"))
	n.SourceUsed = b.Model.NewVariableWithName(boolDomain(), name("source_used"))
	n.ExitUsed = b.Model.NewVariableWithName(boolDomain(), name("exit_used"))
	b.AllNodes = append(b.AllNodes, n)
	return n
}

// finalizeLineIndex allocates line_index variables once LineIndexMax is
// known (after all nodes exist). Called from applyRoles, which New runs
// after the node arrays are fully populated.
func (b *Board) finalizeLineIndex() {
	for _, n := range b.AllNodes {
		suffix := fmt.Sprintf("line_index_%d", n.ID)
		n.LineIndex = b.Model.NewVariableWithName(minikanren.DomainRange(1, b.LineIndexMax), suffix)
	}
}

func (b *Board) applyRoles(p *puzzle.Puzzle) error {
	b.LineIndexMax = len(b.AllNodes) + 1
	b.finalizeLineIndex()

	markSource := func(ref puzzle.NodeRef) error {
		n, err := b.Lookup(ref)
		if err != nil {
			return err
		}
		n.Source = true
		return nil
	}
	markExit := func(ref puzzle.NodeRef) error {
		n, err := b.Lookup(ref)
		if err != nil {
			return err
		}
		n.Exit = true
		return nil
	}
	markBroken := func(ref puzzle.NodeRef) error {
		n, err := b.Lookup(ref)
		if err != nil {
			return err
		}
		n.Broken = true
		return nil
	}
	markDot := func(ref puzzle.NodeRef) error {
		n, err := b.Lookup(ref)
		if err != nil {
			return err
		}
		n.Dot = true
		return nil
	}

	for _, ref := range p.Sources {
		if err := markSource(ref); err != nil {
			return err
		}
	}
	for _, ref := range p.Exits {
		if err := markExit(ref); err != nil {
			return err
		}
	}
	for _, ref := range p.Broken {
		if err := markBroken(ref); err != nil {
			return err
		}
	}
	for _, ref := range p.Dots {
		if err := markDot(ref); err != nil {
			return err
		}
	}

	for _, n := range b.AllNodes {
		if n.Source {
			b.Sources = append(b.Sources, n)
		}
		if n.Exit {
			b.Exits = append(b.Exits, n)
		}
	}
	return nil
}

func (b *Board) applySymbols(p *puzzle.Puzzle) error {
	for _, s := range p.Squares {
		c := b.Cells[s.Pos.Y][s.Pos.X]
		if c.Symbol != NoSymbol {
			return fmt.Errorf("board.New: %w: cell %s already carries a symbol", puzzle.ErrMalformedPuzzle, s.Pos)
		}
		c.Symbol = SquareSymbol
		c.Colour = s.Colour
	}
	for _, s := range p.Suns {
		c := b.Cells[s.Pos.Y][s.Pos.X]
		if c.Symbol != NoSymbol {
			return fmt.Errorf("board.New: %w: cell %s already carries a symbol", puzzle.ErrMalformedPuzzle, s.Pos)
		}
		c.Symbol = SunSymbol
		c.Colour = s.Colour
	}
	return nil
}

// Lookup resolves a puzzle.NodeRef to the materialized Node, returning an
// error wrapping puzzle.ErrMalformedPuzzle if the reference is out of
// bounds.
func (b *Board) Lookup(ref puzzle.NodeRef) (*Node, error) {
	switch ref.Kind {
	case puzzle.IntersectionKind:
		if ref.Pos.Y < 0 || ref.Pos.Y > b.Height || ref.Pos.X < 0 || ref.Pos.X > b.Width {
			return nil, fmt.Errorf("board.Lookup: %w: intersection %s out of bounds", puzzle.ErrMalformedPuzzle, ref.Pos)
		}
		return b.Intersections[ref.Pos.Y][ref.Pos.X], nil
	case puzzle.EdgeKind:
		switch ref.Orientation {
		case puzzle.Horizontal:
			if ref.Pos.Y < 0 || ref.Pos.Y > b.Height || ref.Pos.X < 0 || ref.Pos.X >= b.Width {
				return nil, fmt.Errorf("board.Lookup: %w: horizontal edge %s out of bounds", puzzle.ErrMalformedPuzzle, ref.Pos)
			}
			return b.HorizEdges[ref.Pos.Y][ref.Pos.X], nil
		case puzzle.Vertical:
			if ref.Pos.Y < 0 || ref.Pos.Y >= b.Height || ref.Pos.X < 0 || ref.Pos.X > b.Width {
				return nil, fmt.Errorf("board.Lookup: %w: vertical edge %s out of bounds", puzzle.ErrMalformedPuzzle, ref.Pos)
			}
			return b.VertEdges[ref.Pos.Y][ref.Pos.X], nil
		}
	}
	return nil, fmt.Errorf("board.Lookup: %w: unrecognized node reference %v", puzzle.ErrMalformedPuzzle, ref)
}

// Adjacent returns the nodes adjacent to n: an intersection's incident
// edges (up to 4, fewer at the grid border), or an edge's two endpoint
// intersections.
func (b *Board) Adjacent(n *Node) []*Node {
	if n.Kind == puzzle.IntersectionKind {
		x, y := n.Pos.X, n.Pos.Y
		var out []*Node
		if x > 0 {
			out = append(out, b.HorizEdges[y][x-1])
		}
		if x < b.Width {
			out = append(out, b.HorizEdges[y][x])
		}
		if y > 0 {
			out = append(out, b.VertEdges[y-1][x])
		}
		if y < b.Height {
			out = append(out, b.VertEdges[y][x])
		}
		return out
	}

	x, y := n.Pos.X, n.Pos.Y
	if n.Orientation == puzzle.Horizontal {
		return []*Node{b.Intersections[y][x], b.Intersections[y][x+1]}
	}
	return []*Node{b.Intersections[y][x], b.Intersections[y+1][x]}
}

// InteriorEdge pairs an edge with the two cells it separates.
type InteriorEdge struct {
	Edge   *Node
	C1, C2 *Cell
}

// InteriorEdges returns every edge with two adjacent cells, paired with
// those two cells, for the region-continuity constraint (§4.4).
func (b *Board) InteriorEdges() []InteriorEdge {
	var out []InteriorEdge
	for y := 0; y < b.Height; y++ {
		for x := 1; x < b.Width; x++ {
			out = append(out, InteriorEdge{b.VertEdges[y][x], b.Cells[y][x-1], b.Cells[y][x]})
		}
	}
	for y := 1; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			out = append(out, InteriorEdge{b.HorizEdges[y][x], b.Cells[y-1][x], b.Cells[y][x]})
		}
	}
	return out
}
