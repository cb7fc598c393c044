// Package puzzle defines the input data model for witnessline boards:
// positions, node and edge references, coloured symbols, and the Puzzle
// value accepted by internal/solve.
package puzzle

import "fmt"

// Position is a shared coordinate used by intersections, edges, and cells.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Orientation distinguishes horizontal from vertical edges.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "H"
	}
	return "V"
}

// NodeKind tags a NodeRef as an intersection or an edge.
type NodeKind int

const (
	IntersectionKind NodeKind = iota
	EdgeKind
)

// NodeRef names a node (intersection or edge) by position, the way the
// puzzle's role lists (sources, exits, broken, dots) reference it.
type NodeRef struct {
	Kind        NodeKind
	Pos         Position
	Orientation Orientation // meaningful only when Kind == EdgeKind
}

// Intersection builds a NodeRef naming the intersection at pos.
func Intersection(pos Position) NodeRef {
	return NodeRef{Kind: IntersectionKind, Pos: pos}
}

// Edge builds a NodeRef naming the edge at pos with the given orientation.
func Edge(pos Position, o Orientation) NodeRef {
	return NodeRef{Kind: EdgeKind, Pos: pos, Orientation: o}
}

func (n NodeRef) String() string {
	if n.Kind == IntersectionKind {
		return n.Pos.String()
	}
	return fmt.Sprintf("%s%s", n.Orientation, n.Pos)
}

// Colour is one of the ten named palette values a symbol can carry.
type Colour int

const (
	Black Colour = iota + 1
	White
	Pink
	Red
	Orange
	Yellow
	Green
	Turquoise
	Blue
	Purple
)

// NumColours is the size of the fixed palette.
const NumColours = 10

var colourNames = map[Colour]string{
	Black: "black", White: "white", Pink: "pink", Red: "red", Orange: "orange",
	Yellow: "yellow", Green: "green", Turquoise: "turquoise", Blue: "blue", Purple: "purple",
}

func (c Colour) String() string {
	if name, ok := colourNames[c]; ok {
		return name
	}
	return fmt.Sprintf("colour(%d)", int(c))
}

// Valid reports whether c is one of the ten palette colours.
func (c Colour) Valid() bool {
	return c >= Black && c <= Purple
}

// ColouredSymbol pairs a cell position with the colour of the square or
// sun carried there.
type ColouredSymbol struct {
	Pos    Position
	Colour Colour
}

// Puzzle is the input to Solve: board dimensions, role lists, and symbols.
type Puzzle struct {
	Width, Height int
	Sources       []NodeRef
	Exits         []NodeRef
	Broken        []NodeRef
	Dots          []NodeRef
	Squares       []ColouredSymbol
	Suns          []ColouredSymbol
}

// Validate reports the malformed-puzzle errors named in the error handling
// design: out-of-bounds positions, an edge orientation incompatible with
// its position's shape bounds, or a symbol on a non-existent cell. It does
// not check semantic constraints (those are the solver's job).
func (p *Puzzle) Validate() error {
	if p.Width < 0 || p.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrMalformedPuzzle, p.Width, p.Height)
	}
	checkNode := func(ref NodeRef, list string) error {
		switch ref.Kind {
		case IntersectionKind:
			if ref.Pos.X < 0 || ref.Pos.X > p.Width || ref.Pos.Y < 0 || ref.Pos.Y > p.Height {
				return fmt.Errorf("%w: %s intersection %s out of bounds for %dx%d grid", ErrMalformedPuzzle, list, ref.Pos, p.Width, p.Height)
			}
		case EdgeKind:
			switch ref.Orientation {
			case Horizontal:
				if ref.Pos.X < 0 || ref.Pos.X >= p.Width || ref.Pos.Y < 0 || ref.Pos.Y > p.Height {
					return fmt.Errorf("%w: %s horizontal edge %s out of bounds for %dx%d grid", ErrMalformedPuzzle, list, ref.Pos, p.Width, p.Height)
				}
			case Vertical:
				if ref.Pos.X < 0 || ref.Pos.X > p.Width || ref.Pos.Y < 0 || ref.Pos.Y >= p.Height {
					return fmt.Errorf("%w: %s vertical edge %s out of bounds for %dx%d grid", ErrMalformedPuzzle, list, ref.Pos, p.Width, p.Height)
				}
			default:
				return fmt.Errorf("%w: %s edge %s has unknown orientation", ErrMalformedPuzzle, list, ref.Pos)
			}
		default:
			return fmt.Errorf("%w: %s entry has unknown node kind", ErrMalformedPuzzle, list)
		}
		return nil
	}
	lists := []struct {
		name string
		refs []NodeRef
	}{
		{"source", p.Sources}, {"exit", p.Exits}, {"broken", p.Broken}, {"dot", p.Dots},
	}
	for _, l := range lists {
		for _, ref := range l.refs {
			if err := checkNode(ref, l.name); err != nil {
				return err
			}
		}
	}
	checkSymbol := func(sym ColouredSymbol, list string) error {
		if sym.Pos.X < 0 || sym.Pos.X >= p.Width || sym.Pos.Y < 0 || sym.Pos.Y >= p.Height {
			return fmt.Errorf("%w: %s symbol at %s references a non-existent cell in %dx%d grid", ErrMalformedPuzzle, list, sym.Pos, p.Width, p.Height)
		}
		if !sym.Colour.Valid() {
			return fmt.Errorf("%w: %s symbol at %s has invalid colour %d", ErrMalformedPuzzle, list, sym.Pos, int(sym.Colour))
		}
		return nil
	}
	for _, s := range p.Squares {
		if err := checkSymbol(s, "square"); err != nil {
			return err
		}
	}
	for _, s := range p.Suns {
		if err := checkSymbol(s, "sun"); err != nil {
			return err
		}
	}
	return nil
}
