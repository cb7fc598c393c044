package solve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/witnessline/witnessline/internal/puzzle"
)

// These cover the seven seed scenarios enumerated for the solver: each
// names a small hand-built puzzle and the outcome a correct backend
// must produce.

func TestSeed1_MinimalSAT(t *testing.T) {
	p := &puzzle.Puzzle{
		Width:   0,
		Height:  0,
		Sources: []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 0, Y: 0})},
		Exits:   []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 0, Y: 0})},
	}
	path, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 0, Y: 0})}, path)
}

func TestSeed2_SimpleOneByOneWithDot(t *testing.T) {
	p := &puzzle.Puzzle{
		Width:   1,
		Height:  1,
		Sources: []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 0, Y: 0})},
		Exits:   []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 1, Y: 1})},
		Dots:    []puzzle.NodeRef{puzzle.Edge(puzzle.Position{X: 0, Y: 0}, puzzle.Vertical)},
	}
	path, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, path, "expected a path to exist")

	want := []puzzle.NodeRef{
		puzzle.Intersection(puzzle.Position{X: 0, Y: 0}),
		puzzle.Edge(puzzle.Position{X: 0, Y: 0}, puzzle.Vertical),
		puzzle.Intersection(puzzle.Position{X: 0, Y: 1}),
		puzzle.Edge(puzzle.Position{X: 0, Y: 1}, puzzle.Horizontal),
		puzzle.Intersection(puzzle.Position{X: 1, Y: 1}),
	}
	require.Equal(t, want, path)
}

func TestSeed3_DeadEndByDot(t *testing.T) {
	p := &puzzle.Puzzle{
		Width:   1,
		Height:  1,
		Sources: []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 0, Y: 0})},
		Exits:   []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 1, Y: 1})},
		Broken:  []puzzle.NodeRef{puzzle.Edge(puzzle.Position{X: 1, Y: 0}, puzzle.Vertical)},
		Dots:    []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 1, Y: 0})},
	}
	path, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	require.Nil(t, path)
}

func TestSeed4_TwoSquareRegionSAT(t *testing.T) {
	p := &puzzle.Puzzle{
		Width:   1,
		Height:  2,
		Sources: []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 0, Y: 1})},
		Exits:   []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 1, Y: 1})},
		Squares: []puzzle.ColouredSymbol{
			{Pos: puzzle.Position{X: 0, Y: 0}, Colour: puzzle.Black},
			{Pos: puzzle.Position{X: 0, Y: 1}, Colour: puzzle.White},
		},
	}
	path, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, path, "expected some path separating the two squares")
}

func TestSeed5_TwoSquareRegionUNSAT(t *testing.T) {
	p := &puzzle.Puzzle{
		Width:   1,
		Height:  2,
		Sources: []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 0, Y: 1})},
		Exits:   []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 1, Y: 1})},
		Broken:  []puzzle.NodeRef{puzzle.Edge(puzzle.Position{X: 0, Y: 1}, puzzle.Horizontal)},
		Squares: []puzzle.ColouredSymbol{
			{Pos: puzzle.Position{X: 0, Y: 0}, Colour: puzzle.Black},
			{Pos: puzzle.Position{X: 0, Y: 1}, Colour: puzzle.White},
		},
	}
	path, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	require.Nil(t, path)
}

func TestSeed6_TwoSunSAT(t *testing.T) {
	p := &puzzle.Puzzle{
		Width:   1,
		Height:  2,
		Sources: []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 0, Y: 1})},
		Exits:   []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 1, Y: 1})},
		Suns: []puzzle.ColouredSymbol{
			{Pos: puzzle.Position{X: 0, Y: 0}, Colour: puzzle.Orange},
			{Pos: puzzle.Position{X: 0, Y: 1}, Colour: puzzle.Orange},
		},
	}
	path, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, path, "expected a path keeping both orange suns in one region")
}

func TestSeed7_TwoSunUNSAT(t *testing.T) {
	p := &puzzle.Puzzle{
		Width:   1,
		Height:  2,
		Sources: []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 0, Y: 2})},
		Exits:   []puzzle.NodeRef{puzzle.Intersection(puzzle.Position{X: 1, Y: 0})},
		Dots:    []puzzle.NodeRef{puzzle.Edge(puzzle.Position{X: 0, Y: 1}, puzzle.Horizontal)},
		Suns: []puzzle.ColouredSymbol{
			{Pos: puzzle.Position{X: 0, Y: 0}, Colour: puzzle.Orange},
			{Pos: puzzle.Position{X: 0, Y: 1}, Colour: puzzle.Orange},
		},
	}
	path, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	require.Nil(t, path)
}
