// Command witnesssolve reads a puzzle description from stdin (or a file
// named by -puzzle) as JSON and prints the solved path, if one exists,
// to stdout. This is the ambient CLI driver around internal/solve; the
// core solver package never parses JSON or touches the filesystem.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/witnessline/witnessline/internal/puzzle"
	"github.com/witnessline/witnessline/internal/solve"
)

type jsonNodeRef struct {
	Kind        string `json:"kind"`        // "intersection" or "edge"
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation string `json:"orientation,omitempty"` // "h" or "v", edges only
}

func (r jsonNodeRef) toNodeRef() (puzzle.NodeRef, error) {
	pos := puzzle.Position{X: r.X, Y: r.Y}
	switch r.Kind {
	case "intersection":
		return puzzle.Intersection(pos), nil
	case "edge":
		switch r.Orientation {
		case "h":
			return puzzle.Edge(pos, puzzle.Horizontal), nil
		case "v":
			return puzzle.Edge(pos, puzzle.Vertical), nil
		default:
			return puzzle.NodeRef{}, fmt.Errorf("edge node at (%d,%d) needs orientation \"h\" or \"v\"", r.X, r.Y)
		}
	default:
		return puzzle.NodeRef{}, fmt.Errorf("unknown node kind %q", r.Kind)
	}
}

type jsonSymbol struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Colour int `json:"colour"`
}

type jsonPuzzle struct {
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Sources []jsonNodeRef `json:"sources"`
	Exits   []jsonNodeRef `json:"exits"`
	Broken  []jsonNodeRef `json:"broken"`
	Dots    []jsonNodeRef `json:"dots"`
	Squares []jsonSymbol  `json:"squares"`
	Suns    []jsonSymbol  `json:"suns"`
}

func (jp jsonPuzzle) toPuzzle() (*puzzle.Puzzle, error) {
	p := &puzzle.Puzzle{Width: jp.Width, Height: jp.Height}

	convertRefs := func(refs []jsonNodeRef) ([]puzzle.NodeRef, error) {
		out := make([]puzzle.NodeRef, len(refs))
		for i, r := range refs {
			ref, err := r.toNodeRef()
			if err != nil {
				return nil, err
			}
			out[i] = ref
		}
		return out, nil
	}

	var err error
	if p.Sources, err = convertRefs(jp.Sources); err != nil {
		return nil, err
	}
	if p.Exits, err = convertRefs(jp.Exits); err != nil {
		return nil, err
	}
	if p.Broken, err = convertRefs(jp.Broken); err != nil {
		return nil, err
	}
	if p.Dots, err = convertRefs(jp.Dots); err != nil {
		return nil, err
	}
	for _, s := range jp.Squares {
		p.Squares = append(p.Squares, puzzle.ColouredSymbol{Pos: puzzle.Position{X: s.X, Y: s.Y}, Colour: puzzle.Colour(s.Colour)})
	}
	for _, s := range jp.Suns {
		p.Suns = append(p.Suns, puzzle.ColouredSymbol{Pos: puzzle.Position{X: s.X, Y: s.Y}, Colour: puzzle.Colour(s.Colour)})
	}
	return p, nil
}

func main() {
	puzzlePath := flag.String("puzzle", "", "path to a puzzle JSON file (default: stdin)")
	flag.Parse()

	input := os.Stdin
	if *puzzlePath != "" {
		f, err := os.Open(*puzzlePath)
		if err != nil {
			log.Fatalf("witnesssolve: %v", err)
		}
		defer f.Close()
		input = f
	}

	raw, err := io.ReadAll(input)
	if err != nil {
		log.Fatalf("witnesssolve: reading puzzle: %v", err)
	}

	var jp jsonPuzzle
	if err := json.Unmarshal(raw, &jp); err != nil {
		log.Fatalf("witnesssolve: parsing puzzle JSON: %v", err)
	}

	p, err := jp.toPuzzle()
	if err != nil {
		log.Fatalf("witnesssolve: %v", err)
	}

	path, err := solve.Solve(p, solve.DefaultOptions())
	if err != nil {
		log.Fatalf("witnesssolve: %v", err)
	}
	if path == nil {
		fmt.Println("no solution")
		return
	}

	names := make([]string, len(path))
	for i, ref := range path {
		names[i] = ref.String()
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(names); err != nil {
		log.Fatalf("witnesssolve: encoding result: %v", err)
	}
}
