package solve

import (
	"fmt"

	"github.com/witnessline/witnessline/internal/board"
	"github.com/witnessline/witnessline/internal/puzzle"
	"github.com/witnessline/witnessline/pkg/minikanren"
)

// colourMax is the shared domain universe every colour-valued variable
// (region_square_colours entries, and any constant compared against one)
// must use, matching puzzle.NumColours.
const colourMax = puzzle.NumColours

// buildSymbols wires §4.5: squares assert a colour into the uninterpreted
// region_square_colours array at their cell's region index; suns require
// each colour appearing on a sun, within each region, to have even
// cardinality in {0,2}. Both are skipped for a degenerate grid, since
// there are no cells or regions to constrain.
func buildSymbols(b *board.Board) error {
	if b.Width == 0 || b.Height == 0 {
		return nil
	}

	regionColours := make([]*minikanren.FDVariable, b.RegionMax)
	for r := range regionColours {
		regionColours[r] = b.Model.NewVariableWithName(minikanren.DomainRange(1, colourMax), fmt.Sprintf("region_%d_colour", r))
	}

	for _, c := range b.AllCells {
		if c.Symbol != board.SquareSymbol {
			continue
		}
		colourConst := constInUniverse(b.Model, colourMax, encodeOffsetColour(c.Colour), fmt.Sprintf("square_%d_colour", c.ID))
		ve, err := NewVarElement(c.Region, regionColours, colourConst)
		if err != nil {
			return fmt.Errorf("solve: square colour constraint for cell %d: %w", c.ID, err)
		}
		b.Model.AddConstraint(ve)
	}

	if err := buildSunConstraints(b); err != nil {
		return err
	}
	return nil
}

// encodeOffsetColour maps a puzzle.Colour (1-based already) directly onto
// the shared colourMax domain: no further offset is needed since
// puzzle.Colour is already a positive 1..NumColours value.
func encodeOffsetColour(c puzzle.Colour) int { return int(c) }

// buildSunConstraints enforces, for every colour appearing on at least
// one sun, that each region's count of cells carrying a sun or square of
// that colour is 0 or 2.
func buildSunConstraints(b *board.Board) error {
	colours := map[puzzle.Colour][]*board.Cell{}
	for _, c := range b.AllCells {
		if c.Symbol == board.SunSymbol {
			colours[c.Colour] = append(colours[c.Colour], c)
		}
	}
	if len(colours) == 0 {
		return nil
	}

	// All symbol-carrying cells of a sun's colour (squares included,
	// matching the rule that a square of the same colour also counts
	// toward a region's cardinality for that colour) participate.
	carriers := map[puzzle.Colour][]*board.Cell{}
	for colour := range colours {
		for _, c := range b.AllCells {
			if c.Symbol != board.NoSymbol && c.Colour == colour {
				carriers[colour] = append(carriers[colour], c)
			}
		}
	}

	for colour, cells := range carriers {
		for r := 0; r < b.RegionMax; r++ {
			regionConst := constInUniverse(b.Model, b.RegionMax, encodeOffset(r), fmt.Sprintf("sun_region_%d_colour_%d", r, int(colour)))
			inRegionBools := make([]*minikanren.FDVariable, len(cells))
			for i, c := range cells {
				b2 := newBoolVar(b.Model, fmt.Sprintf("cell_%d_in_region_%d", c.ID, r))
				eq, err := minikanren.NewEqualityReified(c.Region, regionConst, b2)
				if err != nil {
					return fmt.Errorf("solve: sun region membership for cell %d region %d: %w", c.ID, r, err)
				}
				b.Model.AddConstraint(eq)
				inRegionBools[i] = b2
			}

			countVar := b.Model.NewVariableWithName(minikanren.DomainRange(1, len(inRegionBools)+1), fmt.Sprintf("sun_count_region_%d_colour_%d", r, int(colour)))
			count, err := minikanren.NewCount(b.Model, inRegionBools, boolTrue, countVar)
			if err != nil {
				return fmt.Errorf("solve: sun cardinality count for region %d colour %d: %w", r, int(colour), err)
			}
			b.Model.AddConstraint(count)

			allowed := []int{encodeOffset(0)}
			if len(inRegionBools) >= 2 {
				allowed = append(allowed, encodeOffset(2))
			}
			cardinalityDomain := minikanren.NewBitSetDomainFromValues(len(inRegionBools)+1, allowed)
			countVar.SetDomain(countVar.Domain().Intersect(cardinalityDomain))
		}
	}
	return nil
}
