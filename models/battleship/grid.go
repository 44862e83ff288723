package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

const (
	PositionStateEmpty uint8 = iota
	PositionStateShipPart
	PositionStateHit
	PositionStateMiss
	PositionStateSunk
)

// Text symbols of each position state.
const (
	SymbolEmpty    byte = '-'
	SymbolShipPart byte = '*'
	SymbolHit      byte = '+'
	SymbolMiss     byte = 'X'
	SymbolSunk     byte = 'Y'
)

// Grid is indexed as grid[row][col].
type Grid [][]uint8

// Creates a new default grid
// All indexes are zero/PositionStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]uint8, gridSize)
	}
	return grid
}

func (g Grid) Size() int {
	return len(g)
}

func (g Grid) Get(c Coordinates) (uint8, error) {
	row, col, err := c.Index(g.Size())
	if err != nil {
		return PositionStateEmpty, err
	}
	return g[row][col], nil
}

func (g Grid) Set(c Coordinates, state uint8) error {
	row, col, err := c.Index(g.Size())
	if err != nil {
		return err
	}
	g[row][col] = state
	return nil
}

// IsOccupied reports whether a ship, intact or not, covers c.
// Out of bound coordinates are never occupied.
func (g Grid) IsOccupied(c Coordinates) bool {
	state, err := g.Get(c)
	if err != nil {
		return false
	}
	return IsShipState(state)
}

func (g Grid) OccupiedCount() int {
	count := 0
	for _, row := range g {
		for _, state := range row {
			if IsShipState(state) {
				count++
			}
		}
	}
	return count
}

func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for i, row := range g {
		clone[i] = append([]uint8(nil), row...)
	}
	return clone
}

// Text renders one line per row, one symbol per cell.
func (g Grid) Text() string {
	var sb strings.Builder
	for _, row := range g {
		for _, state := range row {
			sb.WriteByte(StateSymbol(state))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Checks that the grid is square and holds known states only.
func (g Grid) validate(gridSize int) error {
	if len(g) != gridSize {
		return cerr.ErrGridSizeMismatch(gridSize, len(g))
	}
	for _, row := range g {
		if len(row) != gridSize {
			return cerr.ErrGridSizeMismatch(gridSize, len(row))
		}
		for _, state := range row {
			if state > PositionStateSunk {
				return cerr.ErrConfig("unknown position state in grid")
			}
		}
	}
	return nil
}

func IsShipState(state uint8) bool {
	return state == PositionStateShipPart || state == PositionStateHit || state == PositionStateSunk
}

func StateSymbol(state uint8) byte {
	switch state {
	case PositionStateShipPart:
		return SymbolShipPart
	case PositionStateHit:
		return SymbolHit
	case PositionStateMiss:
		return SymbolMiss
	case PositionStateSunk:
		return SymbolSunk
	default:
		return SymbolEmpty
	}
}
