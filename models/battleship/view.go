package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

// RenderPlayerView shows everything, ships included.
func RenderPlayerView(grid Grid) Grid {
	return grid.Clone()
}

// RenderOpponentView hides intact ship parts.
func RenderOpponentView(grid Grid) Grid {
	view := grid.Clone()
	for _, row := range view {
		for col, state := range row {
			if state == PositionStateShipPart {
				row[col] = PositionStateEmpty
			}
		}
	}
	return view
}

// LoadFieldFromText reads a 10x10 grid of '*' (ship) and '-' (empty).
// The result is not validated; use ValidateFleet or NewField for that.
func LoadFieldFromText(text string) (Grid, error) {
	return LoadGridFromText(text, DefaultGridSize)
}

func LoadGridFromText(text string, gridSize int) (Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != gridSize {
		return nil, cerr.ErrMalformedLineCount(gridSize, len(lines))
	}

	grid := NewGrid(gridSize)
	for row, line := range lines {
		if len(line) != gridSize {
			return nil, cerr.ErrMalformedLine(row+1, "wrong number of columns")
		}
		for col := 0; col < gridSize; col++ {
			switch line[col] {
			case SymbolShipPart:
				grid[row][col] = PositionStateShipPart
			case SymbolEmpty:
				grid[row][col] = PositionStateEmpty
			default:
				return nil, cerr.ErrMalformedLine(row+1, "unexpected symbol "+string(line[col]))
			}
		}
	}
	return grid, nil
}
