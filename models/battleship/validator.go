package battleship

import (
	"slices"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

// ValidateFleet scans the grid row by row and detects every ship once. The grid
// is accepted only if every ship is a straight isolated run and the sizes match
// the fleet requirement exactly. The detected ships are returned in scan order.
func ValidateFleet(grid Grid, config Config) ([]*Ship, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := grid.validate(config.GridSize); err != nil {
		return nil, err
	}

	maxSize := config.Fleet.MaxShipSize()
	counts := make(map[int]int, len(config.Fleet))
	ships := make([]*Ship, 0, config.Fleet.ShipCount())
	attributed := NewGrid(config.GridSize)

	for row := 0; row < config.GridSize; row++ {
		for col := 0; col < config.GridSize; col++ {
			if !IsShipState(grid[row][col]) || attributed[row][col] != 0 {
				continue
			}

			ship, err := DetectShip(grid, NewCoordinates(col, row))
			if err != nil {
				return nil, err
			}
			if ship.Size() < 1 || ship.Size() > maxSize {
				return nil, cerr.ErrShipSizeNotAllowed(ship.Size())
			}

			counts[ship.Size()]++
			ships = append(ships, ship)
			for _, m := range ship.members {
				attributed[m.Row][m.Col] = 1
			}
		}
	}

	if err := compareFleet(counts, config.Fleet); err != nil {
		return nil, err
	}
	return ships, nil
}

// IsValidField is ValidateFleet reduced to a verdict.
func IsValidField(grid Grid, config Config) bool {
	_, err := ValidateFleet(grid, config)
	return err == nil
}

func compareFleet(counts map[int]int, fleet FleetRequirement) error {
	sizes := make([]int, 0, len(fleet)+len(counts))
	for size := range fleet {
		sizes = append(sizes, size)
	}
	for size := range counts {
		if _, prs := fleet[size]; !prs {
			sizes = append(sizes, size)
		}
	}
	slices.Sort(sizes)

	for _, size := range sizes {
		if counts[size] != fleet[size] {
			return cerr.ErrFleetCountMismatch(size, fleet[size], counts[size])
		}
	}
	return nil
}
