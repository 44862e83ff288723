package battleship

import (
	"slices"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

// DetectShip reconstructs the straight ship covering origin. The ship runs along
// whichever axis gives the longer contiguous run through origin; a single cell
// counts as horizontal. It fails if origin is not a ship cell or if any member
// touches an occupied cell outside the run, which is how L shapes and touching
// ships are rejected. The grid is never modified.
func DetectShip(grid Grid, origin Coordinates) (*Ship, error) {
	if !grid.IsOccupied(origin) {
		return nil, cerr.ErrNotShipPosition(origin.Col, origin.Row)
	}

	horizontal := append(scanRun(grid, origin, axisDirections[0]), scanRun(grid, origin, axisDirections[1])...)
	vertical := append(scanRun(grid, origin, axisDirections[2]), scanRun(grid, origin, axisDirections[3])...)

	members := append([]Coordinates{origin}, horizontal...)
	if len(vertical) > len(horizontal) {
		members = append([]Coordinates{origin}, vertical...)
	}

	for _, member := range members {
		if foreign, found := foreignNeighbor(grid, member, members); found {
			return nil, cerr.ErrShipTouchesForeign(foreign.Col, foreign.Row)
		}
	}

	return NewShip(members), nil
}

// Collects the occupied cells following origin in one direction, origin excluded.
func scanRun(grid Grid, origin Coordinates, dir [2]int) []Coordinates {
	run := make([]Coordinates, 0, 3)
	for k := 1; ; k++ {
		next := origin.step(dir, k)
		if !grid.IsOccupied(next) {
			return run
		}
		run = append(run, next)
	}
}

// Returns the first occupied neighbor of c that is not in allowed.
func foreignNeighbor(grid Grid, c Coordinates, allowed []Coordinates) (Coordinates, bool) {
	for _, n := range c.Neighbors(grid.Size()) {
		if grid.IsOccupied(n) && !slices.Contains(allowed, n) {
			return n, true
		}
	}
	return Coordinates{}, false
}
