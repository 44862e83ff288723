package battleship

import "slices"

// Ship is a straight run of cells. Its bow, the smallest member, identifies it.
// Hits are tracked by the Field that owns the ship.
type Ship struct {
	bow     Coordinates
	members []Coordinates
}

func NewShip(members []Coordinates) *Ship {
	sorted := slices.Clone(members)
	slices.SortFunc(sorted, func(a, b Coordinates) int {
		if a == b {
			return 0
		}
		if a.Less(b) {
			return -1
		}
		return 1
	})

	return &Ship{
		bow:     sorted[0],
		members: sorted,
	}
}

func (sh *Ship) Bow() Coordinates {
	return sh.bow
}

func (sh *Ship) Size() int {
	return len(sh.members)
}

// Members returns a copy of the ship cells ordered from the bow.
func (sh *Ship) Members() []Coordinates {
	return slices.Clone(sh.members)
}

func (sh *Ship) Contains(c Coordinates) bool {
	return slices.Contains(sh.members, c)
}

func (sh *Ship) IsVertical() bool {
	return len(sh.members) > 1 && sh.members[0].Col == sh.members[1].Col
}
