package battleship

import (
	"slices"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

const (
	DefaultGridSize = 10
	maxGridSize     = len(columnLetters)
)

// FleetRequirement maps a ship size to the number of ships of that size.
type FleetRequirement map[int]int

// DefaultFleet is one battleship, two cruisers, three destroyers and four boats.
func DefaultFleet() FleetRequirement {
	return FleetRequirement{4: 1, 3: 2, 2: 3, 1: 4}
}

// Sizes lists every ship to place, largest first.
func (f FleetRequirement) Sizes() []int {
	sizes := make([]int, 0, f.ShipCount())
	for size, count := range f {
		for i := 0; i < count; i++ {
			sizes = append(sizes, size)
		}
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes
}

func (f FleetRequirement) ShipCount() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

func (f FleetRequirement) CellCount() int {
	total := 0
	for size, count := range f {
		total += size * count
	}
	return total
}

func (f FleetRequirement) MaxShipSize() int {
	maxSize := 0
	for size, count := range f {
		if count > 0 && size > maxSize {
			maxSize = size
		}
	}
	return maxSize
}

type Config struct {
	GridSize int
	Fleet    FleetRequirement
}

func DefaultConfig() Config {
	return Config{
		GridSize: DefaultGridSize,
		Fleet:    DefaultFleet(),
	}
}

func (c Config) Validate() error {
	if c.GridSize < 1 || c.GridSize > maxGridSize {
		return cerr.ErrConfig("grid size must be between 1 and 26")
	}
	if len(c.Fleet) == 0 || c.Fleet.ShipCount() == 0 {
		return cerr.ErrConfig("fleet has no ships")
	}
	for size, count := range c.Fleet {
		if size < 1 || size > c.GridSize {
			return cerr.ErrConfig("ship size must fit in the grid")
		}
		if count < 0 {
			return cerr.ErrConfig("ship count must not be negative")
		}
	}
	if c.Fleet.CellCount() > c.GridSize*c.GridSize {
		return cerr.ErrConfig("fleet does not fit in the grid")
	}
	return nil
}
