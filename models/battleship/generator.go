package battleship

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

const (
	DefaultMaxShipAttempts = 1000
	DefaultMaxRestarts     = 200
)

// GeneratorOptions configures random fleet placement.
type GeneratorOptions struct {
	Config          Config
	Seed            int64      // Seed for reproducible fields (0 = random)
	Rand            *rand.Rand // Rand overrides Seed when set
	MaxShipAttempts int        // Start/direction samples per ship before restarting from empty
	MaxRestarts     int        // Whole-grid restarts before giving up
	Logger          logrus.FieldLogger
}

func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		Config:          DefaultConfig(),
		Seed:            0,
		MaxShipAttempts: DefaultMaxShipAttempts,
		MaxRestarts:     DefaultMaxRestarts,
		Logger:          logrus.StandardLogger(),
	}
}

// Generator places a fleet by rejection sampling: every ship gets a random
// start and direction until it fits, and the finished grid must pass
// ValidateFleet or construction restarts from an empty grid.
type Generator struct {
	options *GeneratorOptions
	rng     *rand.Rand
	log     logrus.FieldLogger
}

func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}

	rng := options.Rand
	if rng == nil {
		seed := options.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	log := options.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Generator{
		options: options,
		rng:     rng,
		log:     log,
	}
}

// Generate returns an accepted grid and its ships, or ErrGenerationFailed once
// MaxRestarts is spent. A partially valid grid is never returned.
func (g *Generator) Generate() (Grid, []*Ship, error) {
	cfg := g.options.Config
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if g.options.MaxShipAttempts < 1 || g.options.MaxRestarts < 0 {
		return nil, nil, cerr.ErrConfig("generator attempt limits must be positive")
	}

	for restart := 0; restart <= g.options.MaxRestarts; restart++ {
		grid, err := g.placeFleet()
		if err != nil {
			g.log.WithFields(logrus.Fields{
				"restart": restart,
				"reason":  err.Error(),
			}).Debug("fleet placement exhausted, restarting from empty grid")
			continue
		}

		ships, err := ValidateFleet(grid, cfg)
		if err != nil {
			g.log.WithFields(logrus.Fields{
				"restart": restart,
				"reason":  err.Error(),
			}).Debug("placed grid rejected, restarting from empty grid")
			continue
		}

		g.log.WithFields(logrus.Fields{
			"restarts": restart,
			"ships":    len(ships),
		}).Debug("fleet placed")
		return grid, ships, nil
	}

	g.log.WithField("restarts", g.options.MaxRestarts).Warn("fleet generation failed")
	return nil, nil, cerr.ErrGenerationExhausted(g.options.MaxRestarts)
}

func (g *Generator) placeFleet() (Grid, error) {
	grid := NewGrid(g.options.Config.GridSize)

	for _, size := range g.options.Config.Fleet.Sizes() {
		if !g.placeShip(grid, size) {
			return nil, fmt.Errorf("no room for ship of size %d after %d attempts", size, g.options.MaxShipAttempts)
		}
	}
	return grid, nil
}

func (g *Generator) placeShip(grid Grid, size int) bool {
	gridSize := grid.Size()

	for attempt := 0; attempt < g.options.MaxShipAttempts; attempt++ {
		start := NewCoordinates(g.rng.Intn(gridSize), g.rng.Intn(gridSize))
		dir := axisDirections[g.rng.Intn(len(axisDirections))]

		members, ok := extendShip(grid, start, dir, size)
		if !ok {
			continue
		}

		for _, m := range members {
			grid[m.Row][m.Col] = PositionStateShipPart
		}
		return true
	}
	return false
}

// Walks size cells from start along dir. Every cell must be free and must not
// touch an already placed ship.
func extendShip(grid Grid, start Coordinates, dir [2]int, size int) ([]Coordinates, bool) {
	members := make([]Coordinates, 0, size)

	for k := 0; k < size; k++ {
		next := start.step(dir, k)
		if !next.InBounds(grid.Size()) || grid.IsOccupied(next) {
			return nil, false
		}
		if _, found := foreignNeighbor(grid, next, members); found {
			return nil, false
		}
		members = append(members, next)
	}
	return members, true
}

// GenerateField places the default fleet on a 10x10 grid. A zero seed picks a
// time based one.
func GenerateField(seed int64) (*Field, error) {
	opts := DefaultGeneratorOptions()
	opts.Seed = seed
	return NewGenerator(opts).GenerateField()
}

func (g *Generator) GenerateField() (*Field, error) {
	grid, ships, err := g.Generate()
	if err != nil {
		return nil, err
	}
	return newField(grid, ships, g.options.Config), nil
}
