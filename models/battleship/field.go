package battleship

import (
	"github.com/dolthub/swiss"
	"github.com/google/uuid"
)

type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota
	ShotHit
	ShotSunk
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

type ShotResult struct {
	Coordinates Coordinates   `json:"coordinates"`
	Outcome     ShotOutcome   `json:"outcome"`
	Sunk        []Coordinates `json:"sunk,omitempty"`

	// Repeated is set when the position had already been shot; nothing changed.
	Repeated bool `json:"repeated"`
}

// Field is an accepted grid together with its ships. It is the only place
// where position states and ship hits change, through ShootAt.
type Field struct {
	Uuid string

	config      Config
	grid        Grid
	ships       []*Ship
	owners      *swiss.Map[Coordinates, *Ship]
	hits        *swiss.Map[Coordinates, []Coordinates] // keyed by ship bow
	active      *swiss.Map[Coordinates, *Ship]         // keyed by ship bow
	sunkenShips int
}

// NewField validates grid against config and wraps it. The grid is copied.
func NewField(grid Grid, config Config) (*Field, error) {
	ships, err := ValidateFleet(grid, config)
	if err != nil {
		return nil, err
	}
	return newField(grid.Clone(), ships, config), nil
}

func newField(grid Grid, ships []*Ship, config Config) *Field {
	cellCount := uint32(config.Fleet.CellCount())
	shipCount := uint32(len(ships))

	f := &Field{
		Uuid:   uuid.NewString()[:6],
		config: config,
		grid:   grid,
		ships:  ships,
		owners: swiss.NewMap[Coordinates, *Ship](cellCount),
		hits:   swiss.NewMap[Coordinates, []Coordinates](shipCount),
		active: swiss.NewMap[Coordinates, *Ship](shipCount),
	}

	for _, ship := range ships {
		f.active.Put(ship.bow, ship)
		hits := make([]Coordinates, 0, ship.Size())

		for _, m := range ship.members {
			f.owners.Put(m, ship)
			if state := grid[m.Row][m.Col]; state == PositionStateHit || state == PositionStateSunk {
				hits = append(hits, m)
			}
		}

		f.hits.Put(ship.bow, hits)
		if len(hits) == ship.Size() {
			f.sink(ship)
		}
	}
	return f
}

func (f *Field) Config() Config {
	return f.config
}

// Grid returns a copy of the current position states.
func (f *Field) Grid() Grid {
	return f.grid.Clone()
}

func (f *Field) Ships() []*Ship {
	return append([]*Ship(nil), f.ships...)
}

func (f *Field) ShipAt(c Coordinates) (*Ship, bool) {
	return f.owners.Get(c)
}

// Hits returns the hit members of ship in the order they were hit.
func (f *Field) Hits(ship *Ship) []Coordinates {
	hits, _ := f.hits.Get(ship.bow)
	return append([]Coordinates(nil), hits...)
}

func (f *Field) SunkenShips() int {
	return f.sunkenShips
}

func (f *Field) ShipsRemaining() int {
	return f.active.Count()
}

func (f *Field) IsFleetDestroyed() bool {
	return f.active.Count() == 0
}

// ShootAt resolves a shot. Empty becomes Miss. ShipPart becomes Hit and is
// added to its ship's hits; on the last hit every member becomes Sunk and
// the empty cells around the ship become Miss. Shooting a position that was
// already shot reports its state again without changing anything.
func (f *Field) ShootAt(c Coordinates) (ShotResult, error) {
	state, err := f.grid.Get(c)
	if err != nil {
		return ShotResult{}, err
	}

	result := ShotResult{Coordinates: c}

	switch state {
	case PositionStateEmpty:
		f.grid[c.Row][c.Col] = PositionStateMiss
		result.Outcome = ShotMiss

	case PositionStateMiss:
		result.Outcome = ShotMiss
		result.Repeated = true

	case PositionStateHit:
		result.Outcome = ShotHit
		result.Repeated = true

	case PositionStateSunk:
		result.Outcome = ShotSunk
		result.Repeated = true
		if ship, prs := f.owners.Get(c); prs {
			result.Sunk = ship.Members()
		}

	case PositionStateShipPart:
		f.grid[c.Row][c.Col] = PositionStateHit
		ship, prs := f.owners.Get(c)
		if !prs {
			// unreachable for a validated grid
			result.Outcome = ShotHit
			return result, nil
		}

		hits, _ := f.hits.Get(ship.bow)
		hits = append(hits, c)
		f.hits.Put(ship.bow, hits)

		if len(hits) < ship.Size() {
			result.Outcome = ShotHit
			return result, nil
		}

		f.sink(ship)
		result.Outcome = ShotSunk
		result.Sunk = ship.Members()
	}

	return result, nil
}

// Marks every member Sunk and splashes the empty cells around them.
func (f *Field) sink(ship *Ship) {
	for _, m := range ship.members {
		f.grid[m.Row][m.Col] = PositionStateSunk
	}
	for _, m := range ship.members {
		for _, n := range m.Neighbors(f.grid.Size()) {
			if f.grid[n.Row][n.Col] == PositionStateEmpty && !ship.Contains(n) {
				f.grid[n.Row][n.Col] = PositionStateMiss
			}
		}
	}

	if f.active.Delete(ship.bow) {
		f.sunkenShips++
	}
}

func (f *Field) PlayerView() Grid {
	return RenderPlayerView(f.grid)
}

func (f *Field) OpponentView() Grid {
	return RenderOpponentView(f.grid)
}
