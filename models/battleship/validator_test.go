package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

func TestValidateFleetAccepts(t *testing.T) {
	grid := mustLoad(t, validFieldText)

	ships, err := ValidateFleet(grid, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, ships, 10)

	bows := make([]string, 0, len(ships))
	histogram := map[int]int{}
	for _, ship := range ships {
		bows = append(bows, ship.Bow().String())
		histogram[ship.Size()]++
	}

	assert.Equal(t, map[int]int(DefaultFleet()), histogram)
	assert.Equal(t, []string{"A1", "F1", "A3", "E3", "H3", "A5", "D5", "F5", "H5", "A7"}, bows)
	assert.True(t, IsValidField(grid, DefaultConfig()))
}

func TestValidateFleetRejects(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expectedErr error
	}{
		{
			name:        "diagonal ships",
			text:        diagonalFieldText,
			expectedErr: cerr.ErrAdjacencyViolation,
		},
		{
			name: "missing boat",
			text: "****-***--\n----------\n***-**-**-\n----------\n**-*-*-*--\n----------\n----------\n----------\n----------\n----------\n",
			expectedErr: cerr.ErrInvalidFleetComposition,
		},
		{
			name: "extra boat",
			text: "****-***--\n----------\n***-**-**-\n----------\n**-*-*-*--\n----------\n*-*-------\n----------\n----------\n----------\n",
			expectedErr: cerr.ErrInvalidFleetComposition,
		},
		{
			name: "ship longer than four",
			text: "*****-----\n----------\n----------\n----------\n----------\n----------\n----------\n----------\n----------\n----------\n",
			expectedErr: cerr.ErrInvalidFleetComposition,
		},
		{
			name: "empty grid",
			text: "----------\n----------\n----------\n----------\n----------\n----------\n----------\n----------\n----------\n----------\n",
			expectedErr: cerr.ErrInvalidFleetComposition,
		},
		{
			name: "L shaped ship",
			text: "****-***--\n---*------\n***-**-**-\n----------\n**-*-*-*--\n----------\n*---------\n----------\n----------\n----------\n",
			expectedErr: cerr.ErrInvalidShape,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ships, err := ValidateFleet(mustLoad(t, test.text), DefaultConfig())
			assert.Nil(t, ships)
			assert.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestValidateFleetGridSizeMismatch(t *testing.T) {
	_, err := ValidateFleet(NewGrid(5), DefaultConfig())
	assert.ErrorIs(t, err, cerr.ErrInvalidConfig)
}

func TestValidateFleetCustomConfig(t *testing.T) {
	cfg := Config{GridSize: 4, Fleet: FleetRequirement{2: 1, 1: 2}}
	grid := gridFromRows(t,
		"**--",
		"---*",
		"*---",
		"----",
	)

	ships, err := ValidateFleet(grid, cfg)
	require.NoError(t, err)
	assert.Len(t, ships, 3)

	// a size the fleet does not know about
	grid = gridFromRows(t,
		"***-",
		"----",
		"*-*-",
		"----",
	)
	_, err = ValidateFleet(grid, cfg)
	assert.ErrorIs(t, err, cerr.ErrInvalidFleetComposition)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		isErr bool
	}{
		{name: "default", cfg: DefaultConfig()},
		{name: "zero grid", cfg: Config{GridSize: 0, Fleet: DefaultFleet()}, isErr: true},
		{name: "grid too wide for letters", cfg: Config{GridSize: 27, Fleet: DefaultFleet()}, isErr: true},
		{name: "no ships", cfg: Config{GridSize: 10, Fleet: FleetRequirement{}}, isErr: true},
		{name: "ship longer than grid", cfg: Config{GridSize: 3, Fleet: FleetRequirement{4: 1}}, isErr: true},
		{name: "negative count", cfg: Config{GridSize: 10, Fleet: FleetRequirement{2: -1, 1: 1}}, isErr: true},
		{name: "too many cells", cfg: Config{GridSize: 2, Fleet: FleetRequirement{1: 5}}, isErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.isErr {
				assert.ErrorIs(t, err, cerr.ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFleetRequirement(t *testing.T) {
	fleet := DefaultFleet()
	assert.Equal(t, []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}, fleet.Sizes())
	assert.Equal(t, 10, fleet.ShipCount())
	assert.Equal(t, 20, fleet.CellCount())
	assert.Equal(t, 4, fleet.MaxShipSize())
}
