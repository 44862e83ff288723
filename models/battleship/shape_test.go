package battleship

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

func gridFromRows(t *testing.T, rows ...string) Grid {
	t.Helper()
	grid, err := LoadGridFromText(strings.Join(rows, "\n"), len(rows))
	require.NoError(t, err)
	return grid
}

func TestDetectShip(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		origin   Coordinates
		expected []Coordinates
		isVert   bool
	}{
		{
			name:     "horizontal from the middle",
			rows:     []string{"-----", "-***-", "-----", "-----", "-----"},
			origin:   NewCoordinates(2, 1),
			expected: []Coordinates{{1, 1}, {2, 1}, {3, 1}},
		},
		{
			name:     "vertical from the end",
			rows:     []string{"*----", "*----", "*----", "*----", "-----"},
			origin:   NewCoordinates(0, 3),
			expected: []Coordinates{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
			isVert:   true,
		},
		{
			name:     "single cell",
			rows:     []string{"-----", "-----", "--*--", "-----", "-----"},
			origin:   NewCoordinates(2, 2),
			expected: []Coordinates{{2, 2}},
		},
		{
			name:     "ship against the far edge",
			rows:     []string{"-----", "-----", "-----", "-----", "---**"},
			origin:   NewCoordinates(4, 4),
			expected: []Coordinates{{3, 4}, {4, 4}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			grid := gridFromRows(t, test.rows...)
			before := grid.Clone()

			ship, err := DetectShip(grid, test.origin)
			require.NoError(t, err)
			assert.Equal(t, test.expected, ship.Members())
			assert.Equal(t, test.expected[0], ship.Bow())
			assert.Equal(t, len(test.expected), ship.Size())
			assert.Equal(t, test.isVert, ship.IsVertical())
			assert.Equal(t, before, grid)
		})
	}
}

func TestDetectShipHitAndSunkCellsCount(t *testing.T) {
	grid := NewGrid(5)
	grid[1][1] = PositionStateHit
	grid[1][2] = PositionStateShipPart
	grid[1][3] = PositionStateSunk

	ship, err := DetectShip(grid, NewCoordinates(2, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, ship.Size())
}

func TestDetectShipRejects(t *testing.T) {
	tests := []struct {
		name        string
		rows        []string
		origin      Coordinates
		expectedErr error
	}{
		{
			name:        "L shape from the corner",
			rows:        []string{"*----", "*----", "**---", "-----", "-----"},
			origin:      NewCoordinates(0, 2),
			expectedErr: cerr.ErrAdjacencyViolation,
		},
		{
			name:        "L shape from the long arm",
			rows:        []string{"*----", "*----", "**---", "-----", "-----"},
			origin:      NewCoordinates(0, 0),
			expectedErr: cerr.ErrAdjacencyViolation,
		},
		{
			name:        "diagonal neighbor",
			rows:        []string{"**---", "--*--", "-----", "-----", "-----"},
			origin:      NewCoordinates(0, 0),
			expectedErr: cerr.ErrAdjacencyViolation,
		},
		{
			name:        "parallel ships side by side",
			rows:        []string{"***--", "***--", "-----", "-----", "-----"},
			origin:      NewCoordinates(1, 0),
			expectedErr: cerr.ErrAdjacencyViolation,
		},
		{
			name:        "empty origin",
			rows:        []string{"-----", "-----", "-----", "-----", "-----"},
			origin:      NewCoordinates(1, 1),
			expectedErr: cerr.ErrInvalidShape,
		},
		{
			name:        "origin out of bound",
			rows:        []string{"*----", "-----", "-----", "-----", "-----"},
			origin:      NewCoordinates(5, 0),
			expectedErr: cerr.ErrInvalidShape,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ship, err := DetectShip(gridFromRows(t, test.rows...), test.origin)
			assert.Nil(t, ship)
			assert.ErrorIs(t, err, test.expectedErr)
		})
	}
}
