package battleship

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// One ship of size 4, two of 3, three of 2 and four of 1, none touching.
var validFieldText = strings.Join([]string{
	"****-***--",
	"----------",
	"***-**-**-",
	"----------",
	"**-*-*-*--",
	"----------",
	"*---------",
	"----------",
	"----------",
	"----------",
}, "\n") + "\n"

// Same fleet but the boat from A7 moved to C6, diagonal to B5 and D5.
var diagonalFieldText = strings.Join([]string{
	"****-***--",
	"----------",
	"***-**-**-",
	"----------",
	"**-*-*-*--",
	"--*-------",
	"----------",
	"----------",
	"----------",
	"----------",
}, "\n") + "\n"

func mustLoad(t *testing.T, text string) Grid {
	t.Helper()
	grid, err := LoadFieldFromText(text)
	require.NoError(t, err)
	return grid
}

func mustField(t *testing.T, text string) *Field {
	t.Helper()
	field, err := NewField(mustLoad(t, text), DefaultConfig())
	require.NoError(t, err)
	return field
}

func at(t *testing.T, notation string) Coordinates {
	t.Helper()
	c, err := ParseCoordinates(notation, DefaultGridSize)
	require.NoError(t, err)
	return c
}

func coords(t *testing.T, notations ...string) []Coordinates {
	t.Helper()
	out := make([]Coordinates, 0, len(notations))
	for _, n := range notations {
		out = append(out, at(t, n))
	}
	return out
}
