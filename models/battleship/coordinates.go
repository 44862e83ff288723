package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

// Column labels used at the text boundary. Grid sizes are capped by its length.
const columnLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Offsets of the 8 king-move neighbors, in the order they are reported.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Axis-aligned steps used when scanning or extending a ship.
var axisDirections = [4][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// Coordinates are zero-based. Col maps to the letter and Row to the number
// of the external "B7" notation.
type Coordinates struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func NewCoordinates(col, row int) Coordinates {
	return Coordinates{Col: col, Row: row}
}

// CoordinatesFromIndex is the inverse of Index.
func CoordinatesFromIndex(row, col, gridSize int) (Coordinates, error) {
	c := NewCoordinates(col, row)
	if !c.InBounds(gridSize) {
		return Coordinates{}, cerr.ErrCoordinatesOutOfBounds(col, row)
	}
	return c, nil
}

// ParseCoordinates reads a letter followed by a one-based row number, e.g. "A1" or "j10".
func ParseCoordinates(notation string, gridSize int) (Coordinates, error) {
	s := strings.ToUpper(strings.TrimSpace(notation))
	if len(s) < 2 {
		return Coordinates{}, cerr.ErrInvalidCoordinatesNotation(notation)
	}

	col := strings.IndexByte(columnLetters, s[0])
	if col < 0 {
		return Coordinates{}, cerr.ErrInvalidCoordinatesNotation(notation)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Coordinates{}, cerr.ErrInvalidCoordinatesNotation(notation)
	}

	return CoordinatesFromIndex(row-1, col, gridSize)
}

func (c Coordinates) InBounds(gridSize int) bool {
	return c.Col >= 0 && c.Col < gridSize && c.Row >= 0 && c.Row < gridSize
}

// Index returns the (row, col) pair used to address a Grid.
func (c Coordinates) Index(gridSize int) (row, col int, err error) {
	if !c.InBounds(gridSize) {
		return 0, 0, cerr.ErrCoordinatesOutOfBounds(c.Col, c.Row)
	}
	return c.Row, c.Col, nil
}

// Neighbors returns the in-bound king-move neighbors, row by row from the top left.
func (c Coordinates) Neighbors(gridSize int) []Coordinates {
	neighbors := make([]Coordinates, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := c.step(off, 1)
		if n.InBounds(gridSize) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Less orders by column first, then row.
func (c Coordinates) Less(other Coordinates) bool {
	if c.Col != other.Col {
		return c.Col < other.Col
	}
	return c.Row < other.Row
}

func (c Coordinates) String() string {
	if c.Col < 0 || c.Col >= len(columnLetters) {
		return "?" + strconv.Itoa(c.Row+1)
	}
	return string(columnLetters[c.Col]) + strconv.Itoa(c.Row+1)
}

func (c Coordinates) step(dir [2]int, k int) Coordinates {
	return Coordinates{Col: c.Col + dir[0]*k, Row: c.Row + dir[1]*k}
}
