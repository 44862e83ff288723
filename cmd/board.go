package main

import (
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/battleship-fleet/models/battleship"
)

const columnHeader = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Prints the grid with column letters on top and row numbers on the left.
func printBoard(w io.Writer, grid mb.Grid) {
	size := grid.Size()

	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < size; col++ {
		sb.WriteByte(columnHeader[col])
		if col < size-1 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')

	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, "%-3d", row+1)
		for col := 0; col < size; col++ {
			sb.WriteByte(mb.StateSymbol(grid[row][col]))
			if col < size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	fmt.Fprint(w, sb.String())
}
