package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mb "github.com/saeidalz13/battleship-fleet/models/battleship"
)

func init() {
	validateCmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a text field holds a legal fleet",
		Long: `Read a field of 10 lines with 10 characters each, '*' for a ship cell
and '-' for water, and check the ship shapes, spacing and fleet composition.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	grid, err := loadGridFile(args[0])
	if err != nil {
		return err
	}

	ships, err := mb.ValidateFleet(grid, mb.DefaultConfig())
	if err != nil {
		return fmt.Errorf("invalid field %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "valid field: %d ships\n", len(ships))
	for _, ship := range ships {
		fmt.Fprintf(out, "  size %d at %s\n", ship.Size(), ship.Bow())
	}
	return nil
}

func loadGridFile(path string) (mb.Grid, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return mb.LoadFieldFromText(string(text))
}
