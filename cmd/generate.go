package main

import (
	"fmt"

	"github.com/spf13/cobra"

	mb "github.com/saeidalz13/battleship-fleet/models/battleship"
)

var (
	plainOutput bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random legal field",
		Long: `Generate a random 10x10 field holding one ship of size 4, two of size 3,
three of size 2 and four of size 1, none of them touching.

Examples:
  battleship generate
  battleship generate --seed 42 --plain > field.txt`,
		RunE: runGenerate,
	}

	genCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print the raw '*'/'-' grid, loadable by validate")

	rootCmd.AddCommand(genCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	field, err := mb.NewGenerator(generatorOptions()).GenerateField()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if plainOutput {
		fmt.Fprint(out, field.PlayerView().Text())
		return nil
	}

	fmt.Fprintf(out, "field %s\n\n", field.Uuid)
	printBoard(out, field.PlayerView())
	return nil
}
