package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mb "github.com/saeidalz13/battleship-fleet/models/battleship"
)

var (
	fieldFile string
)

func init() {
	shootCmd := &cobra.Command{
		Use:   "shoot POSITION...",
		Short: "Fire a sequence of shots at a field",
		Long: `Fire shots such as A1 or J10 at a generated field (or one loaded with --field)
and print the outcome of each shot followed by the opponent's view.

Examples:
  battleship shoot --seed 7 A1 B2 C3
  battleship shoot --field field.txt E5 E6`,
		Args: cobra.MinimumNArgs(1),
		RunE: runShoot,
	}

	shootCmd.Flags().StringVarP(&fieldFile, "field", "f", "", "Text field to shoot at instead of a generated one")

	rootCmd.AddCommand(shootCmd)
}

func runShoot(cmd *cobra.Command, args []string) error {
	field, err := shootTarget()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, arg := range args {
		pos, err := mb.ParseCoordinates(arg, field.Config().GridSize)
		if err != nil {
			log.WithError(err).Warn("skipping shot")
			continue
		}

		result, err := field.ShootAt(pos)
		if err != nil {
			log.WithError(err).Warn("skipping shot")
			continue
		}

		log.WithFields(logrus.Fields{
			"field":    field.Uuid,
			"position": pos.String(),
			"outcome":  result.Outcome.String(),
			"repeated": result.Repeated,
		}).Debug("shot resolved")

		fmt.Fprintf(out, "%s: %s", pos, result.Outcome)
		if result.Outcome == mb.ShotSunk && !result.Repeated {
			fmt.Fprintf(out, " %v", result.Sunk)
		}
		fmt.Fprintln(out)

		if field.IsFleetDestroyed() {
			fmt.Fprintln(out, "fleet destroyed")
			break
		}
	}

	fmt.Fprintln(out)
	printBoard(out, field.OpponentView())
	return nil
}

func shootTarget() (*mb.Field, error) {
	if fieldFile == "" {
		return mb.NewGenerator(generatorOptions()).GenerateField()
	}

	grid, err := loadGridFile(fieldFile)
	if err != nil {
		return nil, err
	}
	return mb.NewField(grid, mb.DefaultConfig())
}
