package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mb "github.com/saeidalz13/battleship-fleet/models/battleship"
)

const (
	envStage       = "STAGE"
	envSeed        = "BATTLESHIP_SEED"
	envMaxRestarts = "BATTLESHIP_MAX_RESTARTS"
	envLogLevel    = "BATTLESHIP_LOG_LEVEL"
)

var (
	seed        int64
	maxRestarts int
	logLevel    string

	log = logrus.New()

	rootCmd = &cobra.Command{
		Use:           "battleship",
		Short:         "Place, validate and shoot at battleship fleets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
	}
)

func main() {
	loadEnv()

	rootCmd.PersistentFlags().Int64VarP(&seed, "seed", "s", envInt64(envSeed, 0), "Seed for reproducible fields (0 = random)")
	rootCmd.PersistentFlags().IntVar(&maxRestarts, "max-restarts", int(envInt64(envMaxRestarts, mb.DefaultMaxRestarts)), "Whole-grid restarts before generation fails")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envString(envLogLevel, "info"), "Log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// .env is optional outside production
func loadEnv() {
	if os.Getenv(envStage) == "prod" {
		return
	}
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to load .env")
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.WithField("key", key).Warn("ignoring non-numeric env value")
		return fallback
	}
	return n
}

func generatorOptions() *mb.GeneratorOptions {
	opts := mb.DefaultGeneratorOptions()
	opts.Seed = seed
	opts.MaxRestarts = maxRestarts
	opts.Logger = log
	return opts
}
