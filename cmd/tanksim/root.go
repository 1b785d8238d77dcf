package main

import (
	"github.com/spf13/cobra"
)

var (
	rulesPath   string
	player1Algo string
	player2Algo string
	metricsAddr string
)

var rootCmd = &cobra.Command{
	Use:   "tanksim",
	Short: "A deterministic toroidal tank-combat simulator",
	Long: `tanksim runs turn-based tank-combat matches on a toroidal grid read
from a map file, records a per-tick action log, and can replay or
tournament-batch those matches.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "path to a YAML rules override file (see internal/config)")
	rootCmd.PersistentFlags().StringVar(&player1Algo, "algo1", "tactical", "decision-module key for player 1 (see internal/tactical.Register)")
	rootCmd.PersistentFlags().StringVar(&player2Algo, "algo2", "tactical", "decision-module key for player 2")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus /metrics on (empty disables it)")
}
