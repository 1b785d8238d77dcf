package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Garsondee/tanksim/internal/mapfile"
	"github.com/Garsondee/tanksim/internal/metrics"
)

var runCmd = &cobra.Command{
	Use:   "run <map>",
	Short: "Run a single match to completion and write its .out log",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunMatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRunMatch(cmd *cobra.Command, args []string) error {
	mapPath := args[0]

	var m *metrics.Metrics
	if metricsAddr != "" {
		m = metrics.New()
		srv, err := metrics.Serve(metricsAddr, m)
		if err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metrics.Shutdown(ctx, srv)
		}()
	}

	outcome, err := runMatch(mapPath, player1Algo, player2Algo, m)
	if err != nil {
		return err
	}

	// outcome.Lines already ends with the result line (sched.Run appends
	// it itself), so it is written as-is.
	if err := mapfile.WriteLog(mapPath, outcome.Lines); err != nil {
		return fmt.Errorf("writing log: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", outcome.Result.String())
	return nil
}
