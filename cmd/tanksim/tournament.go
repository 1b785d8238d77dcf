package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/tanksim/internal/engine"
	"github.com/Garsondee/tanksim/internal/mapfile"
	"github.com/Garsondee/tanksim/internal/metrics"
)

var tournamentParallel bool

var tournamentCmd = &cobra.Command{
	Use:   "tournament <map> [<map>...]",
	Short: "Run several maps as independent matches and report aggregate results",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTournament,
}

func init() {
	tournamentCmd.Flags().BoolVar(&tournamentParallel, "parallel", false, "run independent map matches concurrently")
	rootCmd.AddCommand(tournamentCmd)
}

func runTournament(cmd *cobra.Command, mapPaths []string) error {
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

	outcomes := make([]matchOutcome, len(mapPaths))

	if tournamentParallel {
		group, _ := errgroup.WithContext(context.Background())
		for i, mapPath := range mapPaths {
			i, mapPath := i, mapPath
			group.Go(func() error {
				outcome, err := runMatch(mapPath, player1Algo, player2Algo, m)
				if err != nil {
					return fmt.Errorf("%s: %w", mapPath, err)
				}
				outcomes[i] = outcome
				return mapfile.WriteLog(mapPath, outcome.Lines)
			})
		}
		if err := group.Wait(); err != nil {
			return err
		}
	} else {
		for i, mapPath := range mapPaths {
			outcome, err := runMatch(mapPath, player1Algo, player2Algo, m)
			if err != nil {
				return fmt.Errorf("%s: %w", mapPath, err)
			}
			outcomes[i] = outcome
			if err := mapfile.WriteLog(mapPath, outcome.Lines); err != nil {
				return err
			}
		}
	}

	printTournamentReport(cmd, outcomes)
	return nil
}

// printTournamentReport renders one line per match plus an aggregate
// summary across every map that was run, in the map-path-sorted order
// the caller can use to line results back up with their inputs.
func printTournamentReport(cmd *cobra.Command, outcomes []matchOutcome) {
	w := cmd.OutOrStdout()
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].MapPath < outcomes[j].MapPath })

	player1Wins, player2Wins, ties := 0, 0, 0
	var totalDuration time.Duration
	for _, o := range outcomes {
		fmt.Fprintf(w, "%-40s %-12s %s\n", o.MapPath, resultReasonLabel(o.Result.Reason), o.Result.String())
		totalDuration += o.Duration
		switch {
		case o.Result.Reason == engine.ResultPlayerWon && o.Result.WinnerPlayerID == 1:
			player1Wins++
		case o.Result.Reason == engine.ResultPlayerWon && o.Result.WinnerPlayerID == 2:
			player2Wins++
		default:
			ties++
		}
	}

	fmt.Fprintf(w, "\n=== Tournament Summary ===\n")
	fmt.Fprintf(w, "matches=%d player1_wins=%d player2_wins=%d ties=%d total_duration=%s\n",
		len(outcomes), player1Wins, player2Wins, ties, totalDuration)
}
