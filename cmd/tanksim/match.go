package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Garsondee/tanksim/internal/config"
	"github.com/Garsondee/tanksim/internal/engine"
	"github.com/Garsondee/tanksim/internal/mapfile"
	"github.com/Garsondee/tanksim/internal/metrics"
	"github.com/Garsondee/tanksim/internal/render"
	"github.com/Garsondee/tanksim/internal/tactical"
)

// matchOutcome is one completed match's result plus the rendered log
// lines, ready to write to the map's .out file or fold into a
// tournament report.
type matchOutcome struct {
	MapPath  string
	Result   engine.Result
	Lines    []string
	Duration time.Duration
}

// runMatch loads mapPath, builds both players' decision modules from
// algo1/algo2, runs the match to completion, and (unless
// config.Load rejects the rules override) returns the outcome. If m
// is non-nil, the match's duration and result are recorded against it.
func runMatch(mapPath, algo1, algo2 string, m *metrics.Metrics) (matchOutcome, error) {
	parsed, err := mapfile.Load(mapPath)
	if err != nil {
		return matchOutcome{}, err
	}

	rules, err := config.Load(rulesPath)
	if err != nil {
		return matchOutcome{}, fmt.Errorf("loading rules: %w", err)
	}

	factory1, err := tactical.Lookup(algo1)
	if err != nil {
		return matchOutcome{}, fmt.Errorf("player 1 algorithm: %w", err)
	}
	factory2, err := tactical.Lookup(algo2)
	if err != nil {
		return matchOutcome{}, fmt.Errorf("player 2 algorithm: %w", err)
	}

	grid := parsed.BuildGrid()
	tanks := parsed.BuildTanks()
	modules := make([]engine.TankAlgorithm, len(tanks))
	for i, t := range tanks {
		factory := factory1
		if t.PlayerID == 2 {
			factory = factory2
		}
		modules[i] = factory(t.PlayerID, t.TankID)
	}

	sched := engine.NewSchedulerWithRules(grid, tanks, modules, parsed.MaxSteps, rules.EngineRules())

	start := time.Now()
	result := sched.Run()
	duration := time.Since(start)

	if m != nil {
		m.TicksTotal.Add(float64(sched.Tick))
		m.ShellsFiredTotal.Add(float64(countShotsFired(sched.Lines)))
		m.WallsDestroyedTotal.Add(float64(countWallsDestroyed(parsed, sched.Grid)))
		m.ObserveMatch(resultReasonLabel(result.Reason), duration)
	}

	return matchOutcome{MapPath: mapPath, Result: result, Lines: sched.Lines, Duration: duration}, nil
}

// countShotsFired counts every Shoot action that actually fired a
// shell across every rendered tick line: a bare "Shoot" or a
// "Shoot (killed)" (the tank fired, then died to something else the
// same tick) both count, but a "Shoot (ignored)" (no ammo or still on
// cooldown, so no shell was ever spawned) must not. render.ParseActionLabel
// already draws exactly that distinction for the replay viewer, so it is
// reused here instead of re-deriving the label grammar.
func countShotsFired(lines []string) int {
	total := 0
	for _, line := range lines {
		for _, token := range strings.Split(line, ",") {
			action, ignored, _, alreadyDead, ok := render.ParseActionLabel(token)
			if !ok || alreadyDead || ignored {
				continue
			}
			if action == engine.Shoot {
				total++
			}
		}
	}
	return total
}

// countWallsDestroyed diffs the grid's final terrain against the map's
// original terrain: a cell that started as WALL or WEAK_WALL and ended
// EMPTY was fully destroyed during the match.
func countWallsDestroyed(m *mapfile.Map, final *engine.Grid) int {
	destroyed := 0
	for y, row := range m.Cells {
		for x, initial := range row {
			if initial != engine.CellWall && initial != engine.CellWeakWall {
				continue
			}
			if final.CellAt(x, y) == engine.CellEmpty {
				destroyed++
			}
		}
	}
	return destroyed
}

func resultReasonLabel(r engine.ResultReason) string {
	switch r {
	case engine.ResultPlayerWon:
		return "player_won"
	case engine.ResultMutualTie:
		return "mutual_tie"
	case engine.ResultMaxStepsTie:
		return "max_steps_tie"
	case engine.ResultZeroShellsTie:
		return "zero_shells_tie"
	default:
		return "unknown"
	}
}
