// Package render replays a completed match from its map file and .out
// tick log, re-driving the same deterministic kernel the original run
// used and printing an ASCII/emoji satellite view after every tick.
// It is purely a presentation layer: nothing in internal/engine or
// internal/mapfile imports this package, and this package never
// mutates simulation state of its own invention — every action it
// feeds back into the kernel came from the log that kernel itself
// produced.
package render

import (
	"fmt"
	"strings"

	"github.com/Garsondee/tanksim/internal/engine"
	"github.com/Garsondee/tanksim/internal/mapfile"
)

// ParseActionLabel parses one ActionRecord.String() token back into
// its parts. "killed" (the bare word, no action name) reports
// alreadyDead; anything else reports the action plus its
// ignored/killed suffixes, matching the grammar log.go's
// ActionRecord.String emits.
func ParseActionLabel(token string) (action engine.Action, ignored, killed, alreadyDead bool, ok bool) {
	token = strings.TrimSpace(token)
	if token == "killed" {
		return 0, false, false, true, true
	}

	label := token
	if idx := strings.IndexByte(token, ' '); idx >= 0 {
		label = token[:idx]
		suffix := token[idx:]
		switch {
		case strings.Contains(suffix, "(killed)"):
			killed = true
		case strings.Contains(suffix, "(ignored)"):
			ignored = true
		}
	}

	for a := engine.MoveForward; a <= engine.DoNothing; a++ {
		if a.String() == label {
			return a, ignored, killed, false, true
		}
	}
	return 0, false, false, false, false
}

// Log is a parsed .out file: one line of tokens per tick (in the same
// tank order the map file's BuildTanks produces), plus the trailing
// result line.
type Log struct {
	Ticks  [][]string
	Result string
}

// ParseLog splits the joined .out contents into per-tick token rows
// and the final result line. The result line is always the last
// non-empty line — it cannot be told apart from a tick line by
// content alone, since three of the four Result.String() formats
// themselves contain commas ("Tie, reached max steps...").
func ParseLog(contents string) Log {
	var lines []string
	for _, line := range strings.Split(strings.TrimRight(contents, "\n"), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return Log{}
	}

	var log Log
	log.Result = lines[len(lines)-1]
	for _, line := range lines[:len(lines)-1] {
		log.Ticks = append(log.Ticks, strings.Split(line, ","))
	}
	return log
}

// scriptFor builds one tank's action script from the parsed log: the
// sequence of actions it was actually handed on every tick it was
// alive to receive one. Dead-entering-tick rows are skipped entirely,
// matching RunTick's own "dead tanks never call NextAction" rule, so
// replaying the script reproduces the exact same NextAction calls the
// original run made.
func scriptFor(log Log, tankIndex int) []engine.Action {
	actions := make([]engine.Action, 0, len(log.Ticks))
	for _, row := range log.Ticks {
		if tankIndex >= len(row) {
			continue
		}
		action, _, _, alreadyDead, ok := ParseActionLabel(row[tankIndex])
		if alreadyDead || !ok {
			continue
		}
		actions = append(actions, action)
	}
	return actions
}

// Frame is one rendered tick, handed to a FrameFunc as the replay
// advances.
type Frame struct {
	Tick   int
	View   *engine.SatelliteView
	Tanks  []*engine.Tank
	Shells []*engine.Shell
	Done   bool
	Result engine.Result
}

// FrameFunc receives one Frame per tick, in order, including the final
// frame where Done is true and Result is populated.
type FrameFunc func(Frame)

// Replay re-simulates a match from its map file and recorded .out log,
// invoking emit once per tick. rules must match whatever rules the
// original match actually ran under (see internal/config) — a
// replay under different ShellSubStepsPerTick/ZeroShellTieTicks values
// ticks differently from the log it is replaying and will diverge from
// it partway through. It returns the terminal Result, which the caller
// can cross-check against log.Result (see cmd/tanksim's render
// command, which reports a mismatch as a warning rather than an
// error — a hand-edited log replaying differently is a diagnostic
// signal, not grounds to abort the replay already in progress).
func Replay(m *mapfile.Map, log Log, rules engine.Rules, emit FrameFunc) (engine.Result, error) {
	grid := m.BuildGrid()
	tanks := m.BuildTanks()

	modules := make([]engine.TankAlgorithm, len(tanks))
	for i := range tanks {
		script := scriptFor(log, i)
		modules[i] = engine.NewScripted(engine.DoNothing, script...)
	}

	sched := engine.NewSchedulerWithRules(grid, tanks, modules, m.MaxSteps, rules)

	for {
		result, done := sched.RunTick()
		view := engine.BuildSatelliteView(sched.Grid, sched.Tanks, sched.Shells, nil)
		frame := Frame{
			Tick:   sched.Tick,
			View:   view,
			Tanks:  sched.Tanks,
			Shells: sched.Shells,
			Done:   done,
			Result: result,
		}
		if emit != nil {
			emit(frame)
		}
		if done {
			return result, nil
		}
	}
}

// ReplayMismatch describes a tick where the re-simulated result
// differs from the result line recorded in the original log.
func ReplayMismatch(log Log, result engine.Result) error {
	if log.Result == "" {
		return nil
	}
	if log.Result != result.String() {
		return fmt.Errorf("replay result %q does not match recorded result %q", result.String(), log.Result)
	}
	return nil
}
