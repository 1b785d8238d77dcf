package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Garsondee/tanksim/internal/engine"
	"github.com/Garsondee/tanksim/internal/mapfile"
)

// RunOptions configures a Run invocation.
type RunOptions struct {
	// Delay is a pacing sleep applied between frames, replacing the
	// original visualizer's blocking press-ENTER prompt with something
	// that works unattended in a tournament report or a captured demo.
	// Zero means no pacing.
	Delay time.Duration

	// Rules must match whatever rules the match being replayed actually
	// ran under — the caller is responsible for loading them (see
	// internal/config.Load), since this package has no opinion on
	// defaults of its own.
	Rules engine.Rules
}

// Run loads a map and its companion .out log from disk and replays the
// match frame by frame to w. It reports a result mismatch (see
// ReplayMismatch) as a warning on w rather than failing the replay,
// since the board itself finished rendering successfully either way.
func Run(w io.Writer, mapPath string, opts RunOptions) error {
	m, err := mapfile.Load(mapPath)
	if err != nil {
		return err
	}

	logBytes, err := os.ReadFile(mapfile.OutputPath(mapPath))
	if err != nil {
		return fmt.Errorf("reading replay log: %w", err)
	}
	log := ParseLog(string(logBytes))

	result, err := Replay(m, log, opts.Rules, func(f Frame) {
		PrintFrame(w, f)
		if opts.Delay > 0 && !f.Done {
			time.Sleep(opts.Delay)
		}
	})
	if err != nil {
		return err
	}

	if mismatch := ReplayMismatch(log, result); mismatch != nil {
		fmt.Fprintf(w, "warning: %v\n", mismatch)
	}
	return nil
}
