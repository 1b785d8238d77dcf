package engine

import (
	"fmt"
	"strings"
)

// String renders one tank's per-tick record in the tick-log grammar:
// "<ActionName>", "<ActionName> (ignored)", "<ActionName> (killed)", or
// the bare word "killed" for a tank that was already dead entering the
// tick. A tank can be both ignored and killed in the same tick (e.g. it
// tried to Shoot while out of ammo and was also run over by a shell);
// "(killed)" wins since it is the more significant terminal outcome.
func (r ActionRecord) String() string {
	if r.AlreadyDead {
		return "killed"
	}
	label := r.Action.String()
	switch {
	case r.Killed:
		return label + " (killed)"
	case r.Ignored:
		return label + " (ignored)"
	default:
		return label
	}
}

// FormatTickLine joins one tick's per-tank records, in stable id order
// across both players combined, into the comma-separated line appended
// to the map's .out log.
func FormatTickLine(records []ActionRecord) string {
	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// ResultReason identifies which of the four end conditions produced a
// Result.
type ResultReason int

const (
	ResultPlayerWon ResultReason = iota
	ResultMutualTie
	ResultMaxStepsTie
	ResultZeroShellsTie
)

// Result is the scheduler's terminal outcome, carrying exactly the
// fields needed to render the one human-readable result line the tick
// log ends with.
type Result struct {
	Reason ResultReason

	WinnerPlayerID   int
	WinnerAliveCount int

	MaxSteps     int
	Player1Alive int
	Player2Alive int
}

// String renders the result in one of the four exact formats the tick
// log's final line must take.
func (r Result) String() string {
	switch r.Reason {
	case ResultPlayerWon:
		return fmt.Sprintf("Player %d won with %d tanks still alive", r.WinnerPlayerID, r.WinnerAliveCount)
	case ResultMutualTie:
		return "Tie, both players have zero tanks"
	case ResultMaxStepsTie:
		return fmt.Sprintf("Tie, reached max steps = %d, player 1 has %d tanks, player 2 has %d tanks",
			r.MaxSteps, r.Player1Alive, r.Player2Alive)
	case ResultZeroShellsTie:
		return "Tie, both players have zero shells for 40 steps"
	default:
		return "unknown result"
	}
}
