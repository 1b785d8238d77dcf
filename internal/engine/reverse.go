package engine

// ReverseState is the four-state device gating MoveBackward with a
// two-tick warm-up and a persistent reversing mode.
type ReverseState int

const (
	ReverseIdle ReverseState = iota
	ReverseWait1
	ReverseWait2
	ReverseReversing
)

func (s ReverseState) String() string {
	switch s {
	case ReverseIdle:
		return "Idle"
	case ReverseWait1:
		return "Wait1"
	case ReverseWait2:
		return "Wait2"
	case ReverseReversing:
		return "Reversing"
	default:
		return "Unknown"
	}
}

// ReverseDecision is the result of evaluating the reverse-movement state
// machine against one requested action, before the action executor runs.
type ReverseDecision struct {
	NewState ReverseState

	// BackwardStep is true when this tick must perform a one-cell move
	// opposite the tank's facing instead of the literally requested
	// action (the Wait2->Reversing and Reversing->Reversing arcs).
	BackwardStep bool

	// Suppressed is true when the requested action must not execute at
	// all this tick: either it is a charging MoveBackward (Idle->Wait1,
	// Wait1->Wait2) or it is any non-MoveBackward action arriving while
	// charging (Wait1/Wait2 -> Idle, "cancel; no movement this tick").
	Suppressed bool
}

// NextReverseState evaluates the reverse-movement state machine: the
// table is keyed by (current state, requested action) and is consulted
// before the action executor runs. The
// "Reversing -> Reversing on MoveBackward" arc is the only one that both
// keeps a state and performs a step.
func NextReverseState(state ReverseState, action Action) ReverseDecision {
	if action == MoveBackward {
		switch state {
		case ReverseIdle:
			return ReverseDecision{NewState: ReverseWait1, Suppressed: true}
		case ReverseWait1:
			return ReverseDecision{NewState: ReverseWait2, Suppressed: true}
		case ReverseWait2:
			return ReverseDecision{NewState: ReverseReversing, BackwardStep: true}
		case ReverseReversing:
			return ReverseDecision{NewState: ReverseReversing, BackwardStep: true}
		}
	}

	// Any action other than MoveBackward.
	switch state {
	case ReverseReversing:
		// Cancel; perform the requested action normally (MoveForward
		// included — it has no special-cased step, it just runs through
		// the ordinary executor path).
		return ReverseDecision{NewState: ReverseIdle}
	case ReverseWait1, ReverseWait2:
		// Cancel the charge; no movement (and no other side effect)
		// this tick.
		return ReverseDecision{NewState: ReverseIdle, Suppressed: true}
	default:
		return ReverseDecision{NewState: ReverseIdle}
	}
}
