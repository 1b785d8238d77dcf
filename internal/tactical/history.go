package tactical

import "github.com/Garsondee/tanksim/internal/engine"

// historyLimit bounds the micro-history every module keeps of its own
// recent decisions — enough to notice "I've rotated in place for three
// ticks" without growing unbounded over a long match.
const historyLimit = 8

// History is a fixed-capacity ring of the actions a module has most
// recently chosen, oldest first when iterated with Recent.
type History struct {
	actions []engine.Action
}

// Record appends an action, dropping the oldest once the limit is hit.
func (h *History) Record(a engine.Action) {
	h.actions = append(h.actions, a)
	if len(h.actions) > historyLimit {
		h.actions = h.actions[len(h.actions)-historyLimit:]
	}
}

// Recent returns the last n recorded actions, oldest first; n is
// clamped to however many are actually available.
func (h *History) Recent(n int) []engine.Action {
	if n > len(h.actions) {
		n = len(h.actions)
	}
	return h.actions[len(h.actions)-n:]
}

// AllRotations reports whether the last n actions were all rotations
// with no movement or shot in between — the module is spinning in
// place, usually because a wall hems it in on every other side.
func (h *History) AllRotations(n int) bool {
	recent := h.Recent(n)
	if len(recent) < n {
		return false
	}
	for _, a := range recent {
		switch a {
		case engine.RotateLeft45, engine.RotateRight45, engine.RotateLeft90, engine.RotateRight90:
		default:
			return false
		}
	}
	return true
}
