package engine

// ExecuteAction applies action to the living tank t, mutating only t
// (and, for a successful Shoot, returning a newly spawned Shell to be
// appended to the scheduler's shell list). It never touches the grid
// except to read it for wall-blocking checks — landing on a MINE or on
// another tank is deliberately not checked here; both are resolved by
// the collision pass afterward so every tank moves before any
// destruction is decided.
//
// The reverse-movement state machine is evaluated first, since it can
// override what "performing this tick's action" means (a charging tick
// suppresses the action entirely; a Reversing tick substitutes a
// backward step for whatever was literally requested).
//
// Returns whether the action was ignored (preconditions not met, or
// suppressed by the reverse state machine) and the shell a successful
// Shoot spawned (nil for every other outcome).
func ExecuteAction(t *Tank, action Action, grid *Grid) (ignored bool, shell *Shell) {
	decision := NextReverseState(t.ReverseState, action)
	t.ReverseState = decision.NewState

	if decision.Suppressed {
		return true, nil
	}

	if decision.BackwardStep {
		return executeMove(t, grid, t.Direction.Opposite()), nil
	}

	switch action {
	case MoveForward:
		return executeMove(t, grid, t.Direction), nil

	case MoveBackward:
		// Only reachable via the Wait1->Wait2 charging arc above, which
		// is always Suppressed, so this case cannot fall through here.
		return true, nil

	case RotateLeft45:
		t.Direction = t.Direction.Rotate(-1)
		return false, nil
	case RotateRight45:
		t.Direction = t.Direction.Rotate(1)
		return false, nil
	case RotateLeft90:
		t.Direction = t.Direction.Rotate(-2)
		return false, nil
	case RotateRight90:
		t.Direction = t.Direction.Rotate(2)
		return false, nil

	case Shoot:
		if !t.CanShoot() {
			return true, nil
		}
		t.Ammo--
		t.Cooldown = 4
		return false, &Shell{
			X:             t.X,
			Y:             t.Y,
			Direction:     t.Direction,
			OwnerPlayerID: t.PlayerID,
			Active:        true,
		}

	case GetBattleInfo:
		// The scheduler builds and delivers the BattleInfo; there is
		// nothing for the executor itself to mutate.
		return false, nil

	case DoNothing:
		return false, nil

	default:
		return true, nil
	}
}

// executeMove steps t one cell along dir, wrapping through the grid.
// Blocked by WALL/WEAK_WALL; landing on a MINE or another tank is left
// to the collision resolver.
func executeMove(t *Tank, grid *Grid, dir Direction) (ignored bool) {
	dx, dy := dir.Offset()
	tx, ty := grid.Wrap(t.X+dx, t.Y+dy)
	switch grid.CellAt(tx, ty) {
	case CellWall, CellWeakWall:
		return true
	default:
		t.X, t.Y = tx, ty
		return false
	}
}
