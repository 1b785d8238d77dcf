package engine

import "testing"

// B1: a tank at (0, y) facing LEFT that executes MoveForward lands at
// (W-1, y).
func TestMoveForwardWraps(t *testing.T) {
	g := NewGrid(5, 3)
	tank := NewTank(1, 0, 0, 1, Left, 2)

	ignored, shell := ExecuteAction(tank, MoveForward, g)
	if ignored {
		t.Fatalf("move forward unexpectedly ignored")
	}
	if shell != nil {
		t.Fatalf("move forward spawned a shell")
	}
	if tank.X != 4 || tank.Y != 1 {
		t.Fatalf("tank landed at (%d,%d), want (4,1)", tank.X, tank.Y)
	}
}

func TestMoveForwardBlockedByWall(t *testing.T) {
	g := NewGrid(5, 1)
	g.SetCell(1, 0, CellWall)
	tank := NewTank(1, 0, 0, 0, Right, 0)

	ignored, _ := ExecuteAction(tank, MoveForward, g)
	if !ignored {
		t.Fatalf("move into wall was not ignored")
	}
	if tank.X != 0 {
		t.Fatalf("tank moved despite wall, now at x=%d", tank.X)
	}
}

func TestMoveForwardOntoMineSucceeds(t *testing.T) {
	// Stepping onto a mine is not blocked by the executor —
	// destruction is decided by the collision resolver afterward.
	g := NewGrid(5, 1)
	g.SetCell(1, 0, CellMine)
	tank := NewTank(1, 0, 0, 0, Right, 0)

	ignored, _ := ExecuteAction(tank, MoveForward, g)
	if ignored {
		t.Fatalf("move onto mine was ignored, want allowed")
	}
	if tank.X != 1 {
		t.Fatalf("tank did not move onto mine cell, x=%d", tank.X)
	}
}

func TestShootIgnoredWithoutAmmo(t *testing.T) {
	g := NewGrid(5, 1)
	tank := NewTank(1, 0, 0, 0, Right, 0)

	ignored, shell := ExecuteAction(tank, Shoot, g)
	if !ignored || shell != nil {
		t.Fatalf("shoot with zero ammo should be ignored and spawn no shell")
	}
}

func TestShootSetsCooldownAndSpawnsShell(t *testing.T) {
	g := NewGrid(5, 1)
	tank := NewTank(1, 0, 2, 0, Right, 1)

	ignored, shell := ExecuteAction(tank, Shoot, g)
	if ignored {
		t.Fatalf("shoot unexpectedly ignored")
	}
	if shell == nil {
		t.Fatalf("shoot did not spawn a shell")
	}
	if shell.X != 2 || shell.Y != 0 || shell.Direction != Right || shell.OwnerPlayerID != 1 {
		t.Fatalf("unexpected shell %+v", shell)
	}
	if tank.Ammo != 0 || tank.Cooldown != 4 {
		t.Fatalf("tank state after shoot = ammo=%d cooldown=%d, want 0,4", tank.Ammo, tank.Cooldown)
	}

	ignored, _ = ExecuteAction(tank, Shoot, g)
	if !ignored {
		t.Fatalf("shoot while cooling down was not ignored")
	}
}

func TestRotateNeverIgnored(t *testing.T) {
	g := NewGrid(5, 5)
	tank := NewTank(1, 0, 2, 2, Up, 0)
	for _, a := range []Action{RotateLeft45, RotateRight45, RotateLeft90, RotateRight90} {
		if ignored, _ := ExecuteAction(tank, a, g); ignored {
			t.Fatalf("%s was ignored", a)
		}
	}
}

// Reverse-movement state machine.
func TestReverseStateMachineChargeThenStep(t *testing.T) {
	g := NewGrid(5, 1)
	tank := NewTank(1, 0, 2, 0, Right, 0)

	ignored, _ := ExecuteAction(tank, MoveBackward, g)
	if !ignored || tank.ReverseState != ReverseWait1 {
		t.Fatalf("first MoveBackward = ignored=%v state=%s, want ignored,Wait1", ignored, tank.ReverseState)
	}
	if tank.X != 2 {
		t.Fatalf("tank moved during charge, x=%d", tank.X)
	}

	ignored, _ = ExecuteAction(tank, MoveBackward, g)
	if !ignored || tank.ReverseState != ReverseWait2 {
		t.Fatalf("second MoveBackward = ignored=%v state=%s, want ignored,Wait2", ignored, tank.ReverseState)
	}

	ignored, _ = ExecuteAction(tank, MoveBackward, g)
	if ignored || tank.ReverseState != ReverseReversing {
		t.Fatalf("third MoveBackward = ignored=%v state=%s, want executed,Reversing", ignored, tank.ReverseState)
	}
	if tank.X != 1 {
		t.Fatalf("tank did not step backward, x=%d, want 1", tank.X)
	}

	ignored, _ = ExecuteAction(tank, MoveBackward, g)
	if ignored || tank.ReverseState != ReverseReversing {
		t.Fatalf("fourth MoveBackward = ignored=%v state=%s, want executed,Reversing", ignored, tank.ReverseState)
	}
	if tank.X != 0 {
		t.Fatalf("tank did not step backward again, x=%d, want 0", tank.X)
	}
}

func TestReverseChargeCancelledByOtherAction(t *testing.T) {
	g := NewGrid(5, 1)
	tank := NewTank(1, 0, 2, 0, Right, 0)

	ExecuteAction(tank, MoveBackward, g) // -> Wait1

	ignored, _ := ExecuteAction(tank, RotateRight45, g)
	if !ignored {
		t.Fatalf("action during charge cancellation should be suppressed (ignored)")
	}
	if tank.ReverseState != ReverseIdle {
		t.Fatalf("charge was not cancelled, state=%s", tank.ReverseState)
	}
	if tank.Direction != Right {
		t.Fatalf("rotation should have been suppressed, direction=%s", tank.Direction)
	}
}

// A backward step taken in Reversing followed by MoveForward cancels
// the reversing mode and returns the tank to the cell it reversed from,
// provided both steps are unblocked.
func TestReversingThenForwardCancelsAndMoves(t *testing.T) {
	g := NewGrid(5, 1)
	tank := NewTank(1, 0, 2, 0, Right, 0)

	ExecuteAction(tank, MoveBackward, g) // Wait1
	ExecuteAction(tank, MoveBackward, g) // Wait2
	ExecuteAction(tank, MoveBackward, g) // Reversing, x=1

	ignored, _ := ExecuteAction(tank, MoveForward, g)
	if ignored {
		t.Fatalf("forward move from Reversing should execute, not be ignored")
	}
	if tank.ReverseState != ReverseIdle {
		t.Fatalf("state after forward-from-reversing = %s, want Idle", tank.ReverseState)
	}
	if tank.X != 2 {
		t.Fatalf("tank at x=%d after cancel-forward, want back to 2", tank.X)
	}
}
