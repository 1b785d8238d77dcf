package engine

import "fmt"

// InvariantViolation is raised by invariant when a condition the kernel
// treats as a programming bug — not a player mistake — fails. Unlike
// ActionIgnored, which is a normal per-action outcome, this always
// panics: there is no recovery path, only an assertion.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string { return e.Message }

// invariant panics with an InvariantViolation if cond is false.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(&InvariantViolation{Message: fmt.Sprintf(format, args...)})
	}
}

// CheckInvariants asserts I1-I5 against the current tank list and grid.
// The scheduler calls this at the end of every tick; a failure here
// means the resolver or executor mis-sequenced something, not that a
// decision module behaved badly.
func CheckInvariants(tanks []*Tank, shells []*Shell, grid *Grid) {
	seen := make(map[[2]int]*Tank)
	for _, t := range tanks {
		if !t.Alive {
			continue
		}
		invariant(t.X >= 0 && t.X < grid.Width && t.Y >= 0 && t.Y < grid.Height,
			"tank p%d/t%d out of bounds at (%d,%d)", t.PlayerID, t.TankID, t.X, t.Y)

		pos := [2]int{t.X, t.Y}
		if other, ok := seen[pos]; ok {
			invariant(false, "tanks p%d/t%d and p%d/t%d share position (%d,%d)",
				other.PlayerID, other.TankID, t.PlayerID, t.TankID, t.X, t.Y)
		}
		seen[pos] = t

		invariant(t.Cooldown >= 0, "tank p%d/t%d has negative cooldown", t.PlayerID, t.TankID)
		invariant(t.Ammo >= 0, "tank p%d/t%d has negative ammo", t.PlayerID, t.TankID)

		invariant(grid.CellAt(t.X, t.Y) != CellMine,
			"tank p%d/t%d survived on an unconsumed mine at (%d,%d)", t.PlayerID, t.TankID, t.X, t.Y)
	}

	for _, s := range shells {
		if !s.Active {
			continue
		}
		invariant(grid.CellAt(s.X, s.Y) != CellMine,
			"active shell rests on an unconsumed mine at (%d,%d)", s.X, s.Y)
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.CellAt(x, y) == CellWeakWall {
				invariant(grid.HitsAt(x, y) == 1,
					"weak wall at (%d,%d) has hit counter %d, want 1", x, y, grid.HitsAt(x, y))
			}
			if grid.CellAt(x, y) == CellWall {
				invariant(grid.HitsAt(x, y) == 0,
					"wall at (%d,%d) has hit counter %d, want 0", x, y, grid.HitsAt(x, y))
			}
		}
	}
}
