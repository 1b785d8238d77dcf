package engine

// EventKind tags one destruction event produced by a collision pass, kept
// only for the optional satellite/replay layer's one-tick explosion
// marker — the kernel's own logic only needs the Alive/Active flags the
// pass mutates directly.
type EventKind int

const (
	EventMine EventKind = iota
	EventTankTank
	EventShellWall
	EventShellMine
	EventShellTank
	EventShellShell
)

// CollisionEvent records one destruction for the replay/render layer.
type CollisionEvent struct {
	Kind EventKind
	X, Y int
}

type gridPos struct{ x, y int }

// ResolveTankCollisions is collision pass (a): it runs once per tick,
// immediately after tank actions execute and before any shell has taken
// a sub-step this tick. It only ever detects tank-into-mine and
// tank-into-tank — a shell freshly spawned this tick by Shoot still
// occupies its owner's cell at this point, and must not be checked
// against tanks here, or every Shoot would destroy its own tank on the
// spot. (The shell's first sub-step, handled by ResolveShellCollisions,
// moves it off the tank before any shell-vs-tank check runs.)
//
// As with ResolveShellCollisions, every check reads the same pre-pass
// snapshot of tank positions; all destructions are applied at the end.
func ResolveTankCollisions(tanks []*Tank, grid *Grid) []CollisionEvent {
	var events []CollisionEvent

	aliveTanks := make([]*Tank, 0, len(tanks))
	for _, t := range tanks {
		if t.Alive {
			aliveTanks = append(aliveTanks, t)
		}
	}

	destroy := make(map[*Tank]bool)
	clearMine := make(map[gridPos]bool)

	for _, t := range aliveTanks {
		if grid.CellAt(t.X, t.Y) == CellMine {
			destroy[t] = true
			clearMine[gridPos{t.X, t.Y}] = true
			events = append(events, CollisionEvent{Kind: EventMine, X: t.X, Y: t.Y})
		}
	}

	byPos := make(map[gridPos][]*Tank)
	for _, t := range aliveTanks {
		p := gridPos{t.X, t.Y}
		byPos[p] = append(byPos[p], t)
	}
	for p, group := range byPos {
		if len(group) < 2 {
			continue
		}
		for _, t := range group {
			destroy[t] = true
		}
		events = append(events, CollisionEvent{Kind: EventTankTank, X: p.x, Y: p.y})
	}

	for t := range destroy {
		t.Alive = false
		t.KilledThisTick = true
	}
	for p := range clearMine {
		grid.SetCell(p.x, p.y, CellEmpty)
	}

	return events
}

// ResolveShellCollisions is collision pass (b)/(c): it runs once after
// each of the two shell sub-steps. Tank positions are frozen by this
// point in the tick (tanks only move during action execution, which
// happens before pass (a)), so this pass only needs to re-derive the
// alive-tank-by-position snapshot, not recheck mine/tank-tank contact.
//
// Scan order: each shell in stable id order checks wall, then mine,
// then tank; whatever survives those three checks is then grouped by
// position for shell-shell resolution. Every check reads the same
// pre-pass snapshot; all destructions are applied at the end.
func ResolveShellCollisions(tanks []*Tank, shells []*Shell, grid *Grid) []CollisionEvent {
	var events []CollisionEvent

	aliveTankAt := make(map[gridPos]*Tank)
	for _, t := range tanks {
		if t.Alive {
			aliveTankAt[gridPos{t.X, t.Y}] = t
		}
	}

	destroyTank := make(map[*Tank]bool)
	clearMine := make(map[gridPos]bool)
	deactivateShell := make(map[*Shell]bool)
	var survivors []*Shell

	for _, s := range shells {
		if !s.Active {
			continue
		}
		p := gridPos{s.X, s.Y}

		switch grid.CellAt(s.X, s.Y) {
		case CellWall, CellWeakWall:
			grid.DamageWall(s.X, s.Y)
			deactivateShell[s] = true
			events = append(events, CollisionEvent{Kind: EventShellWall, X: s.X, Y: s.Y})
			continue
		case CellMine:
			clearMine[p] = true
			deactivateShell[s] = true
			events = append(events, CollisionEvent{Kind: EventShellMine, X: s.X, Y: s.Y})
			continue
		}

		if t, ok := aliveTankAt[p]; ok {
			destroyTank[t] = true
			deactivateShell[s] = true
			events = append(events, CollisionEvent{Kind: EventShellTank, X: s.X, Y: s.Y})
			continue
		}

		survivors = append(survivors, s)
	}

	shellsByPos := make(map[gridPos][]*Shell)
	for _, s := range survivors {
		p := gridPos{s.X, s.Y}
		shellsByPos[p] = append(shellsByPos[p], s)
	}
	for p, group := range shellsByPos {
		if len(group) < 2 {
			continue
		}
		for _, s := range group {
			deactivateShell[s] = true
		}
		events = append(events, CollisionEvent{Kind: EventShellShell, X: p.x, Y: p.y})
	}

	for t := range destroyTank {
		t.Alive = false
		t.KilledThisTick = true
	}
	for p := range clearMine {
		grid.SetCell(p.x, p.y, CellEmpty)
	}
	for s := range deactivateShell {
		s.Active = false
	}

	return events
}
