package engine

// Scheduler orchestrates one match: it owns the grid, the tank and
// shell lists, and the per-tank decision modules, and drives the fixed
// nine-phase tick order exclusively. Decision modules never see this
// struct; they only ever receive a BattleInfo value.
type Scheduler struct {
	Grid     *Grid
	Tanks    []*Tank
	Shells   []*Shell
	MaxSteps int
	Rules    Rules

	modules []TankAlgorithm

	Tick           int
	ZeroShellTicks int

	Lines  []string
	Result *Result

	nextShellID int
}

// NewScheduler builds a scheduler for one match using DefaultRules.
// tanks and modules must be the same length and index-aligned:
// modules[i] drives tanks[i].
func NewScheduler(grid *Grid, tanks []*Tank, modules []TankAlgorithm, maxSteps int) *Scheduler {
	return NewSchedulerWithRules(grid, tanks, modules, maxSteps, DefaultRules())
}

// NewSchedulerWithRules is NewScheduler with an explicit Rules value,
// for callers (internal/config, cmd/tanksim) that load overrides.
func NewSchedulerWithRules(grid *Grid, tanks []*Tank, modules []TankAlgorithm, maxSteps int, rules Rules) *Scheduler {
	invariant(len(tanks) == len(modules), "tank count %d does not match module count %d", len(tanks), len(modules))
	invariant(rules.ShellSubStepsPerTick >= 1, "ShellSubStepsPerTick must be >= 1, got %d", rules.ShellSubStepsPerTick)
	return &Scheduler{
		Grid:     grid,
		Tanks:    tanks,
		modules:  modules,
		MaxSteps: maxSteps,
		Rules:    rules,
	}
}

// Run drives ticks to completion and returns the terminal Result. Each
// tick's rendered log line is appended to Lines as it is produced.
func (s *Scheduler) Run() Result {
	for {
		if result, done := s.RunTick(); done {
			s.Lines = append(s.Lines, result.String())
			s.Result = &result
			return result
		}
	}
}

// RunTick executes exactly one tick in the fixed nine-phase order and
// reports whether the match ended this tick.
func (s *Scheduler) RunTick() (Result, bool) {
	s.Tick++

	aliveAtStart := make([]bool, len(s.Tanks))
	for i, t := range s.Tanks {
		aliveAtStart[i] = t.Alive
		t.KilledThisTick = false
		t.LastActionIgnored = false
	}

	// Phase 2: poll every living tank's module, execute its action.
	actions := make([]Action, len(s.Tanks))
	for i, t := range s.Tanks {
		if !t.Alive {
			continue
		}
		action := s.modules[i].NextAction()
		actions[i] = action

		ignored, shell := ExecuteAction(t, action, s.Grid)
		t.LastActionLabel = action.String()
		t.LastActionIgnored = ignored

		if shell != nil {
			s.nextShellID++
			shell.ID = s.nextShellID
			s.Shells = append(s.Shells, shell)
		}

		if action == GetBattleInfo {
			info := NewBattleInfo(t, s.Grid, s.Tanks, s.Shells)
			s.modules[i].ReceiveBattleInfo(info)
		}
	}

	// Phase 3: collision pass (a) — tank actions just executed.
	ResolveTankCollisions(s.Tanks, s.Grid)

	// Phases 4-5: one shell sub-step plus a collision pass, repeated
	// Rules.ShellSubStepsPerTick times (2 by default).
	for i := 0; i < s.Rules.ShellSubStepsPerTick; i++ {
		AdvanceShellsSubStep(s.Shells, s.Grid)
		ResolveShellCollisions(s.Tanks, s.Shells, s.Grid)
	}

	// Phase 6: drop deactivated shells.
	s.Shells = CompactShells(s.Shells)

	// Phase 7: cooldown housekeeping. The reverse-state machine is
	// action-driven only (see reverse.go); there is no time-driven
	// transition to apply here.
	for _, t := range s.Tanks {
		if t.Alive && t.Cooldown > 0 {
			t.Cooldown--
		}
	}

	// Phase 8: append this tick's action record line.
	records := make([]ActionRecord, len(s.Tanks))
	for i, t := range s.Tanks {
		if !aliveAtStart[i] {
			records[i] = ActionRecord{PlayerID: t.PlayerID, TankID: t.TankID, AlreadyDead: true}
			continue
		}
		records[i] = ActionRecord{
			PlayerID: t.PlayerID,
			TankID:   t.TankID,
			Action:   actions[i],
			Ignored:  t.LastActionIgnored,
			Killed:   t.KilledThisTick,
		}
	}
	s.Lines = append(s.Lines, FormatTickLine(records))

	CheckInvariants(s.Tanks, s.Shells, s.Grid)

	// Phase 9: end-of-game evaluation.
	return s.evaluateEnd()
}

func (s *Scheduler) evaluateEnd() (Result, bool) {
	p1Alive, p2Alive := 0, 0
	allZeroAmmo := true
	for _, t := range s.Tanks {
		if !t.Alive {
			continue
		}
		switch t.PlayerID {
		case 1:
			p1Alive++
		case 2:
			p2Alive++
		}
		if t.Ammo > 0 {
			allZeroAmmo = false
		}
	}

	if allZeroAmmo {
		s.ZeroShellTicks++
	} else {
		s.ZeroShellTicks = 0
	}

	switch {
	case p1Alive == 0 && p2Alive == 0:
		return Result{Reason: ResultMutualTie}, true

	case p1Alive == 0 || p2Alive == 0:
		winner, count := 1, p1Alive
		if p1Alive == 0 {
			winner, count = 2, p2Alive
		}
		return Result{Reason: ResultPlayerWon, WinnerPlayerID: winner, WinnerAliveCount: count}, true

	case s.ZeroShellTicks >= s.Rules.ZeroShellTieTicks:
		return Result{Reason: ResultZeroShellsTie}, true

	case s.Tick >= s.MaxSteps:
		return Result{
			Reason:       ResultMaxStepsTie,
			MaxSteps:     s.MaxSteps,
			Player1Alive: p1Alive,
			Player2Alive: p2Alive,
		}, true

	default:
		return Result{}, false
	}
}
