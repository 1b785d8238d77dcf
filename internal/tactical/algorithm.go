package tactical

import "github.com/Garsondee/tanksim/internal/engine"

// infoRefreshInterval bounds how long a module acts on a stale
// BattleInfo snapshot before spending a tick to refresh it. Requesting
// info every tick would mean never moving or shooting; requesting it
// too rarely means planning against positions that may no longer be
// accurate.
const infoRefreshInterval = 3

// Algorithm is a concrete TankAlgorithm built from the prioritized
// strategy chain in DefaultChain, a per-module path cache, and a
// bounded history of its own recent decisions.
type Algorithm struct {
	playerID, tankID int
	chain            Chain
	cache            *PathCache
	history          History

	haveInfo       bool
	info           engine.BattleInfo
	ticksSinceInfo int
}

// NewAlgorithm builds a tactical Algorithm for one tank, usable
// directly as an engine.Factory.
func NewAlgorithm(playerID, tankID int) engine.TankAlgorithm {
	return &Algorithm{
		playerID: playerID,
		tankID:   tankID,
		chain:    DefaultChain(),
		cache:    &PathCache{},
	}
}

func (a *Algorithm) ReceiveBattleInfo(info engine.BattleInfo) {
	a.info = info
	a.haveInfo = true
	a.ticksSinceInfo = 0
}

func (a *Algorithm) NextAction() engine.Action {
	if !a.haveInfo || a.ticksSinceInfo >= infoRefreshInterval {
		a.ticksSinceInfo = 0
		a.history.Record(engine.GetBattleInfo)
		return engine.GetBattleInfo
	}
	a.ticksSinceInfo++

	ctx := &Context{
		Info:  a.info,
		Self:  Point{a.info.X, a.info.Y},
		Cache: a.cache,
	}

	// A module whose last infoRefreshInterval decisions were all turns
	// in place is boxed in on every other heading too; force a refresh
	// rather than keep spinning on data that clearly isn't working.
	if a.history.AllRotations(infoRefreshInterval) {
		a.ticksSinceInfo = infoRefreshInterval
		a.history.Record(engine.GetBattleInfo)
		return engine.GetBattleInfo
	}

	action := a.chain.Decide(ctx)
	a.history.Record(action)

	// The action we chose changes our own position/facing belief
	// immediately, even though the scheduler won't confirm it until
	// the next BattleInfo — keeps Navigation's rotate-then-move
	// sequencing from repeating the same rotation every tick.
	switch action {
	case engine.RotateLeft45:
		a.info.Direction = a.info.Direction.Rotate(-1)
	case engine.RotateRight45:
		a.info.Direction = a.info.Direction.Rotate(1)
	case engine.RotateLeft90:
		a.info.Direction = a.info.Direction.Rotate(-2)
	case engine.RotateRight90:
		a.info.Direction = a.info.Direction.Rotate(2)
	}

	return action
}
