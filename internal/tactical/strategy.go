package tactical

import "github.com/Garsondee/tanksim/internal/engine"

// Context is the read-only view a Strategy decides from: the last
// BattleInfo snapshot the module received, plus its own path cache.
// Strategies never mutate Context — Decide returns an Action, and the
// caller applies it.
type Context struct {
	Info  engine.BattleInfo
	Self  Point
	Cache *PathCache
}

// Strategy proposes an Action for the current tick, or declines by
// returning ok=false so the next strategy in the chain gets a turn.
type Strategy interface {
	Decide(ctx *Context) (action engine.Action, ok bool)
}

// Chain tries each Strategy in order and returns the first proposal.
// Falls back to DoNothing if every strategy declines.
type Chain []Strategy

func (c Chain) Decide(ctx *Context) engine.Action {
	for _, s := range c {
		if action, ok := s.Decide(ctx); ok {
			return action
		}
	}
	return engine.DoNothing
}

// DefaultChain is the prioritized strategy order this package's
// Algorithm uses: react to an incoming shell first, take a free shot
// if one is lined up, otherwise turn toward one, clear a wall blocking
// the route to the enemy, and fall back to closing distance.
func DefaultChain() Chain {
	return Chain{
		ThreatResponse{},
		DirectEngagement{},
		AimAdjustment{},
		ObstacleBreach{},
		Navigation{},
	}
}

// axis groups the eight directions into four lines (a direction and
// its opposite share an axis); used to tell whether moving along the
// current facing would carry a tank off an incoming shell's line.
func axis(d engine.Direction) int {
	return int(d) % 4
}

// ThreatResponse steps off the line of any shell currently lined up to
// hit self, rotating onto a different axis first if self's own facing
// shares the shell's axis.
type ThreatResponse struct{}

func (ThreatResponse) Decide(ctx *Context) (engine.Action, bool) {
	view := ctx.Info.View
	facing := ctx.Info.Direction

	for _, d := range engine.AllDirections() {
		dx, dy := d.Offset()
		p := ctx.Self
		for step := 0; step < maxScanRange(view); step++ {
			p = wrapPoint(view, p.X+dx, p.Y+dy)
			if shellAt(view, p) {
				if axis(d) == axis(facing) {
					return rotateStep(facing, facing.Rotate(2)), true
				}
				return engine.MoveForward, true
			}
			if terrainBlocked(view, p) {
				break
			}
			if _, ok := tankAt(view, p); ok {
				break // another tank blocks the line before any shell
			}
		}
	}
	return 0, false
}

// DirectEngagement shoots when a clear line to an enemy already
// exists along self's current facing.
type DirectEngagement struct{}

func (DirectEngagement) Decide(ctx *Context) (engine.Action, bool) {
	if ctx.Info.Ammo == 0 || ctx.Info.Cooldown > 0 {
		return 0, false
	}
	if HasDirectEngagement(ctx.Info.View, ctx.Self, ctx.Info.Direction, ctx.Info.PlayerID) {
		return engine.Shoot, true
	}
	return 0, false
}

// AimAdjustment turns toward the nearest enemy line when one is not
// currently lined up, rotating 90° when it is more than one 45° step
// away and 45° otherwise.
type AimAdjustment struct{}

func (AimAdjustment) Decide(ctx *Context) (engine.Action, bool) {
	dir, found := BestAimAdjustment(ctx.Info.View, ctx.Self, ctx.Info.Direction, ctx.Info.PlayerID)
	if !found {
		return 0, false
	}
	return rotateStep(ctx.Info.Direction, dir), true
}

// ObstacleBreach shoots through a wall/weak-wall cell directly ahead
// when the cached route to the enemy is blocked there and no other
// strategy has found an alternative.
type ObstacleBreach struct{}

func (ObstacleBreach) Decide(ctx *Context) (engine.Action, bool) {
	if ctx.Info.Ammo == 0 || ctx.Info.Cooldown > 0 {
		return 0, false
	}
	view := ctx.Info.View
	dx, dy := ctx.Info.Direction.Offset()
	ahead := wrapPoint(view, ctx.Self.X+dx, ctx.Self.Y+dy)
	if !terrainBlocked(view, ahead) {
		return 0, false
	}
	if ctx.Cache.BlockedAhead(view, ctx.Self, ctx.Info.PlayerID) {
		return engine.Shoot, true
	}
	return 0, false
}

// Navigation follows the cached BFS path toward the nearest enemy,
// rotating toward the next step's direction or moving forward when
// already facing it.
type Navigation struct{}

func (Navigation) Decide(ctx *Context) (engine.Action, bool) {
	step, ok := ctx.Cache.NextStep(ctx.Info.View, ctx.Self, ctx.Info.PlayerID)
	if !ok {
		return 0, false
	}
	if step == ctx.Info.Direction {
		return engine.MoveForward, true
	}
	return rotateStep(ctx.Info.Direction, step), true
}

// rotateStep returns the single-tick rotation action that makes the
// most progress from `from` toward `to` without overshooting: a 90°
// turn when two or more 45° steps separate them, otherwise a 45° turn
// in the shorter direction.
func rotateStep(from, to engine.Direction) engine.Action {
	diff := int(to) - int(from)
	diff = ((diff % 8) + 8) % 8
	if diff == 0 {
		return engine.DoNothing
	}
	if diff <= 4 {
		if diff >= 2 {
			return engine.RotateRight90
		}
		return engine.RotateRight45
	}
	ccw := 8 - diff
	if ccw >= 2 {
		return engine.RotateLeft90
	}
	return engine.RotateLeft45
}
