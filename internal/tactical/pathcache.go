package tactical

import "github.com/Garsondee/tanksim/internal/engine"

// PathCache holds a module's route to its current target enemy between
// ticks. The cached path invalidates when the tracked enemy has moved
// to a new cell or when the next planned step is no longer
// traversable on arrival — otherwise NextStep reuses it without a
// fresh search. Algorithm.ReceiveBattleInfo does not reset it: a newer
// SatelliteView leads to a fresh search only through those two checks.
type PathCache struct {
	hasTarget   bool
	targetEnemy Point
	path        Path
	noPath      bool // last search found the target unreachable
}

func nearestEnemy(view *engine.SatelliteView, self Point, selfPlayerID int) (Point, bool) {
	best := Point{}
	bestDist := -1
	found := false

	for y := 0; y < view.Height; y++ {
		for x := 0; x < view.Width; x++ {
			p := Point{x, y}
			pid, ok := tankAt(view, p)
			if !ok || pid == selfPlayerID {
				continue
			}
			d := wrappedDistance(view, self, p)
			if !found || d < bestDist {
				best, bestDist, found = p, d, true
			}
		}
	}
	return best, found
}

func wrappedDistance(view *engine.SatelliteView, a, b Point) int {
	dx := wrapDelta(b.X-a.X, view.Width)
	dy := wrapDelta(b.Y-a.Y, view.Height)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func wrapDelta(d, n int) int {
	d %= n
	if d > n/2 {
		d -= n
	} else if d < -n/2 {
		d += n
	}
	return d
}

// ensure recomputes the cached path when the target has changed or the
// next queued step is no longer safe to walk onto.
func (c *PathCache) ensure(view *engine.SatelliteView, self Point, selfPlayerID int) {
	enemy, ok := nearestEnemy(view, self, selfPlayerID)
	if !ok {
		c.hasTarget = false
		c.path = nil
		c.noPath = false
		return
	}

	valid := c.hasTarget && c.targetEnemy == enemy &&
		((len(c.path) == 0 && c.noPath) || (len(c.path) > 0 && Traversable(view, c.path[0])))
	if valid {
		return
	}

	c.targetEnemy = enemy
	c.hasTarget = true
	c.path = FindPath(view, self, enemy)
	c.noPath = c.path == nil
}

// NextStep returns the direction of the next unvisited cell on the
// cached route to the nearest enemy, consuming a step once self has
// actually arrived there.
func (c *PathCache) NextStep(view *engine.SatelliteView, self Point, selfPlayerID int) (engine.Direction, bool) {
	c.ensure(view, self, selfPlayerID)
	if len(c.path) == 0 {
		return 0, false
	}
	if self == c.path[0] {
		c.path = c.path[1:]
	}
	if len(c.path) == 0 {
		return 0, false
	}
	return FirstStepDirection(view, self, c.path)
}

// BlockedAhead reports whether the cached search found the current
// target enemy unreachable — the signal ObstacleBreach uses to decide
// a wall directly ahead is worth shooting through rather than routing
// around.
func (c *PathCache) BlockedAhead(view *engine.SatelliteView, self Point, selfPlayerID int) bool {
	c.ensure(view, self, selfPlayerID)
	return c.hasTarget && c.noPath
}
