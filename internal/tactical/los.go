package tactical

import "github.com/Garsondee/tanksim/internal/engine"

// RayHit describes what RayScan found along a firing line before
// anything blocked it further.
type RayHit struct {
	EnemyPlayerID int // valid only when Enemy is true
	Enemy         bool
	Blocked       bool // true if a tank (friend or foe) or a wall/weak-wall/mine stopped the ray
}

// RayScan walks the satellite view from origin one cell at a time
// along dir, stopping at the first wall/weak-wall/mine cell or the
// first tank (friend or foe) it reaches. maxSteps bounds the scan — callers
// pass the view's longer dimension, since a ray wraps at most once
// before repeating cells.
func RayScan(view *engine.SatelliteView, origin Point, dir engine.Direction, selfPlayerID int, maxSteps int) RayHit {
	dx, dy := dir.Offset()
	x, y := origin.X, origin.Y

	for i := 0; i < maxSteps; i++ {
		p := wrapPoint(view, x+dx, y+dy)
		x, y = p.X, p.Y

		if terrainBlocked(view, p) {
			return RayHit{Blocked: true}
		}
		if pid, ok := tankAt(view, p); ok {
			if pid != selfPlayerID {
				return RayHit{EnemyPlayerID: pid, Enemy: true, Blocked: true}
			}
			return RayHit{Blocked: true} // a friendly tank blocks the line
		}
	}
	return RayHit{}
}

// HasDirectEngagement reports whether self currently has a clear
// firing line to an enemy tank along its own facing.
func HasDirectEngagement(view *engine.SatelliteView, self Point, facing engine.Direction, selfPlayerID int) bool {
	hit := RayScan(view, self, facing, selfPlayerID, maxScanRange(view))
	return hit.Enemy
}

// BestAimAdjustment scans the seven alternate directions for one that
// would yield a direct engagement, preferring the smallest rotation
// away from the current facing and, among equal-angle candidates, the
// lower direction index — the same tie-break the path planner uses.
func BestAimAdjustment(view *engine.SatelliteView, self Point, facing engine.Direction, selfPlayerID int) (engine.Direction, bool) {
	best := engine.Direction(0)
	bestCost := 99
	found := false

	for _, d := range engine.AllDirections() {
		if d == facing {
			continue
		}
		hit := RayScan(view, self, d, selfPlayerID, maxScanRange(view))
		if !hit.Enemy {
			continue
		}
		cost := angularSteps(facing, d)
		if !found || cost < bestCost {
			best, bestCost, found = d, cost, true
		}
	}
	return best, found
}

// angularSteps returns the minimum number of 45-degree rotations
// (1..4) needed to turn from `from` to `to`.
func angularSteps(from, to engine.Direction) int {
	diff := int(to) - int(from)
	diff = ((diff % 8) + 8) % 8
	if diff > 4 {
		diff = 8 - diff
	}
	return diff
}
