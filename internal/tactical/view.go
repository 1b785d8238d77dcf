package tactical

import "github.com/Garsondee/tanksim/internal/engine"

// Point is a grid cell coordinate, used throughout this package
// instead of passing raw x, y pairs.
type Point struct{ X, Y int }

// Everything in this package plans and decides using only what a real
// TankAlgorithm is handed: a BattleInfo snapshot and its SatelliteView.
// It never touches *engine.Grid or a live tank slice — those belong to
// the scheduler, not to a module running on the other side of the
// GetBattleInfo boundary.

func terrainBlocked(view *engine.SatelliteView, p Point) bool {
	switch view.At(p.X, p.Y) {
	case '#', '=', '@':
		return true
	default:
		return false
	}
}

func tankAt(view *engine.SatelliteView, p Point) (playerID int, ok bool) {
	switch view.At(p.X, p.Y) {
	case '1':
		return 1, true
	case '2':
		return 2, true
	default:
		return 0, false
	}
}

func shellAt(view *engine.SatelliteView, p Point) bool {
	return view.At(p.X, p.Y) == engine.SymbolShell
}

// Traversable reports whether a cell can be entered by the planner.
// WALL, WEAK_WALL, and MINE all read as blocked even though the
// executor itself does not stop a tank from driving onto a mine — the
// planner routes around mines rather than walking into one.
func Traversable(view *engine.SatelliteView, p Point) bool {
	return !terrainBlocked(view, p)
}

func wrapPoint(view *engine.SatelliteView, x, y int) Point {
	w, h := view.Width, view.Height
	x %= w
	if x < 0 {
		x += w
	}
	y %= h
	if y < 0 {
		y += h
	}
	return Point{x, y}
}

func maxScanRange(view *engine.SatelliteView) int {
	if view.Width > view.Height {
		return view.Width
	}
	return view.Height
}
