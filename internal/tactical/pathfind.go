package tactical

import "github.com/Garsondee/tanksim/internal/engine"

// Path is a sequence of grid cells from (but not including) a start
// cell to a goal cell, in travel order.
type Path []Point

// bfsNode tracks one visited cell during the breadth-first search: the
// cell it was reached from, so the path can be rebuilt by walking
// parents back to the start once a goal is found.
type bfsNode struct {
	parent Point
}

// FindPath runs a breadth-first search over the wrapped satellite
// view from start to goal, 8-connected, skipping non-traversable
// cells. Within a single node's expansion, neighbors are visited in
// engine.AllDirections clockwise-from-UP order, so when two equally
// short paths exist the one discovered first — and therefore returned
// — is the one whose first diverging step has the lower direction
// index. Returns a nil path if goal is unreachable.
func FindPath(view *engine.SatelliteView, start, goal Point) Path {
	if start == goal {
		return Path{}
	}

	visited := map[Point]bfsNode{start: {}}
	queue := []Point{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range engine.AllDirections() {
			dx, dy := d.Offset()
			next := wrapPoint(view, cur.X+dx, cur.Y+dy)

			if _, seen := visited[next]; seen {
				continue
			}
			if !Traversable(view, next) {
				continue
			}
			visited[next] = bfsNode{parent: cur}

			if next == goal {
				return buildPath(visited, start, goal)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func buildPath(visited map[Point]bfsNode, start, goal Point) Path {
	var rev Path
	cur := goal
	for cur != start {
		rev = append(rev, cur)
		cur = visited[cur].parent
	}
	path := make(Path, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

// FirstStepDirection returns the direction from start to the first
// cell of path, or false if path is empty.
func FirstStepDirection(view *engine.SatelliteView, start Point, path Path) (engine.Direction, bool) {
	if len(path) == 0 {
		return 0, false
	}
	first := path[0]
	for _, d := range engine.AllDirections() {
		dx, dy := d.Offset()
		if wrapPoint(view, start.X+dx, start.Y+dy) == first {
			return d, true
		}
	}
	return 0, false
}
