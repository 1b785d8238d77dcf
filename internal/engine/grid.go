package engine

// Cell identifies the terrain occupying one grid position. Tanks and
// shells are tracked separately in Scheduler and never stored in the
// Cell itself — terrain and entity overlay are always kept apart.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellWeakWall
	CellMine
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellWeakWall:
		return "weak_wall"
	case CellMine:
		return "mine"
	default:
		return "unknown"
	}
}

// Rune returns the map/satellite-view character for the cell.
func (c Cell) Rune() rune {
	switch c {
	case CellWall:
		return '#'
	case CellWeakWall:
		return '='
	case CellMine:
		return '@'
	default:
		return ' '
	}
}

// Grid is the toroidal rectangular terrain store. It owns no entities —
// tanks and shells are overlaid by the Scheduler. Storage is a flat
// row-major cell slice plus a parallel per-cell wall-hit counter.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
	hits   []uint8 // wall hit counter, meaningful only where cells[i] is Wall/WeakWall
}

// NewGrid creates a W×H grid, all cells empty.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
		hits:   make([]uint8, width*height),
	}
}

// wrap normalizes a coordinate into [0, n) — always-positive modulo.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Wrap applies the grid's toroidal wrap policy to a raw (x, y) pair.
func (g *Grid) Wrap(x, y int) (int, int) {
	return wrap(x, g.Width), wrap(y, g.Height)
}

func (g *Grid) index(x, y int) int {
	wx, wy := g.Wrap(x, y)
	return wy*g.Width + wx
}

// CellAt wraps coordinates and returns the cell there.
func (g *Grid) CellAt(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// SetCell wraps coordinates and stores c. Placing a WALL resets the hit
// counter to zero; placing anything else clears it.
func (g *Grid) SetCell(x, y int, c Cell) {
	i := g.index(x, y)
	g.cells[i] = c
	g.hits[i] = 0
}

// DamageWall registers one shell hit against a WALL/WEAK_WALL cell.
// Returns true if the cell was destroyed (became empty) by this hit.
// No-op (returns false) on any other cell kind.
func (g *Grid) DamageWall(x, y int) bool {
	i := g.index(x, y)
	switch g.cells[i] {
	case CellWall:
		g.hits[i]++
		g.cells[i] = CellWeakWall
		return false
	case CellWeakWall:
		g.cells[i] = CellEmpty
		g.hits[i] = 0
		return true
	default:
		return false
	}
}

// HitsAt returns the recorded wall-hit count at (x, y) — used by invariant
// checks and tests; meaningless for non-wall cells.
func (g *Grid) HitsAt(x, y int) uint8 {
	return g.hits[g.index(x, y)]
}

// InBoundsRaw reports whether (x, y) needs no wrapping to land in range.
// The tactical BFS planner does not use it; it wraps every coordinate
// through the SatelliteView instead.
func (g *Grid) InBoundsRaw(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}
