// Package mapfile parses the fixed five-line-header map file format and
// writes the per-tick output log, the two thin collaborators that sit
// outside the simulation kernel proper (internal/engine imports
// nothing from this package; this package imports engine).
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Garsondee/tanksim/internal/engine"
)

// ConfigurationError reports a fatal problem loading a map file: a
// missing file, a malformed header, a dimension mismatch, or a side
// with no tanks. The loader never starts a simulation it cannot
// complete — this error is returned to the caller before the tick
// loop begins.
type ConfigurationError struct {
	Line   int
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("map file line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("map file: %s", e.Reason)
}

// TankSpec is one tank discovered while scanning the map body, in file
// order — the order the scheduler assigns stable tank ids from.
type TankSpec struct {
	PlayerID int
	X, Y     int
}

// Map is a fully parsed map file: the header values plus terrain and
// tank placements, ready to hand to engine.NewGrid/engine.NewTank.
type Map struct {
	Description string
	MaxSteps    int
	NumShells   int
	Rows        int
	Cols        int

	Cells [][]engine.Cell
	Tanks []TankSpec // both players, in file-encounter order
}

// Load reads and parses a map file from path.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigurationError{Reason: err.Error()}
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a map file from r per the fixed format:
//
//	line 1: free-form description, ignored by the kernel
//	line 2: MaxSteps=<N>
//	line 3: NumShells=<N>
//	line 4: Rows=<H>
//	line 5: Cols=<W>
//	lines 6..6+H-1: exactly H rows of W characters (padded with spaces
//	                if short)
func Parse(r io.Reader) (*Map, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := make([]string, 0, 8)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &ConfigurationError{Reason: err.Error()}
	}
	if len(lines) < 5 {
		return nil, &ConfigurationError{Reason: "file shorter than the 5-line header"}
	}

	m := &Map{Description: lines[0]}

	var err error
	if m.MaxSteps, err = parseHeaderInt(lines[1], "MaxSteps", 2); err != nil {
		return nil, err
	}
	if m.NumShells, err = parseHeaderInt(lines[2], "NumShells", 3); err != nil {
		return nil, err
	}
	if m.Rows, err = parseHeaderInt(lines[3], "Rows", 4); err != nil {
		return nil, err
	}
	if m.Cols, err = parseHeaderInt(lines[4], "Cols", 5); err != nil {
		return nil, err
	}

	if m.Rows <= 0 || m.Cols <= 0 {
		return nil, &ConfigurationError{Reason: "Rows and Cols must be positive"}
	}

	bodyStart := 5
	if len(lines) < bodyStart+m.Rows {
		return nil, &ConfigurationError{
			Line:   bodyStart + len(lines) - bodyStart + 1,
			Reason: fmt.Sprintf("expected %d body rows, found %d", m.Rows, len(lines)-bodyStart),
		}
	}

	m.Cells = make([][]engine.Cell, m.Rows)
	sawP1, sawP2 := false, false
	for y := 0; y < m.Rows; y++ {
		row := lines[bodyStart+y]
		cells := make([]engine.Cell, m.Cols)
		for x := 0; x < m.Cols; x++ {
			var ch rune = ' '
			if x < len(row) {
				ch = rune(row[x])
			}
			switch ch {
			case '#':
				cells[x] = engine.CellWall
			case '=':
				cells[x] = engine.CellWeakWall
			case '@':
				cells[x] = engine.CellMine
			case '1':
				cells[x] = engine.CellEmpty
				m.Tanks = append(m.Tanks, TankSpec{PlayerID: 1, X: x, Y: y})
				sawP1 = true
			case '2':
				cells[x] = engine.CellEmpty
				m.Tanks = append(m.Tanks, TankSpec{PlayerID: 2, X: x, Y: y})
				sawP2 = true
			default:
				cells[x] = engine.CellEmpty
			}
		}
		m.Cells[y] = cells
	}

	if !sawP1 {
		return nil, &ConfigurationError{Reason: "no tanks found for player 1"}
	}
	if !sawP2 {
		return nil, &ConfigurationError{Reason: "no tanks found for player 2"}
	}

	return m, nil
}

func parseHeaderInt(line, key string, lineNo int) (int, error) {
	prefix := key + "="
	if !strings.HasPrefix(line, prefix) {
		return 0, &ConfigurationError{Line: lineNo, Reason: fmt.Sprintf("expected %q prefix, got %q", prefix, line)}
	}
	n, err := strconv.Atoi(strings.TrimPrefix(line, prefix))
	if err != nil {
		return 0, &ConfigurationError{Line: lineNo, Reason: fmt.Sprintf("%s value is not an integer: %v", key, err)}
	}
	return n, nil
}

// BuildGrid materializes the parsed terrain into an engine.Grid.
func (m *Map) BuildGrid() *engine.Grid {
	g := engine.NewGrid(m.Cols, m.Rows)
	for y, row := range m.Cells {
		for x, c := range row {
			if c != engine.CellEmpty {
				g.SetCell(x, y, c)
			}
		}
	}
	return g
}

// BuildTanks materializes tank specs into engine.Tank values, assigning
// zero-based per-player tank ids in file-encounter order. Player 1's
// tanks face LEFT at game start; player 2's face RIGHT.
func (m *Map) BuildTanks() []*engine.Tank {
	tanks := make([]*engine.Tank, 0, len(m.Tanks))
	nextID := map[int]int{1: 0, 2: 0}
	for _, spec := range m.Tanks {
		dir := engine.Left
		if spec.PlayerID == 2 {
			dir = engine.Right
		}
		id := nextID[spec.PlayerID]
		nextID[spec.PlayerID] = id + 1
		tanks = append(tanks, engine.NewTank(spec.PlayerID, id, spec.X, spec.Y, dir, m.NumShells))
	}
	return tanks
}
