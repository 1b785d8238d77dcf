package engine

import "strings"

// Symbol runes used by both the map file format and the satellite
// character grid. Map-only symbols live in mapfile; these three are
// satellite-grid-only overlays the kernel itself produces.
const (
	SymbolShell       = '*'
	SymbolRequester   = '%'
	SymbolOutOfBounds = '&'
)

// SatelliteView is the character-grid snapshot handed to a decision
// module. The kernel's coordinate policy is wrap, the same as the grid
// itself — At always wraps rather than ever returning the
// out-of-bounds sentinel, so SymbolOutOfBounds is exported only for a
// tactical-layer module that wants to render an intentionally
// unwrapped probe of its own.
type SatelliteView struct {
	Width, Height int
	Rows          [][]rune
}

// At returns the character at (x, y), wrapping coordinates the same way
// the grid does.
func (v *SatelliteView) At(x, y int) rune {
	wx := wrap(x, v.Width)
	wy := wrap(y, v.Height)
	return v.Rows[wy][wx]
}

// String renders the view as Height lines of Width characters.
func (v *SatelliteView) String() string {
	var b strings.Builder
	for _, row := range v.Rows {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// BuildSatelliteView assembles a character grid from terrain plus the
// current tank/shell overlay. requester, if non-nil, has its cell
// overwritten with SymbolRequester last, so it always wins regardless
// of what else occupies that cell.
func BuildSatelliteView(grid *Grid, tanks []*Tank, shells []*Shell, requester *Tank) *SatelliteView {
	rows := make([][]rune, grid.Height)
	for y := 0; y < grid.Height; y++ {
		row := make([]rune, grid.Width)
		for x := 0; x < grid.Width; x++ {
			row[x] = grid.CellAt(x, y).Rune()
		}
		rows[y] = row
	}

	for _, t := range tanks {
		if !t.Alive {
			continue
		}
		rows[t.Y][t.X] = rune('0' + t.PlayerID)
	}

	// Shells render over tanks: by the time a shell and a tank share a
	// cell within the same sub-step, the shell has already advanced
	// onto it (or the tank has been destroyed), so the shell symbol
	// takes precedence.
	for _, s := range shells {
		if !s.Active {
			continue
		}
		rows[s.Y][s.X] = SymbolShell
	}

	if requester != nil && requester.Alive {
		rows[requester.Y][requester.X] = SymbolRequester
	}

	return &SatelliteView{Width: grid.Width, Height: grid.Height, Rows: rows}
}

// BattleInfo is the immutable snapshot delivered to a decision module's
// receive_battle_info in response to GetBattleInfo. Values only — no
// reference to the tank, grid, or scheduler is ever embedded.
type BattleInfo struct {
	PlayerID  int
	TankID    int
	X, Y      int
	Direction Direction
	Ammo      int
	Cooldown  int
	View      *SatelliteView
}

// NewBattleInfo captures the requesting tank's public state and a
// satellite view marking its own cell.
func NewBattleInfo(t *Tank, grid *Grid, tanks []*Tank, shells []*Shell) BattleInfo {
	return BattleInfo{
		PlayerID:  t.PlayerID,
		TankID:    t.TankID,
		X:         t.X,
		Y:         t.Y,
		Direction: t.Direction,
		Ammo:      t.Ammo,
		Cooldown:  t.Cooldown,
		View:      BuildSatelliteView(grid, tanks, shells, t),
	}
}
