package render

import (
	"fmt"
	"io"

	"github.com/Garsondee/tanksim/internal/engine"
)

// glyph maps one satellite-view rune to its display cell. Terrain and
// shells are player-agnostic; tanks are drawn separately by PrintBoard
// with tankColor, keyed by player only, so player 1 and player 2 render
// in distinguishable colors, unlike plain rune classification.
func glyph(r rune) string {
	switch r {
	case engine.CellWall.Rune():
		return "🧱"
	case engine.CellWeakWall.Rune():
		return "🟫"
	case engine.CellMine.Rune():
		return "💣"
	case engine.SymbolShell:
		return "🚀"
	case engine.SymbolRequester:
		return "🎯"
	default:
		return "🟩"
	}
}

// directionArrow renders a Direction as a single Unicode arrow,
// independent of player.
func directionArrow(d engine.Direction) string {
	switch d {
	case engine.Up:
		return "⬆️"
	case engine.UpRight:
		return "↗️"
	case engine.Right:
		return "➡️"
	case engine.DownRight:
		return "↘️"
	case engine.Down:
		return "⬇️"
	case engine.DownLeft:
		return "↙️"
	case engine.Left:
		return "⬅️"
	case engine.UpLeft:
		return "↖️"
	default:
		return "❓"
	}
}

// tankColor distinguishes player 1 from player 2 at a glance; the
// arrow glyph alone doesn't carry ownership the way the board's digit
// characters do.
func tankColor(playerID int) string {
	if playerID == 1 {
		return "🔷"
	}
	return "🔶"
}

// PrintBoard renders one Frame's satellite view to w: a header row of
// column indices (mod 10, matching the original's wraparound row/column
// legend), then one line per row with a row index prefix, terrain and
// shells rendered from the raw rune grid, and alive tanks overlaid from
// the live tank list as their player's color. The board cell does not
// show a tank's facing; PrintTankStatus prints it as an arrow.
func PrintBoard(w io.Writer, f Frame) {
	view := f.View
	fmt.Fprint(w, "   ")
	for x := 0; x < view.Width; x++ {
		fmt.Fprintf(w, "%d", x%10)
	}
	fmt.Fprintln(w)

	tankAt := make(map[[2]int]*engine.Tank, len(f.Tanks))
	for _, t := range f.Tanks {
		if t.Alive {
			tankAt[[2]int{t.X, t.Y}] = t
		}
	}

	for y := 0; y < view.Height; y++ {
		fmt.Fprintf(w, "%d  ", y%10)
		for x := 0; x < view.Width; x++ {
			if t, ok := tankAt[[2]int{x, y}]; ok {
				fmt.Fprint(w, tankColor(t.PlayerID))
				continue
			}
			fmt.Fprint(w, glyph(view.At(x, y)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// PrintTankStatus renders one line per tank: alive tanks show
// position, facing, ammo and cooldown; destroyed tanks show a
// destruction marker instead, mirroring the original visualizer's
// per-tank status block.
func PrintTankStatus(w io.Writer, f Frame) {
	fmt.Fprintln(w, "Tank status:")
	for _, t := range f.Tanks {
		if !t.Alive {
			fmt.Fprintf(w, "  ✕ player %d tank %d DESTROYED\n", t.PlayerID, t.TankID)
			continue
		}
		fmt.Fprintf(w, "  %s player %d tank %d at (%d,%d) facing %s, ammo=%d cooldown=%d\n",
			directionArrow(t.Direction), t.PlayerID, t.TankID, t.X, t.Y, t.Direction, t.Ammo, t.Cooldown)
	}
}

// PrintShellStatus renders one line per in-flight shell, or nothing if
// none are active.
func PrintShellStatus(w io.Writer, f Frame) {
	active := false
	for _, s := range f.Shells {
		if s.Active {
			active = true
			break
		}
	}
	if !active {
		return
	}
	fmt.Fprintln(w, "Shells in flight:")
	for _, s := range f.Shells {
		if !s.Active {
			continue
		}
		fmt.Fprintf(w, "  🚀 at (%d,%d) heading %s, owned by player %d\n", s.X, s.Y, s.Direction, s.OwnerPlayerID)
	}
}

// PrintSummary renders the per-player alive/ammo totals and, once the
// frame is terminal, the match result line.
func PrintSummary(w io.Writer, f Frame) {
	p1Alive, p2Alive, p1Ammo, p2Ammo := 0, 0, 0, 0
	for _, t := range f.Tanks {
		if !t.Alive {
			continue
		}
		switch t.PlayerID {
		case 1:
			p1Alive++
			p1Ammo += t.Ammo
		case 2:
			p2Alive++
			p2Ammo += t.Ammo
		}
	}
	fmt.Fprintf(w, "Player 1: %d tanks, %d shells remaining\n", p1Alive, p1Ammo)
	fmt.Fprintf(w, "Player 2: %d tanks, %d shells remaining\n", p2Alive, p2Ammo)
	fmt.Fprintf(w, "Tick: %d\n", f.Tick)
	if f.Done {
		fmt.Fprintf(w, "Result: %s\n", f.Result.String())
	}
}

// PrintFrame renders a full tick block: the board, tank status, shell
// status, and summary, in that order — the same grouping the original
// visualizer's per-turn loop printed, minus its interactive
// press-ENTER pacing (cmd/tanksim's render command paces frames with
// an explicit --delay flag instead of blocking on stdin).
func PrintFrame(w io.Writer, f Frame) {
	fmt.Fprintf(w, "=== Tick %d ===\n", f.Tick)
	PrintBoard(w, f)
	PrintTankStatus(w, f)
	PrintShellStatus(w, f)
	PrintSummary(w, f)
	fmt.Fprintln(w)
}
