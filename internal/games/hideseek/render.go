package hideseek

import (
	"fmt"

	"github.com/vovakirdan/tui-mazes/internal/core"
)

// Rows reserved under the playfield for the status line and key help.
const hudRows = 2

// viewportOrigin returns the top-left grid cell shown on a viewW x viewH
// window so that the player stays visible on grids larger than the screen.
func viewportOrigin(s *GameState, viewW, viewH int) (int, int) {
	ox := core.Clamp(s.Player.X-viewW/2, 0, max(s.Grid.Width()-viewW, 0))
	oy := core.Clamp(s.Player.Y-viewH/2, 0, max(s.Grid.Height()-viewH, 0))
	return ox, oy
}

// RenderGrid draws the visible part of the grid into the top viewH rows of dst.
func RenderGrid(dst *core.Screen, s *GameState, viewW, viewH int) {
	ox, oy := viewportOrigin(s, viewW, viewH)

	for sy := 0; sy < viewH && oy+sy < s.Grid.Height(); sy++ {
		for sx := 0; sx < viewW && ox+sx < s.Grid.Width(); sx++ {
			c, _ := s.Grid.At(ox+sx, oy+sy)
			r, pair := c.Glyph()
			dst.SetStyled(sx, sy, r, pair)
		}
	}
}

// renderHUD draws the status and help lines at the bottom of dst.
func renderHUD(dst *core.Screen, s *GameState) {
	status := "visible"
	statusColor := core.Fg(core.ColorBrightYellow)
	if s.PlayerHidden() {
		status = "hidden"
		statusColor = core.Fg(core.ColorCyan)
	}

	y := dst.Height() - hudRows
	line := fmt.Sprintf(" Rounds: %d  Player: (%d,%d) ", s.Round, s.Player.X, s.Player.Y)
	dst.DrawText(0, y, line)
	dst.DrawTextStyled(len(line), y, status, statusColor)

	dst.DrawTextStyled(0, y+1, " W/A/S/D: move  Q: quit   @ you  H hiding spot  D door  E searchlight",
		core.Fg(core.ColorGray))
}
