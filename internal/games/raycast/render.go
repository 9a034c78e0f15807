package raycast

import "github.com/vovakirdan/tui-mazes/internal/core"

var (
	colorSideX = core.Fg(core.ColorBrightWhite)
	colorSideY = core.Fg(core.ColorGray)
)

// wallGlyph returns the glyph and colors for a wall face.
// X-side and Y-side faces get different glyphs so corners stay readable.
func wallGlyph(side Side) (rune, core.Pair) {
	if side == SideY {
		return '|', colorSideY
	}
	return '#', colorSideX
}

// sliceBounds returns the rows [start, end) covered by a wall slice at the
// given perpendicular distance, centered and clipped to the view height.
func sliceBounds(dist float64, viewH int) (start, end int) {
	lineHeight := viewH
	if dist > 1e-6 {
		lineHeight = int(float64(viewH) / dist)
	}

	start = -lineHeight/2 + viewH/2
	if start < 0 {
		start = 0
	}
	end = lineHeight/2 + viewH/2
	if end >= viewH {
		end = viewH - 1
	}
	return start, end
}

// RenderView draws the first-person view into the top viewW x viewH area of dst.
func RenderView(dst *core.Screen, m *Map, p Player, viewW, viewH int) {
	if viewW <= 0 || viewH <= 0 {
		return
	}

	for x := range viewW {
		cameraX := 2*float64(x)/float64(viewW) - 1
		hit := CastRay(m, p, cameraX)
		if !hit.Hit {
			continue
		}

		glyph, color := wallGlyph(hit.Side)
		start, end := sliceBounds(hit.Dist, viewH)
		for y := start; y < end; y++ {
			dst.SetStyled(x, y, glyph, color)
		}
	}
}
