package core

// Color is a terminal palette entry for a screen cell.
// ColorDefault leaves the terminal's own color in place.
type Color uint8

// Palette used by the maze games.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightWhite
)

var ansiCodes = [...]string{
	ColorDefault:       "",
	ColorBlack:         "0",
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorGray:          "245",
	ColorBrightRed:     "9",
	ColorBrightYellow:  "11",
	ColorBrightMagenta: "13",
	ColorBrightWhite:   "15",
}

// ANSI returns the 256-color code for c, or "" for the terminal default
// and unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

// Pair is a foreground/background color combination, like a curses color pair.
type Pair struct {
	Fg Color
	Bg Color
}

// NewPair creates a color pair.
func NewPair(fg, bg Color) Pair {
	return Pair{Fg: fg, Bg: bg}
}

// Fg creates a pair that only sets the foreground.
func Fg(c Color) Pair {
	return Pair{Fg: c}
}

// On returns p drawn over the given background.
func (p Pair) On(bg Color) Pair {
	p.Bg = bg
	return p
}

// Plain reports whether p leaves both colors to the terminal.
func (p Pair) Plain() bool {
	return p == Pair{}
}
