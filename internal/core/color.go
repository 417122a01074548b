package core

// Color is a foreground color tag for a screen cell. The platform layer maps
// these to terminal styles; the core never emits ANSI itself.
type Color uint8

// Colors used by the board renderer. The numbered colors follow the classic
// minesweeper palette (1 blue, 2 green, 3 red, ...).
const (
	ColorDefault Color = iota
	ColorBlue
	ColorGreen
	ColorRed
	ColorDarkBlue
	ColorDarkRed
	ColorCyan
	ColorMagenta
	ColorGray
	ColorYellow
	ColorBrightYellow
	ColorBrightRed
	ColorBrightGreen
	ColorWhite
)
