package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal backends.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// ANSI returns the 256-color palette index for the color.
// ColorDefault returns -1, meaning "terminal default".
func (c Color) ANSI() int {
	switch c {
	case ColorRed:
		return 9
	case ColorGreen:
		return 10
	case ColorDarkGreen:
		return 28
	case ColorYellow:
		return 11
	case ColorBlue:
		return 12
	case ColorMagenta:
		return 13
	case ColorCyan:
		return 14
	case ColorWhite:
		return 15
	case ColorOrange:
		return 208
	case ColorGray:
		return 245
	case ColorDarkGray:
		return 238
	default:
		return -1
	}
}
