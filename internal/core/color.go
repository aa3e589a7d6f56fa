package core

// Color represents a foreground color for a screen cell.
// Hosts map it to their own palette (ANSI 256 codes for lipgloss, tcell colors).
type Color uint8

// Palette used by the playfield.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
	ColorLightGray
	ColorDarkGray
	ColorBrightGreen
	ColorBrightYellow
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorLightGray:
		return "lightgray"
	case ColorDarkGray:
		return "darkgray"
	case ColorBrightGreen:
		return "brightgreen"
	case ColorBrightYellow:
		return "brightyellow"
	default:
		return "unknown"
	}
}
