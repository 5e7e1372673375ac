package core

// Color is a foreground colour tag for a screen cell or a locked block.
// Values map to ANSI 256-colour codes in the platform renderer.
type Color uint8

// Palette shared by the engine (block colours) and the renderer (chrome).
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// String returns the colour name, used in snapshots and debug output.
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
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "darkgray"
	default:
		return "unknown"
	}
}
