package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the catcher and HUD. ColorDefault leaves the terminal color alone.
const (
	ColorDefault Color = iota
	ColorPrimary       // coral, the doodle ink
	ColorGolden
	ColorRotten
	ColorBomb
	ColorDim
	ColorFaint
	ColorBright
)
