package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI colors for terminal display.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorSnake
	ColorFood
	ColorObstacle
	ColorBorder
	ColorText
	ColorAccent
	ColorDim
)
