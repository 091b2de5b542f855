package model

// Color is one of the four tile colors on the board
type Color int

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
)

// NumColors is the number of distinct tile colors
const NumColors = 4

// String returns a human-readable color name
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// IsValid returns true if the color is one of the four tile colors
func (c Color) IsValid() bool {
	return c >= ColorRed && c <= ColorYellow
}
