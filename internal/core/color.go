package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// confettiPalette is cycled by the celebration effect.
var confettiPalette = []Color{
	ColorBrightRed,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorCyan,
	ColorMagenta,
	ColorOrange,
}

// ConfettiColor returns the palette entry for index i, wrapping around.
func ConfettiColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return confettiPalette[i%len(confettiPalette)]
}
