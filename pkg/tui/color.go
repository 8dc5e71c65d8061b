// Package tui provides the terminal rendering and input primitives: a
// double-buffered cell canvas that flushes minimal ANSI diffs, and a raw-mode
// terminal driver that decodes keyboard and SGR mouse input.
package tui

// Color is an index into the fixed 16-color palette.
type Color uint8

// Palette indices. The order matches the SGR tables below, not the ANSI
// numbering.
const (
	Black Color = iota
	Blue
	Magenta
	Green
	Red
	DarkGray
	LightGray
	White
	BrightRed
	Yellow
	BrightYellow
	BrightGreen
	Cyan
	BrightMagenta
	BrightCyan
	BrightBlue

	paletteSize = 16
)

var (
	fgCodes = [paletteSize]uint8{30, 34, 35, 32, 31, 90, 37, 97, 91, 33, 93, 92, 36, 95, 96, 94}
	bgCodes = [paletteSize]uint8{40, 44, 45, 42, 41, 100, 47, 107, 101, 43, 103, 102, 46, 105, 106, 104}

	colorNames = [paletteSize]string{
		"Black", "Blue", "Magenta", "Green", "Red", "DarkGray", "LightGray", "White",
		"BrightRed", "Yellow", "BrightYellow", "BrightGreen", "Cyan", "BrightMagenta", "BrightCyan", "BrightBlue",
	}
)

// FgCode returns the SGR foreground parameter for c.
func (c Color) FgCode() int {
	return int(fgCodes[c&0x0F])
}

// BgCode returns the SGR background parameter for c.
func (c Color) BgCode() int {
	return int(bgCodes[c&0x0F])
}

// Inverse returns the palette entry at the opposite end of the table.
func (c Color) Inverse() Color {
	return (paletteSize - 1) - c&0x0F
}

// String returns the palette name.
func (c Color) String() string {
	if c >= paletteSize {
		return "Invalid"
	}
	return colorNames[c]
}
