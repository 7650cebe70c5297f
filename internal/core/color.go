package core

// Color is a foreground color for a screen cell. Values map to ANSI
// 256-color codes through Code, so any terminal renderer can use them.
type Color uint8

// Colors used by the glider renderer and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)

var colorCodes = [...]string{
	ColorRed:          "1",
	ColorYellow:       "3",
	ColorCyan:         "6",
	ColorGray:         "245",
	ColorBrightRed:    "9",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorBrightWhite:  "15",
}

// Code returns the ANSI 256-color code for c, or "" for ColorDefault and
// unknown values.
func (c Color) Code() string {
	if int(c) >= len(colorCodes) {
		return ""
	}
	return colorCodes[c]
}

// Colors lists every non-default color.
func Colors() []Color {
	return []Color{
		ColorRed, ColorYellow, ColorCyan, ColorGray,
		ColorBrightRed, ColorBrightYellow, ColorBrightCyan, ColorBrightWhite,
	}
}
