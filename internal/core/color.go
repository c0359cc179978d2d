package core

// Color is a palette entry for a screen cell's foreground.
type Color uint8

const (
	ColorDefault Color = iota // terminal foreground
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorIce    // normal tiles in the ice cave
	ColorAurora // normal tiles in the aurora peaks
	ColorPink   // second climber

	colorCount
)

// colorCodes are ANSI 256-color codes indexed by Color.
var colorCodes = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorIce:           "153",
	ColorAurora:        "43",
	ColorPink:          "213",
}

// Colors returns every palette entry in order.
func Colors() []Color {
	out := make([]Color, 0, colorCount)
	for c := range colorCount {
		out = append(out, c)
	}
	return out
}

// Code returns the ANSI 256-color code, or "" for the terminal default
// and unknown values.
func (c Color) Code() string {
	if c >= colorCount {
		return ""
	}
	return colorCodes[c]
}

// Bright reports whether the color is one of the high-intensity entries.
// Climbers, pickups and alerts use these.
func (c Color) Bright() bool {
	return c >= ColorBrightRed && c <= ColorBrightWhite
}
