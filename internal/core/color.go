package core

// Color is the foreground color of a screen cell.
type Color uint8

// Palette used by the platformer: terrain, actors, particles and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// ansiCodes maps colors to ANSI 256-color codes.
var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
	ColorOrange:       "208",
	ColorGray:         "245",
	ColorDarkGray:     "238",
}

// ANSI returns the ANSI 256-color code for c, or "" for the terminal's
// default foreground.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
