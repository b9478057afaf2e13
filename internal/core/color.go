package core

// Color is the foreground color of a screen cell.
type Color uint8

const (
	ColorDefault       Color = iota
	ColorBrightWhite         // snake head
	ColorGray                // snake body
	ColorBrightMagenta       // food
	ColorDarkGray            // arena border
	ColorYellow              // overlay text
)

// ansiCodes holds the 256-color palette index of each color.
var ansiCodes = [...]string{
	ColorDefault:       "",
	ColorBrightWhite:   "15",
	ColorGray:          "245",
	ColorBrightMagenta: "13",
	ColorDarkGray:      "238",
	ColorYellow:        "11",
}

// ANSI returns the 256-color code for c. The terminal default color and
// unknown values return "".
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
