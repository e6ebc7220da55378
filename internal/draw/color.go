package draw

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Common color names mapped to hex, for palettes written the way a web
// page would name them.
var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"lime":   "#00ff00",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"gray":   "#808080",
	"grey":   "#808080",
	"navy":   "#000080",
	"purple": "#800080",
}

// ANSI escape codes used for text overlays.
const (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
)

// ColorHex resolves a color name to its hex form. Hex colors and ANSI
// color numbers pass through unchanged.
func ColorHex(color string) string {
	if hex, ok := namedColors[strings.ToLower(color)]; ok {
		return hex
	}
	return color
}

// ContrastText returns black or white, whichever reads better on top of
// color. Unparseable colors get white.
func ContrastText(color string) string {
	c, err := colorful.Hex(ColorHex(color))
	if err != nil {
		return namedColors["white"]
	}
	if l, _, _ := c.Lab(); l > 0.6 {
		return namedColors["black"]
	}
	return namedColors["white"]
}
