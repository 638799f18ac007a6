package render

import (
	"image/color"
	"strconv"
	"strings"
)

// Hex parses "#RRGGBB" or "#RRGGBBAA". Malformed input yields opaque gray.
func Hex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{128, 128, 128, 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{128, 128, 128, 255}
	}
	if len(s) == 6 {
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
	}
	return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// Fade returns c with alpha multiplied by a (premultiplied).
func Fade(c color.Color, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	r, g, b, al := c.RGBA()
	return color.RGBA{
		uint8(float64(r>>8) * a),
		uint8(float64(g>>8) * a),
		uint8(float64(b>>8) * a),
		uint8(float64(al>>8) * a),
	}
}

// Common palette.
var (
	White   = color.RGBA{255, 255, 255, 255}
	Gold    = color.RGBA{255, 215, 0, 255}
	Pink    = color.RGBA{255, 105, 180, 255}
	Green   = color.RGBA{76, 175, 80, 255}
	Ink     = color.RGBA{51, 51, 51, 255}
	Night   = color.RGBA{26, 5, 51, 255}
	Shade   = color.RGBA{0, 0, 0, 128}
	Locked  = color.RGBA{85, 85, 85, 255}
	Blossom = color.RGBA{255, 192, 203, 255}
	Red     = color.RGBA{255, 68, 68, 255}
)
