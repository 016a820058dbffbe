package imaging

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultFill is the paint color used by the border and aspect-fill stages
// when no explicit color is configured: opaque white.
var DefaultFill = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// ParseFillColor parses a hex color string such as "#ffffff" into an opaque
// fill color.
func ParseFillColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid fill color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
