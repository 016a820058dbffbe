// Package annotate renders a shot-metadata caption strip under a photo.
package annotate

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Settings carries the shot metadata printed in the caption strip. All fields
// are free-form strings so values like "1/250" shutter speeds or "2.8-4"
// zoom apertures render as given.
type Settings struct {
	Camera       string
	FocalLength  string
	Aperture     string
	ShutterSpeed string
	ISO          string
}

// Lines formats the strip content: the camera name on the first line and the
// exposure settings on the second.
func (s Settings) Lines() []string {
	return []string{
		s.Camera,
		fmt.Sprintf("%smm  f%s  %ss  ISO%s", s.FocalLength, s.Aperture, s.ShutterSpeed, s.ISO),
	}
}

var (
	stripColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	textColor  = color.NRGBA{R: 64, G: 64, B: 64, A: 255}
)

const (
	stripPad    = 14
	lineSpacing = 5
)

// Apply returns img extended at the bottom by a white strip carrying the
// given caption lines, each horizontally centered. The photo content itself
// is not modified; the result is a new buffer of size (w, h+strip).
func Apply(img image.Image, lines []string) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	face := basicfont.Face7x13
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil() + lineSpacing

	stripHeight := 2*stripPad + len(lines)*lineHeight - lineSpacing
	canvas := imaging.New(w, h+stripHeight, stripColor)
	canvas = imaging.Paste(canvas, img, image.Pt(0, 0))

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(textColor),
		Face: face,
	}

	baseline := h + stripPad + ascent
	for _, line := range lines {
		width := drawer.MeasureString(line).Ceil()
		x := (w - width) / 2
		if x < 0 {
			x = 0
		}
		drawer.Dot = fixed.P(x, baseline)
		drawer.DrawString(line)
		baseline += lineHeight
	}

	return canvas
}
