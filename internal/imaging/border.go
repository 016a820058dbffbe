package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// AddBorder returns img framed by a uniform border of the given thickness on
// every side, so a w×h input becomes (w+2t)×(h+2t). The border region is
// painted with the fill color; the interior is a verbatim copy of the source.
// A thickness of zero returns an unchanged copy.
func AddBorder(img image.Image, thickness int, fill color.Color) *image.NRGBA {
	if thickness <= 0 {
		return imaging.Clone(img)
	}
	b := img.Bounds()
	canvas := imaging.New(b.Dx()+2*thickness, b.Dy()+2*thickness, fill)
	return imaging.Paste(canvas, img, image.Pt(thickness, thickness))
}
