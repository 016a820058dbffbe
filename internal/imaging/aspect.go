package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// FillToAspectRatio pads img with the fill color along one axis so its
// width:height ratio matches rw:rh. Content is never cropped or scaled; the
// original pixels are centered on the growing axis, with any odd leftover
// pixel landing on the trailing side.
//
// When the centering offset is zero on both axes the buffer is already at
// (or within one pixel of) the target ratio and an unchanged copy is
// returned.
func FillToAspectRatio(img image.Image, rw, rh float64, fill color.Color) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	tw, th := aspectDimensions(w, h, rw, rh)

	xOffset, yOffset := 0, 0
	if w < tw {
		xOffset = (tw - w) / 2
	} else {
		yOffset = (th - h) / 2
	}
	if xOffset == 0 && yOffset == 0 {
		return imaging.Clone(img)
	}

	canvas := imaging.New(tw, th, fill)
	return imaging.Paste(canvas, img, image.Pt(xOffset, yOffset))
}

// aspectDimensions computes the smallest canvas no smaller than w×h whose
// sides satisfy rw:rh. Candidate dimensions round up, so the result may
// exceed the exact ratio by at most one pixel per axis. The canvas only ever
// grows: a ratio that would require shrinking a dimension grows the other
// one instead.
func aspectDimensions(w, h int, rw, rh float64) (int, int) {
	ratio := rw / rh
	candidateHeight := int(math.Ceil(float64(w) / ratio))
	if candidateHeight >= h {
		return w, candidateHeight
	}
	candidateWidth := int(math.Ceil(float64(h) * ratio))
	return candidateWidth, h
}
