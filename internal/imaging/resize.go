package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ResizeLongestSide scales img uniformly so its longest dimension equals
// longest, preserving aspect ratio. Both dimensions scale by the same factor,
// so the result always fits within a longest×longest bounding box; nothing is
// padded or cropped. Lanczos resampling is used for both downscales and
// upscales.
func ResizeLongestSide(img image.Image, longest int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	tw, th := longestSideDimensions(w, h, longest)
	if tw == w && th == h {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, tw, th, imaging.Lanczos)
}

func longestSideDimensions(w, h, longest int) (int, int) {
	if w >= h {
		return longest, scaledDimension(h, longest, w)
	}
	return scaledDimension(w, longest, h), longest
}

// scaledDimension computes dim scaled by longest/orig, rounded to the nearest
// pixel (half-pixel results go to the nearest even value) with a floor of 1.
func scaledDimension(dim, longest, orig int) int {
	s := int(math.RoundToEven(float64(dim) * float64(longest) / float64(orig)))
	if s < 1 {
		s = 1
	}
	return s
}
