package imaging

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DecodeError reports that a source image could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports that a result could not be written to its destination.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Decode loads the image at path into an in-memory RGBA buffer.
//
// The decoded image is normalized to *image.NRGBA regardless of the source
// color model. Supported source formats are PNG, JPEG, GIF, TIFF, BMP and
// WebP. A missing file, an unreadable file, or an unsupported format all
// yield a *DecodeError.
func Decode(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return imaging.Clone(img), nil
}

// Encode writes img to path, choosing the output format from the file
// extension.
//
// Formats without an alpha channel (JPEG, BMP) cannot represent transparent
// pixels, so a buffer that is not fully opaque is first flattened against bg.
// An unwritable destination or an unsupported extension yields an
// *EncodeError.
func Encode(img *image.NRGBA, path string, bg color.Color) error {
	var out image.Image = img
	if opaqueOnly(path) && !img.Opaque() {
		out = flatten(img, bg)
	}
	if err := imaging.Save(out, path); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

// opaqueOnly reports whether the format implied by path's extension has no
// alpha channel.
func opaqueOnly(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".bmp":
		return true
	}
	return false
}

// flatten composites img over a canvas of the background color, discarding
// transparency.
func flatten(img *image.NRGBA, bg color.Color) image.Image {
	b := img.Bounds()
	base := imaging.New(b.Dx(), b.Dy(), bg)
	return blend.Normal(base, img)
}

// Dimensions reads the pixel size of the image at path without decoding the
// full pixel data.
func Dimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, &DecodeError{Path: path, Err: err}
	}
	return cfg.Width, cfg.Height, nil
}
