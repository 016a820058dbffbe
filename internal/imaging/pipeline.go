package imaging

import (
	"fmt"
	"image"
	"image/color"
)

// Ratio is a target width:height aspect ratio. Both components must be
// positive.
type Ratio struct {
	W float64
	H float64
}

// Options holds the transform requests for one pipeline run. Each field is
// independently optional; nil means the stage is skipped entirely. Default
// values for stages requested without an explicit parameter belong to the
// caller, not here.
type Options struct {
	// Border is the frame thickness in pixels added on each side.
	Border *int

	// AspectRatio is the target width:height ratio to pad towards.
	AspectRatio *Ratio

	// LongestSide is the target length of the longest dimension in pixels.
	LongestSide *int

	// Fill is the paint color for the border and aspect-fill stages and the
	// flatten background on save. Nil means DefaultFill.
	Fill color.Color
}

func (o Options) validate() error {
	if o.Border != nil && *o.Border < 0 {
		return fmt.Errorf("border thickness must not be negative, got %d", *o.Border)
	}
	if o.AspectRatio != nil && (o.AspectRatio.W <= 0 || o.AspectRatio.H <= 0) {
		return fmt.Errorf("aspect ratio components must be positive, got %g:%g",
			o.AspectRatio.W, o.AspectRatio.H)
	}
	if o.LongestSide != nil && *o.LongestSide <= 0 {
		return fmt.Errorf("longest side must be positive, got %d", *o.LongestSide)
	}
	return nil
}

func (o Options) fill() color.Color {
	if o.Fill == nil {
		return DefaultFill
	}
	return o.Fill
}

// Pipeline owns one decoded buffer from construction until the terminal Save.
// Transform requests accumulate builder-style and run in the fixed order
// border → aspect fill → longest side, regardless of the order in which they
// were requested. A Pipeline is for a single run and must not be reused
// after Save.
type Pipeline struct {
	img  *image.NRGBA
	dest string
	opts Options
}

// NewPipeline decodes the image at input and prepares a pipeline writing to
// output. An empty output means the result overwrites the input on Save.
func NewPipeline(input, output string) (*Pipeline, error) {
	img, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if output == "" {
		output = input
	}
	return &Pipeline{img: img, dest: output}, nil
}

// AddBorder requests a border of the given thickness in pixels.
func (p *Pipeline) AddBorder(px int) *Pipeline {
	p.opts.Border = &px
	return p
}

// FillToAspectRatio requests whitespace padding to the given width:height
// ratio.
func (p *Pipeline) FillToAspectRatio(w, h float64) *Pipeline {
	p.opts.AspectRatio = &Ratio{W: w, H: h}
	return p
}

// LongestSide requests a uniform scale so the longest dimension equals px.
func (p *Pipeline) LongestSide(px int) *Pipeline {
	p.opts.LongestSide = &px
	return p
}

// Fill overrides the paint color used by the border and aspect-fill stages.
func (p *Pipeline) Fill(c color.Color) *Pipeline {
	p.opts.Fill = c
	return p
}

// Save validates the accumulated requests, applies the requested stages in
// their fixed order, and encodes the result to the destination. It is the
// single point of I/O side effects: no intermediate stage output is ever
// written, so a failed save leaves the destination as it was.
func (p *Pipeline) Save() error {
	if err := p.opts.validate(); err != nil {
		return err
	}
	p.img = applyStages(p.img, p.opts)
	return Encode(p.img, p.dest, p.opts.fill())
}

// Run is the one-shot form of the pipeline: decode input, apply opts, write
// to output (or back to input when output is empty).
func Run(input, output string, opts Options) error {
	p, err := NewPipeline(input, output)
	if err != nil {
		return err
	}
	p.opts = opts
	return p.Save()
}

func applyStages(img *image.NRGBA, opts Options) *image.NRGBA {
	fill := opts.fill()
	if opts.Border != nil {
		img = AddBorder(img, *opts.Border, fill)
	}
	if opts.AspectRatio != nil {
		img = FillToAspectRatio(img, opts.AspectRatio.W, opts.AspectRatio.H, fill)
	}
	if opts.LongestSide != nil {
		img = ResizeLongestSide(img, *opts.LongestSide)
	}
	return img
}
