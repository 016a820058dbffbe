package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nannilab/photoprep/internal/annotate"
	"github.com/nannilab/photoprep/internal/caption"
	"github.com/nannilab/photoprep/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Defaults applied when a transform is requested without an explicit value.
// These are caller-side constants; the pipeline itself has no defaults.
const (
	defaultBorderPx    = 20
	defaultLongestSide = 1350
	defaultLab         = "@nanni_lab"
	defaultTitle       = "."
)

func main() {
	// Diagnostics go to stderr; stdout is reserved for caption output.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("PHOTOPREP_LOG_LEVEL") == "debug" {
		log.Printf("photoprep %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("photoprep %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	case "--help", "-h", "help":
		usage()
	case "image":
		err = runImage(os.Args[2:])
	case "annotate":
		err = runAnnotate(os.Args[2:])
	case "caption":
		err = runCaption(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Println("photoprep - prepare film photographs for posting")
	fmt.Println()
	fmt.Println("Usage: photoprep <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  image      Apply border, aspect-ratio fill and resize transforms")
	fmt.Println("  annotate   Add a caption strip with shot settings under the photo")
	fmt.Println("  caption    Print social-media post text for a shot")
	fmt.Println("  version    Print version information")
	fmt.Println()
	fmt.Println("Run 'photoprep <command> -h' for command options.")
}

// optionalInt is an int flag that may be given bare (-border) to request the
// stage with its default value, or with an explicit value (-border=15).
type optionalInt struct {
	set      bool
	value    int
	fallback int
}

func (f *optionalInt) String() string {
	if !f.set {
		return ""
	}
	return strconv.Itoa(f.value)
}

func (f *optionalInt) Set(s string) error {
	if s == "true" {
		f.value = f.fallback
		f.set = true
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected a pixel count, got %q", s)
	}
	f.value = n
	f.set = true
	return nil
}

func (f *optionalInt) IsBoolFlag() bool { return true }

// optionalRatio is a flag taking a W:H aspect ratio (-aspect=4:5), or bare
// (-aspect) for 1:1.
type optionalRatio struct {
	set  bool
	w, h float64
}

func (f *optionalRatio) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%g:%g", f.w, f.h)
}

func (f *optionalRatio) Set(s string) error {
	if s == "true" {
		f.w, f.h = 1, 1
		f.set = true
		return nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return fmt.Errorf("expected W:H, got %q", s)
	}
	w, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return fmt.Errorf("invalid ratio width %q", parts[0])
	}
	h, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return fmt.Errorf("invalid ratio height %q", parts[1])
	}
	f.w, f.h = w, h
	f.set = true
	return nil
}

func (f *optionalRatio) IsBoolFlag() bool { return true }

func runImage(args []string) error {
	fs := flag.NewFlagSet("image", flag.ExitOnError)
	var input, output, fill string
	border := optionalInt{fallback: defaultBorderPx}
	longest := optionalInt{fallback: defaultLongestSide}
	var aspect optionalRatio
	fs.StringVar(&input, "input", "", "path to the source image (required)")
	fs.StringVar(&input, "i", "", "shorthand for -input")
	fs.StringVar(&output, "output", "", "destination path (default: overwrite the source)")
	fs.StringVar(&output, "o", "", "shorthand for -output")
	fs.Var(&border, "border", fmt.Sprintf("add a border; -border=N for N pixels per side, bare for %d", defaultBorderPx))
	fs.Var(&aspect, "aspect", "pad to a W:H aspect ratio; -aspect=4:5, bare for 1:1")
	fs.Var(&longest, "longest", fmt.Sprintf("scale so the longest side is N pixels; -longest=N, bare for %d", defaultLongestSide))
	fs.StringVar(&fill, "fill", "", "padding color as #RRGGBB (default white)")
	fs.Parse(args)

	if input == "" {
		return errors.New("-input is required")
	}

	var opts imaging.Options
	if border.set {
		opts.Border = &border.value
	}
	if aspect.set {
		opts.AspectRatio = &imaging.Ratio{W: aspect.w, H: aspect.h}
	}
	if longest.set {
		opts.LongestSide = &longest.value
	}
	if fill != "" {
		c, err := imaging.ParseFillColor(fill)
		if err != nil {
			return err
		}
		opts.Fill = c
	}

	if err := imaging.Run(input, output, opts); err != nil {
		return err
	}

	if output == "" {
		output = input
	}
	if w, h, err := imaging.Dimensions(output); err == nil {
		log.Printf("wrote %s (%dx%d)", output, w, h)
	}
	return nil
}

func runAnnotate(args []string) error {
	fs := flag.NewFlagSet("annotate", flag.ExitOnError)
	var input, output string
	var s annotate.Settings
	fs.StringVar(&input, "input", "", "path to the source image (required)")
	fs.StringVar(&input, "i", "", "shorthand for -input")
	fs.StringVar(&output, "output", "", "destination path (default: overwrite the source)")
	fs.StringVar(&output, "o", "", "shorthand for -output")
	fs.StringVar(&s.Camera, "camera", "", "camera name (required)")
	fs.StringVar(&s.FocalLength, "focal", "", "focal length in mm")
	fs.StringVar(&s.Aperture, "aperture", "", "aperture f-number")
	fs.StringVar(&s.ShutterSpeed, "shutter", "", "shutter speed in seconds")
	fs.StringVar(&s.ISO, "iso", "", "film or sensor ISO")
	fs.Parse(args)

	if input == "" {
		return errors.New("-input is required")
	}
	if s.Camera == "" {
		return errors.New("-camera is required")
	}
	if output == "" {
		output = input
	}

	img, err := imaging.Decode(input)
	if err != nil {
		return err
	}
	out := annotate.Apply(img, s.Lines())
	if err := imaging.Encode(out, output, imaging.DefaultFill); err != nil {
		return err
	}
	log.Printf("wrote %s", output)
	return nil
}

func runCaption(args []string) error {
	fs := flag.NewFlagSet("caption", flag.ExitOnError)
	var camera, film, filmType, lab, title string
	fs.StringVar(&camera, "camera", "", "camera name (required)")
	fs.StringVar(&film, "film", "", "film stock name")
	fs.StringVar(&filmType, "type", string(caption.Color), "film type: color, black-and-white, lomography-color, lomography-black-and-white")
	fs.StringVar(&lab, "lab", defaultLab, "lab that developed the film")
	fs.StringVar(&title, "title", defaultTitle, "post title")
	fs.Parse(args)

	if camera == "" {
		return errors.New("-camera is required")
	}
	ft, err := caption.ParseFilmType(filmType)
	if err != nil {
		return err
	}

	fmt.Println(caption.Build(caption.Post{
		Title:  title,
		Camera: camera,
		Film:   film,
		Lab:    lab,
		Type:   ft,
	}))
	return nil
}
