package imaging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestPipeline_BorderOnly(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "src.png", createPatternImage(40, 30))
	dst := filepath.Join(dir, "out.png")

	p, err := NewPipeline(src, dst)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	if err := p.AddBorder(20).Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := Decode(dst)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if out.Bounds().Dx() != 80 || out.Bounds().Dy() != 70 {
		t.Errorf("dimensions: got %dx%d, want 80x70",
			out.Bounds().Dx(), out.Bounds().Dy())
	}
	r, g, b, a := out.At(0, 0).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Error("border corner is not white")
	}
}

func TestPipeline_FixedStageOrder(t *testing.T) {
	// Stages must run border -> aspect fill -> resize even when requested in
	// the opposite order. 100x200 + border 10 = 120x220, squared = 220x220,
	// longest side 110 = 110x110. Request order would instead give 130x130.
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "src.png", createPatternImage(100, 200))
	dst := filepath.Join(dir, "out.png")

	p, err := NewPipeline(src, dst)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	err = p.LongestSide(110).FillToAspectRatio(1, 1).AddBorder(10).Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	w, h, err := Dimensions(dst)
	if err != nil {
		t.Fatalf("Dimensions failed: %v", err)
	}
	if w != 110 || h != 110 {
		t.Errorf("dimensions: got %dx%d, want 110x110", w, h)
	}
}

func TestPipeline_EmptyOutputOverwritesSource(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "src.png", createPatternImage(30, 30))

	p, err := NewPipeline(src, "")
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	if err := p.AddBorder(5).Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	w, h, err := Dimensions(src)
	if err != nil {
		t.Fatalf("Dimensions failed: %v", err)
	}
	if w != 40 || h != 40 {
		t.Errorf("source not overwritten: got %dx%d, want 40x40", w, h)
	}
}

func TestPipeline_ZeroBorderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	pattern := createPatternImage(25, 17)
	src := writeTestPNG(t, dir, "src.png", pattern)
	dst := filepath.Join(dir, "out.png")

	p, err := NewPipeline(src, dst)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	if err := p.AddBorder(0).Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := Decode(dst)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !sameImage(pattern, out) {
		t.Error("zero-border save altered pixel content")
	}
}

func TestPipeline_NoRequestsIsPlainCopy(t *testing.T) {
	dir := t.TempDir()
	pattern := createPatternImage(20, 20)
	src := writeTestPNG(t, dir, "src.png", pattern)
	dst := filepath.Join(dir, "copy.png")

	if err := Run(src, dst, Options{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out, err := Decode(dst)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !sameImage(pattern, out) {
		t.Error("copy without transforms altered pixel content")
	}
}

func TestPipeline_SquareFillScenario(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "src.png", createPatternImage(1000, 2000))
	dst := filepath.Join(dir, "out.png")

	opts := Options{AspectRatio: &Ratio{W: 1, H: 1}}
	if err := Run(src, dst, opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	w, h, err := Dimensions(dst)
	if err != nil {
		t.Fatalf("Dimensions failed: %v", err)
	}
	if w != 2000 || h != 2000 {
		t.Errorf("dimensions: got %dx%d, want 2000x2000", w, h)
	}
}

func TestPipeline_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative border", Options{Border: intPtr(-1)}},
		{"zero longest side", Options{LongestSide: intPtr(0)}},
		{"negative longest side", Options{LongestSide: intPtr(-100)}},
		{"zero ratio width", Options{AspectRatio: &Ratio{W: 0, H: 1}}},
		{"negative ratio height", Options{AspectRatio: &Ratio{W: 1, H: -2}}},
	}

	dir := t.TempDir()
	src := writeTestPNG(t, dir, "src.png", createPatternImage(10, 10))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := filepath.Join(dir, "rejected.png")
			err := Run(src, dst, tt.opts)
			if err == nil {
				t.Fatal("Run should reject invalid options")
			}

			// A rejected configuration must not touch the destination.
			if _, statErr := os.Stat(dst); !errors.Is(statErr, os.ErrNotExist) {
				t.Error("destination was written despite invalid options")
			}
		})
	}
}

func TestPipeline_DecodeErrorSurfaced(t *testing.T) {
	_, err := NewPipeline(filepath.Join(t.TempDir(), "absent.png"), "")
	if err == nil {
		t.Fatal("NewPipeline should fail for a missing source")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("error type: got %T, want *DecodeError", err)
	}
}

func TestPipeline_EncodeErrorSurfaced(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "src.png", createPatternImage(10, 10))

	p, err := NewPipeline(src, filepath.Join(dir, "no-such-dir", "out.png"))
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	err = p.AddBorder(2).Save()
	if err == nil {
		t.Fatal("Save should fail for an unwritable destination")
	}

	var encodeErr *EncodeError
	if !errors.As(err, &encodeErr) {
		t.Errorf("error type: got %T, want *EncodeError", err)
	}
}

func TestPipeline_AllThreeStages(t *testing.T) {
	// 300x200: border 10 = 320x220, squared = 320x320, longest 160 = 160x160.
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "src.png", createPatternImage(300, 200))
	dst := filepath.Join(dir, "out.png")

	opts := Options{
		Border:      intPtr(10),
		AspectRatio: &Ratio{W: 1, H: 1},
		LongestSide: intPtr(160),
	}
	if err := Run(src, dst, opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	w, h, err := Dimensions(dst)
	if err != nil {
		t.Fatalf("Dimensions failed: %v", err)
	}
	if w != 160 || h != 160 {
		t.Errorf("dimensions: got %dx%d, want 160x160", w, h)
	}
}
