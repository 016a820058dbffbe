package imaging

import (
	"image/color"
	"testing"
)

func TestParseFillColor(t *testing.T) {
	tests := []struct {
		hex  string
		want color.NRGBA
	}{
		{"#ffffff", color.NRGBA{255, 255, 255, 255}},
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"#ff8800", color.NRGBA{255, 136, 0, 255}},
		{"#1a2b3c", color.NRGBA{26, 43, 60, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := ParseFillColor(tt.hex)
			if err != nil {
				t.Fatalf("ParseFillColor(%q) failed: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("ParseFillColor(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestParseFillColor_Invalid(t *testing.T) {
	for _, hex := range []string{"", "white", "#zzzzzz", "123456#"} {
		if _, err := ParseFillColor(hex); err == nil {
			t.Errorf("ParseFillColor(%q) should fail", hex)
		}
	}
}

func TestDefaultFillIsOpaqueWhite(t *testing.T) {
	if DefaultFill != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("DefaultFill = %v, want opaque white", DefaultFill)
	}
}
