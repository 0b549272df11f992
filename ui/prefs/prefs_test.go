package prefs

import (
	"image/color"
	"testing"
)

func TestHexColorRoundTrip(t *testing.T) {
	in := color.RGBA{R: 0x19, G: 0x70, B: 0xE2, A: 255}
	s := FormatHexColor(in)
	if s != "#1970e2" {
		t.Fatalf("FormatHexColor = %q", s)
	}
	out, err := ParseHexColor(s)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("round trip: got %v, want %v", out, in)
	}
}

func TestParseHexColorRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "red", "123456"} {
		if _, err := ParseHexColor(s); err == nil {
			t.Fatalf("ParseHexColor(%q) should fail", s)
		}
	}
}
