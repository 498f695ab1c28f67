package model

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"FF8000", Color{R: 255, G: 128, B: 0, A: 255}},
		{"FF800080", Color{R: 255, G: 128, B: 0, A: 128}},
		{"000000", Color{A: 255}},
		{"FFFFFF", Color{R: 255, G: 255, B: 255, A: 255}},
		{"ff8000", Color{R: 255, G: 128, B: 0, A: 255}}, // lowercase hex
		{"", Color{A: 255}},
		{"FFF", Color{A: 255}},       // too short
		{"FF80001", Color{A: 255}},   // length 7
		{"FF8000001", Color{A: 255}}, // too long
		{"GGGGGG", Color{A: 255}},    // invalid digits
		{"FF80ZZ", Color{A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseColor(tt.input)
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColor_Empty(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  bool
	}{
		{"default", DefaultColor(), true},
		{"opaque black", Color{A: 255}, true},
		{"red", Color{R: 255, A: 255}, false},
		{"translucent black", Color{A: 128}, false},
		{"zero value", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor_Hex(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Color{R: 255, G: 128, B: 0, A: 255}, "FF8000"},
		{Color{A: 255}, "000000"},
		{Color{R: 1, G: 2, B: 3, A: 255}, "010203"},
	}

	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("Hex() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseColor_RoundTrip(t *testing.T) {
	for _, hex := range []string{"FF8000", "123456", "ABCDEF"} {
		c := ParseColor(hex)
		if got := c.Hex(); got != hex {
			t.Errorf("ParseColor(%q).Hex() = %q", hex, got)
		}
	}
}
