package core

import "testing"

func TestColorCodes(t *testing.T) {
	tests := []struct {
		color Color
		code  string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorIce, "153"},
		{ColorPink, "213"},
		{Color(250), ""},
	}
	for _, tt := range tests {
		if got := tt.color.Code(); got != tt.code {
			t.Errorf("Color(%d).Code() = %q, expected %q", tt.color, got, tt.code)
		}
	}
}

func TestEveryNamedColorHasCode(t *testing.T) {
	colors := Colors()
	if len(colors) != int(ColorPink)+1 {
		t.Fatalf("len(Colors()) = %d, expected %d", len(colors), int(ColorPink)+1)
	}
	for _, c := range colors[1:] {
		if c.Code() == "" {
			t.Errorf("Color(%d) has no code", c)
		}
	}
}

func TestColorBright(t *testing.T) {
	tests := []struct {
		color Color
		want  bool
	}{
		{ColorRed, false},
		{ColorBrightRed, true},
		{ColorBrightWhite, true},
		{ColorOrange, false},
		{ColorPink, false},
	}
	for _, tt := range tests {
		if got := tt.color.Bright(); got != tt.want {
			t.Errorf("Color(%d).Bright() = %v, expected %v", tt.color, got, tt.want)
		}
	}
}
