package graphics

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"black", ColorBlack},
		{"White", ColorWhite},
		{"transparent", ColorTransparent},
		{"#f00", ColorRed},
		{"#00ff00", ColorGreen},
		{"#0000ff80", RGBA8(0, 0, 0xff, 0x80)},
		{" #FFFFFF ", ColorWhite},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"", "blurple", "#12", "#gggggg", "rgb(1,2,3)"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) expected error", in)
		}
	}
}

func TestLerpColorEndpoints(t *testing.T) {
	a := RGB(10, 20, 30)
	b := RGBA8(200, 100, 0, 0x40)
	if got := LerpColor(a, b, 0); got != a {
		t.Errorf("LerpColor(0) = %v, want %v", got, a)
	}
	if got := LerpColor(a, b, 1); got != b {
		t.Errorf("LerpColor(1) = %v, want %v", got, b)
	}
	mid := LerpColor(ColorBlack, ColorWhite, 0.5)
	r, g, bl, al := mid.Components()
	if r != 128 || g != 128 || bl != 128 || al != 255 {
		t.Errorf("LerpColor(black, white, 0.5) = %v", mid)
	}
}

func TestColorString(t *testing.T) {
	if got := RGBA8(1, 2, 3, 4).String(); got != "#01020304" {
		t.Errorf("String() = %q", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorRed.WithAlpha(0.5)
	if c.Alpha() < 0.49 || c.Alpha() > 0.51 {
		t.Errorf("Alpha() = %v, want ~0.5", c.Alpha())
	}
}
