package palette

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		wantOK bool
		want   string
	}{
		{"六位", "#ff8000", true, "#ff8000"},
		{"三位简写", "#f80", true, "#ff8800"},
		{"前后空格", "  #00ff00 ", true, "#00ff00"},
		{"非法", "gold", false, "#ffd700"},
		{"emoji 字形", "🎉", false, "#ffd700"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseColor(tt.in)
			if ok != tt.wantOK {
				t.Errorf("Expected ok = %v, got %v", tt.wantOK, ok)
			}
			if got := c.Hex(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRGBA_Premultiplied(t *testing.T) {
	c, _ := ParseColor("#ffffff")

	full := RGBA(c, 1)
	if full.R != 255 || full.A != 255 {
		t.Errorf("Expected opaque white, got %+v", full)
	}
	half := RGBA(c, 0.5)
	if half.A != 127 || half.R != half.A {
		t.Errorf("Expected premultiplied half alpha, got %+v", half)
	}
	if clear := RGBA(c, -1); clear.A != 0 || clear.R != 0 {
		t.Errorf("Expected fully transparent, got %+v", clear)
	}
}

func TestFade(t *testing.T) {
	white, _ := ParseColor("#ffffff")
	black := colorful.Color{}

	if got := Fade(white, black, 1).Hex(); got != "#ffffff" {
		t.Errorf("Opacity 1 must keep the color, got %s", got)
	}
	if got := Fade(white, black, 0).Hex(); got != "#000000" {
		t.Errorf("Opacity 0 must yield the background, got %s", got)
	}
}
