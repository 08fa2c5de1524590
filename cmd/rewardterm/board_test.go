package main

import (
	"testing"

	"github.com/decker502/rewardfx/pkg/types"
)

func TestLayoutButtons(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		n        int
		wantCols int
	}{
		{"宽终端四列", 120, 40, 12, 4},
		{"窄终端两列", 50, 40, 12, 2},
		{"极窄终端一列", 10, 40, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rects := layoutButtons(tt.width, tt.height, tt.n)
			if len(rects) != tt.n {
				t.Fatalf("expected %d rects, got %d", tt.n, len(rects))
			}
			cols := 0
			for _, r := range rects {
				if r.Y == rects[0].Y {
					cols++
				}
				if r.Y < 1 || r.Y >= tt.height {
					t.Errorf("rect %+v outside terminal height %d", r, tt.height)
				}
			}
			if cols != tt.wantCols {
				t.Errorf("expected %d columns, got %d", tt.wantCols, cols)
			}
		})
	}
}

func TestPixelRect(t *testing.T) {
	got := pixelRect(cellRect{X: 2, Y: 10, W: 20, H: 1}, 8, 16)
	want := types.Rect{X: 16, Y: 160, Width: 160, Height: 16}
	if got != want {
		t.Errorf("pixelRect = %+v, want %+v", got, want)
	}
}
