package game

import (
	"testing"

	"github.com/decker502/rewardfx/pkg/types"
)

func TestStaticAnchors(t *testing.T) {
	a := NewStaticAnchors()
	a.Set("left", types.Rect{X: 0, Y: 0, Width: 100, Height: 50})
	a.Set("right", types.Rect{X: 80, Y: 0, Width: 100, Height: 50})

	if r, ok := a.Resolve("left"); !ok || r.Width != 100 {
		t.Errorf("unexpected resolve result: %+v %v", r, ok)
	}
	if _, ok := a.Resolve("missing"); ok {
		t.Error("expected missing anchor to fail")
	}

	tests := []struct {
		name string
		x, y float64
		want string
		ok   bool
	}{
		{name: "仅左侧", x: 10, y: 10, want: "left", ok: true},
		{name: "重叠区域取后登记", x: 90, y: 10, want: "right", ok: true},
		{name: "区域外", x: 500, y: 10, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := a.HitTest(tt.x, tt.y)
			if ok != tt.ok || got != tt.want {
				t.Errorf("HitTest(%v, %v) = %q, %v; want %q, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
			}
		})
	}

	// 更新不改变顺序
	a.Set("left", types.Rect{X: 0, Y: 100, Width: 10, Height: 10})
	if names := a.Names(); len(names) != 2 || names[0] != "left" {
		t.Errorf("unexpected order after update: %v", names)
	}

	if !a.Remove("right") {
		t.Error("expected remove to report existing anchor")
	}
	if a.Remove("right") {
		t.Error("second remove must report false")
	}
	if names := a.Names(); len(names) != 1 || names[0] != "left" {
		t.Errorf("unexpected names after remove: %v", names)
	}
}
